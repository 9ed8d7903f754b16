package game

import (
	"math/rand"
	"testing"

	"github.com/pingpongcat/sky-over-kharkov/internal/config"
	"github.com/pingpongcat/sky-over-kharkov/internal/core"
)

// placeDrone parks a drone in slot 0 and returns its handle and center.
func placeDrone(f *DroneField, isTarget bool) (DroneHandle, core.Vec2) {
	f.pool[0] = Drone{
		Pos:      core.Vec2{X: 600, Y: 200},
		Answer:   15,
		IsTarget: isTarget,
		State:    DroneFlying,
		Active:   true,
		Gen:      1,
	}
	return DroneHandle{Index: 0, Gen: 1}, f.Bounds(0).Center()
}

func TestProjectileCorrectHit(t *testing.T) {
	cfg := config.Default()
	drones := NewDroneField(&cfg, rand.New(rand.NewSource(1)))
	shots := NewProjectileField(&cfg)

	target, center := placeDrone(drones, true)
	origin := core.Vec2{X: 320, Y: 520}
	if !shots.Fire(origin, center, target) {
		t.Fatal("fire into an empty pool failed")
	}

	var total ShotOutcome
	for i := 0; i < 120; i++ {
		out := shots.Tick(drones, 1.0/60)
		total.AmmoDelta += out.AmmoDelta
		total.ScoreDelta += out.ScoreDelta
		total.TargetResolved = total.TargetResolved || out.TargetResolved
	}

	if !total.TargetResolved {
		t.Fatal("shot never reached the target")
	}
	if total.AmmoDelta != cfg.Scoring.HitReward {
		t.Errorf("ammo reward %d, want %d", total.AmmoDelta, cfg.Scoring.HitReward)
	}
	if total.ScoreDelta != cfg.Scoring.CorrectScore {
		t.Errorf("score delta %d, want %d", total.ScoreDelta, cfg.Scoring.CorrectScore)
	}
	if drones.pool[0].State != DroneExploding {
		t.Errorf("hit target is %v, want Exploding", drones.pool[0].State)
	}
}

func TestProjectileVolleyScoresOnce(t *testing.T) {
	cfg := config.Default()
	drones := NewDroneField(&cfg, rand.New(rand.NewSource(1)))
	shots := NewProjectileField(&cfg)

	target, center := placeDrone(drones, true)
	spread := cfg.Projectiles.Spread
	shots.Fire(core.Vec2{X: 321, Y: 543}, core.Vec2{X: center.X - spread, Y: center.Y}, target)
	shots.Fire(core.Vec2{X: 369, Y: 543}, core.Vec2{X: center.X + spread, Y: center.Y}, target)
	shots.Fire(core.Vec2{X: 345, Y: 543}, center, target)

	var total ShotOutcome
	for i := 0; i < 120; i++ {
		out := shots.Tick(drones, 1.0/60)
		total.AmmoDelta += out.AmmoDelta
		total.ScoreDelta += out.ScoreDelta
	}

	// The first shell resolves the wave; its siblings find the drone
	// already exploding and vanish without scoring again.
	if total.AmmoDelta != cfg.Scoring.HitReward {
		t.Errorf("volley ammo reward %d, want %d once", total.AmmoDelta, cfg.Scoring.HitReward)
	}
	if total.ScoreDelta != cfg.Scoring.CorrectScore {
		t.Errorf("volley score %d, want %d once", total.ScoreDelta, cfg.Scoring.CorrectScore)
	}
	for i := range shots.pool {
		if shots.pool[i].Active {
			t.Errorf("shot %d still active after the volley resolved", i)
		}
	}
}

func TestProjectileWrongHit(t *testing.T) {
	cfg := config.Default()
	drones := NewDroneField(&cfg, rand.New(rand.NewSource(1)))
	shots := NewProjectileField(&cfg)

	handle, center := placeDrone(drones, false)
	shots.Fire(core.Vec2{X: 320, Y: 520}, center, handle)

	var total ShotOutcome
	for i := 0; i < 120; i++ {
		out := shots.Tick(drones, 1.0/60)
		total.AmmoDelta += out.AmmoDelta
		total.ScoreDelta += out.ScoreDelta
		total.TargetResolved = total.TargetResolved || out.TargetResolved
	}

	if total.ScoreDelta != cfg.Scoring.WrongPenalty {
		t.Errorf("wrong hit score %d, want %d", total.ScoreDelta, cfg.Scoring.WrongPenalty)
	}
	if total.AmmoDelta != 0 {
		t.Errorf("wrong hit granted %d ammo", total.AmmoDelta)
	}
	if total.TargetResolved {
		t.Error("wrong hit reported as a resolved wave")
	}
	d := &drones.pool[0]
	if d.State != DroneFalling {
		t.Errorf("wrong-hit drone is %v, want Falling", d.State)
	}
}

func TestProjectileIgnoresStaleHandle(t *testing.T) {
	cfg := config.Default()
	drones := NewDroneField(&cfg, rand.New(rand.NewSource(1)))
	shots := NewProjectileField(&cfg)

	_, center := placeDrone(drones, true)
	stale := DroneHandle{Index: 0, Gen: 99}
	shots.Fire(core.Vec2{X: 320, Y: 520}, center, stale)

	var total ShotOutcome
	for i := 0; i < 120; i++ {
		out := shots.Tick(drones, 1.0/60)
		total.AmmoDelta += out.AmmoDelta
		total.ScoreDelta += out.ScoreDelta
	}

	if total.AmmoDelta != 0 || total.ScoreDelta != 0 {
		t.Errorf("stale-handle shot scored %+v", total)
	}
	if drones.pool[0].State != DroneFlying {
		t.Errorf("drone touched by a stale shot is %v, want Flying", drones.pool[0].State)
	}
	for i := range shots.pool {
		if shots.pool[i].Active {
			t.Error("stale shot never expired")
		}
	}
}

func TestProjectileExpiresByLifetime(t *testing.T) {
	cfg := config.Default()
	drones := NewDroneField(&cfg, rand.New(rand.NewSource(1)))
	shots := NewProjectileField(&cfg)

	// Zero-length aim gives a stationary shot, so only the lifetime
	// cap can retire it.
	origin := core.Vec2{X: 500, Y: 300}
	shots.Fire(origin, origin, DroneHandle{Index: 0, Gen: 99})

	steps := int(cfg.Projectiles.MaxLifetime/(1.0/30)) + 2
	for i := 0; i < steps; i++ {
		shots.Tick(drones, 1.0/30)
	}
	if shots.pool[0].Active {
		t.Error("stationary shot outlived its lifetime cap")
	}
}

func TestProjectileExpiresOffField(t *testing.T) {
	cfg := config.Default()
	drones := NewDroneField(&cfg, rand.New(rand.NewSource(1)))
	shots := NewProjectileField(&cfg)

	shots.Fire(core.Vec2{X: 0, Y: 300}, core.Vec2{X: -100, Y: 300}, DroneHandle{Index: 0, Gen: 99})

	for i := 0; i < 5; i++ {
		shots.Tick(drones, 1.0/30)
	}
	if shots.pool[0].Active {
		t.Error("shot active far past the field margin")
	}
}

func TestProjectilePoolExhaustion(t *testing.T) {
	cfg := config.Default()
	shots := NewProjectileField(&cfg)

	origin := core.Vec2{X: 300, Y: 500}
	aim := core.Vec2{X: 600, Y: 200}
	for i := 0; i < maxProjectiles; i++ {
		if !shots.Fire(origin, aim, DroneHandle{}) {
			t.Fatalf("fire %d failed with free slots remaining", i)
		}
	}
	if shots.Fire(origin, aim, DroneHandle{}) {
		t.Error("fire succeeded on a full pool")
	}

	shots.Clear()
	if !shots.Fire(origin, aim, DroneHandle{}) {
		t.Error("fire failed after Clear")
	}
}
