package game

import (
	"github.com/pingpongcat/sky-over-kharkov/internal/config"
	"github.com/pingpongcat/sky-over-kharkov/internal/core"
)

// maxProjectiles is the projectile pool capacity. Fire requests that
// find no free slot are silently dropped.
const maxProjectiles = 10

// Projectile is one in-flight shot. Velocity is fixed at spawn and never
// re-homed; the shot flies a straight line toward where the target was.
type Projectile struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Lifetime float64
	Active   bool
	Target   DroneHandle
}

// ShotOutcome aggregates the scoring effects of one projectile tick.
// AmmoDelta is the raw reward; the match applies the ammo cap.
type ShotOutcome struct {
	AmmoDelta      int
	ScoreDelta     int
	TargetResolved bool
}

// ProjectileField owns the fixed pool of shots, their ballistic motion,
// and collision against each shot's own target.
type ProjectileField struct {
	cfg  *config.Config
	pool [maxProjectiles]Projectile
}

// NewProjectileField creates an empty field.
func NewProjectileField(cfg *config.Config) *ProjectileField {
	return &ProjectileField{cfg: cfg}
}

// Fire allocates one shot from origin toward aim, bound to target.
// Returns false when the pool is full.
func (f *ProjectileField) Fire(origin, aim core.Vec2, target DroneHandle) bool {
	slot := -1
	for i := range f.pool {
		if !f.pool[i].Active {
			slot = i
			break
		}
	}
	if slot < 0 {
		return false
	}

	f.pool[slot] = Projectile{
		Pos:    origin,
		Vel:    aim.Sub(origin).Norm().Scale(f.cfg.Projectiles.Speed),
		Active: true,
		Target: target,
	}
	return true
}

// Tick advances every shot by dt and resolves collisions.
//
// A shot checks only its own target, and only while that drone is flying
// or exploding. The first shot to reach a flying target scores; any
// sibling shot arriving afterwards finds the drone already exploding and
// just disappears, so a triple-barrel volley never double-scores. Shots
// whose handle has gone stale expire by bounds or lifetime.
func (f *ProjectileField) Tick(drones *DroneField, dt float64) ShotOutcome {
	var out ShotOutcome

	margin := f.cfg.Projectiles.BoundsMargin
	bounds := core.RectF{
		X: -margin,
		Y: -margin,
		W: f.cfg.Field.Width + 2*margin,
		H: f.cfg.Field.Height + 2*margin,
	}
	hitRadius := f.cfg.Drones.Size * f.cfg.Drones.HitRadiusRatio

	for i := range f.pool {
		p := &f.pool[i]
		if !p.Active {
			continue
		}

		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Lifetime += dt

		if d := drones.At(p.Target); d != nil && (d.State == DroneFlying || d.State == DroneExploding) {
			center := drones.Bounds(p.Target.Index).Center()
			if p.Pos.Dist(center) < hitRadius {
				if d.State == DroneFlying {
					if d.IsTarget {
						d.State = DroneExploding
						d.AnimTimer = 0
						out.AmmoDelta += f.cfg.Scoring.HitReward
						out.ScoreDelta += f.cfg.Scoring.CorrectScore
						out.TargetResolved = true
					} else {
						d.State = DroneFalling
						d.AnimTimer = 0
						out.ScoreDelta += f.cfg.Scoring.WrongPenalty
					}
				}
				p.Active = false
				continue
			}
		}

		if !bounds.Contains(p.Pos) || p.Lifetime > f.cfg.Projectiles.MaxLifetime {
			p.Active = false
		}
	}
	return out
}

// Clear frees every slot.
func (f *ProjectileField) Clear() {
	for i := range f.pool {
		f.pool[i] = Projectile{}
	}
}
