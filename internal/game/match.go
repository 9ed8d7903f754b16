// Package game implements the arcade simulation: an anti-air turret
// defends the city by shooting down the attack drone whose displayed
// number solves the current arithmetic equation.
//
// The simulation is single-threaded and advances through fixed-size
// entity pools one Step(dt) at a time. It draws itself onto a
// core.Screen and knows nothing about terminals, persistence, or audio;
// sound-worthy moments are reported as events in the step result.
package game

import (
	"math/rand"

	"github.com/pingpongcat/sky-over-kharkov/internal/config"
	"github.com/pingpongcat/sky-over-kharkov/internal/core"
)

// Barrel anchor points as fractions of the turret sprite, and the aim
// spread between the outer shots of a volley.
const (
	barrelLeftX  = 0.67
	barrelRightX = 0.83
	barrelY      = 0.63
)

// MatchEvent signals a sound-worthy moment to the platform layer.
type MatchEvent int

const (
	EventShotFired MatchEvent = iota
	EventTargetDestroyed
)

// Status is the aggregate bookkeeping state of a match.
type Status struct {
	Score      int
	Ammo       int
	Level      int
	Started    bool
	Paused     bool
	GameOver   bool
	WaveActive bool
}

// StepResult reports what a single tick produced.
type StepResult struct {
	Status Status
	Events []MatchEvent
}

// Match is the composition root. It owns the entity pools, the equation
// generator, and all ammo/score/wave bookkeeping, and advances the whole
// simulation one Step at a time. All randomness flows from the single
// injected seed, so equal seeds and equal input produce equal matches.
type Match struct {
	cfg *config.Config
	rng *rand.Rand

	gen         *Generator
	drones      *DroneField
	projectiles *ProjectileField
	turret      *Turret

	equation  Equation
	breakdown []BreakdownPart

	status       Status
	respawnTimer float64
	pointer      core.Vec2

	allowNegative bool
	showBreakdown bool

	events []MatchEvent
}

// NewMatch creates a match in the level-select phase. If the config
// names a default level the match starts on it immediately.
func NewMatch(cfg *config.Config, seed int64) *Match {
	rng := rand.New(rand.NewSource(seed))
	m := &Match{
		cfg:         cfg,
		rng:         rng,
		gen:         NewGenerator(rng),
		drones:      NewDroneField(cfg, rng),
		projectiles: NewProjectileField(cfg),
		turret:      NewTurret(cfg.Turret.FireFrameSecs),
		pointer: core.Vec2{
			X: cfg.Field.Width / 2,
			Y: cfg.Field.Height / 2,
		},
		allowNegative: cfg.Options.AllowNegative,
		showBreakdown: cfg.Options.ShowBreakdown,
	}
	m.status.Ammo = cfg.Scoring.StartAmmo
	if lvl := cfg.Options.DefaultLevel; lvl >= 1 && lvl <= 3 {
		m.selectLevel(lvl)
	}
	return m
}

// Step advances the simulation by dt seconds, applying the frame's input
// first. Pause freezes everything below input handling; before a level
// is selected, and after game over, only input runs.
func (m *Match) Step(in core.InputFrame, dt float64) StepResult {
	m.events = m.events[:0]

	m.applyInput(in)

	if m.status.Started && !m.status.Paused && !m.status.GameOver {
		m.turret.Tick(dt)
		m.turret.Aim(m.pointer.X, m.cfg.Field.Width)

		m.drones.Tick(dt)

		m.applyOutcome(m.projectiles.Tick(m.drones, dt))

		m.maybeRespawn(dt)

		if in.FirePressed {
			m.tryFire(core.Vec2{X: in.FireX, Y: in.FireY})
		}

		m.checkGameOver()
	}

	return StepResult{
		Status: m.status,
		Events: append([]MatchEvent(nil), m.events...),
	}
}

// applyInput handles the frame's discrete actions and pointer state.
func (m *Match) applyInput(in core.InputFrame) {
	if in.PointerMoved {
		m.pointer = core.Vec2{
			X: core.ClampF(in.PointerX, 0, m.cfg.Field.Width),
			Y: core.ClampF(in.PointerY, 0, m.cfg.Field.Height),
		}
	}
	if in.Has(core.ActionToggleBreakdown) {
		m.showBreakdown = !m.showBreakdown
	}
	if in.Has(core.ActionToggleNegatives) {
		m.allowNegative = !m.allowNegative
	}

	if !m.status.Started {
		if in.Level != 0 {
			m.selectLevel(core.Clamp(in.Level, 1, 3))
		}
		return
	}

	if in.Has(core.ActionPause) && !m.status.GameOver {
		m.status.Paused = !m.status.Paused
	}
	if in.Has(core.ActionRestart) && m.status.GameOver {
		m.restart()
	}
}

// selectLevel starts the match on the given level with an immediate
// first wave.
func (m *Match) selectLevel(level int) {
	m.status.Level = level
	m.status.Started = true
	m.newWave()
}

// newWave generates the next equation and spawns its drones.
func (m *Match) newWave() {
	m.equation = m.gen.Generate(m.status.Level, m.drones.FlyingAnswers(), m.allowNegative)
	m.breakdown = Decompose(m.equation)
	m.drones.SpawnWave(m.equation)
	m.status.WaveActive = true
	m.respawnTimer = 0
}

// applyOutcome folds projectile results into the match state. The wave
// ends the moment its target stops flying, whether destroyed or diving.
func (m *Match) applyOutcome(out ShotOutcome) {
	if out.AmmoDelta != 0 {
		m.status.Ammo = core.Clamp(m.status.Ammo+out.AmmoDelta, 0, m.cfg.Scoring.MaxAmmo)
	}
	m.status.Score += out.ScoreDelta
	if out.TargetResolved {
		m.events = append(m.events, EventTargetDestroyed)
	}

	if m.status.WaveActive && !m.drones.Status().TargetFlying {
		m.status.WaveActive = false
		m.respawnTimer = 0
	}
}

// maybeRespawn starts the next wave once the respawn delay has passed.
// Respawning stops while the player cannot afford a shot, letting the
// field drain toward the game-over check.
func (m *Match) maybeRespawn(dt float64) {
	if m.status.WaveActive || m.status.Ammo < m.cfg.Scoring.ShotCost {
		return
	}
	m.respawnTimer += dt
	if m.respawnTimer > m.cfg.Waves.RespawnSecs {
		m.newWave()
	}
}

// tryFire resolves a fire intent at a field point. Ammo is spent only
// when the point actually lies on a flying drone; the volley is three
// shots, one per barrel plus the center, all bound to that drone.
func (m *Match) tryFire(at core.Vec2) {
	if m.turret.Firing || m.status.Ammo < m.cfg.Scoring.ShotCost {
		return
	}
	target, ok := m.drones.HitTest(at)
	if !ok {
		return
	}

	m.status.Ammo -= m.cfg.Scoring.ShotCost
	m.turret.TriggerFire()
	m.events = append(m.events, EventShotFired)

	center := m.drones.Bounds(target.Index).Center()
	spread := m.cfg.Projectiles.Spread
	left, right := m.barrelPositions()
	mid := left.Add(right).Scale(0.5)

	m.projectiles.Fire(left, core.Vec2{X: center.X - spread, Y: center.Y}, target)
	m.projectiles.Fire(right, core.Vec2{X: center.X + spread, Y: center.Y}, target)
	m.projectiles.Fire(mid, center, target)
}

// turretPos returns the turret sprite's top-left corner in field units.
func (m *Match) turretPos() core.Vec2 {
	return core.Vec2{
		X: m.cfg.Turret.X,
		Y: m.cfg.Field.Height - m.cfg.Turret.GroundMargin - m.cfg.Turret.Size,
	}
}

// barrelPositions returns the left and right barrel muzzle points.
func (m *Match) barrelPositions() (left, right core.Vec2) {
	pos := m.turretPos()
	size := m.cfg.Turret.Size
	left = core.Vec2{X: pos.X + size*barrelLeftX, Y: pos.Y + size*barrelY}
	right = core.Vec2{X: pos.X + size*barrelRightX, Y: pos.Y + size*barrelY}
	return left, right
}

// checkGameOver latches the game-over state once the player cannot
// afford a shot and the sky is empty. The sim then freezes until a
// restart intent.
func (m *Match) checkGameOver() {
	if m.status.GameOver || m.status.Ammo >= m.cfg.Scoring.ShotCost {
		return
	}
	s := m.drones.Status()
	if !s.CanStillWin && s.AliveCount == 0 {
		m.status.GameOver = true
	}
}

// restart discards all live entity state at a tick boundary and returns
// to the level-select phase with fresh ammo and score.
func (m *Match) restart() {
	m.drones.Clear()
	m.projectiles.Clear()
	m.turret.Reset()
	m.equation = Equation{}
	m.breakdown = nil
	m.respawnTimer = 0
	m.status = Status{
		Ammo:  m.cfg.Scoring.StartAmmo,
		Level: m.status.Level,
	}
}

// Status returns the current bookkeeping state.
func (m *Match) Status() Status {
	return m.status
}

// Equation returns the problem currently in play.
func (m *Match) Equation() Equation {
	return m.equation
}
