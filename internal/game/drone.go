package game

import (
	"fmt"
	"math/rand"

	"github.com/pingpongcat/sky-over-kharkov/internal/config"
	"github.com/pingpongcat/sky-over-kharkov/internal/core"
)

// maxDrones is the drone pool capacity. Waves larger than the remaining
// free slots are truncated.
const maxDrones = 15

// DroneState is the per-drone lifecycle state.
type DroneState int

const (
	DroneFlying DroneState = iota
	DroneExploding
	DroneFalling
	DroneDead
)

// String returns the state name for debugging output.
func (s DroneState) String() string {
	switch s {
	case DroneFlying:
		return "Flying"
	case DroneExploding:
		return "Exploding"
	case DroneFalling:
		return "Falling"
	case DroneDead:
		return "Dead"
	}
	return fmt.Sprintf("DroneState(%d)", int(s))
}

// Drone is one slot of the pool. Pos is the sprite's top-left corner in
// field units; the drone occupies a square of the configured size.
type Drone struct {
	Pos       core.Vec2
	Answer    int
	IsTarget  bool
	State     DroneState
	AnimTimer float64
	Active    bool
	Gen       uint32
}

// DroneHandle identifies a drone slot at a specific generation. When the
// slot is recycled the generation moves on and the handle stops
// resolving, so a stale reference can never alias a newer drone.
type DroneHandle struct {
	Index int
	Gen   uint32
}

// DroneField owns the fixed pool of drones, their spawn-wave logic, and
// the per-tick state machine.
type DroneField struct {
	cfg  *config.Config
	rng  *rand.Rand
	pool [maxDrones]Drone
}

// NewDroneField creates an empty field.
func NewDroneField(cfg *config.Config, rng *rand.Rand) *DroneField {
	return &DroneField{cfg: cfg, rng: rng}
}

// SpawnWave places a new wave of drones for eq and returns the number
// actually spawned (bounded by free slots).
//
// If a flying drone already displays the correct answer it is promoted
// to target and the wave spawns decoys only; otherwise one random slot
// of the wave carries the answer. Target marks left over from the
// previous equation are cleared either way.
func (f *DroneField) SpawnWave(eq Equation) int {
	count := f.waveSize()

	// Retroactive promotion: an existing flying drone that happens to
	// show the new answer becomes the target instead of spawning a
	// duplicate. Other flying drones lose any stale target mark.
	// Falling and exploding drones keep theirs so an old target still
	// crashes the way a target does.
	taken := make(map[int]bool)
	promoted := false
	for i := range f.pool {
		d := &f.pool[i]
		if !d.Active || d.State != DroneFlying {
			continue
		}
		taken[d.Answer] = true
		if !promoted && d.Answer == eq.Answer {
			d.IsTarget = true
			promoted = true
		} else {
			d.IsTarget = false
		}
	}

	// Pick wave answers up front so decoys can also avoid each other.
	targetSlot := -1
	if !promoted {
		targetSlot = f.rng.Intn(count)
	}
	answers := make([]int, count)
	for i := range answers {
		if i == targetSlot {
			answers[i] = eq.Answer
		} else {
			answers[i] = f.decoyAnswer(eq.Answer, taken)
			taken[answers[i]] = true
		}
	}

	spawned := 0
	for i := range f.pool {
		if spawned >= count {
			break
		}
		d := &f.pool[i]
		if d.Active && d.State != DroneDead {
			continue
		}
		gen := d.Gen + 1
		*d = Drone{
			Pos: core.Vec2{
				X: f.cfg.Waves.SpawnX + float64(spawned)*f.cfg.Waves.SpawnPitch,
				Y: f.cfg.Waves.SpawnYMin + f.rng.Float64()*f.cfg.Waves.SpawnYBand,
			},
			Answer:   answers[spawned],
			IsTarget: spawned == targetSlot,
			State:    DroneFlying,
			Active:   true,
			Gen:      gen,
		}
		spawned++
	}
	return spawned
}

// waveSize rolls the number of drones for the next wave.
func (f *DroneField) waveSize() int {
	span := core.Max(f.cfg.Waves.MaxCount-f.cfg.Waves.MinCount, 0) + 1
	count := f.cfg.Waves.MinCount + f.rng.Intn(span)
	return core.Clamp(count, 1, maxDrones)
}

// decoyAnswer rolls a wrong answer near the correct one. The offset is
// drawn from [-10,10] with zero bumped to +5, so a decoy can never equal
// the correct answer. Collisions with answers already on screen or
// already chosen this wave are re-rolled, up to maxDecoyAttempts; after
// that the last candidate is accepted.
func (f *DroneField) decoyAnswer(correct int, taken map[int]bool) int {
	const maxDecoyAttempts = 50

	candidate := correct
	for attempt := 0; attempt < maxDecoyAttempts; attempt++ {
		offset := f.rng.Intn(21) - 10
		if offset == 0 {
			offset = 5
		}
		candidate = correct + offset
		if !taken[candidate] {
			break
		}
	}
	return candidate
}

// Tick advances every active drone one frame through its state machine.
func (f *DroneField) Tick(dt float64) {
	cfg := &f.cfg.Drones
	for i := range f.pool {
		d := &f.pool[i]
		if !d.Active {
			continue
		}

		switch d.State {
		case DroneFlying:
			d.Pos.X -= cfg.Speed * dt
			if d.IsTarget && d.Pos.X < cfg.LeftBoundary {
				// The target dives once it slips past the turret.
				d.State = DroneFalling
				d.AnimTimer = 0
			} else if !d.IsTarget && d.Pos.X < cfg.OffscreenLeft {
				d.Active = false
			}

		case DroneFalling:
			d.AnimTimer += dt
			d.Pos.X -= cfg.Speed * cfg.FallDrift * dt
			d.Pos.Y += cfg.FallSpeed * dt
			if d.IsTarget && d.Pos.Y >= cfg.GroundY {
				d.State = DroneExploding
				d.AnimTimer = 0
				d.Pos.Y += cfg.GroundOffset
			} else if !d.IsTarget && (d.Pos.Y >= cfg.NearGroundY || d.Pos.X < cfg.OffscreenLeft) {
				d.State = DroneDead
			}

		case DroneExploding:
			d.AnimTimer += dt
			if d.AnimTimer > cfg.ExplosionSecs {
				d.State = DroneDead
			}

		case DroneDead:
			d.Active = false
		}
	}
}

// FieldStatus is the aggregate pool summary used for wave-completion and
// game-over decisions.
type FieldStatus struct {
	TargetFlying bool
	CanStillWin  bool
	AliveCount   int
}

// Status scans the pool once and summarizes it.
func (f *DroneField) Status() FieldStatus {
	var s FieldStatus
	for i := range f.pool {
		d := &f.pool[i]
		if !d.Active || d.State == DroneDead {
			continue
		}
		s.AliveCount++
		if d.IsTarget && d.State == DroneFlying {
			s.TargetFlying = true
			s.CanStillWin = true
		}
	}
	return s
}

// FlyingAnswers returns the answers currently displayed by flying
// drones, for duplicate rejection in the generator.
func (f *DroneField) FlyingAnswers() map[int]bool {
	answers := make(map[int]bool)
	for i := range f.pool {
		d := &f.pool[i]
		if d.Active && d.State == DroneFlying {
			answers[d.Answer] = true
		}
	}
	return answers
}

// HitTest returns a handle to the first flying drone whose hit box
// contains pt.
func (f *DroneField) HitTest(pt core.Vec2) (DroneHandle, bool) {
	for i := range f.pool {
		d := &f.pool[i]
		if !d.Active || d.State != DroneFlying {
			continue
		}
		if f.Bounds(i).Contains(pt) {
			return DroneHandle{Index: i, Gen: d.Gen}, true
		}
	}
	return DroneHandle{}, false
}

// Bounds returns the drone's square hit box in field units.
func (f *DroneField) Bounds(i int) core.RectF {
	size := f.cfg.Drones.Size
	return core.RectF{X: f.pool[i].Pos.X, Y: f.pool[i].Pos.Y, W: size, H: size}
}

// At resolves a handle. It returns nil if the slot is free or has been
// recycled since the handle was taken.
func (f *DroneField) At(h DroneHandle) *Drone {
	if h.Index < 0 || h.Index >= len(f.pool) {
		return nil
	}
	d := &f.pool[h.Index]
	if !d.Active || d.Gen != h.Gen {
		return nil
	}
	return d
}

// Clear frees every slot, advancing generations so outstanding handles
// stop resolving.
func (f *DroneField) Clear() {
	for i := range f.pool {
		gen := f.pool[i].Gen + 1
		f.pool[i] = Drone{Gen: gen}
	}
}
