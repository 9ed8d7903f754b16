package game

import (
	"github.com/pingpongcat/sky-over-kharkov/internal/core"
)

// aimSteps is the number of discrete turret aim positions.
const aimSteps = 5

// AimIndexFor maps a pointer x position to a discrete aim step. The
// field's right edge maps to 0 and the left edge to aimSteps-1;
// positions outside the field clamp to the nearest step.
func AimIndexFor(pointerX, fieldWidth float64) int {
	if fieldWidth <= 0 {
		return 0
	}
	idx := int((1 - pointerX/fieldWidth) * aimSteps)
	return core.Clamp(idx, 0, aimSteps-1)
}

// Turret tracks the discrete aim direction and a short fire animation.
// The animation is cosmetic and never gates hit resolution, but a new
// shot waits for the previous cycle to finish.
type Turret struct {
	AimIndex  int
	Firing    bool
	FireFrame int // 0 rest, 1 mid recoil, 2 full recoil
	fireTimer float64
	frameSecs float64
}

// NewTurret creates a turret whose fire animation advances one frame
// every frameSecs seconds.
func NewTurret(frameSecs float64) *Turret {
	return &Turret{frameSecs: frameSecs}
}

// Aim updates the discrete aim index from the pointer position.
func (t *Turret) Aim(pointerX, fieldWidth float64) {
	t.AimIndex = AimIndexFor(pointerX, fieldWidth)
}

// TriggerFire starts the fire animation at the mid frame for immediate
// visual feedback.
func (t *Turret) TriggerFire() {
	t.Firing = true
	t.FireFrame = 1
	t.fireTimer = 0
}

// Tick advances the fire animation and clears Firing once the cycle
// completes.
func (t *Turret) Tick(dt float64) {
	if !t.Firing {
		return
	}
	t.fireTimer += dt
	if t.fireTimer > t.frameSecs {
		t.FireFrame++
		t.fireTimer = 0
		if t.FireFrame > 2 {
			t.FireFrame = 0
			t.Firing = false
		}
	}
}

// Reset stops any animation in progress.
func (t *Turret) Reset() {
	t.Firing = false
	t.FireFrame = 0
	t.fireTimer = 0
}
