package game

import "github.com/pingpongcat/sky-over-kharkov/internal/core"

// DroneView is a read-only copy of one live drone.
type DroneView struct {
	Pos       core.Vec2
	Answer    int
	IsTarget  bool
	State     DroneState
	AnimTimer float64
}

// ProjectileView is a read-only copy of one live projectile.
type ProjectileView struct {
	Pos core.Vec2
	Vel core.Vec2
}

// TurretView is a read-only copy of the turret's pose.
type TurretView struct {
	AimIndex  int
	Firing    bool
	FireFrame int
}

// Snapshot is a self-contained copy of everything visible in a frame,
// safe to hold across later steps.
type Snapshot struct {
	Equation  Equation
	Breakdown []BreakdownPart

	Drones      []DroneView
	Projectiles []ProjectileView
	Turret      TurretView

	Status  Status
	Pointer core.Vec2

	AllowNegative bool
	ShowBreakdown bool
}

// Snapshot copies the current frame state out of the simulation.
func (m *Match) Snapshot() Snapshot {
	snap := Snapshot{
		Equation:      m.equation,
		Breakdown:     append([]BreakdownPart(nil), m.breakdown...),
		Status:        m.status,
		Pointer:       m.pointer,
		AllowNegative: m.allowNegative,
		ShowBreakdown: m.showBreakdown,
		Turret: TurretView{
			AimIndex:  m.turret.AimIndex,
			Firing:    m.turret.Firing,
			FireFrame: m.turret.FireFrame,
		},
	}

	for i := range m.drones.pool {
		d := &m.drones.pool[i]
		if !d.Active || d.State == DroneDead {
			continue
		}
		snap.Drones = append(snap.Drones, DroneView{
			Pos:       d.Pos,
			Answer:    d.Answer,
			IsTarget:  d.IsTarget,
			State:     d.State,
			AnimTimer: d.AnimTimer,
		})
	}

	for i := range m.projectiles.pool {
		p := &m.projectiles.pool[i]
		if !p.Active {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Pos: p.Pos,
			Vel: p.Vel,
		})
	}

	return snap
}
