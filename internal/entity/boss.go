package entity

import "github.com/vovakirdan/tui-platformer/internal/core"

// BossPhase is one of the boss's three cyclic behaviors.
type BossPhase int

const (
	PhaseLeap      BossPhase = iota // 0: jump toward the player
	PhaseShockwave                  // 1: ground waves both ways
	PhaseVolley                     // 2: aimed shots
)

// String returns a human-readable name for the phase.
func (p BossPhase) String() string {
	switch p {
	case PhaseLeap:
		return "leap"
	case PhaseShockwave:
		return "shockwave"
	case PhaseVolley:
		return "volley"
	default:
		return "invalid"
	}
}

// Valid reports whether the phase is one of the three defined phases.
func (p BossPhase) Valid() bool {
	return p >= PhaseLeap && p <= PhaseVolley
}

// Boss is the single end-of-game enemy, owned by the boss level.
type Boss struct {
	core.Box
	Vel      core.Vec
	HP       int
	Alive    bool
	Phase    BossPhase
	Timer    int // Ticks since the current phase was entered
	Grounded bool
}

// NewBoss creates a boss in the leap phase with the given hit points.
func NewBoss(x, y, w, h float64, hp int) *Boss {
	return &Boss{
		Box:   core.NewBox(x, y, w, h),
		HP:    hp,
		Alive: true,
		Phase: PhaseLeap,
	}
}

// Hit removes one hit point. Reports whether this hit defeated the boss.
func (b *Boss) Hit() bool {
	if !b.Alive {
		return false
	}
	b.HP--
	if b.HP <= 0 {
		b.Alive = false
		return true
	}
	return false
}

// Enter switches to a phase and restarts its timer.
func (b *Boss) Enter(p BossPhase) {
	b.Phase = p
	b.Timer = 0
}

// Rect exposes the box to the physics resolver.
func (b *Boss) Rect() *core.Box { return &b.Box }

// Velocity exposes the velocity to the physics resolver.
func (b *Boss) Velocity() *core.Vec { return &b.Vel }

// SetGrounded records the vertical-collision state.
func (b *Boss) SetGrounded(g bool) { b.Grounded = g }
