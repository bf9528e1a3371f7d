package entity

import "github.com/vovakirdan/tui-platformer/internal/core"

// EnemyKind tags the variant carried by an Enemy.
type EnemyKind int

const (
	KindPatroller EnemyKind = iota
	KindShooter
)

// String returns a human-readable name for the kind.
func (k EnemyKind) String() string {
	switch k {
	case KindPatroller:
		return "patroller"
	case KindShooter:
		return "shooter"
	default:
		return "unknown"
	}
}

// Patrol is the payload of a melee patroller.
type Patrol struct {
	Dir        int // -1 or 1
	MinX, MaxX float64
	Speed      float64
}

// Turret is the payload of a ranged shooter.
type Turret struct {
	Cooldown int // Ticks until the next shot
	FireRate int // Cooldown reset value
}

// Enemy is a tagged union over the enemy variants. Exactly one of Patrol or
// Turret is set, matching Kind. Death is terminal: dead enemies stay in the
// level and are skipped by AI, combat and rendering.
type Enemy struct {
	core.Box
	Alive  bool
	Kind   EnemyKind
	Patrol *Patrol
	Turret *Turret
}

// NewPatroller creates a patroller walking in dir within [minX, maxX].
func NewPatroller(x, y, w, h, speed, minX, maxX float64, dir int) Enemy {
	return Enemy{
		Box:   core.NewBox(x, y, w, h),
		Alive: true,
		Kind:  KindPatroller,
		Patrol: &Patrol{
			Dir:   dir,
			MinX:  minX,
			MaxX:  maxX,
			Speed: speed,
		},
	}
}

// NewShooter creates a shooter that fires every fireRate ticks.
// The first shot comes after one full cooldown.
func NewShooter(x, y, w, h float64, fireRate int) Enemy {
	return Enemy{
		Box:   core.NewBox(x, y, w, h),
		Alive: true,
		Kind:  KindShooter,
		Turret: &Turret{
			Cooldown: fireRate,
			FireRate: fireRate,
		},
	}
}

// Kill marks the enemy dead. Reports whether it was alive before.
func (e *Enemy) Kill() bool {
	if !e.Alive {
		return false
	}
	e.Alive = false
	return true
}
