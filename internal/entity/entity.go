// Package entity defines the simulation's data model: the player, enemies,
// the boss, projectiles, platforms and the level that owns them.
// Behavior lives in the physics, ai and combat packages; the types here only
// carry state and small invariant-preserving helpers.
package entity

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Player is the user-controlled body. One instance exists per level attempt;
// it is recreated rather than reset.
type Player struct {
	core.Box
	Vel       core.Vec
	Facing    int // -1 or 1
	Grounded  bool
	Crouching bool

	// NextFireAt is the absolute clock time at which the next fireball may be
	// thrown.
	NextFireAt time.Duration

	// Invulnerable is reserved. Contact damage does not consume it.
	Invulnerable int

	standHeight float64
}

// NewPlayer creates a player standing at the spawn point, facing right.
func NewPlayer(x, y, w, h float64) *Player {
	return &Player{
		Box:         core.NewBox(x, y, w, h),
		Facing:      1,
		standHeight: h,
	}
}

// StandHeight returns the hitbox height while not crouching.
func (p *Player) StandHeight() float64 {
	return p.standHeight
}

// Rect exposes the box to the physics resolver.
func (p *Player) Rect() *core.Box { return &p.Box }

// Velocity exposes the velocity to the physics resolver.
func (p *Player) Velocity() *core.Vec { return &p.Vel }

// SetGrounded records the vertical-collision state.
func (p *Player) SetGrounded(g bool) { p.Grounded = g }

// Platform is a static or kinematic box. A kinematic platform moves along x
// at VX and reverses when its box leaves [MinX, MaxX].
type Platform struct {
	core.Box
	VX         float64
	MinX, MaxX float64
	Kinematic  bool
}

// NewPlatform creates a static platform.
func NewPlatform(x, y, w, h float64) Platform {
	return Platform{Box: core.NewBox(x, y, w, h)}
}

// NewMovingPlatform creates a kinematic platform travelling within [minX, maxX].
func NewMovingPlatform(x, y, w, h, vx, minX, maxX float64) Platform {
	return Platform{
		Box:       core.NewBox(x, y, w, h),
		VX:        vx,
		MinX:      minX,
		MaxX:      maxX,
		Kinematic: true,
	}
}

// Advance moves a kinematic platform by VX*dt. When either edge leaves the
// range the box is put back on the boundary and the direction flips.
// Reports whether the platform reversed.
func (p *Platform) Advance(dt float64) bool {
	if !p.Kinematic {
		return false
	}
	p.X += p.VX * dt
	switch {
	case p.X < p.MinX:
		p.X = p.MinX
	case p.Right() > p.MaxX:
		p.X = p.MaxX - p.W
	default:
		return false
	}
	p.VX = -p.VX
	return true
}

// Collectible is the level-completion trigger.
type Collectible struct {
	core.Box
}

// Projectile is a moving hitbox with a tick lifetime.
type Projectile struct {
	core.Box
	Vel      core.Vec
	Life     int
	Friendly bool
}

// Alive reports whether the projectile still has lifetime left.
func (p *Projectile) Alive() bool {
	return p.Life > 0
}

// Consume marks the projectile for removal at the end of the tick.
func (p *Projectile) Consume() {
	p.Life = 0
}
