package physics

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Body is anything the resolver can move: the player and the boss.
type Body interface {
	Rect() *core.Box
	Velocity() *core.Vec
	SetGrounded(bool)
}

// FrameScale converts wall-clock time between frames into the simulation's
// dt factor, where 1.0 is one nominal frame. The result is clamped so a
// stall never produces a step large enough to tunnel through platforms.
func FrameScale(elapsed time.Duration, cfg config.PhysicsConfig) float64 {
	ms := float64(elapsed) / float64(time.Millisecond)
	return core.Clamp(ms/cfg.NominalFrame, cfg.MinFrameScale, cfg.MaxFrameScale)
}

// ApplyGravity accelerates a body downward and caps its fall speed.
func ApplyGravity(b Body, cfg config.PhysicsConfig, dt float64) {
	v := b.Velocity()
	v.Y += cfg.Gravity * dt
	if v.Y > cfg.MaxFallSpeed {
		v.Y = cfg.MaxFallSpeed
	}
}

// Resolve integrates a body's velocity one axis at a time and pushes it out
// of any platform it ends up inside.
//
// Horizontal: the body's leading edge is clamped to the platform's facing
// edge and vx is zeroed. Vertical: grounded is cleared first; landing snaps
// the feet to the platform top, zeroes vy and sets grounded, while a ceiling
// hit snaps the head to the platform bottom. Several overlaps on one axis are
// resolved in platform-list order, the last clamp winning.
func (w *World) Resolve(b Body, dt float64) {
	box := b.Rect()
	v := b.Velocity()

	// Horizontal pass
	if vx := v.X; vx != 0 {
		before := *box
		box.X += vx * dt
		for _, i := range w.candidates(before.Union(*box)) {
			p := &w.platforms[i]
			if !box.Overlaps(p.Box) {
				continue
			}
			if vx > 0 {
				box.X = p.X - box.W
			} else {
				box.X = p.Right()
			}
			v.X = 0
		}
	}

	// Vertical pass
	b.SetGrounded(false)
	if vy := v.Y; vy != 0 {
		before := *box
		box.Y += vy * dt
		for _, i := range w.candidates(before.Union(*box)) {
			p := &w.platforms[i]
			if !box.Overlaps(p.Box) {
				continue
			}
			if vy > 0 {
				box.Y = p.Y - box.H
				b.SetGrounded(true)
			} else {
				box.Y = p.Bottom()
			}
			v.Y = 0
		}
	}
}
