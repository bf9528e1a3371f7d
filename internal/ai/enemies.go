// Package ai drives the non-player actors: ground-bound patrollers and
// shooters, and the three-phase boss.
package ai

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/combat"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/entity"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Outcome reports the effects an AI pass had on the rest of the world.
type Outcome struct {
	KnockedBack bool // The player was pushed by contact this tick
	Shots       int  // Hostile projectiles spawned
}

func (o *Outcome) merge(other Outcome) {
	o.KnockedBack = o.KnockedBack || other.KnockedBack
	o.Shots += other.Shots
}

// Enemies runs every living enemy in list order.
func Enemies(l *entity.Level, w *physics.World, p *entity.Player, dt float64, cfg config.Config) Outcome {
	var out Outcome
	for i := range l.Enemies {
		e := &l.Enemies[i]
		if !e.Alive {
			continue
		}
		switch e.Kind {
		case entity.KindPatroller:
			out.merge(Patrol(e, w, p, dt, cfg))
		case entity.KindShooter:
			out.merge(Shoot(e, l, w, p, cfg))
		}
	}
	return out
}

// Patrol walks a patroller along its range, turning at either end, keeps it
// on the ground and pushes the player away on contact.
func Patrol(e *entity.Enemy, w *physics.World, p *entity.Player, dt float64, cfg config.Config) Outcome {
	pt := e.Patrol
	e.X += float64(pt.Dir) * pt.Speed * cfg.Enemies.PatrolSpeedScale * dt

	switch {
	case e.X < pt.MinX:
		e.X = pt.MinX
		pt.Dir = 1
	case e.Right() > pt.MaxX:
		e.X = pt.MaxX - e.W
		pt.Dir = -1
	}

	snapToGround(e, w)

	var out Outcome
	if e.Overlaps(p.Box) {
		combat.Knockback(p, combat.SideOf(p, e.CenterX()), cfg.Combat.ContactKnockbackX, cfg.Combat.ContactKnockbackY)
		out.KnockedBack = true
	}
	return out
}

// Shoot counts a shooter's cooldown down and fires one shot toward the
// player's side when it runs out.
func Shoot(e *entity.Enemy, l *entity.Level, w *physics.World, p *entity.Player, cfg config.Config) Outcome {
	snapToGround(e, w)

	tr := e.Turret
	tr.Cooldown--
	if tr.Cooldown > 0 {
		return Outcome{}
	}

	spec := cfg.Combat.Arrow
	combat.SpawnHostile(l, spec, e.CenterX()-spec.Width/2, e.CenterY(), combat.SideOf(p, e.CenterX()))
	tr.Cooldown = FireRate(tr.FireRate, cfg.Enemies.FireRateScale)
	return Outcome{Shots: 1}
}

// FireRate scales a shooter's cooldown, never below one tick.
func FireRate(base int, scale float64) int {
	return max(1, int(math.Round(float64(base)*scale)))
}

// snapToGround pins a ground-bound enemy onto the highest surface below its
// feet. An enemy with nothing below stays where it is.
func snapToGround(e *entity.Enemy, w *physics.World) {
	if top, ok := w.GroundBelow(e.Box); ok {
		e.Y = top - e.H
	}
}
