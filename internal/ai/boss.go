package ai

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-platformer/internal/combat"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/entity"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Boss advances the boss by one tick. The caller runs it only while the boss
// is alive.
//
// Each tick the phase timer is incremented, the phase's entry actions run on
// its first tick, the body falls and collides, phase transitions are checked
// and contact with the player knocks the player back.
//
//	leap      -> shockwave  once grounded and timer > LeapTicks
//	shockwave -> volley     once timer > ShockwaveTicks
//	volley    -> leap       once timer > VolleyTicks
func Boss(b *entity.Boss, l *entity.Level, w *physics.World, p *entity.Player, dt float64, cfg config.Config) Outcome {
	var out Outcome
	bc := cfg.Boss

	b.Timer++

	switch b.Phase {
	case entity.PhaseLeap:
		if b.Timer == 1 {
			b.Vel.X = combat.SideOf(p, b.CenterX()) * bc.LeapVelocityX
			b.Vel.Y = bc.LeapVelocityY
			b.Grounded = false
		}
	case entity.PhaseShockwave:
		if b.Timer == 1 {
			spec := cfg.Combat.Shockwave
			x := b.CenterX() - spec.Width/2
			y := b.Bottom() - spec.Height/2
			combat.SpawnHostile(l, spec, x, y, -1)
			combat.SpawnHostile(l, spec, x, y, 1)
			out.Shots += 2
		}
	case entity.PhaseVolley:
		if slices.Contains(bc.VolleyAt, b.Timer) {
			spec := cfg.Combat.Arrow
			combat.SpawnHostile(l, spec, b.CenterX()-spec.Width/2, b.CenterY(), combat.SideOf(p, b.CenterX()))
			out.Shots++
		}
	default:
		panic(fmt.Sprintf("ai: invalid boss phase %d", int(b.Phase)))
	}

	physics.ApplyGravity(b, cfg.Physics, dt)
	w.Resolve(b, dt)
	if b.Grounded {
		b.Vel.X = 0
	}

	switch b.Phase {
	case entity.PhaseLeap:
		if b.Grounded && b.Timer > bc.LeapTicks {
			b.Enter(entity.PhaseShockwave)
		}
	case entity.PhaseShockwave:
		if b.Timer > bc.ShockwaveTicks {
			b.Enter(entity.PhaseVolley)
		}
	case entity.PhaseVolley:
		if b.Timer > bc.VolleyTicks {
			b.Enter(entity.PhaseLeap)
		}
	}

	if b.Overlaps(p.Box) {
		combat.Knockback(p, combat.SideOf(p, b.CenterX()), cfg.Combat.ContactKnockbackX, cfg.Combat.ContactKnockbackY)
		out.KnockedBack = true
	}

	return out
}
