// Package combat owns projectiles: the player's fireballs and the hostile
// shots fired by shooters and the boss. It spawns them, moves them, resolves
// their hits and drops the spent ones.
package combat

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/entity"
)

// Report lists what a projectile update resolved.
type Report struct {
	EnemiesDefeated   []int // Indices into Level.Enemies
	BossHits          int
	BossDefeated      bool
	PlayerKnockedBack bool
}

// Hits returns the number of confirmed friendly hits.
func (r Report) Hits() int {
	return len(r.EnemiesDefeated) + r.BossHits
}

// TryFire throws a fireball from the player's facing side when the cooldown
// has elapsed. The cooldown is measured on the absolute clock, so it does not
// depend on frame rate. Reports whether a fireball was spawned.
func TryFire(p *entity.Player, l *entity.Level, now time.Duration, cfg config.Config) bool {
	if now < p.NextFireAt {
		return false
	}

	spec := cfg.Combat.Fireball
	x := p.Right()
	if p.Facing < 0 {
		x = p.X - spec.Width
	}
	l.Fireballs = append(l.Fireballs, newProjectile(spec, x, p.CenterY(), float64(p.Facing), true))

	p.NextFireAt = now + time.Duration(cfg.Player.FireCooldownMS)*time.Millisecond
	return true
}

// SpawnHostile adds an enemy or boss shot centred vertically on y, travelling
// in dir (-1 or 1).
func SpawnHostile(l *entity.Level, spec config.ProjectileSpec, x, y, dir float64) {
	l.Hostile = append(l.Hostile, newProjectile(spec, x, y, dir, false))
}

func newProjectile(spec config.ProjectileSpec, x, centerY, dir float64, friendly bool) entity.Projectile {
	p := entity.Projectile{
		Life:     spec.Life,
		Friendly: friendly,
	}
	p.X, p.Y = x, centerY-spec.Height/2
	p.W, p.H = spec.Width, spec.Height
	p.Vel.X = dir * spec.Speed
	return p
}

// Update advances every projectile, resolves hits and culls the spent ones.
//
// Friendly shots test living enemies first and then the boss; the first match
// consumes the shot. Hostile shots knock the player back without being
// consumed, unless the player is crouching under them.
func Update(l *entity.Level, p *entity.Player, dt float64, cfg config.Config) Report {
	integrate(l.Fireballs, dt)
	integrate(l.Hostile, dt)

	var r Report

	for i := range l.Fireballs {
		fb := &l.Fireballs[i]
		if !fb.Alive() {
			continue
		}
		if idx := hitEnemy(l, fb); idx >= 0 {
			r.EnemiesDefeated = append(r.EnemiesDefeated, idx)
			continue
		}
		if l.BossAlive() && fb.Overlaps(l.Boss.Box) {
			fb.Consume()
			r.BossHits++
			if l.Boss.Hit() {
				r.BossDefeated = true
			}
		}
	}

	for i := range l.Hostile {
		h := &l.Hostile[i]
		if !h.Alive() || !h.Overlaps(p.Box) {
			continue
		}
		if Ducks(p, h, cfg.Player) {
			continue
		}
		dir := 1.0
		if h.Vel.X > 0 {
			dir = -1
		}
		Knockback(p, dir, cfg.Combat.ProjectileKnockbackX, cfg.Combat.ProjectileKnockbackY)
		r.PlayerKnockedBack = true
	}

	l.Fireballs = cull(l.Fireballs, l.Width, cfg.Combat.CullMargin)
	l.Hostile = cull(l.Hostile, l.Width, cfg.Combat.CullMargin)

	return r
}

func integrate(ps []entity.Projectile, dt float64) {
	for i := range ps {
		ps[i].X += ps[i].Vel.X * dt
		ps[i].Y += ps[i].Vel.Y * dt
		ps[i].Life--
	}
}

// hitEnemy kills the first living enemy the fireball overlaps and consumes
// the fireball. Returns the enemy index or -1.
func hitEnemy(l *entity.Level, fb *entity.Projectile) int {
	for j := range l.Enemies {
		e := &l.Enemies[j]
		if !e.Alive || !fb.Overlaps(e.Box) {
			continue
		}
		e.Kill()
		fb.Consume()
		return j
	}
	return -1
}

// Ducks reports whether a crouching player lets a hostile shot pass: the
// shot's vertical center must sit above the player's head line.
func Ducks(p *entity.Player, h *entity.Projectile, cfg config.PlayerConfig) bool {
	if !p.Crouching {
		return false
	}
	return h.CenterY() < p.Y+HeadOffset(p, cfg)
}

// HeadOffset is the distance from the player's top edge to the head line.
func HeadOffset(p *entity.Player, cfg config.PlayerConfig) float64 {
	if p.Crouching {
		return cfg.HeadOffsetCrouching
	}
	return cfg.HeadOffsetStanding
}

// cull filters in place, keeping shots with life left that are still within
// margin of the world's horizontal bounds.
func cull(ps []entity.Projectile, width, margin float64) []entity.Projectile {
	out := ps[:0]
	for _, p := range ps {
		if !p.Alive() || p.X < -margin || p.X > width+margin {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Knockback pushes the player horizontally in dir and sets the given vertical
// velocity. It lifts the player off the ground.
func Knockback(p *entity.Player, dir, kx, ky float64) {
	p.Vel.X = dir * kx
	p.Vel.Y = ky
	p.Grounded = false
}

// SideOf returns -1 when the player is left of x and 1 otherwise. Contact
// knockback pushes toward that side and enemies aim toward it.
func SideOf(p *entity.Player, x float64) float64 {
	if p.CenterX() < x {
		return -1
	}
	return 1
}
