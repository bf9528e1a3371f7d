package config

import "fmt"

// presetScaling is how far a preset moves enemy tuning away from normal.
type presetScaling struct {
	patrolSpeed float64
	fireRate    float64 // Larger means slower shooters
	knockback   float64
}

var presets = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {patrolSpeed: 0.75, fireRate: 1.5, knockback: 0.75},
	DifficultyNormal: {patrolSpeed: 1, fireRate: 1, knockback: 1},
	DifficultyHard:   {patrolSpeed: 1.35, fireRate: 0.6, knockback: 1.3},
}

// ParsePreset converts a CLI flag value into a preset.
// An empty string means "keep the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	p := DifficultyPreset(s)
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyPreset scales enemy speed, shooter fire rate and knockback.
// Normal leaves the config unchanged.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	s, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Enemies.PatrolSpeedScale *= s.patrolSpeed
	cfg.Enemies.FireRateScale *= s.fireRate
	cfg.Combat.ContactKnockbackX *= s.knockback
	cfg.Combat.ContactKnockbackY *= s.knockback
	cfg.Combat.ProjectileKnockbackX *= s.knockback
	cfg.Combat.ProjectileKnockbackY *= s.knockback
}
