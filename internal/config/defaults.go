package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the hard-coded default configuration.
// It mirrors defaults/platformer.yaml and is the fallback when the embedded
// document cannot be parsed.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:       0.3,
			MaxFallSpeed:  6,
			Friction:      0.8,
			StopEpsilon:   0.02,
			NominalFrame:  16.67,
			MinFrameScale: 0.5,
			MaxFrameScale: 1.5,
		},
		Player: PlayerConfig{
			Width:               12,
			Height:              16,
			CrouchHeight:        10,
			MaxSpeed:            1.8,
			CrouchSpeed:         0.8,
			JumpVelocity:        -6.2,
			FireCooldownMS:      5000,
			HeadOffsetStanding:  6,
			HeadOffsetCrouching: 4,
		},
		Combat: CombatConfig{
			Fireball:             ProjectileSpec{Width: 8, Height: 6, Speed: 4, Life: 70},
			Arrow:                ProjectileSpec{Width: 8, Height: 3, Speed: 2.4, Life: 200},
			Shockwave:            ProjectileSpec{Width: 10, Height: 8, Speed: 2.2, Life: 150},
			CullMargin:           10,
			ContactKnockbackX:    3,
			ContactKnockbackY:    -3,
			ProjectileKnockbackX: 2.5,
			ProjectileKnockbackY: -2.5,
		},
		Enemies: EnemyConfig{
			PatrolSpeedScale: 1,
			FireRateScale:    1,
		},
		Boss: BossConfig{
			HP:             3,
			LeapVelocityX:  2,
			LeapVelocityY:  -7,
			LeapTicks:      90,
			ShockwaveTicks: 100,
			VolleyTicks:    100,
			VolleyAt:       []int{1, 30, 60},
		},
		World: WorldConfig{
			FallMargin: 40,
		},
		Camera: CameraConfig{
			ViewportWidth:  320,
			ViewportHeight: 180,
		},
		Audio: AudioConfig{
			SampleRate:   44100,
			MasterVolume: 0.6,
			CueVolumes: map[string]float64{
				"jump":    0.5,
				"shoot":   0.6,
				"hit":     0.8,
				"collect": 0.7,
				"death":   0.9,
			},
		},
	}
}
