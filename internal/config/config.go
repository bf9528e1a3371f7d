// Package config provides YAML-based tuning for the platformer: physics,
// player, combat, enemy, boss, camera and audio parameters, plus difficulty
// presets and a hot-reload watcher.
package config

// Config contains all tunable simulation parameters.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Combat  CombatConfig  `yaml:"combat"`
	Enemies EnemyConfig   `yaml:"enemies"`
	Boss    BossConfig    `yaml:"boss"`
	World   WorldConfig   `yaml:"world"`
	Camera  CameraConfig  `yaml:"camera"`
	Audio   AudioConfig   `yaml:"audio"`
}

// PhysicsConfig defines integration parameters shared by all bodies.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	Friction      float64 `yaml:"friction"`        // Per-tick horizontal decay without input
	StopEpsilon   float64 `yaml:"stop_epsilon"`    // |vx| below this snaps to zero
	NominalFrame  float64 `yaml:"nominal_frame_ms"` // Frame time that maps to dt = 1
	MinFrameScale float64 `yaml:"min_frame_scale"`
	MaxFrameScale float64 `yaml:"max_frame_scale"`
}

// PlayerConfig defines the player's body and controls.
type PlayerConfig struct {
	Width               float64 `yaml:"width"`
	Height              float64 `yaml:"height"`
	CrouchHeight        float64 `yaml:"crouch_height"`
	MaxSpeed            float64 `yaml:"max_speed"`
	CrouchSpeed         float64 `yaml:"crouch_speed"`
	JumpVelocity        float64 `yaml:"jump_velocity"` // Negative is up
	FireCooldownMS      int     `yaml:"fire_cooldown_ms"`
	HeadOffsetStanding  float64 `yaml:"head_offset_standing"`
	HeadOffsetCrouching float64 `yaml:"head_offset_crouching"`
}

// ProjectileSpec describes one projectile type.
type ProjectileSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Life   int     `yaml:"life"` // Ticks
}

// CombatConfig defines projectiles and knockback.
type CombatConfig struct {
	Fireball             ProjectileSpec `yaml:"fireball"`
	Arrow                ProjectileSpec `yaml:"arrow"`
	Shockwave            ProjectileSpec `yaml:"shockwave"`
	CullMargin           float64        `yaml:"cull_margin"`
	ContactKnockbackX    float64        `yaml:"contact_knockback_x"`
	ContactKnockbackY    float64        `yaml:"contact_knockback_y"` // Negative is up
	ProjectileKnockbackX float64        `yaml:"projectile_knockback_x"`
	ProjectileKnockbackY float64        `yaml:"projectile_knockback_y"`
}

// EnemyConfig scales the per-level enemy constants.
type EnemyConfig struct {
	PatrolSpeedScale float64 `yaml:"patrol_speed_scale"`
	FireRateScale    float64 `yaml:"fire_rate_scale"` // Multiplies the shooter's cooldown reset
}

// BossConfig defines the three-phase boss.
type BossConfig struct {
	HP             int     `yaml:"hp"`
	LeapVelocityX  float64 `yaml:"leap_velocity_x"`
	LeapVelocityY  float64 `yaml:"leap_velocity_y"`
	LeapTicks      int     `yaml:"leap_ticks"`
	ShockwaveTicks int     `yaml:"shockwave_ticks"`
	VolleyTicks    int     `yaml:"volley_ticks"`
	VolleyAt       []int   `yaml:"volley_at"`
}

// WorldConfig defines level-independent world rules.
type WorldConfig struct {
	FallMargin float64 `yaml:"fall_margin"` // Distance below world height that loses the game
}

// CameraConfig defines the viewport in world units.
type CameraConfig struct {
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
}

// AudioConfig defines cue synthesis.
type AudioConfig struct {
	SampleRate   int                `yaml:"sample_rate"`
	MasterVolume float64            `yaml:"master_volume"`
	CueVolumes   map[string]float64 `yaml:"cue_volumes"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
