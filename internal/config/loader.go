package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the user and local directories.
const FileName = "platformer.yaml"

// Load loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default.
// The second return value is the file the config came from, empty for the
// embedded default.
func Load(customPath string) (Config, string, error) {
	// Custom path errors are reported, the rest fall through silently
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		return cfg, customPath, nil
	}

	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), "", nil
	}
	return cfg, "", nil
}

// LoadFile reads and parses a single config file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults, so a file only needs
// to list the values it changes.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.CrouchHeight <= 0:
		return fmt.Errorf("config: player dimensions must be positive")
	case c.Player.CrouchHeight > c.Player.Height:
		return fmt.Errorf("config: crouch_height %v exceeds height %v", c.Player.CrouchHeight, c.Player.Height)
	case c.Physics.MinFrameScale <= 0 || c.Physics.MaxFrameScale < c.Physics.MinFrameScale:
		return fmt.Errorf("config: invalid frame scale range [%v, %v]", c.Physics.MinFrameScale, c.Physics.MaxFrameScale)
	case c.Physics.NominalFrame <= 0:
		return fmt.Errorf("config: nominal_frame_ms must be positive")
	case c.Physics.Gravity < 0:
		return fmt.Errorf("config: gravity %v must not be negative", c.Physics.Gravity)
	case c.Physics.MaxFallSpeed <= 0:
		return fmt.Errorf("config: max_fall_speed must be positive")
	case c.Physics.Friction < 0 || c.Physics.Friction >= 1:
		return fmt.Errorf("config: friction %v must be in [0, 1)", c.Physics.Friction)
	case c.Enemies.PatrolSpeedScale <= 0:
		return fmt.Errorf("config: patrol_speed_scale must be positive")
	case c.Enemies.FireRateScale <= 0:
		return fmt.Errorf("config: fire_rate_scale must be positive")
	case c.Boss.HP <= 0:
		return fmt.Errorf("config: boss hp must be positive")
	case c.Boss.LeapTicks <= 0 || c.Boss.ShockwaveTicks <= 0 || c.Boss.VolleyTicks <= 0:
		return fmt.Errorf("config: boss phase durations must be positive")
	case c.Camera.ViewportWidth <= 0 || c.Camera.ViewportHeight <= 0:
		return fmt.Errorf("config: viewport must be positive")
	}
	for _, at := range c.Boss.VolleyAt {
		if at <= 0 || at > c.Boss.VolleyTicks {
			return fmt.Errorf("config: volley_at tick %d outside (0, %d]", at, c.Boss.VolleyTicks)
		}
	}
	for name, spec := range map[string]ProjectileSpec{
		"fireball":  c.Combat.Fireball,
		"arrow":     c.Combat.Arrow,
		"shockwave": c.Combat.Shockwave,
	} {
		if spec.Width <= 0 || spec.Height <= 0 || spec.Life <= 0 {
			return fmt.Errorf("config: %s projectile needs positive size and life", name)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}
