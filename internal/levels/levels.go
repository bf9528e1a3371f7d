// Package levels builds the five level layouts and registers them with the
// level registry. Every factory is pure: it takes no arguments and returns a
// brand new Level, so restarting or advancing never reuses stale state.
package levels

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/entity"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Shared layout constants, in world pixels.
const (
	WorldHeight  = 180.0
	GroundY      = 160.0 // Top edge of the floor
	GroundHeight = 20.0

	PatrollerW, PatrollerH = 12.0, 12.0
	PatrolSpeed            = 0.6
	ShooterW, ShooterH     = 12.0, 14.0
	ShooterFireRate        = 120 // Ticks between shots

	CollectibleSize = 10.0

	BossSize = 24.0
	BossHP   = 3
)

func init() {
	registry.Register(entity.LevelIntro, Intro)
	registry.Register(entity.LevelStage1, Stage1)
	registry.Register(entity.LevelStage2, Stage2)
	registry.Register(entity.LevelStage3, Stage3)
	registry.Register(entity.LevelBoss, Boss)
}

// floor returns a ground segment covering [x0, x1).
func floor(x0, x1 float64) entity.Platform {
	return entity.NewPlatform(x0, GroundY, x1-x0, GroundHeight)
}

// ledge returns a thin floating platform whose top edge is at y.
func ledge(x, y, w float64) entity.Platform {
	return entity.NewPlatform(x, y, w, 6)
}

// patroller places a walker standing on a surface whose top is at top,
// patrolling [minX, maxX].
func patroller(x, top, minX, maxX float64, dir int) entity.Enemy {
	return entity.NewPatroller(x, top-PatrollerH, PatrollerW, PatrollerH, PatrolSpeed, minX, maxX, dir)
}

// shooter places a turret standing on a surface whose top is at top.
func shooter(x, top float64) entity.Enemy {
	return entity.NewShooter(x, top-ShooterH, ShooterW, ShooterH, ShooterFireRate)
}

// goal places the collectible resting on a surface whose top is at top.
func goal(x, top float64) entity.Collectible {
	return entity.Collectible{Box: core.NewBox(x, top-CollectibleSize-2, CollectibleSize, CollectibleSize)}
}

// spawnAt returns a spawn point with the player's feet on a surface whose top
// is at top.
func spawnAt(x, top float64) entity.Spawn {
	return entity.Spawn{X: x, Y: top}
}

// Intro is a short flat stretch with a couple of steps and one patroller.
func Intro() *entity.Level {
	return &entity.Level{
		Kind:  entity.LevelIntro,
		Title: "First Steps",
		Platforms: []entity.Platform{
			floor(0, 640),
			ledge(180, 130, 48),
			ledge(260, 110, 48),
			ledge(420, 130, 64),
		},
		Enemies: []entity.Enemy{
			patroller(330, GroundY, 300, 400, -1),
		},
		Collectible: goal(600, GroundY),
		Spawn:       spawnAt(16, GroundY),
		Width:       640,
		Height:      WorldHeight,
	}
}

// Stage1 introduces a pit bridged by a moving platform and the first shooter.
func Stage1() *entity.Level {
	return &entity.Level{
		Kind:  entity.LevelStage1,
		Title: "Crossing",
		Platforms: []entity.Platform{
			floor(0, 300),
			floor(360, 960),
			entity.NewMovingPlatform(308, GroundY, 34, 8, 0.3, 300, 360),
			ledge(520, 120, 80),
			ledge(640, 100, 56),
		},
		Enemies: []entity.Enemy{
			patroller(160, GroundY, 110, 270, 1),
			patroller(450, GroundY, 400, 600, -1),
			shooter(780, GroundY),
		},
		Collectible: goal(920, GroundY),
		Spawn:       spawnAt(16, GroundY),
		Width:       960,
		Height:      WorldHeight,
	}
}

// Stage2 raises the route onto ledges with enemies guarding them.
func Stage2() *entity.Level {
	return &entity.Level{
		Kind:  entity.LevelStage2,
		Title: "High Road",
		Platforms: []entity.Platform{
			floor(0, 260),
			floor(340, 640),
			floor(760, 1120),
			ledge(200, 125, 90),
			entity.NewMovingPlatform(270, 135, 40, 6, 0.4, 260, 345),
			ledge(420, 110, 100),
			entity.NewMovingPlatform(650, 140, 40, 6, 0.5, 640, 760),
			ledge(860, 115, 120),
		},
		Enemies: []entity.Enemy{
			patroller(120, GroundY, 60, 240, 1),
			patroller(440, 110, 420, 520, 1),
			shooter(600, GroundY),
			patroller(800, GroundY, 770, 1000, -1),
			shooter(940, 115),
		},
		Collectible: goal(1090, GroundY),
		Spawn:       spawnAt(16, GroundY),
		Width:       1120,
		Height:      WorldHeight,
	}
}

// Stage3 is the longest run: wide pits bridged by lifts, guarded by shooters.
func Stage3() *entity.Level {
	return &entity.Level{
		Kind:  entity.LevelStage3,
		Title: "Gauntlet",
		Platforms: []entity.Platform{
			floor(0, 220),
			floor(330, 560),
			floor(700, 900),
			floor(1020, 1280),
			entity.NewMovingPlatform(230, 150, 36, 6, 0.5, 220, 330),
			ledge(380, 120, 70),
			entity.NewMovingPlatform(570, 140, 36, 6, 0.6, 560, 700),
			ledge(760, 110, 90),
			entity.NewMovingPlatform(910, 145, 36, 6, 0.45, 900, 1020),
			ledge(1100, 125, 80),
		},
		Enemies: []entity.Enemy{
			patroller(100, GroundY, 40, 210, 1),
			shooter(400, 120),
			patroller(450, GroundY, 340, 550, -1),
			patroller(780, 110, 760, 850, 1),
			shooter(880, GroundY),
			patroller(1060, GroundY, 1030, 1250, 1),
			shooter(1150, 125),
		},
		Collectible: goal(1250, GroundY),
		Spawn:       spawnAt(16, GroundY),
		Width:       1280,
		Height:      WorldHeight,
	}
}

// Boss is a walled arena. The collectible sits behind the boss, against the
// far wall.
func Boss() *entity.Level {
	return &entity.Level{
		Kind:  entity.LevelBoss,
		Title: "The Warden",
		Platforms: []entity.Platform{
			floor(0, 480),
			entity.NewPlatform(0, 0, 8, GroundY),
			entity.NewPlatform(472, 0, 8, GroundY),
			ledge(100, 115, 60),
			ledge(320, 115, 60),
		},
		Boss:        entity.NewBoss(360, GroundY-BossSize, BossSize, BossSize, BossHP),
		Collectible: goal(452, GroundY),
		Spawn:       spawnAt(24, GroundY),
		Width:       480,
		Height:      WorldHeight,
	}
}
