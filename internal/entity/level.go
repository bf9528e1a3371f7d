package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is wrapped by every Level.Validate failure.
var ErrInvalidLevel = errors.New("invalid level")

// LevelKind identifies one of the five level layouts, in play order.
type LevelKind int

const (
	LevelIntro LevelKind = iota
	LevelStage1
	LevelStage2
	LevelStage3
	LevelBoss
)

// String returns the short name used on the command line.
func (k LevelKind) String() string {
	switch k {
	case LevelIntro:
		return "intro"
	case LevelStage1:
		return "stage1"
	case LevelStage2:
		return "stage2"
	case LevelStage3:
		return "stage3"
	case LevelBoss:
		return "boss"
	default:
		return fmt.Sprintf("level(%d)", int(k))
	}
}

// Spawn is a player start position: X is the left edge and Y the feet, so
// the player stands on the floor whatever its configured height.
type Spawn struct {
	X, Y float64
}

// Level is the live world. Exactly one exists at a time; stage transitions
// build a fresh one instead of mutating the old.
type Level struct {
	Kind        LevelKind
	Title       string
	Platforms   []Platform
	Enemies     []Enemy
	Fireballs   []Projectile // Player-owned, hit enemies and the boss
	Hostile     []Projectile // Enemy and boss owned, hit the player
	Collectible Collectible
	Boss        *Boss
	Spawn       Spawn
	CameraX     float64
	Width       float64
	Height      float64
	Tick        int
}

// BossAlive reports whether the level has a boss that is still fighting.
func (l *Level) BossAlive() bool {
	return l.Boss != nil && l.Boss.Alive
}

// AliveEnemies counts enemies that have not been defeated.
func (l *Level) AliveEnemies() int {
	n := 0
	for i := range l.Enemies {
		if l.Enemies[i].Alive {
			n++
		}
	}
	return n
}

// Validate checks the construction invariants every factory must uphold.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: %s world size %vx%v", ErrInvalidLevel, l.Kind, l.Width, l.Height)
	}
	for i, p := range l.Platforms {
		if !p.Valid() {
			return fmt.Errorf("%w: %s platform %d has size %vx%v", ErrInvalidLevel, l.Kind, i, p.W, p.H)
		}
		if p.Kinematic {
			if p.MaxX-p.MinX < p.W {
				return fmt.Errorf("%w: %s platform %d range [%v, %v] narrower than width %v",
					ErrInvalidLevel, l.Kind, i, p.MinX, p.MaxX, p.W)
			}
			if p.X < p.MinX || p.Right() > p.MaxX {
				return fmt.Errorf("%w: %s platform %d starts outside its range", ErrInvalidLevel, l.Kind, i)
			}
		}
	}
	for i, e := range l.Enemies {
		if !e.Valid() {
			return fmt.Errorf("%w: %s enemy %d has size %vx%v", ErrInvalidLevel, l.Kind, i, e.W, e.H)
		}
		switch e.Kind {
		case KindPatroller:
			if e.Patrol == nil {
				return fmt.Errorf("%w: %s enemy %d is a patroller without patrol data", ErrInvalidLevel, l.Kind, i)
			}
			if e.Patrol.MaxX-e.Patrol.MinX <= e.W {
				return fmt.Errorf("%w: %s enemy %d patrol range [%v, %v] leaves no room to move",
					ErrInvalidLevel, l.Kind, i, e.Patrol.MinX, e.Patrol.MaxX)
			}
			if e.Patrol.Dir != 1 && e.Patrol.Dir != -1 {
				return fmt.Errorf("%w: %s enemy %d patrol direction %d", ErrInvalidLevel, l.Kind, i, e.Patrol.Dir)
			}
		case KindShooter:
			if e.Turret == nil || e.Turret.FireRate <= 0 {
				return fmt.Errorf("%w: %s enemy %d is a shooter without a fire rate", ErrInvalidLevel, l.Kind, i)
			}
		default:
			return fmt.Errorf("%w: %s enemy %d has unknown kind %d", ErrInvalidLevel, l.Kind, i, e.Kind)
		}
	}
	if !l.Collectible.Valid() {
		return fmt.Errorf("%w: %s collectible has no area", ErrInvalidLevel, l.Kind)
	}
	if l.Boss != nil {
		if !l.Boss.Valid() || l.Boss.HP <= 0 || !l.Boss.Phase.Valid() {
			return fmt.Errorf("%w: %s boss is malformed", ErrInvalidLevel, l.Kind)
		}
	}
	return nil
}
