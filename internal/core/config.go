package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frame callbacks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Mode is the top-level game mode. Only ModePlaying advances the simulation.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeWin
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeWin:
		return "win"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// GameState is a snapshot of what the UI needs outside of drawing.
type GameState struct {
	Mode       Mode
	Paused     bool
	LevelIndex int
	LevelName  string
	Tick       int
	Defeated   int // Enemies and bosses defeated this run
}

// EventKind identifies something notable that happened during a step.
type EventKind int

const (
	EventLevelStarted EventKind = iota
	EventLevelCompleted
	EventEnemyDefeated
	EventBossHit
	EventBossDefeated
	EventPlayerKnockedBack
	EventWon
	EventLost
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLevelStarted:
		return "level_started"
	case EventLevelCompleted:
		return "level_completed"
	case EventEnemyDefeated:
		return "enemy_defeated"
	case EventBossHit:
		return "boss_hit"
	case EventBossDefeated:
		return "boss_defeated"
	case EventPlayerKnockedBack:
		return "player_knocked_back"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Event is emitted by a step. Level is the index of the level it happened in.
type Event struct {
	Kind  EventKind
	Level int
	Tick  int
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State  GameState
	Events []Event
}

// Clock provides monotonic time since an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// SystemClock reads the wall clock's monotonic reading relative to its creation.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a Clock advanced explicitly. Used by headless runs and tests.
type ManualClock struct {
	T time.Duration
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.T
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.T += d
}
