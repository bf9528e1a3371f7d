// Package game is the platformer's orchestrator. It owns the mode state
// machine and the live level, and runs the per-tick sequence: platforms,
// player control, physics, camera, enemy AI, projectiles, boss, and the
// collectible and fall checks that drive level transitions.
package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/ai"
	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/combat"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/entity"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/render"
)

// Game runs the simulation. It is not safe for concurrent use: every call
// is expected to come from the single loop that owns it.
type Game struct {
	cfg   config.Config
	log   *log.Logger
	clock core.Clock
	sink  audio.Sink

	mode   core.Mode
	paused bool

	kinds  []entity.LevelKind // Play order
	index  int
	level  *entity.Level
	world  *physics.World
	player *entity.Player

	lastFrame time.Duration
	hasFrame  bool

	defeated int
	events   []core.Event
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithClock sets the time source used for frame timing and fire cooldowns.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithAudio sets the cue sink. The default is audio.Nop.
func WithAudio(s audio.Sink) Option {
	return func(g *Game) { g.sink = s }
}

// WithConfig sets the tuning parameters. The default is config.Default().
func WithConfig(cfg config.Config) Option {
	return func(g *Game) { g.cfg = cfg }
}

// New creates a game in menu mode with every registered level in play order.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:   config.Default(),
		log:   log.New(io.Discard),
		clock: core.NewSystemClock(),
		sink:  audio.Nop{},
		mode:  core.ModeMenu,
		kinds: registry.Kinds(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Start leaves the menu and begins the first level.
func (g *Game) Start() {
	g.startAt(0)
}

// Restart begins a new run from the first level.
func (g *Game) Restart() {
	g.defeated = 0
	g.startAt(0)
}

// StartAt begins play at the given level index. Used by the level-select menu.
func (g *Game) StartAt(index int) error {
	if index < 0 || index >= len(g.kinds) {
		return fmt.Errorf("game: level index %d out of range [0, %d)", index, len(g.kinds))
	}
	g.defeated = 0
	g.startAt(index)
	return nil
}

func (g *Game) startAt(index int) {
	g.setMode(core.ModePlaying)
	g.paused = false
	g.load(index)
}

// AdvanceLevel moves to the next level, or wins the game after the last one.
func (g *Game) AdvanceLevel() {
	if g.index+1 >= len(g.kinds) {
		g.emit(core.EventWon)
		g.setMode(core.ModeWin)
		g.log.Info("game won", "defeated", g.defeated, "tick", g.level.Tick)
		return
	}
	g.load(g.index + 1)
}

// load builds a fresh level and player. A level that fails validation is a
// programming error and panics.
func (g *Game) load(index int) {
	kind := g.kinds[index]
	lvl, err := registry.Create(kind)
	if err != nil {
		panic(fmt.Sprintf("game: %v", err))
	}
	if lvl.Boss != nil && g.cfg.Boss.HP > 0 {
		lvl.Boss.HP = g.cfg.Boss.HP
	}

	pc := g.cfg.Player
	g.index = index
	g.level = lvl
	g.world = physics.NewWorld(lvl)
	g.player = entity.NewPlayer(lvl.Spawn.X, lvl.Spawn.Y-pc.Height, pc.Width, pc.Height)
	g.updateCamera()

	g.emit(core.EventLevelStarted)
	g.log.Info("level started", "level", kind, "title", lvl.Title, "index", index)
}

// SetConfig swaps tuning parameters. They apply from the next tick; the level
// in progress keeps its geometry.
func (g *Game) SetConfig(cfg config.Config) {
	g.cfg = cfg
	if r, ok := g.sink.(interface{ SetConfig(config.AudioConfig) }); ok {
		r.SetConfig(cfg.Audio)
	}
	g.log.Info("config applied")
}

// Config returns the active tuning parameters.
func (g *Game) Config() config.Config { return g.cfg }

// Level returns the live level, or nil before the first start.
func (g *Game) Level() *entity.Level { return g.level }

// Player returns the live player, or nil before the first start.
func (g *Game) Player() *entity.Player { return g.player }

// Mode returns the current top-level mode.
func (g *Game) Mode() core.Mode { return g.mode }

// Levels returns the level kinds in play order.
func (g *Game) Levels() []entity.LevelKind { return g.kinds }

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := core.GameState{
		Mode:       g.mode,
		Paused:     g.paused,
		LevelIndex: g.index,
		Defeated:   g.defeated,
	}
	if g.level != nil {
		s.LevelName = g.level.Title
		s.Tick = g.level.Tick
	}
	return s
}

// Step advances the game by one frame, scaling the step by the wall-clock
// time since the previous frame. The first frame runs at dt = 1.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	now := g.clock.Now()
	dt := 1.0
	if g.hasFrame {
		dt = physics.FrameScale(now-g.lastFrame, g.cfg.Physics)
	}
	g.lastFrame, g.hasFrame = now, true
	return g.Tick(in, dt)
}

// Tick advances the game by one frame with an explicit dt.
func (g *Game) Tick(in core.InputFrame, dt float64) core.StepResult {
	g.events = nil

	switch g.mode {
	case core.ModeMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			g.Start()
		}
	case core.ModeWin, core.ModeGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.Restart()
		}
	case core.ModePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
			g.log.Debug("pause toggled", "paused", g.paused)
		}
		if !g.paused {
			g.update(in, dt)
		}
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// update runs one simulation tick in the fixed order each step depends on.
func (g *Game) update(in core.InputFrame, dt float64) {
	l, p := g.level, g.player

	l.Tick++
	g.world.MovePlatforms(dt)

	g.control(in)

	if (in.Has(core.ActionJump) || in.Has(core.ActionUp)) && p.Grounded && !p.Crouching {
		p.Vel.Y = g.cfg.Player.JumpVelocity
		p.Grounded = false
		g.sink.Play(audio.CueJump)
	}

	if in.Has(core.ActionFire) && combat.TryFire(p, l, g.clock.Now(), g.cfg) {
		g.sink.Play(audio.CueShoot)
	}

	physics.ApplyGravity(p, g.cfg.Physics, dt)
	g.applyCrouchHeight()
	g.world.Resolve(p, dt)
	g.keepInWorld()
	g.updateCamera()

	knocked := ai.Enemies(l, g.world, p, dt, g.cfg).KnockedBack

	report := combat.Update(l, p, dt, g.cfg)
	for range report.EnemiesDefeated {
		g.defeated++
		g.sink.Play(audio.CueHit)
		g.emit(core.EventEnemyDefeated)
	}
	for i := 0; i < report.BossHits; i++ {
		g.sink.Play(audio.CueHit)
		g.emit(core.EventBossHit)
	}
	if report.BossDefeated {
		g.defeated++
		g.emit(core.EventBossDefeated)
		g.log.Info("boss defeated", "tick", l.Tick)
	}
	knocked = knocked || report.PlayerKnockedBack

	if l.BossAlive() {
		knocked = ai.Boss(l.Boss, l, g.world, p, dt, g.cfg).KnockedBack || knocked
	}

	if knocked {
		g.emit(core.EventPlayerKnockedBack)
	}

	g.checkProgress()
}

// control turns directional and crouch input into horizontal velocity.
// Opposing directions cancel. Crouch only registers on the ground and
// lowers the speed cap.
func (g *Game) control(in core.InputFrame) {
	p := g.player
	pc := g.cfg.Player
	ph := g.cfg.Physics

	dir := 0
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		dir = -1
	case right && !left:
		dir = 1
	}

	p.Crouching = (in.Has(core.ActionCrouch) || in.Has(core.ActionDown)) && p.Grounded

	speed := pc.MaxSpeed
	if p.Crouching {
		speed = pc.CrouchSpeed
	}

	if dir != 0 {
		p.Vel.X = float64(dir) * speed
		p.Facing = dir
		return
	}
	p.Vel.X *= ph.Friction
	if core.Abs(p.Vel.X) < ph.StopEpsilon {
		p.Vel.X = 0
	}
}

// applyCrouchHeight resizes the hitbox for the crouch state, keeping the
// feet where they are.
func (g *Game) applyCrouchHeight() {
	p := g.player
	want := p.StandHeight()
	if p.Crouching {
		want = g.cfg.Player.CrouchHeight
	}
	if p.H == want {
		return
	}
	feet := p.Bottom()
	p.H = want
	p.Y = feet - want
}

// keepInWorld stops the player at the level's left and right edges.
func (g *Game) keepInWorld() {
	p := g.player
	maxX := g.level.Width - p.W
	if p.X < 0 {
		p.X = 0
		p.Vel.X = 0
	} else if p.X > maxX {
		p.X = maxX
		p.Vel.X = 0
	}
}

// updateCamera centers the player horizontally, clamped to the world.
func (g *Game) updateCamera() {
	vw := g.cfg.Camera.ViewportWidth
	maxX := max(0, g.level.Width-vw)
	g.level.CameraX = core.Clamp(g.player.CenterX()-vw/2, 0, maxX)
}

// checkProgress handles the collectible and falling out of the world.
func (g *Game) checkProgress() {
	l, p := g.level, g.player

	if p.Overlaps(l.Collectible.Box) {
		g.sink.Play(audio.CueCollect)
		g.emit(core.EventLevelCompleted)
		g.log.Info("level completed", "level", l.Kind, "tick", l.Tick)
		g.AdvanceLevel()
		return
	}

	if p.Y > l.Height+g.cfg.World.FallMargin {
		g.sink.Play(audio.CueDeath)
		g.emit(core.EventLost)
		g.setMode(core.ModeGameOver)
		g.log.Info("player fell", "level", l.Kind, "tick", l.Tick)
	}
}

func (g *Game) setMode(m core.Mode) {
	if g.mode != m {
		g.log.Debug("mode changed", "from", g.mode, "to", m)
	}
	g.mode = m
}

func (g *Game) emit(kind core.EventKind) {
	tick := 0
	if g.level != nil {
		tick = g.level.Tick
	}
	g.events = append(g.events, core.Event{Kind: kind, Level: g.index, Tick: tick})
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	render.Frame(dst, render.View{
		Level:  g.level,
		Player: g.player,
		State:  g.State(),
		Levels: len(g.kinds),
		Camera: g.cfg.Camera,
	})
}
