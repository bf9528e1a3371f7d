package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DefaultHoldWindow covers the gap between a key press and the terminal's
// first auto-repeat, so held keys do not stutter.
const DefaultHoldWindow = 180 * time.Millisecond

// Simulation is what the model drives once per tick.
type Simulation interface {
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	SetConfig(cfg config.Config)
}

// Muter is implemented by audio sinks that can be silenced.
type Muter interface {
	SetMuted(bool)
}

// Options configures a Model. Only Runtime is required.
type Options struct {
	Runtime    core.RuntimeConfig
	HoldWindow time.Duration
	Clock      core.Clock
	Logger     *log.Logger

	// Watcher delivers reloaded configs. Preset is reapplied to each one.
	Watcher *config.Watcher
	Preset  config.DifficultyPreset

	Audio Muter
	Muted bool
}

// ConfigMsg carries a reloaded config into the update loop.
type ConfigMsg struct {
	Config config.Config
}

type configErrMsg struct {
	err error
}

// Model is the Bubble Tea model that runs the platformer.
type Model struct {
	sim     Simulation
	screen  *core.Screen
	config  core.RuntimeConfig
	held    *core.HeldInput
	clock   core.Clock
	log     *log.Logger
	keys    KeyMap
	help    help.Model
	watcher *config.Watcher
	preset  config.DifficultyPreset
	audio   Muter
	muted   bool

	state    core.GameState
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given simulation.
func NewModel(sim Simulation, opts Options) Model {
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = DefaultHoldWindow
	}
	if opts.Clock == nil {
		opts.Clock = core.NewSystemClock()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		sim:     sim,
		screen:  core.NewScreen(opts.Runtime.ScreenW, playfieldHeight(opts.Runtime.ScreenH)),
		config:  opts.Runtime,
		held:    core.NewHeldInput(opts.HoldWindow),
		clock:   opts.Clock,
		log:     opts.Logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		watcher: opts.Watcher,
		preset:  opts.Preset,
		audio:   opts.Audio,
		muted:   opts.Muted,
		state:   sim.State(),
	}
	m.help.Width = opts.Runtime.ScreenW
	if m.audio != nil {
		m.audio.SetMuted(m.muted)
	}
	return m
}

// playfieldHeight leaves the last row for the help line.
func playfieldHeight(h int) int {
	return max(h-1, 1)
}

// Init starts the tick loop and, when configured, the config watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case ConfigMsg:
		cfg := msg.Config
		config.ApplyPreset(&cfg, m.preset)
		m.sim.SetConfig(cfg)
		m.log.Info("config reloaded", "preset", m.preset)
		return m, waitForConfig(m.watcher)

	case configErrMsg:
		m.log.Warn("config reload failed", "error", msg.err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Mute):
		m.muted = !m.muted
		if m.audio != nil {
			m.audio.SetMuted(m.muted)
		}
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	// Turning around must not keep the old direction held.
	switch action {
	case core.ActionLeft:
		m.held.Release(core.ActionRight)
	case core.ActionRight:
		m.held.Release(core.ActionLeft)
	}
	m.held.Press(action, m.clock.Now())
	return m, nil
}

// handleTick runs one simulation step with the keys held right now.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.held.Frame(m.clock.Now())
	result := m.sim.Step(frame)
	m.state = result.State

	for _, e := range result.Events {
		m.log.Debug("event", "kind", e.Kind, "level", e.Level, "tick", e.Tick)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.sim.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("level%d_%s.txt", m.state.LevelIndex+1, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sim.Render(m.screen)

	status := m.help.View(m.keys)
	if m.muted {
		status = "[muted] " + status
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(status)
}

// State returns the state after the most recent tick.
func (m Model) State() core.GameState {
	return m.state
}

// waitForConfig blocks on the watcher for the next reload or error. It
// returns no message once the watcher is closed.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg := <-w.Configs:
			return ConfigMsg{Config: cfg}
		case err := <-w.Errors:
			return configErrMsg{err: err}
		case <-w.Done():
			return nil
		}
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(sim Simulation, opts Options) error {
	p := tea.NewProgram(
		NewModel(sim, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
