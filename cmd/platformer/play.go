package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	flagLevel string
	flagMute  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at the title screen, or jump straight into a level.

Controls:
  Left/Right, A/D   - Move
  Space/Up/W        - Jump
  Down/S/C          - Crouch
  F/J               - Throw a fireball
  P/Esc             - Pause
  Enter             - Start / play again
  R                 - Restart (after win or game over)
  M                 - Mute
  Ctrl+S            - Screenshot
  Q/Ctrl+C          - Quit

The config file is watched while playing, edits apply on save.

Examples:
  platformer play
  platformer play --level 3
  platformer play --level boss --difficulty hard
  platformer play --config ./my-platformer.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Start at a level, by name or 1-based number")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runPlay(_ *cobra.Command, _ []string) {
	s, err := newSession(io.Discard)
	if err != nil {
		fail(err)
	}
	defer s.Close()

	if flagLevel != "" {
		index, err := levelIndex(flagLevel)
		if err != nil {
			s.Close()
			fail(err)
		}
		if err := s.game.StartAt(index); err != nil {
			s.Close()
			fail(err)
		}
	}

	width, height := terminalSize()
	if err := tui.Run(s.game, s.options(width, height)); err != nil {
		s.Close()
		fail(fmt.Errorf("running game: %w", err))
	}
}

// levelIndex accepts a level name from "platformer levels" or its 1-based
// position in play order.
func levelIndex(arg string) (int, error) {
	kinds := registry.Kinds()
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(kinds) {
			return 0, fmt.Errorf("level %d out of range 1-%d", n, len(kinds))
		}
		return n - 1, nil
	}

	kind, ok := registry.Lookup(arg)
	if !ok {
		return 0, fmt.Errorf("unknown level %q, run 'platformer levels' to see them", arg)
	}
	for i, k := range kinds {
		if k == kind {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q", arg)
}

// session holds what an interactive run needs: the game, its audio and the
// config watcher.
type session struct {
	log      *log.Logger
	game     *game.Game
	preset   config.DifficultyPreset
	engine   *audio.Engine
	watcher  *config.Watcher
	closeLog func()
}

func newSession(logOut io.Writer) (*session, error) {
	logger, closeLog, err := newLogger(logOut)
	if err != nil {
		return nil, err
	}

	cfg, path, preset, err := loadConfig()
	if err != nil {
		closeLog()
		return nil, err
	}
	logger.Info("config loaded", "path", path, "difficulty", preset)

	s := &session{log: logger, preset: preset, closeLog: closeLog}

	var sink audio.Sink = audio.Nop{}
	engine := audio.NewEngine(cfg.Audio)
	if err := engine.Start(); err != nil {
		if errors.Is(err, audio.ErrNoBackend) {
			logger.Info("sound disabled", "reason", err)
		} else {
			logger.Warn("sound disabled", "error", err)
		}
	} else {
		s.engine = engine
		sink = engine
	}

	if path != "" {
		w, err := config.Watch(path)
		if err != nil {
			logger.Warn("config reload disabled", "error", err)
		} else {
			s.watcher = w
			logger.Info("watching config", "path", w.Path())
		}
	}

	s.game = game.New(
		game.WithLogger(logger),
		game.WithAudio(sink),
		game.WithConfig(cfg),
	)
	return s, nil
}

func (s *session) options(width, height int) tui.Options {
	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Logger:  s.log,
		Watcher: s.watcher,
		Preset:  s.preset,
		Muted:   flagMute,
	}
	if s.engine != nil {
		opts.Audio = s.engine
	}
	return opts
}

// Close stops audio and the watcher. It is safe to call more than once.
func (s *session) Close() {
	if s.engine != nil {
		if err := s.engine.Err(); err != nil {
			s.log.Warn("audio output failed", "error", err)
		}
		s.log.Debug("audio stopped", "cues", s.engine.Played(), "still_playing", s.engine.Active())
		if err := s.engine.Close(); err != nil {
			s.log.Warn("audio shutdown", "error", err)
		}
		s.engine = nil
	}
	if s.watcher != nil {
		s.watcher.Close()
		s.watcher = nil
	}
	if s.closeLog != nil {
		s.closeLog()
		s.closeLog = nil
	}
}
