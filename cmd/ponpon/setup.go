package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/ponpon/internal/config"
	"github.com/vovakirdan/ponpon/internal/core"
	"github.com/vovakirdan/ponpon/internal/games/ponpon"
	"github.com/vovakirdan/ponpon/internal/registry"
	"github.com/vovakirdan/ponpon/internal/storage"
)

// session holds what every command shares: the logger, the score store
// and the resolved difficulty.
type session struct {
	logger  *log.Logger
	store   *storage.Store
	preset  config.DifficultyPreset
	logFile *os.File
}

// openSession parses the global flags and wires the game package.
// A database that cannot be opened is logged and the game runs without it.
func openSession() (*session, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}

	s := &session{preset: preset}
	if err := s.openLogger(); err != nil {
		return nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		s.logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}
	s.store = store

	ponpon.SetConfigPath(flagConfig)
	ponpon.SetDifficultyPreset(preset)
	ponpon.SetStore(store)
	ponpon.SetLogger(s.logger)

	return s, nil
}

// openLogger creates the file logger. The TUI owns the terminal, so log
// lines never go to stdout or stderr while a round runs.
func (s *session) openLogger() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	path, err := expandHome(flagLogFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	s.logFile = f
	s.logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "ponpon",
		Level:           level,
	})
	return nil
}

// Close releases the store and the log file.
func (s *session) Close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("could not close scores database", "error", err)
		}
	}
	if s.logFile != nil {
		//nolint:errcheck // Nothing left to report to
		s.logFile.Close()
	}
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// runtimeConfig reads the terminal size and builds the runtime config.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// modeArg returns the mode named in args, or the classic mode.
func modeArg(args []string) (string, error) {
	gameID := string(ponpon.ModeClassic)
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown mode %q, run 'ponpon list' to see available modes", gameID)
	}
	return gameID, nil
}
