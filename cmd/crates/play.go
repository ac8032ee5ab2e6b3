package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crates/internal/config"
	"github.com/vovakirdan/tui-crates/internal/core"
	"github.com/vovakirdan/tui-crates/internal/levels"
	"github.com/vovakirdan/tui-crates/internal/platform/tui"
	"github.com/vovakirdan/tui-crates/internal/scores"
	"github.com/vovakirdan/tui-crates/internal/session"
	"github.com/vovakirdan/tui-crates/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play, starting at the first unsolved level",
	Long: `Start the game at the first level without a recorded win.

Controls:
  Arrows / hjkl / wasd  Move
  Space                 Pause
  r                     Restart the level
  u / z                 Undo
  F5 / F9               Save / load the checkpoint
  Enter                 Next level (after a win)
  q / Esc               Quit

Examples:
  crates play
  crates play --levels levels.txt --fps 60`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		fatal(err)
	}

	logger, closeLog, err := openLogger(cfg.Paths.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	}
	defer closeLog()
	logger.Info("starting", "config", source)

	lvls, err := levels.Load(cfg.Paths.Levels)
	if err != nil {
		fatal(err)
	}

	book, err := scores.Open(cfg.Paths.Scores)
	if err != nil {
		fatal(err)
	}

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithDebug(flagDebug),
	}

	// Open solve history
	var store *storage.Store
	if cfg.Paths.DB != "" {
		store, err = storage.Open(cfg.Paths.DB)
		if err != nil {
			logger.Warn("solve history disabled", "err", err)
			fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
			// Continue without history - the score file still works
			store = nil
		}
	}
	if store != nil {
		opts = append(opts, session.WithRecorder(store))
	}

	sess, err := session.New(lvls, book, opts...)
	if err != nil {
		fatal(err)
	}

	// Get terminal size
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		def := core.DefaultConfig()
		width, height = def.ScreenW, def.ScreenH
	}

	runErr := tui.Run(sess, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Display.TickRate,
		},
		Glyphs:   cfg.Glyphs,
		CellW:    cfg.Display.CellWidth,
		ShowHelp: cfg.Display.ShowHelp,
		Theme:    themeFor(cfg.Display),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game stopped", "err", runErr)
		closeLog()
		fatal(runErr)
	}

	if sess.GameOver() {
		fmt.Println("Game over.")
	}
}

// openLogger returns a logger writing to path. With an empty path, or when
// the file cannot be opened, log output is discarded.
func openLogger(path string) (*log.Logger, func(), error) {
	noop := func() {}
	discard := log.NewWithOptions(io.Discard, log.Options{Prefix: "crates"})
	if path == "" {
		return discard, noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return discard, noop, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return discard, noop, err
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "crates",
	})
	closed := false
	return logger, func() {
		if !closed {
			closed = true
			f.Close()
		}
	}, nil
}

func themeFor(d config.DisplayConfig) tui.Theme {
	if d.Color {
		return tui.DefaultTheme()
	}
	return tui.MonochromeTheme()
}
