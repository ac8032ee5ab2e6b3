// crates is a box-pushing puzzle game for the terminal.
//
// Usage:
//
//	crates                  - Resume at the first unsolved level
//	crates play             - Same as above
//	crates list             - List levels and which ones are solved
//	crates scores           - Show first wins and the solve history
//	crates check <file>     - Validate a level file
//	crates config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Config file (default: search ~/.crates, ./configs)
//	--levels <path>  - Level file (default: built-in levels)
//	--scores <path>  - Score file (default: ~/.crates/scores.txt)
//	--db <path>      - Solve history database (default: ~/.crates/history.db)
//	--fps <rate>     - Tick rate (default: 30)
//	--debug          - Start with the debug counter dump enabled
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crates/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagLevelsPath string
	flagScoresPath string
	flagDBPath     string
	flagFPS        int
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crates",
	Short: "Crates - push boxes onto targets in your terminal",
	Long: `Crates is a terminal Sokoban. Push every crate onto a target to
solve a level; your first win on each level is kept in the score file.

Available commands:
  play     - Play, starting at the first unsolved level
  list     - Show the levels and which ones are solved
  scores   - View first wins and the solve history
  check    - Validate a level file
  config   - Print the effective configuration

Examples:
  crates
  crates --levels ~/puzzles/microban.txt
  crates scores
  crates check levels.txt`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLevelsPath, "levels", "", "Path to level file (empty = built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", "", "Path to score file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solve history database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable the debug counter dump")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configuration file and applies the command-line
// overrides. Paths in the result are expanded.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}

	flags := cmd.Flags()
	if flags.Changed("levels") {
		cfg.Paths.Levels = flagLevelsPath
	}
	if flags.Changed("scores") {
		cfg.Paths.Scores = flagScoresPath
	}
	if flags.Changed("db") {
		cfg.Paths.DB = flagDBPath
	}
	if flags.Changed("fps") {
		cfg.Display.TickRate = flagFPS
	}
	cfg.Normalize()
	cfg.Paths = cfg.Paths.Resolved()
	return cfg, source, nil
}

// fatal prints err and exits with status 1.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
