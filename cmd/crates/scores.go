package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crates/internal/levels"
	"github.com/vovakirdan/tui-crates/internal/platform/tui"
	"github.com/vovakirdan/tui-crates/internal/scores"
	"github.com/vovakirdan/tui-crates/internal/session"
	"github.com/vovakirdan/tui-crates/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show first wins and the solve history",
	Long: `Display the first win recorded for each level, together with the
number of solves and the best result kept in the history database.

When stdout is a terminal an interactive scoreboard is shown instead;
use --plain to force the text report.

Examples:
  crates scores
  crates scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text report instead of the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		fatal(err)
	}

	lvls, err := levels.Load(cfg.Paths.Levels)
	if err != nil {
		fatal(err)
	}
	book, err := scores.Open(cfg.Paths.Scores)
	if err != nil {
		fatal(err)
	}

	// Open solve history
	var store *storage.Store
	if cfg.Paths.DB != "" {
		store, err = storage.Open(cfg.Paths.DB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
			store = nil
		}
	}
	if store != nil {
		defer store.Close()
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && store != nil && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(scoreboardLevels(lvls, book), store, width, height); err != nil {
			store.Close()
			fatal(err)
		}
		return
	}

	printScores(lvls, book, store)
}

func scoreboardLevels(lvls []levels.Level, book *scores.Book) []tui.ScoreboardLevel {
	out := make([]tui.ScoreboardLevel, len(lvls))
	for i, l := range lvls {
		out[i] = tui.ScoreboardLevel{Index: i, Title: l.Title}
		if r, ok := book.Get(i); ok {
			out[i].First = &r
		}
	}
	return out
}

func printScores(lvls []levels.Level, book *scores.Book, store *storage.Store) {
	var stats map[int]*storage.LevelStats
	if store != nil {
		var err error
		stats, err = store.Stats()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	fmt.Printf("Scores - %d of %d levels solved\n", book.Len(), len(lvls))
	fmt.Println()

	if book.Len() == 0 && len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'crates' to set the first score!")
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-30s  %-6s  %-10s  %s\n", "Level", "First win", "Solves", "Best", "Last solved")
	fmt.Printf("  %-5s  %-30s  %-6s  %-10s  %s\n", "-----", "---------", "------", "----", "-----------")

	for i, l := range lvls {
		first := "-"
		if r, ok := book.Get(i); ok {
			first = formatRecord(r)
		}
		solves, best, last := "-", "-", "-"
		if st, ok := stats[i]; ok {
			solves = fmt.Sprintf("%d", st.Solves)
			best = fmt.Sprintf("%dp/%dm", st.Best.Pushes, st.Best.Moves)
			if !st.LastSolved.IsZero() {
				last = st.LastSolved.Local().Format("2006-01-02 15:04")
			}
		}
		fmt.Printf("  %-5d  %-30s  %-6s  %-10s  %s\n", l.Number, first, solves, best, last)
	}
}

// formatRecord renders a score record the way the status bar shows counters.
func formatRecord(r scores.Record) string {
	return fmt.Sprintf("moves %04d pushes %04d %s", r.Moves, r.Pushes, session.FormatElapsed(r.Elapsed))
}
