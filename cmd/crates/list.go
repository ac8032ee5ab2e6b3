package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crates/internal/levels"
	"github.com/vovakirdan/tui-crates/internal/scores"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the levels and which ones are solved",
	Long:  `Shows every level of the configured level set with its size and first win.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
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

	fmt.Println("Levels:")
	fmt.Println()

	// Calculate column widths
	maxTitleLen := 5 // "Title" header
	for _, l := range lvls {
		if len(l.Title) > maxTitleLen {
			maxTitleLen = len(l.Title)
		}
	}

	// Print header
	fmt.Printf("  %-3s  %-4s  %-*s  %-7s  %-6s  %s\n", "", "#", maxTitleLen, "Title", "Size", "Crates", "First win")
	fmt.Printf("  %-3s  %-4s  %-*s  %-7s  %-6s  %s\n", "", "-", maxTitleLen, "-----", "----", "------", "---------")

	for i, l := range lvls {
		mark, first := "[ ]", "-"
		if r, ok := book.Get(i); ok {
			mark = "[x]"
			first = formatRecord(r)
		}
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-3s  %-4d  %-*s  %-7s  %-6d  %s\n", mark, l.Number, maxTitleLen, l.Title, size, l.Crates, first)
	}

	fmt.Println()
	next := book.FirstUnsolved(len(lvls))
	if next == len(lvls) {
		fmt.Printf("All %d levels solved.\n", len(lvls))
		return
	}
	fmt.Printf("Run 'crates play' to continue at level %d.\n", next+1)
}
