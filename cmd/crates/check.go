package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crates/internal/levels"
)

var flagShow bool

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a level file",
	Long: `Parse a level file and report every level it contains.
The first malformed level stops the check with a non-zero exit status.

Examples:
  crates check levels.txt
  crates check --show levels.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagShow, "show", false, "Print each level's layout")
}

func runCheck(cmd *cobra.Command, args []string) {
	lvls, err := levels.LoadFile(args[0])
	if err != nil {
		fatal(err)
	}

	fmt.Printf("%s: %d levels\n", args[0], len(lvls))
	fmt.Println()

	for _, l := range lvls {
		title := l.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("  %3d  %-24s  %3dx%-3d  crates %d, %d stored\n",
			l.Number, title, l.Width, l.Height, l.Crates, l.Stored)
		if flagShow {
			for _, row := range l.Rows() {
				fmt.Printf("       %s\n", row)
			}
			fmt.Println()
		}
	}
}
