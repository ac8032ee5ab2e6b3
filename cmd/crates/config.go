package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crates/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration crates would run with, after command-line
overrides, as YAML. With --defaults the built-in configuration file is
printed instead, ready to be saved as ~/.crates/config.yaml.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default configuration")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, source, err := loadConfig(cmd)
	if err != nil {
		fatal(err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data)
}
