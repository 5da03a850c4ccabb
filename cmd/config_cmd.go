// Package cmd implements the habitrack CLI commands.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/habitrack/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var flagForce bool

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configPath()
	if config.Exists(path) && !flagForce {
		return errors.New("config file already exists at " + path + " (use --force to overwrite)")
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Wrote %s\n", path)
	return nil
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := configPath()
	fmt.Printf("  Config file: %s\n", path)
	if config.Exists(path) {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.GoalsFile != "" {
		fmt.Printf("    Goals file:     %s\n", cfg.General.GoalsFile)
	} else {
		fmt.Println("    Goals file:     none (prompt for goals)")
	}
	fmt.Printf("    Journal:        %v\n", cfg.General.Journal)
	fmt.Printf("    Log level:      %s\n", cfg.General.LogLevel)
	fmt.Println()

	fmt.Println("  [Export]")
	fmt.Printf("    Workbook:       %s\n", config.OutputPath(cfg))
	fmt.Printf("    Image dir:      %s\n", config.ImageDir(cfg))
	fmt.Printf("    Min block rows: %d\n", cfg.Export.MinBlockRows)
	fmt.Println()

	fmt.Println("  [Chart]")
	fmt.Printf("    Size:           %dx%d\n", cfg.Chart.Width, cfg.Chart.Height)
	fmt.Printf("    Colors:         %s / %s\n", cfg.Chart.PassColor, cfg.Chart.FailColor)
	fmt.Println()

	fmt.Println("  [Store]")
	fmt.Printf("    Journal db:     %s\n", config.StorePath(cfg))
	return nil
}
