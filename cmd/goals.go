package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/habitrack/internal/cli"
	"github.com/theirongolddev/habitrack/internal/goalfile"
)

var goalsCmd = &cobra.Command{
	Use:   "goals [file]",
	Short: "Validate and show a goals file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGoals,
}

func init() {
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.General.GoalsFile
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return errors.New("no goals file given and none configured")
	}

	goals, err := goalfile.Load(path)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("GOALS  %d in %s", len(goals), path)))
	fmt.Print(cli.RenderGoals(goals))
	return nil
}
