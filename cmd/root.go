package cmd

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/habitrack/internal/config"
	"github.com/theirongolddev/habitrack/internal/logger"
)

var (
	flagConfig     string
	flagOutput     string
	flagImageDir   string
	flagGoalsFile  string
	flagSaveGoals  string
	flagDate       string
	flagJournal    bool
	flagQuiet      bool
	flagNoColor    bool
	flagPlain      bool
	flagAccessible bool
)

var rootCmd = &cobra.Command{
	Use:           "habitrack",
	Short:         "Daily habit tracker with spreadsheet export",
	Long:          "Track your goals' do and do-not activities for a day and export the results to an .xlsx workbook with charts.",
	RunE:          runTrack,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.New(os.Stderr, "error").Errorf("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress status output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Workbook path (overrides config and HABITRACK_OUTPUT)")
	rootCmd.Flags().StringVar(&flagImageDir, "image-dir", "", "Directory for temporary chart images")
	rootCmd.Flags().StringVarP(&flagGoalsFile, "goals", "g", "", "Load goals from a .toml or .yaml file instead of prompting")
	rootCmd.Flags().StringVar(&flagSaveGoals, "save-goals", "", "Save the entered goals to a .toml or .yaml file")
	rootCmd.Flags().StringVar(&flagDate, "date", "", "Tracking date (YYYY-MM-DD) instead of prompting")
	rootCmd.Flags().BoolVar(&flagJournal, "journal", false, "Record the session in the SQLite journal")
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use plain line prompts even on a terminal")
	rootCmd.Flags().BoolVar(&flagAccessible, "accessible", false, "Use screen-reader friendly prompts")
}

// configPath returns the --config path or the default config file.
func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.Path()
}

// loadConfig reads the config file and applies flag overrides, which win over
// both the file and the environment.
func loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if flagConfig == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFrom(flagConfig)
	}
	if err != nil {
		return cfg, err
	}

	if flagOutput != "" {
		cfg.Export.OutputPath = flagOutput
	}
	if flagImageDir != "" {
		cfg.Export.ImageDir = flagImageDir
	}
	if flagGoalsFile != "" {
		cfg.General.GoalsFile = flagGoalsFile
	}
	if flagJournal {
		cfg.General.Journal = true
	}

	if flagNoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		color.NoColor = true
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *logger.Console {
	if flagQuiet {
		return logger.New(os.Stderr, "error")
	}
	return logger.New(os.Stderr, cfg.General.LogLevel)
}
