package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/habitrack/internal/cli"
	"github.com/theirongolddev/habitrack/internal/config"
	"github.com/theirongolddev/habitrack/internal/pipeline"
	"github.com/theirongolddev/habitrack/internal/store"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled tracking sessions",
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show one journaled session",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete one journaled session",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "l", 20, "Number of sessions to list (0 for all)")
	historyCmd.AddCommand(historyShowCmd, historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func openJournal() (*store.Journal, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return store.Open(config.StorePath(cfg))
}

func runHistory(_ *cobra.Command, _ []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	total, err := j.SessionCount()
	if err != nil {
		return err
	}
	if total == 0 {
		fmt.Println("\n  No sessions journaled. Run with --journal to record one.")
		return nil
	}

	sessions, err := j.ListSessions(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("HISTORY  %d of %d sessions", len(sessions), total)))
	fmt.Print(cli.RenderSessions(sessions))
	return nil
}

func runHistoryShow(_ *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	id, err := j.ResolveID(args[0])
	if err != nil {
		return err
	}
	progress, err := j.LoadSession(id)
	if err != nil {
		return err
	}

	if err := cli.RenderProgressJSON(os.Stdout, progress); err != nil {
		return err
	}

	doRecs, doNotRecs := pipeline.Flatten(progress)
	tallies := pipeline.TallyAll(pipeline.GroupByGoal(pipeline.SessionOrder(progress), doRecs, doNotRecs))
	if len(tallies) > 0 {
		fmt.Print(cli.RenderTallies(tallies, pipeline.Summarize("All goals", tallies)))
	}
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	id, err := j.ResolveID(args[0])
	if err != nil {
		return err
	}
	if err := j.DeleteSession(id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Deleted session %s\n", id)
	return nil
}
