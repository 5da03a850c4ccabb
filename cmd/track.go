package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/habitrack/internal/chart"
	"github.com/theirongolddev/habitrack/internal/cli"
	"github.com/theirongolddev/habitrack/internal/config"
	"github.com/theirongolddev/habitrack/internal/export"
	"github.com/theirongolddev/habitrack/internal/goalfile"
	"github.com/theirongolddev/habitrack/internal/logger"
	"github.com/theirongolddev/habitrack/internal/model"
	"github.com/theirongolddev/habitrack/internal/pipeline"
	"github.com/theirongolddev/habitrack/internal/prompt"
	"github.com/theirongolddev/habitrack/internal/store"
)

// trackRun is one tracking session: collect goals, track one day, echo it,
// export the workbook and optionally journal it.
type trackRun struct {
	cfg       config.Config
	log       *logger.Console
	prompter  prompt.Prompter
	out       io.Writer
	charts    chart.Renderer
	now       func() time.Time
	saveGoals string // write prompted goals here
	date      string // skips the date prompt when set
}

func runTrack(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	run := trackRun{
		cfg:       cfg,
		log:       newLogger(cfg),
		prompter:  prompt.ForTerminal(os.Stdin, os.Stdout, flagPlain, flagAccessible),
		out:       cmd.OutOrStdout(),
		charts:    chart.NewGoChart(cfg.Chart.Width, cfg.Chart.Height),
		now:       time.Now,
		saveGoals: flagSaveGoals,
		date:      flagDate,
	}
	return run.run()
}

func (r *trackRun) run() error {
	goals, err := r.collectGoals()
	if err != nil {
		return err
	}
	fmt.Fprint(r.out, cli.RenderGoals(goals))

	date, err := r.trackingDate()
	if err != nil {
		return err
	}

	progress, err := prompt.Track(r.prompter, goals, date)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out)
	if err := cli.RenderProgressJSON(r.out, progress); err != nil {
		return err
	}

	doRecs, doNotRecs := pipeline.Flatten(progress)
	exp := export.New(export.Options{
		OutputPath:   config.OutputPath(r.cfg),
		ImageDir:     config.ImageDir(r.cfg),
		MinBlockRows: r.cfg.Export.MinBlockRows,
		PassColor:    r.cfg.Chart.PassColor,
		FailColor:    r.cfg.Chart.FailColor,
	}, r.charts, r.log)

	res, err := exp.Export(goals, doRecs, doNotRecs)
	if err != nil {
		return fmt.Errorf("exporting workbook: %w", err)
	}

	if len(res.Tallies) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, cli.RenderTitle("PROGRESS  "+progress.Date))
		overall := pipeline.Summarize("All goals", res.Tallies)
		fmt.Fprint(r.out, cli.RenderTallies(res.Tallies, overall))
		fmt.Fprintf(r.out, "  Overall %s\n", cli.RenderProgressBar(overall.TotalProgress(),
			overall.TotalProgress()+overall.MissedProgress(), 20))
	}

	if r.cfg.General.Journal {
		return r.journal(progress, res.Path)
	}
	return nil
}

func (r *trackRun) collectGoals() ([]model.Goal, error) {
	if path := r.cfg.General.GoalsFile; path != "" {
		goals, err := goalfile.Load(path)
		if err != nil {
			return nil, err
		}
		r.log.Infof("Loaded %d goals (%d activities) from %s", len(goals), activityCount(goals), path)
		return goals, nil
	}

	goals, err := prompt.InputGoals(r.prompter)
	if err != nil {
		return nil, err
	}
	if r.saveGoals != "" {
		if err := goalfile.Save(r.saveGoals, goals); err != nil {
			return nil, fmt.Errorf("saving goals: %w", err)
		}
		r.log.Infof("Saved %d goals (%d activities) to %s", len(goals), activityCount(goals), r.saveGoals)
	}
	return goals, nil
}

func (r *trackRun) trackingDate() (string, error) {
	if r.date != "" {
		return prompt.ParseDate(r.date, r.now())
	}
	return prompt.PromptDate(r.prompter, r.now())
}

func (r *trackRun) journal(progress model.GoalProgress, workbook string) error {
	j, err := store.Open(config.StorePath(r.cfg))
	if err != nil {
		return err
	}
	defer j.Close()

	id, err := j.SaveSession(progress, workbook)
	if err != nil {
		return fmt.Errorf("journaling session: %w", err)
	}
	r.log.Infof("Journaled session %s", id)
	return nil
}

func activityCount(goals []model.Goal) int {
	n := 0
	for _, g := range goals {
		n += g.ActivityCount()
	}
	return n
}
