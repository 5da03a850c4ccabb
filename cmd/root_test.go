package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/theirongolddev/habitrack/internal/chart"
	"github.com/theirongolddev/habitrack/internal/config"
	"github.com/theirongolddev/habitrack/internal/export"
	"github.com/theirongolddev/habitrack/internal/goalfile"
	"github.com/theirongolddev/habitrack/internal/logger"
	"github.com/theirongolddev/habitrack/internal/model"
	"github.com/theirongolddev/habitrack/internal/prompt"
	"github.com/theirongolddev/habitrack/internal/store"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig, flagOutput, flagImageDir, flagGoalsFile = "", "", "", ""
		flagJournal, flagForce = false, false
	})
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	resetFlags(t)
	t.Setenv(config.OutputEnv, "")
	dir := t.TempDir()
	flagConfig = filepath.Join(dir, "config.toml")
	data := "[general]\njournal = false\ngoals_file = \"file.toml\"\n\n[export]\noutput_path = \"/cfg/goals.xlsx\"\n"
	if err := os.WriteFile(flagConfig, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Export.OutputPath != "/cfg/goals.xlsx" || cfg.General.GoalsFile != "file.toml" {
		t.Fatalf("file values not loaded: %+v", cfg)
	}

	t.Setenv(config.OutputEnv, "/env/goals.xlsx")
	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if got := config.OutputPath(cfg); got != "/env/goals.xlsx" {
		t.Errorf("env OutputPath = %q, want env over file", got)
	}

	flagOutput = "/flag/goals.xlsx"
	flagGoalsFile = "flag.yaml"
	flagImageDir = "/flag/images"
	flagJournal = true

	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if got := config.OutputPath(cfg); got != "/flag/goals.xlsx" {
		t.Errorf("OutputPath = %q, want flag over env and file", got)
	}
	if cfg.General.GoalsFile != "flag.yaml" {
		t.Errorf("GoalsFile = %q", cfg.General.GoalsFile)
	}
	if cfg.Export.ImageDir != "/flag/images" {
		t.Errorf("ImageDir = %q", cfg.Export.ImageDir)
	}
	if !cfg.General.Journal {
		t.Error("Journal flag not applied")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"goals": false, "history": false, "config": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}

	sub := map[string]bool{}
	for _, c := range historyCmd.Commands() {
		sub[c.Name()] = true
	}
	if !sub["show"] || !sub["delete"] {
		t.Errorf("history subcommands = %v, want show and delete", sub)
	}
}

// newTrackRun builds a run that answers prompts from input and writes
// everything under dir.
func newTrackRun(t *testing.T, dir, input string) (*trackRun, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Export.OutputPath = filepath.Join(dir, "out", "goals.xlsx")
	cfg.Export.ImageDir = filepath.Join(dir, "images")
	cfg.Store.Path = filepath.Join(dir, "journal.db")

	var out bytes.Buffer
	return &trackRun{
		cfg:      cfg,
		log:      logger.Discard(),
		prompter: prompt.NewLine(strings.NewReader(input), &out),
		out:      &out,
		charts:   chart.NewGoChart(cfg.Chart.Width, cfg.Chart.Height),
		now:      func() time.Time { return time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC) },
	}, &out
}

func TestTrackRun_PromptedGoalsEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := strings.Join([]string{
		"1", "Exercise", "2", "Run", "Stretch", "1", "Skip gym", // goals
		"y", "n", "y", // answers
	}, "\n") + "\n"
	run, out := newTrackRun(t, dir, input)
	run.cfg.General.Journal = true
	run.saveGoals = filepath.Join(dir, "goals.yaml")
	run.date = "2025-06-01"

	if err := run.run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	text := out.String()
	for _, want := range []string{"How many goals do you have?", "Did you AVOID it? (y/n)", `"date": "2025-06-01"`, `"status": "✔️"`, `"do_not": [`} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(text, "Press Enter for") {
		t.Error("date prompt shown although a date was given")
	}

	f, err := excelize.OpenFile(run.cfg.Export.OutputPath)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()
	for ref, want := range map[string]string{"A1": "Exercise", "A3": "2025-06-01", "B4": "Stretch", "C4": model.SymbolFail, "E3": model.SymbolPass} {
		got, err := f.GetCellValue(export.TrackerSheet, ref)
		if err != nil || got != want {
			t.Errorf("Tracker!%s = %q, %v; want %q", ref, got, err, want)
		}
	}

	entries, err := os.ReadDir(run.cfg.Export.ImageDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("temporary images left behind: %d", len(entries))
	}

	goals, err := goalfile.Load(run.saveGoals)
	if err != nil {
		t.Fatalf("loading saved goals: %v", err)
	}
	if len(goals) != 1 || goals[0].ActivityCount() != 3 {
		t.Errorf("saved goals = %+v", goals)
	}

	j, err := store.Open(run.cfg.Store.Path)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()
	sessions, err := j.ListSessions(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 1 || sessions[0].Workbook != run.cfg.Export.OutputPath {
		t.Fatalf("sessions = %+v", sessions)
	}
	progress, err := j.LoadSession(sessions[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if progress.Date != "2025-06-01" || progress.Goals[0].Do[1].Status != model.StatusFail {
		t.Errorf("journaled progress = %+v", progress)
	}
}

func TestTrackRun_GoalsFileAndDatePrompt(t *testing.T) {
	dir := t.TempDir()
	goalsPath := filepath.Join(dir, "goals.toml")
	err := goalfile.Save(goalsPath, []model.Goal{{Name: "Sleep", DoNot: []string{"Phone in bed"}}})
	if err != nil {
		t.Fatal(err)
	}

	run, out := newTrackRun(t, dir, "\nn\n")
	run.cfg.General.GoalsFile = goalsPath

	if err := run.run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	text := out.String()
	if strings.Contains(text, "How many goals") {
		t.Error("goals were prompted although a goals file was configured")
	}
	if !strings.Contains(text, "Press Enter for 2025-06-03") || !strings.Contains(text, `"date": "2025-06-03"`) {
		t.Errorf("blank date did not default to today: %q", text)
	}
	if _, err := os.Stat(run.cfg.Export.OutputPath); err != nil {
		t.Errorf("workbook not written: %v", err)
	}
	if _, err := os.Stat(run.cfg.Store.Path); !os.IsNotExist(err) {
		t.Errorf("journal written without --journal: %v", err)
	}
}

func TestTrackRun_InvalidCountWritesNothing(t *testing.T) {
	dir := t.TempDir()
	run, _ := newTrackRun(t, dir, "two\n")

	err := run.run()
	if !errors.Is(err, prompt.ErrInvalidCount) {
		t.Fatalf("err = %v, want ErrInvalidCount", err)
	}
	if _, err := os.Stat(run.cfg.Export.OutputPath); !os.IsNotExist(err) {
		t.Errorf("workbook written after invalid input: %v", err)
	}
}

func TestConfigInit(t *testing.T) {
	resetFlags(t)
	flagConfig = filepath.Join(t.TempDir(), "habitrack", "config.toml")

	var out bytes.Buffer
	configInitCmd.SetOut(&out)
	if err := runConfigInit(configInitCmd, nil); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !config.Exists(flagConfig) {
		t.Fatal("config file not written")
	}
	if err := runConfigInit(configInitCmd, nil); err == nil {
		t.Error("second init should refuse to overwrite")
	}
	flagForce = true
	if err := runConfigInit(configInitCmd, nil); err != nil {
		t.Errorf("init --force: %v", err)
	}

	cfg, err := config.LoadFrom(flagConfig)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Export.MinBlockRows != 23 || cfg.Chart.PassColor != "#008000" {
		t.Errorf("written config = %+v", cfg)
	}
}

func TestHistoryDelete_ByShortID(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "journal.db")
	flagConfig = filepath.Join(dir, "config.toml")
	if err := os.WriteFile(flagConfig, []byte("[store]\npath = \""+filepath.ToSlash(dbPath)+"\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	j, err := store.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	id, err := j.SaveSession(model.GoalProgress{Date: "2025-06-01"}, "")
	if err != nil {
		t.Fatal(err)
	}
	_ = j.Close()

	var out bytes.Buffer
	historyDeleteCmd.SetOut(&out)
	if err := runHistoryDelete(historyDeleteCmd, []string{id[:8]}); err != nil {
		t.Fatalf("history delete: %v", err)
	}
	if !strings.Contains(out.String(), id) {
		t.Errorf("output = %q, want full id", out.String())
	}
	err = runHistoryDelete(historyDeleteCmd, []string{id[:8]})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}
