// Package store provides an optional SQLite journal of tracking sessions.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/theirongolddev/habitrack/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

var (
	// ErrNotFound is returned when a session ID is not in the journal.
	ErrNotFound = errors.New("session not found")
	// ErrAmbiguousID is returned when an ID prefix matches several sessions.
	ErrAmbiguousID = errors.New("session id prefix is ambiguous")
)

// Journal stores tracking sessions in SQLite.
type Journal struct {
	db  *sqlx.DB
	now func() time.Time
}

// SessionSummary is one journaled session with its pass/fail totals.
type SessionSummary struct {
	ID         string `db:"session_id"`
	Date       string `db:"date"`
	RecordedAt string `db:"recorded_at"`
	Workbook   string `db:"workbook"`
	Goals      int    `db:"goals"`
	Passed     int    `db:"passed"`
	Failed     int    `db:"failed"`
}

type resultRow struct {
	Goal     string `db:"goal"`
	Kind     string `db:"kind"`
	Activity string `db:"activity"`
	Passed   bool   `db:"passed"`
}

// Open opens or creates the journal database at the given path.
func Open(dbPath string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating journal dir: %w", err)
	}

	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Journal{db: db, now: time.Now}, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// SaveSession records a tracking session and returns its new ID.
func (j *Journal) SaveSession(p model.GoalProgress, workbook string) (string, error) {
	id := uuid.NewString()

	tx, err := j.db.Beginx()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO sessions (session_id, date, recorded_at, workbook)
		VALUES (?, ?, ?, ?)`,
		id, p.Date, j.now().UTC().Format(time.RFC3339), workbook)
	if err != nil {
		return "", fmt.Errorf("saving session: %w", err)
	}

	for i, g := range p.Goals {
		_, err := tx.Exec(`INSERT INTO session_goals (session_id, position, name)
			VALUES (?, ?, ?)`, id, i, g.Name)
		if err != nil {
			return "", fmt.Errorf("saving goal: %w", err)
		}
	}

	pos := 0
	insert := func(goal string, kind model.Kind, r model.ActivityResult) error {
		_, err := tx.Exec(`INSERT INTO activity_results
			(session_id, position, goal, kind, activity, passed)
			VALUES (?, ?, ?, ?, ?, ?)`,
			id, pos, goal, kind.String(), r.Activity, r.Status.Passed())
		pos++
		return err
	}

	for _, g := range p.Goals {
		for _, r := range g.Do {
			if err := insert(g.Name, model.KindDo, r); err != nil {
				return "", fmt.Errorf("saving result: %w", err)
			}
		}
		for _, r := range g.DoNot {
			if err := insert(g.Name, model.KindDoNot, r); err != nil {
				return "", fmt.Errorf("saving result: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// ListSessions returns the most recent sessions first. A limit of zero or
// less returns all of them.
func (j *Journal) ListSessions(limit int) ([]SessionSummary, error) {
	if limit <= 0 {
		limit = -1
	}

	var out []SessionSummary
	err := j.db.Select(&out, `SELECT
		s.session_id, s.date, s.recorded_at, s.workbook,
		(SELECT COUNT(*) FROM session_goals g WHERE g.session_id = s.session_id) AS goals,
		COALESCE(SUM(r.passed), 0) AS passed,
		COALESCE(SUM(1 - r.passed), 0) AS failed
		FROM sessions s
		LEFT JOIN activity_results r ON r.session_id = s.session_id
		GROUP BY s.session_id
		ORDER BY s.date DESC, s.recorded_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return out, nil
}

// LoadSession rebuilds a journaled session, preserving goal and activity order.
func (j *Journal) LoadSession(id string) (model.GoalProgress, error) {
	var p model.GoalProgress
	if err := j.db.Get(&p.Date, "SELECT date FROM sessions WHERE session_id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return p, err
	}

	var names []string
	err := j.db.Select(&names, `SELECT name FROM session_goals
		WHERE session_id = ? ORDER BY position`, id)
	if err != nil {
		return p, fmt.Errorf("loading goals: %w", err)
	}

	p.Goals = make([]model.GoalResult, 0, len(names))
	idx := make(map[string]int, len(names))
	goal := func(name string) int {
		if i, ok := idx[name]; ok {
			return i
		}
		idx[name] = len(p.Goals)
		p.Goals = append(p.Goals, model.GoalResult{
			Name:  name,
			Do:    []model.ActivityResult{},
			DoNot: []model.ActivityResult{},
		})
		return len(p.Goals) - 1
	}
	for _, name := range names {
		goal(name)
	}

	var rows []resultRow
	err = j.db.Select(&rows, `SELECT goal, kind, activity, passed
		FROM activity_results WHERE session_id = ? ORDER BY position`, id)
	if err != nil {
		return p, fmt.Errorf("loading results: %w", err)
	}

	for _, r := range rows {
		i := goal(r.Goal)
		res := model.ActivityResult{Activity: r.Activity, Status: model.StatusFromAnswer(r.Passed)}
		if r.Kind == model.KindDoNot.String() {
			p.Goals[i].DoNot = append(p.Goals[i].DoNot, res)
		} else {
			p.Goals[i].Do = append(p.Goals[i].Do, res)
		}
	}
	return p, nil
}

// DeleteSession removes a session and its results.
func (j *Journal) DeleteSession(id string) error {
	res, err := j.db.Exec("DELETE FROM sessions WHERE session_id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// SessionCount returns the number of journaled sessions.
func (j *Journal) SessionCount() (int, error) {
	var count int
	err := j.db.Get(&count, "SELECT COUNT(*) FROM sessions")
	return count, err
}

// ResolveID expands a session ID prefix, as shown by history listings, to
// the full ID.
func (j *Journal) ResolveID(prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("%w: empty id", ErrNotFound)
	}
	var ids []string
	err := j.db.Select(&ids, `SELECT session_id FROM sessions
		WHERE substr(session_id, 1, ?) = ? LIMIT 2`, len(prefix), prefix)
	if err != nil {
		return "", fmt.Errorf("resolving session id: %w", err)
	}
	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNotFound, prefix)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousID, prefix)
	}
}
