package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS sessions (
    session_id           TEXT PRIMARY KEY,
    date                 TEXT NOT NULL,
    recorded_at          TEXT NOT NULL,
    workbook             TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS session_goals (
    session_id           TEXT NOT NULL REFERENCES sessions(session_id) ON DELETE CASCADE,
    position             INTEGER NOT NULL,
    name                 TEXT NOT NULL,
    PRIMARY KEY (session_id, position)
);

CREATE TABLE IF NOT EXISTS activity_results (
    session_id           TEXT NOT NULL REFERENCES sessions(session_id) ON DELETE CASCADE,
    position             INTEGER NOT NULL,
    goal                 TEXT NOT NULL,
    kind                 TEXT NOT NULL,
    activity             TEXT NOT NULL,
    passed               INTEGER NOT NULL,
    PRIMARY KEY (session_id, position)
);

CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date);
`
