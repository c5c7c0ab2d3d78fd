package sqlite

// schema is applied on every open; statements are idempotent.
// Timeline entries are append-only: the triggers reject updates and deletes.
const schema = `
CREATE TABLE IF NOT EXISTS boards (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	owner_id   TEXT,
	version    INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS columns (
	id         TEXT PRIMARY KEY,
	board_id   TEXT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	color      TEXT NOT NULL DEFAULT '',
	position   INTEGER NOT NULL CHECK (position >= 0),
	is_initial INTEGER NOT NULL DEFAULT 0,
	is_final   INTEGER NOT NULL DEFAULT 0,
	outcome    TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_columns_board ON columns(board_id, position);
CREATE UNIQUE INDEX IF NOT EXISTS idx_columns_single_initial ON columns(board_id) WHERE is_initial = 1;

CREATE TABLE IF NOT EXISTS leads (
	id               TEXT PRIMARY KEY,
	agent_id         TEXT NOT NULL,
	name             TEXT NOT NULL,
	email            TEXT NOT NULL DEFAULT '',
	phone            TEXT NOT NULL DEFAULT '',
	priority         TEXT NOT NULL DEFAULT '',
	kanban_column_id TEXT REFERENCES columns(id) ON DELETE RESTRICT,
	created_at       TEXT NOT NULL,
	updated_at       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_leads_column ON leads(kanban_column_id);
CREATE INDEX IF NOT EXISTS idx_leads_agent ON leads(agent_id, created_at);

CREATE TABLE IF NOT EXISTS timeline_entries (
	seq         INTEGER PRIMARY KEY AUTOINCREMENT,
	id          TEXT NOT NULL UNIQUE,
	lead_id     TEXT NOT NULL REFERENCES leads(id),
	action      TEXT NOT NULL,
	description TEXT NOT NULL,
	metadata    TEXT NOT NULL DEFAULT '{}',
	actor_id    TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_timeline_lead ON timeline_entries(lead_id, created_at, seq);
CREATE INDEX IF NOT EXISTS idx_timeline_action ON timeline_entries(action, lead_id);

CREATE TRIGGER IF NOT EXISTS timeline_entries_immutable
BEFORE UPDATE ON timeline_entries
BEGIN
	SELECT RAISE(ABORT, 'timeline entries are immutable');
END;

CREATE TRIGGER IF NOT EXISTS timeline_entries_append_only
BEFORE DELETE ON timeline_entries
BEGIN
	SELECT RAISE(ABORT, 'timeline entries are append-only');
END;
`
