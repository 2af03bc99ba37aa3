package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	symbol TEXT NOT NULL,
	bankroll REAL NOT NULL,
	conviction INTEGER NOT NULL,
	gravity REAL NOT NULL,
	friction REAL NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL NOT NULL,
	tolerance TEXT NOT NULL,
	allocation_pct REAL NOT NULL,
	position_size REAL NOT NULL,
	shares INTEGER NOT NULL,
	price_change_pct REAL NOT NULL,
	potential_pl REAL NOT NULL,
	squeeze_score INTEGER NOT NULL,
	expected_alpha REAL NOT NULL,
	warnings INTEGER NOT NULL,
	top_severity TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_time ON runs(time);
`
