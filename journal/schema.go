package journal

const Schema = `
CREATE TABLE IF NOT EXISTS imports (
	import_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	source TEXT NOT NULL,
	kept INTEGER NOT NULL,
	dropped INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	import_id TEXT NOT NULL REFERENCES imports(import_id),
	time DATETIME NOT NULL,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	qty REAL NOT NULL,
	price REAL NOT NULL,
	pnl REAL NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	strategy TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '',
	buy_fill_id TEXT NOT NULL DEFAULT '',
	sell_fill_id TEXT NOT NULL DEFAULT '',
	image_url TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_trades_time ON trades(time);
CREATE INDEX IF NOT EXISTS idx_trades_import ON trades(import_id);
`
