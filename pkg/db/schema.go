package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Documents: one OHSUMED record per medline key
CREATE TABLE IF NOT EXISTS documents (
    doc_id INTEGER PRIMARY KEY AUTOINCREMENT,
    doc_key TEXT NOT NULL UNIQUE,
    text TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Queries: topic number -> title plus description
CREATE TABLE IF NOT EXISTS queries (
    query_id INTEGER PRIMARY KEY AUTOINCREMENT,
    query_key TEXT NOT NULL UNIQUE,
    text TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Judgments: relevant documents per query.
-- No foreign keys: relevance files may name documents outside the loaded batch.
CREATE TABLE IF NOT EXISTS judgments (
    judgment_id INTEGER PRIMARY KEY AUTOINCREMENT,
    query_key TEXT NOT NULL,
    doc_key TEXT NOT NULL,
    relevance TEXT,
    UNIQUE(query_key, doc_key)
);

CREATE INDEX IF NOT EXISTS idx_judgments_query ON judgments(query_key);
CREATE INDEX IF NOT EXISTS idx_judgments_doc ON judgments(doc_key);

-- Summary runs: every summary produced from a stored document
CREATE TABLE IF NOT EXISTS summary_runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    doc_key TEXT NOT NULL,
    params TEXT NOT NULL,        -- JSON of the ranking parameters
    vocabulary TEXT NOT NULL,    -- JSON array of stems
    sentences TEXT NOT NULL,     -- JSON array of selected sentences
    iterations INTEGER DEFAULT 0,
    converged BOOLEAN DEFAULT 1,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (doc_key) REFERENCES documents(doc_key) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_summary_runs_doc ON summary_runs(doc_key);
CREATE INDEX IF NOT EXISTS idx_summary_runs_created ON summary_runs(created_at DESC);
`
