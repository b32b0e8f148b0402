package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteFile is the database file name inside the output directory
const SQLiteFile = "cipherpair.db"

const schema = `
CREATE TABLE IF NOT EXISTS translations (
	source_lang TEXT NOT NULL,
	target_lang TEXT NOT NULL,
	word        TEXT NOT NULL,
	translation TEXT NOT NULL,
	PRIMARY KEY (source_lang, target_lang, word)
);
CREATE TABLE IF NOT EXISTS matches (
	source_lang TEXT NOT NULL,
	target_lang TEXT NOT NULL,
	word        TEXT NOT NULL,
	translation TEXT NOT NULL,
	PRIMARY KEY (source_lang, target_lang, word)
);
CREATE TABLE IF NOT EXISTS match_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	source_lang TEXT NOT NULL,
	target_lang TEXT NOT NULL,
	line        TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS no_matches (
	source_lang TEXT NOT NULL,
	target_lang TEXT NOT NULL,
	word        TEXT NOT NULL,
	PRIMARY KEY (source_lang, target_lang, word)
);`

// SQLite keeps all pairs in a single database. Full saves run in one
// transaction, so a crash leaves the previous state intact.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database in dir
func NewSQLite(dir string) (*SQLite, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	dsn := "file:" + filepath.Join(dir, SQLiteFile) + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one writer, and the file is ours
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) LoadTranslations(ctx context.Context, p Pair) (map[string]string, error) {
	return s.loadMap(ctx, "translations", p)
}

func (s *SQLite) SaveTranslations(ctx context.Context, p Pair, translations map[string]string) error {
	return s.replaceMap(ctx, "translations", p, translations)
}

func (s *SQLite) LoadMatches(ctx context.Context, p Pair) (map[string]string, error) {
	return s.loadMap(ctx, "matches", p)
}

func (s *SQLite) SaveMatches(ctx context.Context, p Pair, matches map[string]string) error {
	return s.replaceMap(ctx, "matches", p, matches)
}

func (s *SQLite) AppendMatchLog(ctx context.Context, p Pair, source, translated string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO match_log (source_lang, target_lang, line) VALUES (?, ?, ?)`,
		p.Source, p.Target, source+": "+translated)
	if err != nil {
		return fmt.Errorf("failed to append match log: %w", err)
	}
	return nil
}

// MatchLog returns the audit lines of a pair in insertion order
func (s *SQLite) MatchLog(ctx context.Context, p Pair) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT line FROM match_log WHERE source_lang = ? AND target_lang = ? ORDER BY id`,
		p.Source, p.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to query match log: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, corrupt("match_log", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (s *SQLite) LoadNonMatches(ctx context.Context, p Pair) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word FROM no_matches WHERE source_lang = ? AND target_lang = ?`,
		p.Source, p.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to query no_matches: %w", err)
	}
	defer rows.Close()

	set := make(map[string]struct{})
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, corrupt("no_matches", err)
		}
		set[word] = struct{}{}
	}
	return set, rows.Err()
}

func (s *SQLite) AppendNonMatch(ctx context.Context, p Pair, source string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO no_matches (source_lang, target_lang, word) VALUES (?, ?, ?)`,
		p.Source, p.Target, source)
	if err != nil {
		return fmt.Errorf("failed to append non-match: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// table is always one of our constant table names, never user input
func (s *SQLite) loadMap(ctx context.Context, table string, p Pair) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, translation FROM `+table+` WHERE source_lang = ? AND target_lang = ?`,
		p.Source, p.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	m := make(map[string]string)
	for rows.Next() {
		var word, translation string
		if err := rows.Scan(&word, &translation); err != nil {
			return nil, corrupt(table, err)
		}
		m[word] = translation
	}
	return m, rows.Err()
}

func (s *SQLite) replaceMap(ctx context.Context, table string, p Pair, m map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM `+table+` WHERE source_lang = ? AND target_lang = ?`,
		p.Source, p.Target); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO `+table+` (source_lang, target_lang, word, translation) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert into %s: %w", table, err)
	}
	defer stmt.Close()

	for word, translation := range m {
		if _, err := stmt.ExecContext(ctx, p.Source, p.Target, word, translation); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table, err)
	}
	return nil
}
