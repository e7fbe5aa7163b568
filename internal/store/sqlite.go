package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Register the modernc sqlite driver under the name "sqlite".
	_ "modernc.org/sqlite"
)

// SQLiteStore persists chat records in a local SQLite file. This is the
// default store: a single append-only table, no external service.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and ensures the
// schema exists. The DSN pragmas enable WAL so readers are not blocked
// by the writer, and bound the write-lock wait at 10s: a writer that
// cannot acquire the lock in time gets SQLITE_BUSY back as an error
// instead of queueing forever.
func NewSQLite(path string) (*SQLiteStore, error) {
	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(10000)" +
		"&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	// SQLite serializes writers itself; one writer connection avoids
	// needless SQLITE_BUSY churn under concurrent requests.
	db.SetMaxOpenConns(1)
	s := &SQLiteStore{db: db}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS chats (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_name TEXT,
			question TEXT,
			answer TEXT
		)`)
	if err != nil {
		return fmt.Errorf("create chats table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Lookup(ctx context.Context, session, question string) (string, bool, error) {
	var answer string
	err := s.db.QueryRowContext(ctx,
		`SELECT answer FROM chats WHERE session_name = ? AND question = ? ORDER BY id LIMIT 1`,
		session, question).Scan(&answer)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup chat: %w", err)
	}
	return answer, true, nil
}

func (s *SQLiteStore) Record(ctx context.Context, session, question, answer string) (ChatRecord, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO chats (session_name, question, answer) VALUES (?, ?, ?)`,
		session, question, answer)
	if err != nil {
		return ChatRecord{}, fmt.Errorf("record chat: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return ChatRecord{}, fmt.Errorf("record chat id: %w", err)
	}
	return ChatRecord{ID: id, Session: session, Question: question, Answer: answer}, nil
}

func (s *SQLiteStore) ListSessions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT session_name FROM chats`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()
	var sessions []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		sessions = append(sessions, name)
	}
	return sessions, rows.Err()
}

func (s *SQLiteStore) History(ctx context.Context, session string) ([]Turn, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question, answer FROM chats WHERE session_name = ? ORDER BY id`, session)
	if err != nil {
		return nil, fmt.Errorf("session history: %w", err)
	}
	defer rows.Close()
	var turns []Turn
	for rows.Next() {
		var question, answer string
		if err := rows.Scan(&question, &answer); err != nil {
			return nil, err
		}
		turns = append(turns,
			Turn{Sender: SenderUser, Text: question},
			Turn{Sender: SenderBot, Text: answer},
		)
	}
	return turns, rows.Err()
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
