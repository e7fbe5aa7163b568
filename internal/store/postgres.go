package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore persists chat records in Postgres for deployments that
// already run one. Same contract as SQLiteStore.
type PostgresStore struct {
	db *sql.DB
}

// writeWait bounds how long a write may sit behind other writers before
// it fails instead of blocking the request indefinitely.
const writeWait = 10 * time.Second

// NewPostgres connects with the given DSN and ensures the schema exists.
func NewPostgres(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	s := &PostgresStore{db: db}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS chats (
			id BIGSERIAL PRIMARY KEY,
			session_name TEXT,
			question TEXT,
			answer TEXT
		)`)
	if err != nil {
		return fmt.Errorf("create chats table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Lookup(ctx context.Context, session, question string) (string, bool, error) {
	var answer string
	err := s.db.QueryRowContext(ctx,
		`SELECT answer FROM chats WHERE session_name = $1 AND question = $2 ORDER BY id LIMIT 1`,
		session, question).Scan(&answer)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup chat: %w", err)
	}
	return answer, true, nil
}

func (s *PostgresStore) Record(ctx context.Context, session, question, answer string) (ChatRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO chats (session_name, question, answer) VALUES ($1, $2, $3) RETURNING id`,
		session, question, answer).Scan(&id)
	if err != nil {
		return ChatRecord{}, fmt.Errorf("record chat: %w", err)
	}
	return ChatRecord{ID: id, Session: session, Question: question, Answer: answer}, nil
}

func (s *PostgresStore) ListSessions(ctx context.Context) ([]string, error) {
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

func (s *PostgresStore) History(ctx context.Context, session string) ([]Turn, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question, answer FROM chats WHERE session_name = $1 ORDER BY id`, session)
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

func (s *PostgresStore) Close() error { return s.db.Close() }
