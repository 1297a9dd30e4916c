package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/JesusPQ15/Transcription-page/internal/errors"
	"github.com/JesusPQ15/Transcription-page/internal/model"
	"github.com/JesusPQ15/Transcription-page/internal/repository"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	request_id    TEXT    NOT NULL DEFAULT '',
	filename      TEXT    NOT NULL,
	engine        TEXT    NOT NULL,
	size_bytes    INTEGER NOT NULL DEFAULT 0,
	text          TEXT    NOT NULL DEFAULT '',
	error_message TEXT    NOT NULL DEFAULT '',
	archive_key   TEXT    NOT NULL DEFAULT '',
	created_at    TIMESTAMP NOT NULL
);`

var _ repository.Repository = (*DB)(nil)

// DB is the sqlite history store
type DB struct {
	db *sql.DB
}

// Open opens (creating if needed) the database file at path
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := New(db)
	if err := s.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an existing connection
func New(db *sql.DB) *DB {
	return &DB{db: db}
}

// Migrate creates the transcriptions table
func (s *DB) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Close closes the connection
func (s *DB) Close() error {
	return s.db.Close()
}

// Save inserts t and returns its id. A zero CreatedAt is set to now.
func (s *DB) Save(ctx context.Context, t *model.Transcription) (int64, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	const insertSQL = `INSERT INTO transcriptions (request_id, filename, engine, size_bytes, text, error_message, archive_key, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`
	res, err := s.db.ExecContext(ctx, insertSQL,
		t.RequestID, t.Filename, t.Engine, t.SizeBytes, t.Text, t.Error, t.ArchiveKey, t.CreatedAt)
	if err != nil {
		return 0, errors.Mark(fmt.Errorf("insert transcription: %w", err), errors.ErrInsertFailed)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Mark(fmt.Errorf("last insert id: %w", err), errors.ErrInsertFailed)
	}
	t.ID = id
	return id, nil
}

// List returns the newest records first
func (s *DB) List(ctx context.Context, limit int) ([]model.Transcription, error) {
	const query = `
		SELECT id, request_id, filename, engine, size_bytes, text, error_message, archive_key, created_at
		FROM transcriptions
		ORDER BY id DESC
		LIMIT ?;`

	rows, err := s.db.QueryContext(ctx, query, repository.NormalizeLimit(limit))
	if err != nil {
		return nil, errors.Mark(fmt.Errorf("query transcriptions: %w", err), errors.ErrQueryFailed)
	}
	defer rows.Close()

	transcriptions := make([]model.Transcription, 0)
	for rows.Next() {
		var t model.Transcription
		if err := rows.Scan(&t.ID, &t.RequestID, &t.Filename, &t.Engine, &t.SizeBytes, &t.Text, &t.Error, &t.ArchiveKey, &t.CreatedAt); err != nil {
			return nil, errors.Mark(fmt.Errorf("db scan failed: %w", err), errors.ErrQueryFailed)
		}
		transcriptions = append(transcriptions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Mark(err, errors.ErrQueryFailed)
	}
	return transcriptions, nil
}
