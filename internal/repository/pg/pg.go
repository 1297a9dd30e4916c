package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/JesusPQ15/Transcription-page/internal/errors"
	"github.com/JesusPQ15/Transcription-page/internal/model"
	"github.com/JesusPQ15/Transcription-page/internal/repository"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions (
	id            BIGSERIAL PRIMARY KEY,
	request_id    TEXT        NOT NULL DEFAULT '',
	filename      TEXT        NOT NULL,
	engine        TEXT        NOT NULL,
	size_bytes    BIGINT      NOT NULL DEFAULT 0,
	text          TEXT        NOT NULL DEFAULT '',
	error_message TEXT        NOT NULL DEFAULT '',
	archive_key   TEXT        NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL
);`

var _ repository.Repository = (*PostgresDB)(nil)

// PostgresDB is the postgres history store
type PostgresDB struct {
	db *sql.DB
}

// Open connects to dsn and creates the table
func Open(ctx context.Context, dsn string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	p := New(db)
	if err := p.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return p, nil
}

// New wraps an existing connection
func New(db *sql.DB) *PostgresDB {
	return &PostgresDB{db: db}
}

// Migrate creates the transcriptions table
func (p *PostgresDB) Migrate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Close closes the connection
func (p *PostgresDB) Close() error {
	return p.db.Close()
}

// Save inserts t and returns its id
func (p *PostgresDB) Save(ctx context.Context, t *model.Transcription) (int64, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	const insertSQL = `
		INSERT INTO transcriptions (request_id, filename, engine, size_bytes, text, error_message, archive_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := p.db.QueryRowContext(ctx, insertSQL,
		t.RequestID, t.Filename, t.Engine, t.SizeBytes, t.Text, t.Error, t.ArchiveKey, t.CreatedAt).Scan(&id)
	if err != nil {
		return 0, errors.Mark(fmt.Errorf("insert transcription: %w", err), errors.ErrInsertFailed)
	}
	t.ID = id
	return id, nil
}

// List returns the newest records first
func (p *PostgresDB) List(ctx context.Context, limit int) ([]model.Transcription, error) {
	const query = `
		SELECT id, request_id, filename, engine, size_bytes, text, error_message, archive_key, created_at
		FROM transcriptions
		ORDER BY id DESC
		LIMIT $1`

	rows, err := p.db.QueryContext(ctx, query, repository.NormalizeLimit(limit))
	if err != nil {
		return nil, errors.Mark(fmt.Errorf("query transcriptions: %w", err), errors.ErrQueryFailed)
	}
	defer rows.Close()

	var transcriptions []model.Transcription
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
	if transcriptions == nil {
		transcriptions = []model.Transcription{}
	}
	return transcriptions, nil
}
