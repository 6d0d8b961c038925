package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS portfolio_slots (
	slot       TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// SQLiteStorage keeps slots in a single-file database for deployments
// without Postgres.
type SQLiteStorage struct {
	db     *sql.DB
	logger logger.Logger
}

// OpenSQLiteStorage opens (creating if needed) the database at path.
// ":memory:" gives a private in-memory database.
func OpenSQLiteStorage(ctx context.Context, path string, log logger.Logger) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// one writer; also keeps a ":memory:" database alive across calls
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}
	log.Info("Open SQLite successfully.", zap.String("path", path))
	return &SQLiteStorage{db: db, logger: log}, nil
}

func (s *SQLiteStorage) Get(ctx context.Context, slot string) (string, error) {
	query, args, err := sqliteBuilder.Select("value").
		From(slotsTable).
		Where(sq.Eq{"slot": slot}).
		ToSql()
	if err != nil {
		return "", apperror.NewInternal("failed to build slot query", err)
	}

	var value string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", portfolio.ErrSlotNotFound
		}
		return "", apperror.NewInternal("failed to query slot", err)
	}
	return value, nil
}

func (s *SQLiteStorage) Set(ctx context.Context, slot string, value string) error {
	query, args, err := sqliteBuilder.Insert(slotsTable).
		Columns("slot", "value", "updated_at").
		Values(slot, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(slot) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build slot upsert", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Error("Failed to upsert slot", err, zap.String("slot", slot))
		return apperror.NewInternal("failed to upsert slot", err)
	}
	return nil
}

func (s *SQLiteStorage) Name() string { return "sqlite" }

func (s *SQLiteStorage) Close() error { return s.db.Close() }
