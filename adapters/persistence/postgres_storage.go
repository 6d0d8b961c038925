package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

const slotsTable = "portfolio_slots"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresStorage struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresStorage(db *pgxpool.Pool, logger logger.Logger) portfolio.Storage {
	return &postgresStorage{db: db, logger: logger}
}

func (r *postgresStorage) Get(ctx context.Context, slot string) (string, error) {
	query, args, err := psql.Select("value").
		From(slotsTable).
		Where(sq.Eq{"slot": slot}).
		ToSql()
	if err != nil {
		return "", apperror.NewInternal("failed to build slot query", err)
	}

	var value string
	if err := r.db.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", portfolio.ErrSlotNotFound
		}
		return "", apperror.NewInternal("failed to query slot", err)
	}
	return value, nil
}

func (r *postgresStorage) Set(ctx context.Context, slot string, value string) error {
	query, args, err := psql.Insert(slotsTable).
		Columns("slot", "value", "updated_at").
		Values(slot, value, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (slot) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build slot upsert", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.logger.Error("Failed to upsert slot", err, zap.String("slot", slot))
		return apperror.NewInternal("failed to upsert slot", err)
	}
	return nil
}

func (r *postgresStorage) Name() string { return "postgres" }
