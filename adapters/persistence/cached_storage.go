package persistence

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/internal/domain/portfolio"
	"github.com/khoahotran/portfolio/pkg/logger"
)

// CachedStorage reads through a fast front store and writes through to the
// durable back store first. Front failures are logged and never fail a call;
// the back store stays authoritative.
type CachedStorage struct {
	front  portfolio.Storage
	back   portfolio.Storage
	logger logger.Logger
}

func NewCachedStorage(front, back portfolio.Storage, log logger.Logger) *CachedStorage {
	return &CachedStorage{front: front, back: back, logger: log}
}

func (c *CachedStorage) Get(ctx context.Context, slot string) (string, error) {
	v, err := c.front.Get(ctx, slot)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, portfolio.ErrSlotNotFound) {
		c.logger.Warn("Cache read failed, falling back", zap.String("slot", slot), zap.Error(err))
	}

	v, err = c.back.Get(ctx, slot)
	if err != nil {
		return "", err
	}
	if err := c.front.Set(ctx, slot, v); err != nil {
		c.logger.Warn("Cache fill failed", zap.String("slot", slot), zap.Error(err))
	}
	return v, nil
}

func (c *CachedStorage) Set(ctx context.Context, slot string, value string) error {
	if err := c.back.Set(ctx, slot, value); err != nil {
		return err
	}
	if err := c.front.Set(ctx, slot, value); err != nil {
		c.logger.Warn("Cache write failed", zap.String("slot", slot), zap.Error(err))
	}
	return nil
}

func (c *CachedStorage) Name() string { return c.back.Name() + "+" + c.front.Name() }
