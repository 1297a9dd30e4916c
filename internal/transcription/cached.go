package transcription

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/JesusPQ15/Transcription-page/internal/cache"
	"github.com/JesusPQ15/Transcription-page/internal/errors"
	"github.com/JesusPQ15/Transcription-page/internal/logging"
)

// Cached serves repeated uploads of identical audio from a cache.
// Cache failures are logged and never fail a transcription.
type Cached struct {
	engine Engine
	store  cache.Store
	ttl    time.Duration
	logger *zap.Logger
}

// NewCached wraps engine with store
func NewCached(engine Engine, store cache.Store, ttl time.Duration, logger *zap.Logger) *Cached {
	return &Cached{
		engine: engine,
		store:  store,
		ttl:    ttl,
		logger: logging.OrNop(logger),
	}
}

// Name returns the wrapped engine's name
func (c *Cached) Name() string {
	return c.engine.Name()
}

// Transcribe returns the cached text for identical audio, or transcribes and caches it
func (c *Cached) Transcribe(ctx context.Context, a Audio) (string, error) {
	key := cache.Key(c.engine.Name(), a.Data)

	text, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		c.logger.Debug("transcription cache hit", zap.String("file", a.Filename))
		return text, nil
	case !errors.Is(err, errors.ErrCacheMiss):
		c.logger.Warn("transcription cache read failed", zap.Error(err))
	}

	text, err = c.engine.Transcribe(ctx, a)
	if err != nil {
		return "", err
	}

	if err := c.store.Set(ctx, key, text, c.ttl); err != nil {
		c.logger.Warn("transcription cache write failed", zap.Error(err))
	}

	return text, nil
}
