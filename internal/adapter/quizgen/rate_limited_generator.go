package quizgen

import (
	"context"
	"fmt"
	"time"

	"notes-quizzer/internal/cache"
	"notes-quizzer/internal/domain"
	"notes-quizzer/internal/logger"

	"go.uber.org/zap"
)

// RateLimitedGenerator caps outbound generation calls per fixed window
// across all server instances sharing the cache. A call over budget fails
// with domain.ReasonRateLimited without reaching the inner generator.
type RateLimitedGenerator struct {
	inner  domain.QuestionGenerator
	cache  domain.Cache
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRateLimitedGenerator allows limit calls per window. window defaults to
// one minute.
func NewRateLimitedGenerator(inner domain.QuestionGenerator, c domain.Cache, limit int, window time.Duration) (*RateLimitedGenerator, error) {
	if inner == nil {
		return nil, fmt.Errorf("inner generator cannot be nil")
	}
	if c == nil {
		return nil, fmt.Errorf("cache instance cannot be nil for RateLimitedGenerator")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", limit)
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimitedGenerator{
		inner:  inner,
		cache:  c,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}, nil
}

func (g *RateLimitedGenerator) windowKey() string {
	bucket := g.now().UnixNano() / int64(g.window)
	return cache.RateLimitKey("quizgen", bucket)
}

// GenerateQuestions counts the call against the current window. When the
// cache is unavailable the call goes through.
func (g *RateLimitedGenerator) GenerateQuestions(ctx context.Context, req domain.GenerationRequest) ([]string, error) {
	key := g.windowKey()

	count, err := g.cache.Incr(ctx, key)
	if err != nil {
		logger.Get().Warn("Rate limit counter unavailable, allowing call", zap.String("key", key), zap.Error(err))
		return g.inner.GenerateQuestions(ctx, req)
	}
	if count == 1 {
		if err := g.cache.Expire(ctx, key, 2*g.window); err != nil {
			logger.Get().Warn("Failed to set rate limit counter expiry", zap.String("key", key), zap.Error(err))
		}
	}
	if count > g.limit {
		logger.Get().Warn("Question generation rate limit exceeded",
			zap.Int64("count", count),
			zap.Int64("limit", g.limit))
		return nil, domain.NewGenerationError(domain.ReasonRateLimited,
			fmt.Errorf("limit of %d calls per %s exceeded", g.limit, g.window))
	}
	return g.inner.GenerateQuestions(ctx, req)
}

var _ domain.QuestionGenerator = (*RateLimitedGenerator)(nil)
