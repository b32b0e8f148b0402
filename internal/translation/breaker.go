package translation

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// BreakerSettings configures the circuit breaker around a translator
type BreakerSettings struct {
	// ConsecutiveFailures trips the breaker
	ConsecutiveFailures uint32
	// Cooldown is how long the breaker stays open before probing again
	Cooldown time.Duration
}

// DefaultBreakerSettings returns the settings used by NewProvider
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{ConsecutiveFailures: 5, Cooldown: 30 * time.Second}
}

type breakerTranslator struct {
	next     Translator
	cb       *gobreaker.CircuitBreaker
	cooldown time.Duration
	logger   *zap.Logger
}

// WithBreaker backs off from next while it keeps failing. A call that finds
// the breaker open waits out the cooldown and then goes to the provider, so
// an open breaker slows the run down but never skips a word.
func WithBreaker(next Translator, s BreakerSettings, logger *zap.Logger) Translator {
	if logger == nil {
		logger = zap.NewNop()
	}
	// gobreaker reads a zero timeout as 60s; keep the wait and the breaker in step
	def := DefaultBreakerSettings()
	if s.Cooldown <= 0 {
		s.Cooldown = def.Cooldown
	}
	if s.ConsecutiveFailures == 0 {
		s.ConsecutiveFailures = def.ConsecutiveFailures
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "translator",
		MaxRequests: 1,
		Timeout:     s.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("translator breaker state changed",
				zap.String("from", from.String()), zap.String("to", to.String()))
		},
	})
	return &breakerTranslator{next: next, cb: cb, cooldown: s.Cooldown, logger: logger}
}

func (b *breakerTranslator) Translate(ctx context.Context, word, source, target string) (string, error) {
	for {
		out, err := b.cb.Execute(func() (interface{}, error) {
			return b.next.Translate(ctx, word, source, target)
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			b.logger.Info("translator breaker open, waiting", zap.String("word", word), zap.Duration("cooldown", b.cooldown))
			if err := wait(ctx, b.cooldown); err != nil {
				return "", err
			}
			continue
		}
		if err != nil {
			return "", err
		}
		return out.(string), nil
	}
}

// wait blocks for d or until ctx is done
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
