package translation

import (
	"context"

	"golang.org/x/time/rate"
)

type rateLimited struct {
	next    Translator
	limiter *rate.Limiter
}

// WithRateLimit caps calls to next at rps requests per second. A non-positive
// rps returns next unchanged.
func WithRateLimit(next Translator, rps float64) Translator {
	if rps <= 0 {
		return next
	}
	return &rateLimited{next: next, limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

func (r *rateLimited) Translate(ctx context.Context, word, source, target string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return r.next.Translate(ctx, word, source, target)
}
