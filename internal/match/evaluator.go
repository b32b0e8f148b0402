package match

import (
	"context"

	"go.uber.org/zap"

	"codeberg.org/snonux/cipherpair/internal/batch"
	"codeberg.org/snonux/cipherpair/internal/fingerprint"
)

// Evaluator classifies translated pairs against the candidate sets
type Evaluator struct {
	indexes fingerprint.Indexes
	logger  *zap.Logger
}

// NewEvaluator creates an evaluator over the loaded candidate sets
func NewEvaluator(indexes fingerprint.Indexes, logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{indexes: indexes, logger: logger}
}

// IsMatch reports whether source is a candidate in the source language and
// translated is a candidate in the target language
func (e *Evaluator) IsMatch(source, translated, sourceLang, targetLang string) bool {
	return e.indexes[sourceLang].Contains(source) && e.indexes[targetLang].Contains(translated)
}

// Evaluate records a verdict for every pair whose source word has none yet
// and returns the matches found by this call. Replaying a batch is harmless:
// words with a verdict are skipped.
func (e *Evaluator) Evaluate(ctx context.Context, ledger *Ledger, pairs []batch.Pair) (map[string]string, error) {
	if err := ledger.Load(ctx); err != nil {
		return nil, err
	}

	pair := ledger.Pair()
	found := make(map[string]string)

	for _, p := range pairs {
		if ledger.Verdict(p.Source) != Undecided {
			continue
		}

		if e.IsMatch(p.Source, p.Translated, pair.Source, pair.Target) {
			if err := ledger.RecordMatch(ctx, p.Source, p.Translated); err != nil {
				return found, err
			}
			found[p.Source] = p.Translated
			e.logger.Info("match found",
				zap.Stringer("pair", pair),
				zap.String("word", p.Source),
				zap.String("translation", p.Translated))
			continue
		}

		if err := ledger.RecordNonMatch(ctx, p.Source); err != nil {
			return found, err
		}
	}

	if len(found) > 0 {
		e.logger.Debug("batch evaluated",
			zap.Stringer("pair", pair), zap.Int("pairs", len(pairs)), zap.Int("new_matches", len(found)))
	}
	return found, nil
}
