package processor

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"codeberg.org/snonux/cipherpair/internal/batch"
	"codeberg.org/snonux/cipherpair/internal/config"
	"codeberg.org/snonux/cipherpair/internal/fingerprint"
	"codeberg.org/snonux/cipherpair/internal/match"
	"codeberg.org/snonux/cipherpair/internal/observability"
	"codeberg.org/snonux/cipherpair/internal/store"
	"codeberg.org/snonux/cipherpair/internal/translation"
)

const tracerName = "codeberg.org/snonux/cipherpair/internal/processor"

// Sleeper pauses between batches
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type timerSleeper struct{}

// Sleep blocks for d or until ctx is done
func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Summary reports what one language pair run did
type Summary struct {
	Pair       store.Pair
	Words      int
	Cached     int
	Translated int
	Failed     int
	Flushes    int
	Matches    map[string]string
}

func (s *Summary) addMatches(found map[string]string) {
	for k, v := range found {
		s.Matches[k] = v
	}
}

// Processor is the batch translation controller
type Processor struct {
	cfg        config.Config
	translator translation.Translator
	backend    store.Backend
	indexes    fingerprint.Indexes
	evaluator  *match.Evaluator
	logger     *zap.Logger
	sleeper    Sleeper
	tracer     trace.Tracer
}

// Option customizes a Processor
type Option func(*Processor)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithSleeper replaces the pause between batches
func WithSleeper(s Sleeper) Option {
	return func(p *Processor) {
		if s != nil {
			p.sleeper = s
		}
	}
}

// New creates a processor for cfg. indexes must hold the candidate sets of
// every active language.
func New(cfg config.Config, translator translation.Translator, backend store.Backend, indexes fingerprint.Indexes, opts ...Option) *Processor {
	p := &Processor{
		cfg:        cfg,
		translator: translator,
		backend:    backend,
		indexes:    indexes,
		logger:     zap.NewNop(),
		sleeper:    timerSleeper{},
		tracer:     observability.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.evaluator = match.NewEvaluator(indexes, p.logger)
	return p
}

// Run processes every target language in turn. On error it returns the
// summaries of the pairs processed so far, including the failing one.
func (p *Processor) Run(ctx context.Context) ([]Summary, error) {
	var summaries []Summary
	for _, target := range p.cfg.Targets() {
		summary, err := p.ProcessPair(ctx, target)
		summaries = append(summaries, summary)
		if err != nil {
			return summaries, err
		}
	}
	return summaries, nil
}

// ProcessPair translates and evaluates the source words for one target
// language.
func (p *Processor) ProcessPair(ctx context.Context, target string) (Summary, error) {
	pair := store.Pair{Source: p.cfg.Source, Target: target}
	summary := Summary{Pair: pair, Matches: make(map[string]string)}

	ctx, span := p.tracer.Start(ctx, "ProcessPair", trace.WithAttributes(attribute.String("pair", pair.String())))
	defer span.End()

	log := p.logger.With(zap.Stringer("pair", pair))

	cache, err := translation.LoadCache(ctx, p.backend, pair)
	if err != nil {
		return summary, fail(span, err)
	}
	ledger := match.NewLedger(p.backend, pair)
	words := p.indexes[pair.Source].Words()
	summary.Words = len(words)
	acc := batch.New(p.cfg.BatchSize)

	log.Info("processing translations", zap.Int("words", len(words)), zap.Int("cached", cache.Len()))

	for i, word := range words {
		last := i == len(words)-1

		if cached, ok := cache.Get(word); ok {
			// catch-up for words translated by an earlier run
			summary.Cached++
			found, err := p.evaluator.Evaluate(ctx, ledger, batch.Single(word, cached))
			if err != nil {
				return summary, fail(span, err)
			}
			summary.addMatches(found)
		} else if err := p.translate(ctx, log, cache, acc, word, &summary); err != nil {
			return summary, fail(span, err)
		}

		if acc.Len() == 0 || !(acc.Full() || last) {
			continue
		}

		if err := p.flush(ctx, log, cache, ledger, acc, &summary); err != nil {
			return summary, fail(span, err)
		}
		if !last {
			if err := p.sleeper.Sleep(ctx, p.cfg.Delay); err != nil {
				return summary, fail(span, err)
			}
		}
	}

	log.Info("completed",
		zap.Int("cached", summary.Cached),
		zap.Int("translated", summary.Translated),
		zap.Int("failed", summary.Failed),
		zap.Int("new_matches", len(summary.Matches)))
	return summary, nil
}

// translate asks the provider for word. A provider failure leaves the word
// undecided and is not an error; only cancellation of ctx is.
func (p *Processor) translate(ctx context.Context, log *zap.Logger, cache *translation.Cache, acc *batch.Batch, word string, summary *Summary) error {
	pair := summary.Pair

	translated, err := p.translator.Translate(ctx, word, pair.Source, pair.Target)
	if err == nil {
		translated = fingerprint.Normalize(pair.Target, translated)
		if translated == "" {
			err = translation.ErrEmptyTranslation
		}
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		summary.Failed++
		log.Warn("translation failed, word left for a later run", zap.String("word", word), zap.Error(err))
		return nil
	}

	cache.Add(word, translated)
	acc.Add(word, translated)
	summary.Translated++
	log.Debug("translated", zap.String("word", word), zap.String("translation", translated))
	return nil
}

// flush persists the full cache, then evaluates the batch. The order matters:
// a verdict is never recorded for a translation that is not yet durable.
func (p *Processor) flush(ctx context.Context, log *zap.Logger, cache *translation.Cache, ledger *match.Ledger, acc *batch.Batch, summary *Summary) error {
	ctx, span := p.tracer.Start(ctx, "flush", trace.WithAttributes(attribute.Int("batch.size", acc.Len())))
	defer span.End()

	if err := cache.Save(ctx); err != nil {
		return fail(span, err)
	}

	found, err := p.evaluator.Evaluate(ctx, ledger, acc.Pairs())
	if err != nil {
		return fail(span, err)
	}

	summary.Flushes++
	summary.addMatches(found)
	log.Info("batch flushed",
		zap.Int("batch", acc.Len()),
		zap.Int("cached_total", cache.Len()),
		zap.Int("new_matches", len(found)))
	acc.Reset()
	return nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
