package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"abstralyze/internal/cache"
	"abstralyze/internal/llm"
	"abstralyze/internal/retry"
	"abstralyze/internal/splitter"
)

// Options controls a single analysis run.
type Options struct {
	Model         string
	Attempts      int
	Backoff       time.Duration
	Abbreviations []string
}

// Result pairs one sentence with its abstraction level.
type Result struct {
	Index    int    `json:"index"`
	Sentence string `json:"sentence"`
	Level    int    `json:"level"`
}

// Stats summarizes the levels of a run.
type Stats struct {
	Count int     `json:"count"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
	Mean  float64 `json:"mean"`
}

// Report is the aggregated outcome of analyzing one document.
type Report struct {
	RunID   uuid.UUID `json:"run_id"`
	Model   string    `json:"model"`
	Results []Result  `json:"results"`
	Stats   Stats     `json:"stats"`
}

const cacheTTL = 30 * time.Minute

// Analyzer runs the split → classify → aggregate pipeline.
type Analyzer struct {
	log   *slog.Logger
	llm   llm.Client
	cache cache.Cache
	opts  Options
}

func New(log *slog.Logger, client llm.Client, c cache.Cache, opts Options) *Analyzer {
	if opts.Attempts <= 0 {
		opts.Attempts = 1
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 200 * time.Millisecond
	}
	if c == nil {
		c = cache.NewNoOpCache()
	}
	return &Analyzer{log: log, llm: client, cache: c, opts: opts}
}

// Analyze splits text into sentences and classifies each one sequentially.
// A sentence that still fails after all retry attempts fails the whole run;
// the error names the sentence so nothing is dropped silently.
func (a *Analyzer) Analyze(ctx context.Context, text string) (Report, error) {
	rep := Report{
		RunID: uuid.New(),
		Model: a.opts.Model,
	}

	sentences := splitter.Split(text, splitter.Options{Abbreviations: a.opts.Abbreviations})
	a.log.Info("document split", "run_id", rep.RunID, "sentences", len(sentences))

	for i, sentence := range sentences {
		level, err := a.classify(ctx, sentence)
		if err != nil {
			return Report{}, fmt.Errorf("failed to classify sentence %d (%q): %w", i+1, preview(sentence), err)
		}
		rep.Results = append(rep.Results, Result{Index: i, Sentence: sentence, Level: level})
		a.log.Debug("sentence classified", "index", i, "level", level)
	}

	rep.Stats = summarize(rep.Results)
	return rep, nil
}

// classify consults the cache first, then calls the LLM with bounded retries
// and exponential backoff between attempts.
func (a *Analyzer) classify(ctx context.Context, sentence string) (int, error) {
	if level, found, err := a.cache.GetLevel(ctx, sentence); err != nil {
		a.log.Warn("cache lookup failed", "err", err)
	} else if found {
		return level, nil
	}

	var lastErr error
	for attempt := 0; attempt < a.opts.Attempts; attempt++ {
		level, err := a.llm.ClassifyAbstraction(ctx, sentence)
		if err == nil {
			if cerr := a.cache.SetLevel(ctx, sentence, level, cacheTTL); cerr != nil {
				a.log.Warn("cache store failed", "err", cerr)
			}
			return level, nil
		}
		lastErr = err
		if attempt == a.opts.Attempts-1 {
			break
		}
		a.log.Warn("classification attempt failed; retrying", "attempt", attempt+1, "err", err)
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(retry.ExponentialBackoff(attempt, a.opts.Backoff)):
		}
	}
	return 0, lastErr
}

func summarize(results []Result) Stats {
	s := Stats{Count: len(results)}
	if s.Count == 0 {
		return s
	}
	s.Min = results[0].Level
	s.Max = results[0].Level
	total := 0
	for _, r := range results {
		if r.Level < s.Min {
			s.Min = r.Level
		}
		if r.Level > s.Max {
			s.Max = r.Level
		}
		total += r.Level
	}
	s.Mean = float64(total) / float64(s.Count)
	return s
}

// preview truncates a sentence for error messages and logs.
func preview(sentence string) string {
	const max = 60
	runes := []rune(sentence)
	if len(runes) <= max {
		return sentence
	}
	return string(runes[:max]) + "..."
}
