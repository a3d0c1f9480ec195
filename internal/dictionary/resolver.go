package dictionary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/meowdict/internal/dictionary/moedict"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=resolver.go -destination=../mocks/dictionary/mock_resolver.go -package=mock_dictionary

type Lookuper interface {
	Lookup(ctx context.Context, term string) (moedict.Entry, error)
	ReverseLookup(ctx context.Context, description string) ([]ReverseMatch, error)
}

type DatasetLoader interface {
	Jyutping(ctx context.Context) (JyutpingTable, error)
	Index(ctx context.Context) ([]string, error)
}

// Resolution is the outcome for one term of a batch.
type Resolution[T any] struct {
	Term  string
	Value T
	Err   error
}

// Batch holds one Resolution per input term, in input order.
type Batch[T any] []Resolution[T]

// Values returns every value of the batch, or the error of the first failed term.
func (batch Batch[T]) Values() ([]T, error) {
	values := make([]T, 0, len(batch))
	for _, resolution := range batch {
		if resolution.Err != nil {
			return nil, resolution.Err
		}
		values = append(values, resolution.Value)
	}
	return values, nil
}

// Record is one element of the JSON export.
type Record struct {
	moedict.Entry
	Jyutping []string `json:"jyutping,omitempty"`
}

// ReverseResult holds the candidate words of one description.
type ReverseResult struct {
	Description string
	Matches     []ReverseMatch
}

// Resolver resolves a list of terms concurrently and keeps the input order.
type Resolver struct {
	lookuper    Lookuper
	datasets    DatasetLoader
	sampler     *Sampler
	concurrency int
}

func NewResolver(lookuper Lookuper, datasets DatasetLoader, concurrency int) *Resolver {
	return &Resolver{
		lookuper:    lookuper,
		datasets:    datasets,
		sampler:     NewSampler(),
		concurrency: concurrency,
	}
}

// fanOut resolves every term in its own goroutine and waits for all of them.
// A failure never cancels its siblings.
func fanOut[T any](
	ctx context.Context,
	terms []string,
	limit int,
	resolve func(context.Context, string) (T, error),
) Batch[T] {
	batch := make(Batch[T], len(terms))
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, term := range terms {
		i, term := i, term
		g.Go(func() error {
			value, err := resolve(ctx, term)
			if err != nil {
				slog.Default().Debug("Failed to resolve a term", "term", term, "error", err)
			}
			batch[i] = Resolution[T]{Term: term, Value: value, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return batch
}

// Lookup resolves every term against the dictionary.
func (r *Resolver) Lookup(ctx context.Context, terms []string) Batch[moedict.Entry] {
	return fanOut(ctx, terms, r.concurrency, r.lookuper.Lookup)
}

// Entries resolves every term and fails if any of them fails.
func (r *Resolver) Entries(ctx context.Context, terms []string) ([]moedict.Entry, error) {
	entries, err := r.Lookup(ctx, terms).Values()
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Jyutping resolves the Jyutping readings of every term. Only a failure to load the
// Jyutping table fails the whole call; a missing term fails on its own.
func (r *Resolver) Jyutping(ctx context.Context, terms []string) (Batch[[]string], error) {
	table, err := r.datasets.Jyutping(ctx)
	if err != nil {
		return nil, fmt.Errorf("datasets.Jyutping > %w", err)
	}
	return lo.Map(terms, func(term string, _ int) Resolution[[]string] {
		readings, err := table.Lookup(term)
		return Resolution[[]string]{Term: term, Value: readings, Err: err}
	}), nil
}

// Export resolves every term for the JSON output. Missing Jyutping readings leave
// the field out instead of failing the export.
func (r *Resolver) Export(ctx context.Context, terms []string) ([]Record, error) {
	table, err := r.datasets.Jyutping(ctx)
	if err != nil {
		slog.Default().Warn("Export without jyutping", "error", err)
	}
	entries, err := r.Entries(ctx, terms)
	if err != nil {
		return nil, err
	}

	return lo.Map(entries, func(entry moedict.Entry, i int) Record {
		record := Record{Entry: entry}
		if table == nil {
			return record
		}
		readings, err := table.Lookup(terms[i])
		if err != nil {
			slog.Default().Debug("Export without jyutping", "term", terms[i], "error", err)
			return record
		}
		record.Jyutping = readings
		return record
	}), nil
}

// Random picks terms from the index, one per filter or a single one without filters,
// and resolves them.
func (r *Resolver) Random(ctx context.Context, filters []string) ([]moedict.Entry, error) {
	index, err := r.datasets.Index(ctx)
	if err != nil {
		return nil, fmt.Errorf("datasets.Index > %w", err)
	}
	terms, err := r.sampler.Sample(index, filters)
	if err != nil {
		return nil, fmt.Errorf("sampler.Sample > %w", err)
	}
	return r.Entries(ctx, terms)
}

// Reverse finds candidate words for every description.
func (r *Resolver) Reverse(ctx context.Context, descriptions []string) ([]ReverseResult, error) {
	matches, err := fanOut(ctx, descriptions, r.concurrency, r.lookuper.ReverseLookup).Values()
	if err != nil {
		return nil, err
	}
	return lo.Map(matches, func(m []ReverseMatch, i int) ReverseResult {
		return ReverseResult{Description: descriptions[i], Matches: m}
	}), nil
}
