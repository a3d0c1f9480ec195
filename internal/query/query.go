// Package query runs one dictionary request from the command line or the console.
package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/at-ishikawa/meowdict/internal/dictionary"
	"github.com/at-ishikawa/meowdict/internal/dictionary/moedict"
	"github.com/at-ishikawa/meowdict/internal/render"
	"github.com/at-ishikawa/meowdict/internal/textconv"
)

// ErrNoTerms is returned when a mode other than random gets no term.
var ErrNoTerms = errors.New("no term is given")

type Request struct {
	Mode  Mode
	Terms []string
	// InputS2T converts the terms to Traditional Chinese before the lookup.
	InputS2T bool
	// ResultT2S converts the output to Simplified Chinese.
	ResultT2S bool
}

//go:generate mockgen -source=query.go -destination=../mocks/query/mock_query.go -package=mock_query

// Resolver is implemented by *dictionary.Resolver.
type Resolver interface {
	Entries(ctx context.Context, terms []string) ([]moedict.Entry, error)
	Jyutping(ctx context.Context, terms []string) (dictionary.Batch[[]string], error)
	Export(ctx context.Context, terms []string) ([]dictionary.Record, error)
	Random(ctx context.Context, filters []string) ([]moedict.Entry, error)
	Reverse(ctx context.Context, descriptions []string) ([]dictionary.ReverseResult, error)
}

var _ Resolver = (*dictionary.Resolver)(nil)

type Executor struct {
	resolver Resolver
	width    int
	noColor  bool
}

func NewExecutor(resolver Resolver, width int, noColor bool) *Executor {
	return &Executor{
		resolver: resolver,
		width:    width,
		noColor:  noColor,
	}
}

// Execute resolves the terms of the request and renders the result.
func (e *Executor) Execute(ctx context.Context, request Request) (string, error) {
	terms := request.Terms
	if len(terms) == 0 && request.Mode != ModeRandom {
		return "", ErrNoTerms
	}
	if request.InputS2T {
		converted, err := textconv.S2TAll(terms)
		if err != nil {
			return "", fmt.Errorf("textconv.S2TAll > %w", err)
		}
		terms = converted
	}

	renderer := render.New(render.Options{
		Width:     e.width,
		NoColor:   e.noColor,
		ResultT2S: request.ResultT2S,
	})
	switch request.Mode {
	case ModeTranslation:
		entries, err := e.resolver.Entries(ctx, terms)
		if err != nil {
			return "", err
		}
		return renderer.Translation(entries)
	case ModeJyutping:
		batch, err := e.resolver.Jyutping(ctx, terms)
		if err != nil {
			return "", fmt.Errorf("resolver.Jyutping > %w", err)
		}
		return renderer.Jyutping(batch)
	case ModeJSON:
		records, err := e.resolver.Export(ctx, terms)
		if err != nil {
			return "", err
		}
		return renderer.JSON(records)
	case ModeRandom:
		entries, err := e.resolver.Random(ctx, terms)
		if err != nil {
			return "", fmt.Errorf("resolver.Random > %w", err)
		}
		return renderer.Dictionary(entries)
	case ModeReverse:
		results, err := e.resolver.Reverse(ctx, terms)
		if err != nil {
			return "", err
		}
		return renderer.Reverse(results)
	case ModeShow, "":
		entries, err := e.resolver.Entries(ctx, terms)
		if err != nil {
			return "", err
		}
		return renderer.Dictionary(entries)
	default:
		return "", fmt.Errorf("invalid mode: %s", request.Mode)
	}
}
