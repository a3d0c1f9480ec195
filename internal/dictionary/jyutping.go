package dictionary

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// JyutpingTable maps a character or a word to its Jyutping readings.
type JyutpingTable map[string][]string

type jyutpingWord struct {
	Word     string   `json:"word"`
	Jyutping []string `json:"jyutping"`
}

func (d *Datasets) fetchJyutping(ctx context.Context) (JyutpingTable, error) {
	if d.sources.JyutpingCharURL == "" || d.sources.JyutpingWordURL == "" {
		return nil, fmt.Errorf("jyutping.char_url and jyutping.word_url > %w", ErrNotConfigured)
	}
	var (
		characters map[string][]string
		words      []jyutpingWord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := d.client.FetchJSON(gctx, d.sources.JyutpingCharURL, &characters); err != nil {
			return fmt.Errorf("fetch characters > %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := d.client.FetchJSON(gctx, d.sources.JyutpingWordURL, &words); err != nil {
			return fmt.Errorf("fetch words > %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return mergeJyutping(characters, words), nil
}

// mergeJyutping adds the word list to the character table. Readings of the word list
// replace the character readings of the same surface form.
func mergeJyutping(characters map[string][]string, words []jyutpingWord) JyutpingTable {
	table := make(JyutpingTable, len(characters)+len(words))
	for surface, readings := range characters {
		table[surface] = readings
	}
	fromWords := make(map[string]bool, len(words))
	for _, word := range words {
		if !fromWords[word.Word] {
			fromWords[word.Word] = true
			table[word.Word] = nil
		}
		table[word.Word] = lo.Uniq(append(table[word.Word], word.Jyutping...))
	}
	return table
}

// Lookup returns the readings of a term.
func (table JyutpingTable) Lookup(term string) ([]string, error) {
	readings, ok := table[term]
	if !ok || len(readings) == 0 {
		return nil, fmt.Errorf("could not find jyutping: %s > %w", term, ErrNotFound)
	}
	return readings, nil
}
