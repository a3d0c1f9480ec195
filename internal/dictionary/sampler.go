package dictionary

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Sampler picks random terms from the term index.
type Sampler struct {
	pick func([]string) string
}

func NewSampler() *Sampler {
	return &Sampler{pick: lo.Sample[string]}
}

// Sample returns one random term of the index without filters, otherwise one random
// term containing each filter.
func (s *Sampler) Sample(index []string, filters []string) ([]string, error) {
	if len(filters) == 0 {
		if len(index) == 0 {
			return nil, fmt.Errorf("the index is empty > %w", ErrNoMatch)
		}
		return []string{s.pick(index)}, nil
	}

	terms := make([]string, 0, len(filters))
	for _, filter := range filters {
		candidates := lo.Filter(index, func(term string, _ int) bool {
			return strings.Contains(term, filter)
		})
		if len(candidates) == 0 {
			return nil, fmt.Errorf("%s > %w", filter, ErrNoMatch)
		}
		terms = append(terms, s.pick(candidates))
	}
	return terms, nil
}
