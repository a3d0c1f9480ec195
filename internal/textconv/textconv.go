// Package textconv converts Chinese text between the Simplified and Traditional scripts.
package textconv

import (
	"fmt"
	"sync"

	"github.com/longbridgeapp/opencc"
)

// Direction is a script conversion.
type Direction string

const (
	// SimplifiedToTraditional converts to Traditional Chinese with Taiwanese phrases.
	SimplifiedToTraditional Direction = "s2twp"
	// TraditionalToSimplified converts Taiwanese Traditional Chinese to Simplified Chinese.
	TraditionalToSimplified Direction = "tw2s"
)

var converters = map[Direction]func() (*opencc.OpenCC, error){
	SimplifiedToTraditional: sync.OnceValues(func() (*opencc.OpenCC, error) {
		return opencc.New(string(SimplifiedToTraditional))
	}),
	TraditionalToSimplified: sync.OnceValues(func() (*opencc.OpenCC, error) {
		return opencc.New(string(TraditionalToSimplified))
	}),
}

// Convert converts text in the given direction.
// The conversion dictionaries are loaded on the first call of each direction.
func Convert(text string, direction Direction) (string, error) {
	newConverter, ok := converters[direction]
	if !ok {
		return "", fmt.Errorf("unknown conversion: %s", direction)
	}
	converter, err := newConverter()
	if err != nil {
		return "", fmt.Errorf("opencc.New(%s) > %w", direction, err)
	}
	converted, err := converter.Convert(text)
	if err != nil {
		return "", fmt.Errorf("converter.Convert > %w", err)
	}
	return converted, nil
}

// S2T converts Simplified Chinese to Traditional Chinese.
func S2T(text string) (string, error) {
	return Convert(text, SimplifiedToTraditional)
}

// T2S converts Traditional Chinese to Simplified Chinese.
func T2S(text string) (string, error) {
	return Convert(text, TraditionalToSimplified)
}

// S2TAll converts every term to Traditional Chinese.
func S2TAll(terms []string) ([]string, error) {
	converted := make([]string, 0, len(terms))
	for _, term := range terms {
		traditional, err := S2T(term)
		if err != nil {
			return nil, err
		}
		converted = append(converted, traditional)
	}
	return converted, nil
}
