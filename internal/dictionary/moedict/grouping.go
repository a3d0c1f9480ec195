package moedict

import (
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// NoType is the group key of definitions without a grammatical category.
const NoType = "notype"

// ErrInterleavedTypes is returned when definitions of one type are split by another type
// so far apart that the running group index no longer points into the type's groups.
var ErrInterleavedTypes = errors.New("definition types are not contiguous")

// GroupedDefinitions maps a type key to its definition groups, in first-seen key order.
type GroupedDefinitions = orderedmap.OrderedMap[string, [][]string]

// GroupDefinitions folds definitions into groups keyed by their type.
//
// A single index is shared by all keys: it goes back to 0 when a key is seen for the first
// time and moves forward after every definition. Interleaved types that push the index past
// the groups of a key return ErrInterleavedTypes.
func GroupDefinitions(definitions []Definition) (*GroupedDefinitions, error) {
	grouped := orderedmap.New[string, [][]string]()
	index := 0
	for _, definition := range definitions {
		key := definition.TypeKey()
		groups, ok := grouped.Get(key)
		if ok {
			groups = append(groups, []string{})
		} else {
			groups = [][]string{{}}
			index = 0
		}
		if index >= len(groups) {
			return grouped, fmt.Errorf("%w: type %q, group %d of %d", ErrInterleavedTypes, key, index, len(groups))
		}
		groups[index] = append(groups[index], definition.Lines()...)
		grouped.Set(key, groups)
		index++
	}
	return grouped, nil
}
