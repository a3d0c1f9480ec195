package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeJyutping(t *testing.T) {
	tests := []struct {
		name       string
		characters map[string][]string
		words      []jyutpingWord
		want       JyutpingTable
	}{
		{
			name:       "characters only",
			characters: map[string][]string{"我": {"ngo5"}},
			want:       JyutpingTable{"我": {"ngo5"}},
		},
		{
			name:  "words only",
			words: []jyutpingWord{{Word: "我們", Jyutping: []string{"ngo5 mun4"}}},
			want:  JyutpingTable{"我們": {"ngo5 mun4"}},
		},
		{
			name:       "word list replaces the readings of the same surface form",
			characters: map[string][]string{"行": {"hang4", "hong4"}, "我": {"ngo5"}},
			words: []jyutpingWord{
				{Word: "行", Jyutping: []string{"haang4"}},
				{Word: "行", Jyutping: []string{"haang4", "hang4"}},
			},
			want: JyutpingTable{"行": {"haang4", "hang4"}, "我": {"ngo5"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergeJyutping(tt.characters, tt.words))
		})
	}
}

func TestJyutpingTable_Lookup(t *testing.T) {
	table := JyutpingTable{"我": {"ngo5"}, "空": {}}

	got, err := table.Lookup("我")
	assert.NoError(t, err)
	assert.Equal(t, []string{"ngo5"}, got)

	_, err = table.Lookup("貓")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = table.Lookup("空")
	assert.ErrorIs(t, err, ErrNotFound)
}
