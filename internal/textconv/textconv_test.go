package textconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		direction Direction
		want      string
		wantErr   bool
	}{
		{
			name:      "simplified to traditional",
			text:      "老师",
			direction: SimplifiedToTraditional,
			want:      "老師",
		},
		{
			name:      "traditional to simplified",
			text:      "老師",
			direction: TraditionalToSimplified,
			want:      "老师",
		},
		{
			name:      "text without Chinese characters",
			text:      "ngo5 mun4",
			direction: TraditionalToSimplified,
			want:      "ngo5 mun4",
		},
		{
			name:      "unknown direction",
			text:      "老師",
			direction: Direction("s2jp"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.text, tt.direction)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestS2TAll(t *testing.T) {
	got, err := S2TAll([]string{"老师", "我们"})
	require.NoError(t, err)
	assert.Equal(t, []string{"老師", "我們"}, got)
}

func TestRoundTrip(t *testing.T) {
	traditional, err := S2T("老师")
	require.NoError(t, err)
	simplified, err := T2S(traditional)
	require.NoError(t, err)
	assert.Equal(t, "老师", simplified)
}
