package testutil

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir, "http://127.0.0.1:8080")

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "base_url: http://127.0.0.1:8080")
	assert.Contains(t, string(content), "char_url: http://127.0.0.1:8080/chars.json")

	info, err := os.Stat(filepath.Join(tmpDir, "cache"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewDictionary(t *testing.T) {
	dictionary := NewDictionary(t, DefaultBodies())

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "index",
			path:       "/a/index.json",
			wantStatus: http.StatusOK,
			wantBody:   `["我","你們"]`,
		},
		{
			name:       "unknown term",
			path:       "/a/貓.json",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := http.Get(dictionary.URL + tt.path)
			require.NoError(t, err)
			defer func() {
				_ = response.Body.Close()
			}()
			body, err := io.ReadAll(response.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, response.StatusCode)
			assert.Equal(t, tt.wantBody, string(body))
			assert.Equal(t, 1, dictionary.Hits(tt.path))
		})
	}
}
