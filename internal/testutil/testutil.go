// Package testutil provides shared test helpers for creating config files and a fake dictionary service.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Dictionary is a fake moedict service. Paths without a body answer 404.
type Dictionary struct {
	*httptest.Server

	mu     sync.Mutex
	bodies map[string]string
	hits   map[string]int
}

// DefaultBodies are the documents served by NewDictionary.
func DefaultBodies() map[string]string {
	return map[string]string{
		"/a/我.json":     "{\"t\":\"`我~\",\"English\":\"I\",\"translation\":{\"English\":[\"I\",\"me\"]},\"h\":[{\"p\":\"wǒ\",\"b\":\"ㄨㄛˇ\",\"d\":[{\"type\":\"代\",\"f\":\"自稱。\"}]}]}",
		"/a/index.json": `["我","你們"]`,
		"/chars.json":   `{"我":["ngo5"]}`,
		"/words.json":   `[{"word":"我們","jyutping":["ngo5 mun4"]}]`,
	}
}

// NewDictionary starts a fake dictionary service that is closed with the test.
func NewDictionary(t *testing.T, bodies map[string]string) *Dictionary {
	t.Helper()
	dictionary := &Dictionary{
		bodies: bodies,
		hits:   map[string]int{},
	}
	dictionary.Server = httptest.NewServer(http.HandlerFunc(dictionary.serveHTTP))
	t.Cleanup(dictionary.Close)
	return dictionary
}

func (d *Dictionary) serveHTTP(w http.ResponseWriter, r *http.Request) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hits[r.URL.Path]++
	body, ok := d.bodies[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	_, _ = w.Write([]byte(body))
}

// Hits returns how many times path was requested.
func (d *Dictionary) Hits(path string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hits[path]
}

// SetupTestConfig creates a config file pointing every remote source at serverURL and the cache
// at a directory under tmpDir. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, serverURL string) string {
	t.Helper()

	cacheDir := filepath.Join(tmpDir, "cache")
	require.NoError(t, os.MkdirAll(cacheDir, 0755))

	configContent := fmt.Sprintf(`dictionary:
  base_url: %s
  retry_attempts: 0
jyutping:
  char_url: %s/chars.json
  word_url: %s/words.json
index:
  url: %s/a/index.json
cache:
  directory: %s
`,
		serverURL,
		serverURL,
		serverURL,
		serverURL,
		cacheDir,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
