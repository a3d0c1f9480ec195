package dictionary

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type datasetServer struct {
	mu       sync.Mutex
	hits     map[string]int
	statuses map[string]int
	bodies   map[string]string
}

func newDatasetServer() *datasetServer {
	return &datasetServer{
		hits:     map[string]int{},
		statuses: map[string]int{},
		bodies: map[string]string{
			"/chars.json": `{"我":["ngo5"],"們":["mun4"],"行":["hang4","hong4"]}`,
			"/words.json": `[{"word":"我們","jyutping":["ngo5 mun4"]},{"word":"行","jyutping":["haang4"]},{"word":"行","jyutping":["hang4"]}]`,
			"/index.json": `["我","我們","貓頭鷹","熊貓"]`,
		},
	}
}

func (s *datasetServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hits[r.URL.Path]++
	if status, ok := s.statuses[r.URL.Path]; ok {
		w.WriteHeader(status)
		return
	}
	body, ok := s.bodies[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	_, _ = w.Write([]byte(body))
}

func (s *datasetServer) totalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, hits := range s.hits {
		total += hits
	}
	return total
}

func newTestDatasets(t *testing.T, server *datasetServer, fs afero.Fs) (*Datasets, *FileCache) {
	t.Helper()
	client, serverURL := newTestClientWithURL(t, server.ServeHTTP, 0)
	cache := NewFileCache(fs, "cache", DefaultTTL)
	return NewDatasets(client, cache, DatasetSources{
		JyutpingCharURL: serverURL + "/chars.json",
		JyutpingWordURL: serverURL + "/words.json",
		IndexURL:        serverURL + "/index.json",
	}), cache
}

func TestDatasets_Jyutping(t *testing.T) {
	server := newDatasetServer()
	fs := afero.NewMemMapFs()
	datasets, cache := newTestDatasets(t, server, fs)

	got, err := datasets.Jyutping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, JyutpingTable{
		"我":  {"ngo5"},
		"們":  {"mun4"},
		"行":  {"haang4", "hang4"},
		"我們": {"ngo5 mun4"},
	}, got)
	assert.Equal(t, 1, server.hits["/chars.json"])
	assert.Equal(t, 1, server.hits["/words.json"])

	contents, err := cache.read(jyutpingDataset)
	require.NoError(t, err)
	var cached JyutpingTable
	require.NoError(t, json.Unmarshal(contents, &cached))
	assert.Equal(t, got, cached)
}

func TestDatasets_Index_Freshness(t *testing.T) {
	tests := []struct {
		name      string
		setupFile bool
		fileBody  string
		age       time.Duration

		wantIndex []string
		wantHits  int
	}{
		{
			name:      "missing file is fetched",
			setupFile: false,
			wantIndex: []string{"我", "我們", "貓頭鷹", "熊貓"},
			wantHits:  1,
		},
		{
			name:      "fresh file makes no request",
			setupFile: true,
			fileBody:  `["快取"]`,
			age:       23 * time.Hour,
			wantIndex: []string{"快取"},
			wantHits:  0,
		},
		{
			name:      "stale file is fetched once",
			setupFile: true,
			fileBody:  `["快取"]`,
			age:       25 * time.Hour,
			wantIndex: []string{"我", "我們", "貓頭鷹", "熊貓"},
			wantHits:  1,
		},
		{
			name:      "unreadable fresh file is fetched",
			setupFile: true,
			fileBody:  `["快取"`,
			age:       time.Minute,
			wantIndex: []string{"我", "我們", "貓頭鷹", "熊貓"},
			wantHits:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newDatasetServer()
			fs := afero.NewMemMapFs()
			datasets, cache := newTestDatasets(t, server, fs)
			now := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)
			datasets.now = func() time.Time { return now }

			if tt.setupFile {
				require.NoError(t, cache.write(indexDataset, []byte(tt.fileBody)))
				modTime := now.Add(-tt.age)
				require.NoError(t, fs.Chtimes(cache.filePath(indexDataset), modTime, modTime))
			}

			got, err := datasets.Index(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, got)
			assert.Equal(t, tt.wantHits, server.totalHits())
		})
	}
}

func TestDatasets_RefreshFailure(t *testing.T) {
	tests := []struct {
		name     string
		failPath string
		load     func(ctx context.Context, d *Datasets) error
		dataset  string
	}{
		{
			name:     "index endpoint fails",
			failPath: "/index.json",
			load: func(ctx context.Context, d *Datasets) error {
				_, err := d.Index(ctx)
				return err
			},
			dataset: indexDataset,
		},
		{
			name:     "word list fails",
			failPath: "/words.json",
			load: func(ctx context.Context, d *Datasets) error {
				_, err := d.Jyutping(ctx)
				return err
			},
			dataset: jyutpingDataset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newDatasetServer()
			server.statuses[tt.failPath] = http.StatusInternalServerError
			fs := afero.NewMemMapFs()
			datasets, cache := newTestDatasets(t, server, fs)

			// A stale file must not be served when the refresh fails.
			require.NoError(t, cache.write(tt.dataset, []byte(`{}`)))
			old := time.Now().Add(-48 * time.Hour)
			require.NoError(t, fs.Chtimes(cache.filePath(tt.dataset), old, old))

			err := tt.load(context.Background(), datasets)
			var refreshErr *CacheRefreshError
			require.ErrorAs(t, err, &refreshErr)
			assert.Equal(t, tt.dataset, refreshErr.Dataset)

			var serviceErr *ServiceError
			assert.ErrorAs(t, err, &serviceErr)
		})
	}
}

func TestDatasets_Jyutping_NotConfigured(t *testing.T) {
	server := newDatasetServer()
	datasets, _ := newTestDatasets(t, server, afero.NewMemMapFs())
	datasets.sources.JyutpingWordURL = ""

	_, err := datasets.Jyutping(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Zero(t, server.totalHits())
}
