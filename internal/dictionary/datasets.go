package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

const (
	jyutpingDataset = "jyutping"
	indexDataset    = "index"
)

// DatasetSources are the URLs of the datasets kept in the FileCache.
type DatasetSources struct {
	JyutpingCharURL string
	JyutpingWordURL string
	IndexURL        string
}

// Datasets loads the Jyutping table and the term index, refreshing them when stale.
type Datasets struct {
	client  *Client
	cache   *FileCache
	sources DatasetSources
	now     func() time.Time
}

func NewDatasets(client *Client, cache *FileCache, sources DatasetSources) *Datasets {
	return &Datasets{
		client:  client,
		cache:   cache,
		sources: sources,
		now:     time.Now,
	}
}

// Jyutping returns the merged table of Jyutping readings keyed by character or word.
func (d *Datasets) Jyutping(ctx context.Context) (JyutpingTable, error) {
	return loadDataset(ctx, d, jyutpingDataset, d.fetchJyutping)
}

// Index returns every headword known to the dictionary.
func (d *Datasets) Index(ctx context.Context) ([]string, error) {
	return loadDataset(ctx, d, indexDataset, d.fetchIndex)
}

func (d *Datasets) fetchIndex(ctx context.Context) ([]string, error) {
	var index []string
	if err := d.client.FetchJSON(ctx, d.sources.IndexURL, &index); err != nil {
		return nil, fmt.Errorf("client.FetchJSON > %w", err)
	}
	return index, nil
}

func loadDataset[T any](
	ctx context.Context,
	d *Datasets,
	name string,
	refresh func(context.Context) (T, error),
) (T, error) {
	var value T
	fresh, err := d.cache.isFresh(name, d.now())
	if err != nil {
		return value, &CacheRefreshError{Dataset: name, Err: err}
	}
	if fresh {
		contents, err := d.cache.read(name)
		if err == nil {
			err = json.Unmarshal(contents, &value)
		}
		if err == nil {
			slog.Default().Debug("Use the cached dataset", "dataset", name)
			return value, nil
		}
		slog.Default().Warn("The cached dataset is unreadable, refreshing it",
			"dataset", name,
			"error", err)
	}

	slog.Default().Debug("Refresh the dataset", "dataset", name)
	value, err = refresh(ctx)
	if err != nil {
		return value, &CacheRefreshError{Dataset: name, Err: err}
	}
	contents, err := json.Marshal(value)
	if err != nil {
		return value, &CacheRefreshError{Dataset: name, Err: fmt.Errorf("json.Marshal > %w", err)}
	}
	if err := d.cache.write(name, contents); err != nil {
		return value, &CacheRefreshError{Dataset: name, Err: fmt.Errorf("cache.write > %w", err)}
	}
	return value, nil
}
