package dictionary

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// DefaultTTL is how long a cached dataset is used before it is fetched again.
const DefaultTTL = 24 * time.Hour

// FileCache stores one JSON file per dataset and treats it as stale once its
// modification time is older than the TTL.
//
// Nothing guards the check-then-refresh sequence: two processes that both see a stale
// file both fetch it and both write it, and the last rename wins.
type FileCache struct {
	fs      afero.Fs
	rootDir string
	ttl     time.Duration
}

func NewFileCache(fs afero.Fs, cacheDirectory string, ttl time.Duration) *FileCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &FileCache{
		fs:      fs,
		rootDir: cacheDirectory,
		ttl:     ttl,
	}
}

func (cache *FileCache) filePath(name string) string {
	return filepath.Join(cache.rootDir, name+".json")
}

func (cache *FileCache) isFresh(name string, now time.Time) (bool, error) {
	info, err := cache.fs.Stat(cache.filePath(name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("fs.Stat > %w", err)
	}
	return !info.ModTime().Add(cache.ttl).Before(now), nil
}

func (cache *FileCache) read(name string) ([]byte, error) {
	file, err := cache.fs.Open(cache.filePath(name))
	if err != nil {
		return nil, fmt.Errorf("fs.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}

// write replaces the dataset file with contents through a rename, so readers never see
// a partially written file.
func (cache *FileCache) write(name string, contents []byte) error {
	if err := cache.fs.MkdirAll(cache.rootDir, 0o755); err != nil {
		return fmt.Errorf("fs.MkdirAll > %w", err)
	}
	file, err := afero.TempFile(cache.fs, cache.rootDir, name+"-*.json.tmp")
	if err != nil {
		return fmt.Errorf("afero.TempFile > %w", err)
	}
	tempPath := file.Name()
	if _, err := file.Write(contents); err != nil {
		_ = file.Close()
		_ = cache.fs.Remove(tempPath)
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Close(); err != nil {
		_ = cache.fs.Remove(tempPath)
		return fmt.Errorf("file.Close > %w", err)
	}
	if err := cache.fs.Rename(tempPath, cache.filePath(name)); err != nil {
		_ = cache.fs.Remove(tempPath)
		return fmt.Errorf("fs.Rename > %w", err)
	}
	return nil
}
