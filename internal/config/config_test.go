package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Dictionary: DictionaryConfig{
			BaseURL:       DefaultDictionaryBaseURL,
			Concurrency:   10,
			RetryAttempts: 2,
		},
		Index: IndexConfig{
			URL: DefaultIndexURL,
		},
		Cache: CacheConfig{
			Directory: filepath.Join(xdg.CacheHome, "meowdict"),
			TTL:       24 * time.Hour,
		},
		Console: ConsoleConfig{
			Prompt: DefaultPrompt,
		},
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		wantErr           bool
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `dictionary:
  base_url: http://localhost:8080
  concurrency: 4
  retry_attempts: 0
jyutping:
  char_url: http://localhost:8080/chars.json
  word_url: http://localhost:8080/words.json
reverse:
  base_url: http://localhost:8080/reverse
cache:
  directory: custom/cache
  ttl: 1h
output:
  no_color: true
  width: 60
console:
  prompt: "> "
  input_s2t: true
`,
			want: func() *Config {
				return &Config{
					Dictionary: DictionaryConfig{
						BaseURL:       "http://localhost:8080",
						Concurrency:   4,
						RetryAttempts: 0,
					},
					Jyutping: JyutpingConfig{
						CharURL: "http://localhost:8080/chars.json",
						WordURL: "http://localhost:8080/words.json",
					},
					Index: IndexConfig{
						URL: DefaultIndexURL,
					},
					Reverse: ReverseConfig{
						BaseURL: "http://localhost:8080/reverse",
					},
					Cache: CacheConfig{
						Directory: "custom/cache",
						TTL:       time.Hour,
					},
					Output: OutputConfig{
						NoColor: true,
						Width:   60,
					},
					Console: ConsoleConfig{
						Prompt:   "> ",
						InputS2T: true,
					},
				}
			},
		},
		{
			name: "invalid YAML format",
			configContent: `dictionary:
  base_url: http://localhost
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "invalid config structure uses defaults",
			configContent: `wrong_key:
  some_value: test
`,
			want: defaultConfig,
		},
		{
			name:    "no config file uses defaults",
			want:    defaultConfig,
			wantErr: false,
		},
		{
			name: "partial config with missing fields uses defaults",
			configContent: `console:
  result_t2s: true
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Console.ResultT2S = true
				return cfg
			},
		},
		{
			name: "explicit config file path",
			configContent: `cache:
  directory: explicit/cache
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Cache.Directory = "explicit/cache"
				return cfg
			},
		},
		{
			name: "environment variables override the file",
			configContent: `dictionary:
  base_url: http://localhost:8080
`,
			env: map[string]string{
				"MEOWDICT_DICTIONARY_BASE_URL": "http://127.0.0.1:9090",
				"MEOWDICT_CACHE_DIRECTORY":     "env/cache",
				"MEOWDICT_NO_COLOR":            "true",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Dictionary.BaseURL = "http://127.0.0.1:9090"
				cfg.Cache.Directory = "env/cache"
				cfg.Output.NoColor = true
				return cfg
			},
		},
		{
			name: "out of range values",
			configContent: `dictionary:
  concurrency: 0
  retry_attempts: 11
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"concurrency",
				"retry_attempts",
			},
		},
		{
			name: "invalid url",
			configContent: `dictionary:
  base_url: not a url
`,
			wantErr: true,
			wantErrorContains: []string{
				"base_url must be a valid URL",
			},
		},
		{
			name: "only one jyutping source",
			configContent: `jyutping:
  char_url: http://localhost/chars.json
`,
			wantErr: true,
			wantErrorContains: []string{
				"jyutping.word_url must be set together with jyutping.char_url",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "config.yml")
				err := os.WriteFile(configPath, []byte(tt.configContent), 0644)
				require.NoError(t, err)
			} else {
				if tt.configContent != "" {
					configPath = filepath.Join(tempDir, "config.yaml")
					err := os.WriteFile(configPath, []byte(tt.configContent), 0644)
					require.NoError(t, err)
				}

				originalDir, err := os.Getwd()
				require.NoError(t, err)
				defer func() {
					err := os.Chdir(originalDir)
					require.NoError(t, err)
				}()

				err = os.Chdir(tempDir)
				require.NoError(t, err)
				configPath = ""
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := defaultConfig()
	cfg.Cache.Directory = "saved/cache"
	cfg.Cache.TTL = 90 * time.Minute
	cfg.Console.InputS2T = true
	cfg.Console.ResultT2S = true

	require.NoError(t, Save(path, cfg))

	loader, err := NewConfigLoader(path)
	require.NoError(t, err)
	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
	assert.Equal(t, path, loader.ConfigFileUsed())
}
