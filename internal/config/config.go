package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DefaultDictionaryBaseURL = "https://www.moedict.tw"
	DefaultIndexURL          = "https://www.moedict.tw/a/index.json"
	DefaultPrompt            = "meowdict > "
)

type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Jyutping   JyutpingConfig   `mapstructure:"jyutping"`
	Index      IndexConfig      `mapstructure:"index"`
	Reverse    ReverseConfig    `mapstructure:"reverse"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Output     OutputConfig     `mapstructure:"output"`
	Console    ConsoleConfig    `mapstructure:"console"`
}

type DictionaryConfig struct {
	BaseURL       string `mapstructure:"base_url" validate:"required,url"`
	Concurrency   int    `mapstructure:"concurrency" validate:"min=1,max=64"`
	RetryAttempts uint   `mapstructure:"retry_attempts" validate:"max=10"`
}

type JyutpingConfig struct {
	CharURL string `mapstructure:"char_url" validate:"omitempty,url"`
	WordURL string `mapstructure:"word_url" validate:"omitempty,url"`
}

type IndexConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

type ReverseConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

type CacheConfig struct {
	Directory string        `mapstructure:"directory" validate:"required"`
	TTL       time.Duration `mapstructure:"ttl" validate:"gt=0"`
}

type OutputConfig struct {
	NoColor bool `mapstructure:"no_color"`
	// Width overrides the terminal width when positive.
	Width int `mapstructure:"width" validate:"min=0"`
}

type ConsoleConfig struct {
	Prompt    string `mapstructure:"prompt" validate:"required"`
	InputS2T  bool   `mapstructure:"input_s2t"`
	ResultT2S bool   `mapstructure:"result_t2s"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/meowdict")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("dictionary.base_url", DefaultDictionaryBaseURL)
	v.SetDefault("dictionary.concurrency", 10)
	v.SetDefault("dictionary.retry_attempts", 2)
	v.SetDefault("jyutping.char_url", "")
	v.SetDefault("jyutping.word_url", "")
	v.SetDefault("index.url", DefaultIndexURL)
	v.SetDefault("reverse.base_url", "")
	v.SetDefault("cache.directory", filepath.Join(xdg.CacheHome, "meowdict"))
	v.SetDefault("cache.ttl", 24*time.Hour)
	v.SetDefault("output.no_color", false)
	v.SetDefault("output.width", 0)
	v.SetDefault("console.prompt", DefaultPrompt)
	v.SetDefault("console.input_s2t", false)
	v.SetDefault("console.result_t2s", false)

	for key, env := range map[string]string{
		"dictionary.base_url": "MEOWDICT_DICTIONARY_BASE_URL",
		"cache.directory":     "MEOWDICT_CACHE_DIRECTORY",
		"output.no_color":     "MEOWDICT_NO_COLOR",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// ConfigFileUsed returns the file read by Load, or an empty string when none was found.
func (loader *ConfigLoader) ConfigFileUsed() string {
	return loader.viper.ConfigFileUsed()
}

// DefaultConfigFile is where Save writes when no configuration file was loaded.
func DefaultConfigFile() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join("meowdict", "config.yaml"))
	if err != nil {
		return "", fmt.Errorf("xdg.ConfigFile > %w", err)
	}
	return path, nil
}

// Save writes cfg to path as yaml.
func Save(path string, cfg *Config) error {
	v := viper.New()
	v.SetConfigType("yaml")

	v.Set("dictionary.base_url", cfg.Dictionary.BaseURL)
	v.Set("dictionary.concurrency", cfg.Dictionary.Concurrency)
	v.Set("dictionary.retry_attempts", cfg.Dictionary.RetryAttempts)
	v.Set("jyutping.char_url", cfg.Jyutping.CharURL)
	v.Set("jyutping.word_url", cfg.Jyutping.WordURL)
	v.Set("index.url", cfg.Index.URL)
	v.Set("reverse.base_url", cfg.Reverse.BaseURL)
	v.Set("cache.directory", cfg.Cache.Directory)
	v.Set("cache.ttl", cfg.Cache.TTL.String())
	v.Set("output.no_color", cfg.Output.NoColor)
	v.Set("output.width", cfg.Output.Width)
	v.Set("console.prompt", cfg.Console.Prompt)
	v.Set("console.input_s2t", cfg.Console.InputS2T)
	v.Set("console.result_t2s", cfg.Console.ResultT2S)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("viper.WriteConfigAs(%s) > %w", path, err)
	}
	return nil
}
