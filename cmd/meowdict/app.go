package main

import (
	"fmt"
	"io"
	"os"

	"github.com/at-ishikawa/meowdict/internal/config"
	"github.com/at-ishikawa/meowdict/internal/dictionary"
	"github.com/at-ishikawa/meowdict/internal/query"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app holds the dependencies shared by every command.
type app struct {
	config   *config.Config
	loader   *config.ConfigLoader
	client   *dictionary.Client
	executor *query.Executor
	noColor  bool
}

func newApp(options *rootOptions, stdout io.Writer) (*app, error) {
	loader, err := config.NewConfigLoader(options.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	client := dictionary.NewClient(dictionary.Config{
		BaseURL:        cfg.Dictionary.BaseURL,
		ReverseBaseURL: cfg.Reverse.BaseURL,
		RetryAttempts:  cfg.Dictionary.RetryAttempts,
	})
	cache := dictionary.NewFileCache(afero.NewOsFs(), cfg.Cache.Directory, cfg.Cache.TTL)
	datasets := dictionary.NewDatasets(client, cache, dictionary.DatasetSources{
		JyutpingCharURL: cfg.Jyutping.CharURL,
		JyutpingWordURL: cfg.Jyutping.WordURL,
		IndexURL:        cfg.Index.URL,
	})
	resolver := dictionary.NewResolver(client, datasets, cfg.Dictionary.Concurrency)

	noColor := options.noColor || cfg.Output.NoColor || !isTerminal(stdout)
	width := cfg.Output.Width
	if width <= 0 {
		width = terminalWidth(stdout)
	}
	return &app{
		config:   cfg,
		loader:   loader,
		client:   client,
		executor: query.NewExecutor(resolver, width, noColor),
		noColor:  noColor,
	}, nil
}

func (a *app) Close() error {
	return a.client.Close()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return !color.NoColor && term.IsTerminal(int(file.Fd()))
}

// terminalWidth returns the width of the terminal behind w, or 0 when it is unknown.
func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func withApp(cmd *cobra.Command, options *rootOptions, run func(a *app) error) error {
	a, err := newApp(options, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close()
	}()
	return run(a)
}
