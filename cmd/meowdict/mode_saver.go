package main

import (
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/meowdict/internal/config"
)

// configModeSaver writes the console modes to the configuration file that was loaded,
// or to the default configuration file when none was.
type configModeSaver struct {
	app *app
}

func (saver *configModeSaver) SaveModes(inputS2T bool, resultT2S bool) error {
	path := saver.app.loader.ConfigFileUsed()
	if path == "" {
		defaultPath, err := config.DefaultConfigFile()
		if err != nil {
			return fmt.Errorf("config.DefaultConfigFile > %w", err)
		}
		path = defaultPath
	}

	cfg := *saver.app.config
	cfg.Console.InputS2T = inputS2T
	cfg.Console.ResultT2S = resultT2S
	if err := config.Save(path, &cfg); err != nil {
		return fmt.Errorf("config.Save > %w", err)
	}
	saver.app.config = &cfg
	slog.Default().Debug("Saved the console modes", "path", path)
	return nil
}
