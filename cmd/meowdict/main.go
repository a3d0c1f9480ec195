package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/at-ishikawa/meowdict/internal/query"
	"github.com/spf13/cobra"
)

// version is set with -ldflags "-X main.version=..." on release builds.
var version = "dev"

// ErrInvalidArgument is returned for flags that cannot be used with the given arguments.
var ErrInvalidArgument = errors.New("invalid argument")

type rootOptions struct {
	configFile string
	debugMode  bool
	inputS2T   bool
	resultT2S  bool
	noColor    bool
	mode       query.Mode
}

func main() {
	rootCommand := newRootCommand()
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	options := &rootOptions{
		mode: query.ModeShow,
	}
	var consoleModes consoleModeFlags
	rootCommand := &cobra.Command{
		Use:           "meowdict [TERM...]",
		Short:         "Look up Chinese terms in the moedict dictionary",
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(options.debugMode)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && options.mode != query.ModeRandom {
				if options.inputS2T {
					return fmt.Errorf("--input-s2t needs terms > %w", ErrInvalidArgument)
				}
				return runConsole(cmd, options, consoleModes.inputS2T, consoleModes.resultT2S)
			}
			return runQuery(cmd, options, options.mode, args)
		},
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&options.configFile, "config", "", "config file path")
	flags.BoolVar(&options.debugMode, "debug", false, "Enable debug mode")
	flags.BoolVarP(&options.inputS2T, "input-s2t", "i", false, "Convert the input terms from Simplified to Traditional Chinese")
	flags.BoolVarP(&options.resultT2S, "result-t2s", "r", false, "Convert the result from Traditional to Simplified Chinese")
	flags.BoolVar(&options.noColor, "no-color-output", false, "Print the result without colors")
	rootCommand.Flags().Var(&options.mode, "mode", fmt.Sprintf("Mode for the terms. Possible values are %v", query.AllModes))
	consoleModes.register(rootCommand)

	rootCommand.AddCommand(
		newQueryCommand(options, query.ModeShow, "show TERM...", nil, "Show the definitions of the terms"),
		newQueryCommand(options, query.ModeTranslation, "translate TERM...", []string{"trans"}, "Show the translations of the terms"),
		newQueryCommand(options, query.ModeJyutping, "jyutping TERM...", []string{"jyut"}, "Show the Cantonese Jyutping of the terms"),
		newQueryCommand(options, query.ModeJSON, "json TERM...", nil, "Print the dictionary entries of the terms as JSON"),
		newQueryCommand(options, query.ModeRandom, "random [FILTER...]", []string{"rand"}, "Show random terms, one containing each filter"),
		newQueryCommand(options, query.ModeReverse, "reverse DESCRIPTION...", nil, "Find words matching the descriptions"),
		newTerminalCommand(options),
		newVersionCommand(),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
