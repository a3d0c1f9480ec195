package main

import (
	"fmt"

	"github.com/at-ishikawa/meowdict/internal/console"
	"github.com/at-ishikawa/meowdict/internal/query"
	"github.com/at-ishikawa/meowdict/internal/render"
	"github.com/spf13/cobra"
)

func newQueryCommand(options *rootOptions, mode query.Mode, use string, aliases []string, short string) *cobra.Command {
	args := cobra.MinimumNArgs(1)
	if mode == query.ModeRandom {
		args = cobra.ArbitraryArgs
	}
	return &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   short,
		Args:    args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, options, mode, args)
		},
	}
}

func runQuery(cmd *cobra.Command, options *rootOptions, mode query.Mode, terms []string) error {
	return withApp(cmd, options, func(a *app) error {
		result, err := a.executor.Execute(cmd.Context(), query.Request{
			Mode:      mode,
			Terms:     terms,
			InputS2T:  options.inputS2T,
			ResultT2S: options.resultT2S,
		})
		if err != nil {
			return fmt.Errorf("executor.Execute > %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
		return err
	})
}

// consoleModeFlags are the modes the console starts with.
type consoleModeFlags struct {
	inputS2T  bool
	resultT2S bool
}

func (f *consoleModeFlags) register(command *cobra.Command) {
	command.Flags().BoolVar(&f.inputS2T, "input-s2t-mode", false, "Start the console with the input conversion mode")
	command.Flags().BoolVar(&f.resultT2S, "result-t2s-mode", false, "Start the console with the result conversion mode")
}

func newTerminalCommand(options *rootOptions) *cobra.Command {
	var modes consoleModeFlags
	command := &cobra.Command{
		Use:     "terminal",
		Aliases: []string{"term"},
		Short:   "Start the interactive console",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd, options, modes.inputS2T, modes.resultT2S)
		},
	}
	modes.register(command)
	return command
}

func runConsole(cmd *cobra.Command, options *rootOptions, inputS2T bool, resultT2S bool) error {
	return withApp(cmd, options, func(a *app) error {
		banner := render.New(render.Options{NoColor: a.noColor}).Banner(version)
		c := console.New(a.executor, &configModeSaver{app: a}, console.Options{
			Prompt:    a.config.Console.Prompt,
			Banner:    banner,
			InputS2T:  inputS2T || a.config.Console.InputS2T,
			ResultT2S: resultT2S || a.config.Console.ResultT2S,
			Stdin:     cmd.InOrStdin(),
			Stdout:    cmd.OutOrStdout(),
		})
		if err := c.Run(cmd.Context()); err != nil {
			return fmt.Errorf("console.Run > %w", err)
		}
		return nil
	})
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "meowdict %s\n", version)
			return err
		},
	}
}
