// Package console runs the interactive prompt of meowdict.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/at-ishikawa/meowdict/internal/query"
)

//go:generate mockgen -source=console.go -destination=../mocks/console/mock_console.go -package=mock_console

type Executor interface {
	Execute(ctx context.Context, request query.Request) (string, error)
}

// ModeSaver persists the console modes so that the next console starts with them.
type ModeSaver interface {
	SaveModes(inputS2T bool, resultT2S bool) error
}

type Options struct {
	Prompt    string
	Banner    string
	InputS2T  bool
	ResultT2S bool

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

type Console struct {
	executor Executor
	saver    ModeSaver
	prompt   string
	banner   string

	// Modes applied to every line until they are unset.
	inputS2T  bool
	resultT2S bool

	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
}

func New(executor Executor, saver ModeSaver, options Options) *Console {
	var stdin io.Reader = os.Stdin
	if options.Stdin != nil {
		stdin = options.Stdin
	}
	var stdout io.Writer = os.Stdout
	if options.Stdout != nil {
		stdout = options.Stdout
	}
	return &Console{
		executor:     executor,
		saver:        saver,
		prompt:       options.Prompt,
		banner:       options.Banner,
		inputS2T:     options.InputS2T,
		resultT2S:    options.ResultT2S,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
	}
}

// Run reads lines until the input ends or the console is interrupted.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	if c.banner != "" {
		c.println(c.banner)
	}

	// Buffered: nothing receives from errCh once Run returns on interrupt.
	errCh := make(chan error, 1)
	go c.readLines(ctx, errCh)
	select {
	case <-ctx.Done():
		c.println("")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}
	return nil
}

type lineCommand struct {
	request  query.Request
	saveMode bool
}

func (c *Console) handleLine(ctx context.Context, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	command := c.parse(fields)
	if command.saveMode {
		if err := c.saver.SaveModes(c.inputS2T, c.resultT2S); err != nil {
			c.println(err.Error())
		} else {
			c.println("Saving mode...")
		}
	}
	if len(command.request.Terms) == 0 && command.request.Mode != query.ModeRandom {
		return
	}

	request := command.request
	request.InputS2T = request.InputS2T || c.inputS2T
	request.ResultT2S = request.ResultT2S || c.resultT2S
	result, err := c.executor.Execute(ctx, request)
	if err != nil {
		c.println(err.Error())
		return
	}
	c.println(result)
}

// parse splits the fields of a line into options and terms.
// Mode options change the console state right away.
func (c *Console) parse(fields []string) lineCommand {
	command := lineCommand{
		request: query.Request{Mode: query.ModeShow},
	}
	for _, field := range fields {
		if !strings.HasPrefix(field, "-") {
			command.request.Terms = append(command.request.Terms, field)
			continue
		}

		switch field {
		case "-i", "--input-s2t":
			command.request.InputS2T = true
		case "-r", "--result-t2s":
			command.request.ResultT2S = true
		case "-t", "--translation":
			command.request.Mode = query.ModeTranslation
		case "-j", "--jyutping":
			command.request.Mode = query.ModeJyutping
		case "--json":
			command.request.Mode = query.ModeJSON
		case "--random":
			command.request.Mode = query.ModeRandom
		case "--reverse":
			command.request.Mode = query.ModeReverse
		case "--set-mode-input-s2t":
			c.setInputS2T(true)
		case "--set-mode-result-t2s":
			c.setResultT2S(true)
		case "--unset-mode-input-s2t":
			c.setInputS2T(false)
		case "--unset-mode-result-t2s":
			c.setResultT2S(false)
		case "--unset-mode-all":
			c.setInputS2T(false)
			c.setResultT2S(false)
		case "--save-mode":
			command.saveMode = true
		default:
			c.println(fmt.Sprintf("Invalid argument: %s", field))
		}
	}
	return command
}

func (c *Console) setInputS2T(enable bool) {
	c.println(fmt.Sprintf("%s input mode...", settingVerb(enable)))
	c.inputS2T = enable
}

func (c *Console) setResultT2S(enable bool) {
	c.println(fmt.Sprintf("%s result mode...", settingVerb(enable)))
	c.resultT2S = enable
}

func settingVerb(enable bool) string {
	if enable {
		return "Setting"
	}
	return "Unsetting"
}

func (c *Console) print(s string) {
	_, _ = fmt.Fprint(c.stdoutWriter, s)
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.stdoutWriter, s)
}

// readLines handles lines until the input ends and sends a read failure to errCh.
func (c *Console) readLines(ctx context.Context, errCh chan<- error) {
	defer close(errCh)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		c.print(c.prompt)
		line, err := c.stdinReader.ReadString('\n')
		if line != "" {
			c.handleLine(ctx, line)
		}
		if errors.Is(err, io.EOF) {
			c.println("")
			return
		}
		if err != nil {
			errCh <- fmt.Errorf("stdinReader.ReadString > %w", err)
			return
		}
	}
}
