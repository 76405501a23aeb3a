// Package repl implements the interactive read-evaluate-print loop that
// feeds input lines to an expression.Calculator.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"yqhp/calculator/internal/config"
	"yqhp/calculator/internal/expression"
)

// Config controls how the loop decorates its output.
type Config struct {
	// PromptMode is one of config.PromptAlways, config.PromptNever or config.PromptAuto.
	PromptMode string
	// Prompt is written before every read and in front of every result line.
	Prompt string
}

// FromConfig extracts the loop settings from the application configuration.
func FromConfig(cfg config.REPLConfig) Config {
	return Config{PromptMode: cfg.PromptMode, Prompt: cfg.Prompt}
}

// Application reads expressions line by line and writes one result line per
// evaluated expression.
type Application struct {
	cfg    Config
	calc   expression.Calculator
	in     io.Reader
	out    io.Writer
	logger *zap.Logger
	prompt string
}

// New creates an Application. A nil calculator falls back to the default
// pipeline and a nil logger discards everything.
func New(cfg Config, calc expression.Calculator, in io.Reader, out io.Writer, logger *zap.Logger) *Application {
	if calc == nil {
		calc = expression.NewCalculator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Prompt == "" {
		cfg.Prompt = config.DefaultPrompt
	}

	app := &Application{
		cfg:    cfg,
		calc:   calc,
		in:     in,
		out:    out,
		logger: logger,
	}
	if promptEnabled(cfg.PromptMode, in) {
		app.prompt = cfg.Prompt
	}
	return app
}

// PromptEnabled reports whether the loop writes the prompt.
func (a *Application) PromptEnabled() bool {
	return a.prompt != ""
}

// promptEnabled resolves a prompt mode against the input source. Unknown
// modes behave like always.
func promptEnabled(mode string, in io.Reader) bool {
	switch strings.ToLower(mode) {
	case config.PromptNever:
		return false
	case config.PromptAuto:
		f, ok := in.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	default:
		return true
	}
}

type line struct {
	text string
	err  error
}

// Run processes input until EOF, a read error or cancellation of ctx. EOF
// ends the loop without error.
func (a *Application) Run(ctx context.Context) error {
	lines := make(chan line)
	done := make(chan struct{})
	defer close(done)

	go a.scan(lines, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.write(a.prompt); err != nil {
			return err
		}

		var l line
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok = <-lines:
		}
		if !ok {
			return nil
		}
		if l.err != nil {
			return fmt.Errorf("read input: %w", l.err)
		}

		if err := a.handle(l.text); err != nil {
			return err
		}
	}
}

// scan feeds input lines to Run until EOF or until done is closed. Lines
// have no length limit; a final line without a newline is still delivered.
func (a *Application) scan(lines chan<- line, done <-chan struct{}) {
	defer close(lines)

	reader := bufio.NewReader(a.in)
	for {
		text, err := reader.ReadString('\n')
		if text != "" {
			text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
			select {
			case lines <- line{text: text}:
			case <-done:
				return
			}
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, io.EOF) {
			select {
			case lines <- line{err: err}:
			case <-done:
			}
		}
		return
	}
}

// handle evaluates one line and writes its result.
func (a *Application) handle(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	value, err := a.calc.EvaluateString(text)
	if err != nil {
		a.logFailure(text, err)
		return a.writeLine("invalid input: " + text)
	}

	a.logger.Debug("expression evaluated",
		zap.String("expression", text),
		zap.Int64("result", value),
	)
	return a.writeLine(fmt.Sprintf("%d", value))
}

func (a *Application) logFailure(text string, err error) {
	fields := []zap.Field{zap.String("expression", text), zap.Error(err)}

	var exprErr *expression.ExpressionError
	if errors.As(err, &exprErr) {
		fields = append(fields,
			zap.Stringer("kind", exprErr.Kind),
			zap.Stringer("stage", exprErr.Stage),
			zap.Int("position", exprErr.Position),
		)
	}
	a.logger.Debug("expression rejected", fields...)
}

func (a *Application) write(s string) error {
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(a.out, s); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (a *Application) writeLine(s string) error {
	return a.write(a.prompt + s + "\n")
}
