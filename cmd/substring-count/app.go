package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Veraticus/substring-count/pkg/config"
	"github.com/Veraticus/substring-count/pkg/interfaces"
	"github.com/Veraticus/substring-count/pkg/logging"
)

// errMissingInput is returned when stdin ends before a required line
var errMissingInput = errors.New("unexpected end of input")

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config  *config.Config
	Counter interfaces.OccurrenceCounter
	Logger  *slog.Logger
}

// NewDependencies creates all dependencies with the given configuration.
// Diagnostics are written to logOut.
func NewDependencies(cfg *config.Config, logOut io.Writer) (*Dependencies, error) {
	c, err := cfg.NewCounter()
	if err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}

	return &Dependencies{
		Config:  cfg,
		Counter: c,
		Logger:  logging.NewLogger(logOut, cfg.Debug),
	}, nil
}

// Application represents the main application
type Application struct {
	deps   *Dependencies
	prompt io.Writer
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// SetPromptWriter enables input prompts written to w. A nil writer disables them.
func (a *Application) SetPromptWriter(w io.Writer) {
	a.prompt = w
}

// Run reads the text and the pattern from in, one line each, and writes the
// number of occurrences to out.
func (a *Application) Run(in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	text, err := a.readLine(reader, "text: ")
	if err != nil {
		return fmt.Errorf("reading text: %w", err)
	}

	pattern, err := a.readLine(reader, "pattern: ")
	if err != nil {
		return fmt.Errorf("reading pattern: %w", err)
	}

	a.deps.Logger.Debug("counting occurrences",
		"engine", a.deps.Config.Engine,
		"empty_pattern", a.deps.Config.EmptyPattern,
		"text_len", len(text),
		"pattern_len", len(pattern))

	count, err := a.deps.Counter.Count(text, pattern)
	if err != nil {
		return err
	}

	a.deps.Logger.Debug("counted occurrences", "count", count)

	if _, err := fmt.Fprintln(out, count); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

// readLine reads one line and trims surrounding whitespace. A last line
// without a trailing newline is accepted.
func (a *Application) readLine(r *bufio.Reader, prompt string) (string, error) {
	if a.prompt != nil {
		_, _ = io.WriteString(a.prompt, prompt) // Best effort
	}

	line, err := r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", errMissingInput
		}
	}

	return strings.TrimSpace(line), nil
}
