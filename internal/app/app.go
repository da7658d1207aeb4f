package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/atomicstack/tokencalc/internal/expression"
	"github.com/atomicstack/tokencalc/internal/logging/events"
	"github.com/atomicstack/tokencalc/internal/source"
	"github.com/atomicstack/tokencalc/internal/store"
	"github.com/atomicstack/tokencalc/internal/suggest"
	"github.com/atomicstack/tokencalc/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Endpoint   string
	Timeout    time.Duration
	Match      string
	Width      int
	Height     int
	ShowFooter bool
	Mouse      bool
	Blink      bool
	Eval       string
}

// Run bootstraps and executes the Bubble Tea program. The suggestion request
// is cancelled when the program exits.
func Run(cfg Config) error {
	mode, err := suggest.ParseMode(cfg.Match)
	if err != nil {
		return fmt.Errorf("match mode: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := source.NewClient(cfg.Endpoint, source.WithTimeout(cfg.Timeout))
	adapter := source.NewAdapter(client, mode)
	input := store.NewInputStore(expression.NewEvaluator())
	model := ui.NewModel(ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Blink:      cfg.Blink,
		Mouse:      cfg.Mouse,
		Context:    ctx,
	}, adapter, input)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	program := tea.NewProgram(model, opts...)
	_, err = program.Run()
	events.App.Exit(exitReason(err))
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// RunEval evaluates text without starting the UI and writes the result to w.
// Sentinel results are printed like numbers.
func RunEval(w io.Writer, text string) error {
	res := store.NewInputStore(expression.NewEvaluator()).CalculateValues(text)
	events.App.Eval(text, res.String())
	if _, err := fmt.Fprintln(w, res.String()); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

func exitReason(err error) string {
	switch {
	case err == nil:
		return "quit"
	case errors.Is(err, tea.ErrProgramKilled):
		return "killed"
	default:
		return err.Error()
	}
}
