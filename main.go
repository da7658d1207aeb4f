package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/tokencalc/internal/app"
	"github.com/atomicstack/tokencalc/internal/config"
	"github.com/atomicstack/tokencalc/internal/logging"
	"github.com/atomicstack/tokencalc/internal/logging/events"
	"golang.org/x/term"
)

const (
	modeEval        = "eval"
	modeInteractive = "interactive"
)

var errNoTerminal = errors.New("the input needs a terminal on stdin and stdout; use -eval TEXT to evaluate without one")

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	terminal := probeTerminal()
	events.App.Start(newStartupTrace(runtimeCfg, terminal))

	if runtimeCfg.App.Eval != "" {
		if err := app.RunEval(os.Stdout, runtimeCfg.App.Eval); err != nil {
			exitWith(err)
		}
		return
	}
	if err := requireTerminal(terminal); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := app.Run(runtimeCfg.App); err != nil {
		exitWith(err)
	}
}

func exitWith(err error) {
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// startupTrace is the payload of the app.start trace event.
type startupTrace struct {
	Mode       string            `json:"mode"`
	Source     sourceSettings    `json:"source"`
	Display    displaySettings   `json:"display"`
	ConfigFile string            `json:"configFile,omitempty"`
	LogFile    string            `json:"logFile"`
	Flags      map[string]string `json:"flags"`
	Argv       []string          `json:"argv"`
	Executable string            `json:"executable,omitempty"`
	Cwd        string            `json:"cwd,omitempty"`
	Terminal   terminalInfo      `json:"terminal"`
}

type sourceSettings struct {
	Endpoint string `json:"endpoint"`
	Timeout  string `json:"timeout"`
	Match    string `json:"match"`
}

type displaySettings struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Footer bool `json:"footer"`
	Mouse  bool `json:"mouse"`
	Blink  bool `json:"blink"`
}

func newStartupTrace(cfg config.Config, terminal terminalInfo) startupTrace {
	mode := modeInteractive
	if cfg.App.Eval != "" {
		mode = modeEval
	}
	trace := startupTrace{
		Mode: mode,
		Source: sourceSettings{
			Endpoint: cfg.App.Endpoint,
			Timeout:  cfg.App.Timeout.String(),
			Match:    cfg.App.Match,
		},
		Display: displaySettings{
			Width:  cfg.App.Width,
			Height: cfg.App.Height,
			Footer: cfg.App.ShowFooter,
			Mouse:  cfg.App.Mouse,
			Blink:  cfg.App.Blink,
		},
		ConfigFile: cfg.File,
		LogFile:    logging.Path(),
		Flags:      cfg.Flags,
		Argv:       cfg.Args,
		Terminal:   terminal,
	}
	if exe, err := os.Executable(); err == nil {
		trace.Executable = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		trace.Cwd = cwd
	}
	return trace
}

// terminalInfo records whether the Bubble Tea input and output are terminals.
type terminalInfo struct {
	Stdin  bool   `json:"stdin"`
	Stdout bool   `json:"stdout"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

func probeTerminal() terminalInfo {
	info := terminalInfo{
		Stdin:  term.IsTerminal(int(os.Stdin.Fd())),
		Stdout: term.IsTerminal(int(os.Stdout.Fd())),
	}
	if !info.Stdout {
		return info
	}
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Width, info.Height = width, height
	return info
}

func requireTerminal(info terminalInfo) error {
	if !info.Stdin || !info.Stdout {
		return errNoTerminal
	}
	return nil
}
