package main

import (
	"errors"
	"testing"
	"time"

	"github.com/atomicstack/tokencalc/internal/app"
	"github.com/atomicstack/tokencalc/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		App: app.Config{
			Endpoint:   "http://example.invalid/list",
			Timeout:    5 * time.Second,
			Match:      "prefix",
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Mouse:      true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		File: "tokencalc.toml",
		Flags: map[string]string{
			"endpoint": "http://example.invalid/list",
			"timeout":  "5s",
			"match":    "prefix",
		},
		Args: []string{"--endpoint", "http://example.invalid/list"},
	}
}

func TestStartupTraceDescribesSourceAndDisplay(t *testing.T) {
	terminal := terminalInfo{Stdin: true, Stdout: true, Width: 120, Height: 40}
	trace := newStartupTrace(testConfig(), terminal)

	if trace.Mode != modeInteractive {
		t.Fatalf("expected interactive mode, got %q", trace.Mode)
	}
	want := sourceSettings{Endpoint: "http://example.invalid/list", Timeout: "5s", Match: "prefix"}
	if trace.Source != want {
		t.Fatalf("expected source %+v, got %+v", want, trace.Source)
	}
	if trace.Display.Width != 80 || trace.Display.Height != 24 || !trace.Display.Footer || !trace.Display.Mouse {
		t.Fatalf("unexpected display settings %+v", trace.Display)
	}
	if trace.ConfigFile != "tokencalc.toml" {
		t.Fatalf("expected config file, got %q", trace.ConfigFile)
	}
	if trace.Flags["match"] != "prefix" {
		t.Fatalf("expected match flag, got %q", trace.Flags["match"])
	}
	if len(trace.Argv) != 2 {
		t.Fatalf("expected argv to be carried, got %v", trace.Argv)
	}
	if trace.Terminal != terminal {
		t.Fatalf("expected terminal %+v, got %+v", terminal, trace.Terminal)
	}
}

func TestStartupTraceEvalMode(t *testing.T) {
	cfg := testConfig()
	cfg.App.Eval = "Apple (5)"
	if mode := newStartupTrace(cfg, terminalInfo{}).Mode; mode != modeEval {
		t.Fatalf("expected eval mode, got %q", mode)
	}
}

func TestRequireTerminal(t *testing.T) {
	cases := []struct {
		info terminalInfo
		ok   bool
	}{
		{terminalInfo{Stdin: true, Stdout: true}, true},
		{terminalInfo{Stdin: false, Stdout: true}, false},
		{terminalInfo{Stdin: true, Stdout: false}, false},
	}
	for _, tc := range cases {
		err := requireTerminal(tc.info)
		if tc.ok && err != nil {
			t.Fatalf("expected %+v to be accepted, got %v", tc.info, err)
		}
		if !tc.ok && !errors.Is(err, errNoTerminal) {
			t.Fatalf("expected errNoTerminal for %+v, got %v", tc.info, err)
		}
	}
}

func TestProbeTerminalWithoutTTY(t *testing.T) {
	info := probeTerminal()
	if !info.Stdout && (info.Width != 0 || info.Height != 0) {
		t.Fatalf("expected no size without a terminal on stdout, got %+v", info)
	}
}
