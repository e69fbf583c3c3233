package main

import (
	"testing"

	"devkit/internal/tui"
)

// TestParseCommonFlags verifies the shared flag extraction used by every
// subcommand: common flags are consumed, everything else passes through.
func TestParseCommonFlags(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantYes       bool
		wantMode      tui.OutputMode
		wantVerbose   bool
		wantRemaining []string
	}{
		{
			name:          "no flags",
			args:          []string{"src"},
			wantMode:      tui.OutputNormal,
			wantRemaining: []string{"src"},
		},
		{
			name:     "yes long and short",
			args:     []string{"--yes", "-y"},
			wantYes:  true,
			wantMode: tui.OutputNormal,
		},
		{
			name:     "quiet",
			args:     []string{"-q"},
			wantMode: tui.OutputQuiet,
		},
		{
			name:     "json",
			args:     []string{"--json"},
			wantMode: tui.OutputJSON,
		},
		{
			name:          "verbose is consumed",
			args:          []string{"--verbose", "src"},
			wantMode:      tui.OutputNormal,
			wantVerbose:   true,
			wantRemaining: []string{"src"},
		},
		{
			name:          "command-specific flags pass through",
			args:          []string{"--force-pull", "-y", "src"},
			wantYes:       true,
			wantMode:      tui.OutputNormal,
			wantRemaining: []string{"--force-pull", "src"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, verbose, remaining := parseCommonFlags(tt.args)

			if flags.Yes != tt.wantYes {
				t.Errorf("Yes = %v, want %v", flags.Yes, tt.wantYes)
			}
			if flags.Mode != tt.wantMode {
				t.Errorf("Mode = %v, want %v", flags.Mode, tt.wantMode)
			}
			if verbose != tt.wantVerbose {
				t.Errorf("verbose = %v, want %v", verbose, tt.wantVerbose)
			}
			if len(remaining) != len(tt.wantRemaining) {
				t.Fatalf("remaining = %v, want %v", remaining, tt.wantRemaining)
			}
			for i := range tt.wantRemaining {
				if remaining[i] != tt.wantRemaining[i] {
					t.Errorf("remaining[%d] = %q, want %q", i, remaining[i], tt.wantRemaining[i])
				}
			}
		})
	}
}

// TestProjectDir verifies the positional-directory convention: first
// non-flag argument wins, default is the current directory.
func TestProjectDir(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"empty", nil, "."},
		{"only flags", []string{"--force-pull", "--dry-run"}, "."},
		{"directory", []string{"src"}, "src"},
		{"directory after flag", []string{"--force-pull", "src"}, "src"},
		{"first directory wins", []string{"a", "b"}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := projectDir(tt.args); got != tt.want {
				t.Errorf("projectDir(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

// TestSelectCallback verifies the interactive/non-interactive selection
// rule main applies before wiring services.
func TestSelectCallback(t *testing.T) {
	tests := []struct {
		name            string
		flags           tui.NonInteractiveFlags
		wantInteractive bool
	}{
		{"defaults are interactive", tui.NonInteractiveFlags{}, true},
		{"yes forces non-interactive", tui.NonInteractiveFlags{Yes: true}, false},
		{"quiet forces non-interactive", tui.NonInteractiveFlags{Mode: tui.OutputQuiet}, false},
		{"json forces non-interactive", tui.NonInteractiveFlags{Mode: tui.OutputJSON}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, interactive := selectCallback(tt.flags).(*tui.Callback)
			if interactive != tt.wantInteractive {
				t.Errorf("interactive = %v, want %v", interactive, tt.wantInteractive)
			}
		})
	}
}
