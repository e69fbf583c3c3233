// Package execx runs external commands (git, docker, sudo) with captured
// output and typed errors. It is the single subprocess layer for all tools
// in this repository.
package execx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes one external binary in a fixed working directory.
type Runner struct {
	Bin     string   // binary name, resolved via PATH
	Prefix  []string // optional wrapper argv, e.g. ["sudo"]
	Dir     string   // working directory ("" means inherit)
	Verbose bool     // log commands to stderr
}

// New creates a Runner for the given binary.
func New(bin string) *Runner {
	return &Runner{Bin: bin}
}

// argv builds the full command line including the wrapper prefix.
func (r *Runner) argv(args []string) (string, []string) {
	if len(r.Prefix) == 0 {
		return r.Bin, args
	}
	full := append(append([]string{}, r.Prefix[1:]...), r.Bin)
	return r.Prefix[0], append(full, args...)
}

// Run executes the command and returns trimmed stdout.
func (r *Runner) Run(ctx context.Context, args ...string) (string, error) {
	bin, full := r.argv(args)
	if r.Verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] %s %s (in %s)\n", bin, strings.Join(full, " "), r.Dir)
	}
	cmd := exec.CommandContext(ctx, bin, full...)
	cmd.Dir = r.Dir
	cmd.Env = sanitizedEnv()
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", &CmdError{
				Bin:    r.Bin,
				Args:   args,
				Stderr: string(exitErr.Stderr),
				Err:    err,
			}
		}
		return "", err
	}
	return strings.TrimRight(string(out), " \t\r\n"), nil
}

// RunLines executes the command and returns stdout split by newlines.
func (r *Runner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	out, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// RunSilent executes the command, discarding output on success.
// On error, includes combined stdout+stderr in the error message.
func (r *Runner) RunSilent(ctx context.Context, args ...string) error {
	bin, full := r.argv(args)
	if r.Verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] %s %s (in %s)\n", bin, strings.Join(full, " "), r.Dir)
	}
	cmd := exec.CommandContext(ctx, bin, full...)
	cmd.Dir = r.Dir
	cmd.Env = sanitizedEnv()
	if output, err := cmd.CombinedOutput(); err != nil {
		return &CmdError{
			Bin:    r.Bin,
			Args:   args,
			Stderr: string(output),
			Err:    err,
		}
	}
	return nil
}

// RunInteractive executes the command wired to the caller's terminal.
// Used for subprocesses that prompt on their own (e.g. sudo password).
func (r *Runner) RunInteractive(ctx context.Context, args ...string) error {
	bin, full := r.argv(args)
	cmd := exec.CommandContext(ctx, bin, full...)
	cmd.Dir = r.Dir
	cmd.Env = sanitizedEnv()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &CmdError{Bin: r.Bin, Args: args, Err: err}
	}
	return nil
}

// IsInstalled returns true if the binary is available on PATH.
func IsInstalled(bin string) bool {
	_, err := exec.LookPath(bin)
	return err == nil
}

// sanitizedEnv returns the current environment with git hook variables removed.
// When devkit runs inside a git hook (pre-commit, post-merge, etc.),
// GIT_DIR and GIT_INDEX_FILE point at the outer repo and override cmd.Dir,
// causing git commands to target the wrong repository.
func sanitizedEnv() []string {
	var env []string
	for _, e := range os.Environ() {
		key := strings.SplitN(e, "=", 2)[0]
		switch strings.ToUpper(key) {
		case "GIT_DIR", "GIT_INDEX_FILE", "GIT_WORK_TREE",
			"GIT_OBJECT_DIRECTORY", "GIT_ALTERNATE_OBJECT_DIRECTORIES":
			continue
		}
		env = append(env, e)
	}
	return env
}
