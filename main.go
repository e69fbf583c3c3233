// Package main implements the devkit CLI, a bundle of everyday developer
// helpers: a containerized coding-style checker, artifact cleanup, git
// shortcuts, and a local AI prompt.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"devkit/cmd"
	"devkit/internal/ai"
	"devkit/internal/checker"
	"devkit/internal/clean"
	"devkit/internal/config"
	"devkit/internal/execx"
	"devkit/internal/gitx"
	"devkit/internal/image"
	"devkit/internal/tui"
	"devkit/internal/version"
)

// Version information is managed in internal/version package
// GoReleaser injects version info directly via ldflags

// parseCommonFlags extracts common non-interactive flags from args
// Returns: flags, verbose, remainingArgs
func parseCommonFlags(args []string) (tui.NonInteractiveFlags, bool, []string) {
	flags := tui.NonInteractiveFlags{}
	verbose := false
	var remaining []string

	for _, arg := range args {
		switch arg {
		case "--yes", "-y":
			flags.Yes = true
		case "--quiet", "-q":
			flags.Mode = tui.OutputQuiet
		case "--json":
			flags.Mode = tui.OutputJSON
		case "--verbose", "-v":
			verbose = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return flags, verbose, remaining
}

// selectCallback picks the UI implementation matching the common flags.
func selectCallback(flags tui.NonInteractiveFlags) tui.UICallback {
	if flags.Yes || flags.Mode != tui.OutputNormal {
		return tui.NewNonInteractiveCallback(flags)
	}
	return tui.NewCallback()
}

// newCheckService wires the style-checker pipeline: settings, privilege
// resolution, docker client, acquisition policy.
func newCheckService(ctx context.Context, flags tui.NonInteractiveFlags, verbose, forcePull bool) (*checker.Service, error) {
	if !image.IsInstalled() {
		return nil, checker.ErrDockerNotFound
	}

	callback := selectCallback(flags)

	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("failed to locate config directory: %w", err)
	}
	settings, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	resolver := &image.PrivilegeResolver{
		Settings: settings,
		Store:    config.NewStore(cfgPath),
		UI:       callback,
	}
	useSudo, err := resolver.Resolve()
	if err != nil {
		return nil, err
	}
	if useSudo {
		// Prime the credential cache now so later docker calls don't hang
		// on a password prompt nobody can see.
		sudo := &execx.Runner{Bin: "sudo", Verbose: verbose}
		if err := sudo.RunInteractive(ctx, "-v"); err != nil {
			return nil, fmt.Errorf("sudo authentication failed: %w", err)
		}
	}

	runtime := image.NewSystemClient(useSudo, verbose)
	return &checker.Service{
		Runtime: runtime,
		Policy: &image.Policy{
			Runtime:   runtime,
			Stamps:    image.NewStampStore(),
			UI:        callback,
			RemoteRef: settings.RemoteImage,
			LocalTag:  settings.LocalImage,
			ForcePull: forcePull,
		},
		UI:      callback,
		Out:     os.Stdout,
		Colored: tui.ColorEnabled() && flags.Mode == tui.OutputNormal,
	}, nil
}

// projectDir returns the first non-flag argument, defaulting to the
// current directory.
func projectDir(args []string) string {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			return arg
		}
	}
	return "."
}

func main() {
	if len(os.Args) < 2 {
		tui.PrintHelp()
		os.Exit(0)
	}

	command := os.Args[1]

	// Handle help flags
	if command == "--help" || command == "-h" || command == "help" {
		tui.PrintHelp()
		os.Exit(0)
	}

	// Handle version flag
	if command == "--version" || command == "version" {
		fmt.Printf("devkit %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
		os.Exit(0)
	}

	ctx := context.Background()

	switch command {
	case "check":
		flags, verbose, args := parseCommonFlags(os.Args[2:])

		forcePull := false
		for _, arg := range args {
			if arg == "--force-pull" {
				forcePull = true
			}
		}

		svc, err := newCheckService(ctx, flags, verbose, forcePull)
		if err != nil {
			tui.PrintError("Check Failed", err.Error())
			os.Exit(1)
		}

		summary, err := svc.Run(ctx, projectDir(args))
		if err != nil {
			tui.PrintError("Check Failed", err.Error())
			os.Exit(1)
		}
		if summary.Total > 0 {
			os.Exit(1)
		}

	case "watch":
		flags, verbose, args := parseCommonFlags(os.Args[2:])

		svc, err := newCheckService(ctx, flags, verbose, false)
		if err != nil {
			tui.PrintError("Watch Failed", err.Error())
			os.Exit(1)
		}

		dir := projectDir(args)

		// Run once up front, then re-run on changes. A non-empty summary is
		// not fatal in watch mode; the loop keeps going.
		if _, err := svc.Run(ctx, dir); err != nil {
			svc.UI.ShowError("Check Failed", err.Error())
		}

		err = svc.Watch(dir, func() error {
			_, err := svc.Run(ctx, dir)
			return err
		})
		if err != nil {
			tui.PrintError("Watch Failed", err.Error())
			os.Exit(1)
		}

	case "clean":
		flags, _, args := parseCommonFlags(os.Args[2:])
		callback := selectCallback(flags)

		dryRun := false
		for _, arg := range args {
			if arg == "--dry-run" {
				dryRun = true
			}
		}

		stats, err := clean.Run(projectDir(args), clean.DefaultPatterns, dryRun)
		if err != nil {
			callback.ShowError("Clean Failed", err.Error())
			os.Exit(1)
		}

		if flags.Mode == tui.OutputJSON {
			_ = callback.FormatJSON(tui.JSONOutput{
				Status: "success",
				Data: map[string]interface{}{
					"dry_run":    dryRun,
					"file_count": stats.FileCount,
					"byte_count": stats.ByteCount,
					"removed":    stats.Removed,
				},
			})
			return
		}

		for _, rel := range stats.Removed {
			callback.ShowInfo("  " + rel)
		}
		if stats.FileCount == 0 {
			callback.ShowSuccess("Nothing to clean")
		} else if dryRun {
			callback.ShowSuccess(fmt.Sprintf("Would remove %d file(s), %d bytes", stats.FileCount, stats.ByteCount))
		} else {
			callback.ShowSuccess(fmt.Sprintf("Removed %d file(s), %d bytes", stats.FileCount, stats.ByteCount))
		}

	case "push":
		flags, verbose, args := parseCommonFlags(os.Args[2:])
		callback := selectCallback(flags)

		if !gitx.IsInstalled() {
			tui.PrintError("Error", "git not found.")
			os.Exit(1)
		}

		message := strings.Join(args, " ")
		if message == "" {
			message = "wip"
		}

		git := gitx.NewSystemClient(".", verbose)

		hasChanges, err := git.HasChanges(ctx)
		if err != nil {
			callback.ShowError("Push Failed", err.Error())
			os.Exit(1)
		}

		if hasChanges {
			if err := git.AddAll(ctx); err != nil {
				callback.ShowError("Push Failed", err.Error())
				os.Exit(1)
			}
			if err := git.Commit(ctx, message); err != nil {
				callback.ShowError("Commit Failed", err.Error())
				os.Exit(1)
			}
		} else {
			callback.ShowInfo("No local changes, pushing existing commits")
		}

		if err := git.Push(ctx); err != nil {
			callback.ShowError("Push Failed", err.Error())
			os.Exit(1)
		}

		branch, err := git.CurrentBranch(ctx)
		if err != nil {
			branch = "HEAD"
		}
		callback.ShowSuccess("Pushed " + branch)

	case "pull":
		flags, verbose, _ := parseCommonFlags(os.Args[2:])
		callback := selectCallback(flags)

		if !gitx.IsInstalled() {
			tui.PrintError("Error", "git not found.")
			os.Exit(1)
		}

		git := gitx.NewSystemClient(".", verbose)

		progress := tui.NewProgressTracker(callback.GetOutputMode(), "Pulling remote changes")
		progress.Update("git pull")
		if err := git.Pull(ctx); err != nil {
			progress.Fail(err)
			callback.ShowError("Pull Failed", err.Error())
			os.Exit(1)
		}
		progress.Complete("Pulled remote changes")

	case "ai":
		flags, _, args := parseCommonFlags(os.Args[2:])
		callback := selectCallback(flags)

		cfgPath, err := config.DefaultPath()
		if err != nil {
			callback.ShowError("AI Failed", err.Error())
			os.Exit(1)
		}
		settings, err := config.Load(cfgPath)
		if err != nil {
			callback.ShowError("AI Failed", err.Error())
			os.Exit(1)
		}

		var promptWords []string
		for i := 0; i < len(args); i++ {
			switch args[i] {
			case "--model":
				if i+1 >= len(args) {
					callback.ShowError("Invalid Flag", "--model requires a model name")
					os.Exit(1)
				}
				settings.AIModel = args[i+1]
				i++
			case "--host":
				if i+1 >= len(args) {
					callback.ShowError("Invalid Flag", "--host requires a URL")
					os.Exit(1)
				}
				settings.AIHost = args[i+1]
				i++
			default:
				promptWords = append(promptWords, args[i])
			}
		}

		if len(promptWords) == 0 {
			tui.PrintError("Usage", "devkit ai [--model <name>] [--host <url>] <prompt>")
			os.Exit(1)
		}

		client := ai.NewClient(settings.AIHost, settings.AIModel)
		if err := client.Stream(ctx, strings.Join(promptWords, " "), os.Stdout); err != nil {
			callback.ShowError("AI Failed", err.Error())
			os.Exit(1)
		}

	case "completion":
		// Generate shell completion script
		if len(os.Args) < 3 {
			tui.PrintError("Usage", "devkit completion <shell>\nSupported shells: bash, zsh")
			os.Exit(1)
		}

		shell := os.Args[2]
		var script string

		switch shell {
		case "bash":
			script = cmd.GenerateBashCompletion()
		case "zsh":
			script = cmd.GenerateZshCompletion()
		default:
			tui.PrintError("Invalid Shell", fmt.Sprintf("'%s' is not supported. Use: bash or zsh", shell))
			os.Exit(1)
		}

		fmt.Println(script)

	default:
		tui.PrintError("Unknown Command", fmt.Sprintf("'%s' is not a valid devkit command", command))
		fmt.Println()
		tui.PrintHelp()
		os.Exit(1)
	}
}
