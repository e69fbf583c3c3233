package tui

import "fmt"

// PrintHelp prints the top-level usage text.
func PrintHelp() {
	fmt.Println(StyleTitle("devkit") + " - everyday developer tools")
	fmt.Println()
	fmt.Println("Usage: devkit <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  check [dir]        Run the coding style checker on a project")
	fmt.Println("  watch [dir]        Re-run the checker when source files change")
	fmt.Println("  clean [dir]        Remove build artifacts (*.o, *~, core dumps, ...)")
	fmt.Println("  push [message]     git add -A, commit and push in one step")
	fmt.Println("  pull               git pull")
	fmt.Println("  ai <prompt>        Ask the local AI model")
	fmt.Println("  completion <shell> Generate bash or zsh completion")
	fmt.Println("  version            Show version information")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --force-pull       check: refresh the checker image even if fresh")
	fmt.Println("  --dry-run          clean: report files without deleting them")
	fmt.Println("  --model, --host    ai: override the model or server URL")
	fmt.Println("  --yes, -y          Auto-approve prompts (non-interactive)")
	fmt.Println("  --quiet, -q        Minimal output")
	fmt.Println("  --json             Structured JSON output")
	fmt.Println("  --verbose, -v      Show external commands as they run")
}
