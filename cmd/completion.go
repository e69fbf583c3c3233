// Package cmd provides CLI utilities for devkit
package cmd

import (
	"fmt"
	"strings"
)

// Commands available in devkit
var commands = []string{
	"check",
	"watch",
	"clean",
	"push",
	"pull",
	"ai",
	"completion",
	"version",
	"help",
}

// commandDescriptions maps commands to their one-line help text.
var commandDescriptions = map[string]string{
	"check":      "Run the coding style checker",
	"watch":      "Re-run the checker on source changes",
	"clean":      "Remove build artifacts",
	"push":       "Stage, commit and push in one step",
	"pull":       "Pull remote changes",
	"ai":         "Ask the local AI model",
	"completion": "Generate shell completion scripts",
	"version":    "Show version information",
	"help":       "Show usage",
}

func getCommandDescription(cmd string) string {
	if desc, ok := commandDescriptions[cmd]; ok {
		return desc
	}
	return ""
}

// GenerateBashCompletion generates bash completion script
func GenerateBashCompletion() string {
	return fmt.Sprintf(`# bash completion for devkit
_devkit_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Commands
    opts="%s"

    # Command-specific options
    case "${prev}" in
        check)
            opts="--force-pull --yes -y --quiet -q --json --verbose -v"
            ;;
        clean)
            opts="--dry-run"
            ;;
        ai)
            opts="--model --host"
            ;;
        completion)
            opts="bash zsh"
            ;;
        watch|push|pull)
            opts=""
            ;;
    esac

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
}

complete -F _devkit_completions devkit
`, strings.Join(commands, " "))
}

// GenerateZshCompletion generates zsh completion script
func GenerateZshCompletion() string {
	cmdList := make([]string, len(commands))
	for i, cmd := range commands {
		cmdList[i] = fmt.Sprintf("    '%s:%s'", cmd, getCommandDescription(cmd))
	}

	return fmt.Sprintf(`#compdef devkit

_devkit() {
    local -a commands
    commands=(
%s
    )

    _arguments -C \
        '1: :->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                check)
                    _arguments \
                        '--force-pull[Pull the image even if fresh]' \
                        '--yes[Skip confirmation]' \
                        '-y[Skip confirmation]' \
                        '--quiet[Minimal output]' \
                        '-q[Minimal output]' \
                        '--json[JSON output]' \
                        '--verbose[Show external commands]' \
                        '-v[Show external commands]'
                    ;;
                clean)
                    _arguments '--dry-run[Report without deleting]'
                    ;;
                ai)
                    _arguments \
                        '--model[Model to use]:model:' \
                        '--host[Server URL]:host:'
                    ;;
                completion)
                    _arguments '1:shell:(bash zsh)'
                    ;;
            esac
            ;;
    esac
}

_devkit "$@"
`, strings.Join(cmdList, "\n"))
}
