// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Carlos-Gonzalez-dev/Craftboard-sub000/internal/meta"
)

const bashCompletionScript = `# bash completion for craftboard
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_craftboard()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "notes tasks music cards tags graph board cache completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local common="--attrs -a --color -c --filter -f --local -l --output -o --refresh -r --sort -s --titles -t --tldr --url --token"

    case "$cmd" in
    notes)
      local opts="$common"
            ;;
        tasks)
      local opts="$common --open"
            ;;
        music)
      local opts="$common --rollup"
            ;;
        cards)
      local opts="$common --decks --log"
            ;;
        tags)
      local opts="$common --with"
            ;;
        graph)
      local opts="--refresh -r --tldr --url --token --orphans --tag-nodes --dot"
            ;;
        board)
      local opts="--tldr --url --token"
            ;;
        cache)
            local opts="stats clear purge diff"
            if [[ ${COMP_CWORD} -eq 2 ]]; then
                COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
                return 0
            fi
            case "${COMP_WORDS[2]}" in
            purge) opts="--older" ;;
            diff)  opts="notes tasks music cards tags --write --color -c --url --token" ;;
            *)     opts="" ;;
            esac
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--rollup" ]]; then
        COMPREPLY=( $(compgen -W "artist genre" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _craftboard craftboard
`

const zshCompletionScript = `#compdef craftboard

_craftboard() {
  local -a cmds
  cmds=(
    'notes:notes query'
    'tasks:tasks query'
    'music:music library query'
    'cards:flashcards query'
    'tags:tag index across collections'
    'graph:note link graph'
    'board:interactive dashboard'
    'cache:cache administration'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-l --local)'{-l,--local}'[timestamps in local time]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-r --refresh)'{-r,--refresh}'[bypass the cache]'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  '--url[remote base URL]:url'
  '--token[bearer token]:token'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'craftboard commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    notes)
      _arguments -C $common
      ;;
    tasks)
      _arguments -C \
        $common \
        '--open[only open tasks]'
      ;;
    music)
      _arguments -C \
        $common \
        '--rollup[roll up by field]:field:(artist genre)'
      ;;
    cards)
      _arguments -C \
        $common \
        '--decks[summarize card counts per deck]' \
        '--log[show recorded study sessions]'
      ;;
    tags)
      _arguments -C \
        $common \
        '--with[documents carrying a tag]:tag'
      ;;
    graph)
      _arguments -C \
        '(-r --refresh)'{-r,--refresh}'[bypass the cache]' \
        '--orphans[keep unlinked notes]' \
        '--tag-nodes[add tag nodes]' \
        '--dot[emit Graphviz dot]' \
        '--url[remote base URL]:url' \
        '--token[bearer token]:token'
      ;;
    board)
      _arguments -C \
        '--url[remote base URL]:url' \
        '--token[bearer token]:token'
      ;;
    cache)
      _arguments '1: :((stats clear purge diff))'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _craftboard craftboard
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(os.Stdout, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(os.Stdout, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: craftboard completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "craftboard completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
