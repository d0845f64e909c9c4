package shell

import (
	"errors"
	"fmt"
	"io"
)

// Shells lists the shells WriteInit supports.
var Shells = []string{"bash", "zsh", "fish"}

// ErrUnsupportedShell is returned by WriteInit for shells not in Shells.
var ErrUnsupportedShell = errors.New("unsupported shell")

// The prompt hook exports MOODCTL_* from "moodctl status --env" once per
// prompt. moodctl_prompt_info only reads those variables, so a prompt that
// calls it does not start a second process. It prints the latest mood and
// the day streak, or a nudge when nothing was recorded today.
const posixCommon = `# moodctl shell integration
__moodctl_prompt_hook() {
  eval "$(command moodctl status --env 2>/dev/null)"
}

moodctl_prompt_info() {
  [ -n "$MOODCTL_MOOD" ] || return 0
  if [ "${MOODCTL_TODAY_COUNT:-0}" = "0" ]; then
    printf '%s?' "$MOODCTL_MOOD"
  elif [ "${MOODCTL_STREAK:-0}" = "0" ]; then
    printf '%s' "$MOODCTL_MOOD"
  else
    printf '%s %s%s' "$MOODCTL_MOOD" "$MOODCTL_STREAK" "$MOODCTL_STREAK_ICON"
  fi
}

# mood: open the picker, or record directly ("mood happy").
mood() {
  if [ $# -eq 0 ]; then
    command moodctl
  else
    command moodctl record "$@" && __moodctl_prompt_hook
  fi
}
`

const bashHook = `
if [[ -z "$PROMPT_COMMAND" ]]; then
  PROMPT_COMMAND="__moodctl_prompt_hook"
else
  PROMPT_COMMAND="__moodctl_prompt_hook;${PROMPT_COMMAND}"
fi

eval "$(command moodctl completion bash 2>/dev/null)"
`

const zshHook = `
autoload -Uz add-zsh-hook
add-zsh-hook precmd __moodctl_prompt_hook

eval "$(command moodctl completion zsh 2>/dev/null)"
`

// fish understands the export lines through its export wrapper.
const fishInit = `# moodctl shell integration
function __moodctl_prompt_hook --on-event fish_prompt
  command moodctl status --env 2>/dev/null | source
end

function moodctl_prompt_info
  test -n "$MOODCTL_MOOD"; or return 0
  if test "$MOODCTL_TODAY_COUNT" = "0"
    printf '%s?' "$MOODCTL_MOOD"
  else if test "$MOODCTL_STREAK" = "0"
    printf '%s' "$MOODCTL_MOOD"
  else
    printf '%s %s%s' "$MOODCTL_MOOD" "$MOODCTL_STREAK" "$MOODCTL_STREAK_ICON"
  end
end

# mood: open the picker, or record directly ("mood happy").
function mood
  if test (count $argv) -eq 0
    command moodctl
  else
    command moodctl record $argv; and __moodctl_prompt_hook
  end
end

command moodctl completion fish 2>/dev/null | source
`

// WriteInit writes the integration script for the named shell.
func WriteInit(w io.Writer, shell string) error {
	var script string
	switch shell {
	case "bash":
		script = posixCommon + bashHook
	case "zsh":
		script = posixCommon + zshHook
	case "fish":
		script = fishInit
	default:
		return fmt.Errorf("%w %q (supported: %v)", ErrUnsupportedShell, shell, Shells)
	}
	_, err := io.WriteString(w, script)
	return err
}
