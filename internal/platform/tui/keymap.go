package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pingpongcat/sky-over-kharkov/internal/core"
)

// KeyCommand is the decoded intent of one key press. At most one of the
// field groups is set.
type KeyCommand struct {
	Action core.Action // discrete sim action, ActionNone when unset
	Level  int         // level selection 1-3, 0 when unset
	MoveX  int         // crosshair cell delta
	MoveY  int
	Fire   bool // fire at the crosshair
	Scores bool // toggle the scoreboard view
	Quit   bool
}

// MapKey translates a key message to a command.
// This centralizes key bindings and makes them testable.
func MapKey(msg tea.KeyMsg) KeyCommand {
	switch msg.String() {
	case "ctrl+c", "q":
		return KeyCommand{Action: core.ActionQuit, Quit: true}
	case "p", "esc":
		return KeyCommand{Action: core.ActionPause}
	case "r":
		return KeyCommand{Action: core.ActionRestart}
	case "b":
		return KeyCommand{Action: core.ActionToggleBreakdown}
	case "n":
		return KeyCommand{Action: core.ActionToggleNegatives}
	case "1":
		return KeyCommand{Level: 1}
	case "2":
		return KeyCommand{Level: 2}
	case "3":
		return KeyCommand{Level: 3}
	case "up", "w":
		return KeyCommand{MoveY: -1}
	case "down", "s":
		return KeyCommand{MoveY: 1}
	case "left", "a":
		return KeyCommand{MoveX: -1}
	case "right", "d":
		return KeyCommand{MoveX: 1}
	case " ", "f":
		return KeyCommand{Fire: true}
	case "tab":
		return KeyCommand{Scores: true}
	}
	return KeyCommand{}
}
