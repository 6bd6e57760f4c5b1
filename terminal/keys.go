package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// Action is the meaning of a key press
type Action uint8

const (
	ActionNone Action = iota
	ActionSteer
	ActionQuit
	ActionConfirm
	ActionMute
)

// runeDirections maps WASD and vi keys to headings
var runeDirections = map[rune]core.Direction{
	'w': core.DirUp,
	'a': core.DirLeft,
	's': core.DirDown,
	'd': core.DirRight,
	'k': core.DirUp,
	'h': core.DirLeft,
	'j': core.DirDown,
	'l': core.DirRight,
}

// MapKey translates a key event; unknown keys map to ActionNone
func MapKey(ev *tcell.EventKey) (Action, core.Direction) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionSteer, core.DirUp
	case tcell.KeyDown:
		return ActionSteer, core.DirDown
	case tcell.KeyLeft:
		return ActionSteer, core.DirLeft
	case tcell.KeyRight:
		return ActionSteer, core.DirRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, core.DirNone
	case tcell.KeyEnter:
		return ActionConfirm, core.DirNone
	case tcell.KeyRune:
		if d, ok := runeDirections[unicode.ToLower(ev.Rune())]; ok {
			return ActionSteer, d
		}
		switch unicode.ToLower(ev.Rune()) {
		case ' ':
			return ActionConfirm, core.DirNone
		case 'm':
			return ActionMute, core.DirNone
		}
	}
	return ActionNone, core.DirNone
}
