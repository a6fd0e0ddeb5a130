package game

import "github.com/gdamore/tcell/v2"

// IntentFromKey maps a key event to an intent. quit is true for the keys
// that end the game loop.
func IntentFromKey(ev *tcell.EventKey) (intent Intent, quit bool) {
	return KeyIntent(ev.Key(), ev.Rune())
}

// KeyIntent maps a key and its rune to an intent.
func KeyIntent(key tcell.Key, ch rune) (intent Intent, quit bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return IntentNone, true
	case tcell.KeyUp:
		return IntentMoveUp, false
	case tcell.KeyDown:
		return IntentMoveDown, false
	case tcell.KeyLeft:
		return IntentMoveLeft, false
	case tcell.KeyRight:
		return IntentMoveRight, false
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return IntentNone, true
		case 'k':
			return IntentMoveUp, false
		case 'j':
			return IntentMoveDown, false
		case 'h':
			return IntentMoveLeft, false
		case 'l':
			return IntentMoveRight, false
		case ' ':
			return IntentTeleport, false
		}
	}
	return IntentNone, false
}
