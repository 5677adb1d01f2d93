package input

import (
	"snake-term/config"
	"snake-term/game/types"
)

const (
	keyCtrlC = 0x03
	keyEsc   = 0x1b
)

// Keymap maps single bytes and arrow escape sequences to intents.
type Keymap struct {
	keys map[byte]types.Intent
}

// NewKeymap builds the key table for a layout. Arrows and Ctrl+C work in
// every layout.
func NewKeymap(layout config.Layout) Keymap {
	keys := map[byte]types.Intent{keyCtrlC: types.Quit}

	switch layout {
	case config.LayoutWASD:
		addLetter(keys, 'w', types.Move(types.Up))
		addLetter(keys, 'a', types.Move(types.Left))
		addLetter(keys, 's', types.Move(types.Down))
		addLetter(keys, 'd', types.Move(types.Right))
		addLetter(keys, 'q', types.Quit)
	default:
		addLetter(keys, 'z', types.Move(types.Up))
		addLetter(keys, 'q', types.Move(types.Left))
		addLetter(keys, 's', types.Move(types.Down))
		addLetter(keys, 'd', types.Move(types.Right))
		addLetter(keys, 'a', types.Quit)
	}
	return Keymap{keys: keys}
}

func addLetter(keys map[byte]types.Intent, lower byte, intent types.Intent) {
	keys[lower] = intent
	keys[lower-'a'+'A'] = intent
}

var arrows = map[byte]types.Direction{
	'A': types.Up,
	'B': types.Down,
	'C': types.Right,
	'D': types.Left,
}

// Decode classifies every complete key in buf. An escape sequence cut off
// at the end of buf is returned as rest so the caller can prepend it to the
// next read. Unrecognised keys are discarded.
func (k Keymap) Decode(buf []byte) (intents []types.Intent, rest []byte) {
	for i := 0; i < len(buf); {
		if buf[i] != keyEsc {
			if intent, ok := k.keys[buf[i]]; ok {
				intents = append(intents, intent)
			}
			i++
			continue
		}

		n, final, complete := escapeSequence(buf[i:])
		if !complete {
			return intents, buf[i:]
		}
		if dir, ok := arrows[final]; ok {
			intents = append(intents, types.Move(dir))
		}
		i += n
	}
	return intents, nil
}

// escapeSequence measures the sequence starting with ESC at seq[0] and
// returns its length and final byte. Arrow keys arrive as ESC [ A or
// ESC O A; with modifiers as CSI parameters, e.g. ESC [ 1 ; 5 A.
// Alt+key arrives as ESC followed by the key.
func escapeSequence(seq []byte) (n int, final byte, complete bool) {
	if len(seq) < 2 {
		return 0, 0, false
	}
	switch seq[1] {
	case 'O':
		if len(seq) < 3 {
			return 0, 0, false
		}
		return 3, seq[2], true
	case '[':
		for j := 2; j < len(seq); j++ {
			switch b := seq[j]; {
			case b >= 0x20 && b <= 0x3f:
				// parameter and intermediate bytes
			case b >= 0x40 && b <= 0x7e:
				return j + 1, b, true
			default:
				// Malformed: drop what was read and decode b normally.
				return j, 0, true
			}
		}
		return 0, 0, false
	default:
		if seq[1] < 0x20 {
			// A control key after a bare ESC, such as Ctrl+C, still counts.
			return 1, 0, true
		}
		return 2, 0, true
	}
}
