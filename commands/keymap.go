package commands

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Chord is a normalized key combination. Ctrl+letter chords use the
// dedicated tcell control key codes with the modifier bit cleared, matching
// what terminals actually deliver; rune chords keep the rune plus its
// modifiers.
type Chord struct {
	Key  tcell.Key
	Mod  tcell.ModMask
	Rune rune
}

var namedKeys = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"esc":       tcell.KeyEscape,
	"delete":    tcell.KeyDelete,
	"backspace": tcell.KeyBackspace2,
}

func init() {
	for i := 0; i < 12; i++ {
		namedKeys[fmt.Sprintf("f%d", i+1)] = tcell.KeyF1 + tcell.Key(i)
	}
}

// ParseShortcut turns a shortcut label like "Ctrl+S", "Alt+Up" or "F1" into
// a Chord. The bool reports whether the label was understood.
func ParseShortcut(s string) (Chord, bool) {
	parts := strings.Split(s, "+")
	var ch Chord
	for _, mod := range parts[:len(parts)-1] {
		switch strings.ToLower(mod) {
		case "ctrl":
			ch.Mod |= tcell.ModCtrl
		case "alt":
			ch.Mod |= tcell.ModAlt
		case "shift":
			ch.Mod |= tcell.ModShift
		default:
			return Chord{}, false
		}
	}
	last := strings.ToLower(parts[len(parts)-1])
	if key, ok := namedKeys[last]; ok {
		ch.Key = key
		return ch, true
	}
	runes := []rune(last)
	if len(runes) != 1 {
		return Chord{}, false
	}
	r := runes[0]
	if ch.Mod&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
		ch.Key = tcell.KeyCtrlA + tcell.Key(r-'a')
		ch.Mod &^= tcell.ModCtrl
		return ch, true
	}
	ch.Key = tcell.KeyRune
	ch.Rune = r
	return ch, true
}

// normalize maps a key event onto the chord space ParseShortcut produces.
func normalize(ev *tcell.EventKey) Chord {
	ch := Chord{Key: ev.Key(), Mod: ev.Modifiers()}
	if ch.Key == tcell.KeyRune {
		ch.Rune = ev.Rune()
	}
	if ch.Key >= tcell.KeyCtrlA && ch.Key <= tcell.KeyCtrlZ {
		ch.Mod &^= tcell.ModCtrl
	}
	return ch
}

// Keymap resolves key events to commands through their shortcut labels.
type Keymap struct {
	chords map[Chord]*Command
}

// NewKeymap indexes every command whose shortcut parses. Commands with no
// shortcut, or an unparseable one, stay reachable only through their Run
// callback.
func NewKeymap(cmds []Command) *Keymap {
	km := &Keymap{chords: make(map[Chord]*Command, len(cmds))}
	for i := range cmds {
		if cmds[i].Shortcut == "" {
			continue
		}
		if ch, ok := ParseShortcut(cmds[i].Shortcut); ok {
			km.chords[ch] = &cmds[i]
		}
	}
	return km
}

// Lookup returns the command bound to the event, or nil.
func (km *Keymap) Lookup(ev *tcell.EventKey) *Command {
	return km.chords[normalize(ev)]
}
