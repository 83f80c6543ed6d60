package adapter

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/cellwindow/internal/console"
	"github.com/dshills/cellwindow/internal/input"
)

// keyTable maps native special keys to generic keys.
var keyTable = map[tcell.Key]input.Key{
	tcell.KeyEscape:    input.KeyEscape,
	tcell.KeyEnter:     input.KeyReturn,
	tcell.KeyTab:       input.KeyTab,
	tcell.KeyBacktab:   input.KeyTab,
	tcell.KeyBackspace: input.KeyBackspace,
	tcell.KeyDelete:    input.KeyDelete,
	tcell.KeyInsert:    input.KeyInsert,
	tcell.KeyHome:      input.KeyHome,
	tcell.KeyEnd:       input.KeyEnd,
	tcell.KeyPgUp:      input.KeyPageUp,
	tcell.KeyPgDn:      input.KeyPageDown,
	tcell.KeyUp:        input.KeyUp,
	tcell.KeyDown:      input.KeyDown,
	tcell.KeyLeft:      input.KeyLeft,
	tcell.KeyRight:     input.KeyRight,
	tcell.KeyCenter:    input.KeyNumPad5,
	tcell.KeyPause:     input.KeyPause,
	tcell.KeyPrint:     input.KeyPrintScreen,
	tcell.KeyHelp:      input.KeyHelp,
	tcell.KeyClear:     input.KeyClear,
	tcell.KeyCancel:    input.KeyCancel,
	tcell.KeyF1:        input.KeyF1,
	tcell.KeyF2:        input.KeyF2,
	tcell.KeyF3:        input.KeyF3,
	tcell.KeyF4:        input.KeyF4,
	tcell.KeyF5:        input.KeyF5,
	tcell.KeyF6:        input.KeyF6,
	tcell.KeyF7:        input.KeyF7,
	tcell.KeyF8:        input.KeyF8,
	tcell.KeyF9:        input.KeyF9,
	tcell.KeyF10:       input.KeyF10,
	tcell.KeyF11:       input.KeyF11,
	tcell.KeyF12:       input.KeyF12,
	tcell.KeyF13:       input.KeyF13,
	tcell.KeyF14:       input.KeyF14,
	tcell.KeyF15:       input.KeyF15,
	tcell.KeyF16:       input.KeyF16,
	tcell.KeyF17:       input.KeyF17,
	tcell.KeyF18:       input.KeyF18,
	tcell.KeyF19:       input.KeyF19,
	tcell.KeyF20:       input.KeyF20,
	tcell.KeyF21:       input.KeyF21,
	tcell.KeyF22:       input.KeyF22,
	tcell.KeyF23:       input.KeyF23,
	tcell.KeyF24:       input.KeyF24,
}

// mapKey translates a native key event to a generic key.
//
// Character keys map through input.KeyFromRune, so 'A' and 'a' are the
// same key. tcell's KeyCtrlA..KeyCtrlZ report the letter key; the ones that
// alias Tab, Enter and Backspace are caught by keyTable first.
func mapKey(ev console.Event) input.Key {
	if ev.Key == tcell.KeyRune {
		return input.KeyFromRune(ev.Rune)
	}
	if k, ok := keyTable[ev.Key]; ok {
		return k
	}
	switch {
	case ev.Key == tcell.KeyBackspace2:
		return input.KeyBackspace
	case ev.Key >= tcell.KeyCtrlA && ev.Key <= tcell.KeyCtrlZ:
		return input.Key('a' + rune(ev.Key-tcell.KeyCtrlA))
	case ev.Key == tcell.KeyCtrlSpace:
		return input.KeySpace
	}
	return input.KeyUnknown
}

// mapMods translates native modifiers. Control letters always carry
// ModCtrl, whatever the terminal reported.
func mapMods(ev console.Event) input.Mods {
	var m input.Mods
	if ev.Mod&tcell.ModShift != 0 {
		m |= input.ModShift
	}
	if ev.Mod&tcell.ModCtrl != 0 {
		m |= input.ModCtrl
	}
	if ev.Mod&tcell.ModAlt != 0 {
		m |= input.ModAlt
	}
	if ev.Mod&tcell.ModMeta != 0 {
		m |= input.ModMeta
	}
	if _, special := keyTable[ev.Key]; !special && ev.Key >= tcell.KeyCtrlA && ev.Key <= tcell.KeyCtrlZ {
		m |= input.ModCtrl
	}
	return m
}

// mapMouse returns the button whose state changed between prev and cur.
// Left wins over right, right over middle.
func mapMouse(prev, cur console.MouseState) input.MouseButton {
	switch {
	case prev.LButton != cur.LButton:
		return input.MouseLeft
	case prev.RButton != cur.RButton:
		return input.MouseRight
	case prev.MButton != cur.MButton:
		return input.MouseMiddle
	default:
		return input.MouseUnknown
	}
}
