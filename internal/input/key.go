package input

import (
	"fmt"
	"strings"
	"unicode"
)

// Key is a generic keyboard key code.
//
// Printable keys use the code point of their unshifted, lowercase
// character. Special keys live above 0x40000000 so they never collide with
// characters.
type Key uint32

const (
	KeyUnknown   Key = 0x00
	KeyBackspace Key = 0x08
	KeyTab       Key = 0x09
	KeyReturn    Key = 0x0D
	KeyEscape    Key = 0x1B
	KeySpace     Key = 0x20
	KeyDelete    Key = 0x7F

	KeyCapsLock    Key = 0x40000039
	KeyF1          Key = 0x4000003A
	KeyF2          Key = 0x4000003B
	KeyF3          Key = 0x4000003C
	KeyF4          Key = 0x4000003D
	KeyF5          Key = 0x4000003E
	KeyF6          Key = 0x4000003F
	KeyF7          Key = 0x40000040
	KeyF8          Key = 0x40000041
	KeyF9          Key = 0x40000042
	KeyF10         Key = 0x40000043
	KeyF11         Key = 0x40000044
	KeyF12         Key = 0x40000045
	KeyPrintScreen Key = 0x40000046
	KeyScrollLock  Key = 0x40000047
	KeyPause       Key = 0x40000048
	KeyInsert      Key = 0x40000049
	KeyHome        Key = 0x4000004A
	KeyPageUp      Key = 0x4000004B
	KeyEnd         Key = 0x4000004D
	KeyPageDown    Key = 0x4000004E
	KeyRight       Key = 0x4000004F
	KeyLeft        Key = 0x40000050
	KeyDown        Key = 0x40000051
	KeyUp          Key = 0x40000052
	KeyNumLock     Key = 0x40000053

	KeyNumPadDivide   Key = 0x40000054
	KeyNumPadMultiply Key = 0x40000055
	KeyNumPadMinus    Key = 0x40000056
	KeyNumPadPlus     Key = 0x40000057
	KeyNumPadEnter    Key = 0x40000058
	KeyNumPad1        Key = 0x40000059
	KeyNumPad2        Key = 0x4000005A
	KeyNumPad3        Key = 0x4000005B
	KeyNumPad4        Key = 0x4000005C
	KeyNumPad5        Key = 0x4000005D
	KeyNumPad6        Key = 0x4000005E
	KeyNumPad7        Key = 0x4000005F
	KeyNumPad8        Key = 0x40000060
	KeyNumPad9        Key = 0x40000061
	KeyNumPad0        Key = 0x40000062
	KeyNumPadDecimal  Key = 0x40000063

	KeyApplication Key = 0x40000065
	KeyF13         Key = 0x40000068
	KeyF14         Key = 0x40000069
	KeyF15         Key = 0x4000006A
	KeyF16         Key = 0x4000006B
	KeyF17         Key = 0x4000006C
	KeyF18         Key = 0x4000006D
	KeyF19         Key = 0x4000006E
	KeyF20         Key = 0x4000006F
	KeyF21         Key = 0x40000070
	KeyF22         Key = 0x40000071
	KeyF23         Key = 0x40000072
	KeyF24         Key = 0x40000073
	KeyHelp        Key = 0x40000075
	KeyClear       Key = 0x4000009C
	KeyCancel      Key = 0x4000009B

	KeyLCtrl  Key = 0x400000E0
	KeyLShift Key = 0x400000E1
	KeyLAlt   Key = 0x400000E2
	KeyLGui   Key = 0x400000E3
	KeyRCtrl  Key = 0x400000E4
	KeyRShift Key = 0x400000E5
	KeyRAlt   Key = 0x400000E6
	KeyRGui   Key = 0x400000E7
)

// specialBit marks the non-character key range.
const specialBit Key = 0x40000000

var keyNames = map[Key]string{
	KeyUnknown:        "Unknown",
	KeyBackspace:      "Backspace",
	KeyTab:            "Tab",
	KeyReturn:         "Return",
	KeyEscape:         "Escape",
	KeySpace:          "Space",
	KeyDelete:         "Delete",
	KeyCapsLock:       "CapsLock",
	KeyF1:             "F1",
	KeyF2:             "F2",
	KeyF3:             "F3",
	KeyF4:             "F4",
	KeyF5:             "F5",
	KeyF6:             "F6",
	KeyF7:             "F7",
	KeyF8:             "F8",
	KeyF9:             "F9",
	KeyF10:            "F10",
	KeyF11:            "F11",
	KeyF12:            "F12",
	KeyF13:            "F13",
	KeyF14:            "F14",
	KeyF15:            "F15",
	KeyF16:            "F16",
	KeyF17:            "F17",
	KeyF18:            "F18",
	KeyF19:            "F19",
	KeyF20:            "F20",
	KeyF21:            "F21",
	KeyF22:            "F22",
	KeyF23:            "F23",
	KeyF24:            "F24",
	KeyPrintScreen:    "PrintScreen",
	KeyScrollLock:     "ScrollLock",
	KeyPause:          "Pause",
	KeyInsert:         "Insert",
	KeyHome:           "Home",
	KeyPageUp:         "PageUp",
	KeyEnd:            "End",
	KeyPageDown:       "PageDown",
	KeyRight:          "Right",
	KeyLeft:           "Left",
	KeyDown:           "Down",
	KeyUp:             "Up",
	KeyNumLock:        "NumLock",
	KeyNumPadDivide:   "NumPadDivide",
	KeyNumPadMultiply: "NumPadMultiply",
	KeyNumPadMinus:    "NumPadMinus",
	KeyNumPadPlus:     "NumPadPlus",
	KeyNumPadEnter:    "NumPadEnter",
	KeyNumPad0:        "NumPad0",
	KeyNumPad1:        "NumPad1",
	KeyNumPad2:        "NumPad2",
	KeyNumPad3:        "NumPad3",
	KeyNumPad4:        "NumPad4",
	KeyNumPad5:        "NumPad5",
	KeyNumPad6:        "NumPad6",
	KeyNumPad7:        "NumPad7",
	KeyNumPad8:        "NumPad8",
	KeyNumPad9:        "NumPad9",
	KeyNumPadDecimal:  "NumPadDecimal",
	KeyApplication:    "Application",
	KeyHelp:           "Help",
	KeyClear:          "Clear",
	KeyCancel:         "Cancel",
	KeyLCtrl:          "LCtrl",
	KeyLShift:         "LShift",
	KeyLAlt:           "LAlt",
	KeyLGui:           "LGui",
	KeyRCtrl:          "RCtrl",
	KeyRShift:         "RShift",
	KeyRAlt:           "RAlt",
	KeyRGui:           "RGui",
}

// nameKeys is the lowercase inverse of keyNames plus common aliases.
var nameKeys = func() map[string]Key {
	m := make(map[string]Key, len(keyNames)+8)
	for k, name := range keyNames {
		m[strings.ToLower(name)] = k
	}
	m["esc"] = KeyEscape
	m["enter"] = KeyReturn
	m["cr"] = KeyReturn
	m["bs"] = KeyBackspace
	m["del"] = KeyDelete
	m["ins"] = KeyInsert
	m["pgup"] = KeyPageUp
	m["pgdn"] = KeyPageDown
	return m
}()

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k < specialBit && unicode.IsPrint(rune(k)) {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(0x%X)", uint32(k))
}

// IsCharacter reports whether k is a printable character key.
func (k Key) IsCharacter() bool {
	return k > KeySpace && k < specialBit && k != KeyDelete && unicode.IsPrint(rune(k))
}

// IsFunctionKey reports whether k is one of F1 through F24.
func (k Key) IsFunctionKey() bool {
	return (k >= KeyF1 && k <= KeyF12) || (k >= KeyF13 && k <= KeyF24)
}

// IsNumPad reports whether k is a numeric keypad key.
func (k Key) IsNumPad() bool {
	return k >= KeyNumPadDivide && k <= KeyNumPadDecimal
}

// KeyFromRune returns the key that produces r.
// Uppercase ASCII letters map to their lowercase key since the key,
// not the shifted character, identifies the button.
func KeyFromRune(r rune) Key {
	switch {
	case r >= 'A' && r <= 'Z':
		return Key(r - 'A' + 'a')
	case r == ' ':
		return KeySpace
	case r < 0:
		return KeyUnknown
	default:
		return Key(r)
	}
}

// KeyFromName parses a key name (case-insensitive).
// Single characters map through KeyFromRune. Returns KeyUnknown and false
// for unrecognized names.
func KeyFromName(name string) (Key, bool) {
	trimmed := strings.TrimSpace(name)
	if r := []rune(trimmed); len(r) == 1 {
		return KeyFromRune(r[0]), true
	}
	if k, ok := nameKeys[strings.ToLower(trimmed)]; ok {
		return k, true
	}
	return KeyUnknown, false
}
