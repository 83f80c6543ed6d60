package input

import "strings"

// Mods is a set of keyboard modifiers held during a key press.
type Mods uint8

const (
	ModShift Mods = 1 << iota
	ModCtrl
	ModAlt
	ModMeta

	ModNone Mods = 0
)

// Has reports whether every modifier in m is set.
func (m Mods) Has(mod Mods) bool {
	return m&mod == mod
}

// String returns the modifiers joined by "+", such as "ctrl+shift".
func (m Mods) String() string {
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModMeta != 0 {
		parts = append(parts, "meta")
	}
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}
