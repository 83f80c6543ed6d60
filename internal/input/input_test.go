package input

import "testing"

func TestKey_String(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyUnknown, "Unknown"},
		{KeyEscape, "Escape"},
		{KeyReturn, "Return"},
		{KeySpace, "Space"},
		{KeyF12, "F12"},
		{KeyNumPad0, "NumPad0"},
		{Key('a'), "a"},
		{Key('7'), "7"},
		{Key(0x4000FFFF), "Key(0x4000FFFF)"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(0x%X).String() = %q, want %q", uint32(tt.key), got, tt.want)
		}
	}
}

func TestKeyFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Key
	}{
		{'a', Key('a')},
		{'A', Key('a')},
		{'Z', Key('z')},
		{' ', KeySpace},
		{'1', Key('1')},
		{'!', Key('!')},
		{'é', Key('é')},
	}

	for _, tt := range tests {
		if got := KeyFromRune(tt.r); got != tt.want {
			t.Errorf("KeyFromRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
		ok   bool
	}{
		{"Escape", KeyEscape, true},
		{"esc", KeyEscape, true},
		{"ENTER", KeyReturn, true},
		{"f5", KeyF5, true},
		{"q", Key('q'), true},
		{"Q", Key('q'), true},
		{"pgdn", KeyPageDown, true},
		{"nonsense", KeyUnknown, false},
	}

	for _, tt := range tests {
		got, ok := KeyFromName(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("KeyFromName(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKey_Classification(t *testing.T) {
	if !Key('x').IsCharacter() {
		t.Error("'x' should be a character key")
	}
	if KeySpace.IsCharacter() || KeyEscape.IsCharacter() || KeyF1.IsCharacter() {
		t.Error("special keys should not be character keys")
	}
	if !KeyF7.IsFunctionKey() || !KeyF20.IsFunctionKey() || KeyHome.IsFunctionKey() {
		t.Error("function key classification wrong")
	}
	if !KeyNumPad5.IsNumPad() || KeyUp.IsNumPad() {
		t.Error("numpad classification wrong")
	}
}

func TestEvent_Constructors(t *testing.T) {
	ev := KeyPressed(KeyEscape)
	if k, ok := ev.PressedKey(); !ok || k != KeyEscape {
		t.Errorf("PressedKey() = (%v, %v), want (Escape, true)", k, ok)
	}
	if _, ok := ev.ReleasedKey(); ok {
		t.Error("press event should not report a released key")
	}

	ev = KeyReleased(Key('a'))
	if k, ok := ev.ReleasedKey(); !ok || k != Key('a') {
		t.Errorf("ReleasedKey() = (%v, %v), want (a, true)", k, ok)
	}

	ev = Press(Mouse(MouseLeft))
	if _, ok := ev.PressedKey(); ok {
		t.Error("mouse press should not report a key")
	}

	ev = MouseCursor(3, 4)
	if x, y, ok := ev.Cursor(); !ok || x != 3 || y != 4 {
		t.Errorf("Cursor() = (%v, %v, %v), want (3, 4, true)", x, y, ok)
	}
	if _, _, ok := MouseRelative(1, 1).Cursor(); ok {
		t.Error("relative motion should not report a cursor position")
	}

	ev = Resized(100, 40)
	if ev.Kind != KindResize || ev.Width != 100 || ev.Height != 40 {
		t.Errorf("Resized() = %+v", ev)
	}
}

func TestEvent_String(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{KeyPressed(KeyEscape), "press(key:Escape)"},
		{Release(Mouse(MouseRight)), "release(mouse:right)"},
		{KeyPressed(Key('c')).WithMods(ModCtrl), "press(ctrl key:c)"},
		{KeyPressed(Key('x')).WithMods(ModCtrl | ModShift), "press(ctrl+shift key:x)"},
		{MouseCursor(1, 2), "move(cursor 1,2)"},
		{MouseRelative(-1, 0), "move(relative -1,0)"},
		{MouseScroll(0, 1), "scroll(0,1)"},
		{Resized(80, 50), "resize(80x50)"},
		{CloseRequested(), "close"},
		{Unknown(), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMods(t *testing.T) {
	m := ModCtrl | ModAlt
	if !m.Has(ModCtrl) || !m.Has(ModCtrl|ModAlt) {
		t.Errorf("%v should have ctrl and alt", m)
	}
	if m.Has(ModShift) || m.Has(ModCtrl|ModShift) {
		t.Errorf("%v should not have shift", m)
	}
	if got := ModNone.String(); got != "" {
		t.Errorf("ModNone.String() = %q, want empty", got)
	}
	if got := (ModShift | ModMeta | ModCtrl).String(); got != "ctrl+meta+shift" {
		t.Errorf("String() = %q, want ctrl+meta+shift", got)
	}
}
