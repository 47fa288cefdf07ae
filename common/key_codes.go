package common

import "strings"

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW         = 87  // W key (ASCII)
	KeyA         = 65  // A key (ASCII)
	KeyS         = 83  // S key (ASCII)
	KeyD         = 68  // D key (ASCII)
	KeyQ         = 81  // Q key (ASCII)
	KeyE         = 69  // E key (ASCII)
	KeySpace     = 32  // Spacebar (ASCII)
	KeyBackspace = 259 // Backspace key (GLFW)
	KeyEsc       = 256 // Escape key (GLFW)

	Key0 = 48 // 0 key (ASCII)
	Key1 = 49 // 1 key (ASCII)
	Key2 = 50 // 2 key (ASCII)
	Key3 = 51 // 3 key (ASCII)
	Key4 = 52 // 4 key (ASCII)
	Key5 = 53 // 5 key (ASCII)
	Key6 = 54 // 6 key (ASCII)
	Key7 = 55 // 7 key (ASCII)
	Key8 = 56 // 8 key (ASCII)
	Key9 = 57 // 9 key (ASCII)
)

// Function and modifier keys (GLFW)
const (
	KeyF1  = 290
	KeyF2  = 291
	KeyF3  = 292
	KeyF4  = 293
	KeyF5  = 294
	KeyF6  = 295
	KeyF7  = 296
	KeyF8  = 297
	KeyF9  = 298
	KeyF10 = 299
	KeyF11 = 300
	KeyF12 = 301

	KeyLeftShift  = 340 // Left Shift (GLFW)
	KeyRightShift = 344 // Right Shift (GLFW)
)

// keyLabels maps human-readable key binding labels (as written in config
// files, e.g. "F3", "Space", "A") to virtual key codes.
var keyLabels = map[string]uint32{
	"space":     KeySpace,
	"escape":    KeyEsc,
	"esc":       KeyEsc,
	"backspace": KeyBackspace,
	"f1":        KeyF1,
	"f2":        KeyF2,
	"f3":        KeyF3,
	"f4":        KeyF4,
	"f5":        KeyF5,
	"f6":        KeyF6,
	"f7":        KeyF7,
	"f8":        KeyF8,
	"f9":        KeyF9,
	"f10":       KeyF10,
	"f11":       KeyF11,
	"f12":       KeyF12,
}

// ConvertKeyLabel resolves a human-readable key label to its virtual key code.
// Single printable characters (letters and digits) resolve to their ASCII
// codes; named keys resolve through the label table. Matching is
// case-insensitive and surrounding whitespace is ignored.
//
// Parameters:
//   - label: the key label, e.g. "F3", "Space", "a"
//
// Returns:
//   - uint32: the virtual key code
//   - bool: false if the label is not recognized
func ConvertKeyLabel(label string) (uint32, bool) {
	l := strings.ToLower(strings.TrimSpace(label))
	if len(l) == 1 {
		c := l[0]
		if c >= 'a' && c <= 'z' {
			return uint32(c - 'a' + 'A'), true
		}
		if c >= '0' && c <= '9' {
			return uint32(c), true
		}
	}
	if code, ok := keyLabels[l]; ok {
		return code, true
	}
	return 0, false
}
