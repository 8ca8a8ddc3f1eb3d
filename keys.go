package atvremote

import "fmt"

// Keycode is an Android KEYCODE_* integer as injected on the control port.
type Keycode int32

const (
	KeyHome       Keycode = 3
	KeyBack       Keycode = 4
	KeyDpadUp     Keycode = 19
	KeyDpadDown   Keycode = 20
	KeyDpadLeft   Keycode = 21
	KeyDpadRight  Keycode = 22
	KeyDpadCenter Keycode = 23
	KeyVolumeUp   Keycode = 24
	KeyVolumeDown Keycode = 25
	KeyPower      Keycode = 26
	KeySearch     Keycode = 84
	KeyPlayPause  Keycode = 85
	KeyMute       Keycode = 164
)

var keyNames = map[string]Keycode{
	"home":       KeyHome,
	"back":       KeyBack,
	"up":         KeyDpadUp,
	"down":       KeyDpadDown,
	"left":       KeyDpadLeft,
	"right":      KeyDpadRight,
	"ok":         KeyDpadCenter,
	"select":     KeyDpadCenter,
	"volup":      KeyVolumeUp,
	"voldown":    KeyVolumeDown,
	"power":      KeyPower,
	"search":     KeySearch,
	"playpause":  KeyPlayPause,
	"play":       KeyPlayPause,
	"mute":       KeyMute,
}

// ParseKey maps a CLI key name to its keycode.
func ParseKey(name string) (Keycode, error) {
	k, ok := keyNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// KeyNames returns the accepted key names, for CLI help output.
func KeyNames() []string {
	out := make([]string, 0, len(keyNames))
	for name := range keyNames {
		out = append(out, name)
	}
	return out
}
