package mode

// KeyCode classifies a key press.
type KeyCode int

const (
	// KeyRune is a printable character carried in Key.Rune.
	KeyRune KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	// KeyOther covers arrows, function keys and anything else the machine
	// ignores.
	KeyOther
)

// Key is a terminal-independent key press.
type Key struct {
	Code KeyCode
	Rune rune
}

// Rune builds a printable key.
func Rune(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

var (
	Enter     = Key{Code: KeyEnter}
	Escape    = Key{Code: KeyEscape}
	Backspace = Key{Code: KeyBackspace}
	Other     = Key{Code: KeyOther}
)

// Keys expands s into one Rune key per character.
func Keys(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, Rune(r))
	}
	return keys
}
