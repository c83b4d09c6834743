// Package glyph holds the symbols drawn in front of journal entries.
package glyph

// Glyph describes how a bullet is drawn and what it means.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

// Bullet indexes DefaultGlyphs.
type Bullet int

const (
	Task Bullet = iota
	Completed
	Event
	Note
)

// DefaultGlyphs returns the legend in Bullet order.
func DefaultGlyphs() []Glyph {
	return []Glyph{{
		Key:     "todo",
		Symbol:  "•",
		Meaning: "task",
	}, {
		Key:     "done",
		Symbol:  "×",
		Meaning: "task completed",
	}, {
		Key:     "event",
		Symbol:  "○",
		Meaning: "event",
	}, {
		Key:     "note",
		Symbol:  "-",
		Meaning: "note",
	}}
}

func (g Glyph) String() string {
	return g.Symbol
}

func (b Bullet) Glyph() Glyph {
	all := DefaultGlyphs()
	if b < 0 || int(b) >= len(all) {
		return Glyph{Symbol: "?", Meaning: "unknown"}
	}
	return all[b]
}

func (b Bullet) String() string {
	return b.Glyph().String()
}
