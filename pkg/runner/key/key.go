// Package key provides CLI helpers to display the journaling legend.
package key

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daybook/pkg/glyph"
)

//go:embed keys.md
var keysMarkdown string

const guideWidth = 80

// Key prints the bullet legend followed by the keybinding guide.
type Key struct {
	Out io.Writer
	// Plain skips markdown rendering.
	Plain bool
}

// Do renders the bullet key and the guide to Out.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}

	_, _ = fmt.Fprintln(out, "")
	k.Key(ctx, out, glyph.DefaultGlyphs())
	_, _ = fmt.Fprintln(out, "")

	guide, err := k.Guide()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(out, guide)
	return nil
}

// Key renders a glyph table.
func (k *Key) Key(_ context.Context, out io.Writer, glyfs []glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("   Bullets"), bold.Sprint("Meaning"))
	for _, v := range glyfs {
		tbl.AddRow(v.Symbol, v.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}

// Guide returns the keybinding guide, rendered for the terminal unless Plain
// is set.
func (k *Key) Guide() (string, error) {
	md := strings.TrimSpace(keysMarkdown) + "\n"
	if k.Plain {
		return md, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(guideWidth),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
