package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestDoPrintsLegendAndGuide(t *testing.T) {
	var buf bytes.Buffer
	k := Key{Out: &buf, Plain: true}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Bullets", "•  task", "×  task completed", "○  event", "# Keys", "`done <n>`"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestGuideRenders(t *testing.T) {
	k := Key{}
	out, err := k.Guide()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Commands") {
		t.Fatalf("expected rendered headings, got:\n%s", out)
	}
}
