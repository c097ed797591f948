package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestOverlayCenter(t *testing.T) {
	base := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
		"dddddddddd",
		"eeeeeeeeee",
	}, "\n")

	got := overlayCenter(base, 10, 5, "XX\nYY")
	want := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbXXbbbb",
		"ccccYYcccc",
		"dddddddddd",
		"eeeeeeeeee",
	}, "\n")
	if got != want {
		t.Fatalf("overlayCenter =\n%s\nwant\n%s", got, want)
	}
}

func TestOverlayCenterPadsShortBase(t *testing.T) {
	got := overlayCenter("ab", 6, 3, "X")
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 6 {
			t.Errorf("line %d width = %d, want 6", i, w)
		}
	}
	if lines[1] != "  X   " {
		t.Errorf("middle line = %q", lines[1])
	}
}

func TestOverlayCenterClipsWideBox(t *testing.T) {
	got := overlayCenter("....\n....", 4, 2, "123456")
	if lines := strings.Split(got, "\n"); lines[0] != "1234" || lines[1] != "...." {
		t.Fatalf("overlay = %q", got)
	}
}

func TestOverlayCenterWithoutSize(t *testing.T) {
	if got := overlayCenter("base", 0, 0, "box"); got != "base\nbox" {
		t.Fatalf("overlay = %q", got)
	}
}

func TestOverlayCenterEmptyBox(t *testing.T) {
	if got := overlayCenter("base", 4, 1, ""); got != "base" {
		t.Fatalf("overlay = %q", got)
	}
}
