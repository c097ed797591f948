package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlayCenter draws box centered on top of base. base is padded or clipped
// to width x height first so the box always lands on full lines.
func overlayCenter(base string, width, height int, box string) string {
	if width <= 0 || height <= 0 {
		return base + "\n" + box
	}

	boxLines := contentLines(box)
	boxW, boxH := blockSize(boxLines)
	boxW = min(boxW, width)
	boxH = min(boxH, height)
	if boxW <= 0 || boxH <= 0 {
		return base
	}

	top := max((height-boxH)/2, 0)
	left := max((width-boxW)/2, 0)

	lines := normalizeBase(base, width, height)
	for i := 0; i < boxH; i++ {
		line := boxLines[i]
		lineWidth := lipgloss.Width(line)
		if lineWidth > boxW {
			line = ansi.Cut(line, 0, boxW)
			lineWidth = boxW
		}
		if lineWidth < boxW {
			line += strings.Repeat(" ", boxW-lineWidth)
		}

		row := top + i
		lines[row] = ansi.Cut(lines[row], 0, left) + line + ansi.Cut(lines[row], left+boxW, width)
	}

	return strings.Join(lines, "\n")
}

func contentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func blockSize(lines []string) (int, int) {
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}
	return maxWidth, len(lines)
}

func normalizeBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}
