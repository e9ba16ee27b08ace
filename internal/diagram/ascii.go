package diagram

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/steelform/internal/geometry"
)

// ProfileDiagramData holds data for drawing a profile cross-section
type ProfileDiagramData struct {
	Title   string
	Outline geometry.Outline

	// Section properties shown next to the sketch
	Area      float64 // mm²
	Perimeter float64 // mm
	Weight    float64 // kg/m
}

// DrawASCIIProfile creates an ASCII sketch of the cross-section. Each
// character cell is filled when its centre lies inside the steel.
func DrawASCIIProfile(data ProfileDiagramData, widthChars int) string {
	var sb strings.Builder

	min, max := data.Outline.Bounds()
	w, h := max.X-min.X, max.Y-min.Y
	if w <= 0 || h <= 0 || widthChars < 4 {
		return ""
	}

	// Terminal cells are about twice as tall as they are wide.
	cell := w / float64(widthChars)
	heightChars := int(h/(2*cell) + 0.5)
	if heightChars < 1 {
		heightChars = 1
	}
	rowH := h / float64(heightChars)

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", data.Title))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(data.Title)))))

	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))
	for row := 0; row < heightChars; row++ {
		y := max.Y - (float64(row)+0.5)*rowH
		sb.WriteString("  │")
		for col := 0; col < widthChars; col++ {
			x := min.X + (float64(col)+0.5)*cell
			if data.Outline.Contains(geometry.Point{X: x, Y: y}) {
				sb.WriteString("█")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("│\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))
	sb.WriteString(fmt.Sprintf("  %.1f mm wide × %.1f mm high\n", w, h))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-2-len([]rune(s)))
	}
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
