package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesolver"
)

// One style per sticker color, rendered as a colored two-space cell.
var stickerStyles = map[cubesolver.Color]lipgloss.Style{
	cubesolver.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")),
	cubesolver.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")),
	cubesolver.Green:  lipgloss.NewStyle().Background(lipgloss.Color("40")),
	cubesolver.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")),
	cubesolver.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("21")),
	cubesolver.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")),
}

func sticker(c cubesolver.Color) string {
	if style, ok := stickerStyles[c]; ok {
		return style.Render("  ")
	}
	return "??"
}

// renderCube draws the cube as a colored flat net:
//
//	    U
//	L F R B
//	    D
func renderCube(c *cubesolver.Cube) string {
	var b strings.Builder

	pad := strings.Repeat(" ", 6)

	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(c.Facelets[cubesolver.SideUp][row*3+col]))
		}
		b.WriteByte('\n')
	}

	for row := 0; row < 3; row++ {
		for _, side := range []cubesolver.Side{
			cubesolver.SideLeft, cubesolver.SideFront,
			cubesolver.SideRight, cubesolver.SideBack,
		} {
			for col := 0; col < 3; col++ {
				b.WriteString(sticker(c.Facelets[side][row*3+col]))
			}
		}
		b.WriteByte('\n')
	}

	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(c.Facelets[cubesolver.SideDown][row*3+col]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
