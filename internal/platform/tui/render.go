package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okhmat/birb/internal/game"
)

// Glyphs for the game elements.
const (
	birbChar  = '●'
	ghostChar = '○'
	pipeChar  = '█'
	capTop    = '▄'
	capBottom = '▀'
)

// colorStyles maps Color to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault: lipgloss.NewStyle(),
	ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
}

// Draw renders a core state snapshot into the screen buffer, scaling game
// space onto the terminal cell grid.
func Draw(s game.State, dst *Screen) {
	dst.Clear()

	cfg := s.Config
	sx := float64(dst.Width()) / cfg.CanvasW
	sy := float64(dst.Height()) / cfg.CanvasH

	// Pipes: upper body down to the gap, lower body from below the gap. The
	// core's gap bounds are bird-top coordinates, so the lower pipe's real
	// edge sits one bird height under GapBottom.
	for _, p := range s.OnScreen() {
		px := int(p.X * sx)
		pw := scaleMin1(cfg.PipeW, sx)

		topRows := int(p.GapTop * sy)
		dst.FillRect(px, 0, pw, topRows, Cell{Rune: pipeChar, Color: ColorGreen})
		if topRows > 0 {
			dst.DrawHLine(px, topRows-1, pw, Cell{Rune: capTop, Color: ColorGreen})
		}

		bottomStart := int((p.GapBottom + cfg.BirbH) * sy)
		dst.FillRect(px, bottomStart, pw, dst.Height()-bottomStart, Cell{Rune: pipeChar, Color: ColorGreen})
		dst.DrawHLine(px, bottomStart, pw, Cell{Rune: capBottom, Color: ColorGreen})
	}

	// Ghost behind the bird, a single marker on the previous run's path.
	if s.GhostVisible {
		dst.SetCell(int(cfg.BirbX*sx), int(s.GhostY*sy), Cell{Rune: ghostChar, Color: ColorGray})
	}

	// Bird hitbox.
	bx := int(cfg.BirbX * sx)
	by := int(s.BirbY * sy)
	dst.FillRect(bx, by, scaleMin1(cfg.BirbW, sx), scaleMin1(cfg.BirbH, sy), Cell{Rune: birbChar, Color: ColorYellow})

	// HUD and banners overlay the playfield.
	hud := fmt.Sprintf(" Score: %d  Lives: %d ", s.Score, s.Lives)
	dst.DrawText(1, 0, hud, ColorDefault)

	switch {
	case s.Won:
		dst.DrawTextCentered(dst.Height()/2, " YOU WIN ", ColorCyan)
		dst.DrawTextCentered(dst.Height()/2+1, " Press R to play again ", ColorDefault)
	case s.GameOver:
		dst.DrawTextCentered(dst.Height()/2, " GAME OVER ", ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf(" Score: %d  |  Press R to restart ", s.Score), ColorDefault)
	case s.Paused:
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ", ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, " Press P to resume ", ColorDefault)
	}
}

// scaleMin1 scales a game-space length to cells, never collapsing below one.
func scaleMin1(v, scale float64) int {
	n := int(v * scale)
	if n < 1 {
		n = 1
	}
	return n
}

// RenderScreen converts a screen buffer to a styled string for display.
// Adjacent cells with the same color are grouped to minimize ANSI escapes.
func RenderScreen(s *Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
