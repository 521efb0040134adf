package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Status bar styles.
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	levelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	selectedLevelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("11")).
				Bold(true).
				Padding(0, 1)

	gameOverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true).
			Padding(0, 1)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// renderStatus draws the difficulty selector, plus a crash marker while over.
func renderStatus(levels []config.Difficulty, selected config.Difficulty, over bool, width int) string {
	parts := make([]string, 0, len(levels)+2)
	parts = append(parts, "difficulty")
	for _, l := range levels {
		if l == selected {
			parts = append(parts, selectedLevelStyle.Render(string(l)))
		} else {
			parts = append(parts, levelStyle.Render(string(l)))
		}
	}
	if over {
		parts = append(parts, gameOverStyle.Render("crashed"))
	}

	line := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	if width > 0 {
		return statusStyle.Width(width).Render(line)
	}
	return statusStyle.Render(line)
}

// drawGameOver paints the replay affordance centred in the viewport.
func drawGameOver(s *core.Screen, viewport core.Rect, score int) {
	lines := []string{"GAME OVER", flappy.ScoreText(score), "[ Replay ]"}

	w := core.Min(18, viewport.W)
	h := core.Min(len(lines)+2, viewport.H)
	box := core.NewRect(viewport.X+(viewport.W-w)/2, viewport.Y+(viewport.H-h)/2, w, h)

	s.FillRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorWhite)

	inner := box.Grow(-1)
	colors := []core.Color{core.ColorRed, core.ColorWhite, core.ColorBrightYellow}
	for i, text := range lines {
		y := box.Y + 1 + i
		if y >= box.Bottom()-1 {
			break
		}
		s.DrawTextCentered(inner, y, text, colors[i])
	}
}
