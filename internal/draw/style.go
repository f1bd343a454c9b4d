package draw

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors of the two sides, shared by paddles' score text.
const (
	PlayerColor = lipgloss.Color("#4D4DB3")
	EnemyColor  = lipgloss.Color("#B34D4D")
	HintColor   = lipgloss.Color("#808080")
)

// Styles holds the text styles for HUD overlays, bound to one output.
type Styles struct {
	Player lipgloss.Style
	Enemy  lipgloss.Style
	Hint   lipgloss.Style
}

// NewStyles builds styles rendered for w. Sessions are always treated as
// 256-color terminals since color detection cannot query a remote PTY.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)

	return Styles{
		Player: r.NewStyle().Foreground(PlayerColor).Bold(true),
		Enemy:  r.NewStyle().Foreground(EnemyColor).Bold(true),
		Hint:   r.NewStyle().Foreground(HintColor),
	}
}
