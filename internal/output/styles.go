package output

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
)

type styles struct {
	info lipgloss.Style
	msg  lipgloss.Style
	warn lipgloss.Style
	id   lipgloss.Style
	link lipgloss.Style
}

// newStyles binds every style to r so color is only emitted when the
// renderer's writer is a terminal.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		info: r.NewStyle().
			Foreground(colorDim),
		msg: r.NewStyle().
			Foreground(colorPrimary).
			Bold(true),
		warn: r.NewStyle().
			Foreground(colorAccent).
			Bold(true),
		id: r.NewStyle().
			Foreground(colorDim).
			TabWidth(lipgloss.NoTabConversion),
		link: r.NewStyle().
			Foreground(colorDim).
			Italic(true).
			TabWidth(lipgloss.NoTabConversion),
	}
}
