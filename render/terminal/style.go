package terminal

import "github.com/charmbracelet/lipgloss"

var (
	colorOK   = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"} // emerald
	colorFail = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"} // red

	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
)

var (
	styleOK   = lipgloss.NewStyle().Foreground(colorOK).Bold(true)
	styleFail = lipgloss.NewStyle().Foreground(colorFail).Bold(true)

	styleTitle     = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleStat      = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleStatLabel = lipgloss.NewStyle().Foreground(colorDim)
	styleMeta      = lipgloss.NewStyle().Foreground(colorDim)
)
