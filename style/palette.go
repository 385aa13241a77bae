package style

import "github.com/charmbracelet/lipgloss"

var (
	Base    = lipgloss.Color("#1e1e2e")
	Surface = lipgloss.Color("#313244")
	Overlay = lipgloss.Color("#6c7086")

	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Green    = lipgloss.Color("#a6e3a1")
	Sapphire = lipgloss.Color("#74c7ec")
	Lavender = lipgloss.Color("#b4befe")
)

// Semantic roles. Live content is rendered in AccentColor.
var (
	AccentColor    = Peach
	SecondaryColor = Sapphire
	SuccessColor   = Green
	WarningColor   = Yellow
	ErrorColor     = Red
	FaintColor     = Overlay
	MarkColor      = Lavender
)
