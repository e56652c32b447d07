package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/selimslab/factory-simulator/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

func Bold(s string) string { return StyleBold.Render(s) }
func Dim(s string) string  { return StyleDim.Render(s) }

// OrderStatusPill returns a colored rendering of an order status.
func OrderStatusPill(status domain.OrderStatus) string {
	switch status {
	case domain.OrderCompleted:
		return StyleGreen.Render(string(status))
	case domain.OrderInProduction, domain.OrderScheduled:
		return StyleBlue.Render(string(status))
	case domain.OrderCancelled:
		return StyleRed.Render(string(status))
	case domain.OrderDelayed:
		return StyleYellow.Render(string(status))
	default:
		return StyleDim.Render(string(status))
	}
}
