package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles the styles for one color scheme
type Theme struct {
	Name string

	Header    lipgloss.Style
	Felt      lipgloss.Style
	Card      lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	FaceDown  lipgloss.Style
	Balance   lipgloss.Style
	Bet       lipgloss.Style
	Active    lipgloss.Style
	Message   lipgloss.Style
	Win       lipgloss.Style
	Lose      lipgloss.Style
	Dim       lipgloss.Style
	Help      lipgloss.Style
}

// DarkTheme is the default table scheme
func DarkTheme() Theme {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#8A6FAB")).
		Background(lipgloss.Color("#F0E8F7")).
		Padding(0, 1)
	return Theme{
		Name:      "dark",
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Bold(true).Padding(0, 1),
		Felt:      lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
		Card:      card,
		RedCard:   card.Foreground(lipgloss.Color("#D90000")).Bold(true),
		BlackCard: card.Foreground(lipgloss.Color("#1A1A1A")).Bold(true),
		FaceDown:  card.Background(lipgloss.Color("#4A0E6B")).Foreground(lipgloss.Color("#8A6FAB")),
		Balance:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Bet:       lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
		Active:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Message:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		Win:       lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Lose:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

// LightTheme matches a light terminal background
func LightTheme() Theme {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#C0B0D0")).
		Padding(0, 1)
	return Theme{
		Name:      "light",
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#5A3E8A")).Bold(true).Padding(0, 1),
		Felt:      lipgloss.NewStyle().Foreground(lipgloss.Color("#006400")),
		Card:      card,
		RedCard:   card.Foreground(lipgloss.Color("#B00000")).Bold(true),
		BlackCard: card.Foreground(lipgloss.Color("#000000")).Bold(true),
		FaceDown:  card.Background(lipgloss.Color("#7C5295")).Foreground(lipgloss.Color("#C0B0D0")),
		Balance:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8A6D00")).Bold(true),
		Bet:       lipgloss.NewStyle().Foreground(lipgloss.Color("#1F6FB8")),
		Active:    lipgloss.NewStyle().Foreground(lipgloss.Color("#B00000")).Bold(true),
		Message:   lipgloss.NewStyle().Foreground(lipgloss.Color("#1A1A1A")),
		Win:       lipgloss.NewStyle().Foreground(lipgloss.Color("#2E7D32")).Bold(true),
		Lose:      lipgloss.NewStyle().Foreground(lipgloss.Color("#B00000")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A")),
	}
}

// themeFor resolves a theme name, falling back to the terminal background
// when the name is empty.
func themeFor(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		if termenv.HasDarkBackground() {
			return DarkTheme()
		}
		return LightTheme()
	}
}
