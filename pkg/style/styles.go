// Package style defines the lipgloss styles used by the extload CLI
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors use AdaptiveColor for automatic light/dark mode switching
var (
	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#007ACC",
		Dark:  "#3D9EFF",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#A0A8B0",
	}

	NameColor = lipgloss.AdaptiveColor{
		Light: "#28A745",
		Dark:  "#4CDD76",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#FFC107",
		Dark:  "#FFD54F",
	}
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// NameStyle renders an active extension name
	NameStyle = lipgloss.NewStyle().
			Foreground(NameColor)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(HeadingColor)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)
