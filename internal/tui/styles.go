package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#06B6D4") // Cyan
	colorSuccess   = lipgloss.Color("#10B981") // Green
	colorWarning   = lipgloss.Color("#F59E0B") // Amber
	colorError     = lipgloss.Color("#EF4444") // Red
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorHighlight = lipgloss.Color("#374151") // Highlight bg

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	breadcrumbStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Background(colorHighlight).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1)

	folderStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	presetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D1D5DB"))

	dateStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(12)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#111827")).
			Foreground(lipgloss.Color("#9CA3AF")).
			PaddingLeft(1).
			PaddingRight(1)

	tabActiveStyle = lipgloss.NewStyle().
			Background(colorPrimary).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	tabInactiveStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#374151")).
				Foreground(lipgloss.Color("#9CA3AF")).
				PaddingLeft(1).
				PaddingRight(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	bulkStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	favoriteStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	dropTargetStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1E3A5F")).
			Foreground(colorSecondary).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	dragStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Italic(true)

	searchPromptStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 2)
)
