package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for the inspector UI
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - applying passes
	MutedColor   = lipgloss.Color("#626262") // Gray - skipped passes, hints
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
	AccentColor  = lipgloss.Color("#FFA500") // Orange - the active class
)

// Shared styles for the inspector UI
var (
	// TitleStyle is for the inspector banner
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 2)

	// WidthStyle is for the simulated width readout
	WidthStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// ClassStyle is for the active viewport class
	ClassStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	// PassAppliesStyle is for passes that mutate at the current width
	PassAppliesStyle = lipgloss.NewStyle().
				Foreground(SuccessColor)

	// PassSkippedStyle is for passes that no-op at the current width
	PassSkippedStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	// PolicyStyle is for the structural/cosmetic policy column
	PolicyStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// HelpStyle frames the key help at the bottom
	HelpStyle = lipgloss.NewStyle().
			PaddingTop(1)
)
