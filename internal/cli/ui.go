package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan = lipgloss.Color("36")  // Teal - primary values
	colorGray = lipgloss.Color("245") // Gray - secondary text
	colorDim  = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for table headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for labels and muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleValue for secondary values.
	StyleValue = lipgloss.NewStyle().Foreground(colorGray)
)
