// ABOUTME: Shared huh form theme for login, signup, and incident forms
// ABOUTME: Applies the app's red/zinc palette to form fields and buttons

package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme returns the huh theme shared by all form screens
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	red := lipgloss.Color("#DC2626")       // Red-600 - primary
	redDark := lipgloss.Color("#B91C1C")   // Red-700 - accents
	gray := lipgloss.Color("#71717A")      // Zinc-500 - muted
	grayLight := lipgloss.Color("#E7E5E4") // Zinc-200 - text
	zincDark := lipgloss.Color("#3F3F46")  // Zinc-700 - borders

	t.Group.Title = lipgloss.NewStyle().
		Foreground(red).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(gray).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(red)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(redDark).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(gray)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(red).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(red)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(red)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(gray)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(red)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(grayLight)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(red).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(gray).
		Background(zincDark).
		Padding(0, 2).
		MarginRight(1)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(gray)

	return t
}
