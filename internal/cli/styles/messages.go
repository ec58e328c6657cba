package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconHint    = "→"
)

// RenderSuccess renders a one-line confirmation.
func (t *Theme) RenderSuccess(format string, args ...any) string {
	return t.SuccessStyle.Render(iconSuccess) + " " + t.Normal.Render(fmt.Sprintf(format, args...))
}

// RenderError renders an error line.
func (t *Theme) RenderError(err error) string {
	return t.ErrorStyle.Render(iconError + " " + err.Error())
}

// RenderHint renders a muted follow-up suggestion.
func (t *Theme) RenderHint(format string, args ...any) string {
	return t.Subtle.Render(iconHint + " " + fmt.Sprintf(format, args...))
}

// RenderKeyValue renders an aligned label and value.
func (t *Theme) RenderKeyValue(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		t.Subtitle.Width(12).Render(label),
		t.Normal.Render(value),
	)
}
