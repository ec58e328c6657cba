// Package model provides Bubble Tea models for the toolip terminal UI.
package model

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/toolip/internal/application/port"
	"github.com/bnema/toolip/internal/domain/entity"
)

const viewEventBuffer = 64

// navRenderedMsg is sent when the session redraws its navigation. The model
// reads the items back from the session.
type navRenderedMsg struct{}

// themeAppliedMsg is sent when the session switches theme.
type themeAppliedMsg struct{}

// TerminalView receives session output and forwards it to the Bubble Tea
// loop as messages. It implements port.NavigationRenderer and port.ThemeApplier.
type TerminalView struct {
	events chan tea.Msg
}

// NewTerminalView creates a view with an empty event queue.
func NewTerminalView() *TerminalView {
	return &TerminalView{events: make(chan tea.Msg, viewEventBuffer)}
}

// RenderNavigation implements port.NavigationRenderer.
func (v *TerminalView) RenderNavigation(_ context.Context, _ []entity.NavItem) {
	v.push(navRenderedMsg{})
}

// ApplyTheme implements port.ThemeApplier.
func (v *TerminalView) ApplyTheme(_ context.Context, _ entity.Theme) {
	v.push(themeAppliedMsg{})
}

// push never blocks the session. Events carry no state, so when the queue is
// full the events already waiting cover the dropped one.
func (v *TerminalView) push(msg tea.Msg) {
	select {
	case v.events <- msg:
	default:
	}
}

// wait returns a command delivering the next view event.
func (v *TerminalView) wait() tea.Cmd {
	return func() tea.Msg {
		return <-v.events
	}
}

var (
	_ port.NavigationRenderer = (*TerminalView)(nil)
	_ port.ThemeApplier       = (*TerminalView)(nil)
)
