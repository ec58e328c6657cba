package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/toolip/internal/app/panel"
	"github.com/bnema/toolip/internal/application/usecase"
	"github.com/bnema/toolip/internal/cli/styles"
	"github.com/bnema/toolip/internal/domain/entity"
)

// panelErrMsg carries a failed panel action.
type panelErrMsg struct {
	err error
}

// actionDoneMsg is sent when a panel action succeeded.
type actionDoneMsg struct{}

// PanelModel is the terminal rendition of the sidebar panel: a navigation
// list over a live Session.
type PanelModel struct {
	ctx     context.Context
	session *panel.Session
	themeUC *usecase.ChangeThemeUseCase
	view    *TerminalView

	items  []entity.NavItem
	cursor int
	err    error
	width  int
	height int

	theme *styles.Theme
	keys  styles.PanelKeyMap
	help  help.Model
}

// NewPanelModel creates a panel model. The session must already be loaded
// with view as its renderer and theme applier.
func NewPanelModel(ctx context.Context, session *panel.Session, themeUC *usecase.ChangeThemeUseCase, view *TerminalView) PanelModel {
	theme := styles.NewTheme(session.Theme())
	items := session.Navigation()
	return PanelModel{
		ctx:     ctx,
		session: session,
		themeUC: themeUC,
		view:    view,
		items:   items,
		cursor:  max(panel.ActiveIndex(items), 0),
		width:   80,
		height:  24,
		theme:   theme,
		keys:    styles.DefaultPanelKeyMap(),
		help:    styles.NewHelp(theme),
	}
}

// Init implements tea.Model.
func (m PanelModel) Init() tea.Cmd {
	return m.view.wait()
}

// Update implements tea.Model.
func (m PanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case navRenderedMsg:
		m.items = m.session.Navigation()
		if active := panel.ActiveIndex(m.items); active >= 0 {
			m.cursor = active
		}
		m.clampCursor()
		return m, m.view.wait()

	case themeAppliedMsg:
		m.theme = styles.NewTheme(m.session.Theme())
		m.help = styles.NewHelp(m.theme)
		m.help.Width = m.width
		return m, m.view.wait()

	case panelErrMsg:
		m.err = msg.err

	case actionDoneMsg:
		m.err = nil
	}

	return m, nil
}

func (m PanelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clampCursor()
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
	case key.Matches(msg, m.keys.Open):
		return m, m.openCursor()
	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()
	case key.Matches(msg, m.keys.Reload):
		return m, m.reload()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *PanelModel) clampCursor() {
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m PanelModel) openCursor() tea.Cmd {
	ctx, session, index := m.ctx, m.session, m.cursor
	return func() tea.Msg {
		if err := session.OpenIndex(ctx, index); err != nil {
			return panelErrMsg{err: err}
		}
		return actionDoneMsg{}
	}
}

func (m PanelModel) toggleTheme() tea.Cmd {
	ctx, session, uc := m.ctx, m.session, m.themeUC
	return func() tea.Msg {
		next := entity.ThemeDark
		if session.Theme() == entity.ThemeDark {
			next = entity.ThemeLight
		}
		if uc == nil || !uc.Change(ctx, next) {
			return panelErrMsg{err: fmt.Errorf("failed to switch to %s theme", next)}
		}
		return actionDoneMsg{}
	}
}

func (m PanelModel) reload() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		if err := session.ReloadSites(ctx); err != nil {
			return panelErrMsg{err: err}
		}
		return actionDoneMsg{}
	}
}

// View implements tea.Model.
func (m PanelModel) View() string {
	t := m.theme

	var nav strings.Builder
	if len(m.items) == 0 {
		nav.WriteString(t.Subtle.Render("No sites"))
	}
	for i, item := range m.items {
		marker := "  "
		if i == m.cursor {
			marker = t.Highlight.Render("› ")
		}
		label := item.Title
		if item.Active {
			nav.WriteString(marker + t.NavItemActive.Render(label))
		} else {
			nav.WriteString(marker + t.NavItem.Render(label))
		}
		nav.WriteString("\n")
	}

	stats := m.session.Stats()
	status := t.Subtle.Render(fmt.Sprintf("%s · %d live · %d created · %d reused · %d evicted",
		m.session.CurrentURL(), stats.Live, stats.Created, stats.Reused, stats.Evicted))

	parts := []string{
		t.Title.Render("toolip") + "  " + t.ThemeBadge.Render(string(t.Name)),
		"",
		strings.TrimRight(nav.String(), "\n"),
		"",
		status,
	}
	if m.err != nil {
		parts = append(parts, t.ErrorStyle.Render("Error: "+m.err.Error()))
	}
	parts = append(parts, "", m.help.View(m.keys))

	return t.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Cursor returns the highlighted navigation position.
func (m PanelModel) Cursor() int {
	return m.cursor
}
