package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/gridnav/tui/keymap"
	"github.com/grovetools/gridnav/tui/theme"
	"github.com/grovetools/gridnav/tui/utils/scrollbar"
)

// KeyMap is what the help component needs from a keymap.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// Model represents an embeddable help component
type Model struct {
	Keys    KeyMap
	ShowAll bool
	Width   int
	Height  int
	Theme   *theme.Theme
	Title   string
	// GroupNames labels the FullHelp groups in order.
	GroupNames []string
	viewport   viewport.Model
}

// New creates a new help model with default settings
func New(keys KeyMap) Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	return Model{
		Keys:       keys,
		Theme:      theme.DefaultTheme,
		GroupNames: []string{"Navigation", "Actions"},
		viewport:   vp,
	}
}

// Update handles messages for the help component
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		if m.ShowAll {
			m.setViewportContent()
		}

	case tea.KeyMsg:
		if m.ShowAll {
			helpBinding, quitBinding := m.closeBindings()
			if key.Matches(msg, helpBinding) || key.Matches(msg, quitBinding) || msg.Type == tea.KeyEsc {
				m.Toggle()
				return m, nil
			}

			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// View renders the help component
func (m Model) View() string {
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}

	if m.ShowAll {
		content := m.viewport.View()

		if m.viewport.TotalLineCount() > m.viewport.Height {
			bar := scrollbar.FromViewport(&m.viewport, m.viewport.Height)
			lines := strings.Split(content, "\n")
			for i := range lines {
				if i < len(bar) {
					lines[i] += " " + bar[i]
				}
			}
			content = strings.Join(lines, "\n")
		}

		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
	}

	if m.Keys == nil {
		return ""
	}
	return m.viewShort(m.Keys.ShortHelp())
}

// viewShort renders the compact, single-line help view.
func (m Model) viewShort(group []key.Binding) string {
	var pairs []string
	for _, binding := range group {
		if !binding.Enabled() {
			continue
		}
		keys := binding.Help().Key
		desc := binding.Help().Desc
		if keys != "" && desc != "" {
			pairs = append(pairs, fmt.Sprintf("%s %s",
				m.Theme.Highlight.Render(keys),
				m.Theme.Muted.Render(desc),
			))
		}
	}

	if len(pairs) == 0 {
		return ""
	}
	return strings.Join(pairs, m.Theme.Muted.Render(" • "))
}

// setViewportContent renders every FullHelp group as a box and loads the
// result into the viewport.
func (m *Model) setViewportContent() {
	const verticalMargin = 4

	content := m.renderHelpContent()
	m.viewport.SetContent(content)

	m.viewport.Width = lipgloss.Width(content)
	m.viewport.Height = max(1, m.Height-verticalMargin)
}

func (m *Model) renderHelpContent() string {
	if m.Keys == nil {
		return ""
	}

	var blocks []string
	for i, group := range m.Keys.FullHelp() {
		name := fmt.Sprintf("Keys %d", i+1)
		if i < len(m.GroupNames) {
			name = m.GroupNames[i]
		}
		if block := m.renderGroup(name, group); block != "" {
			blocks = append(blocks, block)
		}
	}
	if len(blocks) == 0 {
		return ""
	}

	title := m.Title
	if title == "" {
		title = "Help"
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.Theme.Colors.Orange).
		MarginBottom(1).
		Align(lipgloss.Center).
		Width(lipgloss.Width(body))

	return lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render(title), body)
}

// renderGroup renders one binding group into a bordered box with a title.
func (m *Model) renderGroup(title string, group []key.Binding) string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.Theme.Colors.Cyan)

	table := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})

	rows := 0
	for _, binding := range group {
		if !binding.Enabled() || binding.Help().Key == "" || binding.Help().Desc == "" {
			continue
		}
		table = table.Row(
			keyStyle.Render(binding.Help().Key),
			m.Theme.Muted.Italic(true).Render(binding.Help().Desc),
		)
		rows++
	}
	if rows == 0 {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(m.Theme.Colors.Orange).
		Italic(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Colors.Border).
		Padding(0, 1).
		MarginRight(1)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), table.String()))
}

func (m *Model) closeBindings() (key.Binding, key.Binding) {
	switch k := m.Keys.(type) {
	case keymap.Base:
		return k.Help, k.Quit
	case interface{ Bindings() keymap.Base }:
		b := k.Bindings()
		return b.Help, b.Quit
	}
	return key.NewBinding(key.WithKeys("?")), key.NewBinding(key.WithKeys("q"))
}

// Toggle toggles between showing all help and short help. When showing, it
// recalculates content layout and resets the scroll position.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.setViewportContent()
		m.viewport.GotoTop()
	}
}

// SetSize sets the dimensions of the help view
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}

// SetKeys updates the keymap for the help view
func (m *Model) SetKeys(keys KeyMap) {
	m.Keys = keys
}
