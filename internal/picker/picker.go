// Package picker provides the interactive arrangement chooser.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/figstyle/figstyle/pkg/arrange"
)

// item adapts a resolved style to the bubbles list model.
type item struct {
	style arrange.StyleDefinition
	group string // owning group name, empty for ungrouped styles
}

func (i item) Title() string {
	title := i.style.Title
	if title == "" {
		title = i.style.Name
	}
	return i.style.Icon + " " + title
}

func (i item) Description() string {
	var parts []string
	parts = append(parts, i.style.Name)
	if i.group != "" {
		parts = append(parts, "group: "+i.group)
	}
	if i.style.ClassName != "" {
		parts = append(parts, "."+i.style.ClassName)
	}
	if i.style.IsDefault {
		parts = append(parts, "default")
	}
	return strings.Join(parts, "  ")
}

func (i item) FilterValue() string { return i.style.Name + " " + i.style.Title }

type model struct {
	list   list.Model
	choice string
	done   bool
}

func newModel(res arrange.Result) model {
	grouped := make(map[string]string)
	for _, g := range res.Groups {
		for _, name := range g.Items {
			grouped[name] = g.Name
		}
	}

	items := make([]list.Item, 0, len(res.Styles))
	for _, s := range res.Styles {
		items = append(items, item{style: s, group: grouped[s.Name]})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Arrangements"
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	l.SetShowStatusBar(false)

	return model{list: l}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				m.choice = it.style.Name
			}
			m.done = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.done {
		return ""
	}
	return m.list.View()
}

// Run presents the resolved styles and returns the chosen style name, or an
// empty string when the user cancels.
func Run(res arrange.Result) (string, error) {
	if len(res.Styles) == 0 {
		return "", fmt.Errorf("no styles to pick from")
	}

	program := tea.NewProgram(newModel(res), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("running picker: %w", err)
	}
	return final.(model).choice, nil
}
