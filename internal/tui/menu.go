package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type MenuModel struct {
	items  []string
	idx    int
	status string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []string{"Log in", "Create account"},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(SignupSuccessNotice); ok {
		if notice.Username != "" {
			m.status = "account " + notice.Username + " created successfully"
		} else {
			m.status = "account created successfully"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		if m.idx == 0 {
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		}
		return m, func() tea.Msg { return NavigateTo{Page: "signup"} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("feed board"))
	b.WriteString("\n\n")
	for i, item := range m.items {
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter select · ctrl+c quit"))
	return appStyle.Render(b.String())
}
