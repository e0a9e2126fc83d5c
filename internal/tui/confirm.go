// internal/tui/confirm.go
//
// A minimal yes/no prompt built on bubbletea. The organize and print
// flows run it before anything destructive or secret-revealing happens.

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
)

type confirmModel struct {
	prompt string
	answer bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "y", "Y":
			m.answer = true
			return m, tea.Quit
		case "n", "N", "enter", "esc", "q", "ctrl+c":
			m.answer = false
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	return promptStyle.Render(m.prompt) + hintStyle.Render(" [y/N] ")
}

// Confirm asks the user a yes/no question and returns the answer.
// Anything but an explicit "y" is a no.
func Confirm(prompt string) (bool, error) {
	program := tea.NewProgram(confirmModel{prompt: prompt})
	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("tui: confirm prompt: %w", err)
	}
	model, ok := final.(confirmModel)
	if !ok {
		return false, fmt.Errorf("tui: confirm prompt returned unexpected model %T", final)
	}
	fmt.Println()
	return model.answer, nil
}
