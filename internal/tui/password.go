// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passwordModel is the Bubble Tea model for the masked master-password
// prompt. It renders a single password input and finishes the program on
// enter (with a non-empty value) or on esc/ctrl+c (cancel).
type passwordModel struct {
	title string
	input textinput.Model

	password   string
	quitByUser bool
	errMsg     string
}

func newPasswordModel(title string) passwordModel {
	input := textinput.New()
	input.Placeholder = "master password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return passwordModel{
		title: title,
		input: input,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - enter       — accepts a non-empty password and quits the program.
//   - esc, ctrl+c — cancels the prompt.
//
// All other key events are forwarded to the input widget.
func (m passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c":
			m.quitByUser = true
			return m, tea.Quit
		case "enter":
			if m.input.Value() == "" {
				m.errMsg = "Password must not be empty"
				return m, nil
			}
			m.password = m.input.Value()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m passwordModel) View() string {
	var b strings.Builder
	b.WriteString("Password │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), "enter: confirm │ esc: cancel")
}
