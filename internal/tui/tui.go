// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui contains the interactive master-password prompt, used when the
// password was not supplied via the BW_PASSWORD environment variable. It is
// deliberately tiny: one masked input, no application state.
package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned when the user cancels the prompt (esc or ctrl+c)
// instead of entering a password.
var ErrUserQuit = errors.New("cancelled by user")

// TUI runs interactive prompts on the terminal.
type TUI struct{}

func New() *TUI {
	return &TUI{}
}

// PromptPassword shows a masked input and blocks until the user submits a
// non-empty password or cancels. The entered password is never echoed or
// logged.
func (t *TUI) PromptPassword(title string) (string, error) {
	model := newPasswordModel(title)
	finalModel, runErr := tea.NewProgram(model).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(passwordModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", ErrUserQuit
	}

	return result.password, nil
}
