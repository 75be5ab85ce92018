// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/koji-m/Bluedog/internal/service"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return "Not signed in"
	case errors.Is(err, service.ErrSessionExpired):
		return "Session expired, sign in again"
	case errors.Is(err, service.ErrRateLimited):
		return "Rate limited by the service, try again later"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the service is unavailable"
	}

	return err.Error()
}

// showError reports err through the root error overlay.
func showError(err error) tea.Cmd {
	return func() tea.Msg { return errorMsg{err: err} }
}
