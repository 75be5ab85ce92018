package tui

import "strings"

// modal is a boxed dialog drawn in place of the current page.
type modal struct {
	title string
	body  string
	hint  string
}

func (m modal) View() string {
	parts := make([]string, 0, 3)
	if m.title != "" {
		parts = append(parts, m.title)
	}
	if m.body != "" {
		parts = append(parts, m.body)
	}
	parts = append(parts, helpStyle.Render(m.hint))

	return overlayBoxStyle.Render(strings.Join(parts, "\n\n"))
}

func errorModal(message string) modal {
	return modal{title: errorStyle.Render("Error"), body: message, hint: "enter/esc close"}
}

// confirmModal asks a yes/no question answered with keys.yes and keys.no.
func confirmModal(question string) modal {
	return modal{title: titleStyle.Render(question), hint: "y yes • n no"}
}
