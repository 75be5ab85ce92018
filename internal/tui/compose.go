package tui

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/koji-m/Bluedog/internal/validators"
	"github.com/koji-m/Bluedog/models"
)

// ComposeModel edits and publishes a new post with optional local images.
type ComposeModel struct {
	sh *shell

	text   textarea.Model
	images textinput.Model
	focus  int

	submitting bool
	errMsg     string
}

func NewComposeModel(sh *shell) *ComposeModel {
	ta := textarea.New()
	ta.Placeholder = "What's up?"
	ta.CharLimit = 0
	ta.SetWidth(54)
	ta.SetHeight(6)
	ta.Focus()

	images := textinput.New()
	images.Placeholder = "image paths, comma separated (optional)"
	images.CharLimit = 2048
	images.Width = 54

	return &ComposeModel{sh: sh, text: ta, images: images}
}

func (m *ComposeModel) Init() tea.Cmd {
	m.errMsg = ""
	return textarea.Blink
}

func (m *ComposeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case postCreatedMsg:
		m.submitting = false
		if msg.result.Status != models.StatusSucceeded {
			m.errMsg = msg.result.Error
			return m, nil
		}
		m.reset()
		return m, navigate(pageFeed, refreshFeedMsg{})

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageFeed, nil)
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
			m.toggleFocus()
			return m, nil
		case key.Matches(msg, keys.submit):
			return m, m.submit()
		}
		return m, m.updateFocused(msg)
	}

	var textCmd, imagesCmd tea.Cmd
	m.text, textCmd = m.text.Update(msg)
	m.images, imagesCmd = m.images.Update(msg)
	return m, tea.Batch(textCmd, imagesCmd)
}

func (m *ComposeModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focus == 0 {
		m.text, cmd = m.text.Update(msg)
	} else {
		m.images, cmd = m.images.Update(msg)
	}
	return cmd
}

func (m *ComposeModel) toggleFocus() {
	if m.focus == 0 {
		m.text.Blur()
		m.images.Focus()
		m.focus = 1
		return
	}
	m.images.Blur()
	m.text.Focus()
	m.focus = 0
}

func (m *ComposeModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	text := strings.TrimSpace(m.text.Value())
	paths := splitPaths(m.images.Value())
	if text == "" && len(paths) == 0 {
		m.errMsg = "Post text or image is required"
		return nil
	}
	if n := utf8.RuneCountInString(text); n > validators.MaxPostLength {
		m.errMsg = fmt.Sprintf("Post is %d characters long, the limit is %d", n, validators.MaxPostLength)
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	return m.sh.do(func(ctx context.Context, b Backend) tea.Msg {
		return postCreatedMsg{result: b.CreatePost(ctx, text, paths...)}
	})
}

func (m *ComposeModel) reset() {
	m.text.Reset()
	m.images.Reset()
	m.errMsg = ""
	if m.focus != 0 {
		m.toggleFocus()
	}
}

// splitPaths splits a comma separated list, dropping blanks.
func splitPaths(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (m *ComposeModel) View() string {
	var b strings.Builder

	b.WriteString(m.text.View())
	b.WriteString("\n")
	remaining := validators.MaxPostLength - utf8.RuneCountInString(strings.TrimSpace(m.text.Value()))
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d characters left", remaining)))
	b.WriteString("\n\nImages │ [")
	b.WriteString(m.images.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Posting...]\n")
	} else {
		b.WriteString("\n[Post]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("NEW POST", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ctrl+s: post")
}
