package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/koji-m/Bluedog/models"
)

// PostModel shows one post with its direct replies. Selection 0 is the post
// itself; opening a reply pushes the current post onto a history stack.
type PostModel struct {
	sh *shell

	item    models.FeedItem
	replies []models.FeedItem
	sel     int
	from    string
	history []models.FeedItem

	loading bool
	spinner spinner.Model
	status  string
}

func NewPostModel(sh *shell) *PostModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &PostModel{sh: sh, spinner: s, from: pageFeed}
}

func (m *PostModel) Init() tea.Cmd {
	return nil
}

func (m *PostModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openPostMsg:
		m.history = nil
		m.from = msg.from
		return m, m.open(msg.item)

	case repliesLoadedMsg:
		if msg.uri != m.item.URI {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, showError(msg.err)
		}
		m.replies = msg.page.Items
		return m, nil

	case likeDoneMsg:
		if m.item.URI == msg.postURI {
			applyLikeToItem(&m.item, msg)
		}
		for i := range m.replies {
			if m.replies[i].URI == msg.postURI {
				applyLikeToItem(&m.replies[i], msg)
			}
		}
		return m, nil

	case copiedMsg:
		var cmd tea.Cmd
		m.status, cmd = copyStatus(msg)
		return m, cmd

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *PostModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if n := len(m.history); n > 0 {
			prev := m.history[n-1]
			m.history = m.history[:n-1]
			return m, m.open(prev)
		}
		return m, navigate(m.from, nil)
	case key.Matches(msg, keys.up):
		if m.sel > 0 {
			m.sel--
		}
	case key.Matches(msg, keys.down):
		if m.sel < len(m.replies) {
			m.sel++
		}
	case key.Matches(msg, keys.enter):
		if m.sel > 0 {
			m.history = append(m.history, m.item)
			return m, m.open(m.replies[m.sel-1])
		}
	case key.Matches(msg, keys.like):
		return m, m.sh.cmdToggleLike(m.selected())
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(m.selected().URI)
	case key.Matches(msg, keys.author):
		return m, navigate(pageProfile, openProfileMsg{did: m.selected().AuthorDID, from: pagePost})
	case key.Matches(msg, keys.refresh):
		if !m.loading {
			return m, m.open(m.item)
		}
	}
	return m, nil
}

func (m *PostModel) selected() models.FeedItem {
	if m.sel > 0 && m.sel <= len(m.replies) {
		return m.replies[m.sel-1]
	}
	return m.item
}

func (m *PostModel) open(item models.FeedItem) tea.Cmd {
	m.item = item
	m.replies = nil
	m.sel = 0
	m.loading = true

	uri := item.URI
	load := m.sh.do(func(ctx context.Context, b Backend) tea.Msg {
		page, err := b.FetchReplies(ctx, uri)
		return repliesLoadedMsg{uri: uri, page: page, err: err}
	})
	return tea.Batch(load, m.spinner.Tick)
}

func (m *PostModel) View() string {
	var b strings.Builder

	b.WriteString(renderPost(m.item, m.sel == 0))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading replies...\n")
	case len(m.replies) == 0:
		b.WriteString("No replies\n")
	default:
		for i, reply := range m.replies {
			b.WriteString(renderPost(reply, m.sel == i+1))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return renderPage("POST", strings.TrimRight(b.String(), "\n"),
		"esc: back │ ↑/↓: select │ enter: open reply │ l: like │ c: copy uri │ p: author │ r: reload")
}
