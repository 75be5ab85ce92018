// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/koji-m/Bluedog/models"
)

// FeedModel shows the home timeline and post search. tab switches between
// the two; each keeps its own list and cursor.
type FeedModel struct {
	sh *shell

	kind    models.FeedKind
	lists   map[models.FeedKind]*postList
	query   textinput.Model
	typing  bool
	loading bool
	spinner spinner.Model
	status  string

	confirmSignOut bool
}

func NewFeedModel(sh *shell) *FeedModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	q := textinput.New()
	q.Placeholder = "search posts"
	q.CharLimit = 256
	q.Width = 40

	return &FeedModel{
		sh:   sh,
		kind: models.FeedTimeline,
		lists: map[models.FeedKind]*postList{
			models.FeedTimeline: {},
			models.FeedSearch:   {},
		},
		query:   q,
		spinner: s,
	}
}

// Init loads the first page when the active list is still empty.
func (m *FeedModel) Init() tea.Cmd {
	if m.list().loaded || m.loading || m.kind == models.FeedSearch {
		return nil
	}
	return m.startLoad(true)
}

func (m *FeedModel) list() *postList {
	return m.lists[m.kind]
}

func (m *FeedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshFeedMsg:
		m.kind = models.FeedTimeline
		return m, m.startLoad(true)

	case feedLoadedMsg:
		l, ok := m.lists[msg.kind]
		if !ok {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, showError(msg.err)
		}
		if msg.fresh {
			l.replace(msg.page)
		} else {
			l.append(msg.page)
		}
		return m, nil

	case likeDoneMsg:
		for _, l := range m.lists {
			l.applyLike(msg)
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
		if m.confirmSignOut {
			return m.updateConfirm(msg)
		}
		if m.typing {
			return m.updateQuery(msg)
		}
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m, cmd
}

func (m *FeedModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	l := m.list()

	switch {
	case key.Matches(msg, keys.quit):
		return m, func() tea.Msg { return quitMsg{} }
	case key.Matches(msg, keys.up):
		l.move(-1)
	case key.Matches(msg, keys.down):
		if atEnd := l.move(1); atEnd && l.hasMore && !m.loading {
			return m, m.startLoad(false)
		}
	case key.Matches(msg, keys.more):
		if l.hasMore && !m.loading {
			return m, m.startLoad(false)
		}
	case key.Matches(msg, keys.refresh):
		if m.kind == models.FeedSearch && strings.TrimSpace(m.query.Value()) == "" {
			return m, nil
		}
		if !m.loading {
			return m, m.startLoad(true)
		}
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		if m.kind == models.FeedTimeline {
			m.kind = models.FeedSearch
			if !m.list().loaded {
				return m, m.focusQuery()
			}
			return m, nil
		}
		m.kind = models.FeedTimeline
		return m, m.Init()
	case key.Matches(msg, keys.search):
		m.kind = models.FeedSearch
		return m, m.focusQuery()
	case key.Matches(msg, keys.enter):
		if item, ok := l.current(); ok {
			return m, navigate(pagePost, openPostMsg{item: item, from: pageFeed})
		}
	case key.Matches(msg, keys.author):
		if item, ok := l.current(); ok {
			return m, navigate(pageProfile, openProfileMsg{did: item.AuthorDID, from: pageFeed})
		}
	case key.Matches(msg, keys.me):
		return m, navigate(pageProfile, openProfileMsg{from: pageFeed})
	case key.Matches(msg, keys.like):
		if item, ok := l.current(); ok {
			return m, m.sh.cmdToggleLike(item)
		}
	case key.Matches(msg, keys.copy):
		if item, ok := l.current(); ok {
			return m, cmdCopy(item.URI)
		}
	case key.Matches(msg, keys.compose):
		return m, navigate(pageCompose, nil)
	case key.Matches(msg, keys.signOut):
		m.confirmSignOut = true
	}

	return m, nil
}

func (m *FeedModel) updateQuery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.typing = false
		m.query.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		if strings.TrimSpace(m.query.Value()) == "" {
			return m, nil
		}
		m.typing = false
		m.query.Blur()
		return m, m.startLoad(true)
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m, cmd
}

func (m *FeedModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirmSignOut = false
		return m, m.sh.do(func(_ context.Context, b Backend) tea.Msg {
			b.SignOut()
			return signedOutMsg{}
		})
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.confirmSignOut = false
	}
	return m, nil
}

func (m *FeedModel) focusQuery() tea.Cmd {
	m.typing = true
	return m.query.Focus()
}

// startLoad fetches the next page of the active kind, or its first page
// after a reset when fresh is set.
func (m *FeedModel) startLoad(fresh bool) tea.Cmd {
	kind := m.kind
	query := strings.TrimSpace(m.query.Value())
	cursor := m.list().cursor
	if fresh {
		cursor = ""
	}

	m.loading = true
	load := m.sh.do(func(ctx context.Context, b Backend) tea.Msg {
		if fresh {
			if err := b.ResetFeed(kind); err != nil {
				return feedLoadedMsg{kind: kind, fresh: fresh, err: err}
			}
		}

		var (
			page models.FeedPage
			err  error
		)
		if kind == models.FeedSearch {
			page, err = b.SearchPosts(ctx, query, 0, cursor)
		} else {
			page, err = b.FetchTimeline(ctx, 0, cursor)
		}
		return feedLoadedMsg{kind: kind, page: page, fresh: fresh, err: err}
	})

	return tea.Batch(load, m.spinner.Tick)
}

func (m *FeedModel) View() string {
	if m.confirmSignOut {
		return confirmModal(signOutQuestion(m.sh.session.Handle)).View()
	}

	var b strings.Builder

	tabs := "[Timeline]  Search"
	if m.kind == models.FeedSearch {
		tabs = " Timeline  [Search]"
	}
	b.WriteString(tabs)
	if m.sh.session.Handle != "" {
		b.WriteString("    @" + m.sh.session.Handle)
	}
	b.WriteString("\n\n")

	if m.kind == models.FeedSearch {
		b.WriteString("Query │ [")
		b.WriteString(m.query.View())
		b.WriteString("]\n\n")
	}

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n\n")
	}

	b.WriteString(m.list().View())

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	hotKeys := "↑/↓: nav │ enter: open │ l: like │ c: copy uri │ p: author │ P: me │ n: new post │ r: refresh │ tab: switch │ /: search │ o: sign out │ q: quit"
	if m.typing {
		hotKeys = "enter: search │ esc: cancel"
	}
	return renderPage("BLUEDOG", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: page, Payload: payload}
	}
}

func signOutQuestion(handle string) string {
	if handle == "" {
		return "Sign out?"
	}
	return "Sign out @" + handle + "?"
}
