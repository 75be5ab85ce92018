// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/koji-m/Bluedog/models"
)

// ProfileModel shows an actor's profile above their author feed, with
// follow and unfollow.
type ProfileModel struct {
	sh *shell

	did     string
	profile models.Profile
	posts   postList
	from    string

	loading   bool
	following bool
	spinner   spinner.Model
	status    string
}

func NewProfileModel(sh *shell) *ProfileModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &ProfileModel{sh: sh, spinner: s, from: pageFeed}
}

func (m *ProfileModel) Init() tea.Cmd {
	return nil
}

func (m *ProfileModel) own() bool {
	return m.profile.DID != "" && m.profile.DID == m.sh.session.DID
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openProfileMsg:
		m.did = msg.did
		m.from = msg.from
		m.profile = models.Profile{}
		m.posts.clear()
		m.loading = true
		return m, tea.Batch(m.cmdLoadProfile(msg.did), m.spinner.Tick)

	case profileLoadedMsg:
		if msg.err != nil {
			m.loading = false
			return m, showError(msg.err)
		}
		if m.did != "" && msg.profile.DID != m.did {
			return m, nil
		}
		m.profile = msg.profile
		return m, m.cmdLoadPosts(true)

	case feedLoadedMsg:
		if msg.kind != models.FeedAuthor {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, showError(msg.err)
		}
		if msg.fresh {
			m.posts.replace(msg.page)
		} else {
			m.posts.append(msg.page)
		}
		return m, nil

	case followDoneMsg:
		m.following = false
		if msg.err != nil {
			return m, showError(msg.err)
		}
		if msg.did != m.profile.DID {
			return m, nil
		}
		if msg.unfollowed {
			m.profile.FollowingURI = ""
			if m.profile.FollowersCount > 0 {
				m.profile.FollowersCount--
			}
		} else {
			m.profile.FollowingURI = msg.uri
			m.profile.FollowersCount++
		}
		return m, nil

	case likeDoneMsg:
		m.posts.applyLike(msg)
		return m, nil

	case copiedMsg:
		var cmd tea.Cmd
		m.status, cmd = copyStatus(msg)
		return m, cmd

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.following {
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

func (m *ProfileModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(m.from, nil)
	case key.Matches(msg, keys.up):
		m.posts.move(-1)
	case key.Matches(msg, keys.down):
		if atEnd := m.posts.move(1); atEnd && m.posts.hasMore && !m.loading {
			return m, m.cmdLoadPosts(false)
		}
	case key.Matches(msg, keys.more):
		if m.posts.hasMore && !m.loading {
			return m, m.cmdLoadPosts(false)
		}
	case key.Matches(msg, keys.enter):
		if item, ok := m.posts.current(); ok {
			return m, navigate(pagePost, openPostMsg{item: item, from: pageProfile})
		}
	case key.Matches(msg, keys.follow):
		if m.profile.DID == "" || m.own() || m.following {
			return m, nil
		}
		m.following = true
		return m, tea.Batch(m.cmdToggleFollow(), m.spinner.Tick)
	case key.Matches(msg, keys.like):
		if item, ok := m.posts.current(); ok {
			return m, m.sh.cmdToggleLike(item)
		}
	case key.Matches(msg, keys.copy):
		if item, ok := m.posts.current(); ok {
			return m, cmdCopy(item.URI)
		}
		if m.profile.DID != "" {
			return m, cmdCopy(m.profile.DID)
		}
	}
	return m, nil
}

func (m *ProfileModel) cmdLoadProfile(did string) tea.Cmd {
	return m.sh.do(func(ctx context.Context, b Backend) tea.Msg {
		var (
			profile models.Profile
			err     error
		)
		if did == "" {
			profile, err = b.FetchMyProfile(ctx)
		} else {
			profile, err = b.FetchUserProfile(ctx, did)
		}
		return profileLoadedMsg{profile: profile, err: err}
	})
}

func (m *ProfileModel) cmdLoadPosts(fresh bool) tea.Cmd {
	did := m.profile.DID
	cursor := m.posts.cursor
	if fresh {
		cursor = ""
	}

	m.loading = true
	load := m.sh.do(func(ctx context.Context, b Backend) tea.Msg {
		if fresh {
			if err := b.ResetFeed(models.FeedAuthor); err != nil {
				return feedLoadedMsg{kind: models.FeedAuthor, fresh: fresh, err: err}
			}
		}
		page, err := b.FetchUserPosts(ctx, did, 0, cursor)
		return feedLoadedMsg{kind: models.FeedAuthor, page: page, fresh: fresh, err: err}
	})
	return tea.Batch(load, m.spinner.Tick)
}

func (m *ProfileModel) cmdToggleFollow() tea.Cmd {
	did := m.profile.DID
	followingURI := m.profile.FollowingURI

	if followingURI != "" {
		return m.sh.do(func(ctx context.Context, b Backend) tea.Msg {
			res, err := b.UnfollowUser(ctx, followingURI)
			if err == nil && !res.Succeeded() {
				err = errors.New(res.Message)
			}
			return followDoneMsg{did: did, unfollowed: true, err: err}
		})
	}

	return m.sh.do(func(ctx context.Context, b Backend) tea.Msg {
		res, err := b.FollowUser(ctx, did)
		if err == nil && res.Status != models.StatusSucceeded {
			err = errors.New(res.Error)
		}
		return followDoneMsg{did: did, uri: res.URI, err: err}
	})
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	if m.profile.DID == "" {
		if m.loading {
			b.WriteString(m.spinner.View())
			b.WriteString(" Loading profile...")
		}
		return renderPage("PROFILE", b.String(), "esc: back")
	}

	p := m.profile
	b.WriteString(authorLine(p.DisplayName, p.Handle))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(p.DID))
	b.WriteString("\n\n")
	if p.Description != "" {
		b.WriteString(p.Description)
		b.WriteString("\n\n")
	}
	b.WriteString(fmt.Sprintf("posts %d · followers %d · following %d", p.PostsCount, p.FollowersCount, p.FollowsCount))

	switch {
	case m.own():
	case m.following:
		b.WriteString("  " + m.spinner.View())
	case p.FollowingURI != "":
		b.WriteString("  [Following]")
	default:
		b.WriteString("  [Follow]")
	}
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading posts...\n")
	}
	b.WriteString(m.posts.View())

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	hotKeys := "esc: back │ ↑/↓: nav │ enter: open │ l: like │ c: copy uri │ m: more"
	if !m.own() {
		hotKeys += " │ f: follow/unfollow"
	}
	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), hotKeys)
}
