package tui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/koji-m/Bluedog/models"
)

const statusTTL = 2 * time.Second

// cmdToggleLike likes item, or removes the viewer's like when present.
func (s *shell) cmdToggleLike(item models.FeedItem) tea.Cmd {
	if item.ViewerLikeURI != "" {
		likeURI := item.ViewerLikeURI
		return s.do(func(ctx context.Context, b Backend) tea.Msg {
			res, err := b.UnlikePost(ctx, likeURI)
			if err == nil && !res.Succeeded() {
				err = errors.New(res.Message)
			}
			return likeDoneMsg{postURI: item.URI, err: err}
		})
	}

	return s.do(func(ctx context.Context, b Backend) tea.Msg {
		res, err := b.LikePost(ctx, item.URI, item.CID)
		if err == nil && res.Status != models.StatusSucceeded {
			err = errors.New(res.Error)
		}
		return likeDoneMsg{postURI: item.URI, likeURI: res.URI, liked: true, err: err}
	})
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// copyStatus turns a clipboard result into a status line and its commands.
func copyStatus(msg copiedMsg) (string, tea.Cmd) {
	if msg.err != nil {
		return "", showError(msg.err)
	}
	return "Copied!", cmdClearStatus()
}
