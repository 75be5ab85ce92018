// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal shell of the Bluesky client.
//
// The shell is a Bubble Tea program routed by [RootModel]. Every page talks
// to the backend through [Backend]; calls are issued as commands that hold
// a shared lock, so at most one backend operation runs at a time.
package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/koji-m/Bluedog/internal/logger"
	"github.com/koji-m/Bluedog/models"
)

var ErrUserQuit = errors.New("user quit")

// Backend is the subset of the client backend the terminal shell drives.
type Backend interface {
	SignIn(ctx context.Context, identifier, secret string) models.StatusResult
	SignOut()
	Session(ctx context.Context) (models.Session, error)

	ResetFeed(kind models.FeedKind) error
	FetchTimeline(ctx context.Context, limit int, cursor string) (models.FeedPage, error)
	SearchPosts(ctx context.Context, query string, limit int, cursor string) (models.FeedPage, error)
	FetchUserPosts(ctx context.Context, did string, limit int, cursor string) (models.FeedPage, error)
	FetchReplies(ctx context.Context, uri string) (models.RepliesPage, error)
	FetchUserProfile(ctx context.Context, did string) (models.Profile, error)
	FetchMyProfile(ctx context.Context) (models.Profile, error)

	CreatePost(ctx context.Context, text string, imagePaths ...string) models.PostResult
	FollowUser(ctx context.Context, did string) (models.FollowResult, error)
	UnfollowUser(ctx context.Context, uri string) (models.StatusResult, error)
	LikePost(ctx context.Context, uri, cid string) (models.LikeResult, error)
	UnlikePost(ctx context.Context, likeURI string) (models.StatusResult, error)
}

// shell is shared by every page.
type shell struct {
	ctx     context.Context
	backend Backend

	mu      sync.Mutex
	session models.Session

	logger *logger.Logger
}

// do wraps fn into a command that runs with the backend lock held.
func (s *shell) do(fn func(ctx context.Context, b Backend) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		s.mu.Lock()
		defer s.mu.Unlock()
		return fn(s.ctx, s.backend)
	}
}

type TUI struct {
	backend   Backend
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(backend Backend, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if backend == nil {
		return nil, errors.New("tui: nil backend")
	}
	return &TUI{backend: backend, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits. It returns [ErrUserQuit] on ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	sh := &shell{ctx: ctx, backend: t.backend, logger: t.logger}

	root := NewRootModel(sh, newPages(sh), pageSignIn, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func newPages(sh *shell) map[string]page {
	return map[string]page{
		pageSignIn:  NewSignInModel(sh),
		pageFeed:    NewFeedModel(sh),
		pagePost:    NewPostModel(sh),
		pageProfile: NewProfileModel(sh),
		pageCompose: NewComposeModel(sh),
	}
}
