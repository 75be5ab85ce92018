// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/koji-m/Bluedog/internal/logger"
	"github.com/koji-m/Bluedog/internal/service"
	"github.com/koji-m/Bluedog/models"
)

// Backend is the operation surface shared by the terminal client and the
// HTTP bridge. It is owned by the hosting shell, which must serialise calls.
//
// Feed operations return [ErrUninitialized] until Initialize succeeds. Write
// operations report service failures in their result values and return an
// error only when the backend is uninitialised.
type Backend struct {
	sessions service.SessionManager
	feeds    service.FeedService

	initialized bool

	logger *logger.Logger
}

func NewBackend(services *service.ClientServices, logger *logger.Logger) *Backend {
	return &Backend{
		sessions: services.SessionManager,
		feeds:    services.FeedService,
		logger:   logger,
	}
}

// Initialize points the backend at dataDir, creating it when absent, and
// clears every feed state. dataDir may be a file:// URL.
func (b *Backend) Initialize(_ context.Context, dataDir string) models.StatusResult {
	if err := b.sessions.Configure(dataDir); err != nil {
		b.logger.Err(err).Str("dir", dataDir).Msg("initialize backend")
		return models.StatusResult{Status: models.StatusFailed, Message: err.Error()}
	}

	b.feeds.ResetAll()
	b.initialized = true

	return models.StatusResult{Status: models.StatusSucceeded}
}

// Initialized reports whether Initialize has succeeded.
func (b *Backend) Initialized() bool {
	return b.initialized
}

func (b *Backend) SignIn(ctx context.Context, identifier, secret string) models.StatusResult {
	if !b.initialized {
		return models.StatusResult{Status: models.StatusError, Message: ErrUninitialized.Error()}
	}

	res := b.sessions.SignIn(ctx, identifier, secret)
	if res.Succeeded() {
		b.feeds.ResetAll()
	}
	return res
}

// SignOut forgets the persisted session and every feed state. Later feed
// operations fail with service.ErrUnauthenticated until the next SignIn.
func (b *Backend) SignOut() {
	b.sessions.SignOut()
	b.feeds.ResetAll()
}

// Session materialises the client handle and returns its session. It is how
// shells find out whether a persisted session is still usable.
func (b *Backend) Session(ctx context.Context) (models.Session, error) {
	if !b.initialized {
		return models.Session{}, ErrUninitialized
	}
	if _, err := b.sessions.Client(ctx); err != nil {
		return models.Session{}, err
	}

	session, ok := b.sessions.Session()
	if !ok {
		return models.Session{}, service.ErrUnauthenticated
	}
	return session, nil
}

// ── feed state ──────────────────────────────────────────────────────────────

// ResetFeed clears the cursor and seen-set of kind.
func (b *Backend) ResetFeed(kind models.FeedKind) error {
	if !b.initialized {
		return ErrUninitialized
	}
	b.feeds.ResetCursor(kind)
	return nil
}

// ResetState clears every feed kind.
func (b *Backend) ResetState() error {
	if !b.initialized {
		return ErrUninitialized
	}
	b.feeds.ResetAll()
	return nil
}

func (b *Backend) ResetTimelineState() error {
	return b.ResetFeed(models.FeedTimeline)
}

func (b *Backend) ResetSearchState() error {
	return b.ResetFeed(models.FeedSearch)
}

func (b *Backend) ResetAuthorFeedState() error {
	return b.ResetFeed(models.FeedAuthor)
}

// ── reads ───────────────────────────────────────────────────────────────────

// FetchTimeline returns the next timeline page. limit <= 0 selects the
// configured default.
func (b *Backend) FetchTimeline(ctx context.Context, limit int, cursor string) (models.FeedPage, error) {
	return b.fetch(ctx, models.FeedQuery{Kind: models.FeedTimeline, Limit: limit, Cursor: cursor})
}

func (b *Backend) SearchPosts(ctx context.Context, query string, limit int, cursor string) (models.FeedPage, error) {
	return b.fetch(ctx, models.FeedQuery{Kind: models.FeedSearch, Query: query, Limit: limit, Cursor: cursor})
}

// FetchUserPosts returns the next page of did's author feed.
func (b *Backend) FetchUserPosts(ctx context.Context, did string, limit int, cursor string) (models.FeedPage, error) {
	return b.fetch(ctx, models.FeedQuery{Kind: models.FeedAuthor, Actor: did, Limit: limit, Cursor: cursor})
}

func (b *Backend) fetch(ctx context.Context, q models.FeedQuery) (models.FeedPage, error) {
	if !b.initialized {
		return models.FeedPage{}, ErrUninitialized
	}
	return b.feeds.Fetch(ctx, q)
}

func (b *Backend) FetchPost(ctx context.Context, rkey, handle string) (models.FeedPage, error) {
	if !b.initialized {
		return models.FeedPage{}, ErrUninitialized
	}
	return b.feeds.FetchSinglePost(ctx, rkey, handle)
}

func (b *Backend) FetchPostByURI(ctx context.Context, uri string) (models.FeedPage, error) {
	if !b.initialized {
		return models.FeedPage{}, ErrUninitialized
	}
	return b.feeds.FetchPostByURI(ctx, uri)
}

func (b *Backend) FetchReplies(ctx context.Context, uri string) (models.RepliesPage, error) {
	if !b.initialized {
		return models.RepliesPage{}, ErrUninitialized
	}
	return b.feeds.FetchThreadReplies(ctx, uri)
}

func (b *Backend) FetchUserProfile(ctx context.Context, did string) (models.Profile, error) {
	if !b.initialized {
		return models.Profile{}, ErrUninitialized
	}
	return b.feeds.FetchProfile(ctx, did)
}

func (b *Backend) FetchMyProfile(ctx context.Context) (models.Profile, error) {
	if !b.initialized {
		return models.Profile{}, ErrUninitialized
	}
	return b.feeds.FetchMyProfile(ctx)
}

// ── writes ──────────────────────────────────────────────────────────────────

// CreatePost publishes text with optional local image attachments. It never
// returns an error; failures, including an uninitialised backend, are
// reported in the result.
func (b *Backend) CreatePost(ctx context.Context, text string, imagePaths ...string) models.PostResult {
	if !b.initialized {
		return models.PostResult{Status: models.StatusFailed, Error: ErrUninitialized.Error()}
	}
	return b.feeds.Post(ctx, models.PostDraft{Text: text, ImagePaths: imagePaths})
}

func (b *Backend) FollowUser(ctx context.Context, did string) (models.FollowResult, error) {
	if !b.initialized {
		return models.FollowResult{}, ErrUninitialized
	}
	return b.feeds.Follow(ctx, did), nil
}

func (b *Backend) UnfollowUser(ctx context.Context, uri string) (models.StatusResult, error) {
	if !b.initialized {
		return models.StatusResult{}, ErrUninitialized
	}
	return b.feeds.Unfollow(ctx, uri), nil
}

func (b *Backend) LikePost(ctx context.Context, uri, cid string) (models.LikeResult, error) {
	if !b.initialized {
		return models.LikeResult{}, ErrUninitialized
	}
	return b.feeds.LikePost(ctx, uri, cid), nil
}

func (b *Backend) UnlikePost(ctx context.Context, likeURI string) (models.StatusResult, error) {
	if !b.initialized {
		return models.StatusResult{}, ErrUninitialized
	}
	return b.feeds.UnlikePost(ctx, likeURI), nil
}
