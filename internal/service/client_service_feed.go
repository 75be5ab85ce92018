// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/koji-m/Bluedog/internal/config"
	"github.com/koji-m/Bluedog/internal/logger"
	"github.com/koji-m/Bluedog/internal/validators"
	"github.com/koji-m/Bluedog/models"
)

// threadDepth limits getPostThread to the direct replies.
const threadDepth = 1

type cursorState struct {
	cursor string
	seen   map[string]struct{}
}

func newCursorState() *cursorState {
	return &cursorState{seen: make(map[string]struct{})}
}

type feedService struct {
	sessions  SessionManager
	validator validators.Validator
	limits    config.ClientFeed
	observer  FeedObserver

	states map[models.FeedKind]*cursorState

	now      func() time.Time
	readFile func(name string) ([]byte, error)

	logger *logger.Logger
}

// NewFeedService returns a feed service using the adapters of sessions.
// observer may be nil.
func NewFeedService(sessions SessionManager, limits config.ClientFeed, observer FeedObserver, logger *logger.Logger) FeedService {
	f := &feedService{
		sessions:  sessions,
		validator: validators.NewRequestValidator(),
		limits:    limits,
		observer:  observer,
		states:    make(map[models.FeedKind]*cursorState, len(models.FeedKinds)),
		now:       time.Now,
		readFile:  os.ReadFile,
		logger:    logger,
	}
	f.ResetAll()

	return f
}

func (f *feedService) defaultLimit(kind models.FeedKind) int {
	switch kind {
	case models.FeedSearch:
		return f.limits.SearchLimit
	case models.FeedAuthor:
		return f.limits.AuthorLimit
	default:
		return f.limits.TimelineLimit
	}
}

func (f *feedService) state(kind models.FeedKind) *cursorState {
	st, ok := f.states[kind]
	if !ok {
		st = newCursorState()
		f.states[kind] = st
	}
	return st
}

func (f *feedService) Fetch(ctx context.Context, q models.FeedQuery) (models.FeedPage, error) {
	q.Limit = validators.ClampLimit(q.Limit, f.defaultLimit(q.Kind))
	if err := f.validator.Validate(ctx, q); err != nil {
		return models.FeedPage{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	entries, next, err := f.fetchEntries(ctx, q)
	if err != nil {
		return models.FeedPage{}, err
	}

	st := f.state(q.Kind)
	items := make([]models.FeedItem, 0, len(entries))
	suppressed := 0

	for _, entry := range entries {
		uri := entry.Post.URI
		if uri == "" {
			suppressed++
			continue
		}
		if _, ok := st.seen[uri]; ok {
			suppressed++
			continue
		}
		st.seen[uri] = struct{}{}

		items = append(items, NormalizePost(entry.Post, RepostLabel(entry.Reason)))
	}

	st.cursor = next

	if f.observer != nil {
		f.observer.ObserveFetch(q.Kind, len(items), suppressed)
	}

	f.logger.Debug().
		Str("kind", string(q.Kind)).
		Int("limit", q.Limit).
		Int("emitted", len(items)).
		Int("suppressed", suppressed).
		Bool("has_more", next != "").
		Msg("feed page fetched")

	return models.FeedPage{
		Items:      items,
		NextCursor: next,
		HasMore:    next != "",
	}, nil
}

// fetchEntries calls the adapter query of q.Kind. Search results carry no
// reason and are wrapped as plain feed entries.
func (f *feedService) fetchEntries(ctx context.Context, q models.FeedQuery) ([]models.FeedViewPost, string, error) {
	client, err := f.sessions.Client(ctx)
	if err != nil {
		return nil, "", err
	}

	req := models.FeedRequest{Limit: q.Limit, Cursor: q.Cursor}

	switch q.Kind {
	case models.FeedSearch:
		resp, err := client.SearchPosts(ctx, q.Query, req)
		if err != nil {
			return nil, "", mapAdapterError(err)
		}
		entries := make([]models.FeedViewPost, 0, len(resp.Posts))
		for _, p := range resp.Posts {
			entries = append(entries, models.FeedViewPost{Post: p})
		}
		return entries, resp.Cursor, nil

	case models.FeedAuthor:
		resp, err := client.GetAuthorFeed(ctx, q.Actor, req)
		if err != nil {
			return nil, "", mapAdapterError(err)
		}
		return resp.Feed, resp.Cursor, nil

	default:
		resp, err := client.GetTimeline(ctx, req)
		if err != nil {
			return nil, "", mapAdapterError(err)
		}
		return resp.Feed, resp.Cursor, nil
	}
}

func (f *feedService) Cursor(kind models.FeedKind) string {
	if st, ok := f.states[kind]; ok {
		return st.cursor
	}
	return ""
}

func (f *feedService) ResetCursor(kind models.FeedKind) {
	f.states[kind] = newCursorState()
}

func (f *feedService) ResetAll() {
	for _, kind := range models.FeedKinds {
		f.ResetCursor(kind)
	}
}

func (f *feedService) FetchSinglePost(ctx context.Context, rkey, handle string) (models.FeedPage, error) {
	if err := f.validator.Validate(ctx, rkey, validators.FieldRKey); err != nil {
		return models.FeedPage{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if err := f.validator.Validate(ctx, handle, validators.FieldActor); err != nil {
		return models.FeedPage{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	client, err := f.sessions.Client(ctx)
	if err != nil {
		return models.FeedPage{}, err
	}

	record, err := client.GetRecord(ctx, handle, models.CollectionPost, rkey)
	if err != nil {
		return models.FeedPage{}, mapAdapterError(err)
	}

	return f.singlePost(ctx, record.URI)
}

func (f *feedService) FetchPostByURI(ctx context.Context, uri string) (models.FeedPage, error) {
	if err := f.validator.Validate(ctx, uri, validators.FieldATURI); err != nil {
		return models.FeedPage{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return f.singlePost(ctx, uri)
}

func (f *feedService) singlePost(ctx context.Context, uri string) (models.FeedPage, error) {
	client, err := f.sessions.Client(ctx)
	if err != nil {
		return models.FeedPage{}, err
	}

	posts, err := client.GetPosts(ctx, []string{uri})
	if err != nil {
		return models.FeedPage{}, mapAdapterError(err)
	}
	if len(posts) == 0 {
		return models.FeedPage{}, fmt.Errorf("%w: %s", ErrPostNotFound, uri)
	}

	return models.FeedPage{
		Items:   []models.FeedItem{NormalizePost(posts[0], "")},
		HasMore: false,
	}, nil
}

func (f *feedService) FetchThreadReplies(ctx context.Context, uri string) (models.RepliesPage, error) {
	if err := f.validator.Validate(ctx, uri, validators.FieldATURI); err != nil {
		return models.RepliesPage{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	client, err := f.sessions.Client(ctx)
	if err != nil {
		return models.RepliesPage{}, err
	}

	thread, err := client.GetPostThread(ctx, uri, threadDepth)
	if err != nil {
		return models.RepliesPage{}, mapAdapterError(err)
	}

	items := make([]models.FeedItem, 0, len(thread.Replies))
	for _, reply := range thread.Replies {
		if reply.Post == nil || (reply.Type != "" && reply.Type != models.TypeThreadViewPost) {
			continue
		}
		items = append(items, NormalizePost(*reply.Post, ""))
	}

	return models.RepliesPage{Items: items}, nil
}

func (f *feedService) FetchProfile(ctx context.Context, did string) (models.Profile, error) {
	if err := f.validator.Validate(ctx, did, validators.FieldActor); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	client, err := f.sessions.Client(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	p, err := client.GetProfile(ctx, did)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	profile := models.Profile{
		DID:            p.DID,
		Banner:         p.Banner,
		Avatar:         p.Avatar,
		DisplayName:    p.DisplayName,
		Handle:         p.Handle,
		FollowersCount: p.FollowersCount,
		FollowsCount:   p.FollowsCount,
		PostsCount:     p.PostsCount,
		Description:    p.Description,
	}
	if profile.DID == "" {
		profile.DID = did
	}
	if p.Viewer != nil {
		profile.FollowingURI = p.Viewer.Following
	}

	return profile, nil
}

func (f *feedService) FetchMyProfile(ctx context.Context) (models.Profile, error) {
	if _, err := f.sessions.Client(ctx); err != nil {
		return models.Profile{}, err
	}

	session, ok := f.sessions.Session()
	if !ok {
		return models.Profile{}, ErrUnauthenticated
	}

	return f.FetchProfile(ctx, session.DID)
}
