// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the XRPC client used to talk to a Bluesky (AT
// Protocol) service.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the wire protocol. [NewXRPCAdapter] implements it on top of
// resty. Each adapter carries at most one authenticated [models.Session] and
// reports session changes to the [TokenListener] registered at construction.
//
// Failed calls are mapped to the sentinel values in errors.go, wrapped in an
// [*XRPCError] that keeps the service's error name and message, so callers
// can use [errors.Is] (e.g. [ErrNotFound], [ErrUnauthorized]).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/koji-m/Bluedog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// TokenListener is notified whenever the adapter's session changes.
//
// OnTokenChanged is called synchronously after the new session has been
// installed. A non-nil error is returned to the caller of the operation that
// triggered the change.
type TokenListener interface {
	OnTokenChanged(event models.SessionEvent, session models.Session) error
}

// Factory creates a fresh, unauthenticated adapter reporting to listener.
type Factory func(listener TokenListener) ServerAdapter

// ServerAdapter defines the XRPC calls the service layer relies on.
type ServerAdapter interface {
	// CreateSession logs in with an identifier (handle, DID or email) and a
	// password or app password. On success the session is installed and
	// reported as [models.SessionCreate].
	CreateSession(ctx context.Context, identifier, password string) (models.Session, error)

	// ResumeSession installs a previously exported session and validates it
	// against the service, refreshing it if the access token expired. The
	// resumed session is reported as [models.SessionImport].
	ResumeSession(ctx context.Context, session models.Session) (models.Session, error)

	// RefreshSession exchanges the refresh token for a new token pair and
	// reports it as [models.SessionRefresh].
	RefreshSession(ctx context.Context) (models.Session, error)

	// Session returns the installed session, false when there is none.
	Session() (models.Session, bool)

	// GetTimeline fetches a page of the reverse-chronological home timeline.
	GetTimeline(ctx context.Context, req models.FeedRequest) (models.FeedResponse, error)

	// SearchPosts fetches a page of posts matching query.
	SearchPosts(ctx context.Context, query string, req models.FeedRequest) (models.SearchPostsResponse, error)

	// GetAuthorFeed fetches a page of posts and reposts by actor.
	GetAuthorFeed(ctx context.Context, actor string, req models.FeedRequest) (models.FeedResponse, error)

	// GetPosts hydrates post views by AT-URI. Unknown URIs are omitted.
	GetPosts(ctx context.Context, uris []string) ([]models.PostView, error)

	// GetPostThread fetches the thread rooted at uri with replies down to
	// depth levels.
	GetPostThread(ctx context.Context, uri string, depth int) (models.ThreadViewPost, error)

	// GetProfile fetches the detailed profile of actor (DID or handle).
	GetProfile(ctx context.Context, actor string) (models.ProfileViewDetailed, error)

	// GetRecord fetches a raw record from repo.
	GetRecord(ctx context.Context, repo, collection, rkey string) (models.GetRecordResponse, error)

	// CreateRecord writes record into the signed-in user's repo.
	CreateRecord(ctx context.Context, collection string, record any) (models.CreateRecordResponse, error)

	// DeleteRecord removes a record from the signed-in user's repo.
	DeleteRecord(ctx context.Context, collection, rkey string) error

	// UploadBlob uploads binary content and returns the blob reference to
	// embed into a record.
	UploadBlob(ctx context.Context, data []byte, mimeType string) (json.RawMessage, error)
}
