package service

import (
	"context"

	"github.com/koji-m/Bluedog/internal/adapter"
	"github.com/koji-m/Bluedog/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionManager owns the persisted session token and the authenticated
// adapter built from it. It is also the [adapter.TokenListener] of every
// adapter it creates, so refreshed tokens are written back to storage.
type SessionManager interface {
	adapter.TokenListener

	// Configure sets the directory the session token is persisted in and
	// creates it when absent. A file:// URL is accepted and converted to a
	// local path. Configure drops the current client handle.
	// Returns an error if the directory cannot be created.
	Configure(dir string) error

	// Client returns the current authenticated adapter. When there is none it
	// loads the persisted token and resumes a session from it.
	// Returns ErrNotConfigured before Configure, ErrUnauthenticated when no
	// token is persisted, or the mapped adapter error if resuming fails.
	Client(ctx context.Context) (adapter.ServerAdapter, error)

	// SignIn logs in with identifier and secret and makes the new adapter
	// current. The created token is persisted through OnTokenChanged.
	// Failures are reported in the result with status "error" and a
	// non-empty message; SignIn never returns an error.
	SignIn(ctx context.Context, identifier, secret string) models.StatusResult

	// SignOut removes the persisted token, ignoring deletion errors, and
	// drops the current adapter.
	SignOut()

	// Session returns the session of the current adapter, false when no
	// adapter has been materialised.
	Session() (models.Session, bool)
}

// FeedService fetches, de-duplicates and normalises feeds, and performs the
// write actions of the signed-in user.
//
// Each [models.FeedKind] keeps its own cursor and seen-set. Within one
// seen-set a post URI is emitted at most once until the kind is reset.
// The service holds no locks; callers serialise access.
type FeedService interface {
	// Fetch returns the next page of q.Kind starting at q.Cursor. Posts whose
	// URI is empty or already seen for the kind are skipped. The kind's
	// cursor is replaced by the response cursor and HasMore reports whether
	// it is non-empty. A non-positive limit selects the kind's default.
	// Returns ErrInvalidRequest for malformed queries and the mapped adapter
	// error when the call fails.
	Fetch(ctx context.Context, q models.FeedQuery) (models.FeedPage, error)

	// Cursor returns the last cursor recorded for kind, empty when none.
	Cursor(kind models.FeedKind) string

	// ResetCursor clears the cursor and seen-set of kind only.
	ResetCursor(kind models.FeedKind)

	// ResetAll clears every kind.
	ResetAll()

	// FetchSinglePost resolves the post with record key rkey in the repo of
	// handle and returns it as a one-item page that never has more.
	FetchSinglePost(ctx context.Context, rkey, handle string) (models.FeedPage, error)

	// FetchPostByURI returns the post at uri as a one-item page.
	FetchPostByURI(ctx context.Context, uri string) (models.FeedPage, error)

	// FetchThreadReplies returns the normalised direct replies of the thread
	// at uri. Blocked and missing replies are skipped. No state is kept.
	FetchThreadReplies(ctx context.Context, uri string) (models.RepliesPage, error)

	// FetchProfile returns the profile of did (a DID or handle).
	FetchProfile(ctx context.Context, did string) (models.Profile, error)

	// FetchMyProfile returns the profile of the signed-in account.
	FetchMyProfile(ctx context.Context) (models.Profile, error)

	// Follow creates a follow record for did. The result carries the record
	// URI on success and status "failed" with the error text otherwise.
	Follow(ctx context.Context, did string) models.FollowResult

	// Unfollow deletes the follow record at uri.
	Unfollow(ctx context.Context, uri string) models.StatusResult

	// LikePost creates a like record for the post pinned by uri and cid.
	LikePost(ctx context.Context, uri, cid string) models.LikeResult

	// UnlikePost deletes the like record at likeURI.
	UnlikePost(ctx context.Context, likeURI string) models.StatusResult

	// Post publishes draft, uploading and attaching its images first.
	// Failures are reported in the result; Post never returns an error.
	Post(ctx context.Context, draft models.PostDraft) models.PostResult
}

// FeedObserver is told how many posts each paginated fetch emitted and how
// many it suppressed as duplicates.
type FeedObserver interface {
	ObserveFetch(kind models.FeedKind, emitted, suppressed int)
}
