package tui

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/koji-m/Bluedog/internal/logger"
	"github.com/koji-m/Bluedog/models"
)

// fakeBackend records calls and serves canned pages.
type fakeBackend struct {
	calls []string

	session    models.Session
	sessionErr error
	signIn     models.StatusResult

	timeline map[string]models.FeedPage
	search   map[string]models.FeedPage
	author   map[string]models.FeedPage
	replies  models.RepliesPage
	profile  models.Profile

	like     models.LikeResult
	unlike   models.StatusResult
	follow   models.FollowResult
	unfollow models.StatusResult
	post     models.PostResult

	postedText   string
	postedImages []string
}

func (f *fakeBackend) record(call string) { f.calls = append(f.calls, call) }

func (f *fakeBackend) SignIn(_ context.Context, identifier, _ string) models.StatusResult {
	f.record("SignIn " + identifier)
	return f.signIn
}

func (f *fakeBackend) SignOut() { f.record("SignOut") }

func (f *fakeBackend) Session(context.Context) (models.Session, error) {
	f.record("Session")
	return f.session, f.sessionErr
}

func (f *fakeBackend) ResetFeed(kind models.FeedKind) error {
	f.record("ResetFeed " + string(kind))
	return nil
}

func (f *fakeBackend) FetchTimeline(_ context.Context, _ int, cursor string) (models.FeedPage, error) {
	f.record("FetchTimeline " + cursor)
	return f.timeline[cursor], nil
}

func (f *fakeBackend) SearchPosts(_ context.Context, query string, _ int, cursor string) (models.FeedPage, error) {
	f.record("SearchPosts " + query + " " + cursor)
	return f.search[cursor], nil
}

func (f *fakeBackend) FetchUserPosts(_ context.Context, did string, _ int, cursor string) (models.FeedPage, error) {
	f.record("FetchUserPosts " + did + " " + cursor)
	return f.author[cursor], nil
}

func (f *fakeBackend) FetchReplies(_ context.Context, uri string) (models.RepliesPage, error) {
	f.record("FetchReplies " + uri)
	return f.replies, nil
}

func (f *fakeBackend) FetchUserProfile(_ context.Context, did string) (models.Profile, error) {
	f.record("FetchUserProfile " + did)
	return f.profile, nil
}

func (f *fakeBackend) FetchMyProfile(context.Context) (models.Profile, error) {
	f.record("FetchMyProfile")
	return f.profile, nil
}

func (f *fakeBackend) CreatePost(_ context.Context, text string, imagePaths ...string) models.PostResult {
	f.record("CreatePost")
	f.postedText = text
	f.postedImages = imagePaths
	return f.post
}

func (f *fakeBackend) FollowUser(_ context.Context, did string) (models.FollowResult, error) {
	f.record("FollowUser " + did)
	return f.follow, nil
}

func (f *fakeBackend) UnfollowUser(_ context.Context, uri string) (models.StatusResult, error) {
	f.record("UnfollowUser " + uri)
	return f.unfollow, nil
}

func (f *fakeBackend) LikePost(_ context.Context, uri, _ string) (models.LikeResult, error) {
	f.record("LikePost " + uri)
	return f.like, nil
}

func (f *fakeBackend) UnlikePost(_ context.Context, likeURI string) (models.StatusResult, error) {
	f.record("UnlikePost " + likeURI)
	return f.unlike, nil
}

func newTestShell(b Backend) *shell {
	return &shell{ctx: context.Background(), backend: b, logger: logger.Nop()}
}

// run executes cmd and every command it batches, returning the produced
// messages. Spinner ticks are dropped.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, run(c)...)
		}
		return out
	default:
		if isTick(msg) {
			return nil
		}
		return []tea.Msg{msg}
	}
}

func isTick(msg tea.Msg) bool {
	_, ok := msg.(spinner.TickMsg)
	return ok
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func post(uri string) models.FeedItem {
	return models.FeedItem{
		URI:          uri,
		CID:          "bafy",
		Text:         "text of " + uri,
		AuthorHandle: "bob.test",
		AuthorDID:    "did:plc:bob",
	}
}

func feedPage(cursor string, items ...models.FeedItem) models.FeedPage {
	return models.FeedPage{Items: items, NextCursor: cursor, HasMore: cursor != ""}
}

func mustFind[T any](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v
		}
	}
	var zero T
	t.Fatalf("no %T among %v", zero, msgs)
	return zero
}
