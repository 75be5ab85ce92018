package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/koji-m/Bluedog/models"
)

// NavigateTo switches the active page. A non-nil Payload is delivered after
// the switch instead of calling the page's Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type quitMsg struct{}

// errorMsg opens the error overlay, or the sign-in page when err means the
// session is gone.
type errorMsg struct {
	err error
}

type sessionResumedMsg struct {
	session models.Session
	err     error
}

type signInDoneMsg struct {
	result models.StatusResult
}

type signedInMsg struct {
	session models.Session
}

type signInStatusMsg struct {
	text string
}

type signedOutMsg struct{}

// refreshFeedMsg resets the active feed kind and loads its first page.
type refreshFeedMsg struct{}

type feedLoadedMsg struct {
	kind  models.FeedKind
	page  models.FeedPage
	fresh bool
	err   error
}

type openPostMsg struct {
	item models.FeedItem
	from string
}

type repliesLoadedMsg struct {
	uri  string
	page models.RepliesPage
	err  error
}

// openProfileMsg opens the profile of did, or the signed-in user's when did
// is empty.
type openProfileMsg struct {
	did  string
	from string
}

type profileLoadedMsg struct {
	profile models.Profile
	err     error
}

type followDoneMsg struct {
	did        string
	uri        string
	unfollowed bool
	err        error
}

// likeDoneMsg is delivered to every page so all copies of the post agree.
type likeDoneMsg struct {
	postURI string
	likeURI string
	liked   bool
	err     error
}

type postCreatedMsg struct {
	result models.PostResult
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
