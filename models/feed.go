// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FeedKind names a paginated feed that keeps its own cursor and seen-set.
type FeedKind string

const (
	// FeedTimeline is the signed-in user's reverse-chronological home timeline.
	FeedTimeline FeedKind = "timeline"

	// FeedSearch is the result list of a post search query.
	FeedSearch FeedKind = "search"

	// FeedAuthor is the post list of a single author's profile.
	FeedAuthor FeedKind = "author"
)

// FeedKinds lists every feed kind in a stable order.
var FeedKinds = []FeedKind{FeedTimeline, FeedSearch, FeedAuthor}

// FeedItem is the flattened, display-ready representation of a post.
//
// Optional string fields (RepostedBy, ViewerLikeURI) are always empty
// strings rather than absent, so display code never has to nil-check them.
type FeedItem struct {
	Text              string `json:"text"`
	Avatar            string `json:"avatar"`
	AuthorHandle      string `json:"authorHandle"`
	AuthorDisplayName string `json:"authorDisplayName"`
	AuthorDID         string `json:"authorDid"`
	PostedAt          string `json:"postedAt"`

	ReplyCount int64 `json:"replyCount"`
	// QuoteAndRepostCount is the sum of quotes and reposts; the two are not
	// tracked separately.
	QuoteAndRepostCount int64 `json:"quoteAndRepostCount"`
	LikeCount           int64 `json:"likeCount"`

	// RepostedBy is the reposting actor's display name (or handle), empty
	// when the item is not a repost.
	RepostedBy string `json:"repostedBy"`

	QuotePost *QuotePost `json:"quotePost"`
	Embed     Embed      `json:"embed"`

	URI           string `json:"uri"`
	CID           string `json:"cid"`
	ViewerLikeURI string `json:"viewerLikeUri"`
}

// QuotePost is the reduced shape of a quoted post. Only image embeds of the
// quoted post are carried.
type QuotePost struct {
	Text              string  `json:"text"`
	Avatar            string  `json:"avatar"`
	AuthorHandle      string  `json:"authorHandle"`
	AuthorDisplayName string  `json:"authorDisplayName"`
	AuthorDID         string  `json:"authorDid"`
	PostedAt          string  `json:"postedAt"`
	URI               string  `json:"uri"`
	Embeds            []Embed `json:"embeds"`
}

// FeedPage is one page of a paginated feed. NextCursor is empty when the
// feed is exhausted, and HasMore is true iff NextCursor is not empty.
type FeedPage struct {
	Items      []FeedItem `json:"items"`
	NextCursor string     `json:"nextCursor,omitempty"`
	HasMore    bool       `json:"hasMore"`
}

// RepliesPage is the non-paginated list of a thread's direct replies.
type RepliesPage struct {
	Items []FeedItem `json:"items"`
}

// Profile is the flattened view of an actor profile.
type Profile struct {
	DID            string `json:"did"`
	Banner         string `json:"banner"`
	Avatar         string `json:"avatar"`
	DisplayName    string `json:"displayName"`
	Handle         string `json:"handle"`
	FollowersCount int64  `json:"followersCount"`
	FollowsCount   int64  `json:"followsCount"`
	PostsCount     int64  `json:"postsCount"`
	Description    string `json:"description"`
	// FollowingURI is the viewer's follow record URI, empty when the viewer
	// does not follow this actor.
	FollowingURI string `json:"followingUri"`
}
