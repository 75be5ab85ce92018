// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Lexicon type identifiers used in `$type` discriminators of XRPC payloads.
const (
	TypeEmbedImagesView          = "app.bsky.embed.images#view"
	TypeEmbedExternalView        = "app.bsky.embed.external#view"
	TypeEmbedVideoView           = "app.bsky.embed.video#view"
	TypeEmbedRecordView          = "app.bsky.embed.record#view"
	TypeEmbedRecordWithMediaView = "app.bsky.embed.recordWithMedia#view"
	TypeEmbedRecordViewRecord    = "app.bsky.embed.record#viewRecord"

	TypeReasonRepost   = "app.bsky.feed.defs#reasonRepost"
	TypeThreadViewPost = "app.bsky.feed.defs#threadViewPost"

	TypeEmbedImages = "app.bsky.embed.images"

	CollectionPost   = "app.bsky.feed.post"
	CollectionLike   = "app.bsky.feed.like"
	CollectionFollow = "app.bsky.graph.follow"
)

// ProfileViewBasic is the compact actor view embedded in posts and reasons.
type ProfileViewBasic struct {
	DID         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

// ViewerState describes the authenticated viewer's relationship to a post.
type ViewerState struct {
	// Like is the AT-URI of the viewer's like record, empty if not liked.
	Like string `json:"like,omitempty"`
	// Repost is the AT-URI of the viewer's repost record, empty if not reposted.
	Repost string `json:"repost,omitempty"`
}

// PostView is the hydrated representation of a post returned by
// app.bsky.feed.* queries. Counters missing from the payload decode as zero.
type PostView struct {
	URI         string           `json:"uri"`
	CID         string           `json:"cid"`
	Author      ProfileViewBasic `json:"author"`
	Record      PostRecord       `json:"record"`
	Embed       *EmbedView       `json:"embed,omitempty"`
	ReplyCount  int64            `json:"replyCount,omitempty"`
	RepostCount int64            `json:"repostCount,omitempty"`
	LikeCount   int64            `json:"likeCount,omitempty"`
	QuoteCount  int64            `json:"quoteCount,omitempty"`
	IndexedAt   string           `json:"indexedAt"`
	Viewer      *ViewerState     `json:"viewer,omitempty"`
}

// FeedReason explains why a post appears in a feed. Only reposts carry an
// actor in By.
type FeedReason struct {
	Type      string           `json:"$type"`
	By        ProfileViewBasic `json:"by"`
	IndexedAt string           `json:"indexedAt,omitempty"`
}

// FeedViewPost is one entry of a timeline or author feed.
type FeedViewPost struct {
	Post   PostView    `json:"post"`
	Reason *FeedReason `json:"reason,omitempty"`
}

// ImageView is one image of an app.bsky.embed.images#view.
type ImageView struct {
	Thumb    string `json:"thumb"`
	Fullsize string `json:"fullsize,omitempty"`
	Alt      string `json:"alt,omitempty"`
}

// ExternalView is the link card of an app.bsky.embed.external#view.
type ExternalView struct {
	URI         string `json:"uri"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumb       string `json:"thumb,omitempty"`
}

// EmbedView is a flattened decoding target for every embed view variant.
// Type selects which of the remaining fields are meaningful:
//   - images#view: Images
//   - external#view: External
//   - video#view: Playlist, Thumbnail
//   - record#view: Record (a viewRecord, or notFound/blocked)
//   - recordWithMedia#view: Record (wrapping a record#view) and Media
type EmbedView struct {
	Type      string        `json:"$type"`
	Images    []ImageView   `json:"images,omitempty"`
	External  *ExternalView `json:"external,omitempty"`
	Playlist  string        `json:"playlist,omitempty"`
	Thumbnail string        `json:"thumbnail,omitempty"`
	Record    *EmbedRecord  `json:"record,omitempty"`
	Media     *EmbedView    `json:"media,omitempty"`
}

// EmbedRecord is the record payload of a record embed. For viewRecord the
// post fields are set; for the recordWithMedia wrapper only Record is set.
type EmbedRecord struct {
	Type      string           `json:"$type,omitempty"`
	URI       string           `json:"uri,omitempty"`
	CID       string           `json:"cid,omitempty"`
	Author    ProfileViewBasic `json:"author"`
	Value     PostRecord       `json:"value"`
	Embeds    []EmbedView      `json:"embeds,omitempty"`
	IndexedAt string           `json:"indexedAt,omitempty"`
	Record    *EmbedRecord     `json:"record,omitempty"`
}

// ThreadViewPost is a node of a post thread. Replies that are not found or
// blocked decode with a different Type and a nil Post.
type ThreadViewPost struct {
	Type    string           `json:"$type"`
	Post    *PostView        `json:"post,omitempty"`
	Replies []ThreadViewPost `json:"replies,omitempty"`
}

// ProfileViewerState describes the viewer's relationship to an actor.
type ProfileViewerState struct {
	Following  string `json:"following,omitempty"`
	FollowedBy string `json:"followedBy,omitempty"`
}

// ProfileViewDetailed is the response of app.bsky.actor.getProfile.
type ProfileViewDetailed struct {
	DID            string              `json:"did"`
	Handle         string              `json:"handle"`
	DisplayName    string              `json:"displayName,omitempty"`
	Description    string              `json:"description,omitempty"`
	Avatar         string              `json:"avatar,omitempty"`
	Banner         string              `json:"banner,omitempty"`
	FollowersCount int64               `json:"followersCount,omitempty"`
	FollowsCount   int64               `json:"followsCount,omitempty"`
	PostsCount     int64               `json:"postsCount,omitempty"`
	Viewer         *ProfileViewerState `json:"viewer,omitempty"`
}

// PostRecord is the app.bsky.feed.post record, used both when reading
// record values and when creating new posts.
type PostRecord struct {
	Type      string             `json:"$type,omitempty"`
	Text      string             `json:"text"`
	CreatedAt string             `json:"createdAt,omitempty"`
	Embed     *ImagesEmbedRecord `json:"embed,omitempty"`
	Langs     []string           `json:"langs,omitempty"`
}

// ImagesEmbedRecord is the app.bsky.embed.images record attached to a new post.
type ImagesEmbedRecord struct {
	Type   string        `json:"$type"`
	Images []ImageRecord `json:"images"`
}

// ImageRecord references one uploaded blob.
type ImageRecord struct {
	Alt   string          `json:"alt"`
	Image json.RawMessage `json:"image"`
}

// StrongRef pins a record by URI and CID.
type StrongRef struct {
	URI string `json:"uri"`
	CID string `json:"cid"`
}

// LikeRecord is the app.bsky.feed.like record.
type LikeRecord struct {
	Type      string    `json:"$type"`
	Subject   StrongRef `json:"subject"`
	CreatedAt string    `json:"createdAt"`
}

// FollowRecord is the app.bsky.graph.follow record.
type FollowRecord struct {
	Type      string `json:"$type"`
	Subject   string `json:"subject"`
	CreatedAt string `json:"createdAt"`
}
