package service

import (
	"encoding/json"
	"testing"

	"github.com/koji-m/Bluedog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basePost() models.PostView {
	return models.PostView{
		URI: "at://did:plc:bob/app.bsky.feed.post/3kpost",
		CID: "bafypost",
		Author: models.ProfileViewBasic{
			DID:         "did:plc:bob",
			Handle:      "bob.test",
			DisplayName: "Bob",
			Avatar:      "https://cdn.test/bob.jpg",
		},
		Record:    models.PostRecord{Text: "hello world"},
		IndexedAt: "2026-01-02T03:04:05.000Z",
	}
}

// ── counts ───────────────────────────────────────────────────────────────────

func TestNormalizePost_MissingCountsAreZero(t *testing.T) {
	item := NormalizePost(basePost(), "")

	assert.Zero(t, item.ReplyCount)
	assert.Zero(t, item.LikeCount)
	assert.Zero(t, item.QuoteAndRepostCount)
}

func TestNormalizePost_Fields(t *testing.T) {
	post := basePost()
	post.ReplyCount = 3
	post.LikeCount = 10
	post.RepostCount = 4
	post.QuoteCount = 2
	post.Viewer = &models.ViewerState{Like: "at://did:plc:me/app.bsky.feed.like/3klike"}

	item := NormalizePost(post, "Carol")

	assert.Equal(t, models.FeedItem{
		Text:                "hello world",
		Avatar:              "https://cdn.test/bob.jpg",
		AuthorHandle:        "bob.test",
		AuthorDisplayName:   "Bob",
		AuthorDID:           "did:plc:bob",
		PostedAt:            "2026-01-02T03:04:05.000Z",
		ReplyCount:          3,
		QuoteAndRepostCount: 6,
		LikeCount:           10,
		RepostedBy:          "Carol",
		URI:                 post.URI,
		CID:                 "bafypost",
		ViewerLikeURI:       "at://did:plc:me/app.bsky.feed.like/3klike",
	}, item)
}

func TestNormalizePost_EmptyOptionalsEncodeAsEmptyStrings(t *testing.T) {
	post := basePost()
	post.Viewer = &models.ViewerState{}

	item := NormalizePost(post, "")
	assert.Equal(t, "", item.ViewerLikeURI)
	assert.Equal(t, "", item.RepostedBy)

	raw, err := json.Marshal(item)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "", decoded["repostedBy"])
	assert.Equal(t, "", decoded["viewerLikeUri"])
	assert.Nil(t, decoded["quotePost"])
	assert.Nil(t, decoded["embed"])
}

// ── repost label ─────────────────────────────────────────────────────────────

func TestRepostLabel(t *testing.T) {
	tests := []struct {
		name   string
		reason *models.FeedReason
		want   string
	}{
		{name: "not a repost", reason: nil, want: ""},
		{
			name: "display name",
			reason: &models.FeedReason{
				Type: models.TypeReasonRepost,
				By:   models.ProfileViewBasic{Handle: "carol.test", DisplayName: "Carol"},
			},
			want: "Carol",
		},
		{
			name: "falls back to handle",
			reason: &models.FeedReason{
				Type: models.TypeReasonRepost,
				By:   models.ProfileViewBasic{Handle: "carol.test"},
			},
			want: "carol.test",
		},
		{
			name:   "pinned post",
			reason: &models.FeedReason{Type: "app.bsky.feed.defs#reasonPin"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RepostLabel(tt.reason))
		})
	}
}

// ── embeds ───────────────────────────────────────────────────────────────────

func imagesView(thumbs ...string) *models.EmbedView {
	view := &models.EmbedView{Type: models.TypeEmbedImagesView}
	for _, th := range thumbs {
		view.Images = append(view.Images, models.ImageView{Thumb: th, Fullsize: th + "@full"})
	}
	return view
}

func quotedRecord() *models.EmbedRecord {
	return &models.EmbedRecord{
		Type:      models.TypeEmbedRecordViewRecord,
		URI:       "at://did:plc:dan/app.bsky.feed.post/3kquote",
		CID:       "bafyquote",
		Author:    models.ProfileViewBasic{DID: "did:plc:dan", Handle: "dan.test", DisplayName: "Dan", Avatar: "dan.jpg"},
		Value:     models.PostRecord{Text: "quoted text"},
		IndexedAt: "2026-01-01T00:00:00.000Z",
		Embeds: []models.EmbedView{
			*imagesView("q1.jpg"),
			{Type: models.TypeEmbedExternalView, External: &models.ExternalView{URI: "https://example.com"}},
			{Type: models.TypeEmbedVideoView, Playlist: "video.m3u8"},
		},
	}
}

func TestNormalizePost_Embed(t *testing.T) {
	tests := []struct {
		name  string
		embed *models.EmbedView
		want  models.Embed
	}{
		{name: "none", embed: nil, want: models.Embed{}},
		{
			name:  "images",
			embed: imagesView("a.jpg", "b.jpg"),
			want:  models.NewImagesEmbed([]string{"a.jpg", "b.jpg"}),
		},
		{
			name: "external",
			embed: &models.EmbedView{
				Type: models.TypeEmbedExternalView,
				External: &models.ExternalView{
					URI:         "https://example.com",
					Title:       "Example",
					Description: "An example",
					Thumb:       "card.jpg",
				},
			},
			want: models.NewExternalEmbed("https://example.com", "Example", "An example", "card.jpg"),
		},
		{
			name:  "external without card",
			embed: &models.EmbedView{Type: models.TypeEmbedExternalView},
			want:  models.Embed{},
		},
		{
			name:  "video",
			embed: &models.EmbedView{Type: models.TypeEmbedVideoView, Playlist: "v.m3u8", Thumbnail: "v.jpg"},
			want:  models.NewVideoEmbed("v.m3u8", "v.jpg"),
		},
		{
			name:  "unknown kind",
			embed: &models.EmbedView{Type: "app.bsky.embed.somethingNew#view"},
			want:  models.Embed{},
		},
		{
			name:  "quote only",
			embed: &models.EmbedView{Type: models.TypeEmbedRecordView, Record: quotedRecord()},
			want:  models.Embed{},
		},
		{
			name: "quote with media",
			embed: &models.EmbedView{
				Type:   models.TypeEmbedRecordWithMediaView,
				Record: &models.EmbedRecord{Record: quotedRecord()},
				Media:  imagesView("m.jpg"),
			},
			want: models.NewImagesEmbed([]string{"m.jpg"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := basePost()
			post.Embed = tt.embed

			assert.Equal(t, tt.want, NormalizePost(post, "").Embed)
		})
	}
}

// ── quote posts ──────────────────────────────────────────────────────────────

func TestNormalizePost_QuoteKeepsImagesOnly(t *testing.T) {
	post := basePost()
	post.Embed = &models.EmbedView{Type: models.TypeEmbedRecordView, Record: quotedRecord()}

	item := NormalizePost(post, "")
	require.NotNil(t, item.QuotePost)

	assert.Equal(t, &models.QuotePost{
		Text:              "quoted text",
		Avatar:            "dan.jpg",
		AuthorHandle:      "dan.test",
		AuthorDisplayName: "Dan",
		AuthorDID:         "did:plc:dan",
		PostedAt:          "2026-01-01T00:00:00.000Z",
		URI:               "at://did:plc:dan/app.bsky.feed.post/3kquote",
		Embeds:            []models.Embed{models.NewImagesEmbed([]string{"q1.jpg"})},
	}, item.QuotePost)
}

func TestNormalizePost_QuoteWithMedia(t *testing.T) {
	post := basePost()
	post.Embed = &models.EmbedView{
		Type:   models.TypeEmbedRecordWithMediaView,
		Record: &models.EmbedRecord{Record: quotedRecord()},
		Media:  &models.EmbedView{Type: models.TypeEmbedVideoView, Playlist: "v.m3u8"},
	}

	item := NormalizePost(post, "")
	require.NotNil(t, item.QuotePost)
	assert.Equal(t, "quoted text", item.QuotePost.Text)
	assert.Equal(t, models.EmbedVideo, item.Embed.Kind)
}

func TestNormalizePost_UnavailableQuote(t *testing.T) {
	for _, recordType := range []string{
		"app.bsky.embed.record#viewNotFound",
		"app.bsky.embed.record#viewBlocked",
		"app.bsky.feed.defs#generatorView",
	} {
		t.Run(recordType, func(t *testing.T) {
			post := basePost()
			post.Embed = &models.EmbedView{
				Type:   models.TypeEmbedRecordView,
				Record: &models.EmbedRecord{Type: recordType, URI: "at://did:plc:x/app.bsky.feed.post/3k"},
			}

			assert.Nil(t, NormalizePost(post, "").QuotePost)
		})
	}
}
