package service

import "github.com/koji-m/Bluedog/models"

// NormalizePost flattens a post view into a display item. repostedBy is the
// label of the reposting actor, empty when the post is not a repost.
//
// Missing counters are zero. Quotes and reposts are summed. The embed is
// classified into images, external or video and anything else becomes
// [models.EmbedNone]. A quoted post keeps only its image embeds.
func NormalizePost(post models.PostView, repostedBy string) models.FeedItem {
	item := models.FeedItem{
		Text:                post.Record.Text,
		Avatar:              post.Author.Avatar,
		AuthorHandle:        post.Author.Handle,
		AuthorDisplayName:   post.Author.DisplayName,
		AuthorDID:           post.Author.DID,
		PostedAt:            post.IndexedAt,
		ReplyCount:          post.ReplyCount,
		QuoteAndRepostCount: post.QuoteCount + post.RepostCount,
		LikeCount:           post.LikeCount,
		RepostedBy:          repostedBy,
		QuotePost:           normalizeQuote(post.Embed),
		Embed:               normalizeEmbed(post.Embed),
		URI:                 post.URI,
		CID:                 post.CID,
	}

	if post.Viewer != nil {
		item.ViewerLikeURI = post.Viewer.Like
	}

	return item
}

// RepostLabel returns the display name of the reposting actor, falling back
// to its handle. Reasons other than reposts yield "".
func RepostLabel(reason *models.FeedReason) string {
	if reason == nil || reason.Type != models.TypeReasonRepost {
		return ""
	}
	if reason.By.DisplayName != "" {
		return reason.By.DisplayName
	}
	return reason.By.Handle
}

func normalizeEmbed(view *models.EmbedView) models.Embed {
	if view == nil {
		return models.Embed{}
	}

	switch view.Type {
	case models.TypeEmbedImagesView:
		return models.NewImagesEmbed(thumbs(view.Images))
	case models.TypeEmbedExternalView:
		if view.External == nil {
			return models.Embed{}
		}
		ext := view.External
		return models.NewExternalEmbed(ext.URI, ext.Title, ext.Description, ext.Thumb)
	case models.TypeEmbedVideoView:
		return models.NewVideoEmbed(view.Playlist, view.Thumbnail)
	case models.TypeEmbedRecordWithMediaView:
		// the quoted record is handled by normalizeQuote
		return normalizeEmbed(view.Media)
	default:
		return models.Embed{}
	}
}

func normalizeQuote(view *models.EmbedView) *models.QuotePost {
	if view == nil {
		return nil
	}

	var record *models.EmbedRecord
	switch view.Type {
	case models.TypeEmbedRecordView:
		record = view.Record
	case models.TypeEmbedRecordWithMediaView:
		if view.Record != nil {
			record = view.Record.Record
		}
	}

	// notFound, blocked and non-post records are not rendered as quotes
	if record == nil || record.Type != models.TypeEmbedRecordViewRecord {
		return nil
	}

	embeds := make([]models.Embed, 0, len(record.Embeds))
	for _, e := range record.Embeds {
		if e.Type == models.TypeEmbedImagesView {
			embeds = append(embeds, models.NewImagesEmbed(thumbs(e.Images)))
		}
	}

	return &models.QuotePost{
		Text:              record.Value.Text,
		Avatar:            record.Author.Avatar,
		AuthorHandle:      record.Author.Handle,
		AuthorDisplayName: record.Author.DisplayName,
		AuthorDID:         record.Author.DID,
		PostedAt:          record.IndexedAt,
		URI:               record.URI,
		Embeds:            embeds,
	}
}

func thumbs(images []models.ImageView) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		out = append(out, img.Thumb)
	}
	return out
}
