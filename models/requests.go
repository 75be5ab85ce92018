package models

// FeedQuery selects one page of a paginated feed.
type FeedQuery struct {
	Kind FeedKind
	// Query is the search text; used by FeedSearch only.
	Query string
	// Actor is the author DID or handle; used by FeedAuthor only.
	Actor string
	// Limit <= 0 selects the feed's default page size.
	Limit int
	// Cursor continues from a previous page; empty requests the first page.
	Cursor string
}

// PostDraft is the content of a new post.
type PostDraft struct {
	Text string
	// ImagePaths are local files (plain paths or file:// URLs) to attach.
	ImagePaths []string
}
