package tui

import (
	"fmt"
	"strings"

	"github.com/koji-m/Bluedog/models"
)

// visiblePosts is how many posts a list renders around the selection.
const visiblePosts = 5

// postList is a paged, selectable list of posts shared by the feed and
// profile pages.
type postList struct {
	items   []models.FeedItem
	idx     int
	cursor  string
	hasMore bool
	loaded  bool
}

// replace installs the first page of a feed.
func (l *postList) replace(page models.FeedPage) {
	l.items = append([]models.FeedItem(nil), page.Items...)
	l.idx = 0
	l.cursor = page.NextCursor
	l.hasMore = page.HasMore
	l.loaded = true
}

// append adds a following page, keeping the selection.
func (l *postList) append(page models.FeedPage) {
	l.items = append(l.items, page.Items...)
	l.cursor = page.NextCursor
	l.hasMore = page.HasMore
	l.loaded = true
}

func (l *postList) clear() {
	*l = postList{}
}

func (l *postList) current() (models.FeedItem, bool) {
	if len(l.items) == 0 || l.idx < 0 || l.idx >= len(l.items) {
		return models.FeedItem{}, false
	}
	return l.items[l.idx], true
}

// move shifts the selection by delta and reports whether it hit the end of
// the list.
func (l *postList) move(delta int) (atEnd bool) {
	next := l.idx + delta
	if next < 0 {
		next = 0
	}
	if next >= len(l.items) {
		next = len(l.items) - 1
		atEnd = true
	}
	if next < 0 {
		next = 0
	}
	l.idx = next
	return atEnd
}

// applyLike updates the post liked or unliked by msg, if listed.
func (l *postList) applyLike(msg likeDoneMsg) bool {
	for i := range l.items {
		if l.items[i].URI == msg.postURI {
			applyLikeToItem(&l.items[i], msg)
			return true
		}
	}
	return false
}

func applyLikeToItem(item *models.FeedItem, msg likeDoneMsg) {
	if msg.liked {
		if item.ViewerLikeURI == "" {
			item.LikeCount++
		}
		item.ViewerLikeURI = msg.likeURI
		return
	}
	if item.ViewerLikeURI != "" && item.LikeCount > 0 {
		item.LikeCount--
	}
	item.ViewerLikeURI = ""
}

func (l *postList) View() string {
	if len(l.items) == 0 {
		return "No posts"
	}

	start := l.idx - visiblePosts/2
	if start < 0 {
		start = 0
	}
	end := start + visiblePosts
	if end > len(l.items) {
		end = len(l.items)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderPost(l.items[i], i == l.idx))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("%d/%d", l.idx+1, len(l.items)))
	if l.hasMore {
		b.WriteString("  (m: load more)")
	}
	return b.String()
}

// renderPost renders one post block.
func renderPost(item models.FeedItem, selected bool) string {
	var b strings.Builder

	if item.RepostedBy != "" {
		b.WriteString(helpStyle.Render("↻ reposted by " + item.RepostedBy))
		b.WriteString("\n")
	}

	header := authorLine(item.AuthorDisplayName, item.AuthorHandle) + " · " + formatPostedAt(item.PostedAt)
	if selected {
		b.WriteString(selectedStyle.Render("> " + header))
	} else {
		b.WriteString("  " + header)
	}
	b.WriteString("\n")

	if item.Text != "" {
		for _, line := range strings.Split(item.Text, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if embed := renderEmbed(item.Embed); embed != "" {
		b.WriteString("  ")
		b.WriteString(embed)
		b.WriteString("\n")
	}

	if item.QuotePost != nil {
		b.WriteString("  ")
		b.WriteString(quoteStyle.Render(renderQuote(*item.QuotePost)))
		b.WriteString("\n")
	}

	liked := "♡"
	if item.ViewerLikeURI != "" {
		liked = "♥"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("  replies %d · reposts %d · %s %d",
		item.ReplyCount, item.QuoteAndRepostCount, liked, item.LikeCount)))
	b.WriteString("\n")

	return b.String()
}

func renderQuote(q models.QuotePost) string {
	var b strings.Builder
	b.WriteString(authorLine(q.AuthorDisplayName, q.AuthorHandle))
	b.WriteString(" · ")
	b.WriteString(formatPostedAt(q.PostedAt))
	if q.Text != "" {
		b.WriteString("\n")
		b.WriteString(q.Text)
	}
	for _, e := range q.Embeds {
		if s := renderEmbed(e); s != "" {
			b.WriteString("\n")
			b.WriteString(s)
		}
	}
	return b.String()
}
