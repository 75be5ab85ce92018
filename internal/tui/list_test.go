package tui

import (
	"testing"

	"github.com/koji-m/Bluedog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostList_ReplaceAndAppend(t *testing.T) {
	var l postList

	l.replace(feedPage("C1", post("at://a"), post("at://b")))
	l.move(1)
	require.Equal(t, 1, l.idx)

	l.append(feedPage("", post("at://c")))
	assert.Equal(t, []string{"at://a", "at://b", "at://c"}, listURIs(&l))
	assert.Equal(t, 1, l.idx)
	assert.False(t, l.hasMore)
	assert.Empty(t, l.cursor)

	l.replace(feedPage("C9", post("at://z")))
	assert.Equal(t, []string{"at://z"}, listURIs(&l))
	assert.Zero(t, l.idx)
	assert.Equal(t, "C9", l.cursor)
}

func TestPostList_Move(t *testing.T) {
	var l postList
	assert.True(t, l.move(1))
	assert.Zero(t, l.idx)

	l.replace(feedPage("", post("at://a"), post("at://b")))
	assert.False(t, l.move(-5))
	assert.Zero(t, l.idx)
	assert.False(t, l.move(1))
	assert.True(t, l.move(1))
	assert.Equal(t, 1, l.idx)
}

func TestPostList_ApplyLike(t *testing.T) {
	var l postList
	liked := post("at://b")
	liked.LikeCount = 5
	liked.ViewerLikeURI = "at://me/like/old"
	l.replace(feedPage("", post("at://a"), liked))

	assert.False(t, l.applyLike(likeDoneMsg{postURI: "at://missing", liked: true}))

	require.True(t, l.applyLike(likeDoneMsg{postURI: "at://a", likeURI: "at://me/like/1", liked: true}))
	assert.Equal(t, int64(1), l.items[0].LikeCount)

	// A repeated like keeps the count.
	l.applyLike(likeDoneMsg{postURI: "at://a", likeURI: "at://me/like/1", liked: true})
	assert.Equal(t, int64(1), l.items[0].LikeCount)

	l.applyLike(likeDoneMsg{postURI: "at://b"})
	assert.Equal(t, int64(4), l.items[1].LikeCount)
	assert.Empty(t, l.items[1].ViewerLikeURI)

	// Unliking a post without a like never goes negative.
	l.applyLike(likeDoneMsg{postURI: "at://b"})
	assert.Equal(t, int64(4), l.items[1].LikeCount)
}

func TestPostList_View(t *testing.T) {
	var l postList
	assert.Equal(t, "No posts", l.View())

	item := post("at://a")
	item.AuthorDisplayName = "Bob"
	item.RepostedBy = "Carol"
	item.QuotePost = &models.QuotePost{AuthorHandle: "dan.test", Text: "quoted"}
	item.Embed = models.NewImagesEmbed([]string{"t1"})
	l.replace(feedPage("C1", item))

	view := l.View()
	assert.Contains(t, view, "reposted by Carol")
	assert.Contains(t, view, "Bob (@bob.test)")
	assert.Contains(t, view, "text of at://a")
	assert.Contains(t, view, "[1 image]")
	assert.Contains(t, view, "quoted")
	assert.Contains(t, view, "1/1")
	assert.Contains(t, view, "load more")
}
