package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/koji-m/Bluedog/internal/service"
	"github.com/koji-m/Bluedog/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderEmbed(t *testing.T) {
	tests := []struct {
		name  string
		embed models.Embed
		want  string
	}{
		{name: "none", embed: models.Embed{}, want: ""},
		{name: "one image", embed: models.NewImagesEmbed([]string{"a"}), want: "[1 image]"},
		{name: "images", embed: models.NewImagesEmbed([]string{"a", "b"}), want: "[2 images]"},
		{
			name:  "external",
			embed: models.NewExternalEmbed("https://example.com", "Example", "", ""),
			want:  "[link] Example <https://example.com>",
		},
		{
			name:  "external without title",
			embed: models.NewExternalEmbed("https://example.com", "", "", ""),
			want:  "[link] https://example.com <https://example.com>",
		},
		{name: "video", embed: models.NewVideoEmbed("https://v/p.m3u8", ""), want: "[video] https://v/p.m3u8"},
		{name: "video without playlist", embed: models.Embed{Kind: models.EmbedVideo}, want: "[video]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderEmbed(tt.embed))
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "hello", fitText("hello", 10))
	assert.Equal(t, "hello", fitText("hello", 0))
	assert.Equal(t, "he...", fitText("hello world", 5))
	assert.Equal(t, "こんに", fitText("こんにちは", 3))
	assert.Equal(t, "こん...", fitText("こんにちは世界", 5))
}

func TestFormatPostedAt(t *testing.T) {
	assert.Equal(t, "yesterday", formatPostedAt("yesterday"))
	assert.Len(t, formatPostedAt("2026-01-02T03:04:05.000Z"), len("2006-01-02 15:04"))
}

func TestAuthorLine(t *testing.T) {
	assert.Equal(t, "@bob.test", authorLine("", "bob.test"))
	assert.Equal(t, "Bob (@bob.test)", authorLine("Bob", "bob.test"))
}

func TestSplitPaths(t *testing.T) {
	assert.Nil(t, splitPaths(""))
	assert.Equal(t, []string{"/a.png", "file:///b.png"}, splitPaths(" /a.png , ,file:///b.png "))
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))
	assert.Equal(t, "Network is down or the service is unavailable",
		humanizeError(errors.New("dial tcp 127.0.0.1:1: connect: connection refused")))
	assert.Equal(t, "Session expired, sign in again",
		humanizeError(fmt.Errorf("%w: %w", service.ErrSessionExpired, assert.AnError)))
	assert.Equal(t, assert.AnError.Error(), humanizeError(assert.AnError))
}
