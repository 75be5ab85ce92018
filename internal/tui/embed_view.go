package tui

import (
	"fmt"

	"github.com/koji-m/Bluedog/models"
)

// renderEmbed renders the media summary of a post. Every embed kind must be
// handled here.
func renderEmbed(e models.Embed) string {
	switch e.Kind {
	case models.EmbedNone:
		return ""

	case models.EmbedImages:
		n := 0
		if e.Images != nil {
			n = len(e.Images.Thumbs)
		}
		if n == 1 {
			return "[1 image]"
		}
		return fmt.Sprintf("[%d images]", n)

	case models.EmbedExternal:
		if e.External == nil {
			return "[link]"
		}
		title := e.External.Title
		if title == "" {
			title = e.External.URI
		}
		return fmt.Sprintf("[link] %s <%s>", fitText(title, 60), e.External.URI)

	case models.EmbedVideo:
		if e.Video == nil || e.Video.URI == "" {
			return "[video]"
		}
		return "[video] " + e.Video.URI
	}

	return ""
}
