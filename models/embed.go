// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// EmbedKind tags the variant held by an [Embed].
type EmbedKind string

const (
	// EmbedNone means the post has no embed, or one this client does not render.
	EmbedNone EmbedKind = ""

	// EmbedImages is a list of image thumbnails.
	EmbedImages EmbedKind = "images"

	// EmbedExternal is an external link card.
	EmbedExternal EmbedKind = "external"

	// EmbedVideo is a video with a playback URI and thumbnail.
	EmbedVideo EmbedKind = "video"
)

// ImagesEmbed is the payload of an [EmbedImages] embed.
type ImagesEmbed struct {
	Thumbs []string
}

// ExternalEmbed is the payload of an [EmbedExternal] embed.
type ExternalEmbed struct {
	URI         string
	Title       string
	Description string
	Thumb       string
}

// VideoEmbed is the payload of an [EmbedVideo] embed.
type VideoEmbed struct {
	URI   string
	Thumb string
}

// Embed is a closed sum type over the media attached to a post. Exactly one
// payload pointer matching Kind is non-nil; all are nil for [EmbedNone].
// Consumers are expected to switch over Kind exhaustively.
type Embed struct {
	Kind     EmbedKind
	Images   *ImagesEmbed
	External *ExternalEmbed
	Video    *VideoEmbed
}

// NewImagesEmbed returns an images embed holding thumbs.
func NewImagesEmbed(thumbs []string) Embed {
	if thumbs == nil {
		thumbs = []string{}
	}
	return Embed{Kind: EmbedImages, Images: &ImagesEmbed{Thumbs: thumbs}}
}

// NewExternalEmbed returns an external link embed.
func NewExternalEmbed(uri, title, description, thumb string) Embed {
	return Embed{Kind: EmbedExternal, External: &ExternalEmbed{
		URI:         uri,
		Title:       title,
		Description: description,
		Thumb:       thumb,
	}}
}

// NewVideoEmbed returns a video embed.
func NewVideoEmbed(uri, thumb string) Embed {
	return Embed{Kind: EmbedVideo, Video: &VideoEmbed{URI: uri, Thumb: thumb}}
}

// IsNone reports whether the embed carries no payload.
func (e Embed) IsNone() bool {
	return e.Kind == EmbedNone
}

type imagesEmbedJSON struct {
	Type   EmbedKind `json:"type"`
	Thumbs []string  `json:"thumbs"`
}

type externalEmbedJSON struct {
	Type        EmbedKind `json:"type"`
	URI         string    `json:"uri"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumb       string    `json:"thumb"`
}

type videoEmbedJSON struct {
	Type  EmbedKind `json:"type"`
	URI   string    `json:"uri"`
	Thumb string    `json:"thumb"`
}

// MarshalJSON encodes the embed as a flat object tagged by "type", or null
// for [EmbedNone].
func (e Embed) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case EmbedImages:
		var thumbs []string
		if e.Images != nil {
			thumbs = e.Images.Thumbs
		}
		if thumbs == nil {
			thumbs = []string{}
		}
		return json.Marshal(imagesEmbedJSON{Type: e.Kind, Thumbs: thumbs})
	case EmbedExternal:
		var ext ExternalEmbed
		if e.External != nil {
			ext = *e.External
		}
		return json.Marshal(externalEmbedJSON{
			Type:        e.Kind,
			URI:         ext.URI,
			Title:       ext.Title,
			Description: ext.Description,
			Thumb:       ext.Thumb,
		})
	case EmbedVideo:
		var video VideoEmbed
		if e.Video != nil {
			video = *e.Video
		}
		return json.Marshal(videoEmbedJSON{Type: e.Kind, URI: video.URI, Thumb: video.Thumb})
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes the flat tagged form produced by MarshalJSON.
// Unknown tags decode as [EmbedNone].
func (e *Embed) UnmarshalJSON(b []byte) error {
	*e = Embed{}
	if string(b) == "null" {
		return nil
	}

	var tag struct {
		Type EmbedKind `json:"type"`
	}
	if err := json.Unmarshal(b, &tag); err != nil {
		return err
	}

	switch tag.Type {
	case EmbedImages:
		var v imagesEmbedJSON
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*e = NewImagesEmbed(v.Thumbs)
	case EmbedExternal:
		var v externalEmbedJSON
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*e = NewExternalEmbed(v.URI, v.Title, v.Description, v.Thumb)
	case EmbedVideo:
		var v videoEmbedJSON
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*e = NewVideoEmbed(v.URI, v.Thumb)
	}

	return nil
}
