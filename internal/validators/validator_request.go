package validators

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/koji-m/Bluedog/models"
)

const (
	FieldDID    = "did"
	FieldHandle = "handle"
	FieldActor  = "actor"
	FieldATURI  = "uri"
	FieldRKey   = "rkey"
	FieldCID    = "cid"
	FieldQuery  = "query"
	FieldText   = "text"
	FieldImages = "images"
	FieldLimit  = "limit"
)

const (
	MinLimit = 1
	MaxLimit = 100

	// MaxPostLength is the post text limit in characters.
	MaxPostLength = 300

	// MaxImages is the number of images one post may carry.
	MaxImages = 4
)

var (
	didPattern    = regexp.MustCompile(`^did:[a-z]+:[a-zA-Z0-9._:%-]*[a-zA-Z0-9._-]$`)
	handlePattern = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)
	rkeyPattern   = regexp.MustCompile(`^[a-zA-Z0-9._:~-]{1,512}$`)
)

// ClampLimit maps limit <= 0 to def and bounds the result to
// [MinLimit, MaxLimit].
func ClampLimit(limit, def int) int {
	if limit <= 0 {
		limit = def
	}
	return max(MinLimit, min(limit, MaxLimit))
}

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate checks obj. Strings are validated as the identifier named by the
// first field; structs may be scoped to a subset of their fields.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		if len(fields) == 0 {
			return fmt.Errorf("%w: string needs a field name", ErrUnknownField)
		}
		return validateIdentifier(value, fields[0])

	case models.FeedQuery:
		return v.validateFeedQuery(ctx, value, fields...)
	case *models.FeedQuery:
		return v.validateFeedQuery(ctx, *value, fields...)

	case models.PostDraft:
		return v.validatePostDraft(ctx, value, fields...)
	case *models.PostDraft:
		return v.validatePostDraft(ctx, *value, fields...)

	case models.StrongRef:
		return v.validateStrongRef(ctx, value, fields...)
	case *models.StrongRef:
		return v.validateStrongRef(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateFeedQuery(_ context.Context, q models.FeedQuery, fields ...string) error {
	if !slices.Contains(models.FeedKinds, q.Kind) {
		return fmt.Errorf("%w: %q", ErrInvalidFeedKind, q.Kind)
	}

	if len(fields) == 0 {
		fields = []string{FieldLimit, FieldQuery, FieldActor}
	}

	for _, field := range fields {
		switch field {
		case FieldLimit:
			if q.Limit < MinLimit || q.Limit > MaxLimit {
				return fmt.Errorf("%w: %d", ErrInvalidLimit, q.Limit)
			}
		case FieldQuery:
			if q.Kind == models.FeedSearch && strings.TrimSpace(q.Query) == "" {
				return ErrEmptyQuery
			}
		case FieldActor:
			if q.Kind == models.FeedAuthor {
				if err := validateIdentifier(q.Actor, FieldActor); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RequestValidator) validatePostDraft(_ context.Context, d models.PostDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldImages}
	}

	for _, field := range fields {
		switch field {
		case FieldText:
			if strings.TrimSpace(d.Text) == "" && len(d.ImagePaths) == 0 {
				return ErrEmptyPost
			}
			if n := utf8.RuneCountInString(d.Text); n > MaxPostLength {
				return fmt.Errorf("%w: %d > %d characters", ErrPostTooLong, n, MaxPostLength)
			}
		case FieldImages:
			if len(d.ImagePaths) > MaxImages {
				return fmt.Errorf("%w: %d > %d", ErrTooManyImages, len(d.ImagePaths), MaxImages)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RequestValidator) validateStrongRef(_ context.Context, ref models.StrongRef, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldATURI, FieldCID}
	}

	for _, field := range fields {
		switch field {
		case FieldATURI, FieldCID:
			value := ref.URI
			if field == FieldCID {
				value = ref.CID
			}
			if err := validateIdentifier(value, field); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validateIdentifier(value, field string) error {
	switch field {
	case FieldDID:
		if !didPattern.MatchString(value) {
			return fmt.Errorf("%w: %q", ErrInvalidDID, value)
		}
	case FieldHandle:
		if !handlePattern.MatchString(value) {
			return fmt.Errorf("%w: %q", ErrInvalidHandle, value)
		}
	case FieldActor:
		if !didPattern.MatchString(value) && !handlePattern.MatchString(value) {
			return fmt.Errorf("%w: %q", ErrInvalidActor, value)
		}
	case FieldRKey:
		if !rkeyPattern.MatchString(value) || value == "." || value == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidRKey, value)
		}
	case FieldCID:
		if strings.TrimSpace(value) == "" {
			return ErrInvalidCID
		}
	case FieldATURI:
		u, err := models.ParseATURI(value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidATURI, value)
		}
		if !didPattern.MatchString(u.Authority) && !handlePattern.MatchString(u.Authority) {
			return fmt.Errorf("%w: authority %q", ErrInvalidATURI, u.Authority)
		}
		if err = validateIdentifier(u.RKey, FieldRKey); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidATURI, err)
		}
	case FieldQuery:
		if strings.TrimSpace(value) == "" {
			return ErrEmptyQuery
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	return nil
}
