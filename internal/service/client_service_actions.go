package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/koji-m/Bluedog/internal/adapter"
	"github.com/koji-m/Bluedog/internal/utils"
	"github.com/koji-m/Bluedog/internal/validators"
	"github.com/koji-m/Bluedog/models"
)

// recordTimeLayout is the datetime format of createdAt fields.
const recordTimeLayout = "2006-01-02T15:04:05.000Z"

func (f *feedService) createdAt() string {
	return f.now().UTC().Format(recordTimeLayout)
}

func (f *feedService) Follow(ctx context.Context, did string) models.FollowResult {
	if err := f.validator.Validate(ctx, did, validators.FieldDID); err != nil {
		return models.FollowResult{Status: models.StatusFailed, Error: err.Error()}
	}

	client, err := f.sessions.Client(ctx)
	if err != nil {
		return models.FollowResult{Status: models.StatusFailed, Error: err.Error()}
	}

	created, err := client.CreateRecord(ctx, models.CollectionFollow, models.FollowRecord{
		Type:      models.CollectionFollow,
		Subject:   did,
		CreatedAt: f.createdAt(),
	})
	if err != nil {
		f.logger.Warn().Err(err).Str("subject", did).Msg("follow failed")
		return models.FollowResult{Status: models.StatusFailed, Error: mapAdapterError(err).Error()}
	}

	return models.FollowResult{Status: models.StatusSucceeded, URI: created.URI}
}

func (f *feedService) Unfollow(ctx context.Context, uri string) models.StatusResult {
	return f.deleteOwnRecord(ctx, uri, models.CollectionFollow)
}

func (f *feedService) LikePost(ctx context.Context, uri, cid string) models.LikeResult {
	subject := models.StrongRef{URI: uri, CID: cid}
	if err := f.validator.Validate(ctx, subject); err != nil {
		return models.LikeResult{Status: models.StatusFailed, Error: err.Error()}
	}

	client, err := f.sessions.Client(ctx)
	if err != nil {
		return models.LikeResult{Status: models.StatusFailed, Error: err.Error()}
	}

	created, err := client.CreateRecord(ctx, models.CollectionLike, models.LikeRecord{
		Type:      models.CollectionLike,
		Subject:   subject,
		CreatedAt: f.createdAt(),
	})
	if err != nil {
		f.logger.Warn().Err(err).Str("subject", uri).Msg("like failed")
		return models.LikeResult{Status: models.StatusFailed, Error: mapAdapterError(err).Error()}
	}

	return models.LikeResult{Status: models.StatusSucceeded, URI: created.URI}
}

func (f *feedService) UnlikePost(ctx context.Context, likeURI string) models.StatusResult {
	return f.deleteOwnRecord(ctx, likeURI, models.CollectionLike)
}

// deleteOwnRecord removes the record at uri from the signed-in repo after
// checking it belongs to collection.
func (f *feedService) deleteOwnRecord(ctx context.Context, uri, collection string) models.StatusResult {
	failed := func(err error) models.StatusResult {
		return models.StatusResult{Status: models.StatusFailed, Message: err.Error()}
	}

	if err := f.validator.Validate(ctx, uri, validators.FieldATURI); err != nil {
		return failed(err)
	}
	ref, err := models.ParseATURI(uri)
	if err != nil {
		return failed(err)
	}
	if ref.Collection != collection {
		return failed(fmt.Errorf("%w: %s is not %s", ErrWrongCollection, ref.Collection, collection))
	}

	client, err := f.sessions.Client(ctx)
	if err != nil {
		return failed(err)
	}

	if err = client.DeleteRecord(ctx, collection, ref.RKey); err != nil {
		f.logger.Warn().Err(err).Str("uri", uri).Msg("delete record failed")
		return failed(mapAdapterError(err))
	}

	return models.StatusResult{Status: models.StatusSucceeded}
}

func (f *feedService) Post(ctx context.Context, draft models.PostDraft) models.PostResult {
	if err := f.validator.Validate(ctx, draft); err != nil {
		return models.PostResult{Status: models.StatusFailed, Error: err.Error()}
	}

	client, err := f.sessions.Client(ctx)
	if err != nil {
		return models.PostResult{Status: models.StatusFailed, Error: err.Error()}
	}

	record := models.PostRecord{
		Type:      models.CollectionPost,
		Text:      draft.Text,
		CreatedAt: f.createdAt(),
	}

	if len(draft.ImagePaths) > 0 {
		images := make([]models.ImageRecord, 0, len(draft.ImagePaths))
		for _, path := range draft.ImagePaths {
			blob, err := f.uploadImage(ctx, client, path)
			if err != nil {
				return models.PostResult{Status: models.StatusFailed, Error: err.Error()}
			}
			images = append(images, models.ImageRecord{Alt: "", Image: blob})
		}
		record.Embed = &models.ImagesEmbedRecord{Type: models.TypeEmbedImages, Images: images}
	}

	created, err := client.CreateRecord(ctx, models.CollectionPost, record)
	if err != nil {
		f.logger.Warn().Err(err).Msg("create post failed")
		return models.PostResult{Status: models.StatusFailed, Error: mapAdapterError(err).Error()}
	}

	f.logger.Info().Str("uri", created.URI).Int("images", len(draft.ImagePaths)).Msg("post created")

	return models.PostResult{Status: models.StatusSucceeded}
}

func (f *feedService) uploadImage(ctx context.Context, client adapter.ServerAdapter, raw string) (json.RawMessage, error) {
	path, err := utils.LocalPath(raw)
	if err != nil {
		return nil, err
	}

	data, err := f.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w: %s is %s", ErrUnsupportedMedia, path, mimeType)
	}

	blob, err := client.UploadBlob(ctx, data, mimeType)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", path, mapAdapterError(err))
	}

	return blob, nil
}
