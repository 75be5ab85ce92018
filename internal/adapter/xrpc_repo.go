package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/koji-m/Bluedog/models"
)

const (
	nsidGetRecord    = "com.atproto.repo.getRecord"
	nsidCreateRecord = "com.atproto.repo.createRecord"
	nsidDeleteRecord = "com.atproto.repo.deleteRecord"
	nsidUploadBlob   = "com.atproto.repo.uploadBlob"
)

func (x *xrpcAdapter) GetRecord(ctx context.Context, repo, collection, rkey string) (models.GetRecordResponse, error) {
	params := url.Values{}
	params.Set("repo", repo)
	params.Set("collection", collection)
	params.Set("rkey", rkey)

	var out models.GetRecordResponse
	if err := x.query(ctx, nsidGetRecord, params, &out); err != nil {
		return models.GetRecordResponse{}, err
	}
	return out, nil
}

func (x *xrpcAdapter) CreateRecord(ctx context.Context, collection string, record any) (models.CreateRecordResponse, error) {
	s, ok := x.Session()
	if !ok {
		return models.CreateRecordResponse{}, ErrNoSession
	}

	body := models.CreateRecordRequest{Repo: s.DID, Collection: collection, Record: record}

	var out models.CreateRecordResponse
	if err := x.procedure(ctx, nsidCreateRecord, body, &out); err != nil {
		return models.CreateRecordResponse{}, err
	}
	return out, nil
}

func (x *xrpcAdapter) DeleteRecord(ctx context.Context, collection, rkey string) error {
	s, ok := x.Session()
	if !ok {
		return ErrNoSession
	}

	body := models.DeleteRecordRequest{Repo: s.DID, Collection: collection, RKey: rkey}
	return x.procedure(ctx, nsidDeleteRecord, body, nil)
}

func (x *xrpcAdapter) UploadBlob(ctx context.Context, data []byte, mimeType string) (json.RawMessage, error) {
	var out models.UploadBlobResponse
	err := x.authed(ctx, http.MethodPost, nsidUploadBlob, func(r *resty.Request) {
		r.SetHeader("Content-Type", mimeType).SetBody(data)
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Blob, nil
}
