package adapter

import (
	"context"
	"net/url"
	"strconv"

	"github.com/koji-m/Bluedog/models"
)

const (
	nsidGetTimeline   = "app.bsky.feed.getTimeline"
	nsidSearchPosts   = "app.bsky.feed.searchPosts"
	nsidGetAuthorFeed = "app.bsky.feed.getAuthorFeed"
	nsidGetPosts      = "app.bsky.feed.getPosts"
	nsidGetPostThread = "app.bsky.feed.getPostThread"
	nsidGetProfile    = "app.bsky.actor.getProfile"

	timelineAlgorithm = "reverse-chronological"
)

func pageParams(req models.FeedRequest) url.Values {
	params := url.Values{}
	if req.Limit > 0 {
		params.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.Cursor != "" {
		params.Set("cursor", req.Cursor)
	}
	return params
}

func (x *xrpcAdapter) GetTimeline(ctx context.Context, req models.FeedRequest) (models.FeedResponse, error) {
	params := pageParams(req)
	params.Set("algorithm", timelineAlgorithm)

	var out models.FeedResponse
	if err := x.query(ctx, nsidGetTimeline, params, &out); err != nil {
		return models.FeedResponse{}, err
	}
	return out, nil
}

func (x *xrpcAdapter) SearchPosts(ctx context.Context, query string, req models.FeedRequest) (models.SearchPostsResponse, error) {
	params := pageParams(req)
	params.Set("q", query)

	var out models.SearchPostsResponse
	if err := x.query(ctx, nsidSearchPosts, params, &out); err != nil {
		return models.SearchPostsResponse{}, err
	}
	return out, nil
}

func (x *xrpcAdapter) GetAuthorFeed(ctx context.Context, actor string, req models.FeedRequest) (models.FeedResponse, error) {
	params := pageParams(req)
	params.Set("actor", actor)

	var out models.FeedResponse
	if err := x.query(ctx, nsidGetAuthorFeed, params, &out); err != nil {
		return models.FeedResponse{}, err
	}
	return out, nil
}

func (x *xrpcAdapter) GetPosts(ctx context.Context, uris []string) ([]models.PostView, error) {
	params := url.Values{"uris": uris}

	var out models.PostsResponse
	if err := x.query(ctx, nsidGetPosts, params, &out); err != nil {
		return nil, err
	}
	return out.Posts, nil
}

func (x *xrpcAdapter) GetPostThread(ctx context.Context, uri string, depth int) (models.ThreadViewPost, error) {
	params := url.Values{}
	params.Set("uri", uri)
	if depth > 0 {
		params.Set("depth", strconv.Itoa(depth))
	}

	var out models.ThreadResponse
	if err := x.query(ctx, nsidGetPostThread, params, &out); err != nil {
		return models.ThreadViewPost{}, err
	}
	return out.Thread, nil
}

func (x *xrpcAdapter) GetProfile(ctx context.Context, actor string) (models.ProfileViewDetailed, error) {
	params := url.Values{}
	params.Set("actor", actor)

	var out models.ProfileViewDetailed
	if err := x.query(ctx, nsidGetProfile, params, &out); err != nil {
		return models.ProfileViewDetailed{}, err
	}
	return out, nil
}
