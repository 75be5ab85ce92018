package models

import "encoding/json"

// CreateSessionRequest is the body of com.atproto.server.createSession.
type CreateSessionRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// SessionResponse is returned by createSession, refreshSession and
// getSession. getSession omits the JWTs.
type SessionResponse struct {
	AccessJWT  string `json:"accessJwt,omitempty"`
	RefreshJWT string `json:"refreshJwt,omitempty"`
	Handle     string `json:"handle"`
	DID        string `json:"did"`
}

// FeedRequest carries the paging parameters shared by feed queries.
type FeedRequest struct {
	Limit  int
	Cursor string
}

// FeedResponse is returned by getTimeline and getAuthorFeed.
type FeedResponse struct {
	Cursor string         `json:"cursor,omitempty"`
	Feed   []FeedViewPost `json:"feed"`
}

// SearchPostsResponse is returned by app.bsky.feed.searchPosts.
type SearchPostsResponse struct {
	Cursor    string     `json:"cursor,omitempty"`
	HitsTotal int64      `json:"hitsTotal,omitempty"`
	Posts     []PostView `json:"posts"`
}

// PostsResponse is returned by app.bsky.feed.getPosts.
type PostsResponse struct {
	Posts []PostView `json:"posts"`
}

// ThreadResponse is returned by app.bsky.feed.getPostThread.
type ThreadResponse struct {
	Thread ThreadViewPost `json:"thread"`
}

// GetRecordResponse is returned by com.atproto.repo.getRecord.
type GetRecordResponse struct {
	URI   string          `json:"uri"`
	CID   string          `json:"cid,omitempty"`
	Value json.RawMessage `json:"value"`
}

// CreateRecordRequest is the body of com.atproto.repo.createRecord.
type CreateRecordRequest struct {
	Repo       string `json:"repo"`
	Collection string `json:"collection"`
	Record     any    `json:"record"`
}

// CreateRecordResponse is returned by com.atproto.repo.createRecord.
type CreateRecordResponse struct {
	URI string `json:"uri"`
	CID string `json:"cid"`
}

// DeleteRecordRequest is the body of com.atproto.repo.deleteRecord.
type DeleteRecordRequest struct {
	Repo       string `json:"repo"`
	Collection string `json:"collection"`
	RKey       string `json:"rkey"`
}

// UploadBlobResponse is returned by com.atproto.repo.uploadBlob. Blob is
// kept opaque and embedded verbatim into image records.
type UploadBlobResponse struct {
	Blob json.RawMessage `json:"blob"`
}

// XRPCErrorBody is the error envelope of every failed XRPC call.
type XRPCErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
