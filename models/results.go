package models

// Status tags carried by structured operation results.
const (
	StatusOK        = "ok"
	StatusError     = "error"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// StatusResult is the structured outcome of operations that report failure
// inline instead of returning an error (initialize, sign-in, unfollow,
// unlike).
type StatusResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// PostResult is the outcome of creating a post.
type PostResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// FollowResult is the outcome of following an actor. URI is the created
// follow record on success.
type FollowResult struct {
	Status string `json:"status"`
	URI    string `json:"uri,omitempty"`
	Error  string `json:"error,omitempty"`
}

// LikeResult is the outcome of liking a post. URI is the created like
// record on success.
type LikeResult struct {
	Status string `json:"status"`
	URI    string `json:"uri,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Succeeded reports whether the result carries a success tag.
func (r StatusResult) Succeeded() bool {
	return r.Status == StatusOK || r.Status == StatusSucceeded
}
