package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/koji-m/Bluedog/models"
)

// errorNames maps XRPC error names that do not follow the HTTP status.
var errorNames = map[string]error{
	"ExpiredToken":      ErrExpiredToken,
	"InvalidToken":      ErrUnauthorized,
	"AuthMissing":       ErrUnauthorized,
	"NotFound":          ErrNotFound,
	"RecordNotFound":    ErrNotFound,
	"ProfileNotFound":   ErrNotFound,
	"AccountTakedown":   ErrForbidden,
	"RateLimitExceeded": ErrRateLimited,
}

func mapXRPCError(nsid string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body models.XRPCErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		body.Message = strings.TrimSpace(string(resp.Body()))
	}

	xerr := &XRPCError{
		NSID:    nsid,
		Status:  resp.StatusCode(),
		Name:    body.Error,
		Message: body.Message,
	}

	if kind, ok := errorNames[body.Error]; ok {
		xerr.kind = kind
		return xerr
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusBadRequest:
		xerr.kind = ErrBadRequest
	case code == http.StatusUnauthorized:
		xerr.kind = ErrUnauthorized
	case code == http.StatusForbidden:
		xerr.kind = ErrForbidden
	case code == http.StatusNotFound:
		xerr.kind = ErrNotFound
	case code == http.StatusTooManyRequests:
		xerr.kind = ErrRateLimited
	default:
		xerr.kind = ErrUpstream
	}

	return xerr
}
