package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidFeedKind = errors.New("invalid feed kind")
	ErrInvalidLimit    = errors.New("invalid limit")
	ErrEmptyQuery      = errors.New("search query is required")
	ErrInvalidActor    = errors.New("invalid actor")
	ErrInvalidDID      = errors.New("invalid DID")
	ErrInvalidHandle   = errors.New("invalid handle")
	ErrInvalidATURI    = errors.New("invalid AT-URI")
	ErrInvalidRKey     = errors.New("invalid record key")
	ErrInvalidCID      = errors.New("invalid CID")
	ErrEmptyPost       = errors.New("post text or image is required")
	ErrPostTooLong     = errors.New("post text is too long")
	ErrTooManyImages   = errors.New("too many images")
)
