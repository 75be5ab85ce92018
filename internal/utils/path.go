package utils

import (
	"fmt"
	"net/url"
	"strings"
)

const fileURLPrefix = "file://"

// LocalPath converts a file:// URL into a filesystem path, percent-decoding
// it. Other strings are returned unchanged.
func LocalPath(raw string) (string, error) {
	if !strings.HasPrefix(raw, fileURLPrefix) {
		return raw, nil
	}

	p, err := url.PathUnescape(strings.TrimPrefix(raw, fileURLPrefix))
	if err != nil {
		return "", fmt.Errorf("decode file url %q: %w", raw, err)
	}
	return p, nil
}
