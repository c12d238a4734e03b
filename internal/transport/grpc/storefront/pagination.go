package storefront

import (
	"errors"
	"strconv"
)

var errInvalidPageToken = errors.New("invalid pageToken")

// encodePageToken uses a plain offset string.
func encodePageToken(offset int) string {
	if offset <= 0 {
		return ""
	}
	return strconv.Itoa(offset)
}

func decodePageToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(token)
	if err != nil || n < 0 {
		return 0, errInvalidPageToken
	}
	return n, nil
}

func clampPageSize(size, def, max int) int {
	if size <= 0 {
		return def
	}
	if size > max {
		return max
	}
	return size
}

// nextPageToken is empty once a page comes back short.
func nextPageToken(offset, limit, got int) string {
	if got < limit {
		return ""
	}
	return encodePageToken(offset + got)
}
