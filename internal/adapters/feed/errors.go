package feed

import "errors"

// Sentinel error kinds for feed fetching.
var (
	ErrFetchFeed = errors.New("fetch feed failed")
	ErrParseFeed = errors.New("parse feed failed")
)
