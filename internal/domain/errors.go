package domain

import "errors"

// Domain errors.
var (
	// ErrFeedUnavailable is returned when the feed cannot be reached or answers with a non-200 status.
	ErrFeedUnavailable = errors.New("feed unavailable")

	// ErrFeedMalformed is returned when the feed body is not a JSON array.
	ErrFeedMalformed = errors.New("feed is not a JSON array")

	// ErrItemNotFound is returned when an item index is outside the snapshot.
	ErrItemNotFound = errors.New("item not found")

	// ErrSnapshotExpired is returned when a newer fetch has replaced the referenced snapshot.
	ErrSnapshotExpired = errors.New("snapshot expired")
)

// FeedError wraps an error with feed context.
type FeedError struct {
	Op  string
	URL string
	Err error
}

func (e *FeedError) Error() string {
	if e.URL != "" {
		return e.Op + " [" + e.URL + "]: " + e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *FeedError) Unwrap() error {
	return e.Err
}

// NewFeedError creates a new FeedError.
func NewFeedError(op, url string, err error) *FeedError {
	return &FeedError{
		Op:  op,
		URL: url,
		Err: err,
	}
}
