package news

import "errors"

// ErrResponseNotOK is returned when the feed endpoint answers with a non-success status.
var ErrResponseNotOK = errors.New("Network response was not ok") //nolint:staticcheck

// FeedUnavailableError is the only failure kind surfaced to the view.
// Network failures, bad statuses and malformed bodies all collapse into it.
type FeedUnavailableError struct {
	Err error
}

// Error returns the cause's message unchanged.
func (e *FeedUnavailableError) Error() string {
	if e == nil || e.Err == nil {
		return "feed unavailable"
	}
	return e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *FeedUnavailableError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Unavailable wraps err as a FeedUnavailableError. A nil err stays nil.
func Unavailable(err error) error {
	if err == nil {
		return nil
	}
	var fe *FeedUnavailableError
	if errors.As(err, &fe) {
		return err
	}
	return &FeedUnavailableError{Err: err}
}
