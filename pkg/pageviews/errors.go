package pageviews

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidGranularity = errors.New("invalid granularity")
	ErrMissingItems       = errors.New("response has no items")
)

// APIError is returned when a batch response is a problem document instead
// of a list of items, e.g. a 404 for an article with no data in range.
type APIError struct {
	URL    string
	Status int
	Type   string
	Title  string
	Detail string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("pageviews api %d", e.Status)
	if e.Title != "" {
		msg += " " + e.Title
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg + " (" + e.URL + ")"
}

func (e *APIError) Unwrap() error { return ErrMissingItems }
