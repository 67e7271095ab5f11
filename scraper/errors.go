package scraper

import (
	"errors"
	"fmt"

	"embedbot/models"
)

// ErrNoAdapter is returned when no registered scraper claims a URL.
var ErrNoAdapter = errors.New("no scraper available for this url")

// ErrInvalidURL is returned when the input string failed URL parsing, before
// any adapter lookup.
var ErrInvalidURL = errors.New("could not parse url")

// NotEligibleError signals that a post was scraped successfully but policy
// says not to embed it. The post is carried for diagnostic logging.
type NotEligibleError struct {
	Post models.Post
}

func (e *NotEligibleError) Error() string {
	return "post is not eligible for embedding"
}

// FetchError is a network-layer failure: transport error or non-2xx status.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError means the fetched payload did not match the expected shape.
// It is always fatal for the request.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing response: %s: %v", e.Reason, e.Err)
	}
	return "parsing response: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }
