package driven

import "context"

// PageFetcher retrieves reference pages for institution lookups.
// Implementations carry their own timeout; a fetch that exceeds it
// returns an error rather than blocking the resolver.
type PageFetcher interface {
	// Fetch performs a GET request for the given URL and returns the
	// HTTP status code and response body.
	Fetch(ctx context.Context, url string) (status int, body string, err error)
}
