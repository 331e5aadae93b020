package feed

import "context"

// FeedFetcher retrieves and parses the feed at url.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (*Metadata, []Item, error)
}

var _ FeedFetcher = (*Fetcher)(nil)
