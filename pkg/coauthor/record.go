package coauthor

import "context"

// Record is the ordered author list of one publication. Names are display
// strings and are compared exactly.
type Record []string

// Profile is what a [Source] returns for a locator: the page's primary
// author and its publication records in page order.
type Profile struct {
	Locator       string   `json:"locator"`
	PrimaryAuthor string   `json:"primary_author"`
	Records       []Record `json:"records"`
}

// Source fetches the publication records behind a profile locator.
type Source interface {
	FetchProfile(ctx context.Context, locator string, refresh bool) (*Profile, error)
}

// SourceFunc adapts a function to [Source].
type SourceFunc func(ctx context.Context, locator string, refresh bool) (*Profile, error)

// FetchProfile calls f.
func (f SourceFunc) FetchProfile(ctx context.Context, locator string, refresh bool) (*Profile, error) {
	return f(ctx, locator, refresh)
}
