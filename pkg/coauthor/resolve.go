package coauthor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperr "github.com/matzehuels/scholarnet/pkg/errors"
)

// ProfilePathPattern marks a link as an author profile.
const ProfilePathPattern = "/pid/"

// ErrNotFound is matched by every [*NotFoundError].
var ErrNotFound = errors.New("author profile not found")

// NotFoundError reports that no profile could be found for a query.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no profile found for %q", e.Query)
}

// Is reports whether target is [ErrNotFound].
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// SearchResult holds the links found on a directory search page, both in
// page order. AuthorEntries are hrefs inside dedicated author result items;
// Links are every href on the page.
type SearchResult struct {
	AuthorEntries []string `json:"author_entries"`
	Links         []string `json:"links"`
}

// Candidates returns profile links in resolution order without duplicates:
// author entries first, then any other profile link on the page.
func (r *SearchResult) Candidates() []string {
	if r == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, list := range [][]string{r.AuthorEntries, r.Links} {
		for _, href := range list {
			if !isProfileLink(href) || seen[href] {
				continue
			}
			seen[href] = true
			out = append(out, href)
		}
	}
	return out
}

// Searcher runs a directory search for an author name.
type Searcher interface {
	Search(ctx context.Context, name string) (*SearchResult, error)
}

// SearcherFunc adapts a function to [Searcher].
type SearcherFunc func(ctx context.Context, name string) (*SearchResult, error)

// Search calls f.
func (f SearcherFunc) Search(ctx context.Context, name string) (*SearchResult, error) {
	return f(ctx, name)
}

// Resolver turns a name or URL into a profile locator.
type Resolver struct {
	searcher Searcher
}

// NewResolver returns a resolver backed by s.
func NewResolver(s Searcher) *Resolver {
	return &Resolver{searcher: s}
}

// Resolve returns query, trimmed of surrounding space, when it is already
// an http(s) URL.
// Otherwise it searches and returns the first author entry linking to a
// profile, falling back to the first profile link anywhere on the page.
// There is no ranking: with several same-named authors the first listed wins.
//
// Search errors are returned unchanged.
func (r *Resolver) Resolve(ctx context.Context, query string) (string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", apperr.New(apperr.ErrCodeInvalidInput, "author name cannot be empty")
	}
	if IsLocator(q) {
		return q, nil
	}

	res, err := r.searcher.Search(ctx, q)
	if err != nil {
		return "", err
	}
	if res != nil {
		for _, href := range res.AuthorEntries {
			if isProfileLink(href) {
				return href, nil
			}
		}
		for _, href := range res.Links {
			if isProfileLink(href) {
				return href, nil
			}
		}
	}
	return "", &NotFoundError{Query: query}
}

// IsLocator reports whether s carries an http or https scheme, in any case.
func IsLocator(s string) bool {
	s = strings.TrimSpace(s)
	for _, scheme := range []string{"http://", "https://"} {
		if len(s) >= len(scheme) && strings.EqualFold(s[:len(scheme)], scheme) {
			return true
		}
	}
	return false
}

func isProfileLink(href string) bool {
	return strings.Contains(href, ProfilePathPattern)
}
