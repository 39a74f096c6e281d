// Package builds stores finished graph builds so they can be served again
// by id.
//
// A [Build] keeps the fetched profile rather than a rendered artifact, so a
// stored build can be re-rendered in any format with the caller's options.
// Builds expire after their TTL.
//
// Two backends are provided:
//   - [MemoryStore]: process-local, the default for `scholarnet serve`
//   - [FileStore]: JSON files in a directory, shared across restarts
package builds

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/scholarnet/pkg/coauthor"
)

// DefaultTTL is how long a build stays retrievable.
const DefaultTTL = 24 * time.Hour

// ErrNotFound is returned when no live build has the requested id.
var ErrNotFound = errors.New("build not found")

// Build is one stored pipeline run.
type Build struct {
	ID        string            `json:"id"`
	Query     string            `json:"query"`
	Profile   *coauthor.Profile `json:"profile"`
	CreatedAt time.Time         `json:"created_at"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// IsExpired reports whether the build is past its expiry at now.
func (b *Build) IsExpired(now time.Time) bool {
	return now.After(b.ExpiresAt)
}

// Graph rebuilds the co-authorship graph from the stored profile.
func (b *Build) Graph() *coauthor.Graph {
	if b.Profile == nil {
		return coauthor.Build("", nil)
	}
	return coauthor.Build(b.Profile.PrimaryAuthor, b.Profile.Records)
}

// New creates a build with a fresh random id.
func New(query string, p *coauthor.Profile, ttl time.Duration) *Build {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	return &Build{
		ID:        uuid.NewString(),
		Query:     query,
		Profile:   p,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// ValidID reports whether id has the shape of a build id.
func ValidID(id string) bool {
	return uuid.Validate(id) == nil
}

// Store is the interface for build storage backends.
type Store interface {
	// Get returns the build with id, or ErrNotFound when it is missing or
	// expired.
	Get(ctx context.Context, id string) (*Build, error)

	// Put stores a build, replacing any build with the same id.
	Put(ctx context.Context, b *Build) error

	// Delete removes a build. Deleting a missing build is not an error.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired builds and reports how many were removed.
	Cleanup(ctx context.Context) (int, error)
}
