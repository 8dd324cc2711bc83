package service

import "context"

// PageCache caches rendered read models keyed by the page path that displays them.
type PageCache interface {
	// Get loads the cached value for path into dest. It reports false on a miss.
	Get(ctx context.Context, path string, dest any) (bool, error)

	// Set stores value for path.
	Set(ctx context.Context, path string, value any) error

	// Revalidate drops the cached values for the given paths.
	Revalidate(ctx context.Context, paths ...string) error
}
