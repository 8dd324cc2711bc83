// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// parseUID parses a public identifier. Malformed identifiers cannot match any
// row, so they fail the same way a missing row does.
func parseUID(raw string, notFound *domainerrors.BaseError) (uuid.UUID, error) {
	uid, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, notFound
	}

	return uid, nil
}

// revalidate drops cached pages after a mutation. Failures only cost freshness.
func revalidate(ctx context.Context, cache service.PageCache, logger *slog.Logger, paths ...string) {
	if cache == nil || len(paths) == 0 {
		return
	}

	if err := cache.Revalidate(ctx, paths...); err != nil {
		logger.Warn("Failed to revalidate pages", slog.Any("paths", paths), slog.Any("error", err))
	}
}
