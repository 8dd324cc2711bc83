// Package delivery holds the long-running entry points started by the application.
package delivery

import "context"

// Delivery is a long-running component started once the dependency graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
