// Package delivery defines the entry points that expose the application to clients.
package delivery

import "context"

// Delivery is a long-running server started by the application runner.
type Delivery interface {
	Serve(ctx context.Context) error
}
