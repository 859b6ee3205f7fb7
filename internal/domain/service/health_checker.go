package service

import "context"

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Check(ctx context.Context) error
}
