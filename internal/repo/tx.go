package repo

import "context"

// Transactor wraps one import run in an atomic unit of work. The
// context passed to fn must flow into every repository call made inside
// it; if fn returns an error nothing it wrote survives.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
