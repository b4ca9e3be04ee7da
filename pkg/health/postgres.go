package health

import "context"

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewPostgresChecker reports postgres as down when the pool cannot be pinged.
func NewPostgresChecker(pool Pinger) CheckerFunc {
	return NewCheckerFunc("postgres", pool.Ping)
}
