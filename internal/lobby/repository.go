package lobby

import "context"

// Repo abstracts the waiting pools. Pools are keyed by stakes+tableSize.
type Repo interface {
	// Enqueue adds a player to a pool; the TTL guards against players
	// that vanish without cancelling.
	Enqueue(ctx context.Context, stakes string, tableSize int, playerID int64, ttlSeconds int) error
	// PopN atomically removes and returns n players once the pool holds
	// at least n.
	PopN(ctx context.Context, stakes string, tableSize int, n int) ([]int64, error)
	// Remove takes a player out of whatever pool they are queued in.
	Remove(ctx context.Context, playerID int64) error
	// Count reports the pool population.
	Count(ctx context.Context, stakes string, tableSize int) (int64, error)
}
