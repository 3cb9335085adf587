// Package catalog provides a TTL-cached snapshot of the exercise catalog.
// The generation pipeline reads the catalog on every run; catalog writes are
// rare, so a short-lived in-process cache keeps generation off the database.
package catalog

import (
	"context"
	"sync"
	"time"

	"transfit/workout-app/internal/domain"
	"transfit/workout-app/internal/repository"
)

// Cache serves catalog snapshots, refreshing from the repository when the
// cached copy is older than the TTL. Safe for concurrent use.
type Cache struct {
	repo repository.ExerciseRepository
	ttl  time.Duration

	mu        sync.Mutex
	snapshot  []domain.Exercise
	fetchedAt time.Time
}

// NewCache creates a catalog cache over the given repository. A non-positive
// ttl disables caching and every Snapshot call hits the repository.
func NewCache(repo repository.ExerciseRepository, ttl time.Duration) *Cache {
	return &Cache{repo: repo, ttl: ttl}
}

// Snapshot returns the current catalog. Callers must treat the returned slice
// as read-only; it is shared between concurrent generation runs.
func (c *Cache) Snapshot(ctx context.Context) ([]domain.Exercise, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot != nil && c.ttl > 0 && time.Since(c.fetchedAt) < c.ttl {
		return c.snapshot, nil
	}

	exercises, err := c.repo.List(ctx)
	if err != nil {
		if c.snapshot != nil {
			// Serve the stale copy rather than failing generation.
			return c.snapshot, nil
		}
		return nil, err
	}

	c.snapshot = exercises
	c.fetchedAt = time.Now()
	return c.snapshot, nil
}

// Invalidate drops the cached snapshot. Called after catalog writes.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = nil
	c.fetchedAt = time.Time{}
}
