package careers

import "context"

// MemoryRepo serves a fixed, in-memory career catalog.
// The slice is never mutated after construction, so reads need no locking.
type MemoryRepo struct {
	careers []Career
}

// NewMemoryRepo constructs a MemoryRepo over the given catalog.
func NewMemoryRepo(catalog []Career) *MemoryRepo {
	owned := make([]Career, len(catalog))
	copy(owned, catalog)
	return &MemoryRepo{careers: owned}
}

// NewEmbeddedRepo constructs a MemoryRepo from the embedded catalog CSV.
func NewEmbeddedRepo() (*MemoryRepo, error) {
	catalog, err := LoadEmbeddedCatalog()
	if err != nil {
		return nil, err
	}
	return NewMemoryRepo(catalog), nil
}

// List returns the catalog in load order.
func (r *MemoryRepo) List(ctx context.Context) ([]Career, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Career, len(r.careers))
	copy(out, r.careers)
	return out, nil
}
