package profile

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// memRepo serves profiles from memory. Used when no record store is
// configured and as the test double.
type memRepo struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]Profile
}

func NewMemRepo() *memRepo {
	return &memRepo{profiles: make(map[uuid.UUID]Profile)}
}

// Seed loads profiles, replacing any existing entry with the same ID.
func (r *memRepo) Seed(profiles ...Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
}

func (r *memRepo) GetByID(_ context.Context, id uuid.UUID) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *memRepo) List(_ context.Context, limit, offset int) ([]*Profile, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	var items []*Profile
	for i, id := range ids {
		if i < offset {
			continue
		}
		if limit > 0 && len(items) >= limit {
			break
		}
		p := r.profiles[id]
		items = append(items, &p)
	}
	return items, len(r.profiles), nil
}
