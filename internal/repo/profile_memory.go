package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/travel-approval/internal/domain"
)

// memoryProfileRepo keeps profiles in a slice, newest first, exactly like the
// list the form shows. Used when no external store is configured and in tests.
type memoryProfileRepo struct {
	mu       sync.RWMutex
	profiles []domain.TravelProfile
}

// NewMemoryProfileRepo constructs an empty in-memory ProfileRepo. It is safe
// for concurrent use; contents are lost when the process exits.
func NewMemoryProfileRepo() ProfileRepo {
	return &memoryProfileRepo{}
}

func (r *memoryProfileRepo) List(_ context.Context) ([]domain.TravelProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.TravelProfile, len(r.profiles))
	copy(out, r.profiles)
	return out, nil
}

func (r *memoryProfileRepo) GetByID(_ context.Context, id uuid.UUID) (domain.TravelProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.TravelProfile{}, fmt.Errorf("repo.memoryProfileRepo.GetByID: %w", domain.ErrNotFound)
}

// Save drops any profile for the same university and puts p at the front.
func (r *memoryProfileRepo) Save(_ context.Context, p domain.TravelProfile) (domain.TravelProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]domain.TravelProfile, 0, len(r.profiles)+1)
	kept = append(kept, p)
	for _, existing := range r.profiles {
		if existing.University != p.University {
			kept = append(kept, existing)
		}
	}
	r.profiles = kept
	return p, nil
}

func (r *memoryProfileRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.profiles {
		if p.ID == id {
			r.profiles = append(r.profiles[:i:i], r.profiles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("repo.memoryProfileRepo.Delete: %w", domain.ErrNotFound)
}
