package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dog-registry/internal/domain/dogs"
)

var (
	ErrDuplicateID = errors.New("dog already exists")
)

// dogRepo guarda todo en un map; se pierde al reiniciar (solo dev/tests).
type dogRepo struct {
	mu   sync.RWMutex
	byID map[string]dogs.Dog
}

func NewDogRepo() dogs.Repository {
	return &dogRepo{
		byID: make(map[string]dogs.Dog),
	}
}

func (r *dogRepo) EnsureSchema(ctx context.Context) error {
	return nil
}

// SeedIfEmpty cuenta e inserta bajo el mismo lock.
func (r *dogRepo) SeedIfEmpty(ctx context.Context, seeds []dogs.Dog) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.byID) > 0 {
		return false, nil
	}
	for _, d := range seeds {
		if err := r.insertLocked(d); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (r *dogRepo) Insert(ctx context.Context, d dogs.Dog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insertLocked(d)
}

func (r *dogRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]dogs.Dog, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, d)
	}
	return out, nil
}

func (r *dogRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *dogRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID), nil
}

func (r *dogRepo) insertLocked(d dogs.Dog) error {
	if strings.TrimSpace(d.ID) == "" {
		return errors.New("dog id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return ErrDuplicateID
	}
	r.byID[d.ID] = d
	return nil
}
