package memrepo

import (
	"context"

	"donatehub/internal/domain"
)

type categoryRepo struct {
	s *Store
}

func (r *categoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]domain.Category(nil), r.s.categories...), nil
}

func (r *categoryRepo) Seed(ctx context.Context, categories []domain.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if len(r.s.categories) > 0 {
		return nil
	}
	r.s.categories = append([]domain.Category(nil), categories...)
	return nil
}
