package memrepo

import (
	"context"

	"donatehub/internal/domain"
)

type donationRepo struct {
	s *Store
}

func (r *donationRepo) Create(ctx context.Context, donation *domain.Donation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.donations = append(r.s.donations, *donation)
	return nil
}

func (r *donationRepo) ListByUser(ctx context.Context, userID string) ([]domain.Donation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.Donation
	for _, d := range r.s.donations {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *donationRepo) ListRecent(ctx context.Context, limit int) ([]domain.Donation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if limit <= 0 || limit > len(r.s.donations) {
		limit = len(r.s.donations)
	}
	out := make([]domain.Donation, 0, limit)
	for i := len(r.s.donations) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.s.donations[i])
	}
	return out, nil
}

func (r *donationRepo) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.donations), nil
}
