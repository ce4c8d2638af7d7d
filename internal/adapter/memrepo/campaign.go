package memrepo

import (
	"context"

	"donatehub/internal/domain"
)

type campaignRepo struct {
	s *Store
}

func (r *campaignRepo) List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	r.s.mu.RLock()
	out := make([]domain.Campaign, 0, len(r.s.campaigns))
	for _, c := range r.s.campaigns {
		if filter.Matches(c) {
			out = append(out, copyCampaign(c))
		}
	}
	r.s.mu.RUnlock()

	domain.SortCampaigns(out, filter.Sort)
	return out, nil
}

func (r *campaignRepo) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.campaigns {
		if c.ID == id {
			out := copyCampaign(c)
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *campaignRepo) Create(ctx context.Context, campaign *domain.Campaign) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.campaigns = append(r.s.campaigns, copyCampaign(*campaign))
	return nil
}

func (r *campaignRepo) ListByOrganizer(ctx context.Context, userID string) ([]domain.Campaign, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.Campaign
	for _, c := range r.s.campaigns {
		if c.Organizer.ID == userID {
			out = append(out, copyCampaign(c))
		}
	}
	return out, nil
}

func (r *campaignRepo) IncrementTotals(ctx context.Context, id string, amount int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.campaigns {
		if r.s.campaigns[i].ID == id {
			r.s.campaigns[i].RaisedAmount += amount
			r.s.campaigns[i].DonorCount++
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *campaignRepo) AddUpdate(ctx context.Context, id string, update domain.CampaignUpdate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.campaigns {
		if r.s.campaigns[i].ID == id {
			r.s.campaigns[i].Updates = append(r.s.campaigns[i].Updates, update)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *campaignRepo) AddFAQ(ctx context.Context, id string, faq domain.CampaignFAQ) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.campaigns {
		if r.s.campaigns[i].ID == id {
			r.s.campaigns[i].FAQs = append(r.s.campaigns[i].FAQs, faq)
			return nil
		}
	}
	return domain.ErrNotFound
}
