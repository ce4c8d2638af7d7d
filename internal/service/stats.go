package service

import (
	"context"
	"fmt"

	"donatehub/internal/domain"
)

// Stats derives platform-wide totals from the current store contents.
type Stats struct {
	campaigns domain.CampaignRepository
	donations domain.DonationRepository
}

// NewStats creates a statistics aggregator.
func NewStats(campaigns domain.CampaignRepository, donations domain.DonationRepository) *Stats {
	return &Stats{campaigns: campaigns, donations: donations}
}

// Compute recalculates the platform statistics from scratch. Nothing is
// cached between calls; a read concurrent with donations may observe a
// slightly stale snapshot.
func (s *Stats) Compute(ctx context.Context) (*domain.PlatformStats, error) {
	campaigns, err := s.campaigns.List(ctx, domain.CampaignFilter{})
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	donorCount, err := s.donations.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count donations: %w", err)
	}

	stats := &domain.PlatformStats{
		TotalDonors:    donorCount,
		TotalCampaigns: len(campaigns),
	}
	for _, c := range campaigns {
		stats.TotalRaised += c.RaisedAmount
		if c.Status == domain.CampaignStatusActive {
			stats.ActiveCampaigns++
		}
	}
	return stats, nil
}
