package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"donatehub/internal/adapter/memrepo"
	"donatehub/internal/domain"
)

func TestComputeAggregatesAcrossCampaigns(t *testing.T) {
	store := memrepo.New()
	campaigns := store.Campaigns()
	donations := store.Donations()
	ctx := context.Background()

	seed := []domain.Campaign{
		{ID: "a", RaisedAmount: 1000, Status: domain.CampaignStatusActive},
		{ID: "b", RaisedAmount: 2500, Status: domain.CampaignStatusActive},
		{ID: "c", RaisedAmount: 400, Status: domain.CampaignStatusClosed},
	}
	for i := range seed {
		if err := campaigns.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed campaign: %v", err)
		}
	}
	for i := 0; i < 5; i++ {
		if err := donations.Create(ctx, &domain.Donation{ID: string(rune('0' + i)), CampaignID: "a", Amount: 1}); err != nil {
			t.Fatalf("seed donation: %v", err)
		}
	}

	stats, err := NewStats(campaigns, donations).Compute(ctx)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if stats.TotalRaised != 3900 {
		t.Errorf("total raised = %d, want 3900", stats.TotalRaised)
	}
	if stats.TotalDonors != 5 {
		t.Errorf("total donors = %d, want 5", stats.TotalDonors)
	}
	if stats.TotalCampaigns != 3 {
		t.Errorf("total campaigns = %d, want 3", stats.TotalCampaigns)
	}
	if stats.ActiveCampaigns != 2 {
		t.Errorf("active campaigns = %d, want 2", stats.ActiveCampaigns)
	}
}

func TestComputeEmptyStore(t *testing.T) {
	store := memrepo.New()
	stats, err := NewStats(store.Campaigns(), store.Donations()).Compute(context.Background())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if *stats != (domain.PlatformStats{}) {
		t.Fatalf("stats = %+v, want all zeroes", stats)
	}
}

// Recording a donation and recomputing must reflect both the new donor and
// the raised amount.
func TestComputeReflectsLedgerWrites(t *testing.T) {
	store := memrepo.New()
	campaigns := store.Campaigns()
	donations := store.Donations()
	ctx := context.Background()

	if err := campaigns.Create(ctx, &domain.Campaign{ID: "c", Status: domain.CampaignStatusActive}); err != nil {
		t.Fatalf("seed campaign: %v", err)
	}

	ledger := NewLedger(donations, campaigns, zerolog.Nop())
	stats := NewStats(campaigns, donations)

	before, err := stats.Compute(ctx)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if _, err := ledger.Record(ctx, RecordRequest{CampaignID: "c", Amount: 1500}); err != nil {
		t.Fatalf("record: %v", err)
	}
	after, err := stats.Compute(ctx)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	if after.TotalRaised != before.TotalRaised+1500 {
		t.Errorf("total raised = %d, want %d", after.TotalRaised, before.TotalRaised+1500)
	}
	if after.TotalDonors != before.TotalDonors+1 {
		t.Errorf("total donors = %d, want %d", after.TotalDonors, before.TotalDonors+1)
	}
}
