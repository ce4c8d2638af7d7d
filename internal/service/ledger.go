package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"donatehub/internal/domain"
)

// Ledger records donations and keeps campaign totals consistent with them.
type Ledger struct {
	donations domain.DonationRepository
	campaigns domain.CampaignRepository
	logger    zerolog.Logger
	now       func() time.Time
}

// NewLedger creates a donation ledger over the given repositories.
func NewLedger(donations domain.DonationRepository, campaigns domain.CampaignRepository, logger zerolog.Logger) *Ledger {
	return &Ledger{
		donations: donations,
		campaigns: campaigns,
		logger:    logger,
		now:       time.Now,
	}
}

// RecordRequest carries the inputs for one donation. CampaignTitle, DonorName
// and DonorEmail are stored as snapshots of the donor and campaign at
// donation time.
type RecordRequest struct {
	CampaignID    string
	CampaignTitle string
	UserID        string
	DonorName     string
	DonorEmail    string
	Amount        int64
	Country       string
}

// Record validates the request, persists the donation and increments the
// target campaign's raised amount and donor count. Donations with a
// non-positive amount are rejected before anything is written.
//
// When the campaign id does not resolve, the donation record is still kept
// and the skipped campaign update is logged instead of failing the whole
// operation.
func (l *Ledger) Record(ctx context.Context, req RecordRequest) (*domain.Donation, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidAmount)
	}

	donation := &domain.Donation{
		ID:            uuid.NewString(),
		CampaignID:    req.CampaignID,
		CampaignTitle: req.CampaignTitle,
		UserID:        req.UserID,
		DonorName:     req.DonorName,
		DonorEmail:    req.DonorEmail,
		Amount:        req.Amount,
		Country:       req.Country,
		Date:          l.now(),
		Status:        domain.DonationStatusCompleted,
	}
	if err := l.donations.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("create donation: %w", err)
	}

	err := l.campaigns.IncrementTotals(ctx, req.CampaignID, req.Amount)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		l.logger.Warn().
			Str("donation_id", donation.ID).
			Str("campaign_id", req.CampaignID).
			Int64("amount", req.Amount).
			Msg("donation recorded against unknown campaign, totals not updated")
	case err != nil:
		return nil, fmt.Errorf("update campaign totals: %w", err)
	}

	return donation, nil
}

// ListByUser returns the user's donations in storage order.
func (l *Ledger) ListByUser(ctx context.Context, userID string) ([]domain.Donation, error) {
	return l.donations.ListByUser(ctx, userID)
}

// ListRecent returns the newest donations for the public feed.
func (l *Ledger) ListRecent(ctx context.Context, limit int) ([]domain.Donation, error) {
	return l.donations.ListRecent(ctx, limit)
}
