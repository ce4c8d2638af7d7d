package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"donatehub/internal/domain"
)

// DonationRepositoryPG implements domain.DonationRepository using PostgreSQL.
type DonationRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(pool *pgxpool.Pool) *DonationRepositoryPG {
	return &DonationRepositoryPG{pool: pool}
}

// Create inserts a new donation record.
func (r *DonationRepositoryPG) Create(ctx context.Context, donation *domain.Donation) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO donations (id, campaign_id, campaign_title, user_id, donor_name,
  donor_email, amount, country, date, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`, donation.ID, donation.CampaignID, donation.CampaignTitle, donation.UserID,
		donation.DonorName, donation.DonorEmail, donation.Amount,
		donation.Country, donation.Date, string(donation.Status))
	return err
}

// ListByUser returns the user's donations in storage order.
func (r *DonationRepositoryPG) ListByUser(ctx context.Context, userID string) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, campaign_id, campaign_title, user_id, donor_name, donor_email,
  amount, country, date, status
FROM donations
WHERE user_id = $1
ORDER BY seq ASC;
`, userID)
	if err != nil {
		return nil, err
	}
	return collectDonations(rows)
}

// ListRecent returns the newest donations limited by the input value.
func (r *DonationRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, campaign_id, campaign_title, user_id, donor_name, donor_email,
  amount, country, date, status
FROM donations
ORDER BY seq DESC
LIMIT $1;
`, limit)
	if err != nil {
		return nil, err
	}
	return collectDonations(rows)
}

// Count returns the total number of recorded donations.
func (r *DonationRepositoryPG) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM donations;`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func collectDonations(rows pgx.Rows) ([]domain.Donation, error) {
	defer rows.Close()
	var items []domain.Donation
	for rows.Next() {
		var d domain.Donation
		var status string
		if err := rows.Scan(&d.ID, &d.CampaignID, &d.CampaignTitle, &d.UserID,
			&d.DonorName, &d.DonorEmail, &d.Amount, &d.Country, &d.Date, &status); err != nil {
			return nil, err
		}
		d.Status = domain.DonationStatus(status)
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var _ domain.DonationRepository = (*DonationRepositoryPG)(nil)
