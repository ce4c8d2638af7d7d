package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"donatehub/internal/domain"
)

// CampaignRepositoryPG implements domain.CampaignRepository backed by
// PostgreSQL.
type CampaignRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository creates a new CampaignRepositoryPG.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepositoryPG {
	return &CampaignRepositoryPG{pool: pool}
}

const campaignColumns = `
id, title, description, long_description, category, target_amount,
raised_amount, donor_count, image, organizer_id, organizer_name,
organizer_logo, organizer_verified, location, end_date, status, featured,
created_at`

func (r *CampaignRepositoryPG) List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE 1=1`
	args := []any{}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		query += fmt.Sprintf(" AND featured = $%d", len(args))
	}
	// seq preserves insertion order and breaks sort-key ties deterministically.
	switch filter.Sort {
	case domain.SortNewest:
		query += " ORDER BY end_date DESC, seq ASC"
	case domain.SortMostFunded:
		query += " ORDER BY raised_amount DESC, seq ASC"
	case domain.SortMostDonors:
		query += " ORDER BY donor_count DESC, seq ASC"
	default:
		query += " ORDER BY seq ASC"
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(ctx, rows)
}

func (r *CampaignRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items, err := r.collect(ctx, rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrNotFound
	}
	return &items[0], nil
}

func (r *CampaignRepositoryPG) Create(ctx context.Context, campaign *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO campaigns (id, title, description, long_description, category,
  target_amount, raised_amount, donor_count, image, organizer_id,
  organizer_name, organizer_logo, organizer_verified, location, end_date,
  status, featured, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
`,
		campaign.ID, campaign.Title, campaign.Description, campaign.LongDescription,
		campaign.Category, campaign.TargetAmount, campaign.RaisedAmount,
		campaign.DonorCount, campaign.Image, campaign.Organizer.ID,
		campaign.Organizer.Name, campaign.Organizer.Logo, campaign.Organizer.Verified,
		campaign.Location, campaign.EndDate, string(campaign.Status),
		campaign.Featured, campaign.CreatedAt)
	return err
}

func (r *CampaignRepositoryPG) ListByOrganizer(ctx context.Context, userID string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE organizer_id = $1 ORDER BY seq ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(ctx, rows)
}

// IncrementTotals relies on a single UPDATE so concurrent donations to the
// same campaign serialize on the row and no increment is lost.
func (r *CampaignRepositoryPG) IncrementTotals(ctx context.Context, id string, amount int64) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE campaigns
SET raised_amount = raised_amount + $2, donor_count = donor_count + 1
WHERE id = $1;
`, id, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CampaignRepositoryPG) AddUpdate(ctx context.Context, id string, update domain.CampaignUpdate) error {
	tag, err := r.pool.Exec(ctx, `
INSERT INTO campaign_updates (id, campaign_id, title, content, date, image)
SELECT $1, id, $3, $4, $5, $6 FROM campaigns WHERE id = $2;
`, update.ID, id, update.Title, update.Content, update.Date, update.Image)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CampaignRepositoryPG) AddFAQ(ctx context.Context, id string, faq domain.CampaignFAQ) error {
	tag, err := r.pool.Exec(ctx, `
INSERT INTO campaign_faqs (campaign_id, question, answer)
SELECT id, $2, $3 FROM campaigns WHERE id = $1;
`, id, faq.Question, faq.Answer)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CampaignRepositoryPG) collect(ctx context.Context, rows pgx.Rows) ([]domain.Campaign, error) {
	var items []domain.Campaign
	for rows.Next() {
		var c domain.Campaign
		var status string
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.LongDescription,
			&c.Category, &c.TargetAmount, &c.RaisedAmount, &c.DonorCount,
			&c.Image, &c.Organizer.ID, &c.Organizer.Name, &c.Organizer.Logo,
			&c.Organizer.Verified, &c.Location, &c.EndDate, &status,
			&c.Featured, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Status = domain.CampaignStatus(status)
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()
	for i := range items {
		if err := r.loadChildren(ctx, &items[i]); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *CampaignRepositoryPG) loadChildren(ctx context.Context, c *domain.Campaign) error {
	urows, err := r.pool.Query(ctx, `
SELECT id, title, content, date, image
FROM campaign_updates
WHERE campaign_id = $1
ORDER BY seq ASC;
`, c.ID)
	if err != nil {
		return err
	}
	defer urows.Close()
	for urows.Next() {
		var u domain.CampaignUpdate
		if err := urows.Scan(&u.ID, &u.Title, &u.Content, &u.Date, &u.Image); err != nil {
			return err
		}
		c.Updates = append(c.Updates, u)
	}
	if err := urows.Err(); err != nil {
		return err
	}

	frows, err := r.pool.Query(ctx, `
SELECT question, answer
FROM campaign_faqs
WHERE campaign_id = $1
ORDER BY seq ASC;
`, c.ID)
	if err != nil {
		return err
	}
	defer frows.Close()
	for frows.Next() {
		var f domain.CampaignFAQ
		if err := frows.Scan(&f.Question, &f.Answer); err != nil {
			return err
		}
		c.FAQs = append(c.FAQs, f)
	}
	return frows.Err()
}

var _ domain.CampaignRepository = (*CampaignRepositoryPG)(nil)

// errNoRows normalizes pgx's no-rows sentinel to the domain error.
func errNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
