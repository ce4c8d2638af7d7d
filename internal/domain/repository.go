package domain

import "context"

// CampaignRepository defines access methods for campaigns.
type CampaignRepository interface {
	// List returns campaigns matching the filter in the insertion order of
	// the underlying store, then applies the filter's sort.
	List(ctx context.Context, filter CampaignFilter) ([]Campaign, error)
	GetByID(ctx context.Context, id string) (*Campaign, error)
	Create(ctx context.Context, campaign *Campaign) error
	ListByOrganizer(ctx context.Context, userID string) ([]Campaign, error)
	// IncrementTotals adds amount to the campaign's raised total and bumps
	// its donor count by one as a single serialized operation. Returns
	// ErrNotFound when no campaign has the given id.
	IncrementTotals(ctx context.Context, id string, amount int64) error
	AddUpdate(ctx context.Context, id string, update CampaignUpdate) error
	AddFAQ(ctx context.Context, id string, faq CampaignFAQ) error
}

// DonationRepository handles donation persistence.
type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	ListByUser(ctx context.Context, userID string) ([]Donation, error)
	ListRecent(ctx context.Context, limit int) ([]Donation, error)
	Count(ctx context.Context) (int, error)
}

// UserRepository defines access methods for users. Create returns
// ErrEmailTaken when the email is already registered.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// CategoryRepository serves the static category reference data.
type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
	// Seed inserts the given categories when the collection is empty.
	Seed(ctx context.Context, categories []Category) error
}
