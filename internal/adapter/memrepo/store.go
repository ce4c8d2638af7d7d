// Package memrepo implements the domain repositories over in-process
// collections. It backs tests and the memory store driver, mirroring the
// persistent driver's semantics: insertion-ordered collections, copy-out
// reads, and serialized campaign total updates.
package memrepo

import (
	"sync"

	"donatehub/internal/domain"
)

// Store holds the four record collections behind a single lock. Construct one
// per process or test and hand out its repository views.
type Store struct {
	mu         sync.RWMutex
	campaigns  []domain.Campaign
	donations  []domain.Donation
	users      []domain.User
	categories []domain.Category
}

func New() *Store {
	return &Store{}
}

// Campaigns returns the campaign repository view of the store.
func (s *Store) Campaigns() domain.CampaignRepository { return &campaignRepo{s: s} }

// Donations returns the donation repository view of the store.
func (s *Store) Donations() domain.DonationRepository { return &donationRepo{s: s} }

// Users returns the user repository view of the store.
func (s *Store) Users() domain.UserRepository { return &userRepo{s: s} }

// Categories returns the category repository view of the store.
func (s *Store) Categories() domain.CategoryRepository { return &categoryRepo{s: s} }

func copyCampaign(c domain.Campaign) domain.Campaign {
	out := c
	out.Updates = append([]domain.CampaignUpdate(nil), c.Updates...)
	out.FAQs = append([]domain.CampaignFAQ(nil), c.FAQs...)
	return out
}
