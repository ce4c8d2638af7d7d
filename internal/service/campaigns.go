package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"donatehub/internal/domain"
)

// ErrInvalidCampaign is returned when a campaign draft fails validation.
var ErrInvalidCampaign = errors.New("invalid campaign")

// Campaigns exposes the campaign query and creation surface.
type Campaigns struct {
	campaigns domain.CampaignRepository
	users     domain.UserRepository
	now       func() time.Time
}

// NewCampaigns creates the campaign service.
func NewCampaigns(campaigns domain.CampaignRepository, users domain.UserRepository) *Campaigns {
	return &Campaigns{campaigns: campaigns, users: users, now: time.Now}
}

// List returns campaigns matching the filter.
func (s *Campaigns) List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	return s.campaigns.List(ctx, filter)
}

// Get returns one campaign by id.
func (s *Campaigns) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	return s.campaigns.GetByID(ctx, id)
}

// ListByOrganizer returns the campaigns created by the given user.
func (s *Campaigns) ListByOrganizer(ctx context.Context, userID string) ([]domain.Campaign, error) {
	return s.campaigns.ListByOrganizer(ctx, userID)
}

// CreateInput carries the organizer-supplied campaign fields.
type CreateInput struct {
	Title           string
	Description     string
	LongDescription string
	Category        string
	TargetAmount    int64
	Image           string
	Location        string
	EndDate         time.Time
}

// Create persists a new campaign for the given organizer account. New
// campaigns start active with zero raised funds, zero donors, not featured,
// and empty updates and FAQs. The organizer snapshot is taken from the user
// record at creation time. Only NGO and admin accounts may create campaigns.
func (s *Campaigns) Create(ctx context.Context, organizerID string, in CreateInput) (*domain.Campaign, error) {
	user, err := s.users.GetByID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("lookup organizer: %w", err)
	}
	if !user.CanOrganize() {
		return nil, domain.ErrForbidden
	}
	if in.Title == "" || in.Category == "" || in.TargetAmount <= 0 {
		return nil, fmt.Errorf("%w: title, category and a positive target are required", ErrInvalidCampaign)
	}

	campaign := &domain.Campaign{
		ID:              uuid.NewString(),
		Title:           in.Title,
		Description:     in.Description,
		LongDescription: in.LongDescription,
		Category:        in.Category,
		TargetAmount:    in.TargetAmount,
		Image:           in.Image,
		Organizer: domain.Organizer{
			ID:       user.ID,
			Name:     user.DisplayName(),
			Logo:     user.Logo,
			Verified: user.Verified,
		},
		Location:  in.Location,
		EndDate:   in.EndDate,
		Status:    domain.CampaignStatusActive,
		CreatedAt: s.now(),
	}
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return campaign, nil
}

// AddUpdate appends a progress update to the organizer's campaign.
func (s *Campaigns) AddUpdate(ctx context.Context, userID, campaignID, title, content, image string) (*domain.CampaignUpdate, error) {
	if err := s.requireOrganizer(ctx, userID, campaignID); err != nil {
		return nil, err
	}
	update := domain.CampaignUpdate{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
		Date:    s.now(),
		Image:   image,
	}
	if err := s.campaigns.AddUpdate(ctx, campaignID, update); err != nil {
		return nil, err
	}
	return &update, nil
}

// AddFAQ appends a question/answer pair to the organizer's campaign.
func (s *Campaigns) AddFAQ(ctx context.Context, userID, campaignID, question, answer string) error {
	if err := s.requireOrganizer(ctx, userID, campaignID); err != nil {
		return err
	}
	return s.campaigns.AddFAQ(ctx, campaignID, domain.CampaignFAQ{Question: question, Answer: answer})
}

func (s *Campaigns) requireOrganizer(ctx context.Context, userID, campaignID string) error {
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign.Organizer.ID != userID {
		return domain.ErrForbidden
	}
	return nil
}
