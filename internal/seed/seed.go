// Package seed holds the static reference data and demo records loaded into
// an empty store at startup.
package seed

import (
	"context"
	"time"

	"github.com/google/uuid"

	"donatehub/internal/domain"
)

// Categories returns the fixed category reference set.
func Categories() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Emergency Relief", Icon: "🚨", Color: "red"},
		{ID: 2, Name: "Education", Icon: "📚", Color: "blue"},
		{ID: 3, Name: "Health & Water", Icon: "💧", Color: "cyan"},
		{ID: 4, Name: "Healthcare", Icon: "🏥", Color: "green"},
		{ID: 5, Name: "Women's Rights", Icon: "👩", Color: "pink"},
		{ID: 6, Name: "Children", Icon: "👶", Color: "orange"},
		{ID: 7, Name: "Environment", Icon: "🌱", Color: "emerald"},
		{ID: 8, Name: "Community", Icon: "🤝", Color: "purple"},
	}
}

// Campaigns returns demo campaigns for development environments. Amounts are
// in the smallest currency unit.
func Campaigns(now time.Time) []domain.Campaign {
	return []domain.Campaign{
		{
			ID:              uuid.NewString(),
			Title:           "Emergency Relief for Flood Victims",
			Description:     "Help provide immediate relief to families affected by recent floods. Your donation will go towards food, clean water, medical supplies, and temporary shelter.",
			LongDescription: "The recent floods have displaced thousands of families, leaving them without basic necessities. This campaign aims to provide immediate relief including food packages, clean drinking water, medical supplies, and temporary shelter.",
			Category:        "Emergency Relief",
			TargetAmount:    500000,
			RaisedAmount:    320000,
			DonorCount:      1247,
			Organizer:       domain.Organizer{ID: uuid.NewString(), Name: "Hope Foundation", Verified: true},
			Location:        "Sindh, Pakistan",
			EndDate:         now.AddDate(0, 3, 0),
			Status:          domain.CampaignStatusActive,
			Featured:        true,
			Updates: []domain.CampaignUpdate{
				{
					ID:      uuid.NewString(),
					Title:   "First Aid Distribution Complete",
					Content: "We've successfully distributed first aid kits to 500 families in the affected areas.",
					Date:    now.AddDate(0, 0, -14),
				},
			},
			FAQs: []domain.CampaignFAQ{
				{
					Question: "How will my donation be used?",
					Answer:   "Your donation will be used to provide immediate relief including food, water, medical supplies, and temporary shelter to flood-affected families.",
				},
			},
			CreatedAt: now.AddDate(0, -1, 0),
		},
		{
			ID:              uuid.NewString(),
			Title:           "Education for Underprivileged Children",
			Description:     "Support education for children from low-income families. Help us build schools and provide educational materials.",
			LongDescription: "Education is the key to breaking the cycle of poverty. This campaign focuses on building schools in rural areas and providing educational materials, uniforms, and meals for underprivileged children.",
			Category:        "Education",
			TargetAmount:    300000,
			RaisedAmount:    180000,
			DonorCount:      892,
			Organizer:       domain.Organizer{ID: uuid.NewString(), Name: "Education First", Verified: true},
			Location:        "Punjab, Pakistan",
			EndDate:         now.AddDate(0, 2, 0),
			Status:          domain.CampaignStatusActive,
			Featured:        true,
			CreatedAt:       now.AddDate(0, -2, 0),
		},
		{
			ID:              uuid.NewString(),
			Title:           "Clean Water Initiative",
			Description:     "Provide clean drinking water to communities without access to safe water sources.",
			LongDescription: "Access to clean water is a basic human right. This initiative aims to install water filtration systems and wells in communities that currently lack access to safe drinking water.",
			Category:        "Health & Water",
			TargetAmount:    200000,
			RaisedAmount:    95000,
			DonorCount:      456,
			Organizer:       domain.Organizer{ID: uuid.NewString(), Name: "Water for All", Verified: true},
			Location:        "Balochistan, Pakistan",
			EndDate:         now.AddDate(0, 1, 0),
			Status:          domain.CampaignStatusActive,
			CreatedAt:       now.AddDate(0, -3, 0),
		},
	}
}

// Apply seeds categories always and demo campaigns when the campaign
// collection is empty and demo data is requested.
func Apply(ctx context.Context, campaigns domain.CampaignRepository, categories domain.CategoryRepository, demo bool) error {
	if err := categories.Seed(ctx, Categories()); err != nil {
		return err
	}
	if !demo {
		return nil
	}
	existing, err := campaigns.List(ctx, domain.CampaignFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, c := range Campaigns(time.Now()) {
		campaign := c
		if err := campaigns.Create(ctx, &campaign); err != nil {
			return err
		}
	}
	return nil
}
