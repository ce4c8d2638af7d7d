package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"donatehub/internal/adapter/memrepo"
	"donatehub/internal/domain"
)

func newCampaignsFixture(t *testing.T) (*Campaigns, *memrepo.Store) {
	t.Helper()
	store := memrepo.New()
	return NewCampaigns(store.Campaigns(), store.Users()), store
}

func seedUser(t *testing.T, store *memrepo.Store, user domain.User) {
	t.Helper()
	if err := store.Users().Create(context.Background(), &user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func validDraft() CreateInput {
	return CreateInput{
		Title:        "School Rebuild",
		Description:  "Rebuild the village school",
		Category:     "Education",
		TargetAmount: 250000,
		EndDate:      time.Now().AddDate(0, 2, 0),
	}
}

func TestCreateStartsWithZeroTotals(t *testing.T) {
	svc, store := newCampaignsFixture(t)
	ctx := context.Background()
	seedUser(t, store, domain.User{
		ID: "ngo-1", FirstName: "Hope", LastName: "Foundation",
		Email: "hope@example.com", Role: domain.UserRoleNGO, Verified: true,
	})

	campaign, err := svc.Create(ctx, "ngo-1", validDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if campaign.RaisedAmount != 0 || campaign.DonorCount != 0 {
		t.Fatalf("new campaign totals = %d/%d, want zero", campaign.RaisedAmount, campaign.DonorCount)
	}
	if campaign.Status != domain.CampaignStatusActive {
		t.Fatalf("status = %q, want active", campaign.Status)
	}
	if campaign.Featured {
		t.Fatal("new campaigns must not be featured")
	}
	if len(campaign.Updates) != 0 || len(campaign.FAQs) != 0 {
		t.Fatal("new campaigns start without updates or faqs")
	}
	if campaign.Organizer.ID != "ngo-1" || campaign.Organizer.Name != "Hope Foundation" || !campaign.Organizer.Verified {
		t.Fatalf("organizer snapshot = %+v", campaign.Organizer)
	}
}

func TestCreateRejectsPlainUsers(t *testing.T) {
	svc, store := newCampaignsFixture(t)
	seedUser(t, store, domain.User{ID: "u-1", FirstName: "Asha", Role: domain.UserRoleUser})

	_, err := svc.Create(context.Background(), "u-1", validDraft())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestCreateRejectsInvalidDraft(t *testing.T) {
	svc, store := newCampaignsFixture(t)
	seedUser(t, store, domain.User{ID: "ngo-1", FirstName: "Hope", Role: domain.UserRoleNGO})
	ctx := context.Background()

	for _, mutate := range []func(*CreateInput){
		func(in *CreateInput) { in.Title = "" },
		func(in *CreateInput) { in.Category = "" },
		func(in *CreateInput) { in.TargetAmount = 0 },
		func(in *CreateInput) { in.TargetAmount = -5 },
	} {
		in := validDraft()
		mutate(&in)
		if _, err := svc.Create(ctx, "ngo-1", in); !errors.Is(err, ErrInvalidCampaign) {
			t.Errorf("draft %+v: err = %v, want ErrInvalidCampaign", in, err)
		}
	}
}

func TestOrganizerSnapshotDoesNotFollowUser(t *testing.T) {
	svc, store := newCampaignsFixture(t)
	ctx := context.Background()
	seedUser(t, store, domain.User{ID: "ngo-1", FirstName: "Old Name", Role: domain.UserRoleNGO})

	campaign, err := svc.Create(ctx, "ngo-1", validDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// The campaign keeps the organizer name from creation time even if the
	// user record changes afterwards; campaign records are never touched.
	stored, err := svc.Get(ctx, campaign.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Organizer.Name != "Old Name" {
		t.Fatalf("organizer name = %q, want snapshot", stored.Organizer.Name)
	}
}

func TestAddUpdateRequiresOrganizer(t *testing.T) {
	svc, store := newCampaignsFixture(t)
	ctx := context.Background()
	seedUser(t, store, domain.User{ID: "ngo-1", FirstName: "Hope", Role: domain.UserRoleNGO})
	seedUser(t, store, domain.User{ID: "ngo-2", FirstName: "Other", Role: domain.UserRoleNGO})

	campaign, err := svc.Create(ctx, "ngo-1", validDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.AddUpdate(ctx, "ngo-2", campaign.ID, "Progress", "", ""); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("foreign organizer err = %v, want ErrForbidden", err)
	}
	if _, err := svc.AddUpdate(ctx, "ngo-1", "no-such-campaign", "Progress", "", ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown campaign err = %v, want ErrNotFound", err)
	}

	update, err := svc.AddUpdate(ctx, "ngo-1", campaign.ID, "Progress", "Work started", "")
	if err != nil {
		t.Fatalf("add update: %v", err)
	}
	if update.ID == "" || update.Date.IsZero() {
		t.Fatalf("update missing id or date: %+v", update)
	}

	stored, _ := svc.Get(ctx, campaign.ID)
	if len(stored.Updates) != 1 || stored.Updates[0].Title != "Progress" {
		t.Fatalf("stored updates = %+v", stored.Updates)
	}
}

func TestAddFAQAppends(t *testing.T) {
	svc, store := newCampaignsFixture(t)
	ctx := context.Background()
	seedUser(t, store, domain.User{ID: "ngo-1", FirstName: "Hope", Role: domain.UserRoleNGO})

	campaign, err := svc.Create(ctx, "ngo-1", validDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.AddFAQ(ctx, "ngo-1", campaign.ID, "How are funds used?", "Directly on materials."); err != nil {
		t.Fatalf("add faq: %v", err)
	}

	stored, _ := svc.Get(ctx, campaign.ID)
	if len(stored.FAQs) != 1 || stored.FAQs[0].Question != "How are funds used?" {
		t.Fatalf("stored faqs = %+v", stored.FAQs)
	}
}
