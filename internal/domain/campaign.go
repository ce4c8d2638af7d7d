package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "active"
	CampaignStatusClosed CampaignStatus = "closed"
)

// Organizer is a snapshot of the NGO account that created a campaign,
// denormalized into the campaign record at creation time.
type Organizer struct {
	ID       string
	Name     string
	Logo     string
	Verified bool
}

// CampaignUpdate is a progress note posted by the organizer.
type CampaignUpdate struct {
	ID      string
	Title   string
	Content string
	Date    time.Time
	Image   string
}

// CampaignFAQ is a question/answer pair shown on the campaign page.
type CampaignFAQ struct {
	Question string
	Answer   string
}

// Campaign is a fundraising campaign. Monetary amounts are in the smallest
// currency unit.
type Campaign struct {
	ID              string
	Title           string
	Description     string
	LongDescription string
	Category        string
	TargetAmount    int64
	RaisedAmount    int64
	DonorCount      int
	Image           string
	Organizer       Organizer
	Location        string
	EndDate         time.Time
	Status          CampaignStatus
	Featured        bool
	Updates         []CampaignUpdate
	FAQs            []CampaignFAQ
	CreatedAt       time.Time
}

// DaysLeft returns the number of days until EndDate, rounding partial days
// up. Past end dates yield a negative count.
func (c Campaign) DaysLeft(now time.Time) int {
	const day = 24 * time.Hour
	diff := c.EndDate.Sub(now)
	days := int(diff / day)
	if diff%day > 0 {
		days++
	}
	return days
}
