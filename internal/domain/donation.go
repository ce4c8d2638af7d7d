package domain

import "time"

// DonationStatus enumerates donation states. Every recorded donation is
// completed; there are no pending or partial states.
type DonationStatus string

const DonationStatusCompleted DonationStatus = "completed"

// Donation is an immutable record of one contribution to one campaign.
// CampaignTitle, DonorName and DonorEmail are snapshots taken at donation
// time and are never refreshed.
type Donation struct {
	ID            string
	CampaignID    string
	CampaignTitle string
	UserID        string
	DonorName     string
	DonorEmail    string
	Amount        int64
	Country       string
	Date          time.Time
	Status        DonationStatus
}
