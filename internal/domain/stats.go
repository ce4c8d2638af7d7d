package domain

// PlatformStats holds platform-wide totals derived from the current store
// contents. It is recomputed on demand and never cached.
type PlatformStats struct {
	TotalRaised     int64
	TotalDonors     int
	TotalCampaigns  int
	ActiveCampaigns int
}
