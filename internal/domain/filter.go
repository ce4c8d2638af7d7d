package domain

import (
	"sort"
	"strings"
)

// CampaignSort selects the ordering of a campaign listing.
type CampaignSort string

const (
	SortNewest     CampaignSort = "newest"
	SortMostFunded CampaignSort = "most_funded"
	SortMostDonors CampaignSort = "most_donors"
)

// CampaignFilter narrows and orders a campaign listing. Zero-valued fields
// are ignored; all set fields must match.
type CampaignFilter struct {
	Category string
	Search   string
	Status   CampaignStatus
	Featured *bool
	Sort     CampaignSort
}

// Matches reports whether the campaign passes every set filter field.
// Category and status compare exactly; the search term matches
// case-insensitively against title or description.
func (f CampaignFilter) Matches(c Campaign) bool {
	if f.Category != "" && c.Category != f.Category {
		return false
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Featured != nil && c.Featured != *f.Featured {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Title), q) &&
			!strings.Contains(strings.ToLower(c.Description), q) {
			return false
		}
	}
	return true
}

// SortCampaigns orders campaigns in place. The sort is stable, so equal keys
// keep their prior relative order. An unknown sort leaves the slice as is.
func SortCampaigns(campaigns []Campaign, by CampaignSort) {
	switch by {
	case SortNewest:
		sort.SliceStable(campaigns, func(i, j int) bool {
			return campaigns[i].EndDate.After(campaigns[j].EndDate)
		})
	case SortMostFunded:
		sort.SliceStable(campaigns, func(i, j int) bool {
			return campaigns[i].RaisedAmount > campaigns[j].RaisedAmount
		})
	case SortMostDonors:
		sort.SliceStable(campaigns, func(i, j int) bool {
			return campaigns[i].DonorCount > campaigns[j].DonorCount
		})
	}
}
