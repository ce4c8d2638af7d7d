package domain

import (
	"testing"
	"time"
)

func TestDaysLeftRoundsUp(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		end  time.Time
		want int
	}{
		{"half a day", now.Add(12 * time.Hour), 1},
		{"exactly one day", now.Add(24 * time.Hour), 1},
		{"one and a half days", now.Add(36 * time.Hour), 2},
		{"ended yesterday", now.Add(-24 * time.Hour), -1},
		{"ended 36h ago", now.Add(-36 * time.Hour), -1},
	}
	for _, tc := range cases {
		c := Campaign{EndDate: tc.end}
		if got := c.DaysLeft(now); got != tc.want {
			t.Errorf("%s: DaysLeft = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestFilterMatchesCategoryExact(t *testing.T) {
	c := Campaign{Category: "Education", Title: "School", Description: "Books"}

	if !(CampaignFilter{Category: "Education"}).Matches(c) {
		t.Fatal("exact category should match")
	}
	if (CampaignFilter{Category: "education"}).Matches(c) {
		t.Fatal("category match must be case-sensitive")
	}
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	c := Campaign{Title: "Clean Water Initiative", Description: "Provide clean drinking water"}

	for _, q := range []string{"water", "WATER", "drinking"} {
		if !(CampaignFilter{Search: q}).Matches(c) {
			t.Errorf("search %q should match", q)
		}
	}
	if (CampaignFilter{Search: "education"}).Matches(c) {
		t.Fatal("unrelated search must not match")
	}
}

func TestFilterFeaturedPointer(t *testing.T) {
	featured := Campaign{Featured: true}
	plain := Campaign{}
	f := false

	if !(CampaignFilter{}).Matches(plain) {
		t.Fatal("nil featured filter should match everything")
	}
	if (CampaignFilter{Featured: &f}).Matches(featured) {
		t.Fatal("featured=false filter should exclude featured campaigns")
	}
	if !(CampaignFilter{Featured: &f}).Matches(plain) {
		t.Fatal("featured=false filter should match plain campaigns")
	}
}

func TestSortCampaignsIsStable(t *testing.T) {
	campaigns := []Campaign{
		{ID: "a", RaisedAmount: 100},
		{ID: "b", RaisedAmount: 200},
		{ID: "c", RaisedAmount: 100},
		{ID: "d", RaisedAmount: 200},
	}
	SortCampaigns(campaigns, SortMostFunded)

	got := []string{campaigns[0].ID, campaigns[1].ID, campaigns[2].ID, campaigns[3].ID}
	want := []string{"b", "d", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSortCampaignsUnknownLeavesOrder(t *testing.T) {
	campaigns := []Campaign{{ID: "a"}, {ID: "b"}}
	SortCampaigns(campaigns, "")
	if campaigns[0].ID != "a" || campaigns[1].ID != "b" {
		t.Fatal("empty sort must preserve order")
	}
}
