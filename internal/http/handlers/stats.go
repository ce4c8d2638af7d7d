package handlers

import "net/http"

func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Stats.Compute(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("compute stats failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"total_raised":     stats.TotalRaised,
		"total_donors":     stats.TotalDonors,
		"total_campaigns":  stats.TotalCampaigns,
		"active_campaigns": stats.ActiveCampaigns,
	})
}
