package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"donatehub/internal/domain"
	"donatehub/internal/middleware"
	"donatehub/internal/service"
)

type donationRequest struct {
	CampaignID string `json:"campaign_id"`
	Amount     int64  `json:"amount"`
	DonorName  string `json:"donor_name"`
	DonorEmail string `json:"donor_email"`
}

type donationDTO struct {
	ID            string    `json:"id"`
	CampaignID    string    `json:"campaign_id"`
	CampaignTitle string    `json:"campaign_title,omitempty"`
	Amount        int64     `json:"amount"`
	DonorName     string    `json:"donor_name,omitempty"`
	Country       string    `json:"country,omitempty"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
}

func donationToDTO(d domain.Donation) donationDTO {
	return donationDTO{
		ID:            d.ID,
		CampaignID:    d.CampaignID,
		CampaignTitle: d.CampaignTitle,
		Amount:        d.Amount,
		DonorName:     d.DonorName,
		Country:       d.Country,
		Date:          d.Date,
		Status:        string(d.Status),
	}
}

func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.CampaignID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "campaign_id required")
		return
	}
	// The minimum-donation rule is a presentation-layer policy enforced at
	// this boundary. The ledger only guards against amount <= 0.
	if req.Amount < a.MinDonation {
		a.error(w, http.StatusBadRequest, "bad_request",
			fmt.Sprintf("minimum donation is %d", a.MinDonation))
		return
	}

	userID := a.currentUserID(r)
	donorName := req.DonorName
	donorEmail := req.DonorEmail
	if donorEmail == "" {
		donorEmail = middleware.UserEmailFromContext(r.Context())
	}
	if donorName == "" {
		if user, err := a.Identity.GetUser(r.Context(), userID); err == nil {
			donorName = user.DisplayName()
		}
	}

	var campaignTitle string
	if campaign, err := a.Campaigns.Get(r.Context(), req.CampaignID); err == nil {
		campaignTitle = campaign.Title
	}

	donation, err := a.Ledger.Record(r.Context(), service.RecordRequest{
		CampaignID:    req.CampaignID,
		CampaignTitle: campaignTitle,
		UserID:        userID,
		DonorName:     donorName,
		DonorEmail:    donorEmail,
		Amount:        req.Amount,
		Country:       middleware.CountryFromContext(r.Context()),
	})
	switch {
	case err == nil:
		a.json(w, http.StatusCreated, donationToDTO(*donation))
	case errors.Is(err, domain.ErrInvalidAmount):
		a.error(w, http.StatusBadRequest, "bad_request", "amount must be positive")
	default:
		a.Logger.Error().Err(err).Msg("record donation failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to record donation")
	}
}

func (a *App) DonationsRecent(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	donations, err := a.Ledger.ListRecent(r.Context(), limit)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list recent donations failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load donations")
		return
	}
	items := make([]donationDTO, 0, len(donations))
	for _, d := range donations {
		items = append(items, donationToDTO(d))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) MyDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := a.Ledger.ListByUser(r.Context(), a.currentUserID(r))
	if err != nil {
		a.Logger.Error().Err(err).Msg("list user donations failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load donations")
		return
	}
	items := make([]donationDTO, 0, len(donations))
	for _, d := range donations {
		items = append(items, donationToDTO(d))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
