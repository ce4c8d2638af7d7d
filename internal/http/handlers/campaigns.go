package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"donatehub/internal/domain"
	"donatehub/internal/service"
)

type campaignDTO struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	LongDescription string        `json:"long_description,omitempty"`
	Category        string        `json:"category"`
	TargetAmount    int64         `json:"target_amount"`
	RaisedAmount    int64         `json:"raised_amount"`
	DonorCount      int           `json:"donor_count"`
	Image           string        `json:"image,omitempty"`
	Organizer       organizerDTO  `json:"organizer"`
	Location        string        `json:"location,omitempty"`
	EndDate         time.Time     `json:"end_date"`
	DaysLeft        int           `json:"days_left"`
	Status          string        `json:"status"`
	Featured        bool          `json:"featured"`
	Updates         []updateDTO   `json:"updates"`
	FAQs            []faqDTO      `json:"faqs"`
}

type organizerDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Logo     string `json:"logo,omitempty"`
	Verified bool   `json:"verified"`
}

type updateDTO struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
	Image   string    `json:"image,omitempty"`
}

type faqDTO struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func campaignToDTO(c domain.Campaign, now time.Time) campaignDTO {
	dto := campaignDTO{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		LongDescription: c.LongDescription,
		Category:        c.Category,
		TargetAmount:    c.TargetAmount,
		RaisedAmount:    c.RaisedAmount,
		DonorCount:      c.DonorCount,
		Image:           c.Image,
		Organizer: organizerDTO{
			ID:       c.Organizer.ID,
			Name:     c.Organizer.Name,
			Logo:     c.Organizer.Logo,
			Verified: c.Organizer.Verified,
		},
		Location: c.Location,
		EndDate:  c.EndDate,
		DaysLeft: c.DaysLeft(now),
		Status:   string(c.Status),
		Featured: c.Featured,
		Updates:  []updateDTO{},
		FAQs:     []faqDTO{},
	}
	for _, u := range c.Updates {
		dto.Updates = append(dto.Updates, updateDTO{ID: u.ID, Title: u.Title, Content: u.Content, Date: u.Date, Image: u.Image})
	}
	for _, f := range c.FAQs {
		dto.FAQs = append(dto.FAQs, faqDTO{Question: f.Question, Answer: f.Answer})
	}
	return dto
}

func (a *App) CampaignsList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.CampaignFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Status:   domain.CampaignStatus(q.Get("status")),
		Sort:     domain.CampaignSort(q.Get("sort")),
	}
	if q.Get("featured") != "" {
		featured := q.Get("featured") == "true"
		filter.Featured = &featured
	}

	campaigns, err := a.Campaigns.List(r.Context(), filter)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list campaigns failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load campaigns")
		return
	}
	now := time.Now()
	items := make([]campaignDTO, 0, len(campaigns))
	for _, c := range campaigns {
		items = append(items, campaignToDTO(c, now))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) CampaignsGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	campaign, err := a.Campaigns.Get(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "campaign not found")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Str("campaign_id", id).Msg("get campaign failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load campaign")
		return
	}
	a.json(w, http.StatusOK, campaignToDTO(*campaign, time.Now()))
}

type campaignCreateRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	LongDescription string `json:"long_description"`
	Category        string `json:"category"`
	TargetAmount    int64  `json:"target_amount"`
	Image           string `json:"image"`
	Location        string `json:"location"`
	EndDate         string `json:"end_date"`
}

func (a *App) CampaignsCreate(w http.ResponseWriter, r *http.Request) {
	var req campaignCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "end_date must be YYYY-MM-DD")
		return
	}

	campaign, err := a.Campaigns.Create(r.Context(), a.currentUserID(r), service.CreateInput{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Category:        req.Category,
		TargetAmount:    req.TargetAmount,
		Image:           req.Image,
		Location:        req.Location,
		EndDate:         endDate,
	})
	switch {
	case err == nil:
		a.json(w, http.StatusCreated, campaignToDTO(*campaign, time.Now()))
	case errors.Is(err, domain.ErrForbidden):
		a.error(w, http.StatusForbidden, "forbidden", "only NGO accounts can create campaigns")
	case errors.Is(err, service.ErrInvalidCampaign):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusUnauthorized, "unauthorized", "unknown account")
	default:
		a.Logger.Error().Err(err).Msg("create campaign failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create campaign")
	}
}

type campaignUpdateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

func (a *App) CampaignsAddUpdate(w http.ResponseWriter, r *http.Request) {
	var req campaignUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "title is required")
		return
	}
	update, err := a.Campaigns.AddUpdate(r.Context(), a.currentUserID(r), chi.URLParam(r, "id"), req.Title, req.Content, req.Image)
	switch {
	case err == nil:
		a.json(w, http.StatusCreated, updateDTO{ID: update.ID, Title: update.Title, Content: update.Content, Date: update.Date, Image: update.Image})
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "campaign not found")
	case errors.Is(err, domain.ErrForbidden):
		a.error(w, http.StatusForbidden, "forbidden", "not the campaign organizer")
	default:
		a.Logger.Error().Err(err).Msg("add campaign update failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to add update")
	}
}

type campaignFAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (a *App) CampaignsAddFAQ(w http.ResponseWriter, r *http.Request) {
	var req campaignFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "question is required")
		return
	}
	err := a.Campaigns.AddFAQ(r.Context(), a.currentUserID(r), chi.URLParam(r, "id"), req.Question, req.Answer)
	switch {
	case err == nil:
		a.json(w, http.StatusCreated, faqDTO{Question: req.Question, Answer: req.Answer})
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "campaign not found")
	case errors.Is(err, domain.ErrForbidden):
		a.error(w, http.StatusForbidden, "forbidden", "not the campaign organizer")
	default:
		a.Logger.Error().Err(err).Msg("add campaign faq failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to add faq")
	}
}

func (a *App) MyCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := a.Campaigns.ListByOrganizer(r.Context(), a.currentUserID(r))
	if err != nil {
		a.Logger.Error().Err(err).Msg("list organizer campaigns failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load campaigns")
		return
	}
	now := time.Now()
	items := make([]campaignDTO, 0, len(campaigns))
	for _, c := range campaigns {
		items = append(items, campaignToDTO(c, now))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
