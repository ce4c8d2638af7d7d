package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"donatehub/internal/adapter/memrepo"
	"donatehub/internal/domain"
	"donatehub/internal/middleware"
	"donatehub/internal/service"
)

type fixture struct {
	app   *App
	store *memrepo.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memrepo.New()
	logger := zerolog.Nop()
	app := &App{
		Campaigns:   service.NewCampaigns(store.Campaigns(), store.Users()),
		Ledger:      service.NewLedger(store.Donations(), store.Campaigns(), logger),
		Stats:       service.NewStats(store.Campaigns(), store.Donations()),
		Identity:    service.NewIdentity(store.Users(), "test-secret", logger),
		Categories:  store.Categories(),
		Logger:      logger,
		MinDonation: 100,
	}
	return &fixture{app: app, store: store}
}

func (f *fixture) seedCampaign(t *testing.T, c domain.Campaign) {
	t.Helper()
	if err := f.store.Campaigns().Create(context.Background(), &c); err != nil {
		t.Fatalf("seed campaign: %v", err)
	}
}

func (f *fixture) seedUser(t *testing.T, u domain.User) {
	t.Helper()
	if err := f.store.Users().Create(context.Background(), &u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

// asUser stamps the request context the way the auth middleware would.
func asUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(middleware.ContextWithUserID(r.Context(), userID))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, rec)
	errObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("no error envelope in %q", rec.Body.String())
	}
	msg, _ := errObj["message"].(string)
	return msg
}
