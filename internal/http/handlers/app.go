package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"donatehub/internal/domain"
	"donatehub/internal/middleware"
	"donatehub/internal/service"
)

// App bundles the services the HTTP layer dispatches into.
type App struct {
	Campaigns  *service.Campaigns
	Ledger     *service.Ledger
	Stats      *service.Stats
	Identity   *service.Identity
	Categories domain.CategoryRepository
	Logger     zerolog.Logger

	// MinDonation is the UI-layer business rule (smallest currency units)
	// enforced at the donation endpoint. The ledger itself only rejects
	// non-positive amounts.
	MinDonation int64
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, codeStr, msg string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{"code": codeStr, "message": msg},
	})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}
