package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"donatehub/internal/http/handlers"
	"donatehub/internal/infra"
	"donatehub/internal/middleware"
)

// NewRouter assembles the public HTTP surface. The campaign/donation routes
// mirror the platform's internal service API; only /api/auth is a contract
// with external clients.
func NewRouter(app *handlers.App, cfg *infra.Config, lookup middleware.CountryLookup) stdhttp.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(cfg.CORSOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
		middleware.Locale(cfg.DefaultLocale, lookup),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", app.AuthRegister)
			r.Post("/login", app.AuthLogin)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", app.CampaignsList)
			r.Get("/{id}", app.CampaignsGet)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthJWT(cfg.JWTSecret))
				r.Post("/", app.CampaignsCreate)
				r.Post("/{id}/updates", app.CampaignsAddUpdate)
				r.Post("/{id}/faqs", app.CampaignsAddFAQ)
			})
		})

		r.Get("/categories", app.CategoriesList)

		r.Route("/donations", func(r chi.Router) {
			r.Get("/recent", app.DonationsRecent)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthJWT(cfg.JWTSecret))
				r.Post("/", app.DonationsCreate)
			})
		})

		r.Route("/users/me", func(r chi.Router) {
			r.Use(middleware.AuthJWT(cfg.JWTSecret))
			r.Get("/donations", app.MyDonations)
			r.Get("/campaigns", app.MyCampaigns)
		})

		r.Get("/stats", app.StatsSummary)
	})

	return r
}
