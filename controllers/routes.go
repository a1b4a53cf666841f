package controllers

import (
	"fmt"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/thyeshengleng/collection-form/middleware"
	"github.com/thyeshengleng/collection-form/repositories"
)

// UIOptions configures the UI router
type UIOptions struct {
	SecureCookies bool
	Audit         repositories.AuditRepository
}

// NewUIRouter configures the routes of the record UI
func NewUIRouter(ctrl *Controllers, opts UIOptions) (*chi.Mux, error) {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))

	sessionHandler, err := session.Sessioner(session.Options{
		Provider:    "memory",
		CookieName:  "collection_session",
		Secure:      opts.SecureCookies,
		Gclifetime:  3600,
		Maxlifetime: 8 * 3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// PUBLIC ROUTES
	r.Get("/login", ctrl.Auth.Login)
	r.Get("/callback", ctrl.Auth.Callback)
	r.Get("/logout", ctrl.Auth.Logout)

	r.Group(func(r chi.Router) {
		if ctrl.Auth.Enabled() {
			r.Use(middleware.RequireAuth)
		}
		if opts.Audit != nil {
			r.Use(middleware.AuditLogger(opts.Audit))
		}

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/records", http.StatusSeeOther)
		})

		r.Route("/records", func(r chi.Router) {
			r.Get("/", ctrl.Records.Index)
			r.Post("/", ctrl.Records.Create)
			r.Get("/new", ctrl.Records.New)
			r.Get("/export.csv", ctrl.Records.ExportCSV)
			r.Post("/action", ctrl.Records.Action)
			r.Post("/{id}", ctrl.Records.Update)
			r.Get("/{id}/pdf", ctrl.Records.PDF)
		})
	})

	return r, nil
}

// NewAPIRouter configures the routes of the JSON API
func NewAPIRouter(ctrl *Controllers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)

	r.Get("/", ctrl.API.Root)
	r.Get("/health", ctrl.API.Health)
	r.Get("/api/debtor", ctrl.API.Debtors)

	r.Route("/api/form", func(r chi.Router) {
		r.Use(FormCORS)
		r.Get("/", ctrl.API.GetForm)
		r.Post("/", ctrl.API.PostForm)
		r.Options("/", ctrl.API.FormOptions)
	})

	return r
}
