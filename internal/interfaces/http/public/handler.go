package public

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/studentjobsgroningen/site-services/api/internal/catalog"
	"github.com/studentjobsgroningen/site-services/api/internal/employer/application"
)

// Handler wires public HTTP endpoints to the catalog and the employer
// submission use-cases.
type Handler struct {
	logger      *zap.Logger
	catalog     *catalog.Catalog
	submissions application.SubmitService
	logos       application.LogoStore
	notifier    application.Notifier
	defaultCity string
	region      string
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger      *zap.Logger
	Catalog     *catalog.Catalog
	Submissions application.SubmitService
	Logos       application.LogoStore
	Notifier    application.Notifier
	DefaultCity string
	Region      string
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:      cfg.Logger,
		catalog:     cfg.Catalog,
		submissions: cfg.Submissions,
		logos:       cfg.Logos,
		notifier:    cfg.Notifier,
		defaultCity: cfg.DefaultCity,
		region:      cfg.Region,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/jobs", h.jobListHandler())
	r.Get("/jobs/{slug}", h.jobDetailHandler())
	r.Post("/employer-lead", h.employerLeadHandler())
}
