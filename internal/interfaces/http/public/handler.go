package public

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zhyrafyk/park-services/api/internal/auth"
	publicapp "github.com/zhyrafyk/park-services/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger            *log.Logger
	content           publicapp.ContentQueryService
	surveys           publicapp.SurveyService
	stats             publicapp.StatsService
	orders            publicapp.OrderService
	tokens            *auth.Tokens
	adminUsername     string
	adminPasswordHash string
	cookieSecure      bool
	mediaClient       *http.Client
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger            *log.Logger
	Content           publicapp.ContentQueryService
	Surveys           publicapp.SurveyService
	Stats             publicapp.StatsService
	Orders            publicapp.OrderService
	Tokens            *auth.Tokens
	AdminUsername     string
	AdminPasswordHash string
	CookieSecure      bool
	MediaClient       *http.Client
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:            cfg.Logger,
		content:           cfg.Content,
		surveys:           cfg.Surveys,
		stats:             cfg.Stats,
		orders:            cfg.Orders,
		tokens:            cfg.Tokens,
		adminUsername:     cfg.AdminUsername,
		adminPasswordHash: cfg.AdminPasswordHash,
		cookieSecure:      cfg.CookieSecure,
		mediaClient:       cfg.MediaClient,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/data/home", h.homeHandler())
	r.Get("/data/news", h.newsHandler())
	r.Get("/data/prices", h.pricesHandler())
	r.Get("/data/price-categories", h.priceCategoriesHandler())
	r.Get("/data/cafe", h.cafeHandler())
	r.Get("/data/contacts", h.contactsHandler())
	r.Get("/data/offers", h.offersHandler())

	r.Post("/survey/vote", h.voteHandler())
	r.Post("/survey/submit", h.submitHandler())
	r.Get("/survey/results", h.resultsHandler())

	r.Post("/stats", h.recordViewHandler())
	r.Post("/orders", h.orderCreateHandler())

	r.Get("/image", h.imageHandler())
	r.Get("/video", h.videoHandler())

	r.Post("/auth", h.loginHandler())
	r.Delete("/auth", h.logoutHandler())
	r.With(authMiddleware).Get("/auth/verify", h.verifyHandler())
}
