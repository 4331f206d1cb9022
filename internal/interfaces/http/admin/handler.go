package admin

import (
	"log"

	"github.com/go-chi/chi/v5"
	adminapp "github.com/zhyrafyk/park-services/api/internal/admin/application"
	publicapp "github.com/zhyrafyk/park-services/api/internal/public/application"
)

// Handler wires admin HTTP endpoints to application services. Every route
// registered here sits behind the admin cookie middleware; the handlers
// themselves contain no authorization logic.
type Handler struct {
	logger  *log.Logger
	content adminapp.ContentService
	news    adminapp.NewsService
	surveys adminapp.SurveyService
	orders  adminapp.OrderService
	stats   publicapp.StatsService
	queries publicapp.ContentQueryService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger  *log.Logger
	Content adminapp.ContentService
	News    adminapp.NewsService
	Surveys adminapp.SurveyService
	Orders  adminapp.OrderService
	Stats   publicapp.StatsService
	Queries publicapp.ContentQueryService
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:  cfg.Logger,
		content: cfg.Content,
		news:    cfg.News,
		surveys: cfg.Surveys,
		orders:  cfg.Orders,
		stats:   cfg.Stats,
		queries: cfg.Queries,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/stats", h.dashboardHandler())
	r.Get("/survey/responses", h.responsesHandler())

	r.Get("/news", h.newsListHandler())
	r.Post("/news", h.newsCreateHandler())
	r.Put("/news", h.newsUpdateHandler())
	r.Delete("/news", h.newsDeleteHandler())

	r.Get("/home", h.homeGetHandler())
	r.Put("/home", h.homeSaveHandler())

	r.Post("/features", h.featureCreateHandler())
	r.Put("/features", h.featureUpdateHandler())
	r.Delete("/features", h.featureDeleteHandler())

	r.Get("/prices", h.priceListHandler())
	r.Post("/prices", h.priceCreateHandler())
	r.Put("/prices", h.priceUpdateHandler())
	r.Delete("/prices", h.priceDeleteHandler())

	r.Get("/price-categories", h.priceCategoryListHandler())
	r.Post("/price-categories", h.priceCategoryCreateHandler())
	r.Put("/price-categories", h.priceCategoryUpdateHandler())
	r.Delete("/price-categories", h.priceCategoryDeleteHandler())

	r.Get("/cafe", h.cafeListHandler())
	r.Post("/cafe", h.cafeCreateHandler())
	r.Put("/cafe", h.cafeUpdateHandler())
	r.Delete("/cafe", h.cafeDeleteHandler())

	r.Get("/contacts", h.contactsGetHandler())
	r.Put("/contacts", h.contactsSaveHandler())

	r.Get("/offers", h.offerListHandler())
	r.Post("/offers", h.offerCreateHandler())
	r.Put("/offers", h.offerUpdateHandler())
	r.Delete("/offers", h.offerDeleteHandler())

	r.Get("/orders", h.orderListHandler())
	r.Patch("/orders/{id}", h.orderStatusHandler())
}
