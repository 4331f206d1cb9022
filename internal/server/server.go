package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	adminapp "github.com/zhyrafyk/park-services/api/internal/admin/application"
	"github.com/zhyrafyk/park-services/api/internal/auth"
	"github.com/zhyrafyk/park-services/api/internal/config"
	mongodoc "github.com/zhyrafyk/park-services/api/internal/infrastructure/mongo"
	adminhttp "github.com/zhyrafyk/park-services/api/internal/interfaces/http/admin"
	commonhttp "github.com/zhyrafyk/park-services/api/internal/interfaces/http/common"
	publichttp "github.com/zhyrafyk/park-services/api/internal/interfaces/http/public"
	"github.com/zhyrafyk/park-services/api/internal/notify"
	publicapp "github.com/zhyrafyk/park-services/api/internal/public/application"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Server is the composition root: it assembles repositories, application
// services and HTTP handlers, and owns the process lifecycle.
type Server struct {
	logger         *log.Logger
	client         *mongo.Client
	database       *mongo.Database
	tokens         *auth.Tokens
	dispatcher     *notify.Dispatcher
	location       *time.Location
	publicHandler  *publichttp.Handler
	adminHandler   *adminhttp.Handler
	addr           string
	allowedOrigins []string
}

// New resolves every dependency from Config and the connected Mongo client.
// No domain logic lives here; the server only wires layers together.
func New(cfg config.Config, client *mongo.Client) *Server {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
		cfg.ServerLog.Printf("timezone %s unavailable: %v, falling back to UTC", cfg.Timezone, err)
	}

	database := client.Database(cfg.MongoDatabase)

	failureRepo := mongodoc.NewFailureRepository(database, cfg.FailedNotificationCollection, cfg.ServerLog)
	relay := notify.NewService(notify.Config{
		BotToken: cfg.TelegramBotToken,
		ChatIDs:  cfg.TelegramChatIDs,
		Endpoint: cfg.TelegramAPIURL,
		Timeout:  cfg.TelegramTimeout,
	}, cfg.ServerLog, failureRepo)
	dispatcher := notify.NewDispatcher(relay, cfg.ServerLog, cfg.NotifyQueueSize)

	newsRepo := mongodoc.NewNewsRepository(database, cfg.NewsCollection, cfg.VoteCollection, cfg.ResponseCollection)
	statsRepo := mongodoc.NewStatsRepository(database, cfg.StatisticsCollection)
	orderRepo := mongodoc.NewOrderRepository(database, cfg.OrderCollection)
	contentRepo := mongodoc.NewContentRepository(database, mongodoc.Collections{
		Home:            cfg.HomeCollection,
		Features:        cfg.FeatureCollection,
		Prices:          cfg.PriceCollection,
		PriceCategories: cfg.PriceCategoryCollection,
		Cafe:            cfg.CafeCollection,
		Contacts:        cfg.ContactCollection,
		Offers:          cfg.OfferCollection,
	})

	contentQueries := publicapp.NewContentQueryService(contentRepo, newsRepo)
	surveyService := publicapp.NewSurveyService(newsRepo, dispatcher, cfg.ServerLog)
	statsService := publicapp.NewStatsService(statsRepo, orderRepo, loc)
	orderService := publicapp.NewOrderService(orderRepo, dispatcher)

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:            cfg.ServerLog,
		Content:           contentQueries,
		Surveys:           surveyService,
		Stats:             statsService,
		Orders:            orderService,
		Tokens:            tokens,
		AdminUsername:     cfg.AdminUsername,
		AdminPasswordHash: cfg.AdminPasswordHash,
		CookieSecure:      cfg.CookieSecure,
		MediaClient:       &http.Client{Timeout: cfg.MediaTimeout},
	})

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:  cfg.ServerLog,
		Content: adminapp.NewContentService(contentRepo),
		News:    adminapp.NewNewsService(newsRepo),
		Surveys: adminapp.NewSurveyService(newsRepo),
		Orders:  adminapp.NewOrderService(orderRepo),
		Stats:   statsService,
		Queries: contentQueries,
	})

	return &Server{
		logger:         cfg.ServerLog,
		client:         client,
		database:       database,
		tokens:         tokens,
		dispatcher:     dispatcher,
		location:       loc,
		publicHandler:  publicHandler,
		adminHandler:   adminHandler,
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
	}
}

// Run builds the router, starts the HTTP server and blocks until shutdown.
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())
	router.Route("/api", func(r chi.Router) {
		s.publicHandler.Register(r, s.authMiddleware)
		r.Route("/admin", func(r chi.Router) {
			r.Use(s.authMiddleware)
			s.adminHandler.Register(r)
		})
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	s.waitForShutdown(httpServer, errChan)
	return nil
}

// authMiddleware validates the admin session cookie and stores the verified
// claims in the request context. It guards both the admin subtree and the
// public /auth/verify probe.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(commonhttp.AdminTokenCookie)
		if err != nil || strings.TrimSpace(cookie.Value) == "" {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, commonhttp.ErrCodeUnauthorized)
			return
		}

		claims, err := s.tokens.Verify(cookie.Value)
		if err != nil {
			commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, commonhttp.ErrCodeUnauthorized)
			return
		}

		ctx := commonhttp.ContextWithAdmin(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// healthHandler reports Mongo connectivity only; it says nothing about
// domain state.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			commonhttp.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().In(s.location).Format(time.RFC3339),
		})
	}
}

// withCORS grants cross-origin access to the configured origins. "*" allows
// every origin.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// waitForShutdown watches both the listener and OS signals, drains the
// notification queue and disconnects Mongo before returning.
func (s *Server) waitForShutdown(httpServer *http.Server, errChan <-chan error) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Fatalf("server exited: %v", err)
		}
	case sig := <-sigChan:
		s.logger.Printf("received signal %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			s.logger.Printf("server shutdown: %v", err)
		}
	}

	s.dispatcher.Close()

	disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(disconnectCtx); err != nil {
		s.logger.Printf("mongo disconnect: %v", err)
	}
}
