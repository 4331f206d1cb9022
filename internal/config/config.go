package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config holds runtime configuration shared across the application.
// It is built once at process start and passed explicitly; nothing reads
// the environment after Load returns.
type Config struct {
	Addr                         string
	MongoURI                     string
	MongoDatabase                string
	NewsCollection               string
	VoteCollection               string
	ResponseCollection           string
	StatisticsCollection         string
	OrderCollection              string
	HomeCollection               string
	FeatureCollection            string
	PriceCollection              string
	PriceCategoryCollection      string
	CafeCollection               string
	ContactCollection            string
	OfferCollection              string
	FailedNotificationCollection string
	Timeout                      time.Duration
	Timezone                     string
	ServerLog                    *log.Logger
	JWTSecret                    []byte
	JWTIssuer                    string
	TokenTTL                     time.Duration
	AdminUsername                string
	AdminPasswordHash            string
	CookieSecure                 bool
	TelegramBotToken             string
	TelegramChatIDs              []string
	TelegramAPIURL               string
	TelegramTimeout              time.Duration
	NotifyQueueSize              int
	MediaTimeout                 time.Duration
	AllowedOrigins               []string
}

// Load reads environment variables and returns a fully populated Config.
// Telegram credentials are optional: their absence puts the notification
// relay into a documented no-op mode. Auth secrets are not optional.
func Load() Config {
	timeout := 10 * time.Second
	if v := strings.TrimSpace(os.Getenv("MONGO_CONNECT_TIMEOUT")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	jwtSecret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))
	if jwtSecret == "" {
		log.Fatal("AUTH_JWT_SECRET must be configured")
	}

	adminUsername := strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	adminPasswordHash := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))
	if adminUsername == "" || adminPasswordHash == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD_HASH must be configured")
	}

	tokenTTL := time.Hour
	if raw := strings.TrimSpace(os.Getenv("AUTH_TOKEN_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			tokenTTL = parsed
		}
	}

	telegramTimeout := 3 * time.Second
	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			telegramTimeout = parsed
		}
	}

	mediaTimeout := 60 * time.Second
	if raw := strings.TrimSpace(os.Getenv("MEDIA_FETCH_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			mediaTimeout = parsed
		}
	}

	cfg := Config{
		Addr:                         envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:                     envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:                envOrDefault("MONGO_DB", "zhyrafyk"),
		NewsCollection:               envOrDefault("NEWS_COLLECTION", "news"),
		VoteCollection:               envOrDefault("SURVEY_VOTE_COLLECTION", "survey_votes"),
		ResponseCollection:           envOrDefault("SURVEY_RESPONSE_COLLECTION", "survey_responses"),
		StatisticsCollection:         envOrDefault("STATISTICS_COLLECTION", "statistics"),
		OrderCollection:              envOrDefault("ORDER_COLLECTION", "orders"),
		HomeCollection:               envOrDefault("HOME_COLLECTION", "home"),
		FeatureCollection:            envOrDefault("FEATURE_COLLECTION", "features"),
		PriceCollection:              envOrDefault("PRICE_COLLECTION", "prices"),
		PriceCategoryCollection:      envOrDefault("PRICE_CATEGORY_COLLECTION", "price_categories"),
		CafeCollection:               envOrDefault("CAFE_COLLECTION", "cafe"),
		ContactCollection:            envOrDefault("CONTACT_COLLECTION", "contacts"),
		OfferCollection:              envOrDefault("OFFER_COLLECTION", "offers"),
		FailedNotificationCollection: envOrDefault("FAILED_NOTIFICATION_COLLECTION", "failed_notifications"),
		Timeout:                      timeout,
		Timezone:                     envOrDefault("TIMEZONE", "Europe/Kyiv"),
		ServerLog:                    log.New(os.Stdout, "[zhyrafyk-api] ", log.LstdFlags|log.Lshortfile),
		JWTSecret:                    []byte(jwtSecret),
		JWTIssuer:                    envOrDefault("AUTH_JWT_ISSUER", "zhyrafyk-admin"),
		TokenTTL:                     tokenTTL,
		AdminUsername:                adminUsername,
		AdminPasswordHash:            adminPasswordHash,
		CookieSecure:                 strings.EqualFold(strings.TrimSpace(os.Getenv("ADMIN_COOKIE_SECURE")), "true"),
		TelegramBotToken:             strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		TelegramChatIDs:              parseList("TELEGRAM_CHAT_IDS", nil),
		TelegramAPIURL:               strings.TrimSpace(os.Getenv("TELEGRAM_API_URL")),
		TelegramTimeout:              telegramTimeout,
		NotifyQueueSize:              64,
		MediaTimeout:                 mediaTimeout,
		AllowedOrigins:               parseList("API_ALLOWED_ORIGINS", []string{"*"}),
	}

	if cfg.TelegramBotToken == "" || len(cfg.TelegramChatIDs) == 0 {
		cfg.ServerLog.Printf("telegram not configured, notifications will be skipped")
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
