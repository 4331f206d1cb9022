package application

import (
	"context"
	"errors"
	"time"

	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

// Client-distinguishable failures of the survey engine. Anything else that
// surfaces from a repository is treated as a transient store error.
var (
	// ErrSurveyNotFound covers an unknown news id, a news item without a
	// survey, and a survey past its end date.
	ErrSurveyNotFound = errors.New("survey not found or expired")
	// ErrInvalidOption is returned when a vote references an option id that
	// is not part of the survey.
	ErrInvalidOption = errors.New("invalid option ids")
	// ErrMultipleNotAllowed is returned when a single-select survey receives
	// more than one option id.
	ErrMultipleNotAllowed = errors.New("multiple votes not allowed")
	// ErrNotFound is the generic missing-document failure of read services.
	ErrNotFound = errors.New("not found")
)

// NewsRepository is the port for news items and their survey sub-documents,
// including the vote/response audit collections.
type NewsRepository interface {
	Find(ctx context.Context) ([]domain.NewsItem, error)
	FindByID(ctx context.Context, id string) (*domain.NewsItem, error)
	// FindWithActiveSurvey returns the item only when it carries a survey
	// whose end date is after now. A missing match yields (nil, nil).
	FindWithActiveSurvey(ctx context.Context, id string, now time.Time) (*domain.NewsItem, error)
	// ApplyVote increments the embedded tally in a single atomic update.
	ApplyVote(ctx context.Context, id string, optionIDs []string, now time.Time) error
	InsertVote(ctx context.Context, vote domain.SurveyVote) error
	InsertResponse(ctx context.Context, response domain.SurveyResponse) error
	// SurveyResults returns ErrSurveyNotFound when the item or its survey is
	// missing, and (nil, nil) when no vote has been recorded yet.
	SurveyResults(ctx context.Context, id string) (*domain.SurveyResults, error)
}

// StatsRepository is the port for the append-only page-view log.
type StatsRepository interface {
	Insert(ctx context.Context, event domain.StatisticsEvent) error
	FindAll(ctx context.Context) ([]domain.StatisticsEvent, error)
}

// OrderRepository is the port for booking intake and admin follow-up.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	FindAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

// ContentRepository is the port for the plain content collections.
type ContentRepository interface {
	Home(ctx context.Context) (*domain.HomeData, error)
	FeatureCards(ctx context.Context) ([]domain.FeatureCard, error)
	Prices(ctx context.Context) ([]domain.PriceItem, error)
	PriceCategories(ctx context.Context) ([]domain.PriceCategory, error)
	CafeItems(ctx context.Context) ([]domain.CafeItem, error)
	Contacts(ctx context.Context) (*domain.ContactInfo, error)
	Offers(ctx context.Context) ([]domain.OfferItem, error)
}

// Notifier hands a message to the background relay. Implementations must
// never block the caller and never report failure back.
type Notifier interface {
	Dispatch(text string)
}
