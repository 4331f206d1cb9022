package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

// ErrInvalidInput flags admin payloads that fail basic validation.
var ErrInvalidInput = errors.New("invalid input")

// ContentRepository is the write port for the admin-managed collections.
type ContentRepository interface {
	UpsertHome(ctx context.Context, home domain.HomeData) error
	CreateFeatureCard(ctx context.Context, card *domain.FeatureCard) error
	UpdateFeatureCard(ctx context.Context, card domain.FeatureCard) error
	DeleteFeatureCard(ctx context.Context, id string) error
	CreatePrice(ctx context.Context, item *domain.PriceItem) error
	UpdatePrice(ctx context.Context, item domain.PriceItem) error
	DeletePrice(ctx context.Context, id string) error
	CreatePriceCategory(ctx context.Context, category *domain.PriceCategory) error
	UpdatePriceCategory(ctx context.Context, category domain.PriceCategory) error
	DeletePriceCategory(ctx context.Context, id string) error
	CreateCafeItem(ctx context.Context, item *domain.CafeItem) error
	UpdateCafeItem(ctx context.Context, item domain.CafeItem) error
	DeleteCafeItem(ctx context.Context, id string) error
	UpsertContacts(ctx context.Context, contacts domain.ContactInfo) error
	CreateOffer(ctx context.Context, offer *domain.OfferItem) error
	UpdateOffer(ctx context.Context, offer domain.OfferItem) error
	DeleteOffer(ctx context.Context, id string) error
}

// NewsRepository is the admin write port for news items. Survey sub-objects
// are edited through the full document; the results tally is never writable
// from admin payloads.
type NewsRepository interface {
	Create(ctx context.Context, item *domain.NewsItem) error
	Update(ctx context.Context, item domain.NewsItem) error
	Delete(ctx context.Context, id string) error
}

// ResponseRepository reads the free-form audit trail plus the news items
// needed to enrich it.
type ResponseRepository interface {
	FindResponses(ctx context.Context, newsID string) ([]domain.SurveyResponse, error)
	FindNewsByIDs(ctx context.Context, ids []string) ([]domain.NewsItem, error)
}

// ContentService exposes admin CRUD over the content collections.
type ContentService interface {
	SaveHome(ctx context.Context, home domain.HomeData) error
	CreateFeatureCard(ctx context.Context, card domain.FeatureCard) (*domain.FeatureCard, error)
	UpdateFeatureCard(ctx context.Context, card domain.FeatureCard) error
	DeleteFeatureCard(ctx context.Context, id string) error
	CreatePrice(ctx context.Context, item domain.PriceItem) (*domain.PriceItem, error)
	UpdatePrice(ctx context.Context, item domain.PriceItem) error
	DeletePrice(ctx context.Context, id string) error
	CreatePriceCategory(ctx context.Context, category domain.PriceCategory) (*domain.PriceCategory, error)
	UpdatePriceCategory(ctx context.Context, category domain.PriceCategory) error
	DeletePriceCategory(ctx context.Context, id string) error
	CreateCafeItem(ctx context.Context, item domain.CafeItem) (*domain.CafeItem, error)
	UpdateCafeItem(ctx context.Context, item domain.CafeItem) error
	DeleteCafeItem(ctx context.Context, id string) error
	SaveContacts(ctx context.Context, contacts domain.ContactInfo) error
	CreateOffer(ctx context.Context, offer domain.OfferItem) (*domain.OfferItem, error)
	UpdateOffer(ctx context.Context, offer domain.OfferItem) error
	DeleteOffer(ctx context.Context, id string) error
}

// NewContentService creates the admin content CRUD service.
func NewContentService(repo ContentRepository) ContentService {
	return &contentService{repo: repo}
}

type contentService struct {
	repo ContentRepository
}

func (s *contentService) SaveHome(ctx context.Context, home domain.HomeData) error {
	if strings.TrimSpace(home.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return s.repo.UpsertHome(ctx, home)
}

func (s *contentService) CreateFeatureCard(ctx context.Context, card domain.FeatureCard) (*domain.FeatureCard, error) {
	if strings.TrimSpace(card.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if err := s.repo.CreateFeatureCard(ctx, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *contentService) UpdateFeatureCard(ctx context.Context, card domain.FeatureCard) error {
	return s.repo.UpdateFeatureCard(ctx, card)
}

func (s *contentService) DeleteFeatureCard(ctx context.Context, id string) error {
	return s.repo.DeleteFeatureCard(ctx, id)
}

func (s *contentService) CreatePrice(ctx context.Context, item domain.PriceItem) (*domain.PriceItem, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := s.repo.CreatePrice(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *contentService) UpdatePrice(ctx context.Context, item domain.PriceItem) error {
	return s.repo.UpdatePrice(ctx, item)
}

func (s *contentService) DeletePrice(ctx context.Context, id string) error {
	return s.repo.DeletePrice(ctx, id)
}

func (s *contentService) CreatePriceCategory(ctx context.Context, category domain.PriceCategory) (*domain.PriceCategory, error) {
	if strings.TrimSpace(category.Key) == "" || strings.TrimSpace(category.Label) == "" {
		return nil, fmt.Errorf("%w: key and label are required", ErrInvalidInput)
	}
	if err := s.repo.CreatePriceCategory(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *contentService) UpdatePriceCategory(ctx context.Context, category domain.PriceCategory) error {
	return s.repo.UpdatePriceCategory(ctx, category)
}

func (s *contentService) DeletePriceCategory(ctx context.Context, id string) error {
	return s.repo.DeletePriceCategory(ctx, id)
}

func (s *contentService) CreateCafeItem(ctx context.Context, item domain.CafeItem) (*domain.CafeItem, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := s.repo.CreateCafeItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *contentService) UpdateCafeItem(ctx context.Context, item domain.CafeItem) error {
	return s.repo.UpdateCafeItem(ctx, item)
}

func (s *contentService) DeleteCafeItem(ctx context.Context, id string) error {
	return s.repo.DeleteCafeItem(ctx, id)
}

func (s *contentService) SaveContacts(ctx context.Context, contacts domain.ContactInfo) error {
	return s.repo.UpsertContacts(ctx, contacts)
}

func (s *contentService) CreateOffer(ctx context.Context, offer domain.OfferItem) (*domain.OfferItem, error) {
	if strings.TrimSpace(offer.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if err := s.repo.CreateOffer(ctx, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

func (s *contentService) UpdateOffer(ctx context.Context, offer domain.OfferItem) error {
	return s.repo.UpdateOffer(ctx, offer)
}

func (s *contentService) DeleteOffer(ctx context.Context, id string) error {
	return s.repo.DeleteOffer(ctx, id)
}
