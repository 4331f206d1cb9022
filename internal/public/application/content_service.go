package application

import (
	"context"
	"sort"
	"time"

	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

// ContentQueryService serves the read side of the public site pages.
type ContentQueryService interface {
	Home(ctx context.Context) (*domain.HomeData, []domain.FeatureCard, error)
	News(ctx context.Context) ([]domain.NewsItem, error)
	Prices(ctx context.Context) ([]domain.PriceItem, error)
	PriceCategories(ctx context.Context) ([]domain.PriceCategory, error)
	CafeItems(ctx context.Context) ([]domain.CafeItem, error)
	Contacts(ctx context.Context) (*domain.ContactInfo, error)
	ActiveOffers(ctx context.Context) ([]domain.OfferItem, error)
	AllOffers(ctx context.Context) ([]domain.OfferItem, error)
}

// NewContentQueryService creates the public content reader.
func NewContentQueryService(content ContentRepository, news NewsRepository) ContentQueryService {
	return &contentQueryService{content: content, news: news}
}

type contentQueryService struct {
	content ContentRepository
	news    NewsRepository
}

func (s *contentQueryService) Home(ctx context.Context) (*domain.HomeData, []domain.FeatureCard, error) {
	home, err := s.content.Home(ctx)
	if err != nil {
		return nil, nil, err
	}
	cards, err := s.content.FeatureCards(ctx)
	if err != nil {
		return nil, nil, err
	}
	return home, cards, nil
}

func (s *contentQueryService) News(ctx context.Context) ([]domain.NewsItem, error) {
	items, err := s.news.Find(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	return items, nil
}

func (s *contentQueryService) Prices(ctx context.Context) ([]domain.PriceItem, error) {
	prices, err := s.content.Prices(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(prices, func(i, j int) bool { return prices[i].Category < prices[j].Category })
	return prices, nil
}

func (s *contentQueryService) PriceCategories(ctx context.Context) ([]domain.PriceCategory, error) {
	categories, err := s.content.PriceCategories(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(categories, func(i, j int) bool { return categories[i].Order < categories[j].Order })
	return categories, nil
}

func (s *contentQueryService) CafeItems(ctx context.Context) ([]domain.CafeItem, error) {
	items, err := s.content.CafeItems(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Category < items[j].Category })
	return items, nil
}

func (s *contentQueryService) Contacts(ctx context.Context) (*domain.ContactInfo, error) {
	return s.content.Contacts(ctx)
}

// ActiveOffers filters to the currently visible window and orders by priority.
func (s *contentQueryService) ActiveOffers(ctx context.Context) ([]domain.OfferItem, error) {
	offers, err := s.content.Offers(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	visible := make([]domain.OfferItem, 0, len(offers))
	for _, offer := range offers {
		if offer.Visible(now) {
			visible = append(visible, offer)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].Priority == visible[j].Priority {
			return startOrZero(visible[i]).After(startOrZero(visible[j]))
		}
		return visible[i].Priority > visible[j].Priority
	})
	return visible, nil
}

// AllOffers returns every offer regardless of visibility, for the admin panel.
func (s *contentQueryService) AllOffers(ctx context.Context) ([]domain.OfferItem, error) {
	offers, err := s.content.Offers(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(offers, func(i, j int) bool {
		if offers[i].Priority == offers[j].Priority {
			return startOrZero(offers[i]).After(startOrZero(offers[j]))
		}
		return offers[i].Priority > offers[j].Priority
	})
	return offers, nil
}

func startOrZero(offer domain.OfferItem) time.Time {
	if offer.StartDate == nil {
		return time.Time{}
	}
	return *offer.StartDate
}
