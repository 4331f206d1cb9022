package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

type fakeContentRepo struct {
	home       *domain.HomeData
	cards      []domain.FeatureCard
	prices     []domain.PriceItem
	categories []domain.PriceCategory
	cafe       []domain.CafeItem
	contacts   *domain.ContactInfo
	offers     []domain.OfferItem
}

func (f *fakeContentRepo) Home(ctx context.Context) (*domain.HomeData, error) { return f.home, nil }
func (f *fakeContentRepo) FeatureCards(ctx context.Context) ([]domain.FeatureCard, error) {
	return f.cards, nil
}
func (f *fakeContentRepo) Prices(ctx context.Context) ([]domain.PriceItem, error) {
	return f.prices, nil
}
func (f *fakeContentRepo) PriceCategories(ctx context.Context) ([]domain.PriceCategory, error) {
	return f.categories, nil
}
func (f *fakeContentRepo) CafeItems(ctx context.Context) ([]domain.CafeItem, error) {
	return f.cafe, nil
}
func (f *fakeContentRepo) Contacts(ctx context.Context) (*domain.ContactInfo, error) {
	return f.contacts, nil
}
func (f *fakeContentRepo) Offers(ctx context.Context) ([]domain.OfferItem, error) {
	return f.offers, nil
}

func ptrTime(t time.Time) *time.Time { return &t }

// TestNews_NewestFirst verifies articles come back sorted by date descending.
func TestNews_NewestFirst(t *testing.T) {
	now := time.Now().UTC()
	news := &fakeNewsRepo{items: map[string]*domain.NewsItem{
		"old": {ID: "old", Date: now.AddDate(0, 0, -5)},
		"new": {ID: "new", Date: now},
		"mid": {ID: "mid", Date: now.AddDate(0, 0, -2)},
	}}
	svc := NewContentQueryService(&fakeContentRepo{}, news)

	items, err := svc.News(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "new", items[0].ID)
	assert.Equal(t, "mid", items[1].ID)
	assert.Equal(t, "old", items[2].ID)
}

// TestPriceCategories_OrderedByRank verifies categories sort by their
// explicit order field.
func TestPriceCategories_OrderedByRank(t *testing.T) {
	repo := &fakeContentRepo{categories: []domain.PriceCategory{
		{Key: "group", Order: 3},
		{Key: "kids", Order: 1},
		{Key: "adult", Order: 2},
	}}
	svc := NewContentQueryService(repo, &fakeNewsRepo{})

	categories, err := svc.PriceCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "kids", categories[0].Key)
	assert.Equal(t, "adult", categories[1].Key)
	assert.Equal(t, "group", categories[2].Key)
}

// TestActiveOffers_FiltersWindow verifies inactive and out-of-window offers
// are excluded and the rest sort by priority.
func TestActiveOffers_FiltersWindow(t *testing.T) {
	now := time.Now().UTC()
	repo := &fakeContentRepo{offers: []domain.OfferItem{
		{ID: "inactive", Active: false, Priority: 100},
		{ID: "future", Active: true, StartDate: ptrTime(now.Add(time.Hour)), Priority: 90},
		{ID: "expired", Active: true, EndDate: ptrTime(now.Add(-time.Hour)), Priority: 80},
		{ID: "low", Active: true, Priority: 1},
		{ID: "high", Active: true, Priority: 9},
	}}
	svc := NewContentQueryService(repo, &fakeNewsRepo{})

	offers, err := svc.ActiveOffers(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "high", offers[0].ID)
	assert.Equal(t, "low", offers[1].ID)
}

// TestAllOffers_IncludesHidden verifies the admin listing keeps inactive and
// out-of-window offers.
func TestAllOffers_IncludesHidden(t *testing.T) {
	now := time.Now().UTC()
	repo := &fakeContentRepo{offers: []domain.OfferItem{
		{ID: "inactive", Active: false, Priority: 5},
		{ID: "future", Active: true, StartDate: ptrTime(now.Add(time.Hour)), Priority: 3},
	}}
	svc := NewContentQueryService(repo, &fakeNewsRepo{})

	offers, err := svc.AllOffers(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "inactive", offers[0].ID)
}

// TestHome_ReturnsCards verifies the home query bundles feature cards.
func TestHome_ReturnsCards(t *testing.T) {
	repo := &fakeContentRepo{
		home:  &domain.HomeData{Title: "Жирафик"},
		cards: []domain.FeatureCard{{Title: "Траси"}},
	}
	svc := NewContentQueryService(repo, &fakeNewsRepo{})

	home, cards, err := svc.Home(context.Background())
	require.NoError(t, err)
	require.NotNil(t, home)
	assert.Equal(t, "Жирафик", home.Title)
	require.Len(t, cards, 1)
}
