package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

type fakeStatsRepo struct {
	events []domain.StatisticsEvent
}

func (f *fakeStatsRepo) Insert(ctx context.Context, event domain.StatisticsEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeStatsRepo) FindAll(ctx context.Context) ([]domain.StatisticsEvent, error) {
	return f.events, nil
}

type fakeOrderRepo struct {
	orders    []domain.Order
	statusLog map[string]domain.OrderStatus
}

func (f *fakeOrderRepo) Insert(ctx context.Context, order *domain.Order) error {
	order.ID = fmt.Sprintf("order-%d", len(f.orders)+1)
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if f.statusLog == nil {
		f.statusLog = map[string]domain.OrderStatus{}
	}
	f.statusLog[id] = status
	return nil
}

func view(path, ip, referrer string, ts time.Time) domain.StatisticsEvent {
	return domain.StatisticsEvent{Path: path, IP: ip, Referrer: referrer, Timestamp: ts}
}

// TestRecordView_DefaultsTimestamp verifies a zero timestamp is filled in.
func TestRecordView_DefaultsTimestamp(t *testing.T) {
	stats := &fakeStatsRepo{}
	svc := NewStatsService(stats, &fakeOrderRepo{}, time.UTC)

	err := svc.RecordView(context.Background(), domain.StatisticsEvent{Path: "/"})
	require.NoError(t, err)
	require.Len(t, stats.events, 1)
	assert.False(t, stats.events[0].Timestamp.IsZero())
}

// TestRecordView_KeepsTimestamp verifies a caller-provided timestamp survives.
func TestRecordView_KeepsTimestamp(t *testing.T) {
	stats := &fakeStatsRepo{}
	svc := NewStatsService(stats, &fakeOrderRepo{}, time.UTC)

	ts := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, svc.RecordView(context.Background(), view("/", "", "", ts)))
	assert.Equal(t, ts, stats.events[0].Timestamp)
}

// TestDashboard_Rollups verifies every rollup over a small fixed event log.
func TestDashboard_Rollups(t *testing.T) {
	day1 := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	stats := &fakeStatsRepo{events: []domain.StatisticsEvent{
		view("/", "1.1.1.1", "https://google.com", day1),
		view("/", "1.1.1.1", "", day1),
		view("/prices", "2.2.2.2", "https://google.com", day2),
	}}
	orders := &fakeOrderRepo{orders: []domain.Order{
		{ID: "o1", CreatedAt: day1},
		{ID: "o2", CreatedAt: day2},
		{ID: "o3", CreatedAt: day2},
	}}
	svc := NewStatsService(stats, orders, time.UTC)

	dashboard, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, dashboard.TotalPageViews)
	assert.Equal(t, 2, dashboard.UniqueVisitors)
	assert.Equal(t, []domain.PathCount{{Path: "/", Count: 2}, {Path: "/prices", Count: 1}}, dashboard.PageViewsByPath)
	assert.Equal(t, []domain.DayCount{{Day: "2026-05-01", Count: 2}, {Day: "2026-05-02", Count: 1}}, dashboard.PageViewsPerDay)
	assert.Equal(t, []domain.ReferrerCount{{Referrer: "https://google.com", Count: 2}}, dashboard.TopReferrers)
	assert.Equal(t, 3, dashboard.BookingsTotal)
	assert.Equal(t, []domain.DayCount{{Day: "2026-05-01", Count: 1}, {Day: "2026-05-02", Count: 2}}, dashboard.BookingsPerDay)
}

// TestDashboard_EmptyIPCountsOnce verifies absent client IPs collapse into a
// single visitor rather than being dropped.
func TestDashboard_EmptyIPCountsOnce(t *testing.T) {
	ts := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	stats := &fakeStatsRepo{events: []domain.StatisticsEvent{
		view("/", "", "", ts),
		view("/prices", "", "", ts),
		view("/cafe", "3.3.3.3", "", ts),
	}}
	svc := NewStatsService(stats, &fakeOrderRepo{}, time.UTC)

	dashboard, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, dashboard.UniqueVisitors)
}

// TestDashboard_ReferrerLimit verifies the referrer table is capped at ten
// entries ordered by count.
func TestDashboard_ReferrerLimit(t *testing.T) {
	ts := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	stats := &fakeStatsRepo{}
	for i := 0; i < 12; i++ {
		ref := fmt.Sprintf("https://ref-%02d.example", i)
		for j := 0; j <= i; j++ {
			stats.events = append(stats.events, view("/", "1.1.1.1", ref, ts))
		}
	}
	svc := NewStatsService(stats, &fakeOrderRepo{}, time.UTC)

	dashboard, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, dashboard.TopReferrers, 10)
	assert.Equal(t, "https://ref-11.example", dashboard.TopReferrers[0].Referrer)
	assert.Equal(t, 12, dashboard.TopReferrers[0].Count)
}

// TestDashboard_DayBucketsUseLocation verifies day bucketing follows the
// configured timezone, not UTC.
func TestDashboard_DayBucketsUseLocation(t *testing.T) {
	kyiv, err := time.LoadLocation("Europe/Kyiv")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// 23:30 UTC on May 1st is already May 2nd in Kyiv.
	ts := time.Date(2026, 5, 1, 23, 30, 0, 0, time.UTC)
	stats := &fakeStatsRepo{events: []domain.StatisticsEvent{view("/", "1.1.1.1", "", ts)}}
	svc := NewStatsService(stats, &fakeOrderRepo{}, kyiv)

	dashboard, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, dashboard.PageViewsPerDay, 1)
	assert.Equal(t, "2026-05-02", dashboard.PageViewsPerDay[0].Day)
}

// TestDashboard_Empty verifies an empty database yields a zeroed dashboard.
func TestDashboard_Empty(t *testing.T) {
	svc := NewStatsService(&fakeStatsRepo{}, &fakeOrderRepo{}, time.UTC)

	dashboard, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, dashboard.TotalPageViews)
	assert.Zero(t, dashboard.UniqueVisitors)
	assert.Empty(t, dashboard.PageViewsByPath)
	assert.Zero(t, dashboard.BookingsTotal)
}
