package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

const topReferrerLimit = 10

// StatsService records page views and computes the operator dashboard.
type StatsService interface {
	RecordView(ctx context.Context, event domain.StatisticsEvent) error
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}

// NewStatsService builds the aggregator. Rollups are recomputed over the full
// event log on every Dashboard call; with growing traffic this becomes the
// first scaling limit of the API. Do not bolt a cache on here without
// accepting the staleness it introduces under concurrent writes.
func NewStatsService(stats StatsRepository, orders OrderRepository, location *time.Location) StatsService {
	if location == nil {
		location = time.UTC
	}
	return &statsService{stats: stats, orders: orders, location: location}
}

type statsService struct {
	stats    StatsRepository
	orders   OrderRepository
	location *time.Location
}

// RecordView unconditionally appends one page-view event. Deduplication and
// bot filtering are deliberately absent; excluding admin views is the
// caller's job.
func (s *statsService) RecordView(ctx context.Context, event domain.StatisticsEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if err := s.stats.Insert(ctx, event); err != nil {
		return fmt.Errorf("record view for %q: %w", event.Path, err)
	}
	return nil
}

// Dashboard derives every rollup by grouping and counting raw records.
// A unique visitor is a distinct ip string, including the empty string when
// the proxy header was absent; that imprecision is part of the contract.
func (s *statsService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	events, err := s.stats.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load statistics events: %w", err)
	}
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	ips := make(map[string]struct{})
	byPath := make(map[string]int)
	byDay := make(map[string]int)
	byReferrer := make(map[string]int)
	for _, ev := range events {
		ips[ev.IP] = struct{}{}
		byPath[ev.Path]++
		byDay[s.day(ev.Timestamp)]++
		if ref := strings.TrimSpace(ev.Referrer); ref != "" {
			byReferrer[ref]++
		}
	}

	ordersByDay := make(map[string]int)
	for _, order := range orders {
		ordersByDay[s.day(order.CreatedAt)]++
	}

	return &domain.Dashboard{
		TotalPageViews:  len(events),
		UniqueVisitors:  len(ips),
		PageViewsByPath: pathCounts(byPath),
		PageViewsPerDay: dayCounts(byDay),
		TopReferrers:    referrerCounts(byReferrer, topReferrerLimit),
		BookingsTotal:   len(orders),
		BookingsPerDay:  dayCounts(ordersByDay),
	}, nil
}

func (s *statsService) day(t time.Time) string {
	return t.In(s.location).Format("2006-01-02")
}

func pathCounts(counts map[string]int) []domain.PathCount {
	out := make([]domain.PathCount, 0, len(counts))
	for path, count := range counts {
		out = append(out, domain.PathCount{Path: path, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})
	return out
}

func dayCounts(counts map[string]int) []domain.DayCount {
	out := make([]domain.DayCount, 0, len(counts))
	for day, count := range counts {
		out = append(out, domain.DayCount{Day: day, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

func referrerCounts(counts map[string]int, limit int) []domain.ReferrerCount {
	out := make([]domain.ReferrerCount, 0, len(counts))
	for referrer, count := range counts {
		out = append(out, domain.ReferrerCount{Referrer: referrer, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Referrer < out[j].Referrer
		}
		return out[i].Count > out[j].Count
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
