package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

const missingNewsTitle = "Новина не знайдена"

// SurveyService serves the admin view over free-form survey responses.
type SurveyService interface {
	ListResponses(ctx context.Context, newsID string) ([]domain.ResponseView, error)
}

// NewSurveyService creates the admin response reader.
func NewSurveyService(repo ResponseRepository) SurveyService {
	return &surveyService{repo: repo}
}

type surveyService struct {
	repo ResponseRepository
}

// ListResponses returns responses newest first, enriched with the parent
// item's title, question and field labels. The join happens at read time;
// nothing is stored redundantly on the response.
func (s *surveyService) ListResponses(ctx context.Context, newsID string) ([]domain.ResponseView, error) {
	responses, err := s.repo.FindResponses(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("load survey responses: %w", err)
	}

	idSet := make(map[string]struct{}, len(responses))
	ids := make([]string, 0, len(responses))
	for _, response := range responses {
		if _, seen := idSet[response.NewsID]; seen {
			continue
		}
		idSet[response.NewsID] = struct{}{}
		ids = append(ids, response.NewsID)
	}

	newsByID := make(map[string]domain.NewsItem)
	if len(ids) > 0 {
		items, err := s.repo.FindNewsByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("load news for responses: %w", err)
		}
		for _, item := range items {
			newsByID[item.ID] = item
		}
	}

	views := make([]domain.ResponseView, 0, len(responses))
	for _, response := range responses {
		view := domain.ResponseView{SurveyResponse: response, NewsTitle: missingNewsTitle}
		if item, ok := newsByID[response.NewsID]; ok {
			view.NewsTitle = item.Title
			if item.Survey != nil {
				view.SurveyQuestion = item.Survey.Question
				view.SurveyFields = item.Survey.Fields
			}
		}
		views = append(views, view)
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views, nil
}
