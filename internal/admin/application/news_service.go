package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

// NewsService manages articles and their embedded survey definitions.
type NewsService interface {
	Create(ctx context.Context, item domain.NewsItem) (*domain.NewsItem, error)
	Update(ctx context.Context, item domain.NewsItem) error
	Delete(ctx context.Context, id string) error
}

// NewNewsService creates the admin news service.
func NewNewsService(repo NewsRepository) NewsService {
	return &newsService{repo: repo}
}

type newsService struct {
	repo NewsRepository
}

func (s *newsService) Create(ctx context.Context, item domain.NewsItem) (*domain.NewsItem, error) {
	if strings.TrimSpace(item.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if item.Type == "" {
		item.Type = domain.NewsTypeNews
	}
	if item.Date.IsZero() {
		item.Date = time.Now().UTC()
	}
	if err := normaliseSurvey(item.Survey); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *newsService) Update(ctx context.Context, item domain.NewsItem) error {
	if strings.TrimSpace(item.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if err := normaliseSurvey(item.Survey); err != nil {
		return err
	}
	return s.repo.Update(ctx, item)
}

func (s *newsService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// normaliseSurvey assigns ids to new options/fields and rejects surveys that
// mix the choice and free-form shapes. Results are stripped: the tally only
// ever changes through vote casting.
func normaliseSurvey(survey *domain.Survey) error {
	if survey == nil {
		return nil
	}
	if len(survey.Options) > 0 && len(survey.Fields) > 0 {
		return fmt.Errorf("%w: survey cannot have both options and fields", ErrInvalidInput)
	}
	for i := range survey.Options {
		if survey.Options[i].ID == "" {
			survey.Options[i].ID = uuid.NewString()
		}
	}
	for i := range survey.Fields {
		if survey.Fields[i].ID == "" {
			survey.Fields[i].ID = uuid.NewString()
		}
	}
	survey.Results = nil
	return nil
}
