package application

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

// SurveyService accepts votes and free-form submissions against a news item's
// embedded survey and exposes the running tally.
type SurveyService interface {
	CastVote(ctx context.Context, newsID string, optionIDs []string) error
	SubmitFreeForm(ctx context.Context, newsID string, answers map[string]string) error
	Results(ctx context.Context, newsID string) (*domain.SurveyResults, error)
}

// NewSurveyService wires the survey engine to its store and the notification relay.
func NewSurveyService(repo NewsRepository, notifier Notifier, logger *log.Logger) SurveyService {
	return &surveyService{repo: repo, notifier: notifier, logger: logger}
}

type surveyService struct {
	repo     NewsRepository
	notifier Notifier
	logger   *log.Logger
}

// CastVote validates and records one vote for a choice-based survey.
//
// The tally increment is a single atomic update and is the semantically
// primary write. The audit record is appended afterwards without a
// cross-document transaction: if the process dies between the two writes the
// audit log and the tally diverge. That window is accepted and intentional.
func (s *surveyService) CastVote(ctx context.Context, newsID string, optionIDs []string) error {
	if len(optionIDs) == 0 {
		return ErrInvalidOption
	}

	now := time.Now().UTC()
	item, err := s.repo.FindWithActiveSurvey(ctx, newsID, now)
	if err != nil {
		return fmt.Errorf("load survey %s: %w", newsID, err)
	}
	if item == nil || item.Survey.Variant() != domain.SurveyVariantChoice {
		return ErrSurveyNotFound
	}
	survey := item.Survey

	for _, id := range optionIDs {
		if !survey.HasOption(id) {
			return ErrInvalidOption
		}
	}
	if !survey.AllowMultiple && len(optionIDs) > 1 {
		return ErrMultipleNotAllowed
	}

	if err := s.repo.ApplyVote(ctx, newsID, optionIDs, now); err != nil {
		return fmt.Errorf("apply vote for %s: %w", newsID, err)
	}

	vote := domain.SurveyVote{
		ID:        uuid.NewString(),
		NewsID:    newsID,
		OptionIDs: append([]string{}, optionIDs...),
		VotedAt:   now,
	}
	if err := s.repo.InsertVote(ctx, vote); err != nil {
		// Tally already committed; the vote stands even without its audit record.
		s.logger.Printf("survey %s: audit vote insert failed: %v", newsID, err)
	}

	s.notifyVote(ctx, item, optionIDs)
	return nil
}

func (s *surveyService) notifyVote(ctx context.Context, item *domain.NewsItem, optionIDs []string) {
	total := ""
	if results, err := s.repo.SurveyResults(ctx, item.ID); err == nil && results != nil {
		total = fmt.Sprintf("%d", results.TotalVotes)
	}

	lines := []string{
		"🔔 Новий голос в опитуванні",
		"Тема: " + orDash(item.Title),
		"Питання: " + item.Survey.Question,
		"Вибрано: " + strings.Join(item.Survey.OptionTexts(optionIDs), ", "),
		"Всього голосів: " + total,
	}
	s.notifier.Dispatch(strings.Join(lines, "\n"))
}

// SubmitFreeForm appends one free-form submission. Partial and empty answers
// are accepted as-is; tallies belong to choice surveys only and stay untouched.
func (s *surveyService) SubmitFreeForm(ctx context.Context, newsID string, answers map[string]string) error {
	item, err := s.repo.FindByID(ctx, newsID)
	if err != nil {
		return fmt.Errorf("load news %s: %w", newsID, err)
	}
	if item == nil || item.Survey.Variant() == domain.SurveyVariantNone {
		return ErrSurveyNotFound
	}

	response := domain.SurveyResponse{
		ID:        uuid.NewString(),
		NewsID:    newsID,
		Answers:   answers,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.InsertResponse(ctx, response); err != nil {
		return fmt.Errorf("insert survey response for %s: %w", newsID, err)
	}

	s.notifySubmission(item, answers)
	return nil
}

func (s *surveyService) notifySubmission(item *domain.NewsItem, answers map[string]string) {
	lines := []string{
		"📋 Нова відповідь на опитування",
		"Тема: " + orDash(item.Title),
	}
	if q := item.Survey.Question; q != "" {
		lines = append(lines, "Питання: "+q)
	}
	for _, field := range item.Survey.Fields {
		lines = append(lines, field.Label+": "+answers[field.ID])
	}
	s.notifier.Dispatch(strings.Join(lines, "\n"))
}

// Results returns the read-only tally projection, zeroed when no vote has
// been cast yet.
func (s *surveyService) Results(ctx context.Context, newsID string) (*domain.SurveyResults, error) {
	results, err := s.repo.SurveyResults(ctx, newsID)
	if err != nil {
		return nil, err
	}
	if results == nil {
		return &domain.SurveyResults{OptionResults: map[string]int{}}, nil
	}
	if results.OptionResults == nil {
		results.OptionResults = map[string]int{}
	}
	return results, nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
