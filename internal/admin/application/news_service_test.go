package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

type fakeAdminNewsRepo struct {
	created []domain.NewsItem
	updated []domain.NewsItem
	deleted []string
}

func (f *fakeAdminNewsRepo) Create(ctx context.Context, item *domain.NewsItem) error {
	item.ID = "generated-id"
	f.created = append(f.created, *item)
	return nil
}

func (f *fakeAdminNewsRepo) Update(ctx context.Context, item domain.NewsItem) error {
	f.updated = append(f.updated, item)
	return nil
}

func (f *fakeAdminNewsRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

// TestNewsCreate_Defaults verifies type and date are defaulted when omitted.
func TestNewsCreate_Defaults(t *testing.T) {
	repo := &fakeAdminNewsRepo{}
	svc := NewNewsService(repo)

	created, err := svc.Create(context.Background(), domain.NewsItem{Title: "Новина"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "generated-id", created.ID)
	assert.Equal(t, domain.NewsTypeNews, created.Type)
	assert.False(t, created.Date.IsZero())
}

// TestNewsCreate_RequiresTitle verifies blank titles are rejected.
func TestNewsCreate_RequiresTitle(t *testing.T) {
	svc := NewNewsService(&fakeAdminNewsRepo{})

	_, err := svc.Create(context.Background(), domain.NewsItem{Title: "   "})
	require.ErrorIs(t, err, ErrInvalidInput)
}

// TestNewsCreate_AssignsOptionIDs verifies new survey options and fields get
// generated ids while existing ids are preserved.
func TestNewsCreate_AssignsOptionIDs(t *testing.T) {
	repo := &fakeAdminNewsRepo{}
	svc := NewNewsService(repo)

	created, err := svc.Create(context.Background(), domain.NewsItem{
		Title: "Опитування",
		Survey: &domain.Survey{
			Question: "Питання",
			EndDate:  time.Now().Add(time.Hour),
			Options: []domain.SurveyOption{
				{ID: "keep-me", Text: "А"},
				{Text: "Б"},
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, created.Survey)
	assert.Equal(t, "keep-me", created.Survey.Options[0].ID)
	assert.NotEmpty(t, created.Survey.Options[1].ID)
}

// TestNewsCreate_RejectsMixedSurvey verifies a survey with both options and
// fields is invalid.
func TestNewsCreate_RejectsMixedSurvey(t *testing.T) {
	svc := NewNewsService(&fakeAdminNewsRepo{})

	_, err := svc.Create(context.Background(), domain.NewsItem{
		Title: "Опитування",
		Survey: &domain.Survey{
			Options: []domain.SurveyOption{{ID: "o1", Text: "А"}},
			Fields:  []domain.SurveyField{{ID: "f1", Label: "Б"}},
		},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

// TestNewsUpdate_StripsResults verifies admin payloads can never write the
// vote tally.
func TestNewsUpdate_StripsResults(t *testing.T) {
	repo := &fakeAdminNewsRepo{}
	svc := NewNewsService(repo)

	err := svc.Update(context.Background(), domain.NewsItem{
		ID:    "n1",
		Title: "Оновлення",
		Survey: &domain.Survey{
			Question: "Питання",
			Options:  []domain.SurveyOption{{ID: "o1", Text: "А"}},
			Results:  &domain.SurveyResults{TotalVotes: 999},
		},
	})
	require.NoError(t, err)
	require.Len(t, repo.updated, 1)
	assert.Nil(t, repo.updated[0].Survey.Results)
}

// TestNewsUpdate_RequiresID verifies updates without an id are rejected.
func TestNewsUpdate_RequiresID(t *testing.T) {
	svc := NewNewsService(&fakeAdminNewsRepo{})

	err := svc.Update(context.Background(), domain.NewsItem{Title: "Без id"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

// TestNewsDelete verifies deletion reaches the store.
func TestNewsDelete(t *testing.T) {
	repo := &fakeAdminNewsRepo{}
	svc := NewNewsService(repo)

	require.NoError(t, svc.Delete(context.Background(), "n1"))
	assert.Equal(t, []string{"n1"}, repo.deleted)
}
