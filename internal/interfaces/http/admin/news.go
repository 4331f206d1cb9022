package admin

import (
	"net/http"
	"time"

	"github.com/zhyrafyk/park-services/api/internal/interfaces/http/common"
	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

type surveyOptionPayload struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type surveyFieldPayload struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// surveyPayload deliberately has no results field: the tally cannot be
// written through the admin API.
type surveyPayload struct {
	Question      string                `json:"question"`
	EndDate       time.Time             `json:"endDate"`
	AllowMultiple bool                  `json:"allowMultiple"`
	Options       []surveyOptionPayload `json:"options,omitempty"`
	Fields        []surveyFieldPayload  `json:"fields,omitempty"`
}

type newsPayload struct {
	ID      string         `json:"id,omitempty"`
	Title   string         `json:"title"`
	Content string         `json:"content"`
	Date    time.Time      `json:"date"`
	Type    string         `json:"type"`
	Images  []string       `json:"images,omitempty"`
	Survey  *surveyPayload `json:"survey,omitempty"`
}

func (p newsPayload) toDomain() domain.NewsItem {
	item := domain.NewsItem{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
		Date:    p.Date,
		Type:    domain.NewsType(p.Type),
		Images:  p.Images,
	}
	if p.Survey != nil {
		survey := &domain.Survey{
			Question:      p.Survey.Question,
			EndDate:       p.Survey.EndDate,
			AllowMultiple: p.Survey.AllowMultiple,
		}
		for _, opt := range p.Survey.Options {
			survey.Options = append(survey.Options, domain.SurveyOption{ID: opt.ID, Text: opt.Text})
		}
		for _, field := range p.Survey.Fields {
			survey.Fields = append(survey.Fields, domain.SurveyField{ID: field.ID, Label: field.Label})
		}
		item.Survey = survey
	}
	return item
}

func (h *Handler) newsListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.queries.News(r.Context())
		if err != nil {
			h.logger.Printf("admin news list failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}
		views := make([]newsItemView, 0, len(items))
		for _, item := range items {
			views = append(views, mapNewsItemView(item))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, views)
	}
}

func (h *Handler) newsCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload newsPayload
		if !h.decodeBody(w, r, &payload) {
			return
		}
		created, err := h.news.Create(r.Context(), payload.toDomain())
		id := ""
		if created != nil {
			id = created.ID
		}
		h.writeCreated(w, "news create", id, err)
	}
}

func (h *Handler) newsUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload newsPayload
		if !h.decodeBody(w, r, &payload) {
			return
		}
		h.writeMutationResult(w, "news update", h.news.Update(r.Context(), payload.toDomain()))
	}
}

func (h *Handler) newsDeleteHandler() http.HandlerFunc {
	return h.deleteByBodyID("news delete", func(r *http.Request, id string) error {
		return h.news.Delete(r.Context(), id)
	})
}
