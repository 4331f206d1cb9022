package admin

import (
	"time"

	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

// Admin views expose the full documents, including survey tallies and
// raw booking records, so the panel can render and edit everything.

type surveyOptionView struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type surveyFieldView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type surveyResultsView struct {
	TotalVotes    int            `json:"totalVotes"`
	OptionResults map[string]int `json:"optionResults"`
	LastVoteAt    *time.Time     `json:"lastVoteAt"`
}

type surveyView struct {
	Question      string             `json:"question"`
	EndDate       time.Time          `json:"endDate"`
	AllowMultiple bool               `json:"allowMultiple"`
	Options       []surveyOptionView `json:"options,omitempty"`
	Fields        []surveyFieldView  `json:"fields,omitempty"`
	Results       *surveyResultsView `json:"results,omitempty"`
}

type newsItemView struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Content string      `json:"content"`
	Date    time.Time   `json:"date"`
	Type    string      `json:"type"`
	Images  []string    `json:"images,omitempty"`
	Survey  *surveyView `json:"survey,omitempty"`
}

func mapNewsItemView(item domain.NewsItem) newsItemView {
	view := newsItemView{
		ID:      item.ID,
		Title:   item.Title,
		Content: item.Content,
		Date:    item.Date,
		Type:    string(item.Type),
		Images:  item.Images,
	}
	if survey := item.Survey; survey != nil {
		sv := &surveyView{
			Question:      survey.Question,
			EndDate:       survey.EndDate,
			AllowMultiple: survey.AllowMultiple,
		}
		for _, opt := range survey.Options {
			sv.Options = append(sv.Options, surveyOptionView{ID: opt.ID, Text: opt.Text})
		}
		for _, field := range survey.Fields {
			sv.Fields = append(sv.Fields, surveyFieldView{ID: field.ID, Label: field.Label})
		}
		if results := survey.Results; results != nil {
			optionResults := results.OptionResults
			if optionResults == nil {
				optionResults = map[string]int{}
			}
			sv.Results = &surveyResultsView{
				TotalVotes:    results.TotalVotes,
				OptionResults: optionResults,
				LastVoteAt:    results.LastVoteAt,
			}
		}
		view.Survey = sv
	}
	return view
}

type responseView struct {
	ID             string            `json:"id"`
	NewsID         string            `json:"newsId"`
	NewsTitle      string            `json:"newsTitle"`
	SurveyQuestion string            `json:"surveyQuestion"`
	SurveyFields   []surveyFieldView `json:"surveyFields,omitempty"`
	Answers        map[string]string `json:"answers"`
	CreatedAt      time.Time         `json:"createdAt"`
}

func mapResponseView(r domain.ResponseView) responseView {
	answers := r.Answers
	if answers == nil {
		answers = map[string]string{}
	}
	view := responseView{
		ID:             r.ID,
		NewsID:         r.NewsID,
		NewsTitle:      r.NewsTitle,
		SurveyQuestion: r.SurveyQuestion,
		Answers:        answers,
		CreatedAt:      r.CreatedAt,
	}
	for _, field := range r.SurveyFields {
		view.SurveyFields = append(view.SurveyFields, surveyFieldView{ID: field.ID, Label: field.Label})
	}
	return view
}

type orderItemView struct {
	ServiceID   string `json:"serviceId,omitempty"`
	ServiceName string `json:"serviceName"`
	Quantity    int    `json:"quantity,omitempty"`
	Price       string `json:"price,omitempty"`
}

type orderView struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Phone        string          `json:"phone"`
	Date         string          `json:"date,omitempty"`
	Time         string          `json:"time,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	Items        []orderItemView `json:"items,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func mapOrderView(order domain.Order) orderView {
	view := orderView{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		Date:         order.Date,
		Time:         order.Time,
		Notes:        order.Notes,
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt,
	}
	for _, item := range order.Items {
		view.Items = append(view.Items, orderItemView{
			ServiceID:   item.ServiceID,
			ServiceName: item.ServiceName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return view
}
