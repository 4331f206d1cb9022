package public

import (
	"time"

	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

type voteRequest struct {
	NewsID    string   `json:"newsId"`
	OptionIDs []string `json:"optionIds"`
}

type submitRequest struct {
	NewsID  string            `json:"newsId"`
	Answers map[string]string `json:"answers"`
}

type statsRequest struct {
	Path     string `json:"path"`
	Referrer string `json:"referrer,omitempty"`
	Screen   string `json:"screen,omitempty"`
}

type orderItemRequest struct {
	ServiceID   string `json:"serviceId,omitempty"`
	ServiceName string `json:"serviceName"`
	Quantity    int    `json:"quantity,omitempty"`
	Price       string `json:"price,omitempty"`
}

type orderRequest struct {
	CustomerName string             `json:"customerName"`
	Phone        string             `json:"phone"`
	Date         string             `json:"date,omitempty"`
	Time         string             `json:"time,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	Items        []orderItemRequest `json:"items,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

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
	Question      string             `json:"question,omitempty"`
	EndDate       time.Time          `json:"endDate"`
	AllowMultiple bool               `json:"allowMultiple,omitempty"`
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

type homeView struct {
	ID           string            `json:"id,omitempty"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Features     []string          `json:"features"`
	FeatureCards []featureCardView `json:"featureCards"`
	Images       []string          `json:"images"`
	WorkingHours string            `json:"workingHours"`
	Address      string            `json:"address"`
	Phone        string            `json:"phone"`
}

type featureCardView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type priceItemView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Duration    string `json:"duration,omitempty"`
	Category    string `json:"category"`
	Video       string `json:"video,omitempty"`
}

type priceCategoryView struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
	Order int    `json:"order"`
}

type cafeItemView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category"`
}

type contactsView struct {
	ID           string          `json:"id,omitempty"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	Address      string          `json:"address"`
	WorkingHours string          `json:"workingHours"`
	SocialMedia  socialLinksView `json:"socialMedia"`
}

type socialLinksView struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Telegram  string `json:"telegram,omitempty"`
}

type offerView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Active      bool       `json:"active"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Priority    int        `json:"priority"`
	Recommended bool       `json:"recommended,omitempty"`
	Icon        string     `json:"icon,omitempty"`
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
	if item.Survey != nil {
		view.Survey = mapSurveyView(item.Survey)
	}
	return view
}

func mapSurveyView(survey *domain.Survey) *surveyView {
	view := &surveyView{
		Question:      survey.Question,
		EndDate:       survey.EndDate,
		AllowMultiple: survey.AllowMultiple,
	}
	for _, opt := range survey.Options {
		view.Options = append(view.Options, surveyOptionView{ID: opt.ID, Text: opt.Text})
	}
	for _, field := range survey.Fields {
		view.Fields = append(view.Fields, surveyFieldView{ID: field.ID, Label: field.Label})
	}
	if survey.Results != nil {
		view.Results = mapResultsView(survey.Results)
	}
	return view
}

func mapResultsView(results *domain.SurveyResults) *surveyResultsView {
	view := &surveyResultsView{
		TotalVotes:    results.TotalVotes,
		OptionResults: results.OptionResults,
		LastVoteAt:    results.LastVoteAt,
	}
	if view.OptionResults == nil {
		view.OptionResults = map[string]int{}
	}
	return view
}

func mapOfferView(offer domain.OfferItem) offerView {
	return offerView{
		ID:          offer.ID,
		Title:       offer.Title,
		Description: offer.Description,
		Active:      offer.Active,
		StartDate:   offer.StartDate,
		EndDate:     offer.EndDate,
		Priority:    offer.Priority,
		Recommended: offer.Recommended,
		Icon:        offer.Icon,
	}
}
