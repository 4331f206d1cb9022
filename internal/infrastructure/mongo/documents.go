package mongo

import (
	"time"

	"github.com/zhyrafyk/park-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsDocument is the MongoDB schema of an article/event with its optional
// embedded survey.
type NewsDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Title   string             `bson:"title"`
	Content string             `bson:"content"`
	Date    time.Time          `bson:"date"`
	Type    string             `bson:"type"`
	Images  []string           `bson:"images,omitempty"`
	Survey  *SurveyDocument    `bson:"survey,omitempty"`
}

// SurveyDocument is the embedded survey definition plus its running tally.
type SurveyDocument struct {
	Question      string                 `bson:"question,omitempty"`
	EndDate       time.Time              `bson:"endDate"`
	AllowMultiple bool                   `bson:"allowMultiple,omitempty"`
	Options       []SurveyOptionDocument `bson:"options,omitempty"`
	Fields        []SurveyFieldDocument  `bson:"fields,omitempty"`
	Results       *SurveyResultsDocument `bson:"results,omitempty"`
}

// SurveyOptionDocument is one choice of a choice-based survey.
type SurveyOptionDocument struct {
	ID   string `bson:"id"`
	Text string `bson:"text"`
}

// SurveyFieldDocument is one labelled input of a free-form survey.
type SurveyFieldDocument struct {
	ID    string `bson:"id"`
	Label string `bson:"label"`
}

// SurveyResultsDocument carries the atomic counters of the tally.
type SurveyResultsDocument struct {
	TotalVotes    int            `bson:"totalVotes"`
	OptionResults map[string]int `bson:"optionResults,omitempty"`
	LastVoteAt    *time.Time     `bson:"lastVoteAt,omitempty"`
}

// VoteDocument is the immutable audit record of one vote.
type VoteDocument struct {
	ID        string    `bson:"_id"`
	NewsID    string    `bson:"newsId"`
	OptionIDs []string  `bson:"optionIds"`
	VotedAt   time.Time `bson:"votedAt"`
}

// ResponseDocument is the immutable audit record of one free-form submission.
type ResponseDocument struct {
	ID        string            `bson:"_id"`
	NewsID    string            `bson:"newsId"`
	Answers   map[string]string `bson:"answers"`
	CreatedAt time.Time         `bson:"createdAt"`
}

// StatisticsDocument is one append-only page-view event.
type StatisticsDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Path      string             `bson:"path"`
	UserAgent string             `bson:"userAgent,omitempty"`
	IP        string             `bson:"ip,omitempty"`
	Referrer  string             `bson:"referrer,omitempty"`
	Screen    string             `bson:"screen,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`
}

// OrderDocument is one booking request.
type OrderDocument struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	CustomerName string              `bson:"customerName"`
	Phone        string              `bson:"phone"`
	Date         string              `bson:"date,omitempty"`
	Time         string              `bson:"time,omitempty"`
	Notes        string              `bson:"notes,omitempty"`
	Items        []OrderItemDocument `bson:"items,omitempty"`
	Status       string              `bson:"status"`
	CreatedAt    time.Time           `bson:"createdAt"`
}

// OrderItemDocument is one requested service line.
type OrderItemDocument struct {
	ServiceID   string `bson:"serviceId,omitempty"`
	ServiceName string `bson:"serviceName"`
	Quantity    int    `bson:"quantity,omitempty"`
	Price       string `bson:"price,omitempty"`
}

// HomeDocument is the landing-page singleton.
type HomeDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Features     []string           `bson:"features,omitempty"`
	Images       []string           `bson:"images,omitempty"`
	WorkingHours string             `bson:"workingHours,omitempty"`
	Address      string             `bson:"address,omitempty"`
	Phone        string             `bson:"phone,omitempty"`
}

// FeatureDocument is one home-page feature card.
type FeatureDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
}

// PriceDocument is one priced service or package.
type PriceDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Price       string             `bson:"price"`
	Description string             `bson:"description,omitempty"`
	Duration    string             `bson:"duration,omitempty"`
	Category    string             `bson:"category,omitempty"`
	Video       string             `bson:"video,omitempty"`
}

// PriceCategoryDocument groups prices on the pricing page.
type PriceCategoryDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Key   string             `bson:"key"`
	Label string             `bson:"label"`
	Icon  string             `bson:"icon,omitempty"`
	Order int                `bson:"order"`
}

// CafeDocument is one cafe menu entry.
type CafeDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Image       string             `bson:"image,omitempty"`
	Category    string             `bson:"category,omitempty"`
}

// ContactDocument is the contact-page singleton.
type ContactDocument struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	Phone        string              `bson:"phone,omitempty"`
	Email        string              `bson:"email,omitempty"`
	Address      string              `bson:"address,omitempty"`
	WorkingHours string              `bson:"workingHours,omitempty"`
	SocialMedia  SocialLinksDocument `bson:"socialMedia,omitempty"`
}

// SocialLinksDocument holds optional social URLs.
type SocialLinksDocument struct {
	Facebook  string `bson:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty"`
	Telegram  string `bson:"telegram,omitempty"`
}

// OfferDocument is one promotional offer. Active is a pointer so documents
// written before the flag existed keep counting as active.
type OfferDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Active      *bool              `bson:"active,omitempty"`
	StartDate   *time.Time         `bson:"startDate,omitempty"`
	EndDate     *time.Time         `bson:"endDate,omitempty"`
	Priority    int                `bson:"priority,omitempty"`
	Recommended bool               `bson:"recommended,omitempty"`
	Icon        string             `bson:"icon,omitempty"`
}

func mapNewsDocument(doc NewsDocument) domain.NewsItem {
	return domain.NewsItem{
		ID:      doc.ID.Hex(),
		Title:   doc.Title,
		Content: doc.Content,
		Date:    doc.Date,
		Type:    domain.NewsType(doc.Type),
		Images:  append([]string{}, doc.Images...),
		Survey:  mapSurveyDocument(doc.Survey),
	}
}

func mapSurveyDocument(doc *SurveyDocument) *domain.Survey {
	if doc == nil {
		return nil
	}
	survey := &domain.Survey{
		Question:      doc.Question,
		EndDate:       doc.EndDate,
		AllowMultiple: doc.AllowMultiple,
	}
	for _, opt := range doc.Options {
		survey.Options = append(survey.Options, domain.SurveyOption{ID: opt.ID, Text: opt.Text})
	}
	for _, field := range doc.Fields {
		survey.Fields = append(survey.Fields, domain.SurveyField{ID: field.ID, Label: field.Label})
	}
	if doc.Results != nil {
		survey.Results = mapResultsDocument(doc.Results)
	}
	return survey
}

func mapResultsDocument(doc *SurveyResultsDocument) *domain.SurveyResults {
	results := &domain.SurveyResults{
		TotalVotes:    doc.TotalVotes,
		OptionResults: map[string]int{},
		LastVoteAt:    doc.LastVoteAt,
	}
	for id, count := range doc.OptionResults {
		results.OptionResults[id] = count
	}
	return results
}

func surveyToDocument(survey *domain.Survey) *SurveyDocument {
	if survey == nil {
		return nil
	}
	doc := &SurveyDocument{
		Question:      survey.Question,
		EndDate:       survey.EndDate,
		AllowMultiple: survey.AllowMultiple,
	}
	for _, opt := range survey.Options {
		doc.Options = append(doc.Options, SurveyOptionDocument{ID: opt.ID, Text: opt.Text})
	}
	for _, field := range survey.Fields {
		doc.Fields = append(doc.Fields, SurveyFieldDocument{ID: field.ID, Label: field.Label})
	}
	return doc
}

func mapOrderDocument(doc OrderDocument) domain.Order {
	order := domain.Order{
		ID:           doc.ID.Hex(),
		CustomerName: doc.CustomerName,
		Phone:        doc.Phone,
		Date:         doc.Date,
		Time:         doc.Time,
		Notes:        doc.Notes,
		Status:       domain.OrderStatus(doc.Status),
		CreatedAt:    doc.CreatedAt,
	}
	for _, item := range doc.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ServiceID:   item.ServiceID,
			ServiceName: item.ServiceName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return order
}

func orderItemsToDocuments(items []domain.OrderItem) []OrderItemDocument {
	docs := make([]OrderItemDocument, 0, len(items))
	for _, item := range items {
		docs = append(docs, OrderItemDocument{
			ServiceID:   item.ServiceID,
			ServiceName: item.ServiceName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return docs
}
