package domain

import "time"

// NewsType distinguishes regular articles from announced events.
type NewsType string

const (
	NewsTypeNews  NewsType = "news"
	NewsTypeEvent NewsType = "event"
)

// NewsItem represents a published article or event, optionally carrying a survey.
type NewsItem struct {
	ID      string
	Title   string
	Content string
	Date    time.Time
	Type    NewsType
	Images  []string
	Survey  *Survey
}

// SurveyVariant is decided once at read time from the survey shape.
type SurveyVariant int

const (
	SurveyVariantNone SurveyVariant = iota
	SurveyVariantChoice
	SurveyVariantFreeForm
)

// Survey is embedded into a NewsItem. It is either choice-based (Options)
// or free-form (Fields); the two never coexist on one item.
type Survey struct {
	Question      string
	EndDate       time.Time
	AllowMultiple bool
	Options       []SurveyOption
	Fields        []SurveyField
	Results       *SurveyResults
}

// SurveyOption is one selectable answer of a choice-based survey.
type SurveyOption struct {
	ID   string
	Text string
}

// SurveyField is one labelled text input of a free-form survey.
type SurveyField struct {
	ID    string
	Label string
}

// SurveyResults keeps the running tally of a choice-based survey.
// It is mutated only through atomic increments, never edited directly.
type SurveyResults struct {
	TotalVotes    int
	OptionResults map[string]int
	LastVoteAt    *time.Time
}

// Variant classifies the survey shape.
func (s *Survey) Variant() SurveyVariant {
	switch {
	case s == nil:
		return SurveyVariantNone
	case len(s.Options) > 0:
		return SurveyVariantChoice
	case len(s.Fields) > 0:
		return SurveyVariantFreeForm
	default:
		return SurveyVariantNone
	}
}

// HasOption reports whether id is a valid option of the survey.
func (s *Survey) HasOption(id string) bool {
	for _, opt := range s.Options {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// OptionTexts resolves option ids to their display texts, skipping unknown ids.
func (s *Survey) OptionTexts(ids []string) []string {
	texts := make([]string, 0, len(ids))
	for _, opt := range s.Options {
		for _, id := range ids {
			if opt.ID == id {
				texts = append(texts, opt.Text)
				break
			}
		}
	}
	return texts
}

// Expired reports whether the survey no longer accepts votes at the given time.
func (s *Survey) Expired(now time.Time) bool {
	return !s.EndDate.After(now)
}

// SurveyVote is the immutable audit record of one voting event.
// There is deliberately no voter identity on it; repeat voting is allowed.
type SurveyVote struct {
	ID        string
	NewsID    string
	OptionIDs []string
	VotedAt   time.Time
}

// SurveyResponse is the immutable record of one free-form submission.
// Empty answers are stored verbatim.
type SurveyResponse struct {
	ID        string
	NewsID    string
	Answers   map[string]string
	CreatedAt time.Time
}

// ResponseView is a SurveyResponse enriched at read time with details of
// the parent news item.
type ResponseView struct {
	SurveyResponse
	NewsTitle      string
	SurveyQuestion string
	SurveyFields   []SurveyField
}
