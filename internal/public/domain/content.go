package domain

import "time"

// HomeData is the singleton document behind the landing page.
type HomeData struct {
	ID           string
	Title        string
	Description  string
	Features     []string
	Images       []string
	WorkingHours string
	Address      string
	Phone        string
}

// FeatureCard is one highlighted capability shown on the home page.
type FeatureCard struct {
	ID          string
	Title       string
	Description string
}

// PriceItem is one priced service or package.
type PriceItem struct {
	ID          string
	Name        string
	Price       string
	Description string
	Duration    string
	Category    string
	Video       string
}

// PriceCategory groups price items on the pricing page.
type PriceCategory struct {
	ID    string
	Key   string
	Label string
	Icon  string
	Order int
}

// CafeItem is one menu entry of the in-park cafe.
type CafeItem struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Image       string
	Category    string
}

// ContactInfo is the singleton contact page document.
type ContactInfo struct {
	ID           string
	Phone        string
	Email        string
	Address      string
	WorkingHours string
	SocialMedia  SocialLinks
}

// SocialLinks holds optional social network URLs.
type SocialLinks struct {
	Facebook  string
	Instagram string
	Telegram  string
}

// OfferItem is a promotional offer with an optional visibility window.
type OfferItem struct {
	ID          string
	Title       string
	Description string
	Active      bool
	StartDate   *time.Time
	EndDate     *time.Time
	Priority    int
	Recommended bool
	Icon        string
}

// Visible reports whether the offer should appear on the public site at now.
func (o OfferItem) Visible(now time.Time) bool {
	if !o.Active {
		return false
	}
	if o.StartDate != nil && o.StartDate.After(now) {
		return false
	}
	if o.EndDate != nil && o.EndDate.Before(now) {
		return false
	}
	return true
}
