package public

import (
	"net/http"

	"github.com/zhyrafyk/park-services/api/internal/interfaces/http/common"
	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

func (h *Handler) homeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		home, cards, err := h.content.Home(r.Context())
		if err != nil {
			h.logger.Printf("home fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}
		if home == nil {
			home = &domain.HomeData{}
		}
		view := homeView{
			ID:           home.ID,
			Title:        home.Title,
			Description:  home.Description,
			Features:     emptyIfNil(home.Features),
			FeatureCards: make([]featureCardView, 0, len(cards)),
			Images:       emptyIfNil(home.Images),
			WorkingHours: home.WorkingHours,
			Address:      home.Address,
			Phone:        home.Phone,
		}
		for _, card := range cards {
			view.FeatureCards = append(view.FeatureCards, featureCardView{ID: card.ID, Title: card.Title, Description: card.Description})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, view)
	}
}

func (h *Handler) newsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.content.News(r.Context())
		if err != nil {
			h.logger.Printf("news fetch failed: %v", err)
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

func (h *Handler) pricesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prices, err := h.content.Prices(r.Context())
		if err != nil {
			h.logger.Printf("prices fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}
		views := make([]priceItemView, 0, len(prices))
		for _, item := range prices {
			views = append(views, priceItemView{
				ID:          item.ID,
				Name:        item.Name,
				Price:       item.Price,
				Description: item.Description,
				Duration:    item.Duration,
				Category:    item.Category,
				Video:       item.Video,
			})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, views)
	}
}

func (h *Handler) priceCategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.content.PriceCategories(r.Context())
		if err != nil {
			h.logger.Printf("price categories fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}
		views := make([]priceCategoryView, 0, len(categories))
		for _, category := range categories {
			views = append(views, priceCategoryView{
				ID:    category.ID,
				Key:   category.Key,
				Label: category.Label,
				Icon:  category.Icon,
				Order: category.Order,
			})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, views)
	}
}

func (h *Handler) cafeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.content.CafeItems(r.Context())
		if err != nil {
			h.logger.Printf("cafe fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}
		views := make([]cafeItemView, 0, len(items))
		for _, item := range items {
			views = append(views, cafeItemView{
				ID:          item.ID,
				Name:        item.Name,
				Description: item.Description,
				Price:       item.Price,
				Image:       item.Image,
				Category:    item.Category,
			})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, views)
	}
}

func (h *Handler) contactsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.content.Contacts(r.Context())
		if err != nil {
			h.logger.Printf("contacts fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}
		if contacts == nil {
			contacts = &domain.ContactInfo{}
		}
		view := contactsView{
			ID:           contacts.ID,
			Phone:        contacts.Phone,
			Email:        contacts.Email,
			Address:      contacts.Address,
			WorkingHours: contacts.WorkingHours,
			SocialMedia: socialLinksView{
				Facebook:  contacts.SocialMedia.Facebook,
				Instagram: contacts.SocialMedia.Instagram,
				Telegram:  contacts.SocialMedia.Telegram,
			},
		}
		common.WriteJSON(h.logger, w, http.StatusOK, view)
	}
}

func (h *Handler) offersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offers, err := h.content.ActiveOffers(r.Context())
		if err != nil {
			h.logger.Printf("offers fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}
		views := make([]offerView, 0, len(offers))
		for _, offer := range offers {
			views = append(views, mapOfferView(offer))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, views)
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
