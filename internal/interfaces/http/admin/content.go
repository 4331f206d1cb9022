package admin

import (
	"net/http"
	"time"

	"github.com/zhyrafyk/park-services/api/internal/interfaces/http/common"
	"github.com/zhyrafyk/park-services/api/internal/public/domain"
)

type homePayload struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
	WorkingHours string   `json:"workingHours"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
}

func (h *Handler) homeGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		home, cards, err := h.queries.Home(r.Context())
		if err != nil {
			h.logger.Printf("admin home fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}
		if home == nil {
			home = &domain.HomeData{}
		}
		cardViews := make([]featurePayload, 0, len(cards))
		for _, card := range cards {
			cardViews = append(cardViews, featurePayload{ID: card.ID, Title: card.Title, Description: card.Description})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"title":        home.Title,
			"description":  home.Description,
			"features":     emptyIfNil(home.Features),
			"featureCards": cardViews,
			"images":       emptyIfNil(home.Images),
			"workingHours": home.WorkingHours,
			"address":      home.Address,
			"phone":        home.Phone,
		})
	}
}

func (h *Handler) homeSaveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload homePayload
		if !h.decodeBody(w, r, &payload) {
			return
		}
		home := domain.HomeData{
			Title:        payload.Title,
			Description:  payload.Description,
			Features:     payload.Features,
			Images:       payload.Images,
			WorkingHours: payload.WorkingHours,
			Address:      payload.Address,
			Phone:        payload.Phone,
		}
		h.writeMutationResult(w, "home save", h.content.SaveHome(r.Context(), home))
	}
}

type featurePayload struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *Handler) featureCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload featurePayload
		if !h.decodeBody(w, r, &payload) {
			return
		}
		created, err := h.content.CreateFeatureCard(r.Context(), domain.FeatureCard{
			Title:       payload.Title,
			Description: payload.Description,
		})
		id := ""
		if created != nil {
			id = created.ID
		}
		h.writeCreated(w, "feature create", id, err)
	}
}

func (h *Handler) featureUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload featurePayload
		if !h.decodeBody(w, r, &payload) {
			return
		}
		card := domain.FeatureCard{ID: payload.ID, Title: payload.Title, Description: payload.Description}
		h.writeMutationResult(w, "feature update", h.content.UpdateFeatureCard(r.Context(), card))
	}
}

func (h *Handler) featureDeleteHandler() http.HandlerFunc {
	return h.deleteByBodyID("feature delete", func(r *http.Request, id string) error {
		return h.content.DeleteFeatureCard(r.Context(), id)
	})
}

type pricePayload struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Category    string `json:"category"`
	Video       string `json:"video"`
}

func (p pricePayload) toDomain() domain.PriceItem {
	return domain.PriceItem{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Duration:    p.Duration,
		Category:    p.Category,
		Video:       p.Video,
	}
}

func (h *Handler) priceListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prices, err := h.queries.Prices(r.Context())
		if err != nil {
			h.logger.Printf("admin price list failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}
		views := make([]pricePayload, 0, len(prices))
		for _, item := range prices {
			views = append(views, pricePayload{
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

func (h *Handler) priceCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload pricePayload
		if !h.decodeBody(w, r, &payload) {
			return
		}
		created, err := h.content.CreatePrice(r.Context(), payload.toDomain())
		id := ""
		if created != nil {
			id = created.ID
		}
		h.writeCreated(w, "price create", id, err)
	}
}

func (h *Handler) priceUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload pricePayload
		if !h.decodeBody(w, r, &payload) {
			return
		}
		h.writeMutationResult(w, "price update", h.content.UpdatePrice(r.Context(), payload.toDomain()))
	}
}

func (h *Handler) priceDeleteHandler() http.HandlerFunc {
	return h.deleteByBodyID("price delete", func(r *http.Request, id string) error {
		return h.content.DeletePrice(r.Context(), id)
	})
}

type priceCategoryPayload struct {
	ID    string `json:"id,omitempty"`
	Key   string `json:"key"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Order int    `json:"order"`
}

func (p priceCategoryPayload) toDomain() domain.PriceCategory {
	return domain.PriceCategory{ID: p.ID, Key: p.Key, Label: p.Label, Icon: p.Icon, Order: p.Order}
}

func (h *Handler) priceCategoryListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.queries.PriceCategories(r.Context())
		if err != nil {
			h.logger.Printf("admin price category list failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}
		views := make([]priceCategoryPayload, 0, len(categories))
		for _, category := range categories {
			views = append(views, priceCategoryPayload{
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

func (h *Handler) priceCategoryCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload priceCategoryPayload
		if !h.decodeBody(w, r, &payload) {
			return
		}
		created, err := h.content.CreatePriceCategory(r.Context(), payload.toDomain())
		id := ""
		if created != nil {
			id = created.ID
		}
		h.writeCreated(w, "price category create", id, err)
	}
}

func (h *Handler) priceCategoryUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload priceCategoryPayload
		if !h.decodeBody(w, r, &payload) {
			return
		}
		h.writeMutationResult(w, "price category update", h.content.UpdatePriceCategory(r.Context(), payload.toDomain()))
	}
}

func (h *Handler) priceCategoryDeleteHandler() http.HandlerFunc {
	return h.deleteByBodyID("price category delete", func(r *http.Request, id string) error {
		return h.content.DeletePriceCategory(r.Context(), id)
	})
}

type cafeItemPayload struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

func (p cafeItemPayload) toDomain() domain.CafeItem {
	return domain.CafeItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Category:    p.Category,
	}
}

func (h *Handler) cafeListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.queries.CafeItems(r.Context())
		if err != nil {
			h.logger.Printf("admin cafe list failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}
		views := make([]cafeItemPayload, 0, len(items))
		for _, item := range items {
			views = append(views, cafeItemPayload{
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

func (h *Handler) cafeCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cafeItemPayload
		if !h.decodeBody(w, r, &payload) {
			return
		}
		created, err := h.content.CreateCafeItem(r.Context(), payload.toDomain())
		id := ""
		if created != nil {
			id = created.ID
		}
		h.writeCreated(w, "cafe item create", id, err)
	}
}

func (h *Handler) cafeUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cafeItemPayload
		if !h.decodeBody(w, r, &payload) {
			return
		}
		h.writeMutationResult(w, "cafe item update", h.content.UpdateCafeItem(r.Context(), payload.toDomain()))
	}
}

func (h *Handler) cafeDeleteHandler() http.HandlerFunc {
	return h.deleteByBodyID("cafe item delete", func(r *http.Request, id string) error {
		return h.content.DeleteCafeItem(r.Context(), id)
	})
}

type contactsPayload struct {
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	WorkingHours string `json:"workingHours"`
	SocialMedia  struct {
		Facebook  string `json:"facebook"`
		Instagram string `json:"instagram"`
		Telegram  string `json:"telegram"`
	} `json:"socialMedia"`
}

func (h *Handler) contactsGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.queries.Contacts(r.Context())
		if err != nil {
			h.logger.Printf("admin contacts fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}
		if contacts == nil {
			contacts = &domain.ContactInfo{}
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"phone":        contacts.Phone,
			"email":        contacts.Email,
			"address":      contacts.Address,
			"workingHours": contacts.WorkingHours,
			"socialMedia": map[string]string{
				"facebook":  contacts.SocialMedia.Facebook,
				"instagram": contacts.SocialMedia.Instagram,
				"telegram":  contacts.SocialMedia.Telegram,
			},
		})
	}
}

func (h *Handler) contactsSaveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload contactsPayload
		if !h.decodeBody(w, r, &payload) {
			return
		}
		contacts := domain.ContactInfo{
			Phone:        payload.Phone,
			Email:        payload.Email,
			Address:      payload.Address,
			WorkingHours: payload.WorkingHours,
			SocialMedia: domain.SocialLinks{
				Facebook:  payload.SocialMedia.Facebook,
				Instagram: payload.SocialMedia.Instagram,
				Telegram:  payload.SocialMedia.Telegram,
			},
		}
		h.writeMutationResult(w, "contacts save", h.content.SaveContacts(r.Context(), contacts))
	}
}

type offerPayload struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Active      *bool      `json:"active"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Priority    int        `json:"priority"`
	Recommended bool       `json:"recommended"`
	Icon        string     `json:"icon"`
}

// toDomain treats a missing active flag as active, matching how documents
// without the flag are read from storage.
func (p offerPayload) toDomain() domain.OfferItem {
	active := true
	if p.Active != nil {
		active = *p.Active
	}
	return domain.OfferItem{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Active:      active,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Priority:    p.Priority,
		Recommended: p.Recommended,
		Icon:        p.Icon,
	}
}

func (h *Handler) offerListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offers, err := h.queries.AllOffers(r.Context())
		if err != nil {
			h.logger.Printf("admin offer list failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, common.ErrCodeInternal)
			return
		}
		views := make([]offerPayload, 0, len(offers))
		for _, offer := range offers {
			active := offer.Active
			views = append(views, offerPayload{
				ID:          offer.ID,
				Title:       offer.Title,
				Description: offer.Description,
				Active:      &active,
				StartDate:   offer.StartDate,
				EndDate:     offer.EndDate,
				Priority:    offer.Priority,
				Recommended: offer.Recommended,
				Icon:        offer.Icon,
			})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, views)
	}
}

func (h *Handler) offerCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload offerPayload
		if !h.decodeBody(w, r, &payload) {
			return
		}
		created, err := h.content.CreateOffer(r.Context(), payload.toDomain())
		id := ""
		if created != nil {
			id = created.ID
		}
		h.writeCreated(w, "offer create", id, err)
	}
}

func (h *Handler) offerUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload offerPayload
		if !h.decodeBody(w, r, &payload) {
			return
		}
		h.writeMutationResult(w, "offer update", h.content.UpdateOffer(r.Context(), payload.toDomain()))
	}
}

func (h *Handler) offerDeleteHandler() http.HandlerFunc {
	return h.deleteByBodyID("offer delete", func(r *http.Request, id string) error {
		return h.content.DeleteOffer(r.Context(), id)
	})
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
