package mongo

import (
	"context"
	"errors"
	"strings"

	"github.com/zhyrafyk/park-services/api/internal/public/application"
	"github.com/zhyrafyk/park-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContentRepository serves the plain content collections behind the public
// pages and the admin CRUD forms.
type ContentRepository struct {
	home       *mongo.Collection
	features   *mongo.Collection
	prices     *mongo.Collection
	categories *mongo.Collection
	cafe       *mongo.Collection
	contacts   *mongo.Collection
	offers     *mongo.Collection
}

// Collections names the content collections bound by NewContentRepository.
type Collections struct {
	Home            string
	Features        string
	Prices          string
	PriceCategories string
	Cafe            string
	Contacts        string
	Offers          string
}

// NewContentRepository binds all content collections.
func NewContentRepository(db *mongo.Database, names Collections) *ContentRepository {
	return &ContentRepository{
		home:       db.Collection(names.Home),
		features:   db.Collection(names.Features),
		prices:     db.Collection(names.Prices),
		categories: db.Collection(names.PriceCategories),
		cafe:       db.Collection(names.Cafe),
		contacts:   db.Collection(names.Contacts),
		offers:     db.Collection(names.Offers),
	}
}

// Home returns the landing-page singleton, or (nil, nil) when unset.
func (r *ContentRepository) Home(ctx context.Context) (*domain.HomeData, error) {
	var doc HomeDocument
	if err := r.home.FindOne(ctx, bson.M{}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &domain.HomeData{
		ID:           doc.ID.Hex(),
		Title:        doc.Title,
		Description:  doc.Description,
		Features:     append([]string{}, doc.Features...),
		Images:       append([]string{}, doc.Images...),
		WorkingHours: doc.WorkingHours,
		Address:      doc.Address,
		Phone:        doc.Phone,
	}, nil
}

// UpsertHome replaces the singleton, creating it on first save.
func (r *ContentRepository) UpsertHome(ctx context.Context, home domain.HomeData) error {
	doc := HomeDocument{
		Title:        home.Title,
		Description:  home.Description,
		Features:     append([]string{}, home.Features...),
		Images:       append([]string{}, home.Images...),
		WorkingHours: home.WorkingHours,
		Address:      home.Address,
		Phone:        home.Phone,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.home.ReplaceOne(ctx, bson.M{}, doc, opts)
	return err
}

// FeatureCards returns all home-page feature cards.
func (r *ContentRepository) FeatureCards(ctx context.Context) ([]domain.FeatureCard, error) {
	cursor, err := r.features.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	cards := make([]domain.FeatureCard, 0)
	for cursor.Next(ctx) {
		var doc FeatureDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		cards = append(cards, domain.FeatureCard{ID: doc.ID.Hex(), Title: doc.Title, Description: doc.Description})
	}
	return cards, cursor.Err()
}

func (r *ContentRepository) CreateFeatureCard(ctx context.Context, card *domain.FeatureCard) error {
	doc := FeatureDocument{ID: primitive.NewObjectID(), Title: card.Title, Description: card.Description}
	if _, err := r.features.InsertOne(ctx, doc); err != nil {
		return err
	}
	card.ID = doc.ID.Hex()
	return nil
}

func (r *ContentRepository) UpdateFeatureCard(ctx context.Context, card domain.FeatureCard) error {
	set := bson.M{"title": card.Title, "description": card.Description}
	return r.updateByID(ctx, r.features, card.ID, set)
}

func (r *ContentRepository) DeleteFeatureCard(ctx context.Context, id string) error {
	return r.deleteByID(ctx, r.features, id)
}

// Prices returns all price items.
func (r *ContentRepository) Prices(ctx context.Context) ([]domain.PriceItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}})
	cursor, err := r.prices.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]domain.PriceItem, 0)
	for cursor.Next(ctx) {
		var doc PriceDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		items = append(items, domain.PriceItem{
			ID:          doc.ID.Hex(),
			Name:        doc.Name,
			Price:       doc.Price,
			Description: doc.Description,
			Duration:    doc.Duration,
			Category:    doc.Category,
			Video:       doc.Video,
		})
	}
	return items, cursor.Err()
}

func (r *ContentRepository) CreatePrice(ctx context.Context, item *domain.PriceItem) error {
	doc := PriceDocument{
		ID:          primitive.NewObjectID(),
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		Duration:    item.Duration,
		Category:    item.Category,
		Video:       item.Video,
	}
	if _, err := r.prices.InsertOne(ctx, doc); err != nil {
		return err
	}
	item.ID = doc.ID.Hex()
	return nil
}

func (r *ContentRepository) UpdatePrice(ctx context.Context, item domain.PriceItem) error {
	set := bson.M{
		"name":        item.Name,
		"price":       item.Price,
		"description": item.Description,
		"duration":    item.Duration,
		"category":    item.Category,
		"video":       item.Video,
	}
	return r.updateByID(ctx, r.prices, item.ID, set)
}

func (r *ContentRepository) DeletePrice(ctx context.Context, id string) error {
	return r.deleteByID(ctx, r.prices, id)
}

// PriceCategories returns all pricing-page categories.
func (r *ContentRepository) PriceCategories(ctx context.Context) ([]domain.PriceCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.categories.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := make([]domain.PriceCategory, 0)
	for cursor.Next(ctx) {
		var doc PriceCategoryDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		categories = append(categories, domain.PriceCategory{
			ID:    doc.ID.Hex(),
			Key:   doc.Key,
			Label: doc.Label,
			Icon:  doc.Icon,
			Order: doc.Order,
		})
	}
	return categories, cursor.Err()
}

func (r *ContentRepository) CreatePriceCategory(ctx context.Context, category *domain.PriceCategory) error {
	doc := PriceCategoryDocument{
		ID:    primitive.NewObjectID(),
		Key:   category.Key,
		Label: category.Label,
		Icon:  category.Icon,
		Order: category.Order,
	}
	if _, err := r.categories.InsertOne(ctx, doc); err != nil {
		return err
	}
	category.ID = doc.ID.Hex()
	return nil
}

func (r *ContentRepository) UpdatePriceCategory(ctx context.Context, category domain.PriceCategory) error {
	set := bson.M{"key": category.Key, "label": category.Label, "icon": category.Icon, "order": category.Order}
	return r.updateByID(ctx, r.categories, category.ID, set)
}

func (r *ContentRepository) DeletePriceCategory(ctx context.Context, id string) error {
	return r.deleteByID(ctx, r.categories, id)
}

// CafeItems returns the cafe menu.
func (r *ContentRepository) CafeItems(ctx context.Context) ([]domain.CafeItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}})
	cursor, err := r.cafe.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]domain.CafeItem, 0)
	for cursor.Next(ctx) {
		var doc CafeDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		items = append(items, domain.CafeItem{
			ID:          doc.ID.Hex(),
			Name:        doc.Name,
			Description: doc.Description,
			Price:       doc.Price,
			Image:       doc.Image,
			Category:    doc.Category,
		})
	}
	return items, cursor.Err()
}

func (r *ContentRepository) CreateCafeItem(ctx context.Context, item *domain.CafeItem) error {
	doc := CafeDocument{
		ID:          primitive.NewObjectID(),
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Image:       item.Image,
		Category:    item.Category,
	}
	if _, err := r.cafe.InsertOne(ctx, doc); err != nil {
		return err
	}
	item.ID = doc.ID.Hex()
	return nil
}

func (r *ContentRepository) UpdateCafeItem(ctx context.Context, item domain.CafeItem) error {
	set := bson.M{
		"name":        item.Name,
		"description": item.Description,
		"price":       item.Price,
		"image":       item.Image,
		"category":    item.Category,
	}
	return r.updateByID(ctx, r.cafe, item.ID, set)
}

func (r *ContentRepository) DeleteCafeItem(ctx context.Context, id string) error {
	return r.deleteByID(ctx, r.cafe, id)
}

// Contacts returns the contact-page singleton, or (nil, nil) when unset.
func (r *ContentRepository) Contacts(ctx context.Context) (*domain.ContactInfo, error) {
	var doc ContactDocument
	if err := r.contacts.FindOne(ctx, bson.M{}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &domain.ContactInfo{
		ID:           doc.ID.Hex(),
		Phone:        doc.Phone,
		Email:        doc.Email,
		Address:      doc.Address,
		WorkingHours: doc.WorkingHours,
		SocialMedia: domain.SocialLinks{
			Facebook:  doc.SocialMedia.Facebook,
			Instagram: doc.SocialMedia.Instagram,
			Telegram:  doc.SocialMedia.Telegram,
		},
	}, nil
}

// UpsertContacts replaces the singleton, creating it on first save.
func (r *ContentRepository) UpsertContacts(ctx context.Context, contacts domain.ContactInfo) error {
	doc := ContactDocument{
		Phone:        contacts.Phone,
		Email:        contacts.Email,
		Address:      contacts.Address,
		WorkingHours: contacts.WorkingHours,
		SocialMedia: SocialLinksDocument{
			Facebook:  contacts.SocialMedia.Facebook,
			Instagram: contacts.SocialMedia.Instagram,
			Telegram:  contacts.SocialMedia.Telegram,
		},
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.contacts.ReplaceOne(ctx, bson.M{}, doc, opts)
	return err
}

// Offers returns every offer; window filtering happens in the query service.
func (r *ContentRepository) Offers(ctx context.Context) ([]domain.OfferItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "priority", Value: -1}, {Key: "startDate", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.offers.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	offers := make([]domain.OfferItem, 0)
	for cursor.Next(ctx) {
		var doc OfferDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		active := true
		if doc.Active != nil {
			active = *doc.Active
		}
		offers = append(offers, domain.OfferItem{
			ID:          doc.ID.Hex(),
			Title:       doc.Title,
			Description: doc.Description,
			Active:      active,
			StartDate:   doc.StartDate,
			EndDate:     doc.EndDate,
			Priority:    doc.Priority,
			Recommended: doc.Recommended,
			Icon:        doc.Icon,
		})
	}
	return offers, cursor.Err()
}

func (r *ContentRepository) CreateOffer(ctx context.Context, offer *domain.OfferItem) error {
	active := offer.Active
	doc := OfferDocument{
		ID:          primitive.NewObjectID(),
		Title:       offer.Title,
		Description: offer.Description,
		Active:      &active,
		StartDate:   offer.StartDate,
		EndDate:     offer.EndDate,
		Priority:    offer.Priority,
		Recommended: offer.Recommended,
		Icon:        offer.Icon,
	}
	if _, err := r.offers.InsertOne(ctx, doc); err != nil {
		return err
	}
	offer.ID = doc.ID.Hex()
	return nil
}

func (r *ContentRepository) UpdateOffer(ctx context.Context, offer domain.OfferItem) error {
	set := bson.M{
		"title":       offer.Title,
		"description": offer.Description,
		"active":      offer.Active,
		"startDate":   offer.StartDate,
		"endDate":     offer.EndDate,
		"priority":    offer.Priority,
		"recommended": offer.Recommended,
		"icon":        offer.Icon,
	}
	return r.updateByID(ctx, r.offers, offer.ID, set)
}

func (r *ContentRepository) DeleteOffer(ctx context.Context, id string) error {
	return r.deleteByID(ctx, r.offers, id)
}

func (r *ContentRepository) updateByID(ctx context.Context, collection *mongo.Collection, id string, set bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return application.ErrNotFound
	}
	result, err := collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *ContentRepository) deleteByID(ctx context.Context, collection *mongo.Collection, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return application.ErrNotFound
	}
	result, err := collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return application.ErrNotFound
	}
	return nil
}
