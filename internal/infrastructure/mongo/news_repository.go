package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/zhyrafyk/park-services/api/internal/public/application"
	"github.com/zhyrafyk/park-services/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewsRepository serves news items with their embedded surveys and the
// vote/response audit collections. It backs both the public survey engine
// and the admin news CRUD.
type NewsRepository struct {
	news      *mongo.Collection
	votes     *mongo.Collection
	responses *mongo.Collection
}

// NewNewsRepository binds the three collections the survey engine touches.
func NewNewsRepository(db *mongo.Database, newsCollection, voteCollection, responseCollection string) *NewsRepository {
	return &NewsRepository{
		news:      db.Collection(newsCollection),
		votes:     db.Collection(voteCollection),
		responses: db.Collection(responseCollection),
	}
}

// Find returns all news items.
func (r *NewsRepository) Find(ctx context.Context) ([]domain.NewsItem, error) {
	cursor, err := r.news.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]domain.NewsItem, 0)
	for cursor.Next(ctx) {
		var doc NewsDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		items = append(items, mapNewsDocument(doc))
	}
	return items, cursor.Err()
}

// FindByID returns (nil, nil) for unknown or malformed ids.
func (r *NewsRepository) FindByID(ctx context.Context, id string) (*domain.NewsItem, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, nil
	}

	var doc NewsDocument
	if err := r.news.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	item := mapNewsDocument(doc)
	return &item, nil
}

// FindWithActiveSurvey matches only items whose survey end date is still in
// the future; expiry is enforced by the query, not in Go.
func (r *NewsRepository) FindWithActiveSurvey(ctx context.Context, id string, now time.Time) (*domain.NewsItem, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, nil
	}

	filter := bson.M{
		"_id":            objectID,
		"survey.endDate": bson.M{"$gt": now},
	}
	var doc NewsDocument
	if err := r.news.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	item := mapNewsDocument(doc)
	return &item, nil
}

// ApplyVote bumps the tally in one atomic update: totalVotes plus one
// counter per chosen option, all in a single round trip. Concurrent votes
// therefore cannot lose updates. The paired audit insert happens elsewhere
// and is not transactional with this write.
func (r *NewsRepository) ApplyVote(ctx context.Context, id string, optionIDs []string, now time.Time) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return application.ErrSurveyNotFound
	}

	inc := bson.M{"survey.results.totalVotes": 1}
	for _, optionID := range optionIDs {
		inc["survey.results.optionResults."+optionID] = 1
	}
	update := bson.M{
		"$inc": inc,
		"$set": bson.M{"survey.results.lastVoteAt": now},
	}

	result, err := r.news.UpdateOne(ctx, bson.M{"_id": objectID, "survey": bson.M{"$exists": true}}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return application.ErrSurveyNotFound
	}
	return nil
}

// InsertVote appends one immutable audit record.
func (r *NewsRepository) InsertVote(ctx context.Context, vote domain.SurveyVote) error {
	doc := VoteDocument{
		ID:        vote.ID,
		NewsID:    vote.NewsID,
		OptionIDs: append([]string{}, vote.OptionIDs...),
		VotedAt:   vote.VotedAt,
	}
	_, err := r.votes.InsertOne(ctx, doc)
	return err
}

// InsertResponse appends one immutable free-form submission.
func (r *NewsRepository) InsertResponse(ctx context.Context, response domain.SurveyResponse) error {
	doc := ResponseDocument{
		ID:        response.ID,
		NewsID:    response.NewsID,
		Answers:   response.Answers,
		CreatedAt: response.CreatedAt,
	}
	if doc.Answers == nil {
		doc.Answers = map[string]string{}
	}
	_, err := r.responses.InsertOne(ctx, doc)
	return err
}

// SurveyResults projects the embedded tally of one item.
func (r *NewsRepository) SurveyResults(ctx context.Context, id string) (*domain.SurveyResults, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, application.ErrSurveyNotFound
	}

	opts := options.FindOne().SetProjection(bson.M{"survey": 1})
	var doc NewsDocument
	if err := r.news.FindOne(ctx, bson.M{"_id": objectID}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, application.ErrSurveyNotFound
		}
		return nil, err
	}
	if doc.Survey == nil {
		return nil, application.ErrSurveyNotFound
	}
	if doc.Survey.Results == nil {
		return nil, nil
	}
	return mapResultsDocument(doc.Survey.Results), nil
}

// Create inserts a news item, assigning its id.
func (r *NewsRepository) Create(ctx context.Context, item *domain.NewsItem) error {
	doc := NewsDocument{
		ID:      primitive.NewObjectID(),
		Title:   item.Title,
		Content: item.Content,
		Date:    item.Date,
		Type:    string(item.Type),
		Images:  append([]string{}, item.Images...),
		Survey:  surveyToDocument(item.Survey),
	}
	if _, err := r.news.InsertOne(ctx, doc); err != nil {
		return err
	}
	item.ID = doc.ID.Hex()
	return nil
}

// Update rewrites the article fields and the survey definition. The tally
// under survey.results is deliberately left untouched so admin edits can
// never rewrite accumulated votes; removing the survey drops its results
// with it.
func (r *NewsRepository) Update(ctx context.Context, item domain.NewsItem) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(item.ID))
	if err != nil {
		return application.ErrNotFound
	}

	set := bson.M{
		"title":   item.Title,
		"content": item.Content,
		"date":    item.Date,
		"type":    string(item.Type),
		"images":  append([]string{}, item.Images...),
	}
	update := bson.M{}
	if item.Survey == nil {
		update["$unset"] = bson.M{"survey": ""}
	} else {
		doc := surveyToDocument(item.Survey)
		set["survey.question"] = doc.Question
		set["survey.endDate"] = doc.EndDate
		set["survey.allowMultiple"] = doc.AllowMultiple
		set["survey.options"] = doc.Options
		set["survey.fields"] = doc.Fields
	}
	update["$set"] = set

	result, err := r.news.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return application.ErrNotFound
	}
	return nil
}

// Delete removes an item. Votes and responses referencing it stay in the
// audit collections.
func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return application.ErrNotFound
	}
	result, err := r.news.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return application.ErrNotFound
	}
	return nil
}

// FindResponses lists free-form submissions, newest first, optionally
// filtered to one news item.
func (r *NewsRepository) FindResponses(ctx context.Context, newsID string) ([]domain.SurveyResponse, error) {
	filter := bson.M{}
	if trimmed := strings.TrimSpace(newsID); trimmed != "" {
		filter["newsId"] = trimmed
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.responses.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	responses := make([]domain.SurveyResponse, 0)
	for cursor.Next(ctx) {
		var doc ResponseDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		responses = append(responses, domain.SurveyResponse{
			ID:        doc.ID,
			NewsID:    doc.NewsID,
			Answers:   doc.Answers,
			CreatedAt: doc.CreatedAt,
		})
	}
	return responses, cursor.Err()
}

// FindNewsByIDs loads the items referenced by responses; malformed ids are
// skipped rather than failing the whole join.
func (r *NewsRepository) FindNewsByIDs(ctx context.Context, ids []string) ([]domain.NewsItem, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}
	if len(objectIDs) == 0 {
		return []domain.NewsItem{}, nil
	}

	cursor, err := r.news.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]domain.NewsItem, 0, len(objectIDs))
	for cursor.Next(ctx) {
		var doc NewsDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		items = append(items, mapNewsDocument(doc))
	}
	return items, cursor.Err()
}
