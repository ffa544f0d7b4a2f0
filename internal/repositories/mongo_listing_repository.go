package repositories

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nychousing-insights/internal/models"
	"nychousing-insights/internal/transformers"
	"nychousing-insights/pkg/database"
	"nychousing-insights/pkg/metrics"
)

type mongoListingRepository struct {
	collection *mongo.Collection
}

// listingCollation makes string equality filters match case-insensitively,
// the same way the in-memory repository matches them.
var listingCollation = &options.Collation{Locale: "en", Strength: 2}

func NewMongoListingRepository() ListingRepository {
	return &mongoListingRepository{
		collection: database.DB.Collection(database.ListingsCollection),
	}
}

func buildFilter(query *models.ListingQuery) bson.M {
	filter := bson.M{}
	if query == nil {
		return filter
	}
	if query.Borough != "" {
		filter["borough"] = query.Borough
	}
	if query.PropertyType != "" {
		filter["propertyType"] = query.PropertyType
	}
	if query.MinBeds > 0 {
		filter["beds"] = bson.M{"$gte": query.MinBeds}
	}
	if query.MinPrice > 0 {
		filter["price"] = bson.M{"$gte": query.MinPrice}
	}
	return filter
}

func (r *mongoListingRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Listing, error) {
	opts = append(opts, options.Find().SetCollation(listingCollation))

	start := time.Now()
	cursor, err := r.collection.Find(ctx, filter, opts...)
	metrics.MongoOperationDuration.WithLabelValues("find", database.ListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.ListingsCollection).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	start = time.Now()
	err = cursor.All(ctx, &listings)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", database.ListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.ListingsCollection).Inc()
		return nil, err
	}
	return listings, nil
}

func (r *mongoListingRepository) FindAll(ctx context.Context) ([]models.Listing, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoListingRepository) FindFiltered(ctx context.Context, query *models.ListingQuery) ([]models.Listing, error) {
	return r.find(ctx, buildFilter(query))
}

func (r *mongoListingRepository) FindWithPagination(ctx context.Context, query *models.ListingQuery, offset, limit int) ([]models.Listing, int64, error) {
	filter := buildFilter(query)

	start := time.Now()
	total, err := r.collection.CountDocuments(ctx, filter, options.Count().SetCollation(listingCollation))
	metrics.MongoOperationDuration.WithLabelValues("count_documents", database.ListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count_documents", database.ListingsCollection).Inc()
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "listingId", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	listings, err := r.find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (r *mongoListingRepository) FindByID(ctx context.Context, id string) (*models.Listing, error) {
	start := time.Now()
	var listing models.Listing
	err := r.collection.FindOne(ctx, bson.M{"listingId": id}).Decode(&listing)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.ListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Not found
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", database.ListingsCollection).Inc()
		return nil, err
	}
	return &listing, nil
}

func (r *mongoListingRepository) Count(ctx context.Context) (int64, error) {
	start := time.Now()
	total, err := r.collection.EstimatedDocumentCount(ctx)
	metrics.MongoOperationDuration.WithLabelValues("estimated_count", database.ListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("estimated_count", database.ListingsCollection).Inc()
		return 0, err
	}
	return total, nil
}

func (r *mongoListingRepository) CountByBorough(ctx context.Context) ([]models.BoroughCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$borough"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	start := time.Now()
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	metrics.MongoOperationDuration.WithLabelValues("aggregate", database.ListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("aggregate", database.ListingsCollection).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []struct {
		Borough string `bson:"_id"`
		Count   int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &raw); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.ListingsCollection).Inc()
		return nil, err
	}

	counts := make(map[string]int64, len(raw))
	for _, entry := range raw {
		counts[entry.Borough] = entry.Count
	}

	result := make([]models.BoroughCount, 0, len(raw))
	for _, label := range transformers.BoroughLabels() {
		if counts[label] > 0 {
			result = append(result, models.BoroughCount{Borough: label, Count: counts[label]})
		}
	}
	return result, nil
}

func (r *mongoListingRepository) PropertyTypes(ctx context.Context) ([]string, error) {
	start := time.Now()
	raw, err := r.collection.Distinct(ctx, "propertyType", bson.M{"propertyType": bson.M{"$ne": ""}})
	metrics.MongoOperationDuration.WithLabelValues("distinct", database.ListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("distinct", database.ListingsCollection).Inc()
		return nil, err
	}

	types := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			types = append(types, s)
		}
	}
	sort.Strings(types)
	return types, nil
}

func (r *mongoListingRepository) MaxBeds(ctx context.Context) (int, error) {
	findOptions := options.FindOne().SetSort(bson.D{{Key: "beds", Value: -1}})

	start := time.Now()
	var listing models.Listing
	err := r.collection.FindOne(ctx, bson.M{}, findOptions).Decode(&listing)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.ListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", database.ListingsCollection).Inc()
		return 0, err
	}
	return listing.Beds, nil
}
