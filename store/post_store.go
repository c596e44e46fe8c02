package store

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"traveljournal/database"
	"traveljournal/models"
)

type MongoPostStore struct {
	coll *mongo.Collection
}

func NewMongoPostStore(db *mongo.Database) *MongoPostStore {
	return &MongoPostStore{coll: db.Collection(database.PostsCollection)}
}

func (s *MongoPostStore) Create(ctx context.Context, post *models.TravelPost) (*models.TravelPost, error) {
	post.ID = primitive.NewObjectID()
	post.CreatedOn = time.Now().UTC()

	if _, err := s.coll.InsertOne(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// FindOwned is the single access-control primitive: a post that exists but
// belongs to a different user looks exactly like a missing record.
func (s *MongoPostStore) FindOwned(ctx context.Context, id, ownerID string) (*models.TravelPost, error) {
	oid, owner, err := parseIDs(id, ownerID)
	if err != nil {
		return nil, ErrNotFound
	}

	var post models.TravelPost
	err = s.coll.FindOne(ctx, bson.M{"_id": oid, "userId": owner}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update replaces the mutable fields of a post. The filter keeps both id and
// owner so an owner mismatch surfaces as ErrNotFound.
func (s *MongoPostStore) Update(ctx context.Context, post *models.TravelPost) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": post.ID, "userId": post.UserID}, post)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoPostStore) Delete(ctx context.Context, id, ownerID string) error {
	oid, owner, err := parseIDs(id, ownerID)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid, "userId": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoPostStore) ListByOwner(ctx context.Context, ownerID string) ([]models.TravelPost, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return []models.TravelPost{}, nil
	}
	return s.find(ctx, bson.M{"userId": owner})
}

func (s *MongoPostStore) Search(ctx context.Context, ownerID, query string) ([]models.TravelPost, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return []models.TravelPost{}, nil
	}
	return s.find(ctx, searchFilter(owner, query))
}

func (s *MongoPostStore) FilterByDateRange(ctx context.Context, ownerID string, start, end time.Time) ([]models.TravelPost, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return []models.TravelPost{}, nil
	}
	return s.find(ctx, dateRangeFilter(owner, start, end))
}

func (s *MongoPostStore) find(ctx context.Context, filter bson.M) ([]models.TravelPost, error) {
	cursor, err := s.coll.Find(ctx, filter, favouritesFirst())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.TravelPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// favouritesFirst orders favourited posts before the rest; the _id tiebreak
// keeps insertion order within each group, since ObjectIDs are monotonic.
func favouritesFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{
		{Key: "isFavourite", Value: -1},
		{Key: "_id", Value: 1},
	})
}

// searchFilter matches the query as a case-insensitive substring of the
// title, description, or any visited location. The query is quoted so regex
// metacharacters in user input are matched literally.
func searchFilter(owner primitive.ObjectID, query string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return bson.M{
		"userId": owner,
		"$or": bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
			bson.M{"visitedLocation": pattern},
		},
	}
}

// dateRangeFilter is inclusive on both bounds.
func dateRangeFilter(owner primitive.ObjectID, start, end time.Time) bson.M {
	return bson.M{
		"userId": owner,
		"visitedDate": bson.M{
			"$gte": primitive.NewDateTimeFromTime(start),
			"$lte": primitive.NewDateTimeFromTime(end),
		},
	}
}

func parseIDs(id, ownerID string) (primitive.ObjectID, primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	return oid, owner, nil
}
