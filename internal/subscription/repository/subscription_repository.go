package repository

import (
	"context"
	"time"

	"video_library_service/internal/subscription/domain"
	userdomain "video_library_service/internal/user/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SubscriptionRepository definition subscription edge operations
type SubscriptionRepository interface {
	// Toggle removes the edge when present, inserts it otherwise.
	// Returns the resulting state, true when subscribed.
	Toggle(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error)
	Subscribers(ctx context.Context, channel primitive.ObjectID) ([]userdomain.Profile, error)
	Channels(ctx context.Context, subscriber primitive.ObjectID) ([]userdomain.Profile, error)
}

type subscriptionRepository struct {
	coll *mongo.Collection
}

// NewSubscriptionRepository create a SubscriptionRepository
func NewSubscriptionRepository(db *mongo.Database) SubscriptionRepository {
	return &subscriptionRepository{coll: db.Collection("subscriptions")}
}

// EnsureSubscriptionIndexes create the unique (subscriber, channel) index
func EnsureSubscriptionIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("subscriptions").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "subscriber", Value: 1},
			{Key: "channel", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *subscriptionRepository) Toggle(ctx context.Context, subscriber, channel primitive.ObjectID) (bool, error) {
	filter := bson.M{"subscriber": subscriber, "channel": channel}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	_, err = r.coll.InsertOne(ctx, domain.Subscription{
		Subscriber: subscriber,
		Channel:    channel,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		// a concurrent toggle won the insert, the edge exists
		if mongo.IsDuplicateKeyError(err) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (r *subscriptionRepository) Subscribers(ctx context.Context, channel primitive.ObjectID) ([]userdomain.Profile, error) {
	return r.profiles(ctx, bson.M{"channel": channel}, "subscriber")
}

func (r *subscriptionRepository) Channels(ctx context.Context, subscriber primitive.ObjectID) ([]userdomain.Profile, error) {
	return r.profiles(ctx, bson.M{"subscriber": subscriber}, "channel")
}

func (r *subscriptionRepository) profiles(ctx context.Context, match bson.M, localField string) ([]userdomain.Profile, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   localField,
			"foreignField": "_id",
			"as":           "profile",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"username": 1, "fullname": 1, "avatar": 1}},
			},
		}}},
		{{Key: "$unwind", Value: "$profile"}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$profile"}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	profiles := []userdomain.Profile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
