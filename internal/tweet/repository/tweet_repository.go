package repository

import (
	"context"
	"time"

	likedomain "video_library_service/internal/like/domain"
	"video_library_service/internal/tweet/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TweetRepository definition get tweet info
type TweetRepository interface {
	Create(ctx context.Context, tweet *domain.Tweet) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Tweet, error)
	ByOwner(ctx context.Context, owner, viewer primitive.ObjectID) ([]domain.TweetView, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type tweetRepository struct {
	coll *mongo.Collection
}

// NewTweetRepository create a TweetRepository
func NewTweetRepository(db *mongo.Database) TweetRepository {
	return &tweetRepository{coll: db.Collection("tweets")}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *domain.Tweet) (primitive.ObjectID, error) {
	now := time.Now()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, tweet)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *tweetRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Tweet, error) {
	var tweet domain.Tweet
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&tweet); err != nil {
		return nil, err
	}
	return &tweet, nil
}

// ByOwner newest first with owner join and per-viewer like state
func (r *tweetRepository) ByOwner(ctx context.Context, owner, viewer primitive.ObjectID) ([]domain.TweetView, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": owner}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"username": 1, "fullname": 1, "avatar": 1}},
			},
		}}},
		{{Key: "$unwind", Value: "$owner"}},
		{{Key: "$lookup", Value: bson.M{
			"from": "likes",
			"let":  bson.M{"tid": "$_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{
					"kind":  likedomain.KindTweet,
					"$expr": bson.M{"$eq": bson.A{"$target_id", "$$tid"}},
				}},
			},
			"as": "likes",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"like_count": bson.M{"$size": "$likes"},
			"liked":      bson.M{"$in": bson.A{viewer, "$likes.liked_by"}},
		}}},
		{{Key: "$project", Value: bson.M{"likes": 0}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	tweets := []domain.TweetView{}
	if err := cur.All(ctx, &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

func (r *tweetRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"content": content, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *tweetRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
