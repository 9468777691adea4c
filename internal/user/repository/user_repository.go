package repository

import (
	"context"
	"time"

	"video_library_service/internal/user/domain"
	videodomain "video_library_service/internal/video/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ownerProjectPipeline joined owner fields used across listings
var ownerProjectPipeline = bson.A{
	bson.M{"$project": bson.M{"username": 1, "fullname": 1, "avatar": 1}},
}

// UserRepository definition get user info
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	Find(ctx context.Context, query *domain.UserQuery) (*domain.User, error)
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error
	AddWatchHistory(ctx context.Context, userID, videoID primitive.ObjectID) error
	ChannelView(ctx context.Context, username string, viewer primitive.ObjectID) (*domain.ChannelView, error)
	WatchHistory(ctx context.Context, userID primitive.ObjectID) ([]videodomain.VideoView, error)
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository create a UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: db.Collection("users")}
}

// EnsureUserIndexes create the unique username/email indexes
func EnsureUserIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.WatchHistory == nil {
		user.WatchHistory = []primitive.ObjectID{}
	}
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *userRepository) Find(ctx context.Context, query *domain.UserQuery) (*domain.User, error) {
	filter := bson.M{}
	if query.ID != nil {
		filter["_id"] = *query.ID
	}
	if query.Username != nil {
		filter["username"] = *query.Username
	}
	if query.Email != nil {
		filter["email"] = *query.Email
	}

	var user domain.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": identifier},
		bson.M{"email": identifier},
	}}

	var user domain.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updated_at"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *userRepository) SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error {
	update := bson.M{"$set": bson.M{"refresh_token": token, "updated_at": time.Now()}}
	if token == "" {
		update = bson.M{
			"$unset": bson.M{"refresh_token": ""},
			"$set":   bson.M{"updated_at": time.Now()},
		}
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// AddWatchHistory set-insert, a rewatched video is not duplicated
func (r *userRepository) AddWatchHistory(ctx context.Context, userID, videoID primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$addToSet": bson.M{"watch_history": videoID},
	})
	return err
}

func (r *userRepository) ChannelView(ctx context.Context, username string, viewer primitive.ObjectID) (*domain.ChannelView, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"username": username}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "subscriptions",
			"localField":   "_id",
			"foreignField": "channel",
			"as":           "subscribers",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "subscriptions",
			"localField":   "_id",
			"foreignField": "subscriber",
			"as":           "subscribed",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"subscriber_count": bson.M{"$size": "$subscribers"},
			"subscribed_to":    bson.M{"$size": "$subscribed"},
			"is_subscribed":    bson.M{"$in": bson.A{viewer, "$subscribers.subscriber"}},
		}}},
		{{Key: "$project", Value: bson.M{
			"username":         1,
			"email":            1,
			"fullname":         1,
			"avatar":           1,
			"cover_image":      1,
			"subscriber_count": 1,
			"subscribed_to":    1,
			"is_subscribed":    1,
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var channels []domain.ChannelView
	if err := cur.All(ctx, &channels); err != nil {
		return nil, err
	}
	if len(channels) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &channels[0], nil
}

func (r *userRepository) WatchHistory(ctx context.Context, userID primitive.ObjectID) ([]videodomain.VideoView, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "videos",
			"localField":   "watch_history",
			"foreignField": "_id",
			"as":           "videos",
			"pipeline": bson.A{
				bson.M{"$lookup": bson.M{
					"from":         "users",
					"localField":   "owner",
					"foreignField": "_id",
					"as":           "owner",
					"pipeline":     ownerProjectPipeline,
				}},
				bson.M{"$unwind": "$owner"},
			},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var results []struct {
		Videos []videodomain.VideoView `bson:"videos"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	if results[0].Videos == nil {
		return []videodomain.VideoView{}, nil
	}
	return results[0].Videos, nil
}
