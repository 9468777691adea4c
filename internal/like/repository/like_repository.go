package repository

import (
	"context"
	"time"

	"video_library_service/internal/like/domain"
	videodomain "video_library_service/internal/video/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LikeRepository definition like edge operations
type LikeRepository interface {
	// Toggle removes the like when present, inserts it otherwise.
	// Returns the resulting state, true when the like now exists.
	Toggle(ctx context.Context, likedBy, targetID primitive.ObjectID, kind domain.TargetKind) (bool, error)
	LikedVideos(ctx context.Context, likedBy primitive.ObjectID) ([]videodomain.VideoView, error)
}

type likeRepository struct {
	coll *mongo.Collection
}

// NewLikeRepository create a LikeRepository
func NewLikeRepository(db *mongo.Database) LikeRepository {
	return &likeRepository{coll: db.Collection("likes")}
}

// EnsureLikeIndexes create the unique (liked_by, kind, target_id) index
func EnsureLikeIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("likes").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "liked_by", Value: 1},
			{Key: "kind", Value: 1},
			{Key: "target_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *likeRepository) Toggle(ctx context.Context, likedBy, targetID primitive.ObjectID, kind domain.TargetKind) (bool, error) {
	filter := bson.M{"liked_by": likedBy, "kind": kind, "target_id": targetID}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	_, err = r.coll.InsertOne(ctx, domain.Like{
		LikedBy:   likedBy,
		Kind:      kind,
		TargetID:  targetID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		// a concurrent toggle won the insert, the like exists
		if mongo.IsDuplicateKeyError(err) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (r *likeRepository) LikedVideos(ctx context.Context, likedBy primitive.ObjectID) ([]videodomain.VideoView, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"liked_by": likedBy, "kind": domain.KindVideo}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "videos",
			"localField":   "target_id",
			"foreignField": "_id",
			"as":           "video",
			"pipeline": bson.A{
				bson.M{"$lookup": bson.M{
					"from":         "users",
					"localField":   "owner",
					"foreignField": "_id",
					"as":           "owner",
					"pipeline": bson.A{
						bson.M{"$project": bson.M{"username": 1, "fullname": 1, "avatar": 1}},
					},
				}},
				bson.M{"$unwind": "$owner"},
			},
		}}},
		{{Key: "$unwind", Value: "$video"}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$video"}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	videos := []videodomain.VideoView{}
	if err := cur.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
