package repository

import (
	"context"
	"time"

	"video_library_service/internal/comment/domain"
	likedomain "video_library_service/internal/like/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CommentRepository definition get comment info
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Comment, error)
	ByVideo(ctx context.Context, videoID, viewer primitive.ObjectID, page, limit int64) ([]domain.CommentView, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type commentRepository struct {
	coll *mongo.Collection
}

// NewCommentRepository create a CommentRepository
func NewCommentRepository(db *mongo.Database) CommentRepository {
	return &commentRepository{coll: db.Collection("comments")}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) (primitive.ObjectID, error) {
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, comment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *commentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ByVideo newest first with owner join and per-viewer like state
func (r *commentRepository) ByVideo(ctx context.Context, videoID, viewer primitive.ObjectID, page, limit int64) ([]domain.CommentView, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"video": videoID}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
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
			"let":  bson.M{"cid": "$_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{
					"kind":  likedomain.KindComment,
					"$expr": bson.M{"$eq": bson.A{"$target_id", "$$cid"}},
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
	comments := []domain.CommentView{}
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error {
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

func (r *commentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
