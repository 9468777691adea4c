package repository

import (
	"context"
	"regexp"
	"time"

	likedomain "video_library_service/internal/like/domain"
	"video_library_service/internal/video/domain"
	"video_library_service/pkg"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var sortableFields = []string{"created_at", "updated_at", "views", "duration", "title"}

var ownerProjectPipeline = bson.A{
	bson.M{"$project": bson.M{"username": 1, "fullname": 1, "avatar": 1}},
}

// VideoRepository definition get video info
type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error)
	Detail(ctx context.Context, id, viewer primitive.ObjectID) (*domain.VideoDetail, error)
	List(ctx context.Context, q domain.ListQuery) ([]domain.VideoView, error)
	ByOwner(ctx context.Context, owner primitive.ObjectID) ([]domain.VideoView, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
}

type videoRepository struct {
	coll *mongo.Collection
}

// NewVideoRepository create a VideoRepository
func NewVideoRepository(db *mongo.Database) VideoRepository {
	return &videoRepository{coll: db.Collection("videos")}
}

func (r *videoRepository) Create(ctx context.Context, video *domain.Video) (primitive.ObjectID, error) {
	now := time.Now()
	video.CreatedAt = now
	video.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, video)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *videoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Video, error) {
	var video domain.Video
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&video); err != nil {
		return nil, err
	}
	return &video, nil
}

// Detail owner-joined single video with like/subscription state for the viewer
func (r *videoRepository) Detail(ctx context.Context, id, viewer primitive.ObjectID) (*domain.VideoDetail, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$lookup", Value: bson.M{
			"from": "likes",
			"let":  bson.M{"vid": "$_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{
					"kind":  likedomain.KindVideo,
					"$expr": bson.M{"$eq": bson.A{"$target_id", "$$vid"}},
				}},
			},
			"as": "likes",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
			"pipeline":     ownerProjectPipeline,
		}}},
		{{Key: "$unwind", Value: "$owner"}},
		{{Key: "$lookup", Value: bson.M{
			"from": "subscriptions",
			"let":  bson.M{"ch": "$owner._id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$channel", "$$ch"}}}},
			},
			"as": "subs",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"like_count":    bson.M{"$size": "$likes"},
			"is_liked":      bson.M{"$in": bson.A{viewer, "$likes.liked_by"}},
			"is_subscribed": bson.M{"$in": bson.A{viewer, "$subs.subscriber"}},
		}}},
		{{Key: "$project", Value: bson.M{"likes": 0, "subs": 0}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var details []domain.VideoDetail
	if err := cur.All(ctx, &details); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &details[0], nil
}

// List substring search on title/description, owner join, sort then paginate
func (r *videoRepository) List(ctx context.Context, q domain.ListQuery) ([]domain.VideoView, error) {
	filter := bson.M{}
	if q.Query != "" {
		pattern := regexp.QuoteMeta(q.Query)
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	sortField := "created_at"
	if pkg.Contains(sortableFields, q.SortBy) {
		sortField = q.SortBy
	}
	sortDir := -1
	if q.SortType == "asc" {
		sortDir = 1
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
			"pipeline":     ownerProjectPipeline,
		}}},
		{{Key: "$unwind", Value: "$owner"}},
		{{Key: "$sort", Value: bson.D{{Key: sortField, Value: sortDir}}}},
		{{Key: "$skip", Value: (q.Page - 1) * q.Limit}},
		{{Key: "$limit", Value: q.Limit}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	videos := []domain.VideoView{}
	if err := cur.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepository) ByOwner(ctx context.Context, owner primitive.ObjectID) ([]domain.VideoView, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": owner}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
			"pipeline":     ownerProjectPipeline,
		}}},
		{{Key: "$unwind", Value: "$owner"}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	videos := []domain.VideoView{}
	if err := cur.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
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

func (r *videoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *videoRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}
