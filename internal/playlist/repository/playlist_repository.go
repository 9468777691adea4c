package repository

import (
	"context"
	"time"

	"video_library_service/internal/playlist/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PlaylistRepository definition get playlist info
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error)
	ViewByID(ctx context.Context, id primitive.ObjectID) (*domain.PlaylistView, error)
	ByOwner(ctx context.Context, owner primitive.ObjectID) ([]domain.PlaylistView, error)
	// AddVideo set-appends videoID, false when it was already a member
	AddVideo(ctx context.Context, id, videoID primitive.ObjectID) (bool, error)
	// RemoveVideo pulls videoID, false when it was not a member
	RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) (bool, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type playlistRepository struct {
	coll *mongo.Collection
}

// NewPlaylistRepository create a PlaylistRepository
func NewPlaylistRepository(db *mongo.Database) PlaylistRepository {
	return &playlistRepository{coll: db.Collection("playlists")}
}

// EnsurePlaylistIndexes create the unique (owner, title) index
func EnsurePlaylistIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("playlists").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner", Value: 1},
			{Key: "title", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *playlistRepository) Create(ctx context.Context, playlist *domain.Playlist) (primitive.ObjectID, error) {
	now := time.Now()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.Videos == nil {
		playlist.Videos = []primitive.ObjectID{}
	}
	res, err := r.coll.InsertOne(ctx, playlist)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *playlistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error) {
	var playlist domain.Playlist
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *playlistRepository) ViewByID(ctx context.Context, id primitive.ObjectID) (*domain.PlaylistView, error) {
	views, err := r.views(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &views[0], nil
}

func (r *playlistRepository) ByOwner(ctx context.Context, owner primitive.ObjectID) ([]domain.PlaylistView, error) {
	return r.views(ctx, bson.M{"owner": owner})
}

func (r *playlistRepository) views(ctx context.Context, match bson.M) ([]domain.PlaylistView, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "videos",
			"localField":   "videos",
			"foreignField": "_id",
			"as":           "videos",
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
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	views := []domain.PlaylistView{}
	if err := cur.All(ctx, &views); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *playlistRepository) AddVideo(ctx context.Context, id, videoID primitive.ObjectID) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "videos": bson.M{"$ne": videoID}},
		bson.M{
			"$push": bson.M{"videos": videoID},
			"$set":  bson.M{"updated_at": time.Now()},
		})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, id, videoID primitive.ObjectID) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "videos": videoID},
		bson.M{
			"$pull": bson.M{"videos": videoID},
			"$set":  bson.M{"updated_at": time.Now()},
		})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (r *playlistRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
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

func (r *playlistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
