package repository

import (
	"context"

	"video_library_service/internal/dashboard/domain"
	likedomain "video_library_service/internal/like/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DashboardRepository definition channel statistics
type DashboardRepository interface {
	ChannelStats(ctx context.Context, channel primitive.ObjectID) (*domain.ChannelStats, error)
}

type dashboardRepository struct {
	videos        *mongo.Collection
	subscriptions *mongo.Collection
}

// NewDashboardRepository create a DashboardRepository
func NewDashboardRepository(db *mongo.Database) DashboardRepository {
	return &dashboardRepository{
		videos:        db.Collection("videos"),
		subscriptions: db.Collection("subscriptions"),
	}
}

// ChannelStats aggregate the channel's video counters and join like totals
func (r *dashboardRepository) ChannelStats(ctx context.Context, channel primitive.ObjectID) (*domain.ChannelStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": channel}}},
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
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"total_videos": bson.M{"$sum": 1},
			"total_views":  bson.M{"$sum": "$views"},
			"total_likes":  bson.M{"$sum": bson.M{"$size": "$likes"}},
		}}},
	}

	cur, err := r.videos.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var totals []struct {
		TotalVideos int64 `bson:"total_videos"`
		TotalViews  int64 `bson:"total_views"`
		TotalLikes  int64 `bson:"total_likes"`
	}
	if err := cur.All(ctx, &totals); err != nil {
		return nil, err
	}

	stats := &domain.ChannelStats{}
	if len(totals) > 0 {
		stats.TotalVideos = totals[0].TotalVideos
		stats.TotalViews = totals[0].TotalViews
		stats.TotalLikes = totals[0].TotalLikes
	}

	subscribers, err := r.subscriptions.CountDocuments(ctx, bson.M{"channel": channel})
	if err != nil {
		return nil, err
	}
	stats.TotalSubscribers = subscribers

	return stats, nil
}
