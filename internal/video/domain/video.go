package domain

import (
	"time"

	userdomain "video_library_service/internal/user/domain"
	"video_library_service/pkg/database"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video definition published content
type Video struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	VideoFile   string             `bson:"video_file" json:"videoFile"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	IsPublished bool               `bson:"is_published" json:"isPublished"`
	Owner       primitive.ObjectID `bson:"owner" json:"owner"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// VideoView owner-joined projection for listings
type VideoView struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	VideoFile   string             `bson:"video_file" json:"videoFile"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	IsPublished bool               `bson:"is_published" json:"isPublished"`
	Owner       userdomain.Profile `bson:"owner" json:"owner"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// VideoDetail single video view enriched for the requester
type VideoDetail struct {
	VideoView    `bson:",inline"`
	LikeCount    int64 `bson:"like_count" json:"likeCount"`
	IsLiked      bool  `bson:"is_liked" json:"isLiked"`
	IsSubscribed bool  `bson:"is_subscribed" json:"isSubscribed"`
}

// ListQuery video listing parameters
type ListQuery struct {
	Query    string
	SortBy   string
	SortType string
	Page     int64
	Limit    int64
}

// PublishReq usecase publish request
type PublishReq struct {
	Title       string
	Description string
	VideoFile   database.FileUpload
	Thumbnail   database.FileUpload
}

// UpdateReq usecase update request, blank strings keep old values
type UpdateReq struct {
	Title       string
	Description string
	Thumbnail   *database.FileUpload
}
