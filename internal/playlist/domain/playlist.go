package domain

import (
	"time"

	userdomain "video_library_service/internal/user/domain"
	videodomain "video_library_service/internal/video/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist definition ordered video collection, title unique per owner
type Playlist struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	Owner       primitive.ObjectID   `bson:"owner" json:"owner"`
	Videos      []primitive.ObjectID `bson:"videos" json:"videos"`
	CreatedAt   time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updatedAt"`
}

// PlaylistView joined projection with resolved videos and owner
type PlaylistView struct {
	ID          primitive.ObjectID      `bson:"_id" json:"_id"`
	Title       string                  `bson:"title" json:"title"`
	Description string                  `bson:"description" json:"description"`
	Owner       userdomain.Profile      `bson:"owner" json:"owner"`
	Videos      []videodomain.VideoView `bson:"videos" json:"videos"`
	CreatedAt   time.Time               `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time               `bson:"updated_at" json:"updatedAt"`
}
