package domain

import (
	"time"

	userdomain "video_library_service/internal/user/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tweet definition short channel post
type Tweet struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Content   string             `bson:"content" json:"content"`
	Owner     primitive.ObjectID `bson:"owner" json:"owner"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// TweetView owner-joined projection enriched for the requester
type TweetView struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Content   string             `bson:"content" json:"content"`
	Owner     userdomain.Profile `bson:"owner" json:"owner"`
	LikeCount int64              `bson:"like_count" json:"likeCount"`
	Liked     bool               `bson:"liked" json:"liked"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
