package domain

import (
	"time"

	userdomain "video_library_service/internal/user/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment definition video comment
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Content   string             `bson:"content" json:"content"`
	Video     primitive.ObjectID `bson:"video" json:"video"`
	Owner     primitive.ObjectID `bson:"owner" json:"owner"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// CommentView owner-joined projection enriched for the requester
type CommentView struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Content   string             `bson:"content" json:"content"`
	Video     primitive.ObjectID `bson:"video" json:"video"`
	Owner     userdomain.Profile `bson:"owner" json:"owner"`
	LikeCount int64              `bson:"like_count" json:"likeCount"`
	Liked     bool               `bson:"liked" json:"liked"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
