package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TargetKind what a like points at
type TargetKind string

const (
	// KindVideo like on a video
	KindVideo TargetKind = "video"
	// KindComment like on a comment
	KindComment TargetKind = "comment"
	// KindTweet like on a tweet
	KindTweet TargetKind = "tweet"
)

// Like definition one user's like on a single target,
// unique per (liked_by, kind, target_id)
type Like struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	LikedBy   primitive.ObjectID `bson:"liked_by" json:"likedBy"`
	Kind      TargetKind         `bson:"kind" json:"kind"`
	TargetID  primitive.ObjectID `bson:"target_id" json:"targetId"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// ToggleRes usecase toggle response
type ToggleRes struct {
	Liked bool `json:"liked"`
}
