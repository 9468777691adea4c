package domain

import (
	"time"

	userdomain "video_library_service/internal/user/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription definition subscriber-to-channel edge, unique per pair
type Subscription struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Subscriber primitive.ObjectID `bson:"subscriber" json:"subscriber"`
	Channel    primitive.ObjectID `bson:"channel" json:"channel"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}

// ToggleRes the requester's profile with the new subscription state
type ToggleRes struct {
	Subscriber   userdomain.Profile `json:"subscriber"`
	IsSubscribed bool               `json:"isSubscribed"`
}
