package domain

import (
	"time"

	"video_library_service/pkg/database"
	"video_library_service/pkg/encrypt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User definition platform account
type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Username     string               `bson:"username" json:"username"`
	Email        string               `bson:"email" json:"email"`
	Fullname     string               `bson:"fullname" json:"fullname"`
	Password     string               `bson:"password" json:"-"`
	Avatar       string               `bson:"avatar" json:"avatar"`
	CoverImage   string               `bson:"cover_image,omitempty" json:"coverImage,omitempty"`
	RefreshToken string               `bson:"refresh_token,omitempty" json:"-"`
	WatchHistory []primitive.ObjectID `bson:"watch_history" json:"watchHistory"`
	CreatedAt    time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updated_at" json:"updatedAt"`
}

// IsPasswordMatch check the input password against the stored hash
func (u *User) IsPasswordMatch(inputPwd string) error {
	return encrypt.CheckPassword(u.Password, inputPwd)
}

// Profile trimmed owner view embedded in joined listings
type Profile struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	Username string             `bson:"username" json:"username"`
	Fullname string             `bson:"fullname" json:"fullname"`
	Avatar   string             `bson:"avatar" json:"avatar"`
}

// UserQuery join conditions are used to query users
type UserQuery struct {
	ID       *primitive.ObjectID
	Username *string
	Email    *string
}

// RegisterReq usecase register request
type RegisterReq struct {
	Username   string
	Email      string
	Fullname   string
	Password   string
	Avatar     database.FileUpload
	CoverImage *database.FileUpload
}

// LoginRes usecase login response
type LoginRes struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenPair rotated token set
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ChannelView public channel profile with subscription counters
type ChannelView struct {
	ID              primitive.ObjectID `bson:"_id" json:"_id"`
	Username        string             `bson:"username" json:"username"`
	Email           string             `bson:"email" json:"email"`
	Fullname        string             `bson:"fullname" json:"fullname"`
	Avatar          string             `bson:"avatar" json:"avatar"`
	CoverImage      string             `bson:"cover_image,omitempty" json:"coverImage,omitempty"`
	SubscriberCount int64              `bson:"subscriber_count" json:"subscriberCount"`
	SubscribedTo    int64              `bson:"subscribed_to" json:"channelsSubscribedToCount"`
	IsSubscribed    bool               `bson:"is_subscribed" json:"isSubscribed"`
}
