package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type CommunityMessage struct {
	DocID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        int                `bson:"id" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	UserName  string             `bson:"userName" json:"userName"`
	Avatar    *string            `bson:"avatar" json:"avatar"`
	Message   string             `bson:"message" json:"message"`
	Timestamp int64              `bson:"timestamp" json:"timestamp"`
	Likes     int                `bson:"likes" json:"likes"`
	Replies   int                `bson:"replies" json:"replies"`
	Category  string             `bson:"category" json:"category"` // announcement, request, volunteer, availability, system
}
