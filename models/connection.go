package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
	ConnectionRejected ConnectionStatus = "rejected"
)

// Direction tags on listed requests, relative to the requesting user.
const (
	DirectionSent     = "sent"
	DirectionReceived = "received"
)

// MaxConnectionMessageLen is the cap applied to request messages. Longer
// messages are truncated, not rejected.
const MaxConnectionMessageLen = 500

type ConnectionRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FromUserID  primitive.ObjectID `bson:"fromUserId" json:"fromUserId"`
	ToUserID    primitive.ObjectID `bson:"toUserId" json:"toUserId"`
	Message     string             `bson:"message" json:"message"`
	Status      ConnectionStatus   `bson:"status" json:"status"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
	RespondedAt *int64             `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`
	Direction   string             `bson:"-" json:"direction,omitempty"` // populated by list responses
}
