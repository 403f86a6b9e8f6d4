package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

// FriendRequest links two usernames. At most one request per
// (sender, receiver) pair may be pending or accepted at a time;
// rejected requests do not block a new one.
type FriendRequest struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Sender   string             `bson:"sender" json:"sender"`
	Receiver string             `bson:"receiver" json:"receiver"`
	Status   string             `bson:"status" json:"status"`
	SentAt   time.Time          `bson:"sentAt" json:"sentAt"`
}
