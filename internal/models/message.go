package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a feed entry. Senders and recipients are raw usernames,
// not references into the users collection.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      string             `bson:"user" json:"user"`
	Text      string             `bson:"text,omitempty" json:"text,omitempty"`
	File      string             `bson:"file,omitempty" json:"file,omitempty"`
	Time      time.Time          `bson:"time" json:"time"`
	IsPrivate bool               `bson:"isPrivate" json:"isPrivate"`
	ToUser    string             `bson:"toUser,omitempty" json:"toUser,omitempty"`
}
