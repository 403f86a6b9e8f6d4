package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusActive is the default status assigned on registration. Users
// with any other status are hidden from the active listing.
const StatusActive = "active"

// User represents a registered account. There are no credentials; the
// username doubles as the identity everywhere else in the system.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
