package repository

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/theEndless11/news/internal/models"
	"github.com/theEndless11/news/pkg/apperr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageRepository handles database operations for the message feed.
type MessageRepository struct {
	collection *mongo.Collection
}

// NewMessageRepository creates a new instance of MessageRepository.
func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{
		collection: db.Collection("messages"),
	}
}

// CreateMessage inserts a message, stamping its time if unset.
func (r *MessageRepository) CreateMessage(ctx context.Context, msg *models.Message) (*models.Message, error) {
	if msg.Time.IsZero() {
		msg.Time = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, msg)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert message")
		return nil, apperr.Wrap(apperr.KindStorage, "failed to save message", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		msg.ID = id
	}

	return msg, nil
}

// GetMessages returns the feed sorted ascending by time. With a
// username it returns every public message plus the private ones
// addressed to that user; with an empty username it returns everything.
func (r *MessageRepository) GetMessages(ctx context.Context, username string) ([]models.Message, error) {
	filter := bson.M{}
	if username != "" {
		filter = bson.M{
			"$or": []bson.M{
				{"isPrivate": false},
				{"toUser": username},
			},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "failed to fetch messages", err)
	}
	defer cursor.Close(ctx)

	messages := make([]models.Message, 0)
	for cursor.Next(ctx) {
		var msg models.Message
		if err := cursor.Decode(&msg); err != nil {
			return nil, apperr.Wrap(apperr.KindStorage, "failed to decode message", err)
		}
		messages = append(messages, msg)
	}

	return messages, nil
}
