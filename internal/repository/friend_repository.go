package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/theEndless11/news/internal/models"
	"github.com/theEndless11/news/pkg/apperr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FriendRepository handles database operations for friend requests.
type FriendRepository struct {
	collection *mongo.Collection
}

// NewFriendRepository creates a new instance of FriendRepository.
func NewFriendRepository(db *mongo.Database) *FriendRepository {
	return &FriendRepository{
		collection: db.Collection("friend_requests"),
	}
}

// friendRequestIndex is the partial unique index on (sender, receiver)
// restricted to non-rejected requests. Concurrent upserts whose filters
// both miss can each reach the insert phase; the index makes the loser
// fail with a duplicate-key error instead of inserting a second
// pending document. Requires MongoDB 6.0+ for $in in the filter.
func friendRequestIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{
			{Key: "sender", Value: 1},
			{Key: "receiver", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": []string{models.RequestPending, models.RequestAccepted}},
			}),
	}
}

// EnsureIndexes creates the index backing the at-most-one-active-request
// invariant.
func (r *FriendRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, friendRequestIndex())
	if err != nil {
		return fmt.Errorf("failed to create friend request index: %v", err)
	}
	return nil
}

// CreateRequest inserts a pending request for the pair unless one is
// already pending or accepted. The conditional upsert handles the
// common case in one round trip; the partial unique index turns the
// concurrent-upsert race into a duplicate-key error, so two identical
// requests cannot both get through.
func (r *FriendRepository) CreateRequest(ctx context.Context, sender, receiver string) (*models.FriendRequest, error) {
	sentAt := time.Now()

	filter := bson.M{
		"sender":   sender,
		"receiver": receiver,
		"status":   bson.M{"$in": []string{models.RequestPending, models.RequestAccepted}},
	}
	update := bson.M{
		"$setOnInsert": bson.M{
			"status": models.RequestPending,
			"sentAt": sentAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Wrap(apperr.KindConflict, "friend request already sent or accepted", err)
		}
		logrus.WithError(err).Error("Failed to upsert friend request")
		return nil, apperr.Wrap(apperr.KindStorage, "failed to save friend request", err)
	}

	if result.UpsertedCount == 0 {
		return nil, apperr.New(apperr.KindConflict, "friend request already sent or accepted")
	}

	req := &models.FriendRequest{
		Sender:   sender,
		Receiver: receiver,
		Status:   models.RequestPending,
		SentAt:   sentAt,
	}
	if id, ok := result.UpsertedID.(primitive.ObjectID); ok {
		req.ID = id
	}

	logrus.WithFields(logrus.Fields{
		"sender":   sender,
		"receiver": receiver,
	}).Info("Friend request created")
	return req, nil
}

// UpdatePendingRequest flips a pending request for the pair to the
// given status and returns the updated document. Single conditional
// update, so accept/reject stay atomic.
func (r *FriendRepository) UpdatePendingRequest(ctx context.Context, sender, receiver, status string) (*models.FriendRequest, error) {
	filter := bson.M{
		"sender":   sender,
		"receiver": receiver,
		"status":   models.RequestPending,
	}
	update := bson.M{"$set": bson.M{"status": status}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var req models.FriendRequest
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.KindNotFound, "no pending request found")
		}
		logrus.WithError(err).Error("Failed to update friend request status")
		return nil, apperr.Wrap(apperr.KindStorage, "failed to update friend request", err)
	}

	return &req, nil
}

// GetPendingRequests fetches all pending requests addressed to the receiver.
func (r *FriendRepository) GetPendingRequests(ctx context.Context, receiver string) ([]models.FriendRequest, error) {
	filter := bson.M{"receiver": receiver, "status": models.RequestPending}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "failed to fetch friend requests", err)
	}
	defer cursor.Close(ctx)

	requests := make([]models.FriendRequest, 0)
	for cursor.Next(ctx) {
		var req models.FriendRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, apperr.Wrap(apperr.KindStorage, "failed to decode friend request", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}
