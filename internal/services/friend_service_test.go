package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theEndless11/news/internal/models"
	"github.com/theEndless11/news/pkg/apperr"
)

type fakeFriendStore struct {
	requests []models.FriendRequest
}

func (f *fakeFriendStore) CreateRequest(_ context.Context, sender, receiver string) (*models.FriendRequest, error) {
	for _, req := range f.requests {
		if req.Sender == sender && req.Receiver == receiver &&
			(req.Status == models.RequestPending || req.Status == models.RequestAccepted) {
			return nil, apperr.New(apperr.KindConflict, "friend request already sent or accepted")
		}
	}
	req := models.FriendRequest{
		Sender:   sender,
		Receiver: receiver,
		Status:   models.RequestPending,
		SentAt:   time.Now(),
	}
	f.requests = append(f.requests, req)
	return &req, nil
}

func (f *fakeFriendStore) UpdatePendingRequest(_ context.Context, sender, receiver, status string) (*models.FriendRequest, error) {
	for i := range f.requests {
		req := &f.requests[i]
		if req.Sender == sender && req.Receiver == receiver && req.Status == models.RequestPending {
			req.Status = status
			return req, nil
		}
	}
	return nil, apperr.New(apperr.KindNotFound, "no pending request found")
}

func (f *fakeFriendStore) GetPendingRequests(_ context.Context, receiver string) ([]models.FriendRequest, error) {
	pending := make([]models.FriendRequest, 0)
	for _, req := range f.requests {
		if req.Receiver == receiver && req.Status == models.RequestPending {
			pending = append(pending, req)
		}
	}
	return pending, nil
}

func TestSendRequestValidatesInput(t *testing.T) {
	service := NewFriendService(&fakeFriendStore{})

	_, err := service.SendRequest(context.Background(), "", "bob")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = service.SendRequest(context.Background(), "alice", "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestSendRequestDuplicateIsConflict(t *testing.T) {
	store := &fakeFriendStore{}
	service := NewFriendService(store)
	ctx := context.Background()

	_, err := service.SendRequest(ctx, "alice", "bob")
	require.NoError(t, err)

	_, err = service.SendRequest(ctx, "alice", "bob")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Len(t, store.requests, 1)
}

func TestAcceptRequestLifecycle(t *testing.T) {
	store := &fakeFriendStore{}
	service := NewFriendService(store)
	ctx := context.Background()

	// accepting with nothing pending fails
	_, err := service.AcceptRequest(ctx, "alice", "bob")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = service.SendRequest(ctx, "alice", "bob")
	require.NoError(t, err)

	req, err := service.AcceptRequest(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, models.RequestAccepted, req.Status)

	// second accept finds no pending request
	_, err = service.AcceptRequest(ctx, "alice", "bob")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// an accepted pair still blocks a new request
	_, err = service.SendRequest(ctx, "alice", "bob")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestRejectedPairMaySendAgain(t *testing.T) {
	store := &fakeFriendStore{}
	service := NewFriendService(store)
	ctx := context.Background()

	_, err := service.SendRequest(ctx, "alice", "bob")
	require.NoError(t, err)

	req, err := service.RejectRequest(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, req.Status)

	_, err = service.SendRequest(ctx, "alice", "bob")
	require.NoError(t, err)
}

func TestGetPendingRequestsRequiresReceiver(t *testing.T) {
	service := NewFriendService(&fakeFriendStore{})

	_, err := service.GetPendingRequests(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestGetPendingRequests(t *testing.T) {
	store := &fakeFriendStore{}
	service := NewFriendService(store)
	ctx := context.Background()

	_, err := service.SendRequest(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = service.SendRequest(ctx, "carol", "bob")
	require.NoError(t, err)
	_, err = service.SendRequest(ctx, "alice", "carol")
	require.NoError(t, err)

	pending, err := service.GetPendingRequests(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}
