package services

import (
	"context"

	"github.com/theEndless11/news/internal/models"
	"github.com/theEndless11/news/pkg/apperr"
)

// FriendRequestStore is the persistence surface the friend service needs.
type FriendRequestStore interface {
	CreateRequest(ctx context.Context, sender, receiver string) (*models.FriendRequest, error)
	UpdatePendingRequest(ctx context.Context, sender, receiver, status string) (*models.FriendRequest, error)
	GetPendingRequests(ctx context.Context, receiver string) ([]models.FriendRequest, error)
}

// FriendService handles business logic for friend requests.
type FriendService struct {
	requests FriendRequestStore
}

// NewFriendService creates a new FriendService.
func NewFriendService(requests FriendRequestStore) *FriendService {
	return &FriendService{requests: requests}
}

// SendRequest creates a pending request unless one is already pending
// or accepted for the pair.
func (s *FriendService) SendRequest(ctx context.Context, sender, receiver string) (*models.FriendRequest, error) {
	if sender == "" || receiver == "" {
		return nil, apperr.New(apperr.KindValidation, "sender and receiver are required")
	}
	return s.requests.CreateRequest(ctx, sender, receiver)
}

// AcceptRequest moves a pending request for the pair to accepted.
func (s *FriendService) AcceptRequest(ctx context.Context, sender, receiver string) (*models.FriendRequest, error) {
	if sender == "" || receiver == "" {
		return nil, apperr.New(apperr.KindValidation, "sender and receiver are required")
	}
	return s.requests.UpdatePendingRequest(ctx, sender, receiver, models.RequestAccepted)
}

// RejectRequest moves a pending request for the pair to rejected. A
// rejected pair may send a fresh request afterwards.
func (s *FriendService) RejectRequest(ctx context.Context, sender, receiver string) (*models.FriendRequest, error) {
	if sender == "" || receiver == "" {
		return nil, apperr.New(apperr.KindValidation, "sender and receiver are required")
	}
	return s.requests.UpdatePendingRequest(ctx, sender, receiver, models.RequestRejected)
}

// GetPendingRequests fetches all pending requests for the receiver.
func (s *FriendService) GetPendingRequests(ctx context.Context, receiver string) ([]models.FriendRequest, error) {
	if receiver == "" {
		return nil, apperr.New(apperr.KindValidation, "receiver is required")
	}
	return s.requests.GetPendingRequests(ctx, receiver)
}
