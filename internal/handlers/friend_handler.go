package handlers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/theEndless11/news/internal/services"
)

// FriendHandler manages HTTP endpoints related to friend requests.
type FriendHandler struct {
	Service *services.FriendService
}

// NewFriendHandler initializes a new FriendHandler.
func NewFriendHandler(service *services.FriendService) *FriendHandler {
	return &FriendHandler{Service: service}
}

type friendRequestBody struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
}

func decodeFriendRequestBody(w http.ResponseWriter, r *http.Request, message string) (friendRequestBody, bool) {
	var body friendRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.WithError(err).Warn("Failed to decode friend request body")
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Message: message,
			Error:   "invalid request payload",
		})
		return body, false
	}
	return body, true
}

// SendFriendRequestHandler creates a pending request for the pair.
func (h *FriendHandler) SendFriendRequestHandler(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeFriendRequestBody(w, r, "Error sending friend request")
	if !ok {
		return
	}

	if _, err := h.Service.SendRequest(r.Context(), body.Sender, body.Receiver); err != nil {
		log.WithFields(log.Fields{
			"sender":   body.Sender,
			"receiver": body.Receiver,
			"error":    err,
		}).Warn("Failed to send friend request")
		respondError(w, statusFor(err), "Error sending friend request", err)
		return
	}

	respondMessage(w, "Friend request sent successfully!")
}

// AcceptFriendRequestHandler flips a pending request to accepted.
func (h *FriendHandler) AcceptFriendRequestHandler(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeFriendRequestBody(w, r, "Error accepting friend request")
	if !ok {
		return
	}

	if _, err := h.Service.AcceptRequest(r.Context(), body.Sender, body.Receiver); err != nil {
		log.WithFields(log.Fields{
			"sender":   body.Sender,
			"receiver": body.Receiver,
			"error":    err,
		}).Warn("Failed to accept friend request")
		respondError(w, statusFor(err), "Error accepting friend request", err)
		return
	}

	respondMessage(w, "Friend request accepted!")
}

// RejectFriendRequestHandler flips a pending request to rejected.
func (h *FriendHandler) RejectFriendRequestHandler(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeFriendRequestBody(w, r, "Error rejecting friend request")
	if !ok {
		return
	}

	if _, err := h.Service.RejectRequest(r.Context(), body.Sender, body.Receiver); err != nil {
		log.WithFields(log.Fields{
			"sender":   body.Sender,
			"receiver": body.Receiver,
			"error":    err,
		}).Warn("Failed to reject friend request")
		respondError(w, statusFor(err), "Error rejecting friend request", err)
		return
	}

	respondMessage(w, "Friend request rejected!")
}

// GetPendingRequestsHandler lists pending requests for a receiver.
func (h *FriendHandler) GetPendingRequestsHandler(w http.ResponseWriter, r *http.Request) {
	receiver := r.URL.Query().Get("receiver")

	requests, err := h.Service.GetPendingRequests(r.Context(), receiver)
	if err != nil {
		log.WithError(err).Error("Failed to fetch pending friend requests")
		respondError(w, statusFor(err), "Error fetching friend requests", err)
		return
	}

	respondJSON(w, http.StatusOK, requests)
}
