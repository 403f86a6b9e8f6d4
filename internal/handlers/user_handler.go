package handlers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/theEndless11/news/internal/services"
)

// UserHandler handles HTTP requests related to user operations.
type UserHandler struct {
	Service *services.UserService
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

// RegisterUserHandler handles user registration. Any failure, including
// a taken username, responds 400 per the endpoint contract.
func (h *UserHandler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.WithError(err).Warn("Failed to decode registration request")
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Message: "Error registering user",
			Error:   "invalid request payload",
		})
		return
	}

	user, err := h.Service.RegisterUser(r.Context(), body.Username)
	if err != nil {
		log.WithError(err).Warn("Failed to register user")
		respondError(w, http.StatusBadRequest, "Error registering user", err)
		return
	}

	log.WithField("userID", user.ID.Hex()).Info("User registered successfully")
	respondMessage(w, "User registered successfully!")
}

// GetActiveUsersHandler returns all users with active status.
func (h *UserHandler) GetActiveUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetActiveUsers(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to fetch users")
		respondError(w, http.StatusInternalServerError, "Error fetching users", err)
		return
	}

	respondJSON(w, http.StatusOK, users)
}
