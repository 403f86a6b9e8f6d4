package handlers

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/theEndless11/news/internal/services"
	"github.com/theEndless11/news/internal/uploads"
)

// maxUploadMemory bounds the in-memory part of multipart parsing.
const maxUploadMemory = 10 << 20

// MessageHandler manages HTTP endpoints for the message feed.
type MessageHandler struct {
	Service *services.MessageService
	Uploads *uploads.Store
}

// NewMessageHandler initializes a new MessageHandler.
func NewMessageHandler(service *services.MessageService, store *uploads.Store) *MessageHandler {
	return &MessageHandler{Service: service, Uploads: store}
}

// SendMessageHandler stores a public or private message, persisting an
// attached file to the upload directory first when one is present.
func (h *MessageHandler) SendMessageHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.WithError(err).Warn("Failed to parse multipart form")
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Message: "Error sending message",
			Error:   "invalid multipart form",
		})
		return
	}

	var filePath string
	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		filePath, err = h.Uploads.Save(file, header.Filename)
		if err != nil {
			log.WithError(err).Error("Failed to store attachment")
			respondError(w, http.StatusInternalServerError, "Error sending message", err)
			return
		}
	case errors.Is(err, http.ErrMissingFile):
		// no attachment
	default:
		log.WithError(err).Warn("Failed to read attachment from form")
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Message: "Error sending message",
			Error:   "invalid file field",
		})
		return
	}

	input := services.SendMessageInput{
		User:      r.FormValue("user"),
		Text:      r.FormValue("text"),
		ToUser:    r.FormValue("toUser"),
		IsPrivate: r.FormValue("isPrivate"),
		File:      filePath,
	}

	msg, err := h.Service.SendMessage(r.Context(), input)
	if err != nil {
		log.WithError(err).Warn("Failed to send message")
		respondError(w, statusFor(err), "Error sending message", err)
		return
	}

	log.WithFields(log.Fields{
		"user":      msg.User,
		"isPrivate": msg.IsPrivate,
		"file":      msg.File,
	}).Info("Message sent")
	respondMessage(w, "Message sent successfully!")
}

// GetMessagesHandler returns the feed, optionally filtered to what a
// single user may see.
func (h *MessageHandler) GetMessagesHandler(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	messages, err := h.Service.GetMessages(r.Context(), username)
	if err != nil {
		log.WithError(err).Error("Failed to fetch messages")
		respondError(w, http.StatusInternalServerError, "Error fetching messages", err)
		return
	}

	respondJSON(w, http.StatusOK, messages)
}
