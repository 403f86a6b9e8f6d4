package services

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/theEndless11/news/internal/models"
	"github.com/theEndless11/news/pkg/apperr"
)

// MessageStore is the persistence surface the message service needs.
type MessageStore interface {
	CreateMessage(ctx context.Context, msg *models.Message) (*models.Message, error)
	GetMessages(ctx context.Context, username string) ([]models.Message, error)
}

// SendMessageInput carries the raw form fields of a send-message
// request. IsPrivate stays a string until ParseIsPrivate interprets it.
type SendMessageInput struct {
	User      string
	Text      string
	ToUser    string
	IsPrivate string
	File      string
}

// MessageService handles business logic for the message feed.
type MessageService struct {
	messages MessageStore
}

// NewMessageService creates a new MessageService.
func NewMessageService(messages MessageStore) *MessageService {
	return &MessageService{messages: messages}
}

// ParseIsPrivate interprets the isPrivate form field. An absent field
// means public; anything else must parse as a strconv boolean, so the
// literal "false" stays false instead of being coerced by the storage
// layer.
func ParseIsPrivate(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperr.Wrap(apperr.KindValidation, "invalid isPrivate value", err)
	}
	return value, nil
}

// SendMessage validates the input and stores the message.
func (s *MessageService) SendMessage(ctx context.Context, in SendMessageInput) (*models.Message, error) {
	if in.User == "" {
		return nil, apperr.New(apperr.KindValidation, "user is required")
	}

	isPrivate, err := ParseIsPrivate(in.IsPrivate)
	if err != nil {
		logrus.WithField("isPrivate", in.IsPrivate).Warn("Unparsable isPrivate field")
		return nil, err
	}

	msg := &models.Message{
		User:      in.User,
		Text:      in.Text,
		File:      in.File,
		IsPrivate: isPrivate,
		ToUser:    in.ToUser,
	}
	return s.messages.CreateMessage(ctx, msg)
}

// GetMessages returns the feed visible to username, or the whole feed
// when username is empty.
func (s *MessageService) GetMessages(ctx context.Context, username string) ([]models.Message, error) {
	return s.messages.GetMessages(ctx, username)
}
