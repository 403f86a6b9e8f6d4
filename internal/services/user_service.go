package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/theEndless11/news/internal/models"
	"github.com/theEndless11/news/pkg/apperr"
)

// UserStore is the persistence surface the user service needs.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetActiveUsers(ctx context.Context) ([]models.User, error)
}

// UserService encapsulates the business logic for user operations.
type UserService struct {
	users UserStore
}

// NewUserService creates a new instance of UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// RegisterUser creates an account with the default active status.
func (s *UserService) RegisterUser(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		logrus.Warn("Registration attempted without a username")
		return nil, apperr.New(apperr.KindValidation, "username is required")
	}

	user := &models.User{
		Username: username,
		Status:   models.StatusActive,
	}
	return s.users.CreateUser(ctx, user)
}

// GetActiveUsers lists every user with active status.
func (s *UserService) GetActiveUsers(ctx context.Context) ([]models.User, error) {
	return s.users.GetActiveUsers(ctx)
}
