// internal/services/user_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/niyorhq/niyor-server/internal/models"
	"github.com/niyorhq/niyor-server/internal/storage"
	"github.com/niyorhq/niyor-server/internal/utils"
)

type UserService struct {
	users storage.UserStore
}

func NewUserService(users storage.UserStore) *UserService {
	return &UserService{users: users}
}

// UpsertUser stores or refreshes a profile keyed by the external identity
// id. Name, photo and last-login are overwritten on every call; email,
// phone, role, status and the creation timestamp are set only when the uid
// is first seen. The store's atomic upsert serializes concurrent calls for
// the same uid.
func (s *UserService) UpsertUser(ctx context.Context, req *models.UpsertUserRequest) (*storage.UpsertResult, error) {
	if violations := utils.GetViolations(utils.ValidateStruct(req)); len(violations) > 0 {
		return nil, &models.ValidationError{Violations: violations}
	}

	now := time.Now().UTC()

	lastLogin := now
	if req.LastLoginAt != nil {
		lastLogin = *req.LastLoginAt
	}
	created := now
	if req.CreatedAt != nil {
		created = *req.CreatedAt
	}

	result, err := s.users.UpsertByUID(ctx, &models.UserUpsert{
		UID:         req.UID,
		Name:        req.Name,
		PhotoURL:    req.PhotoURL,
		LastLoginAt: lastLogin,
		Email:       req.Email,
		Phone:       req.Phone,
		Role:        models.UserRoleCustomer,
		Status:      models.UserStatusActive,
		CreatedAt:   created,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return result, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.users.GetByEmail(ctx, email)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}
