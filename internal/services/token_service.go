// internal/services/token_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/niyorhq/niyor-server/internal/models"
	"github.com/niyorhq/niyor-server/internal/storage"
	"github.com/niyorhq/niyor-server/internal/utils"
)

// ErrIdentityMismatch is returned when the caller's uid/email pair does not
// resolve to a stored user. No token is issued for unknown identities.
var ErrIdentityMismatch = errors.New("identity could not be verified")

type TokenService struct {
	users storage.UserStore
	ttl   time.Duration
}

func NewTokenService(users storage.UserStore, ttlHours int) *TokenService {
	return &TokenService{
		users: users,
		ttl:   time.Duration(ttlHours) * time.Hour,
	}
}

type IssueTokenRequest struct {
	UID   string `json:"uid" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// IssueToken verifies the caller against the user store before signing.
// The claims are built from the stored record, so a caller can never mint
// a token with a role or email it does not hold.
func (s *TokenService) IssueToken(ctx context.Context, req *IssueTokenRequest) (string, error) {
	if violations := utils.GetViolations(utils.ValidateStruct(req)); len(violations) > 0 {
		return "", &models.ValidationError{Violations: violations}
	}

	user, err := s.users.GetByUID(ctx, req.UID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrIdentityMismatch
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if !strings.EqualFold(user.Email, req.Email) {
		return "", ErrIdentityMismatch
	}

	return utils.GenerateJWT(user, s.ttl)
}
