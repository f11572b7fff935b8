// internal/services/token_service_test.go
package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niyorhq/niyor-server/internal/models"
	"github.com/niyorhq/niyor-server/internal/services"
	"github.com/niyorhq/niyor-server/internal/storage/memstore"
	"github.com/niyorhq/niyor-server/internal/utils"
)

func TestIssueTokenRequiresUIDAndEmail(t *testing.T) {
	svc := services.NewTokenService(memstore.New(), 1)

	_, err := svc.IssueToken(context.Background(), &services.IssueTokenRequest{})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 2)
}

func TestIssueTokenRefusesUnknownIdentity(t *testing.T) {
	svc := services.NewTokenService(memstore.New(), 1)

	_, err := svc.IssueToken(context.Background(), &services.IssueTokenRequest{
		UID:   "ghost",
		Email: "ghost@example.com",
	})
	assert.ErrorIs(t, err, services.ErrIdentityMismatch)
}

func TestIssueTokenRefusesEmailMismatch(t *testing.T) {
	store := memstore.New()
	userSvc := services.NewUserService(store)
	ctx := context.Background()

	_, err := userSvc.UpsertUser(ctx, &models.UpsertUserRequest{UID: "uid-1", Email: "a@example.com"})
	require.NoError(t, err)

	svc := services.NewTokenService(store, 1)
	_, err = svc.IssueToken(ctx, &services.IssueTokenRequest{UID: "uid-1", Email: "other@example.com"})
	assert.ErrorIs(t, err, services.ErrIdentityMismatch)
}

func TestIssueTokenClaimsComeFromStoredRecord(t *testing.T) {
	utils.SetJWTSecret("test-secret")

	store := memstore.New()
	userSvc := services.NewUserService(store)
	ctx := context.Background()

	_, err := userSvc.UpsertUser(ctx, &models.UpsertUserRequest{UID: "uid-1", Email: "a@example.com"})
	require.NoError(t, err)

	svc := services.NewTokenService(store, 1)
	token, err := svc.IssueToken(ctx, &services.IssueTokenRequest{UID: "uid-1", Email: "A@Example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UID)
	assert.Equal(t, "a@example.com", claims.Email, "claims mirror the stored record")
	assert.Equal(t, models.UserRoleCustomer, claims.Role)
	assert.Equal(t, "Niyor", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.InDelta(t, 3600, claims.ExpiresAt.Unix()-claims.IssuedAt.Unix(), 1)
}
