// internal/services/user_service_test.go
package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niyorhq/niyor-server/internal/models"
	"github.com/niyorhq/niyor-server/internal/services"
	"github.com/niyorhq/niyor-server/internal/storage/memstore"
)

func TestUpsertUserRequiresEmailAndUID(t *testing.T) {
	svc := services.NewUserService(memstore.New())

	_, err := svc.UpsertUser(context.Background(), &models.UpsertUserRequest{Name: "No Identity"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"uid is required", "email is required"}, verr.Violations)
}

func TestUpsertUserFirstWriteSetsImmutableFields(t *testing.T) {
	store := memstore.New()
	svc := services.NewUserService(store)
	ctx := context.Background()

	phone := "+8801000000000"
	result, err := svc.UpsertUser(ctx, &models.UpsertUserRequest{
		UID:      "uid-1",
		Email:    "a@example.com",
		Name:     "Ayesha",
		PhotoURL: "https://cdn.example.com/a.png",
		Phone:    &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.UpsertedCount)
	assert.NotEmpty(t, result.UpsertedID)

	u, err := store.GetByUID(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleCustomer, u.Role)
	assert.Equal(t, models.UserStatusActive, u.Status)
	assert.Equal(t, "a@example.com", u.Email)
	require.NotNil(t, u.Phone)
	assert.Equal(t, phone, *u.Phone)
	assert.False(t, u.CreatedAt.IsZero())
	assert.False(t, u.LastLoginAt.IsZero())
}

func TestUpsertUserIsIdempotentOnUID(t *testing.T) {
	store := memstore.New()
	svc := services.NewUserService(store)
	ctx := context.Background()

	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	_, err := svc.UpsertUser(ctx, &models.UpsertUserRequest{
		UID:       "uid-1",
		Email:     "a@example.com",
		Name:      "Ayesha",
		CreatedAt: &created,
	})
	require.NoError(t, err)

	later := time.Date(2026, 6, 7, 8, 9, 10, 0, time.UTC)
	result, err := svc.UpsertUser(ctx, &models.UpsertUserRequest{
		UID:         "uid-1",
		Email:       "changed@example.com",
		Name:        "Ayesha K",
		PhotoURL:    "https://cdn.example.com/new.png",
		LastLoginAt: &later,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.MatchedCount)
	assert.Zero(t, result.UpsertedCount)

	u, err := store.GetByUID(ctx, "uid-1")
	require.NoError(t, err)

	// mutable fields refreshed
	assert.Equal(t, "Ayesha K", u.Name)
	assert.Equal(t, "https://cdn.example.com/new.png", u.PhotoURL)
	assert.Equal(t, later, u.LastLoginAt)

	// set-on-insert fields untouched
	assert.Equal(t, "a@example.com", u.Email)
	assert.Equal(t, models.UserRoleCustomer, u.Role)
	assert.Equal(t, models.UserStatusActive, u.Status)
	assert.Equal(t, created, u.CreatedAt)
}

func TestGetUserByEmailAndList(t *testing.T) {
	store := memstore.New()
	svc := services.NewUserService(store)
	ctx := context.Background()

	_, err := svc.UpsertUser(ctx, &models.UpsertUserRequest{UID: "uid-1", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = svc.UpsertUser(ctx, &models.UpsertUserRequest{UID: "uid-2", Email: "b@example.com"})
	require.NoError(t, err)

	u, err := svc.GetUserByEmail(ctx, "b@example.com")
	require.NoError(t, err)
	assert.Equal(t, "uid-2", u.UID)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
