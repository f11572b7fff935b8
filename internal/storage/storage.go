// internal/storage/storage.go

// Package storage defines the persistence interfaces the services are built
// against. Concrete drivers live in subpackages (mongostore for MongoDB,
// memstore for tests) and translate their engine errors into the sentinel
// errors declared here, so no driver type leaks past this boundary.
package storage

import (
	"context"
	"regexp"

	"github.com/niyorhq/niyor-server/internal/models"
)

type UserStore interface {
	// UpsertByUID performs the atomic update-or-insert keyed by uid.
	UpsertByUID(ctx context.Context, u *models.UserUpsert) (*UpsertResult, error)
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}

type ProductStore interface {
	Insert(ctx context.Context, p *models.Product) (string, error)
	// FindBySlug returns (nil, nil) when no product carries the slug.
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	ListActive(ctx context.Context) ([]*models.Product, error)
	// UpdateByID applies set and removes the unset fields in one call.
	UpdateByID(ctx context.Context, id string, set map[string]interface{}, unset []string) (*UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type UpsertResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedCount int64  `json:"upsertedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ValidateID reports whether id is a well-formed document identifier.
// Drivers that parse ids natively may perform their own check; this keeps
// the in-memory store's behavior aligned with MongoDB's ObjectID format.
func ValidateID(id string) error {
	if !objectIDPattern.MatchString(id) {
		return ErrInvalidID
	}
	return nil
}
