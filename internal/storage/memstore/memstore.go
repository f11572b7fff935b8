// internal/storage/memstore/memstore.go

// Package memstore is an in-memory implementation of the storage interfaces
// used by the test suites. It mirrors the MongoDB driver's observable
// behavior: atomic upserts keyed by uid, unique slug/uid/email constraints
// reported as storage.ErrDuplicate, and ObjectID-shaped identifiers.
package memstore

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/niyorhq/niyor-server/internal/models"
	"github.com/niyorhq/niyor-server/internal/storage"
)

type Store struct {
	mu       sync.RWMutex
	users    map[string]*models.User    // keyed by uid
	products map[string]*models.Product // keyed by hex id
}

func New() *Store {
	return &Store{
		users:    make(map[string]*models.User),
		products: make(map[string]*models.Product),
	}
}

// ----------------------------------------------------------------------------
// UserStore
// ----------------------------------------------------------------------------

func (s *Store) UpsertByUID(ctx context.Context, u *models.UserUpsert) (*storage.UpsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.users[u.UID]; ok {
		existing.Name = u.Name
		existing.PhotoURL = u.PhotoURL
		existing.LastLoginAt = u.LastLoginAt
		return &storage.UpsertResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	for _, other := range s.users {
		if other.Email == u.Email {
			return nil, storage.ErrDuplicate
		}
	}

	user := &models.User{
		ID:          bson.NewObjectID(),
		UID:         u.UID,
		Name:        u.Name,
		PhotoURL:    u.PhotoURL,
		Email:       u.Email,
		Phone:       u.Phone,
		Role:        u.Role,
		Status:      u.Status,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
	s.users[u.UID] = user
	return &storage.UpsertResult{UpsertedCount: 1, UpsertedID: user.ID.Hex()}, nil
}

func (s *Store) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[uid]
	if !ok {
		return nil, storage.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) List(ctx context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

// ----------------------------------------------------------------------------
// ProductStore
// ----------------------------------------------------------------------------

func (s *Store) Insert(ctx context.Context, p *models.Product) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.products {
		if other.Slug == p.Slug {
			return "", storage.ErrDuplicate
		}
	}

	clone := *p
	clone.ID = bson.NewObjectID()
	s.products[clone.ID.Hex()] = &clone
	return clone.ID.Hex(), nil
}

func (s *Store) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Slug == slug {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if err := storage.ValidateID(id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (s *Store) ListActive(ctx context.Context) ([]*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*models.Product{}
	for _, p := range s.products {
		if p.IsActive {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *Store) UpdateByID(ctx context.Context, id string, set map[string]interface{}, unset []string) (*storage.UpdateResult, error) {
	if err := storage.ValidateID(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if slug, ok := set["slug"].(string); ok {
		for otherID, other := range s.products {
			if otherID != id && other.Slug == slug {
				return nil, storage.ErrDuplicate
			}
		}
	}

	for field, value := range set {
		applyField(p, field, value)
	}
	for _, field := range unset {
		clearField(p, field)
	}

	return &storage.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *Store) DeleteByID(ctx context.Context, id string) (int64, error) {
	if err := storage.ValidateID(id); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return 0, storage.ErrNotFound
	}
	delete(s.products, id)
	return 1, nil
}

func applyField(p *models.Product, field string, value interface{}) {
	switch field {
	case "name":
		p.Name = value.(string)
	case "slug":
		p.Slug = value.(string)
	case "sku":
		p.SKU = value.(string)
	case "description":
		p.Description = value.(string)
	case "fabric":
		p.Fabric = value.(string)
	case "category":
		p.Category = value.(string)
	case "price":
		p.Price = value.(float64)
	case "discountPrice":
		v := value.(float64)
		p.DiscountPrice = &v
	case "sizes":
		p.Sizes = value.([]string)
	case "colors":
		p.Colors = value.([]string)
	case "images":
		p.Images = value.([]string)
	case "stockQty":
		p.StockQty = value.(float64)
	case "soldQty":
		p.SoldQty = value.(float64)
	case "inStock":
		p.InStock = value.(bool)
	case "isFeatured":
		p.IsFeatured = value.(bool)
	case "isActive":
		p.IsActive = value.(bool)
	case "updatedAt":
		p.UpdatedAt = value.(time.Time)
	}
}

func clearField(p *models.Product, field string) {
	switch field {
	case "sku":
		p.SKU = ""
	case "fabric":
		p.Fabric = ""
	case "discountPrice":
		p.DiscountPrice = nil
	}
}
