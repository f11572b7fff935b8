// internal/storage/mongostore/user_store.go
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/niyorhq/niyor-server/internal/database"
	"github.com/niyorhq/niyor-server/internal/models"
	"github.com/niyorhq/niyor-server/internal/storage"
)

// UpsertByUID runs a single atomic upsert keyed by uid. Mutable profile
// fields go through $set on every call; the identity fields ride in
// $setOnInsert and are never overwritten once the record exists.
func (s *Store) UpsertByUID(ctx context.Context, u *models.UserUpsert) (*storage.UpsertResult, error) {
	filter := bson.D{{Key: "uid", Value: u.UID}}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "uid", Value: u.UID},
			{Key: "name", Value: u.Name},
			{Key: "photoURL", Value: u.PhotoURL},
			{Key: "lastLoginAt", Value: u.LastLoginAt},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "email", Value: u.Email},
			{Key: "phone", Value: u.Phone},
			{Key: "role", Value: u.Role},
			{Key: "status", Value: u.Status},
			{Key: "createdAt", Value: u.CreatedAt},
		}},
	}

	res, err := s.col(database.ColUsers).UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return nil, wrapError(err)
	}

	out := &storage.UpsertResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if oid, ok := res.UpsertedID.(bson.ObjectID); ok {
		out.UpsertedID = oid.Hex()
	}
	return out, nil
}

func (s *Store) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	u, err := findOne[models.User](ctx, s.col(database.ColUsers), bson.D{{Key: "uid", Value: uid}})
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, storage.ErrNotFound
	}
	return u, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := findOne[models.User](ctx, s.col(database.ColUsers), bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, storage.ErrNotFound
	}
	return u, nil
}

func (s *Store) List(ctx context.Context) ([]*models.User, error) {
	return findMany[models.User](ctx, s.col(database.ColUsers), bson.D{})
}
