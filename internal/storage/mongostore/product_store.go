// internal/storage/mongostore/product_store.go
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/niyorhq/niyor-server/internal/database"
	"github.com/niyorhq/niyor-server/internal/models"
	"github.com/niyorhq/niyor-server/internal/storage"
)

func (s *Store) Insert(ctx context.Context, p *models.Product) (string, error) {
	res, err := s.col(database.ColProducts).InsertOne(ctx, p)
	if err != nil {
		return "", wrapError(err)
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (s *Store) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return findOne[models.Product](ctx, s.col(database.ColProducts), bson.D{{Key: "slug", Value: slug}})
}

func (s *Store) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	p, err := findOne[models.Product](ctx, s.col(database.ColProducts), bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, storage.ErrNotFound
	}
	return p, nil
}

func (s *Store) ListActive(ctx context.Context) ([]*models.Product, error) {
	return findMany[models.Product](ctx, s.col(database.ColProducts), bson.D{{Key: "isActive", Value: true}})
}

func (s *Store) UpdateByID(ctx context.Context, id string, set map[string]interface{}, unset []string) (*storage.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	update := bson.D{{Key: "$set", Value: bson.M(set)}}
	if len(unset) > 0 {
		fields := bson.M{}
		for _, field := range unset {
			fields[field] = ""
		}
		update = append(update, bson.E{Key: "$unset", Value: fields})
	}

	res, err := s.col(database.ColProducts).UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return nil, wrapError(err)
	}
	if res.MatchedCount == 0 {
		return nil, storage.ErrNotFound
	}
	return &storage.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (s *Store) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	res, err := s.col(database.ColProducts).DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return 0, wrapError(err)
	}
	if res.DeletedCount == 0 {
		return 0, storage.ErrNotFound
	}
	return res.DeletedCount, nil
}
