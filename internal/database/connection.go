// internal/database/connection.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/niyorhq/niyor-server/internal/config"
)

// Collection names. Cart, payment and review are placeholders carried over
// from the data layout; no API writes to them yet.
const (
	ColUsers    = "users"
	ColProducts = "products"
	ColCart     = "cart"
	ColPayment  = "payment"
	ColReview   = "review"
)

// Initialize connects to MongoDB and verifies the connection with a ping.
// Callers treat a returned error as fatal: the process exits rather than
// serving without a store.
func Initialize(cfg config.DatabaseConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := client.Database(cfg.Name)

	if err := EnsureIndexes(ctx, db); err != nil {
		logrus.WithError(err).Warn("Failed to ensure indexes")
	}

	logrus.WithField("database", cfg.Name).Info("Database connection established")
	return db, nil
}

func Close(db *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Client().Disconnect(ctx); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
		return
	}
	logrus.Info("Database connection closed")
}

// EnsureIndexes creates the indexes the write paths rely on. The unique
// slug index is the authoritative guard against duplicate slugs; the
// application-level existence check is only a friendlier pre-check.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	type idx struct {
		col    string
		keys   bson.D
		unique bool
	}

	indexes := []idx{
		{ColUsers, bson.D{{Key: "uid", Value: 1}}, true},
		{ColUsers, bson.D{{Key: "email", Value: 1}}, true},
		{ColProducts, bson.D{{Key: "slug", Value: 1}}, true},
		{ColProducts, bson.D{{Key: "isActive", Value: 1}}, false},
	}

	for _, i := range indexes {
		model := mongo.IndexModel{Keys: i.keys}
		if i.unique {
			model.Options = options.Index().SetUnique(true)
		}
		if _, err := db.Collection(i.col).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", i.col, err)
		}
	}

	return nil
}
