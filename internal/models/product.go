// internal/models/product.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Product is a catalog entry. The slug is the public lookup key and is kept
// lowercase and trimmed; a unique index on it backs the conflict checks.
type Product struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string        `bson:"name" json:"name"`
	Slug          string        `bson:"slug" json:"slug"`
	SKU           string        `bson:"sku,omitempty" json:"sku,omitempty"`
	Description   string        `bson:"description" json:"description"`
	Fabric        string        `bson:"fabric,omitempty" json:"fabric,omitempty"`
	Category      string        `bson:"category" json:"category"`
	Price         float64       `bson:"price" json:"price"`
	DiscountPrice *float64      `bson:"discountPrice,omitempty" json:"discountPrice,omitempty"`
	Sizes         []string      `bson:"sizes" json:"sizes"`
	Colors        []string      `bson:"colors" json:"colors"`
	Images        []string      `bson:"images" json:"images"`
	StockQty      float64       `bson:"stockQty" json:"stockQty"`
	SoldQty       float64       `bson:"soldQty" json:"soldQty"`
	InStock       bool          `bson:"inStock" json:"inStock"`
	IsFeatured    bool          `bson:"isFeatured" json:"isFeatured"`
	IsActive      bool          `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// CreateProductRequest carries the admin write for a new catalog entry.
// Numeric fields are pointers so that a missing value is distinguishable
// from zero; the required tags produce one aggregated violation list
// covering every absent field.
type CreateProductRequest struct {
	Name          string   `json:"name" validate:"required"`
	Slug          string   `json:"slug" validate:"required"`
	SKU           string   `json:"sku"`
	Description   string   `json:"description" validate:"required"`
	Fabric        string   `json:"fabric"`
	Category      string   `json:"category" validate:"required"`
	Price         *Number  `json:"price" validate:"required"`
	DiscountPrice *Number  `json:"discountPrice"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Images        []string `json:"images" validate:"required,min=1"`
	StockQty      *Number  `json:"stockQty" validate:"required"`
	SoldQty       *Number  `json:"soldQty"`
	InStock       *bool    `json:"inStock"`
	IsFeatured    *bool    `json:"isFeatured"`
	IsActive      *bool    `json:"isActive"`
}

// UpdateProductRequest is a partial update: absent fields leave the stored
// values alone. The clearable optionals (sku, fabric, discountPrice) use
// Optional so an explicit null unsets the field rather than being dropped.
// Any _id in the payload is ignored; identifiers are immutable.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Slug          *string          `json:"slug"`
	SKU           Optional[string] `json:"sku"`
	Description   *string          `json:"description"`
	Fabric        Optional[string] `json:"fabric"`
	Category      *string          `json:"category"`
	Price         *Number          `json:"price"`
	DiscountPrice Optional[Number] `json:"discountPrice"`
	Sizes         []string         `json:"sizes"`
	Colors        []string         `json:"colors"`
	Images        []string         `json:"images"`
	StockQty      *Number          `json:"stockQty"`
	SoldQty       *Number          `json:"soldQty"`
	InStock       *bool            `json:"inStock"`
	IsFeatured    *bool            `json:"isFeatured"`
	IsActive      *bool            `json:"isActive"`
}
