// internal/services/product_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/niyorhq/niyor-server/internal/models"
	"github.com/niyorhq/niyor-server/internal/storage"
	"github.com/niyorhq/niyor-server/internal/utils"
)

type ProductService struct {
	products storage.ProductStore
}

func NewProductService(products storage.ProductStore) *ProductService {
	return &ProductService{products: products}
}

// numericRule is one entry of the declarative range schema shared by create
// and update. A rule only fires when its value is present; each failing
// rule contributes an independent violation.
type numericRule struct {
	value *models.Number
	ok    func(v float64) bool
	msg   string
}

func numericRules(price, discount, stock, sold *models.Number) []numericRule {
	return []numericRule{
		{price, func(v float64) bool { return v > 0 },
			"price must be a finite number greater than 0"},
		{stock, func(v float64) bool { return v >= 0 },
			"stockQty must be a finite number of at least 0"},
		{discount, func(v float64) bool {
			if price == nil || !price.IsFinite() {
				return true
			}
			return v < price.Float64()
		}, "discountPrice must be a finite number strictly less than price"},
		{sold, func(v float64) bool { return v >= 0 },
			"soldQty must be a finite number of at least 0"},
	}
}

func evalNumericRules(rules []numericRule) []string {
	var violations []string
	for _, r := range rules {
		if r.value == nil {
			continue
		}
		if !r.value.IsFinite() || !r.ok(r.value.Float64()) {
			violations = append(violations, r.msg)
		}
	}
	return violations
}

func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// CreateProduct runs the write pipeline in fixed order: required-field
// presence, normalization and coercion, numeric range checks, slug check,
// slug uniqueness, persist. Steps before the insert are pure validation;
// nothing is written when any of them fails.
func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (string, error) {
	if violations := utils.GetViolations(utils.ValidateStruct(req)); len(violations) > 0 {
		return "", &models.ValidationError{Violations: violations}
	}

	now := time.Now().UTC()
	p := &models.Product{
		Name:        strings.TrimSpace(req.Name),
		Slug:        normalizeSlug(req.Slug),
		SKU:         strings.TrimSpace(req.SKU),
		Description: strings.TrimSpace(req.Description),
		Fabric:      strings.TrimSpace(req.Fabric),
		Category:    strings.TrimSpace(req.Category),
		Price:       req.Price.Float64(),
		Sizes:       emptyIfNil(req.Sizes),
		Colors:      emptyIfNil(req.Colors),
		Images:      req.Images,
		StockQty:    req.StockQty.Float64(),
		IsFeatured:  req.IsFeatured != nil && *req.IsFeatured,
		IsActive:    req.IsActive == nil || *req.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.SoldQty != nil {
		p.SoldQty = req.SoldQty.Float64()
	}
	if req.DiscountPrice != nil {
		v := req.DiscountPrice.Float64()
		p.DiscountPrice = &v
	}
	if req.InStock != nil {
		p.InStock = *req.InStock
	} else {
		p.InStock = p.StockQty > 0
	}

	if violations := evalNumericRules(numericRules(req.Price, req.DiscountPrice, req.StockQty, req.SoldQty)); len(violations) > 0 {
		return "", &models.ValidationError{Violations: violations}
	}

	if p.Slug == "" {
		return "", models.NewValidationError("slug must not be empty")
	}

	// Friendly pre-check; the unique index on slug remains the authority.
	existing, err := s.products.FindBySlug(ctx, p.Slug)
	if err != nil {
		return "", fmt.Errorf("failed to check slug: %w", err)
	}
	if existing != nil {
		return "", storage.ErrDuplicate
	}

	id, err := s.products.Insert(ctx, p)
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateProduct applies a partial update. Absent fields keep their stored
// values, explicit nulls clear the clearable optionals, and a present
// stockQty recomputes inStock over anything the caller sent for it.
// updatedAt is refreshed unconditionally.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*storage.UpdateResult, error) {
	var discount *models.Number
	if req.DiscountPrice.Present && !req.DiscountPrice.Null {
		d := req.DiscountPrice.Value
		discount = &d
	}
	if violations := evalNumericRules(numericRules(req.Price, discount, req.StockQty, req.SoldQty)); len(violations) > 0 {
		return nil, &models.ValidationError{Violations: violations}
	}

	set := map[string]interface{}{}
	var unset []string

	if req.Name != nil {
		set["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil {
		slug := normalizeSlug(*req.Slug)
		if slug == "" {
			return nil, models.NewValidationError("slug must not be empty")
		}
		set["slug"] = slug
	}
	if req.SKU.Present {
		if req.SKU.Null {
			unset = append(unset, "sku")
		} else {
			set["sku"] = strings.TrimSpace(req.SKU.Value)
		}
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Fabric.Present {
		if req.Fabric.Null {
			unset = append(unset, "fabric")
		} else {
			set["fabric"] = strings.TrimSpace(req.Fabric.Value)
		}
	}
	if req.Category != nil {
		set["category"] = strings.TrimSpace(*req.Category)
	}
	if req.Price != nil {
		set["price"] = req.Price.Float64()
	}
	if discount != nil {
		set["discountPrice"] = discount.Float64()
	} else if req.DiscountPrice.Null {
		unset = append(unset, "discountPrice")
	}
	if req.Sizes != nil {
		set["sizes"] = req.Sizes
	}
	if req.Colors != nil {
		set["colors"] = req.Colors
	}
	if req.Images != nil {
		if len(req.Images) == 0 {
			return nil, models.NewValidationError("images must contain at least 1 item(s)")
		}
		set["images"] = req.Images
	}
	if req.SoldQty != nil {
		set["soldQty"] = req.SoldQty.Float64()
	}
	if req.StockQty != nil {
		v := req.StockQty.Float64()
		set["stockQty"] = v
		set["inStock"] = v > 0
	} else if req.InStock != nil {
		set["inStock"] = *req.InStock
	}
	if req.IsFeatured != nil {
		set["isFeatured"] = *req.IsFeatured
	}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}
	set["updatedAt"] = time.Now().UTC()

	return s.products.UpdateByID(ctx, id, set, unset)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) (int64, error) {
	return s.products.DeleteByID(ctx, id)
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *ProductService) ListActiveProducts(ctx context.Context) ([]*models.Product, error) {
	return s.products.ListActive(ctx)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
