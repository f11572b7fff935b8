// internal/services/product_service_test.go
package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niyorhq/niyor-server/internal/models"
	"github.com/niyorhq/niyor-server/internal/services"
	"github.com/niyorhq/niyor-server/internal/storage"
	"github.com/niyorhq/niyor-server/internal/storage/memstore"
)

func num(v float64) *models.Number {
	n := models.Number(v)
	return &n
}

func boolPtr(v bool) *bool {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func validCreateRequest() *models.CreateProductRequest {
	return &models.CreateProductRequest{
		Name:        "Shirt",
		Slug:        "Shirt",
		Description: "d",
		Category:    "c",
		Price:       num(10),
		StockQty:    num(5),
		Images:      []string{"a.jpg"},
	}
}

func newProductService() (*services.ProductService, *memstore.Store) {
	store := memstore.New()
	return services.NewProductService(store), store
}

func TestCreateProductNormalizes(t *testing.T) {
	svc, store := newProductService()
	ctx := context.Background()

	req := validCreateRequest()
	req.Slug = "  Red-Shirt "
	req.Name = "  Red Shirt "

	id, err := svc.CreateProduct(ctx, req)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	p, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "red-shirt", p.Slug)
	assert.Equal(t, "Red Shirt", p.Name)
	assert.True(t, p.InStock, "inStock derives from stockQty > 0")
	assert.True(t, p.IsActive, "isActive defaults to true")
	assert.False(t, p.IsFeatured)
	assert.Zero(t, p.SoldQty)
	assert.NotNil(t, p.Sizes)
	assert.NotNil(t, p.Colors)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestCreateProductAggregatesMissingFields(t *testing.T) {
	svc, _ := newProductService()

	_, err := svc.CreateProduct(context.Background(), &models.CreateProductRequest{})
	require.Error(t, err)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"name is required",
		"slug is required",
		"description is required",
		"category is required",
		"price is required",
		"images is required",
		"stockQty is required",
	}, verr.Violations)
}

func TestCreateProductRejectsEmptyImages(t *testing.T) {
	svc, _ := newProductService()

	req := validCreateRequest()
	req.Images = []string{}

	_, err := svc.CreateProduct(context.Background(), req)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Violations, "images must contain at least 1 item(s)")
}

func TestCreateProductNumericInvariants(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.CreateProductRequest)
		violation string
	}{
		{
			name:      "zero price",
			mutate:    func(r *models.CreateProductRequest) { r.Price = num(0) },
			violation: "price must be a finite number greater than 0",
		},
		{
			name:      "negative stock",
			mutate:    func(r *models.CreateProductRequest) { r.StockQty = num(-1) },
			violation: "stockQty must be a finite number of at least 0",
		},
		{
			name:      "discount not below price",
			mutate:    func(r *models.CreateProductRequest) { r.DiscountPrice = num(10) },
			violation: "discountPrice must be a finite number strictly less than price",
		},
		{
			name:      "negative sold quantity",
			mutate:    func(r *models.CreateProductRequest) { r.SoldQty = num(-3) },
			violation: "soldQty must be a finite number of at least 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newProductService()
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.CreateProduct(context.Background(), req)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Violations, tt.violation)

			products, err := store.ListActive(context.Background())
			require.NoError(t, err)
			assert.Empty(t, products, "no record may be written on a rejected payload")
		})
	}
}

func TestCreateProductAggregatesNumericViolations(t *testing.T) {
	svc, _ := newProductService()

	req := validCreateRequest()
	req.Price = num(-5)
	req.StockQty = num(-1)

	_, err := svc.CreateProduct(context.Background(), req)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 2)
}

func TestCreateProductCoercesNumericStrings(t *testing.T) {
	svc, store := newProductService()

	var req models.CreateProductRequest
	payload := `{"name":"Shirt","slug":"shirt","description":"d","category":"c","price":"19.99","stockQty":"3","images":["a.jpg"]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	id, err := svc.CreateProduct(context.Background(), &req)
	require.NoError(t, err)

	p, err := store.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 19.99, p.Price)
	assert.Equal(t, 3.0, p.StockQty)
}

func TestCreateProductRejectsNonNumericPrice(t *testing.T) {
	svc, _ := newProductService()

	var req models.CreateProductRequest
	payload := `{"name":"Shirt","slug":"shirt","description":"d","category":"c","price":"cheap","stockQty":5,"images":["a.jpg"]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	_, err := svc.CreateProduct(context.Background(), &req)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Violations, "price must be a finite number greater than 0")
}

func TestCreateProductSlugConflict(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	first := validCreateRequest()
	first.Slug = "Red-Shirt "
	_, err := svc.CreateProduct(ctx, first)
	require.NoError(t, err)

	second := validCreateRequest()
	second.Slug = "red-shirt"
	_, err = svc.CreateProduct(ctx, second)
	assert.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestCreateProductBlankSlugRejected(t *testing.T) {
	svc, _ := newProductService()

	req := validCreateRequest()
	req.Slug = "   "

	_, err := svc.CreateProduct(context.Background(), req)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Violations, "slug must not be empty")
}

func TestCreateProductExplicitInStockOverride(t *testing.T) {
	svc, store := newProductService()
	ctx := context.Background()

	req := validCreateRequest()
	req.StockQty = num(0)
	req.InStock = boolPtr(true)

	id, err := svc.CreateProduct(ctx, req)
	require.NoError(t, err)

	p, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, p.InStock, "explicit inStock wins at creation")
}

func TestUpdateProductPartialLeavesOtherFields(t *testing.T) {
	svc, store := newProductService()
	ctx := context.Background()

	req := validCreateRequest()
	req.DiscountPrice = num(8)
	id, err := svc.CreateProduct(ctx, req)
	require.NoError(t, err)

	before, err := store.GetByID(ctx, id)
	require.NoError(t, err)

	result, err := svc.UpdateProduct(ctx, id, &models.UpdateProductRequest{Name: strPtr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.MatchedCount)

	after, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", after.Name)
	assert.Equal(t, before.Slug, after.Slug)
	assert.Equal(t, before.Price, after.Price)
	assert.Equal(t, before.DiscountPrice, after.DiscountPrice)
	assert.Equal(t, before.StockQty, after.StockQty)
	assert.Equal(t, before.Images, after.Images)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt) || after.UpdatedAt.Equal(before.UpdatedAt))
}

func TestUpdateProductRecomputesInStock(t *testing.T) {
	svc, store := newProductService()
	ctx := context.Background()

	id, err := svc.CreateProduct(ctx, validCreateRequest())
	require.NoError(t, err)

	// caller-supplied inStock loses to the recomputation
	_, err = svc.UpdateProduct(ctx, id, &models.UpdateProductRequest{
		StockQty: num(0),
		InStock:  boolPtr(true),
	})
	require.NoError(t, err)

	p, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, p.InStock)
	assert.Zero(t, p.StockQty)
}

func TestUpdateProductClearsDiscountOnNull(t *testing.T) {
	svc, store := newProductService()
	ctx := context.Background()

	create := validCreateRequest()
	create.DiscountPrice = num(5)
	id, err := svc.CreateProduct(ctx, create)
	require.NoError(t, err)

	var req models.UpdateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"discountPrice":null}`), &req))

	_, err = svc.UpdateProduct(ctx, id, &req)
	require.NoError(t, err)

	p, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, p.DiscountPrice, "explicit null clears the field")
}

func TestUpdateProductNormalizesSlugAndConflicts(t *testing.T) {
	svc, store := newProductService()
	ctx := context.Background()

	first := validCreateRequest()
	first.Slug = "first"
	firstID, err := svc.CreateProduct(ctx, first)
	require.NoError(t, err)

	second := validCreateRequest()
	second.Slug = "second"
	secondID, err := svc.CreateProduct(ctx, second)
	require.NoError(t, err)

	_, err = svc.UpdateProduct(ctx, secondID, &models.UpdateProductRequest{Slug: strPtr(" FIRST ")})
	assert.ErrorIs(t, err, storage.ErrDuplicate)

	_, err = svc.UpdateProduct(ctx, firstID, &models.UpdateProductRequest{Slug: strPtr(" Fresh-Slug ")})
	require.NoError(t, err)

	p, err := store.GetByID(ctx, firstID)
	require.NoError(t, err)
	assert.Equal(t, "fresh-slug", p.Slug)
}

func TestUpdateProductIdentifierErrors(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	_, err := svc.UpdateProduct(ctx, "not-an-objectid", &models.UpdateProductRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, storage.ErrInvalidID)

	_, err = svc.UpdateProduct(ctx, "64b0c0ffee0ddf00d1234567", &models.UpdateProductRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	id, err := svc.CreateProduct(ctx, validCreateRequest())
	require.NoError(t, err)

	count, err := svc.DeleteProduct(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// deleting the same id again reports not-found, not success
	_, err = svc.DeleteProduct(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = svc.DeleteProduct(ctx, "nope")
	assert.ErrorIs(t, err, storage.ErrInvalidID)
}

func TestListActiveProductsFiltersInactive(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	active := validCreateRequest()
	active.Slug = "visible"
	_, err := svc.CreateProduct(ctx, active)
	require.NoError(t, err)

	hidden := validCreateRequest()
	hidden.Slug = "hidden"
	hidden.IsActive = boolPtr(false)
	_, err = svc.CreateProduct(ctx, hidden)
	require.NoError(t, err)

	products, err := svc.ListActiveProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "visible", products[0].Slug)
}
