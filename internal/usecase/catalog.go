package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/akarpov/retailhub/internal/domain/errors"
	"github.com/akarpov/retailhub/internal/domain/model"
	"github.com/akarpov/retailhub/internal/domain/repository"
)

const defaultProductListLimit = 100

// CatalogUseCase manages catalog products.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// AddProduct registers a new product.
func (u *CatalogUseCase) AddProduct(ctx context.Context, name, sku string, price float64, stock int, category *string) (*model.Product, error) {
	name = strings.TrimSpace(name)
	sku = strings.TrimSpace(sku)
	if name == "" || sku == "" {
		return nil, domainErrors.ErrInvalidProduct
	}
	return u.products.Create(ctx, name, sku, price, stock, category)
}

// GetProduct fetches a product by identifier.
func (u *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// ListProducts returns catalog products.
func (u *CatalogUseCase) ListProducts(ctx context.Context, limit int) ([]model.Product, error) {
	if limit <= 0 {
		limit = defaultProductListLimit
	}
	return u.products.List(ctx, limit)
}
