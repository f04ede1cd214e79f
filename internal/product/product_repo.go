package product

import (
	"context"

	"github.com/google/uuid"
	"github.com/thekidkid/clothing-brand/internal/shared/database/dbgen"
)

//go:generate mockgen -source=product_repo.go -destination=../mock/product/product_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, arg dbgen.CreateProductParams) (dbgen.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (dbgen.Product, error)
	List(ctx context.Context) ([]dbgen.Product, error)
	ListActive(ctx context.Context) ([]dbgen.Product, error)
	Update(ctx context.Context, arg dbgen.UpdateProductParams) (dbgen.Product, error)
	SetActive(ctx context.Context, id uuid.UUID, isActive bool) (dbgen.Product, error)
	SetStock(ctx context.Context, id uuid.UUID, quantity int32) (dbgen.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	queries *dbgen.Queries
}

func NewRepository(q *dbgen.Queries) Repository {
	return &repository{queries: q}
}

func (r *repository) Create(ctx context.Context, arg dbgen.CreateProductParams) (dbgen.Product, error) {
	return r.queries.CreateProduct(ctx, arg)
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (dbgen.Product, error) {
	return r.queries.GetProductByID(ctx, id)
}

func (r *repository) List(ctx context.Context) ([]dbgen.Product, error) {
	return r.queries.ListProducts(ctx)
}

func (r *repository) ListActive(ctx context.Context) ([]dbgen.Product, error) {
	return r.queries.ListActiveProducts(ctx)
}

func (r *repository) Update(ctx context.Context, arg dbgen.UpdateProductParams) (dbgen.Product, error) {
	return r.queries.UpdateProduct(ctx, arg)
}

func (r *repository) SetActive(ctx context.Context, id uuid.UUID, isActive bool) (dbgen.Product, error) {
	return r.queries.SetProductActive(ctx, dbgen.SetProductActiveParams{
		ID:       id,
		IsActive: isActive,
	})
}

func (r *repository) SetStock(ctx context.Context, id uuid.UUID, quantity int32) (dbgen.Product, error) {
	return r.queries.SetProductStock(ctx, dbgen.SetProductStockParams{
		ID:            id,
		StockQuantity: quantity,
	})
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.queries.DeleteProduct(ctx, id)
}
