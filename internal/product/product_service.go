package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thekidkid/clothing-brand/internal/catalog"
	"github.com/thekidkid/clothing-brand/internal/cloudinary"
	"github.com/thekidkid/clothing-brand/internal/pkg/apperror"
	"github.com/thekidkid/clothing-brand/internal/shared/database/dbgen"
	"github.com/thekidkid/clothing-brand/internal/shared/database/helper"
)

//go:generate mockgen -source=product_service.go -destination=../mock/product/product_service_mock.go -package=mock
type Service interface {
	// Storefront
	ListPublic(ctx context.Context, spec catalog.FilterSpec) ([]catalog.Product, error)
	GetPublic(ctx context.Context, productID string) (catalog.Product, error)

	// Admin
	ListAdmin(ctx context.Context) ([]AdminProductResponse, error)
	Detail(ctx context.Context, productID string) (AdminProductResponse, error)
	Create(ctx context.Context, input CreateProductInput) (AdminProductResponse, error)
	Update(ctx context.Context, productID string, input CreateProductInput) (AdminProductResponse, error)
	UpdateStatus(ctx context.Context, productID string, isActive bool) (AdminProductResponse, error)
	UpdateStock(ctx context.Context, productID string, quantity int32) (AdminProductResponse, error)
	Delete(ctx context.Context, productID string) error
}

type service struct {
	repo     Repository
	imageSvc cloudinary.Service
	logger   *zap.Logger
}

type Deps struct {
	Repo     Repository
	ImageSvc cloudinary.Service
	Logger   *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("product repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		repo:     deps.Repo,
		imageSvc: deps.ImageSvc,
		logger:   deps.Logger,
	}
}

func (s *service) ListPublic(ctx context.Context, spec catalog.FilterSpec) ([]catalog.Product, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Error("failed to list products", zap.Error(err))
		return nil, ErrProductFailed
	}

	products := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, toCatalogProduct(row))
	}

	return catalog.Apply(products, spec), nil
}

func (s *service) GetPublic(ctx context.Context, productID string) (catalog.Product, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return catalog.Product{}, ErrInvalidProductID
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Product{}, ErrProductNotFound
		}
		s.logger.Error("failed to get product", zap.String("product_id", productID), zap.Error(err))
		return catalog.Product{}, ErrProductFailed
	}

	if !row.IsActive {
		return catalog.Product{}, ErrProductNotFound
	}

	return toCatalogProduct(row), nil
}

func (s *service) ListAdmin(ctx context.Context) ([]AdminProductResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list products for admin", zap.Error(err))
		return nil, ErrProductFailed
	}

	res := make([]AdminProductResponse, 0, len(rows))
	for _, row := range rows {
		res = append(res, toAdminResponse(row))
	}

	return res, nil
}

func (s *service) Detail(ctx context.Context, productID string) (AdminProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return AdminProductResponse{}, ErrInvalidProductID
	}

	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AdminProductResponse{}, ErrProductNotFound
		}
		return AdminProductResponse{}, ErrProductFailed
	}

	return toAdminResponse(row), nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (AdminProductResponse, error) {
	if !catalog.ValidCategory(input.Category) {
		return AdminProductResponse{}, ErrInvalidCategory
	}

	logger := s.logger.With(zap.String("product_name", input.Name))

	frontURL, backURL, err := s.uploadImages(ctx, input)
	if err != nil {
		logger.Error("image upload failed", zap.Error(err))
		return AdminProductResponse{}, apperror.Wrap(err, apperror.CodeInternalError,
			"failed to upload product image", 500)
	}

	row, err := s.repo.Create(ctx, dbgen.CreateProductParams{
		Name:          input.Name,
		Description:   helper.StringToNull(&input.Description),
		Price:         helper.Float64ToDecimalExact(input.Price).StringFixed(2),
		Category:      input.Category,
		Sizes:         input.Sizes,
		Colors:        input.Colors,
		Tags:          input.Tags,
		StockQuantity: input.StockQuantity,
		ImageFront:    helper.StringToNull(&frontURL),
		ImageBack:     helper.StringToNull(&backURL),
	})
	if err != nil {
		logger.Error("failed to create product record", zap.Error(err))
		return AdminProductResponse{}, ErrProductFailed
	}

	logger.Info("product created", zap.String("product_id", row.ID.String()))

	return toAdminResponse(row), nil
}

func (s *service) Update(ctx context.Context, productID string, input CreateProductInput) (AdminProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return AdminProductResponse{}, ErrInvalidProductID
	}
	if !catalog.ValidCategory(input.Category) {
		return AdminProductResponse{}, ErrInvalidCategory
	}

	// Replacement images are optional; COALESCE in the query keeps the
	// existing URLs when no new file was sent.
	frontURL, backURL, err := s.uploadImages(ctx, input)
	if err != nil {
		s.logger.Error("image upload failed", zap.String("product_id", productID), zap.Error(err))
		return AdminProductResponse{}, ErrProductFailed
	}

	row, err := s.repo.Update(ctx, dbgen.UpdateProductParams{
		ID:            id,
		Name:          input.Name,
		Description:   helper.StringToNull(&input.Description),
		Price:         helper.Float64ToDecimalExact(input.Price).StringFixed(2),
		Category:      input.Category,
		Sizes:         input.Sizes,
		Colors:        input.Colors,
		Tags:          input.Tags,
		StockQuantity: input.StockQuantity,
		ImageFront:    helper.StringToNull(&frontURL),
		ImageBack:     helper.StringToNull(&backURL),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AdminProductResponse{}, ErrProductNotFound
		}
		return AdminProductResponse{}, ErrProductFailed
	}

	return toAdminResponse(row), nil
}

func (s *service) UpdateStatus(ctx context.Context, productID string, isActive bool) (AdminProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return AdminProductResponse{}, ErrInvalidProductID
	}

	row, err := s.repo.SetActive(ctx, id, isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AdminProductResponse{}, ErrProductNotFound
		}
		return AdminProductResponse{}, ErrProductFailed
	}

	return toAdminResponse(row), nil
}

func (s *service) UpdateStock(ctx context.Context, productID string, quantity int32) (AdminProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return AdminProductResponse{}, ErrInvalidProductID
	}

	row, err := s.repo.SetStock(ctx, id, quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AdminProductResponse{}, ErrProductNotFound
		}
		return AdminProductResponse{}, ErrProductFailed
	}

	return toAdminResponse(row), nil
}

func (s *service) Delete(ctx context.Context, productID string) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return ErrInvalidProductID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete product", zap.String("product_id", productID), zap.Error(err))
		return ErrProductFailed
	}

	s.logger.Info("product deleted", zap.String("product_id", productID))
	return nil
}

func (s *service) uploadImages(ctx context.Context, input CreateProductInput) (string, string, error) {
	var frontURL, backURL string

	if input.FrontImage != nil {
		if s.imageSvc == nil {
			return "", "", fmt.Errorf("image service not configured")
		}
		url, err := s.imageSvc.UploadImage(ctx, input.FrontImage, uniqueFilename(input.FrontFilename))
		if err != nil {
			return "", "", err
		}
		frontURL = url
	}

	if input.BackImage != nil {
		if s.imageSvc == nil {
			return "", "", fmt.Errorf("image service not configured")
		}
		url, err := s.imageSvc.UploadImage(ctx, input.BackImage, uniqueFilename(input.BackFilename))
		if err != nil {
			return "", "", err
		}
		backURL = url
	}

	return frontURL, backURL, nil
}

func uniqueFilename(original string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), original)
}

func toCatalogProduct(row dbgen.Product) catalog.Product {
	return catalog.Product{
		ID:          row.ID.String(),
		Name:        row.Name,
		Description: helper.NullStringValue(row.Description),
		Price:       helper.NumericToFloat64(row.Price),
		Category:    row.Category,
		Sizes:       row.Sizes,
		Colors:      row.Colors,
		InStock:     row.InStock,
		Tags:        row.Tags,
		Images: catalog.Images{
			Front: helper.NullStringValue(row.ImageFront),
			Back:  helper.NullStringValue(row.ImageBack),
		},
	}
}

func toAdminResponse(row dbgen.Product) AdminProductResponse {
	return AdminProductResponse{
		ID:            row.ID.String(),
		Name:          row.Name,
		Description:   helper.NullStringValue(row.Description),
		Price:         helper.NumericToFloat64(row.Price),
		Category:      row.Category,
		Sizes:         row.Sizes,
		Colors:        row.Colors,
		Tags:          row.Tags,
		StockQuantity: row.StockQuantity,
		InStock:       row.InStock,
		IsActive:      row.IsActive,
		Images: catalog.Images{
			Front: helper.NullStringValue(row.ImageFront),
			Back:  helper.NullStringValue(row.ImageBack),
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
