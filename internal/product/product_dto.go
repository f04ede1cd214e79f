package product

import (
	"mime/multipart"
	"time"

	"github.com/thekidkid/clothing-brand/internal/catalog"
)

// ==================== REQUEST STRUCTS ====================

type ListPublicQuery struct {
	Search      string   `form:"search"`
	Categories  []string `form:"category" binding:"omitempty,dive,category"`
	Sizes       []string `form:"size"`
	Colors      []string `form:"color"`
	MinPrice    float64  `form:"minPrice"`
	MaxPrice    float64  `form:"maxPrice"`
	InStockOnly bool     `form:"inStock"`
	Sort        string   `form:"sort"`
}

// CreateProductInput carries the parsed multipart form for admin create.
// Image files are optional on update but required on create.
type CreateProductInput struct {
	Name          string
	Description   string
	Price         float64
	Category      string
	Sizes         []string
	Colors        []string
	Tags          []string
	StockQuantity int32
	FrontImage    multipart.File
	FrontFilename string
	BackImage     multipart.File
	BackFilename  string
}

type UpdateStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

type UpdateStockRequest struct {
	StockQuantity *int32 `json:"stockQuantity" binding:"required,gte=0"`
}

// ==================== RESPONSE STRUCTS ====================

// AdminProductResponse exposes the full record including fields the public
// listing hides (stock count, active flag, timestamps).
type AdminProductResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Price         float64        `json:"price"`
	Category      string         `json:"category"`
	Sizes         []string       `json:"sizes"`
	Colors        []string       `json:"colors"`
	Tags          []string       `json:"tags"`
	StockQuantity int32          `json:"stockQuantity"`
	InStock       bool           `json:"inStock"`
	IsActive      bool           `json:"isActive"`
	Images        catalog.Images `json:"images"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
