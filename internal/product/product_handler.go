package product

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thekidkid/clothing-brand/internal/catalog"
	"github.com/thekidkid/clothing-brand/internal/pkg/apperror"
	"github.com/thekidkid/clothing-brand/internal/pkg/response"
)

const maxImageSize = 5 << 20

var allowedImageExts = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".webp": {},
}

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("product.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("product.handler")
	}
	return &Handler{service: svc, logger: l}
}

// ==================== STOREFRONT ENDPOINTS ====================

// GET /products
func (h *Handler) ListPublic(c *gin.Context) {
	var q ListPublicQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters", err.Error())
		return
	}

	spec := catalog.FilterSpec{
		Search:      q.Search,
		Categories:  q.Categories,
		Sizes:       q.Sizes,
		Colors:      q.Colors,
		MinPrice:    q.MinPrice,
		MaxPrice:    q.MaxPrice,
		InStockOnly: q.InStockOnly,
		Sort:        catalog.SortKey(q.Sort),
	}

	products, err := h.service.ListPublic(c.Request.Context(), spec)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	}, "")
}

// GET /products/:id
func (h *Handler) GetPublic(c *gin.Context) {
	res, err := h.service.GetPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, "")
}

// ==================== ADMIN ENDPOINTS ====================

// GET /admin/products
func (h *Handler) ListAdmin(c *gin.Context) {
	res, err := h.service.ListAdmin(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"products": res}, "")
}

// GET /admin/products/:id
func (h *Handler) Detail(c *gin.Context) {
	res, err := h.service.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, "")
}

// POST /admin/products
func (h *Handler) Create(c *gin.Context) {
	input, err := h.parseProductForm(c)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	res, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("http create product failed", zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, res, "Product created")
}

// PUT /admin/products/:id
func (h *Handler) Update(c *gin.Context) {
	input, err := h.parseProductForm(c)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	res, err := h.service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, "Product updated")
}

// PATCH /admin/products/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	res, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, "Product status updated")
}

// PATCH /admin/products/:id/stock
func (h *Handler) UpdateStock(c *gin.Context) {
	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	res, err := h.service.UpdateStock(c.Request.Context(), c.Param("id"), *req.StockQuantity)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, "Product stock updated")
}

// DELETE /admin/products/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Product deleted"}, "")
}

func (h *Handler) parseProductForm(c *gin.Context) (CreateProductInput, error) {
	if err := c.Request.ParseMultipartForm(2 * maxImageSize); err != nil {
		return CreateProductInput{}, ErrProductFailed
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		return CreateProductInput{}, apperror.New(apperror.CodeInvalidInput, "invalid price", http.StatusBadRequest)
	}

	stock64, err := strconv.ParseInt(c.DefaultPostForm("stockQuantity", "0"), 10, 32)
	if err != nil || stock64 < 0 {
		return CreateProductInput{}, apperror.New(apperror.CodeInvalidInput, "invalid stock quantity", http.StatusBadRequest)
	}

	input := CreateProductInput{
		Name:          strings.TrimSpace(c.PostForm("name")),
		Description:   c.PostForm("description"),
		Price:         price,
		Category:      c.PostForm("category"),
		Sizes:         parseFormList(c, "sizes"),
		Colors:        parseFormList(c, "colors"),
		Tags:          parseFormList(c, "tags"),
		StockQuantity: int32(stock64),
	}

	if input.Name == "" {
		return CreateProductInput{}, apperror.New(apperror.CodeInvalidInput, "name is required", http.StatusBadRequest)
	}

	input.FrontImage, input.FrontFilename, err = openImage(c, "frontImage")
	if err != nil {
		return CreateProductInput{}, err
	}
	input.BackImage, input.BackFilename, err = openImage(c, "backImage")
	if err != nil {
		return CreateProductInput{}, err
	}

	return input, nil
}

// parseFormList accepts both repeated form fields and a single JSON-encoded
// array, which is how browser FormData submissions usually arrive.
func parseFormList(c *gin.Context, field string) []string {
	values := c.PostFormArray(field)
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var decoded []string
		if err := json.Unmarshal([]byte(values[0]), &decoded); err == nil {
			return decoded
		}
	}
	return values
}

func openImage(c *gin.Context, field string) (multipart.File, string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		// Missing file is fine; images are optional on update.
		return nil, "", nil
	}

	if header.Size > maxImageSize {
		return nil, "", ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return nil, "", ErrInvalidImageType
	}

	file, err := header.Open()
	if err != nil {
		return nil, "", ErrProductFailed
	}

	return file, header.Filename, nil
}
