package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/antu41/ECommerceInventory/internal/apperrors"
	portssvc "github.com/antu41/ECommerceInventory/internal/core/ports/services"
	"github.com/antu41/ECommerceInventory/internal/dto"
	"github.com/antu41/ECommerceInventory/internal/middleware"
)

// allowedImageExtensions is the upload allow-list for product images.
var allowedImageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true, ".webp": true,
}

// maxImageSize caps product image uploads at 2 MB.
const maxImageSize = 2 << 20

// ProductHandler handles product related requests.
type ProductHandler struct {
	productService portssvc.ProductSvcFacade
	uploadDir      string
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService portssvc.ProductSvcFacade, uploadDir string) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		uploadDir:      uploadDir,
	}
}

// saveUploadedImage validates and stores an optional multipart image, returning
// its public path ("/images/<uuid>.<ext>"). An empty path with ok=true means no
// image was supplied. On validation failure it writes the error response itself.
func (h *ProductHandler) saveUploadedImage(c *gin.Context) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", true
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid image upload"})
		return "", false
	}

	extension := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[extension] {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Only photo formats are allowed (jpg, jpeg, png, gif, bmp, webp)"})
		return "", false
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid file type. Only image files are allowed"})
		return "", false
	}
	if file.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "File size must be less than 2 MB"})
		return "", false
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		h.logUploadError(c, "Failed to create upload directory", err)
		return "", false
	}

	uniqueFileName := uuid.NewString() + extension
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, uniqueFileName)); err != nil {
		h.logUploadError(c, "Failed to store uploaded image", err)
		return "", false
	}

	return "/images/" + uniqueFileName, true
}

func (h *ProductHandler) logUploadError(c *gin.Context, msg string, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Error(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store image"})
}

// removeImageFile deletes a previously stored image by its public path.
// Best effort: a missing file is not an error worth surfacing.
func (h *ProductHandler) removeImageFile(c *gin.Context, imagePath string) {
	if imagePath == "" {
		return
	}
	fullPath := filepath.Join(h.uploadDir, filepath.Base(imagePath))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to remove image file",
			slog.String("path", fullPath), slog.String("error", err.Error()))
	}
}

// CreateProduct godoc
// @Summary Create product
// @Description Creates a new product, optionally with an image file.
// @Tags products
// @Accept mpfd
// @Produce json
// @Param name formData string true "Product name"
// @Param description formData string false "Description"
// @Param price formData number true "Price"
// @Param stock formData int false "Stock count"
// @Param categoryID formData string true "Category ID"
// @Param image formData file false "Product image (max 2 MB)"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	imagePath, ok := h.saveUploadedImage(c)
	if !ok {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req, imagePath)
	if err != nil {
		// The stored file has no owner if creation failed.
		h.removeImageFile(c, imagePath)
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown category"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to create product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// ListProducts godoc
// @Summary List products
// @Description Lists products with optional category and price filters.
// @Tags products
// @Produce json
// @Param categoryID query string false "Filter by category ID"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListProductsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductsResponse(products, params.Page, params.Limit))
}

// GetProduct godoc
// @Summary Get product
// @Description Retrieves a single product by ID.
// @Tags products
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{productID} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("productID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get product"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// SearchProducts godoc
// @Summary Search products
// @Description Searches products by name or description.
// @Tags products
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} dto.ListProductsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/search [get]
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	products, err := h.productService.SearchProducts(c.Request.Context(), c.Query("q"))
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to search products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to search products"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductsResponse(products, 1, len(products)))
}

// UpdateProduct godoc
// @Summary Update product
// @Description Applies a partial update, optionally replacing the image.
// @Tags products
// @Accept mpfd
// @Produce json
// @Param productID path string true "Product ID"
// @Param image formData file false "Replacement image (max 2 MB)"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{productID} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	imagePath, ok := h.saveUploadedImage(c)
	if !ok {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("productID"), req, imagePath)
	if err != nil {
		h.removeImageFile(c, imagePath)
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown category"})
		default:
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to update product", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update product"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// DeleteProduct godoc
// @Summary Delete product
// @Description Removes a product and its stored image file.
// @Tags products
// @Param productID path string true "Product ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{productID} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	imagePath, err := h.productService.DeleteProduct(c.Request.Context(), c.Param("productID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete product"})
		return
	}

	h.removeImageFile(c, imagePath)
	c.Status(http.StatusNoContent)
}
