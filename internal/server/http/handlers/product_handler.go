package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devansh6012/online-store-test/internal/domain/model"
	"github.com/devansh6012/online-store-test/internal/domain/repository"
	"github.com/devansh6012/online-store-test/internal/server/http/dto"
)

const defaultPageSize = 20

// ProductHandler manages catalog product endpoints.
type ProductHandler struct {
	facade CatalogFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade CatalogFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	filter := model.ProductFilter{
		Search: c.Query("search"),
		Limit:  defaultPageSize,
	}
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid category")
			return
		}
		filter.CategoryID = &id
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			writeError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			writeError(c, http.StatusBadRequest, "invalid offset")
			return
		}
		filter.Offset = offset
	}

	products, total, err := h.facade.ListProducts(c.Request.Context(), filter)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProductListResponse{
		Products: dto.ToProductResponses(products),
		Total:    total,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	})
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// productForm parses the multipart product payload shared by create/update.
func productForm(c *gin.Context) (repository.ProductInput, []*multipart.FileHeader, bool) {
	var in repository.ProductInput

	in.Name = c.PostForm("name")
	in.Description = c.PostForm("description")

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid price")
		return in, nil, false
	}
	in.Price = price

	stock, err := strconv.Atoi(c.DefaultPostForm("stock", "0"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid stock")
		return in, nil, false
	}
	in.Stock = stock

	if raw := c.PostForm("category_id"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid category_id")
			return in, nil, false
		}
		in.CategoryID = &categoryID
	}

	form, err := c.MultipartForm()
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid form")
		return in, nil, false
	}
	return in, form.File["images"], true
}

// Create handles POST /api/admin/products.
func (h *ProductHandler) Create(c *gin.Context) {
	in, files, ok := productForm(c)
	if !ok {
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), in, files)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(*product))
}

// Update handles PUT /api/admin/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	in, files, ok := productForm(c)
	if !ok {
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), id, in, files)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// Delete handles DELETE /api/admin/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReplaceImages handles PUT /api/admin/products/:id/images.
func (h *ProductHandler) ReplaceImages(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid form")
		return
	}

	product, err := h.facade.ReplaceProductImages(c.Request.Context(), id, form.File["images"])
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// DeleteImage handles DELETE /api/admin/products/:id/images/:imageID.
func (h *ProductHandler) DeleteImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	imageID, ok := pathID(c, "imageID")
	if !ok {
		return
	}
	if err := h.facade.DeleteProductImage(c.Request.Context(), id, imageID); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
