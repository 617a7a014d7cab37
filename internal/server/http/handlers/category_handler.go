package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devansh6012/online-store-test/internal/server/http/dto"
)

// CategoryHandler manages category endpoints.
type CategoryHandler struct {
	facade CatalogFacade
}

// NewCategoryHandler constructs CategoryHandler.
func NewCategoryHandler(facade CatalogFacade) *CategoryHandler {
	return &CategoryHandler{facade: facade}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, dto.ToCategoryResponse(category))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.facade.Category(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(*category))
}

// Products handles GET /api/categories/:id/products.
func (h *CategoryHandler) Products(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	products, err := h.facade.CategoryProducts(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// Create handles POST /api/admin/categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request")
		return
	}
	category, err := h.facade.CreateCategory(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(*category))
}

// Update handles PUT /api/admin/categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request")
		return
	}
	category, err := h.facade.UpdateCategory(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(*category))
}

// Delete handles DELETE /api/admin/categories/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteCategory(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
