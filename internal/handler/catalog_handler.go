package handler

import (
	"net/http"

	"bluecycle/internal/models"
	"bluecycle/internal/repository"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	repo *repository.CatalogRepository
}

func NewCatalogHandler(repo *repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		Category     string `json:"category" binding:"required"`
		Unit         string `json:"unit" binding:"required"`
		PricePerUnit int64  `json:"price_per_unit" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := &models.WasteCatalogItem{
		Name:         req.Name,
		Category:     req.Category,
		Unit:         req.Unit,
		PricePerUnit: req.PricePerUnit,
		Active:       true,
	}
	if err := h.repo.Create(item); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) List(c *gin.Context) {
	limit, offset := parseLimitOffset(c)
	list, err := h.repo.List(c.Query("category"), c.Query("active") == "true", limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": list})
}

func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.repo.GetByID(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		respondErr(c, err)
		return
	}
	var req struct {
		Name         *string `json:"name"`
		Category     *string `json:"category"`
		Unit         *string `json:"unit"`
		PricePerUnit *int64  `json:"price_per_unit"`
		Active       *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Unit != nil {
		fields["unit"] = *req.Unit
	}
	if req.PricePerUnit != nil {
		fields["price_per_unit"] = *req.PricePerUnit
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no valid fields to update"})
		return
	}
	if err := h.repo.UpdateFields(id, fields); err != nil {
		respondErr(c, err)
		return
	}
	item, err := h.repo.GetByID(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		respondErr(c, err)
		return
	}
	if err := h.repo.Delete(id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
