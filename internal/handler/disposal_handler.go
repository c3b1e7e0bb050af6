package handler

import (
	"net/http"
	"strconv"
	"time"

	"bluecycle/internal/models"
	"bluecycle/internal/repository"

	"github.com/gin-gonic/gin"
)

type DisposalHandler struct {
	repo   *repository.DisposalRepository
	cpRepo *repository.CollectionPointRepository
}

func NewDisposalHandler(repo *repository.DisposalRepository, cpRepo *repository.CollectionPointRepository) *DisposalHandler {
	return &DisposalHandler{repo: repo, cpRepo: cpRepo}
}

func (h *DisposalHandler) Create(c *gin.Context) {
	var req struct {
		CollectionPointID uint       `json:"collection_point_id" binding:"required"`
		WasteType         string     `json:"waste_type" binding:"required"`
		QuantityKg        float64    `json:"quantity_kg" binding:"required,gt=0"`
		DisposedAt        *time.Time `json:"disposed_at"`
		Notes             string     `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.cpRepo.GetByID(req.CollectionPointID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown collection point"})
		return
	}
	disposedAt := time.Now()
	if req.DisposedAt != nil {
		disposedAt = *req.DisposedAt
	}
	d := &models.WasteDisposal{
		CollectionPointID: req.CollectionPointID,
		WasteType:         req.WasteType,
		QuantityKg:        req.QuantityKg,
		DisposedAt:        disposedAt,
		Notes:             req.Notes,
	}
	if err := h.repo.Create(d); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *DisposalHandler) List(c *gin.Context) {
	limit, offset := parseLimitOffset(c)
	cpID, _ := strconv.ParseUint(c.Query("collection_point_id"), 10, 64)
	list, err := h.repo.List(uint(cpID), limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"disposals": list})
}

func (h *DisposalHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	d, err := h.repo.GetByID(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DisposalHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		respondErr(c, err)
		return
	}
	var req struct {
		WasteType  *string    `json:"waste_type"`
		QuantityKg *float64   `json:"quantity_kg"`
		DisposedAt *time.Time `json:"disposed_at"`
		Notes      *string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields := map[string]interface{}{}
	if req.WasteType != nil {
		fields["waste_type"] = *req.WasteType
	}
	if req.QuantityKg != nil {
		fields["quantity_kg"] = *req.QuantityKg
	}
	if req.DisposedAt != nil {
		fields["disposed_at"] = *req.DisposedAt
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no valid fields to update"})
		return
	}
	if err := h.repo.UpdateFields(id, fields); err != nil {
		respondErr(c, err)
		return
	}
	d, err := h.repo.GetByID(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DisposalHandler) Delete(c *gin.Context) {
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
