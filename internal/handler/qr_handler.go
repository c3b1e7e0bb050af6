package handler

import (
	"errors"
	"net/http"
	"time"

	"bluecycle/internal/middleware"
	"bluecycle/internal/models"
	"bluecycle/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QrHandler struct {
	repo       *repository.QrRepository
	pickupRepo *repository.PickupRepository
}

func NewQrHandler(repo *repository.QrRepository, pickupRepo *repository.PickupRepository) *QrHandler {
	return &QrHandler{repo: repo, pickupRepo: pickupRepo}
}

// Create handles POST /api/qr: issues a tracking code for a pickup.
// Idempotent per pickup: a second call returns the existing code.
func (h *QrHandler) Create(c *gin.Context) {
	var req struct {
		PickupID uint `json:"pickup_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.pickupRepo.GetByID(req.PickupID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "pickup not found"})
		return
	}
	if existing, err := h.repo.GetByPickupID(req.PickupID); err == nil {
		c.JSON(http.StatusOK, existing)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondErr(c, err)
		return
	}
	q := &models.QrTracking{
		Code:     uuid.New().String(),
		PickupID: req.PickupID,
	}
	if err := h.repo.Create(q); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, q)
}

// Get handles GET /api/qr/:code.
func (h *QrHandler) Get(c *gin.Context) {
	q, err := h.repo.GetByCode(c.Param("code"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// Scan handles POST /api/qr/:code/scan: stamps the first scan; later scans
// return the original stamp unchanged.
func (h *QrHandler) Scan(c *gin.Context) {
	var req struct {
		Location string `json:"location"`
	}
	_ = c.ShouldBindJSON(&req)
	q, err := h.repo.GetByCode(c.Param("code"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if q.ScannedAt != nil {
		c.JSON(http.StatusOK, q)
		return
	}
	now := time.Now()
	userID := middleware.GetUserID(c)
	q.ScannedAt = &now
	q.ScannedByID = &userID
	q.Location = req.Location
	if err := h.repo.Update(q); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}
