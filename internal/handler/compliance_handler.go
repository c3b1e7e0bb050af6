package handler

import (
	"errors"
	"net/http"
	"time"

	"bluecycle/internal/middleware"
	"bluecycle/internal/models"
	"bluecycle/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ComplianceHandler struct {
	repo         *repository.ComplianceRepository
	disposalRepo *repository.DisposalRepository
}

func NewComplianceHandler(repo *repository.ComplianceRepository, disposalRepo *repository.DisposalRepository) *ComplianceHandler {
	return &ComplianceHandler{repo: repo, disposalRepo: disposalRepo}
}

// Generate handles POST /api/compliance-reports: aggregates collected and
// disposed volumes for a "YYYY-MM" period. One report per period.
func (h *ComplianceHandler) Generate(c *gin.Context) {
	var req struct {
		Period string `json:"period" binding:"required"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, err := time.Parse("2006-01", req.Period)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be YYYY-MM"})
		return
	}
	if _, err := h.repo.GetByPeriod(req.Period); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "report already exists for period"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondErr(c, err)
		return
	}
	end := start.AddDate(0, 1, 0)
	collected, err := h.repo.SumCollectedBetween(start, end)
	if err != nil {
		respondErr(c, err)
		return
	}
	disposed, err := h.disposalRepo.SumDisposedBetween(start, end)
	if err != nil {
		respondErr(c, err)
		return
	}
	report := &models.ComplianceReport{
		Period:           req.Period,
		TotalCollectedKg: collected,
		TotalDisposedKg:  disposed,
		GeneratedByID:    middleware.GetUserID(c),
		Notes:            req.Notes,
	}
	if err := h.repo.Create(report); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *ComplianceHandler) List(c *gin.Context) {
	limit, offset := parseLimitOffset(c)
	list, err := h.repo.List(limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": list})
}

func (h *ComplianceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	report, err := h.repo.GetByID(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ComplianceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		respondErr(c, err)
		return
	}
	var req struct {
		Notes *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Notes == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no valid fields to update"})
		return
	}
	if err := h.repo.UpdateFields(id, map[string]interface{}{"notes": *req.Notes}); err != nil {
		respondErr(c, err)
		return
	}
	report, err := h.repo.GetByID(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ComplianceHandler) Delete(c *gin.Context) {
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
