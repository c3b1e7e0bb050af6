package handler

import (
	"net/http"

	"bluecycle/internal/domain"
	"bluecycle/internal/middleware"
	"bluecycle/internal/models"
	"bluecycle/internal/repository"
	"bluecycle/internal/service"

	"github.com/gin-gonic/gin"
)

// PayoutHandler serves both /api/user-payments and /api/driver-payments; the
// two surfaces share one model and differ only in the owner role they bind.
type PayoutHandler struct {
	ownerRole  string
	payoutSvc  *service.PayoutService
	payoutRepo *repository.PayoutRepository
}

func NewPayoutHandler(ownerRole string, payoutSvc *service.PayoutService, payoutRepo *repository.PayoutRepository) *PayoutHandler {
	return &PayoutHandler{ownerRole: ownerRole, payoutSvc: payoutSvc, payoutRepo: payoutRepo}
}

// Create handles POST /api/user-payments | /api/driver-payments. Bounds and
// balance are checked server-side before anything is persisted.
func (h *PayoutHandler) Create(c *gin.Context) {
	var req struct {
		Amount      int64  `json:"amount" binding:"required,gt=0"`
		BankName    string `json:"bank_name" binding:"required"`
		BankAccount string `json:"bank_account" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.payoutSvc.Create(middleware.GetUserID(c), h.ownerRole, req.Amount, req.BankName, req.BankAccount)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// List handles GET: admins see all requests for the surface's role, earners
// only their own.
func (h *PayoutHandler) List(c *gin.Context) {
	limit, offset := parseLimitOffset(c)
	var (
		list []models.PayoutRequest
		err  error
	)
	if middleware.GetRole(c) == domain.RoleAdmin {
		list, err = h.payoutRepo.List(h.ownerRole, c.Query("status"), limit, offset)
	} else {
		list, err = h.payoutRepo.ListByOwner(middleware.GetUserID(c), limit, offset)
	}
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": list})
}

// Get handles GET /:id.
func (h *PayoutHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.payoutRepo.GetByID(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	if middleware.GetRole(c) != domain.RoleAdmin && p.OwnerID != middleware.GetUserID(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update handles PATCH /:id (admin): status approved | rejected | completed.
func (h *PayoutHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Status          string `json:"status" binding:"required,oneof=APPROVED REJECTED COMPLETED"`
		AdminNotes      string `json:"admin_notes"`
		RejectionReason string `json:"rejection_reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var (
		p   *models.PayoutRequest
		err error
	)
	switch req.Status {
	case domain.PayoutApproved:
		p, err = h.payoutSvc.Approve(id, req.AdminNotes)
	case domain.PayoutRejected:
		p, err = h.payoutSvc.Reject(id, req.RejectionReason, req.AdminNotes)
	case domain.PayoutCompleted:
		p, err = h.payoutSvc.Complete(c.Request.Context(), id)
	}
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
