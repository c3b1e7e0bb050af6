package handler

import (
	"net/http"

	"bluecycle/internal/middleware"
	"bluecycle/internal/repository"
	"bluecycle/internal/service"

	"github.com/gin-gonic/gin"
)

type MeHandler struct {
	userRepo   *repository.UserRepository
	ledgerRepo *repository.LedgerRepository
	payoutSvc  *service.PayoutService
}

func NewMeHandler(userRepo *repository.UserRepository, ledgerRepo *repository.LedgerRepository, payoutSvc *service.PayoutService) *MeHandler {
	return &MeHandler{userRepo: userRepo, ledgerRepo: ledgerRepo, payoutSvc: payoutSvc}
}

// Get handles GET /api/me: the verified identity from the token.
func (h *MeHandler) Get(c *gin.Context) {
	u, err := h.userRepo.GetByID(middleware.GetUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfile handles PATCH /api/me: name, phone and bank details only.
func (h *MeHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		Name        *string `json:"name"`
		Phone       *string `json:"phone"`
		BankName    *string `json:"bank_name"`
		BankAccount *string `json:"bank_account"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.BankName != nil {
		fields["bank_name"] = *req.BankName
	}
	if req.BankAccount != nil {
		fields["bank_account"] = *req.BankAccount
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no valid fields to update"})
		return
	}
	if err := h.userRepo.UpdateFields(userID, fields); err != nil {
		respondErr(c, err)
		return
	}
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Balance handles GET /api/me/balance.
func (h *MeHandler) Balance(c *gin.Context) {
	userID := middleware.GetUserID(c)
	available, err := h.payoutSvc.AvailableBalance(userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

// Ledger handles GET /api/me/ledger.
func (h *MeHandler) Ledger(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, offset := parseLimitOffset(c)
	entries, err := h.ledgerRepo.ListByOwner(userID, limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
