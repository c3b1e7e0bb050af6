package handler

import (
	"net/http"

	"bluecycle/internal/repository"

	"github.com/gin-gonic/gin"
)

type SmsHandler struct {
	repo *repository.SmsRepository
}

func NewSmsHandler(repo *repository.SmsRepository) *SmsHandler {
	return &SmsHandler{repo: repo}
}

// List handles GET /api/sms-logs (admin).
func (h *SmsHandler) List(c *gin.Context) {
	limit, offset := parseLimitOffset(c)
	list, total, err := h.repo.List(c.Query("status"), limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": list, "total": total})
}
