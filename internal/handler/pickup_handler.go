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

type PickupHandler struct {
	pickupSvc  *service.PickupService
	pickupRepo *repository.PickupRepository
	notifier   *service.NotifierService
}

func NewPickupHandler(pickupSvc *service.PickupService, pickupRepo *repository.PickupRepository, notifier *service.NotifierService) *PickupHandler {
	return &PickupHandler{pickupSvc: pickupSvc, pickupRepo: pickupRepo, notifier: notifier}
}

// Create handles POST /api/pickups. The server derives the 80/20 split from
// the price; clients cannot set earnings or commission.
func (h *PickupHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		Address           string  `json:"address" binding:"required"`
		WasteType         string  `json:"waste_type" binding:"required"`
		QuantityKg        float64 `json:"quantity_kg" binding:"required,gt=0"`
		DeliveryMethod    string  `json:"delivery_method" binding:"required,oneof=PICKUP DROPOFF"`
		Price             int64   `json:"price" binding:"min=0"`
		CollectionPointID *uint   `json:"collection_point_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := &models.Pickup{
		Address:           req.Address,
		WasteType:         req.WasteType,
		QuantityKg:        req.QuantityKg,
		DeliveryMethod:    req.DeliveryMethod,
		Price:             req.Price,
		CollectionPointID: req.CollectionPointID,
		RequestedByID:     userID,
	}
	if err := h.pickupSvc.Create(p); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// List handles GET /api/pickups; scope depends on the caller's role.
func (h *PickupHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, offset := parseLimitOffset(c)
	var (
		list []models.Pickup
		err  error
	)
	switch middleware.GetRole(c) {
	case domain.RoleAdmin:
		list, err = h.pickupRepo.ListAll(c.Query("status"), limit, offset)
	case domain.RoleDriver:
		list, err = h.pickupRepo.ListForDriver(userID, limit, offset)
	default:
		list, err = h.pickupRepo.ListByRequester(userID, limit, offset)
	}
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pickups": list})
}

// Get handles GET /api/pickups/:id.
func (h *PickupHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.pickupSvc.Get(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	if !visibleTo(p, middleware.GetUserID(c), middleware.GetRole(c)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update handles PATCH /api/pickups/:id: partial field update and/or a
// status transition. The first transition into COMPLETED settles the order.
func (h *PickupHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Address            *string  `json:"address"`
		WasteType          *string  `json:"waste_type"`
		QuantityKg         *float64 `json:"quantity_kg"`
		DeliveryMethod     *string  `json:"delivery_method"`
		Price              *int64   `json:"price"`
		CollectionPointID  *uint    `json:"collection_point_id"`
		Status             *string  `json:"status"`
		AssignedDriverID   *uint    `json:"assigned_driver_id"`
		CancellationReason *string  `json:"cancellation_reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := middleware.GetUserID(c)
	role := middleware.GetRole(c)
	if req.Status != nil && !statusAllowedForRole(*req.Status, role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "role cannot set this status"})
		return
	}
	p, err := h.pickupSvc.Update(id, service.PickupUpdate{
		Address:            req.Address,
		WasteType:          req.WasteType,
		QuantityKg:         req.QuantityKg,
		DeliveryMethod:     req.DeliveryMethod,
		Price:              req.Price,
		CollectionPointID:  req.CollectionPointID,
		Status:             req.Status,
		AssignedDriverID:   req.AssignedDriverID,
		CancellationReason: req.CancellationReason,
	}, userID, role)
	if err != nil {
		respondErr(c, err)
		return
	}
	if req.Status != nil {
		h.notifier.PickupStatusChanged(p)
	}
	c.JSON(http.StatusOK, p)
}

// Take handles POST /api/pickups/:id/take: the driver claims an accepted
// order, which assigns them and moves it to IN_PROGRESS in one step.
func (h *PickupHandler) Take(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.pickupSvc.Take(id, middleware.GetUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	h.notifier.PickupStatusChanged(p)
	c.JSON(http.StatusOK, p)
}

// statusAllowedForRole scopes transitions: customers may only cancel, drivers
// work the order, admins may set anything the transition table allows.
func statusAllowedForRole(status, role string) bool {
	switch role {
	case domain.RoleAdmin:
		return true
	case domain.RoleDriver:
		return status == domain.PickupInProgress || status == domain.PickupCompleted ||
			status == domain.PickupCancelled
	default:
		return status == domain.PickupCancelled
	}
}

func visibleTo(p *models.Pickup, userID uint, role string) bool {
	switch role {
	case domain.RoleAdmin:
		return true
	case domain.RoleDriver:
		return p.AssignedDriverID == nil || *p.AssignedDriverID == userID
	default:
		return p.RequestedByID == userID
	}
}
