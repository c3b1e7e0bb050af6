package handler

import (
	"net/http"

	"bluecycle/internal/bulk"
	"bluecycle/internal/models"
	"bluecycle/internal/repository"
	"bluecycle/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Export/import talks straight to the store: bulk restore is an admin tool
// and must not re-fire lifecycle side effects for rows that already settled.
type BulkHandler struct {
	db          *gorm.DB
	pickupRepo  *repository.PickupRepository
	userRepo    *repository.UserRepository
	cpRepo      *repository.CollectionPointRepository
	catalogRepo *repository.CatalogRepository
}

func NewBulkHandler(db *gorm.DB, pickupRepo *repository.PickupRepository, userRepo *repository.UserRepository,
	cpRepo *repository.CollectionPointRepository, catalogRepo *repository.CatalogRepository) *BulkHandler {
	return &BulkHandler{db: db, pickupRepo: pickupRepo, userRepo: userRepo, cpRepo: cpRepo, catalogRepo: catalogRepo}
}

const exportBatch = 10000

// Export handles GET /api/bulk-export/:type as text/csv.
func (h *BulkHandler) Export(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+c.Param("type")+".csv")
	var err error
	switch c.Param("type") {
	case "pickups":
		var list []models.Pickup
		if err = h.db.Order("id").Limit(exportBatch).Find(&list).Error; err == nil {
			err = bulk.WritePickups(c.Writer, list)
		}
	case "users":
		var list []models.User
		if err = h.db.Order("id").Limit(exportBatch).Find(&list).Error; err == nil {
			err = bulk.WriteUsers(c.Writer, list)
		}
	case "collection-points":
		var list []models.CollectionPoint
		if err = h.db.Order("id").Limit(exportBatch).Find(&list).Error; err == nil {
			err = bulk.WriteCollectionPoints(c.Writer, list)
		}
	case "catalog":
		var list []models.WasteCatalogItem
		if err = h.db.Order("id").Limit(exportBatch).Find(&list).Error; err == nil {
			err = bulk.WriteCatalog(c.Writer, list)
		}
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown export type"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
	}
}

// Import handles POST /api/bulk-import/:type with {data: []string}
// (pre-split CSV lines). Valid rows are persisted; the response reports
// per-line failures.
func (h *BulkHandler) Import(c *gin.Context) {
	var req struct {
		Data []string `json:"data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch c.Param("type") {
	case "pickups":
		pickups, res := bulk.ParsePickups(req.Data)
		for i := range pickups {
			// Derived split always comes from the price column, never the file.
			pickups[i].DriverEarnings, pickups[i].AdminCommission = service.SplitPrice(pickups[i].Price)
			if err := h.pickupRepo.Create(&pickups[i]); err != nil {
				res.Success--
				res.Failed++
				res.Errors = append(res.Errors, "persist: "+err.Error())
			}
		}
		c.JSON(http.StatusOK, res)
	case "collection-points":
		points, res := bulk.ParseCollectionPoints(req.Data)
		for i := range points {
			if err := h.cpRepo.Create(&points[i]); err != nil {
				res.Success--
				res.Failed++
				res.Errors = append(res.Errors, "persist: "+err.Error())
			}
		}
		c.JSON(http.StatusOK, res)
	case "catalog":
		items, res := bulk.ParseCatalog(req.Data)
		for i := range items {
			if err := h.catalogRepo.Create(&items[i]); err != nil {
				res.Success--
				res.Failed++
				res.Errors = append(res.Errors, "persist: "+err.Error())
			}
		}
		c.JSON(http.StatusOK, res)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown import type"})
	}
}
