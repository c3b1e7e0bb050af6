package handler

import (
	"math"
	"net/http"
	"sort"
	"strconv"

	"bluecycle/internal/models"
	"bluecycle/internal/repository"
	"bluecycle/pkg/geo"

	"github.com/gin-gonic/gin"
)

type CollectionPointHandler struct {
	repo *repository.CollectionPointRepository
}

func NewCollectionPointHandler(repo *repository.CollectionPointRepository) *CollectionPointHandler {
	return &CollectionPointHandler{repo: repo}
}

func (h *CollectionPointHandler) Create(c *gin.Context) {
	var req struct {
		Name       string  `json:"name" binding:"required"`
		Address    string  `json:"address" binding:"required"`
		City       string  `json:"city"`
		Latitude   float64 `json:"latitude"`
		Longitude  float64 `json:"longitude"`
		CapacityKg float64 `json:"capacity_kg"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cp := &models.CollectionPoint{
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		CapacityKg: req.CapacityKg,
		Active:     true,
	}
	if err := h.repo.Create(cp); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, cp)
}

func (h *CollectionPointHandler) List(c *gin.Context) {
	limit, offset := parseLimitOffset(c)
	list, err := h.repo.List(c.Query("city"), c.Query("active") == "true", limit, offset)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"collection_points": list})
}

// Nearby returns active collection points within radius_km of the given
// coordinates, closest first. Default radius is 10 km.
func (h *CollectionPointHandler) Nearby(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng query parameters are required"})
		return
	}
	radius := 10.0
	if v := c.Query("radius_km"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "radius_km must be a positive number"})
			return
		}
		radius = r
	}
	points, err := h.repo.ListActive()
	if err != nil {
		respondErr(c, err)
		return
	}
	type nearbyPoint struct {
		models.CollectionPoint
		DistanceKm float64 `json:"distance_km"`
	}
	result := make([]nearbyPoint, 0, len(points))
	for _, p := range points {
		d := geo.DistanceKm(lat, lng, p.Latitude, p.Longitude)
		if d <= radius {
			result = append(result, nearbyPoint{CollectionPoint: p, DistanceKm: math.Round(d*100) / 100})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DistanceKm < result[j].DistanceKm })
	c.JSON(http.StatusOK, gin.H{"collection_points": result})
}

func (h *CollectionPointHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cp, err := h.repo.GetByID(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cp)
}

func (h *CollectionPointHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.repo.GetByID(id); err != nil {
		respondErr(c, err)
		return
	}
	var req struct {
		Name       *string  `json:"name"`
		Address    *string  `json:"address"`
		City       *string  `json:"city"`
		Latitude   *float64 `json:"latitude"`
		Longitude  *float64 `json:"longitude"`
		CapacityKg *float64 `json:"capacity_kg"`
		Active     *bool    `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.Latitude != nil {
		fields["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		fields["longitude"] = *req.Longitude
	}
	if req.CapacityKg != nil {
		fields["capacity_kg"] = *req.CapacityKg
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
	cp, err := h.repo.GetByID(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cp)
}

func (h *CollectionPointHandler) Delete(c *gin.Context) {
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
