package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"trustcam_backend/internal/api/dto"
	"trustcam_backend/internal/model"
	"trustcam_backend/internal/repository"
)

// LocationController exposes the flat location directory. Locations back
// the geography facets and seller default locations; the repository refuses
// to delete a row that is still referenced.
type LocationController struct {
	locations repository.LocationRepository
}

func NewLocationController(locations repository.LocationRepository) *LocationController {
	return &LocationController{locations: locations}
}

// GetLocations lists the directory
// @Summary List locations
// @Tags Location
// @Success 200 {object} map[string]interface{}
// @Router /api/locations [get]
func (ctrl *LocationController) GetLocations(c *gin.Context) {
	locations, err := ctrl.locations.List(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "query failed: " + err.Error()})
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": locations, "total": len(locations)})
}

// CreateLocation adds a (region, city, district) tuple
// @Summary Create a location
// @Tags Location
// @Param body body dto.CreateLocationReq true "Location"
// @Success 200 {object} map[string]interface{}
// @Router /api/locations [post]
func (ctrl *LocationController) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "invalid payload: " + err.Error()})
		return
	}
	if !model.ValidRegion(req.Region) {
		c.JSON(400, gin.H{"code": 400, "message": "unknown region"})
		return
	}

	location := &model.Location{
		Region:   model.Region(req.Region),
		City:     req.City,
		District: req.District,
	}
	err := ctrl.locations.Create(c.Request.Context(), location)
	switch {
	case err == nil:
		c.JSON(200, gin.H{"code": 0, "message": "success", "data": location})
	case errors.Is(err, model.ErrDuplicateLocation):
		c.JSON(409, gin.H{"code": 409, "message": "location already exists"})
	default:
		c.JSON(500, gin.H{"code": 500, "message": "create failed: " + err.Error()})
	}
}

// DeleteLocation removes an unreferenced location
// @Summary Delete a location
// @Tags Location
// @Param id path int true "Location ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/locations/{id} [delete]
func (ctrl *LocationController) DeleteLocation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "invalid location id"})
		return
	}

	err = ctrl.locations.Delete(c.Request.Context(), id)
	switch {
	case err == nil:
		c.JSON(200, gin.H{"code": 0, "message": "success"})
	case errors.Is(err, model.ErrLocationNotFound):
		c.JSON(404, gin.H{"code": 404, "message": "location not found"})
	case errors.Is(err, model.ErrLocationInUse):
		c.JSON(409, gin.H{"code": 409, "message": "location is still referenced by listings or profiles"})
	default:
		c.JSON(500, gin.H{"code": 500, "message": "delete failed: " + err.Error()})
	}
}
