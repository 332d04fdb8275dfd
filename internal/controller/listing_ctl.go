package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"trustcam_backend/internal/api/dto"
	"trustcam_backend/internal/middleware"
	"trustcam_backend/internal/model"
	"trustcam_backend/internal/service"
)

type ListingController struct {
	detailService  *service.DetailService
	actionService  *service.ActionService
	listingService *service.ListingService
}

func NewListingController(detail *service.DetailService, action *service.ActionService, listing *service.ListingService) *ListingController {
	return &ListingController{
		detailService:  detail,
		actionService:  action,
		listingService: listing,
	}
}

// ==================== Detail ====================

// GetDetail returns the assembled listing detail page
// @Summary Get listing detail with seller trust metrics
// @Tags Listing
// @Param id path int true "Listing ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/listings/{id} [get]
func (ctrl *ListingController) GetDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "invalid listing id"})
		return
	}

	view, err := ctrl.detailService.Detail(c.Request.Context(), id)
	if errors.Is(err, model.ErrListingNotFound) {
		c.JSON(404, gin.H{"code": 404, "message": "listing not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "detail query failed: " + err.Error()})
		return
	}

	c.JSON(200, gin.H{"code": 0, "message": "success", "data": view})
}

// ==================== Actions ====================

// PerformAction runs a quick action on a listing
// @Summary Contact the seller or start a secure purchase
// @Tags Listing
// @Param id path int true "Listing ID"
// @Param body body dto.ListingActionReq true "Action name"
// @Success 200 {object} map[string]interface{}
// @Router /api/listings/{id}/actions [post]
func (ctrl *ListingController) PerformAction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "invalid listing id"})
		return
	}

	actorID, authenticated := middleware.CurrentUserID(c)
	if !authenticated {
		c.JSON(401, gin.H{
			"ok":        false,
			"code":      401,
			"message":   "Please sign in to continue.",
			"login_url": "/login?next=/listings/" + strconv.FormatInt(id, 10),
		})
		return
	}

	var req dto.ListingActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"ok": false, "code": 400, "message": "action is required"})
		return
	}

	result, err := ctrl.actionService.Perform(c.Request.Context(), id, req.Action, actorID)
	switch {
	case err == nil:
		c.JSON(200, gin.H{"code": 0, "message": "success", "data": result})
	case errors.Is(err, model.ErrListingNotFound):
		c.JSON(404, gin.H{"ok": false, "code": 404, "message": "listing not found"})
	case errors.Is(err, model.ErrOwnListingPurchase):
		c.JSON(400, gin.H{"ok": false, "code": 400, "message": "you cannot buy your own listing"})
	case errors.Is(err, model.ErrListingUnavailable):
		c.JSON(400, gin.H{"ok": false, "code": 400, "message": "this listing is no longer available"})
	case errors.Is(err, model.ErrUnsupportedAction):
		c.JSON(400, gin.H{"ok": false, "code": 400, "message": "unsupported action"})
	default:
		c.JSON(500, gin.H{"ok": false, "code": 500, "message": "action failed: " + err.Error()})
	}
}

// ==================== Seller side ====================

// CreateListing creates a listing for the signed-in seller
// @Summary Create a listing
// @Tags Listing
// @Param body body dto.CreateListingReq true "Listing"
// @Success 200 {object} map[string]interface{}
// @Router /api/listings [post]
func (ctrl *ListingController) CreateListing(c *gin.Context) {
	sellerID, _ := middleware.CurrentUserID(c)

	var req dto.CreateListingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "invalid payload: " + err.Error()})
		return
	}
	if req.Agri != nil && !model.ValidRegion(req.Agri.OriginRegion) {
		c.JSON(400, gin.H{"code": 400, "message": "unknown origin region"})
		return
	}

	input := service.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
		ImageURLs:   req.ImageURLs,
	}
	if req.Retail != nil {
		input.Retail = &service.RetailInput{
			Brand:     req.Retail.Brand,
			Condition: model.RetailCondition(req.Retail.Condition),
			Specs:     req.Retail.Specs,
		}
	}
	if req.Agri != nil {
		var harvest *time.Time
		if req.Agri.HarvestDate != nil {
			h := *req.Agri.HarvestDate
			harvest = &h
		}
		input.Agri = &service.AgriInput{
			OriginRegion:  model.Region(req.Agri.OriginRegion),
			Unit:          req.Agri.Unit,
			HarvestDate:   harvest,
			ShelfLifeDays: req.Agri.ShelfLifeDays,
		}
	}

	listing, err := ctrl.listingService.Create(c.Request.Context(), sellerID, input)
	switch {
	case err == nil:
		c.JSON(200, gin.H{"code": 0, "message": "success", "data": listing})
	case errors.Is(err, model.ErrVariantConflict):
		c.JSON(400, gin.H{"code": 400, "message": "a listing cannot be both retail and agricultural"})
	case errors.Is(err, model.ErrLocationNotFound):
		c.JSON(400, gin.H{"code": 400, "message": "unknown location"})
	default:
		c.JSON(500, gin.H{"code": 500, "message": "create failed: " + err.Error()})
	}
}

// GetMyListings lists the signed-in seller's listings
// @Summary List own listings
// @Tags Listing
// @Success 200 {object} map[string]interface{}
// @Router /api/listings/mine [get]
func (ctrl *ListingController) GetMyListings(c *gin.Context) {
	sellerID, _ := middleware.CurrentUserID(c)

	listings, err := ctrl.listingService.Mine(c.Request.Context(), sellerID)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "query failed: " + err.Error()})
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": listings, "total": len(listings)})
}

// DeleteListing removes the signed-in seller's own listing
// @Summary Delete own listing
// @Tags Listing
// @Param id path int true "Listing ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/listings/{id} [delete]
func (ctrl *ListingController) DeleteListing(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "invalid listing id"})
		return
	}
	sellerID, _ := middleware.CurrentUserID(c)

	err = ctrl.listingService.Delete(c.Request.Context(), sellerID, id)
	switch {
	case err == nil:
		c.JSON(200, gin.H{"code": 0, "message": "success"})
	case errors.Is(err, model.ErrListingNotFound):
		c.JSON(404, gin.H{"code": 404, "message": "listing not found"})
	case errors.Is(err, model.ErrNotListingOwner):
		c.JSON(403, gin.H{"code": 403, "message": "you can only delete your own listings"})
	default:
		c.JSON(500, gin.H{"code": 500, "message": "delete failed: " + err.Error()})
	}
}
