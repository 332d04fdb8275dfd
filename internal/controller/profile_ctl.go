package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"trustcam_backend/internal/api/dto"
	"trustcam_backend/internal/middleware"
	"trustcam_backend/internal/model"
	"trustcam_backend/internal/service"
)

type ProfileController struct {
	profileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetDashboard returns the signed-in user's profile and reputation
// @Summary Trust dashboard
// @Tags Profile
// @Success 200 {object} map[string]interface{}
// @Router /api/profile [get]
func (ctrl *ProfileController) GetDashboard(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	view, err := ctrl.profileService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": "dashboard query failed: " + err.Error()})
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "success", "data": view})
}

// UpdateProfile edits identity, location and payment preferences
// @Summary Update profile
// @Tags Profile
// @Param body body dto.UpdateProfileReq true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Router /api/profile [put]
func (ctrl *ProfileController) UpdateProfile(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "invalid payload: " + err.Error()})
		return
	}

	input := service.UpdateProfileInput{
		PhotoURL:          req.PhotoURL,
		DefaultLocationID: req.DefaultLocationID,
		PaymentNumber:     req.PaymentNumber,
	}
	if req.PreferredPayment != nil {
		payment := model.PaymentMethod(*req.PreferredPayment)
		input.PreferredPayment = &payment
	}
	if req.SellerType != nil {
		sellerType := model.SellerType(*req.SellerType)
		input.SellerType = &sellerType
	}

	profile, err := ctrl.profileService.Update(c.Request.Context(), userID, input)
	switch {
	case err == nil:
		c.JSON(200, gin.H{"code": 0, "message": "success", "data": profile})
	case errors.Is(err, model.ErrLocationNotFound):
		c.JSON(400, gin.H{"code": 400, "message": "unknown default location"})
	default:
		c.JSON(500, gin.H{"code": 500, "message": "update failed: " + err.Error()})
	}
}

// RateSeller submits or overwrites a trust rating for a seller
// @Summary Rate a seller
// @Tags Profile
// @Param id path int true "Seller user ID"
// @Param body body dto.RateSellerReq true "Rating"
// @Success 200 {object} map[string]interface{}
// @Router /api/sellers/{id}/ratings [post]
func (ctrl *ProfileController) RateSeller(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || targetID <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "invalid seller id"})
		return
	}
	authorID, _ := middleware.CurrentUserID(c)

	var req dto.RateSellerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"code": 400, "message": "score must be between 1 and 5"})
		return
	}

	err = ctrl.profileService.RateSeller(c.Request.Context(), authorID, targetID, req.Score, req.Comment)
	switch {
	case err == nil:
		c.JSON(200, gin.H{"code": 0, "message": "success"})
	case errors.Is(err, model.ErrInvalidRating):
		c.JSON(400, gin.H{"code": 400, "message": "score must be between 1 and 5"})
	case errors.Is(err, model.ErrSelfRating):
		c.JSON(400, gin.H{"code": 400, "message": "you cannot rate yourself"})
	default:
		c.JSON(500, gin.H{"code": 500, "message": "rating failed: " + err.Error()})
	}
}
