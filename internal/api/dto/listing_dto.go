package dto

import "time"

// ==================== Requests ====================

// RetailDetailReq is the retail variant block of a create request.
type RetailDetailReq struct {
	Brand     string                 `json:"brand" binding:"required,max=120"`
	Condition string                 `json:"condition" binding:"required,oneof=new used refurbished"`
	Specs     map[string]interface{} `json:"specs"`
}

// AgriDetailReq is the agricultural variant block of a create request.
type AgriDetailReq struct {
	OriginRegion  string     `json:"origin_region" binding:"required"`
	Unit          string     `json:"unit" binding:"required,max=24"`
	HarvestDate   *time.Time `json:"harvest_date"`
	ShelfLifeDays *int       `json:"shelf_life_days" binding:"omitempty,gte=0"`
}

// CreateListingReq creates a listing with at most one variant block.
type CreateListingReq struct {
	Title       string           `json:"title" binding:"required,max=180"`
	Description string           `json:"description"`
	Price       float64          `json:"price" binding:"required,gt=0"`
	CategoryID  int64            `json:"category_id" binding:"required"`
	LocationID  int64            `json:"location_id" binding:"required"`
	Retail      *RetailDetailReq `json:"retail"`
	Agri        *AgriDetailReq   `json:"agri"`
	ImageURLs   []string         `json:"image_urls" binding:"max=10"`
}

// ListingActionReq names the quick action to run on a listing.
type ListingActionReq struct {
	Action string `json:"action" binding:"required"`
}
