package model

import (
	"time"

	"gorm.io/datatypes"
)

// ==================== Status ====================

// ListingStatus is the lifecycle state of a listing.
type ListingStatus string

const (
	StatusAvailable ListingStatus = "available"
	StatusInEscrow  ListingStatus = "in_escrow"
	StatusSold      ListingStatus = "sold"
)

// ==================== Listing ====================

// Listing is the root entity of the catalogue. A listing owns at most one
// variant detail row (retail or agricultural, never both) and an ordered set
// of images; both are cascade-deleted with it. Category and Location are
// shared references, not owned.
type Listing struct {
	BaseModel
	SellerID   int64     `gorm:"index;not null" json:"seller_id"`
	Seller     *User     `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	CategoryID int64     `gorm:"index;not null" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	LocationID int64     `gorm:"index;not null" json:"location_id"`
	Location   *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`

	Title       string        `gorm:"size:180;index;not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	Price       float64       `gorm:"type:decimal(12,2);not null" json:"price"`
	Status      ListingStatus `gorm:"size:20;index;default:'available'" json:"status"`

	Retail *RetailDetail  `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"retail,omitempty"`
	Agri   *AgriDetail    `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"agri,omitempty"`
	Images []ListingImage `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

func (Listing) TableName() string {
	return "listings"
}

// ==================== Variant (tagged union view) ====================

type VariantKind string

const (
	VariantNone   VariantKind = "none"
	VariantRetail VariantKind = "retail"
	VariantAgri   VariantKind = "agricultural"
)

// Variant is a tagged view over the two optional detail rows, so callers
// branch on Kind instead of nil-checking two pointers.
type Variant struct {
	Kind   VariantKind
	Retail *RetailDetail
	Agri   *AgriDetail
}

// Variant returns the tagged union view of the listing's detail row.
// The creation path guarantees at most one of the two is set.
func (l *Listing) Variant() Variant {
	switch {
	case l.Retail != nil:
		return Variant{Kind: VariantRetail, Retail: l.Retail}
	case l.Agri != nil:
		return Variant{Kind: VariantAgri, Agri: l.Agri}
	default:
		return Variant{Kind: VariantNone}
	}
}

// ==================== Retail detail ====================

// RetailCondition is the quick-filter state of a retail item.
type RetailCondition string

const (
	ConditionNew         RetailCondition = "new"
	ConditionUsed        RetailCondition = "used"
	ConditionRefurbished RetailCondition = "refurbished"
)

type RetailDetail struct {
	BaseModel
	ListingID int64             `gorm:"uniqueIndex;not null" json:"listing_id"`
	Brand     string            `gorm:"size:120" json:"brand"`
	Condition RetailCondition   `gorm:"size:24;index;default:'new'" json:"condition"`
	Specs     datatypes.JSONMap `gorm:"type:jsonb" json:"specs"`
}

func (RetailDetail) TableName() string {
	return "retail_details"
}

// ==================== Agricultural detail ====================

type AgriDetail struct {
	BaseModel
	ListingID     int64      `gorm:"uniqueIndex;not null" json:"listing_id"`
	OriginRegion  Region     `gorm:"size:32;index;not null" json:"origin_region"`
	Unit          string     `gorm:"size:24" json:"unit"`
	HarvestDate   *time.Time `gorm:"type:date" json:"harvest_date,omitempty"`
	ShelfLifeDays *int       `json:"shelf_life_days,omitempty"`
}

func (AgriDetail) TableName() string {
	return "agri_details"
}

// ==================== Images ====================

// ListingImage is one image of a listing; the gallery orders by Position,
// then id for ties.
type ListingImage struct {
	BaseModel
	ListingID int64  `gorm:"index;not null" json:"listing_id"`
	URL       string `gorm:"size:255;not null" json:"url"`
	Position  int    `gorm:"default:0" json:"position"`
}

func (ListingImage) TableName() string {
	return "listing_images"
}
