package model

// ==================== User profile ====================

// PaymentMethod is the seller's preferred mobile payment rail.
type PaymentMethod string

const (
	PaymentOrangeMoney PaymentMethod = "orange_money"
	PaymentMTNMoMo     PaymentMethod = "mtn_momo"
	PaymentMobileMoney PaymentMethod = "mobile_money"
)

// SellerType distinguishes individual from professional sellers on the
// catalogue cards.
type SellerType string

const (
	SellerIndividual   SellerType = "individual"
	SellerProfessional SellerType = "professional"
)

// UserProfile carries identity defaults, payment preferences and the trust
// badge for one user. Created lazily on first access.
type UserProfile struct {
	BaseModel
	UserID            int64         `gorm:"uniqueIndex;not null" json:"user_id"`
	User              *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PhotoURL          string        `gorm:"size:255" json:"photo_url"`
	DefaultLocationID *int64        `gorm:"index" json:"default_location_id,omitempty"`
	DefaultLocation   *Location     `gorm:"foreignKey:DefaultLocationID" json:"default_location,omitempty"`
	PreferredPayment  PaymentMethod `gorm:"size:24;default:'mobile_money'" json:"preferred_payment"`
	SellerType        SellerType    `gorm:"size:20;default:'individual'" json:"seller_type"`
	PaymentNumber     string        `gorm:"size:20" json:"payment_number"`
	TrustBadge        bool          `gorm:"default:false" json:"trust_badge"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// SellerTypeLabel is the display label for the profile's seller type.
func (p *UserProfile) SellerTypeLabel() string {
	if p != nil && p.SellerType == SellerProfessional {
		return "Professionnel"
	}
	return "Particulier"
}

// ==================== Trust ratings ====================

// TrustRating is one peer rating of a user. At most one rating exists per
// (author, target) pair; re-rating overwrites in place.
type TrustRating struct {
	BaseModel
	AuthorID int64  `gorm:"not null;uniqueIndex:uniq_author_target" json:"author_id"`
	TargetID int64  `gorm:"not null;uniqueIndex:uniq_author_target;index" json:"target_id"`
	Score    int    `gorm:"not null" json:"score"`
	Comment  string `gorm:"size:255" json:"comment"`
}

func (TrustRating) TableName() string {
	return "trust_ratings"
}
