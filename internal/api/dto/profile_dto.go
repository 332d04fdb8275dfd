package dto

// UpdateProfileReq updates the editable profile fields; omitted fields stay
// untouched.
type UpdateProfileReq struct {
	PhotoURL          *string `json:"photo_url"`
	DefaultLocationID *int64  `json:"default_location_id"`
	PreferredPayment  *string `json:"preferred_payment" binding:"omitempty,oneof=orange_money mtn_momo mobile_money"`
	SellerType        *string `json:"seller_type" binding:"omitempty,oneof=individual professional"`
	PaymentNumber     *string `json:"payment_number" binding:"omitempty,max=20"`
}

// RateSellerReq submits or overwrites the caller's rating of a seller.
type RateSellerReq struct {
	Score   int    `json:"score" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment" binding:"max=255"`
}

// CreateLocationReq adds one (region, city, district) tuple to the
// directory.
type CreateLocationReq struct {
	Region   string `json:"region" binding:"required"`
	City     string `json:"city" binding:"required,max=120"`
	District string `json:"district" binding:"required,max=120"`
}
