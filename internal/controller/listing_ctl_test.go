package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"trustcam_backend/internal/middleware"
	"trustcam_backend/internal/model"
	"trustcam_backend/internal/repository"
	"trustcam_backend/internal/service"
)

// ==================== Test setup ====================

func setupListingCtlTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database failed: %v", err)
	}
	err = db.AutoMigrate(
		&model.User{}, &model.Location{}, &model.Category{},
		&model.Listing{}, &model.RetailDetail{}, &model.AgriDetail{},
		&model.ListingImage{}, &model.UserProfile{}, &model.TrustRating{},
	)
	if err != nil {
		t.Fatalf("migrating test database failed: %v", err)
	}

	db.Create(&model.User{BaseModel: model.BaseModel{ID: 1}, Username: "seller", Email: "s@example.com"})
	db.Create(&model.User{BaseModel: model.BaseModel{ID: 2}, Username: "buyer", Email: "b@example.com"})
	db.Create(&model.Location{BaseModel: model.BaseModel{ID: 1}, Region: model.RegionLittoral, City: "Douala", District: "Akwa"})
	db.Create(&model.Category{BaseModel: model.BaseModel{ID: 1}, Name: "Retail", Slug: "retail"})
	db.Create(&model.Listing{
		BaseModel: model.BaseModel{ID: 1}, SellerID: 1, CategoryID: 1, LocationID: 1,
		Title: "Samsung A14", Price: 85000, Status: model.StatusAvailable,
	})

	listingRepo := repository.NewListingRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	locationRepo := repository.NewLocationRepository(db)

	reputationSvc := service.NewReputationService(ratingRepo)
	ctl := NewListingController(
		service.NewDetailService(listingRepo, profileRepo, reputationSvc),
		service.NewActionService(listingRepo),
		service.NewListingService(listingRepo, locationRepo),
	)

	r := gin.New()
	r.GET("/api/listings/:id", ctl.GetDetail)
	r.POST("/api/listings/:id/actions", middleware.OptionalAuth(), ctl.PerformAction)
	return r, db
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ==================== Tests ====================

func TestGetDetail_NotFound(t *testing.T) {
	r, _ := setupListingCtlTest(t)

	w := doJSON(r, http.MethodGet, "/api/listings/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDetail_OK(t *testing.T) {
	r, _ := setupListingCtlTest(t)

	w := doJSON(r, http.MethodGet, "/api/listings/1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int `json:"code"`
		Data struct {
			Listing    model.Listing `json:"listing"`
			BadgeClass string        `json:"badge_class"`
			SellerCity string        `json:"seller_city"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "Samsung A14", resp.Data.Listing.Title)
	assert.Equal(t, "text-bg-success", resp.Data.BadgeClass)
	assert.Equal(t, "Douala", resp.Data.SellerCity)
}

func TestPerformAction_RequiresAuthentication(t *testing.T) {
	r, _ := setupListingCtlTest(t)

	w := doJSON(r, http.MethodPost, "/api/listings/1/actions", "", map[string]string{"action": "secure_purchase"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp struct {
		OK       bool   `json:"ok"`
		LoginURL string `json:"login_url"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Contains(t, resp.LoginURL, "/login?next=")
}

func TestPerformAction_SecurePurchaseFlow(t *testing.T) {
	r, db := setupListingCtlTest(t)

	token, err := middleware.GenerateAccessToken(2, "buyer")
	assert.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/api/listings/1/actions", token, map[string]string{"action": "secure_purchase"})
	assert.Equal(t, http.StatusOK, w.Code)

	var listing model.Listing
	assert.NoError(t, db.First(&listing, 1).Error)
	assert.Equal(t, model.StatusInEscrow, listing.Status)

	// Second attempt hits the availability guard.
	w = doJSON(r, http.MethodPost, "/api/listings/1/actions", token, map[string]string{"action": "secure_purchase"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no longer available")
}

func TestPerformAction_SelfPurchase(t *testing.T) {
	r, _ := setupListingCtlTest(t)

	token, err := middleware.GenerateAccessToken(1, "seller")
	assert.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/api/listings/1/actions", token, map[string]string{"action": "secure_purchase"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "your own listing")
}

func TestPerformAction_Contact(t *testing.T) {
	r, _ := setupListingCtlTest(t)

	token, err := middleware.GenerateAccessToken(2, "buyer")
	assert.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/api/listings/1/actions", token, map[string]string{"action": "contact"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/profile/dashboard")
}

func TestPerformAction_UnsupportedAction(t *testing.T) {
	r, _ := setupListingCtlTest(t)

	token, err := middleware.GenerateAccessToken(2, "buyer")
	assert.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/api/listings/1/actions", token, map[string]string{"action": "teleport"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported action")
}
