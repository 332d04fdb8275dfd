package service

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"trustcam_backend/internal/model"
)

// ==================== Test helpers ====================

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database failed: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Location{},
		&model.Category{},
		&model.Listing{},
		&model.RetailDetail{},
		&model.AgriDetail{},
		&model.ListingImage{},
		&model.UserProfile{},
		&model.TrustRating{},
	)
	if err != nil {
		t.Fatalf("migrating test database failed: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("seeding %T failed: %v", value, err)
	}
}

func int64ptr(v int64) *int64 { return &v }

// seedCatalogue builds the fixture shared by the catalogue tests:
//
//	retail (root)            agricole (root)
//	├── telephones           └── fruits
//	└── electromenager
//
// Listings: two available phones (Douala new / Yaounde used), one available
// fruit lot (Douala, origin Ouest), one available listing directly on the
// agricole root (Yaounde) and one sold phone that must never surface.
func seedCatalogue(t *testing.T, db *gorm.DB) {
	t.Helper()

	mustCreate(t, db, &model.User{BaseModel: model.BaseModel{ID: 1}, Username: "alice", Email: "alice@example.com"})
	mustCreate(t, db, &model.User{BaseModel: model.BaseModel{ID: 2}, Username: "bob", Email: "bob@example.com"})

	mustCreate(t, db, &model.Location{BaseModel: model.BaseModel{ID: 1}, Region: model.RegionLittoral, City: "Douala", District: "Akwa"})
	mustCreate(t, db, &model.Location{BaseModel: model.BaseModel{ID: 2}, Region: model.RegionCentre, City: "Yaounde", District: "Bastos"})

	mustCreate(t, db, &model.Category{BaseModel: model.BaseModel{ID: 1}, Name: "Retail", Slug: "retail"})
	mustCreate(t, db, &model.Category{BaseModel: model.BaseModel{ID: 2}, Name: "Telephones", Slug: "telephones", ParentID: int64ptr(1)})
	mustCreate(t, db, &model.Category{BaseModel: model.BaseModel{ID: 3}, Name: "Electromenager", Slug: "electromenager", ParentID: int64ptr(1)})
	mustCreate(t, db, &model.Category{BaseModel: model.BaseModel{ID: 4}, Name: "Agricole", Slug: "agricole"})
	mustCreate(t, db, &model.Category{BaseModel: model.BaseModel{ID: 5}, Name: "Fruits", Slug: "fruits", ParentID: int64ptr(4)})

	mustCreate(t, db, &model.Listing{
		BaseModel: model.BaseModel{ID: 1}, SellerID: 1, CategoryID: 2, LocationID: 1,
		Title: "Samsung A14", Price: 85000, Status: model.StatusAvailable,
		Retail: &model.RetailDetail{Brand: "Samsung", Condition: model.ConditionNew},
	})
	mustCreate(t, db, &model.Listing{
		BaseModel: model.BaseModel{ID: 2}, SellerID: 1, CategoryID: 2, LocationID: 2,
		Title: "iPhone 8", Price: 120000, Status: model.StatusAvailable,
		Retail: &model.RetailDetail{Brand: "Apple", Condition: model.ConditionUsed},
	})
	mustCreate(t, db, &model.Listing{
		BaseModel: model.BaseModel{ID: 3}, SellerID: 2, CategoryID: 5, LocationID: 1,
		Title: "Ananas du marche", Price: 500, Status: model.StatusAvailable,
		Agri: &model.AgriDetail{OriginRegion: model.RegionOuest, Unit: "kg"},
	})
	mustCreate(t, db, &model.Listing{
		BaseModel: model.BaseModel{ID: 4}, SellerID: 2, CategoryID: 4, LocationID: 2,
		Title: "Lot de legumes", Price: 1500, Status: model.StatusAvailable,
	})
	mustCreate(t, db, &model.Listing{
		BaseModel: model.BaseModel{ID: 5}, SellerID: 1, CategoryID: 2, LocationID: 1,
		Title: "Vendu deja", Price: 30000, Status: model.StatusSold,
		Retail: &model.RetailDetail{Brand: "Tecno", Condition: model.ConditionNew},
	})
}
