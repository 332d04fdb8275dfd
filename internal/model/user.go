package model

// User is the minimal account row the catalogue references. Credential and
// session handling live outside this service; JWT claims carry the user id.
type User struct {
	BaseModel
	Username string `gorm:"size:120;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:190;uniqueIndex" json:"email"`
}

func (User) TableName() string {
	return "users"
}
