package model

import (
	"strings"

	"gorm.io/gorm"
)

// Category is a node of the recursive category tree. Children are never
// embedded in the struct; traversal goes through id lookups so the tree can
// be arbitrarily deep without pointer cycles.
type Category struct {
	BaseModel
	Name     string `gorm:"size:120;not null" json:"name"`
	Slug     string `gorm:"size:140;uniqueIndex;not null" json:"slug"`
	ParentID *int64 `gorm:"index" json:"parent_id"`
}

func (Category) TableName() string {
	return "categories"
}

// BeforeSave derives the slug from the name when none was provided.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	return nil
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// Slugify lowercases s and collapses every non-alphanumeric run to a single
// dash, trimming leading and trailing dashes.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
