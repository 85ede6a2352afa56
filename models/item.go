package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategorySnapshot is the copy of a category an item carries.
// Name must follow the category's current CategoryName.
type CategorySnapshot struct {
	ID   uuid.UUID `gorm:"type:uuid;not null;index:idx_items_category_id" json:"id"`
	Name string    `gorm:"type:varchar(100);not null;index:idx_items_category_name" json:"name"`
}

// Item is a catalog product. Items are owned by the items module; categories
// only read them and rewrite the embedded snapshot.
type Item struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string           `gorm:"type:varchar(255);not null" json:"name"`
	Category  CategorySnapshot `gorm:"embedded;embeddedPrefix:category_" json:"category"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Item model
func (*Item) TableName() string {
	return "items"
}

// BeforeCreate sets up the model before creation
func (i *Item) BeforeCreate(_ *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Validate performs validation on the item model
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrInvalidItemName
	}
	if i.Category.ID == uuid.Nil {
		return ErrInvalidCategoryID
	}
	return nil
}
