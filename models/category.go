package models

import (
	"fmt"
	"time"
)

type RoomCategory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex"`
	BasePrice   float64   `json:"base_price"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Rooms       []Room    `json:"-" gorm:"foreignKey:CategoryID"`
}

func (c *RoomCategory) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("category name is required")
	}
	if c.BasePrice <= 0 {
		return fmt.Errorf("invalid base price: %.2f, must be positive", c.BasePrice)
	}
	if c.Capacity <= 0 {
		return fmt.Errorf("invalid capacity: %d, must be positive", c.Capacity)
	}
	return nil
}
