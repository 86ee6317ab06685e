package models

import (
	"gorm.io/gorm"
)

// Chart is a saved visualization owned by a single user. Data holds the
// chart payload as a JSON document; the server never interprets it.
type Chart struct {
	gorm.Model
	OwnerID   uint   `gorm:"index;not null" json:"owner_id"`
	Title     string `gorm:"not null" json:"title"`
	ChartType string `json:"chart_type"`
	Data      string `gorm:"type:text" json:"data"`
}
