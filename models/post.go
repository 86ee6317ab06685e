package models

import (
	"gorm.io/gorm"
)

// Post is a study post shared on the platform feed.
type Post struct {
	gorm.Model
	AuthorID uint   `gorm:"index;not null" json:"author_id"`
	Title    string `gorm:"not null" json:"title"`
	Slug     string `gorm:"uniqueIndex;not null" json:"slug"`
	Content  string `gorm:"not null" json:"content"`
	Tags     string `json:"tags"`
}
