package models

import (
	"gorm.io/gorm"
)

// Comment is a reply attached to a post.
type Comment struct {
	gorm.Model
	PostID   uint   `gorm:"index;not null" json:"post_id"`
	AuthorID uint   `gorm:"index;not null" json:"author_id"`
	Content  string `gorm:"not null" json:"content"`
}
