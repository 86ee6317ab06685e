package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BenDePortival/student-collaboration-api/models"
	"github.com/BenDePortival/student-collaboration-api/repositories"
)

// GormPostStore persists posts through the shared GORM connection.
type GormPostStore struct{}

func NewPostStore() *GormPostStore {
	return &GormPostStore{}
}

func (s *GormPostStore) Create(post *models.Post) error {
	return DB.Create(post).Error
}

func (s *GormPostStore) All() ([]models.Post, error) {
	var posts []models.Post
	result := DB.Order("id").Find(&posts)
	return posts, result.Error
}

func (s *GormPostStore) FindBySlug(slug string) (*models.Post, error) {
	var post models.Post
	err := DB.Where("slug = ?", slug).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *GormPostStore) Delete(id uint) error {
	// Hard delete. A soft delete would leave the slug in the unique index,
	// making the title unusable forever.
	result := DB.Unscoped().Delete(&models.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// GormCommentStore persists comments through the shared GORM connection.
type GormCommentStore struct{}

func NewCommentStore() *GormCommentStore {
	return &GormCommentStore{}
}

func (s *GormCommentStore) Create(comment *models.Comment) error {
	return DB.Create(comment).Error
}

func (s *GormCommentStore) ForPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	result := DB.Where("post_id = ?", postID).Order("id").Find(&comments)
	return comments, result.Error
}
