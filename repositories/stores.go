package repositories

import (
	"errors"

	"github.com/BenDePortival/student-collaboration-api/models"
)

// ErrNotFound is returned by every store when the requested record does not
// exist, regardless of the backing storage.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a create would violate a uniqueness rule.
var ErrDuplicate = errors.New("record already exists")

type UserStore interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
}

type PostStore interface {
	Create(post *models.Post) error
	All() ([]models.Post, error)
	FindBySlug(slug string) (*models.Post, error)
	// Delete permanently removes the post so its slug becomes available
	// again. Returns ErrNotFound when no post has the given id.
	Delete(id uint) error
}

type CommentStore interface {
	Create(comment *models.Comment) error
	ForPost(postID uint) ([]models.Comment, error)
}

type ChartStore interface {
	Create(chart *models.Chart) error
	ForOwner(ownerID uint) ([]models.Chart, error)
	FindByID(id uint) (*models.Chart, error)
}
