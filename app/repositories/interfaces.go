package repositories

import (
	"blogapi/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostRepository defines the interface for post data access.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id primitive.ObjectID) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id primitive.ObjectID) error
	AdjustLikes(id primitive.ObjectID, delta int) (*models.Post, error)
	SetPublishedAll(published bool) (int, error)
}

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id primitive.ObjectID) (*models.Comment, error)
	ListByPost(postID primitive.ObjectID) ([]*models.Comment, error)
	ListAll() ([]*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id primitive.ObjectID) error
	AdjustLikes(id primitive.ObjectID, delta int) (*models.Comment, error)
}

// UserRepository defines the interface for the single admin user record.
type UserRepository interface {
	First() (*models.User, error)
	GetByID(id primitive.ObjectID) (*models.User, error)
	Upsert(user *models.User) error
}
