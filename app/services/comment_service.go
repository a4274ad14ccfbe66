package services

import (
	"time"

	"blogapi/app/models"
	"blogapi/app/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentService handles business logic for post comments.
type CommentService struct {
	comments repositories.CommentRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments repositories.CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

// Create builds a comment from validated input and persists it under
// the given parent post. The post reference is stored without an
// existence check.
func (s *CommentService) Create(postID primitive.ObjectID, in *models.CommentInput) (*models.Comment, error) {
	colour := in.AvatarColour
	if colour == "" {
		colour = models.DefaultAvatarColour
	}
	comment := &models.Comment{
		PostID:       postID,
		Author:       in.Author,
		Content:      in.Content,
		CreateDate:   time.Now(),
		AvatarColour: colour,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByPost retrieves a post's comments, newest first.
func (s *CommentService) ListByPost(postID primitive.ObjectID) ([]*models.Comment, error) {
	return s.comments.ListByPost(postID)
}

// ListAll retrieves every comment across all posts, newest first.
func (s *CommentService) ListAll() ([]*models.Comment, error) {
	return s.comments.ListAll()
}

// Update replaces a comment's mutable fields, preserving its parent
// post, creation time, and like count.
func (s *CommentService) Update(id primitive.ObjectID, in *models.CommentInput) (*models.Comment, error) {
	existing, err := s.comments.GetByID(id)
	if err != nil {
		return nil, err
	}

	colour := in.AvatarColour
	if colour == "" {
		colour = models.DefaultAvatarColour
	}
	comment := &models.Comment{
		ID:           id,
		PostID:       existing.PostID,
		Author:       in.Author,
		Content:      in.Content,
		CreateDate:   existing.CreateDate,
		Likes:        existing.Likes,
		AvatarColour: colour,
	}
	if err := s.comments.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment by ID.
func (s *CommentService) Delete(id primitive.ObjectID) error {
	return s.comments.Delete(id)
}

// Like increments a comment's like count.
func (s *CommentService) Like(id primitive.ObjectID) (*models.Comment, error) {
	return s.comments.AdjustLikes(id, 1)
}

// Unlike decrements a comment's like count, rejecting the operation
// with repositories.ErrNoLikes at zero.
func (s *CommentService) Unlike(id primitive.ObjectID) (*models.Comment, error) {
	return s.comments.AdjustLikes(id, -1)
}
