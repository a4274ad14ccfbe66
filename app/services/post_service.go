package services

import (
	"errors"
	"time"

	"blogapi/app/models"
	"blogapi/app/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNothingToDo is returned by bulk toggles that matched no posts.
var ErrNothingToDo = errors.New("no posts to modify")

// PostService handles business logic for blog posts.
type PostService struct {
	posts repositories.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts repositories.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// Create builds a post from validated input and persists it. The slug
// and both timestamps are server-assigned.
func (s *PostService) Create(in *models.PostInput) (*models.Post, error) {
	now := time.Now()
	post := &models.Post{
		Title:      in.Title,
		Content:    in.Content,
		Author:     in.Author,
		Published:  in.Published.Bool(),
		CreateDate: now,
		UpdateDate: now,
		Slug:       models.Slugify(in.Title),
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Get retrieves a post by ID.
func (s *PostService) Get(id primitive.ObjectID) (*models.Post, error) {
	return s.posts.GetByID(id)
}

// List retrieves all posts, newest first.
func (s *PostService) List() ([]*models.Post, error) {
	return s.posts.List()
}

// Update replaces a post's mutable fields, regenerating the slug and
// update timestamp. Creation time and like count are preserved.
func (s *PostService) Update(id primitive.ObjectID, in *models.PostInput) (*models.Post, error) {
	existing, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:         id,
		Title:      in.Title,
		Content:    in.Content,
		Author:     in.Author,
		Published:  in.Published.Bool(),
		CreateDate: existing.CreateDate,
		UpdateDate: time.Now(),
		Likes:      existing.Likes,
		Slug:       models.Slugify(in.Title),
	}
	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post by ID. Its comments are left in place.
func (s *PostService) Delete(id primitive.ObjectID) error {
	return s.posts.Delete(id)
}

// Like increments a post's like count.
func (s *PostService) Like(id primitive.ObjectID) (*models.Post, error) {
	return s.posts.AdjustLikes(id, 1)
}

// Unlike decrements a post's like count. A post with zero likes is
// rejected with repositories.ErrNoLikes and left unmodified.
func (s *PostService) Unlike(id primitive.ObjectID) (*models.Post, error) {
	return s.posts.AdjustLikes(id, -1)
}

// PublishAll publishes every unpublished post and reports the count.
func (s *PostService) PublishAll() (int, error) {
	return s.setPublishedAll(true)
}

// UnpublishAll unpublishes every published post and reports the count.
func (s *PostService) UnpublishAll() (int, error) {
	return s.setPublishedAll(false)
}

func (s *PostService) setPublishedAll(published bool) (int, error) {
	modified, err := s.posts.SetPublishedAll(published)
	if err != nil {
		return 0, err
	}
	if modified == 0 {
		return 0, ErrNothingToDo
	}
	return modified, nil
}
