package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"blogapi/app/models"
	"blogapi/app/repositories"
	"blogapi/app/services"
	"blogapi/app/validation"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostController handles HTTP requests for blog posts.
type PostController struct {
	posts *services.PostService
}

// NewPostController creates a new PostController.
func NewPostController(posts *services.PostService) *PostController {
	return &PostController{posts: posts}
}

// Index lists all posts, newest first. An empty collection is a 200
// with an empty array, not an error.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.posts.List()
	if err != nil {
		sendServerError(w, r, err)
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show responds with a single post by ID.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	post, err := pc.posts.Get(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Post not found.")
			return
		}
		sendServerError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create validates the input, enforces title uniqueness, and responds
// with the created post.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.PostInput
	if !decodeBody(w, r, &in) {
		return
	}
	if errs := validation.Check(&in); len(errs) > 0 {
		sendValidationErrors(w, errs)
		return
	}

	post, err := pc.posts.Create(&in)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateTitle) {
			sendError(w, http.StatusBadRequest, "Post title already taken. Try a different title.")
			return
		}
		sendServerError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Edit validates the input and replaces the post's mutable fields,
// regenerating the slug and update timestamp.
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	var in models.PostInput
	if !decodeBody(w, r, &in) {
		return
	}
	if errs := validation.Check(&in); len(errs) > 0 {
		sendValidationErrors(w, errs)
		return
	}

	post, err := pc.posts.Update(id, &in)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			sendError(w, http.StatusNotFound, "Post not found.")
		case errors.Is(err, repositories.ErrDuplicateTitle):
			sendError(w, http.StatusBadRequest, "Post title already taken. Try a different title.")
		default:
			sendServerError(w, r, err)
		}
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Delete removes a post by ID. Comments under the post are left in
// place.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	if err := pc.posts.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Post not found.")
			return
		}
		sendServerError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully."})
}

// Like increments the post's like count and responds with the updated
// post.
func (pc *PostController) Like(w http.ResponseWriter, r *http.Request) {
	pc.adjustLikes(w, r, pc.posts.Like)
}

// Unlike decrements the post's like count. A post with no likes is
// rejected with a 400 business-rule error.
func (pc *PostController) Unlike(w http.ResponseWriter, r *http.Request) {
	pc.adjustLikes(w, r, pc.posts.Unlike)
}

func (pc *PostController) adjustLikes(w http.ResponseWriter, r *http.Request, adjust func(id primitive.ObjectID) (*models.Post, error)) {
	id, ok := parseID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	post, err := adjust(id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			sendError(w, http.StatusNotFound, "Post not found.")
		case errors.Is(err, repositories.ErrNoLikes):
			sendError(w, http.StatusBadRequest, "Post has no likes.")
		default:
			sendServerError(w, r, err)
		}
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// PublishAll publishes every unpublished post and reports the count. A
// no-op is a 400 business-rule error.
func (pc *PostController) PublishAll(w http.ResponseWriter, r *http.Request) {
	modified, err := pc.posts.PublishAll()
	if err != nil {
		if errors.Is(err, services.ErrNothingToDo) {
			sendError(w, http.StatusBadRequest, "No posts to publish.")
			return
		}
		sendServerError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message":  fmt.Sprintf("%d post(s) published.", modified),
		"modified": modified,
	})
}

// UnpublishAll unpublishes every published post and reports the count.
func (pc *PostController) UnpublishAll(w http.ResponseWriter, r *http.Request) {
	modified, err := pc.posts.UnpublishAll()
	if err != nil {
		if errors.Is(err, services.ErrNothingToDo) {
			sendError(w, http.StatusBadRequest, "No posts to unpublish.")
			return
		}
		sendServerError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message":  fmt.Sprintf("%d post(s) unpublished.", modified),
		"modified": modified,
	})
}
