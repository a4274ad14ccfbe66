package controllers

import (
	"errors"
	"net/http"

	"blogapi/app/models"
	"blogapi/app/repositories"
	"blogapi/app/services"
	"blogapi/app/validation"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AllCommentsSentinel is the one path-parameter value that bypasses the
// identity guard on the comment listing route, meaning "across all
// posts".
const AllCommentsSentinel = "all"

// CommentController handles HTTP requests for post comments.
type CommentController struct {
	comments *services.CommentService
}

// NewCommentController creates a new CommentController.
func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

// Index lists the comments of a post, newest first. With the "all"
// sentinel as the post ID it lists every comment across posts. An empty
// collection is a 200 with an empty array.
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["id"]

	var comments []*models.Comment
	var err error
	if raw == AllCommentsSentinel {
		comments, err = cc.comments.ListAll()
	} else {
		var postID primitive.ObjectID
		var ok bool
		if postID, ok = parseID(w, raw); !ok {
			return
		}
		comments, err = cc.comments.ListByPost(postID)
	}
	if err != nil {
		sendServerError(w, r, err)
		return
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	sendJSON(w, http.StatusOK, comments)
}

// Create validates the input and persists a comment under the given
// post. The post reference is not checked for existence.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID, ok := parseID(w, mux.Vars(r)["id"])
	if !ok {
		return
	}

	var in models.CommentInput
	if !decodeBody(w, r, &in) {
		return
	}
	if errs := validation.Check(&in); len(errs) > 0 {
		sendValidationErrors(w, errs)
		return
	}

	comment, err := cc.comments.Create(postID, &in)
	if err != nil {
		sendServerError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, comment)
}

// Edit validates the input and replaces the comment's mutable fields.
func (cc *CommentController) Edit(w http.ResponseWriter, r *http.Request) {
	commentID, ok := cc.commentID(w, r)
	if !ok {
		return
	}

	var in models.CommentInput
	if !decodeBody(w, r, &in) {
		return
	}
	if errs := validation.Check(&in); len(errs) > 0 {
		sendValidationErrors(w, errs)
		return
	}

	comment, err := cc.comments.Update(commentID, &in)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Comment not found.")
			return
		}
		sendServerError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, comment)
}

// Delete removes a comment by ID.
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	commentID, ok := cc.commentID(w, r)
	if !ok {
		return
	}

	if err := cc.comments.Delete(commentID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Comment not found.")
			return
		}
		sendServerError(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted successfully."})
}

// Like increments the comment's like count and responds with the
// updated comment.
func (cc *CommentController) Like(w http.ResponseWriter, r *http.Request) {
	cc.adjustLikes(w, r, cc.comments.Like)
}

// Unlike decrements the comment's like count. A comment with no likes
// is rejected with a 400 business-rule error.
func (cc *CommentController) Unlike(w http.ResponseWriter, r *http.Request) {
	cc.adjustLikes(w, r, cc.comments.Unlike)
}

func (cc *CommentController) adjustLikes(w http.ResponseWriter, r *http.Request, adjust func(id primitive.ObjectID) (*models.Comment, error)) {
	commentID, ok := cc.commentID(w, r)
	if !ok {
		return
	}

	comment, err := adjust(commentID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			sendError(w, http.StatusNotFound, "Comment not found.")
		case errors.Is(err, repositories.ErrNoLikes):
			sendError(w, http.StatusBadRequest, "Comment has no likes.")
		default:
			sendServerError(w, r, err)
		}
		return
	}
	sendJSON(w, http.StatusOK, comment)
}

// commentID guards both path parameters of a nested comment route and
// returns the comment identity.
func (cc *CommentController) commentID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	vars := mux.Vars(r)
	if _, ok := parseID(w, vars["id"]); !ok {
		return primitive.NilObjectID, false
	}
	return parseID(w, vars["commentId"])
}
