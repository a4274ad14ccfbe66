package controllers

import "net/http"

// IndexController serves the service banner.
type IndexController struct{}

// NewIndexController creates a new IndexController.
func NewIndexController() *IndexController {
	return &IndexController{}
}

// Index responds with the service banner on any method.
func (ic *IndexController) Index(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{
		"title":       "Blog API",
		"description": "A CRUD REST API for blog posts and comments.",
	})
}
