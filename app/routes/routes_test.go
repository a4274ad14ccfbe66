package routes

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postBody struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	Published bool   `json:"published"`
	Likes     int    `json:"likes"`
	Slug      string `json:"slug"`
}

type commentBody struct {
	ID           string `json:"id"`
	Post         string `json:"post"`
	Author       string `json:"author"`
	Content      string `json:"content"`
	Likes        int    `json:"likes"`
	AvatarColour string `json:"avatar_colour"`
}

type errorBody struct {
	Error string `json:"error"`
}

func newPostInput(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":     title,
		"content":   "abc",
		"author":    "Jane",
		"published": "true",
	}
}

func TestBannerAndLogin(t *testing.T) {
	router, _ := setupTestServer(t)

	t.Run("banner responds on any method", func(t *testing.T) {
		for _, method := range []string{"GET", "POST"} {
			w := doJSON(t, router, method, "/", "", nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "Blog API")
		}
	})

	t.Run("login with bad password is a 401", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/users/login", "", map[string]string{
			"username": "admin",
			"password": "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)

		var res errorBody
		decodeJSON(t, w, &res)
		assert.Equal(t, "Authentication failed...", res.Error)
	})

	t.Run("login with invalid fields is a 400 with field errors", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/users/login", "", map[string]string{
			"username": "",
			"password": "this-password-is-way-too-long",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var res []errorBody
		decodeJSON(t, w, &res)
		require.Len(t, res, 2)
		assert.Equal(t, "Username field must contain between 1 and 16 characters.", res[0].Error)
	})
}

func TestPostLifecycle(t *testing.T) {
	router, token := setupTestServer(t)

	t.Run("create requires a token", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/posts", "", newPostInput("Hello World"))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	var created postBody
	t.Run("create post", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/posts", token, newPostInput("Hello World"))
		require.Equal(t, http.StatusOK, w.Code)

		decodeJSON(t, w, &created)
		assert.Len(t, created.ID, 24)
		assert.Equal(t, "hello-world", created.Slug)
		assert.True(t, created.Published)
		assert.Equal(t, 0, created.Likes)
	})

	t.Run("duplicate title is rejected", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/posts", token, newPostInput("Hello World"))
		require.Equal(t, http.StatusBadRequest, w.Code)

		var res errorBody
		decodeJSON(t, w, &res)
		assert.Equal(t, "Post title already taken. Try a different title.", res.Error)
	})

	t.Run("invalid input returns the field messages", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/posts", token, map[string]interface{}{
			"title":     "ab",
			"content":   "abc",
			"author":    "Jane",
			"published": "TRUE",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var res []errorBody
		decodeJSON(t, w, &res)
		require.Len(t, res, 2)
		assert.Equal(t, "Post title field must contain between 3 and 160 characters.", res[0].Error)
		assert.Equal(t, "Post publish value must be either true or false", res[1].Error)
	})

	t.Run("read post by id", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/posts/"+created.ID, "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res postBody
		decodeJSON(t, w, &res)
		assert.Equal(t, "Hello World", res.Title)
	})

	t.Run("list posts", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/posts", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res []postBody
		decodeJSON(t, w, &res)
		require.Len(t, res, 1)
		assert.Equal(t, created.ID, res[0].ID)
	})

	t.Run("edit regenerates the slug", func(t *testing.T) {
		w := doJSON(t, router, "PUT", "/posts/"+created.ID, token, newPostInput("Hello Again, World!"))
		require.Equal(t, http.StatusOK, w.Code)

		var res postBody
		decodeJSON(t, w, &res)
		assert.Equal(t, "hello-again-world", res.Slug)
	})

	t.Run("edit requires a token", func(t *testing.T) {
		w := doJSON(t, router, "PUT", "/posts/"+created.ID, "", newPostInput("Sneaky Edit"))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("delete by malformed id fails fast", func(t *testing.T) {
		w := doJSON(t, router, "DELETE", "/posts/xyz", token, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var res errorBody
		decodeJSON(t, w, &res)
		assert.Equal(t, "Invalid path parameter.", res.Error)
	})

	t.Run("delete missing post is a 404", func(t *testing.T) {
		w := doJSON(t, router, "DELETE", "/posts/ffffffffffffffffffffffff", token, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete post", func(t *testing.T) {
		w := doJSON(t, router, "DELETE", "/posts/"+created.ID, token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Post deleted successfully.")

		w = doJSON(t, router, "GET", "/posts/"+created.ID, "", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("empty collection lists as 200 with empty array", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/posts", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestPostLikes(t *testing.T) {
	router, token := setupTestServer(t)

	var post postBody
	w := doJSON(t, router, "POST", "/posts", token, newPostInput("Likeable Post"))
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &post)

	t.Run("unlike at zero is a business-rule error", func(t *testing.T) {
		w := doJSON(t, router, "PUT", "/posts/"+post.ID+"/unlike", "", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var res errorBody
		decodeJSON(t, w, &res)
		assert.Equal(t, "Post has no likes.", res.Error)
	})

	t.Run("like and unlike adjust the count", func(t *testing.T) {
		w := doJSON(t, router, "PUT", "/posts/"+post.ID+"/like", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res postBody
		decodeJSON(t, w, &res)
		assert.Equal(t, 1, res.Likes)

		w = doJSON(t, router, "PUT", "/posts/"+post.ID+"/unlike", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		decodeJSON(t, w, &res)
		assert.Equal(t, 0, res.Likes)
	})
}

func TestBulkPublishToggle(t *testing.T) {
	router, token := setupTestServer(t)

	for _, title := range []string{"Draft A", "Draft B"} {
		in := newPostInput(title)
		in["published"] = "false"
		w := doJSON(t, router, "POST", "/posts", token, in)
		require.Equal(t, http.StatusOK, w.Code)
	}

	t.Run("publish-all requires a token", func(t *testing.T) {
		w := doJSON(t, router, "PUT", "/posts/publish-all", "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("publish-all reports the modified count", func(t *testing.T) {
		w := doJSON(t, router, "PUT", "/posts/publish-all", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res struct {
			Modified int `json:"modified"`
		}
		decodeJSON(t, w, &res)
		assert.Equal(t, 2, res.Modified)
	})

	t.Run("immediate repeat is a business-rule error", func(t *testing.T) {
		w := doJSON(t, router, "PUT", "/posts/publish-all", token, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var res errorBody
		decodeJSON(t, w, &res)
		assert.Equal(t, "No posts to publish.", res.Error)
	})

	t.Run("unpublish-all flips them back", func(t *testing.T) {
		w := doJSON(t, router, "PUT", "/posts/unpublish-all", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res struct {
			Modified int `json:"modified"`
		}
		decodeJSON(t, w, &res)
		assert.Equal(t, 2, res.Modified)
	})
}

func TestCommentRoutes(t *testing.T) {
	router, token := setupTestServer(t)

	var post postBody
	w := doJSON(t, router, "POST", "/posts", token, newPostInput("Commented Post"))
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &post)

	var comment commentBody
	t.Run("create comment needs no token", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/posts/"+post.ID+"/comments", "", map[string]string{
			"author":  "Reader",
			"content": "Nice post!",
		})
		require.Equal(t, http.StatusOK, w.Code)

		decodeJSON(t, w, &comment)
		assert.Equal(t, post.ID, comment.Post)
		assert.Equal(t, "#FFB937", comment.AvatarColour)
	})

	t.Run("list comments for post", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/posts/"+post.ID+"/comments", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res []commentBody
		decodeJSON(t, w, &res)
		require.Len(t, res, 1)
		assert.Equal(t, comment.ID, res[0].ID)
	})

	t.Run("sentinel lists all comments", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/posts/all/comments", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res []commentBody
		decodeJSON(t, w, &res)
		require.Len(t, res, 1)
	})

	t.Run("malformed post id on comment list fails fast", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/posts/nope/comments", "", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var res errorBody
		decodeJSON(t, w, &res)
		assert.Equal(t, "Invalid path parameter.", res.Error)
	})

	t.Run("unlike a comment with no likes", func(t *testing.T) {
		w := doJSON(t, router, "PUT", "/posts/"+post.ID+"/comments/"+comment.ID+"/unlike", "", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var res errorBody
		decodeJSON(t, w, &res)
		assert.Equal(t, "Comment has no likes.", res.Error)
	})

	t.Run("like a comment", func(t *testing.T) {
		w := doJSON(t, router, "PUT", "/posts/"+post.ID+"/comments/"+comment.ID+"/like", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res commentBody
		decodeJSON(t, w, &res)
		assert.Equal(t, 1, res.Likes)
	})

	t.Run("edit comment requires a token", func(t *testing.T) {
		w := doJSON(t, router, "PUT", "/posts/"+post.ID+"/comments/"+comment.ID, "", map[string]string{
			"author":  "Reader",
			"content": "Edited!",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("edit comment", func(t *testing.T) {
		w := doJSON(t, router, "PUT", "/posts/"+post.ID+"/comments/"+comment.ID, token, map[string]string{
			"author":  "Reader",
			"content": "Edited!",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var res commentBody
		decodeJSON(t, w, &res)
		assert.Equal(t, "Edited!", res.Content)
		assert.Equal(t, 1, res.Likes, "likes survive an edit")
	})

	t.Run("comments survive deleting the parent post", func(t *testing.T) {
		w := doJSON(t, router, "DELETE", "/posts/"+post.ID, token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, "GET", "/posts/all/comments", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var res []commentBody
		decodeJSON(t, w, &res)
		require.Len(t, res, 1, "no cascade delete")
	})

	t.Run("delete comment", func(t *testing.T) {
		w := doJSON(t, router, "DELETE", "/posts/"+post.ID+"/comments/"+comment.ID, token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Comment deleted successfully.")

		w = doJSON(t, router, "GET", "/posts/all/comments", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestRateLimiting(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	cfg.RateLimitPerMin = 3
	router := Setup(db, cfg)

	for i := 0; i < 3; i++ {
		w := doJSON(t, router, "GET", "/posts", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, router, "GET", "/posts", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
