package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogapi/app/config"
	"blogapi/app/models"
	"blogapi/app/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret:       "test-secret",
		TokenTTL:        24 * time.Hour,
		RateLimitPerMin: 1000,
		BcryptCost:      bcrypt.MinCost,
	}
}

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// setupTestServer seeds the admin user, assembles the router, and logs
// in, returning the handler and a valid bearer token.
func setupTestServer(t *testing.T) (http.Handler, string) {
	db := setupTestDB(t)
	cfg := testConfig()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), cfg.BcryptCost)
	require.NoError(t, err)
	users := repositories.NewBadgerUserRepository(db)
	require.NoError(t, users.Upsert(&models.User{Username: "admin", Password: string(hash)}))

	router := Setup(db, cfg)

	w := doJSON(t, router, "POST", "/users/login", "", map[string]string{
		"username": "admin",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)

	return router, res.Token
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, handler http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}
