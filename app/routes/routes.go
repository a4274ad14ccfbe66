package routes

import (
	"net/http"
	"time"

	"blogapi/app/config"
	"blogapi/app/controllers"
	"blogapi/app/middleware"
	"blogapi/app/repositories"
	"blogapi/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Setup wires repositories, services, controllers, and middleware into
// the application's HTTP handler.
func Setup(db *badger.DB, cfg config.Config) http.Handler {
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)

	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(commentRepo)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)
	userController := controllers.NewUserController(authService)
	indexController := controllers.NewIndexController()

	router := mux.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders)
	router.Use(middleware.RateLimit(middleware.NewMemoryLimiter(), cfg.RateLimitPerMin, time.Minute))

	requireAuth := middleware.RequireAuth(authService)

	router.HandleFunc("/", indexController.Index)
	router.HandleFunc("/users/login", userController.Login).Methods("POST")

	// Literal post routes are registered before the {id} routes so the
	// identity guard, not the router, rejects malformed identifiers.
	posts := router.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.Handle("", requireAuth(http.HandlerFunc(postController.Create))).Methods("POST")
	posts.Handle("/publish-all", requireAuth(http.HandlerFunc(postController.PublishAll))).Methods("PUT")
	posts.Handle("/unpublish-all", requireAuth(http.HandlerFunc(postController.UnpublishAll))).Methods("PUT")
	posts.HandleFunc("/{id:all}/comments", commentController.Index).Methods("GET")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.Handle("/{id}", requireAuth(http.HandlerFunc(postController.Edit))).Methods("PUT")
	posts.Handle("/{id}", requireAuth(http.HandlerFunc(postController.Delete))).Methods("DELETE")
	posts.HandleFunc("/{id}/like", postController.Like).Methods("PUT")
	posts.HandleFunc("/{id}/unlike", postController.Unlike).Methods("PUT")

	// Comments, scoped by parent post.
	posts.HandleFunc("/{id}/comments", commentController.Index).Methods("GET")
	posts.HandleFunc("/{id}/comments", commentController.Create).Methods("POST")
	posts.Handle("/{id}/comments/{commentId}", requireAuth(http.HandlerFunc(commentController.Edit))).Methods("PUT")
	posts.Handle("/{id}/comments/{commentId}", requireAuth(http.HandlerFunc(commentController.Delete))).Methods("DELETE")
	posts.HandleFunc("/{id}/comments/{commentId}/like", commentController.Like).Methods("PUT")
	posts.HandleFunc("/{id}/comments/{commentId}/unlike", commentController.Unlike).Methods("PUT")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	return handlers.CompressHandler(cors(router))
}
