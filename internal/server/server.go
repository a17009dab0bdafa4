// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"fmt"
	"time"

	"fireside/internal/accounts"
	"fireside/internal/config"
	"fireside/internal/database"
	"fireside/internal/middleware"
	"fireside/internal/repository"
	"fireside/internal/serializers"
	"fireside/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config      *config.Config
	db          *gorm.DB
	media       storage.MediaStore
	accountRepo repository.AccountRepository
	profileRepo repository.ProfileRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository

	accountManager *accounts.Manager

	accountSerializer *serializers.AccountSerializer
	profileSerializer *serializers.ProfileSerializer
	postSerializer    *serializers.PostSerializer
	commentSerializer *serializers.CommentSerializer
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	media, err := storage.NewMediaStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("media store initialization failed: %w", err)
	}

	return NewServerWithDeps(cfg, db, media), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes the DB and media store.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, media storage.MediaStore) *Server {
	accountRepo := repository.NewAccountRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	accountManager := accounts.NewManager(accountRepo)

	return &Server{
		config:      cfg,
		db:          db,
		media:       media,
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,

		accountManager: accountManager,

		accountSerializer: serializers.NewAccountSerializer(accountManager),
		profileSerializer: serializers.NewProfileSerializer(profileRepo),
		postSerializer:    serializers.NewPostSerializer(postRepo),
		commentSerializer: serializers.NewCommentSerializer(commentRepo),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid so the ID is available)
	app.Use(middleware.StructuredLogger())

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       int((24 * time.Hour).Seconds()),
	}))
}

// SetupRoutes registers all API routes on the Fiber app
func (s *Server) SetupRoutes(app *fiber.App) {
	middleware.InitMiddleware(s.config)

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", s.Register)
	auth.Post("/login", s.Login)

	api.Get("/posts", s.GetPosts)
	api.Get("/posts/:id", s.GetPost)
	api.Get("/posts/:id/comments", s.GetPostComments)
	api.Get("/profiles", s.GetProfiles)

	// Authenticated routes
	protected := api.Group("", middleware.AuthRequired)

	protected.Get("/accounts/me", s.GetMyAccount)
	protected.Delete("/accounts/me", s.DeleteMyAccount)

	protected.Post("/profiles", s.CreateProfile)
	protected.Get("/profiles/me", s.GetMyProfile)
	protected.Put("/profiles/me", s.UpdateMyProfile)
	protected.Post("/profiles/me/avatar", s.UploadAvatar)

	protected.Post("/posts", s.CreatePost)
	protected.Put("/posts/:id", s.UpdatePost)
	protected.Delete("/posts/:id", s.DeletePost)
	protected.Post("/posts/:id/image", s.UploadPostImage)
	protected.Post("/posts/:id/like", s.LikePost)
	protected.Delete("/posts/:id/like", s.UnlikePost)
	protected.Get("/accounts/:id/posts", s.GetAccountPosts)

	protected.Post("/comments", s.CreateComment)
	protected.Delete("/comments/:id", s.DeleteComment)
}
