package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/hackoverflow/hostel-management-api/internal/config"
	"github.com/hackoverflow/hostel-management-api/internal/constants"
	"github.com/hackoverflow/hostel-management-api/internal/database"
	"github.com/hackoverflow/hostel-management-api/internal/handlers"
	"github.com/hackoverflow/hostel-management-api/internal/logger"
	"github.com/hackoverflow/hostel-management-api/internal/middleware"
	"github.com/hackoverflow/hostel-management-api/internal/models"
	"github.com/hackoverflow/hostel-management-api/internal/repository"
	"github.com/hackoverflow/hostel-management-api/internal/services"
	"github.com/hackoverflow/hostel-management-api/internal/storage"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	zl, cleanup := logger.New(cfg.LogLevel, cfg.LogJSON)
	defer cleanup()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		zl.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		zl.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Seed default accounts (idempotent by username)
	if err := database.Seed(database.GetDB()); err != nil {
		zl.Fatal("Failed to seed accounts", zap.Error(err))
	}

	uploads, err := storage.NewUploads(cfg.UploadDir)
	if err != nil {
		zl.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	// Initialize Gin router
	r := gin.New()
	r.Use(ginzap.Ginzap(zl, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(zl, true))

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		zl.Fatal("Failed to create Redis store", zap.Error(err))
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	issueRepo := repository.NewIssueRepository(db)
	circularRepo := repository.NewCircularRepository(db)
	lostFoundRepo := repository.NewLostFoundRepository(db)

	// Services
	authService := services.NewAuthService(userRepo)
	issueService := services.NewIssueService(issueRepo, userRepo)
	dashboardService := services.NewDashboardService(issueRepo, userRepo, circularRepo)
	staffService := services.NewStaffService(userRepo, circularRepo)
	lostFoundService := services.NewLostFoundService(lostFoundRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	issueHandler := handlers.NewIssueHandler(issueService, uploads)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	adminHandler := handlers.NewAdminHandler(staffService)
	lostFoundHandler := handlers.NewLostFoundHandler(lostFoundService, uploads)

	// Login page equivalent; the UI is served elsewhere
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Hostel Management API",
			"login":   "POST /login with username, password and role",
		})
	})

	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	student := r.Group("/", middleware.RequireAuth(), middleware.RequireRole(models.RoleStudent))
	{
		student.GET("/student_dashboard", dashboardHandler.StudentDashboard)
		student.GET("/report", issueHandler.ReportForm)
		student.POST("/report", issueHandler.Report)
	}

	worker := r.Group("/", middleware.RequireAuth(), middleware.RequireRole(models.RoleWorker))
	{
		worker.GET("/worker_dashboard", dashboardHandler.WorkerDashboard)
	}

	admin := r.Group("/", middleware.RequireAuth(), middleware.RequireRole(models.RoleManagement))
	{
		admin.GET("/admin_dashboard", dashboardHandler.AdminDashboard)
		admin.POST("/admin/circular", adminHandler.PostCircular)
		admin.POST("/admin/add_worker", adminHandler.AddWorker)
	}

	authed := r.Group("/", middleware.RequireAuth())
	{
		authed.POST("/update_status/:issue_id", issueHandler.UpdateStatus)
		authed.POST("/solve_issue/:issue_id", issueHandler.SolveIssue)
		authed.GET("/lost-found", lostFoundHandler.List)
		authed.POST("/lost-found", lostFoundHandler.Post)
	}

	// Uploaded images are served as static files
	r.Static("/uploads", cfg.UploadDir)

	zl.Info("Server starting", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		zl.Fatal("Failed to start server", zap.Error(err))
	}
}
