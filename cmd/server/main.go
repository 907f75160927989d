package main

import (
	"context"
	"log"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dursunaydin1/refik-app/internal/cache"
	"github.com/dursunaydin1/refik-app/internal/config"
	"github.com/dursunaydin1/refik-app/internal/content"
	"github.com/dursunaydin1/refik-app/internal/handlers"
	"github.com/dursunaydin1/refik-app/internal/middleware"
	"github.com/dursunaydin1/refik-app/internal/models"
	"github.com/dursunaydin1/refik-app/internal/push"
	"github.com/dursunaydin1/refik-app/internal/repository"
	"github.com/dursunaydin1/refik-app/internal/service"
	"github.com/dursunaydin1/refik-app/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}
	cal := cfg.Calendar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := fiber.New(fiber.Config{
		AppName:   "Refik",
		BodyLimit: 1 * 1024 * 1024,
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: cfg.AllowedOrigins != "" && cfg.AllowedOrigins != "*",
	}))

	// Initialize database connection
	db, err := repository.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Content tiers, fastest first. Each one is optional.
	var tiers []service.UnitStore

	redisCache := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	if err := redisCache.Ping(pingCtx); err != nil {
		log.Printf("WARNING: Redis connection failed: %v. Running without cache.", err)
		redisCache = nil
	} else {
		log.Println("Redis cache connected successfully")
		tiers = append(tiers, cache.NewContentCache(redisCache, cfg.ContentEdition))
	}
	cancel()

	// S3/MinIO archive is best-effort; content falls through to the upstream API.
	if cfg.ArchiveConfigured() {
		s3Cfg := storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
		}
		if st, err := storage.NewS3Storage(s3Cfg); err != nil {
			log.Printf("WARNING: Failed to initialize S3 storage: %v", err)
		} else if err := st.EnsureBucket(ctx); err != nil {
			log.Printf("WARNING: S3 bucket %s unavailable: %v", s3Cfg.Bucket, err)
		} else {
			tiers = append(tiers, storage.NewContentArchive(st, cfg.ContentEdition))
			log.Printf("S3 content archive initialized successfully (bucket=%s)", s3Cfg.Bucket)
		}
	} else {
		log.Println("WARNING: S3 storage not configured, content archive disabled")
	}

	var pusher push.Pusher
	if cfg.PushConfigured() {
		pusher = push.NewWebPusher(push.VAPIDConfig{
			PublicKey:  cfg.VAPIDPublicKey,
			PrivateKey: cfg.VAPIDPrivateKey,
			Subject:    cfg.VAPIDSubject,
		})
	} else {
		log.Println("WARNING: VAPID keys not set, push notifications disabled")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	// Initialize services
	groupService := service.NewGroupService(groupRepo, userRepo)
	authService := service.NewAuthService(userRepo, groupService, service.AuthConfig{
		JWTSecret:         cfg.JWTSecret,
		AdminPhone:        cfg.AdminPhone,
		BootstrapPassword: cfg.AdminBootstrapPassword,
		PublicBaseURL:     cfg.PublicBaseURL,
	})
	userService := service.NewUserService(userRepo)
	progressService := service.NewProgressService(progressRepo, userRepo, cal)
	statsService := service.NewStatsService(progressRepo, userRepo, cal)
	notificationService := service.NewNotificationService(subscriptionRepo, progressRepo, pusher, cal)
	contentService := service.NewContentService(content.NewClient(cfg.ContentAPIURL, cfg.ContentEdition), cal, tiers...)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, strings.HasPrefix(cfg.PublicBaseURL, "https://"))
	adminHandler := handlers.NewAdminHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	progressHandler := handlers.NewProgressHandler(progressService)
	statsHandler := handlers.NewStatsHandler(statsService)
	groupHandler := handlers.NewGroupHandler(groupService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	contentHandler := handlers.NewContentHandler(contentService, cal)

	// Public routes
	api := app.Group("/api", middleware.OriginAllowed(cfg.AllowedOrigins))
	auth := api.Group("/auth", limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/activate", authHandler.Activate)
	auth.Post("/logout", authHandler.Logout)
	api.Get("/campaign", contentHandler.Campaign)

	api.Get("/cron/reminders", middleware.CronSecret(cfg.CronSecret), notificationHandler.Reminders)

	// Protected routes
	protected := api.Group("/", middleware.AuthRequired(cfg.JWTSecret))
	protected.Get("/user/me", userHandler.Me)
	protected.Post("/user/update", userHandler.UpdateProfile)
	protected.Get("/dashboard", statsHandler.Dashboard)
	protected.Get("/stats", statsHandler.Detailed)
	protected.Get("/progress", progressHandler.Get)
	protected.Post("/progress", progressHandler.Record)
	protected.Get("/group/members", groupHandler.Members)
	protected.Get("/group/invite-code", groupHandler.InviteCode)
	protected.Post("/notifications/subscribe", notificationHandler.Subscribe)
	protected.Delete("/notifications/subscribe", notificationHandler.Unsubscribe)
	protected.Get("/content/today", contentHandler.Today)
	protected.Get("/content/:day", contentHandler.Day)

	// Admin routes
	admin := protected.Group("/", middleware.RequireRole(models.RoleAdmin))
	admin.Post("/admin/invite", adminHandler.Invite)
	admin.Post("/group/manage", groupHandler.Manage)
	admin.Post("/notifications/send", notificationHandler.Send)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Refik is running",
		})
	})

	if cfg.ReminderInterval > 0 {
		scheduler := service.NewReminderScheduler(notificationService, cal, cfg.ReminderInterval)
		go scheduler.Run(ctx)
		log.Printf("Reminder scheduler running every %s", cfg.ReminderInterval)
	}

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Shutdown failed: %v", err)
		}
		if redisCache != nil {
			_ = redisCache.Close()
		}
	}()

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
