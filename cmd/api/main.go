package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/imdhruv9/uttam-printing/internal/config"
	"github.com/imdhruv9/uttam-printing/internal/mailer"
	"github.com/imdhruv9/uttam-printing/internal/modules/auth"
	"github.com/imdhruv9/uttam-printing/internal/modules/contact"
	"github.com/imdhruv9/uttam-printing/internal/modules/media"
	"github.com/imdhruv9/uttam-printing/internal/modules/product"
	"github.com/imdhruv9/uttam-printing/internal/modules/user"
)

func main() {
	logger := newLogger()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	zap.S().Info("Successfully connected to the database")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	tokens := auth.NewTokenManager(cfg.JWT)
	authService := auth.NewService(userRepo, tokens)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Catalog ─────────────────────────────────────────────
	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService)
	productHandler.RegisterPublicRoutes(router)

	// ── Contact ─────────────────────────────────────────────
	contactRepo := contact.NewPostgresRepository(db)
	contactService := contact.NewService(contactRepo, productRepo, mailer.NewSMTPSender(cfg.Mail))
	contactHandler := contact.NewHandler(contactService)
	contactHandler.RegisterPublicRoutes(router)

	// ── Media ───────────────────────────────────────────────
	storage, err := media.NewStorage(cfg.UploadDir, cfg.AllowedExtensions)
	if err != nil {
		log.Fatal(err)
	}
	mediaHandler := media.NewHandler(storage)
	mediaHandler.RegisterStatic(router)

	// ── Admin surface ───────────────────────────────────────
	router.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.RequireRole(tokens, user.RoleAdmin))
		productHandler.RegisterAdminRoutes(r)
		contactHandler.RegisterAdminRoutes(r)
		mediaHandler.RegisterAdminRoutes(r)
	})

	// ── Start Server ────────────────────────────────────────
	zap.S().Infof("Uttam Printing API server starting on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}

func newLogger() *zap.Logger {
	var logger *zap.Logger
	var err error
	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal(err)
	}
	return logger
}
