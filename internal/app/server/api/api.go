// Контент-сервіс майстерні DreamPrintUA:
//
// GET   /api/v1/content        # Поточний контент (публічний)
// PATCH /api/v1/content        # Часткове оновлення (адмін)
// POST  /api/v1/photos         # Батч фото (адмін)
// DELETE /api/v1/photos/{id}   # Видалити фото (адмін)
// GET   /api/v1/gallery        # Об'єднана галерея (публічний)
// POST  /api/v1/admin/login    # Вхід
// POST  /api/v1/admin/logout   # Вихід (адмін)
// GET   /api/v1/admin/session  # Стан сесії
// GET/PUT /api/v1/admin/github # Конфігурація дзеркала (адмін)
// POST  /api/v1/sync           # Публікація у дзеркало (адмін)

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	adminAPI "github.com/8Gelos8/DreamPrintUA/internal/app/server/api/http/admin"
	contentAPI "github.com/8Gelos8/DreamPrintUA/internal/app/server/api/http/content"
	galleryAPI "github.com/8Gelos8/DreamPrintUA/internal/app/server/api/http/gallery"
	healthAPI "github.com/8Gelos8/DreamPrintUA/internal/app/server/api/http/health"
	"github.com/8Gelos8/DreamPrintUA/internal/app/server/api/http/middleware"
	"github.com/8Gelos8/DreamPrintUA/internal/app/server/api/http/middleware/auth"
	loggerMW "github.com/8Gelos8/DreamPrintUA/internal/app/server/api/http/middleware/logger"
	photoAPI "github.com/8Gelos8/DreamPrintUA/internal/app/server/api/http/photo"
	syncAPI "github.com/8Gelos8/DreamPrintUA/internal/app/server/api/http/sync"
	"github.com/8Gelos8/DreamPrintUA/internal/app/server/pages"
	"github.com/8Gelos8/DreamPrintUA/internal/config"
	"github.com/8Gelos8/DreamPrintUA/internal/domain/admin"
	"github.com/8Gelos8/DreamPrintUA/internal/domain/content"
	"github.com/8Gelos8/DreamPrintUA/internal/domain/gallery"
	"github.com/8Gelos8/DreamPrintUA/internal/domain/photo"
	"github.com/8Gelos8/DreamPrintUA/internal/infrastructure/github"
	"github.com/8Gelos8/DreamPrintUA/internal/infrastructure/localstore"
)

// New створює *chi.Mux з усіма API-операціями і сторінками сайту.
func New(store *localstore.Store, cfg *config.Config, log *slog.Logger) (*chi.Mux, error) {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("DreamPrintUA API", "1.0.0")
	API := humachi.New(mux, humaConfig)

	contentRepo := localstore.NewContentRepository(store, log)
	photoRepo, err := localstore.NewPhotoRepository(store, log)
	if err != nil {
		return nil, err
	}
	adminRepo := localstore.NewAdminRepository(store)
	remoteRepo := localstore.NewRemoteConfigRepository(store)

	contentService := content.NewService(contentRepo, log)
	photoService := photo.NewService(photoRepo, log)
	adminService := admin.NewService(adminRepo, cfg.Admin.Password, log)
	ghClient := github.NewClient(cfg.GitHub.APIHost, log)
	galleryService := gallery.NewService(photoService, ghClient, remoteRepo, cfg.GitHub.GalleryDir, log)

	authMW := auth.New(adminService, log)
	logMW := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(logMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(logMW.Middleware())
	public := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(logMW.Middleware())
	contentHandler := contentAPI.NewHandler(contentService, log, public, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(logMW.Middleware())
	photoHandler := photoAPI.NewHandler(photoService, log, middlewares.GetAllAndClear())

	middlewares.Add(logMW.Middleware())
	galleryHandler := galleryAPI.NewHandler(galleryService, log, middlewares.GetAllAndClear())

	middlewares.Add(logMW.Middleware())
	adminPublic := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(logMW.Middleware())
	adminHandler := adminAPI.NewHandler(adminService, remoteRepo, log, adminPublic, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(logMW.Middleware())
	syncHandler := syncAPI.NewHandler(
		contentService, photoService, ghClient, remoteRepo,
		cfg.GitHub.ContentPath, cfg.GitHub.Branch,
		log, middlewares.GetAllAndClear(),
	)

	healthHandler.SetupRoutes(API)
	contentHandler.SetupRoutes(API)
	photoHandler.SetupRoutes(API)
	galleryHandler.SetupRoutes(API)
	adminHandler.SetupRoutes(API)
	syncHandler.SetupRoutes(API)

	pagesHandler, err := pages.NewHandler(cfg.Pages.TemplatesDir, contentService, galleryService, adminService, log)
	if err != nil {
		return nil, err
	}
	pagesHandler.Register(mux)

	return mux, nil
}
