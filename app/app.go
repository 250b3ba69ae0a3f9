package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"quitute-doce-desejo/app/controller"
	"quitute-doce-desejo/app/router"
	"quitute-doce-desejo/cart"
	"quitute-doce-desejo/catalog"
	"quitute-doce-desejo/config"
	"quitute-doce-desejo/db"
	"quitute-doce-desejo/favorites"
	"quitute-doce-desejo/repository"
	"quitute-doce-desejo/service"
)

// Initialize initializes the application
func Initialize() error {
	dataDir := config.DataDir()

	// Load store identity and delivery zones
	storeConfig, err := config.Load(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load store config: %w", err)
	}
	log.Printf("✓ Store config loaded: %s (%d delivery zones)", storeConfig.Name, len(storeConfig.DeliveryZones))

	// Load the product catalog
	cat, err := catalog.Load(dataDir, storeConfig.DeliveryZones)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Printf("✓ Catalog loaded: %d products, %d bundles", len(cat.ListProducts()), len(cat.ListBundles()))

	// Favorites persistence: Postgres when configured, in-memory otherwise
	var favoritesRepo repository.FavoritesRepositoryInterface
	if os.Getenv("DATABASE_URL") != "" || os.Getenv("DB_HOST") != "" {
		if err := db.InitDB(); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		repo := repository.NewFavoritesRepository()
		if err := repo.EnsureSchema(context.Background()); err != nil {
			return fmt.Errorf("failed to ensure favorites schema: %w", err)
		}
		favoritesRepo = repo
	} else {
		log.Printf("⚠️  No database configured, favorites will not survive restarts")
		favoritesRepo = repository.NewMemoryFavoritesRepository()
	}

	// Drive photo sync is optional: without credentials the catalog simply
	// serves no images
	var photoSync *service.PhotoSyncService
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath != "" {
		photoService, err := service.NewPhotoService(credentialsPath)
		if err != nil {
			return fmt.Errorf("failed to initialize photo service: %w", err)
		}
		photoDir := os.Getenv("PHOTO_DIR")
		if photoDir == "" {
			photoDir = "photos"
		}
		photoSync = service.NewPhotoSyncService(photoService, photoDir)
		log.Printf("✓ Drive photo sync enabled (dir: %s)", photoDir)
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS not set, photo sync disabled")
	}

	if err := service.EnsureCacheDir(); err != nil {
		return fmt.Errorf("failed to create image cache directory: %w", err)
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		baseURL = "http://localhost:" + port
	}
	menuService := service.NewMenuService(cat, storeConfig, baseURL)

	sessionStore := cart.NewSessionStore()
	favoritesService := favorites.NewService(favoritesRepo)

	// Create controllers
	controllers := &router.Controllers{
		Store:     controller.NewStoreController(storeConfig),
		Catalog:   controller.NewCatalogController(cat, photoSync),
		Cart:      controller.NewCartController(sessionStore, cat, storeConfig),
		Favorites: controller.NewFavoritesController(favoritesService),
		Contact:   controller.NewContactController(storeConfig),
		Menu:      controller.NewMenuController(menuService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
