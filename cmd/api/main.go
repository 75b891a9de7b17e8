package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"gharbari_backend/internal/controller"
	"gharbari_backend/internal/middleware"
	"gharbari_backend/internal/model"
	"gharbari_backend/internal/search"
	"gharbari_backend/pkg/catalog"
	"gharbari_backend/pkg/config"
	"gharbari_backend/pkg/cron"
	"gharbari_backend/pkg/database"
	"gharbari_backend/pkg/prefs"
	"gharbari_backend/pkg/seed"
	"gharbari_backend/pkg/utils/jwt"
	"gharbari_backend/pkg/utils/storage"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/session", controller.CreateSession)

	// Search routes carry an optional session for preference memory.
	searchRoutes := api.Group("/", middleware.SessionMiddleware())
	searchRoutes.Post("/search", controller.SearchProperties)
	searchRoutes.Post("/search/text", controller.SearchByText)
	searchRoutes.Get("/preferences", controller.GetPreferences)

	// Catalog lookups for building filter UIs.
	catalogRoutes := api.Group("/catalog")
	catalogRoutes.Get("/areas", controller.GetAreas)
	catalogRoutes.Get("/property-types", controller.GetPropertyTypes)
	catalogRoutes.Get("/configurations", controller.GetConfigurations)
	catalogRoutes.Get("/price-range", controller.GetPriceRange)
}

func main() {
	cfg := config.Load()
	jwt.SetSecret(cfg.JWT.Secret)

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
			cfg.Database.Password, cfg.Database.DBName)
	}

	database.InitDB(dbURL)
	err := database.MigrateDatabase(
		&model.Property{},
		&model.Configuration{},
		&model.UserPreference{},
		&model.SearchLog{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	if err := importCatalogIfEmpty(cfg); err != nil {
		log.Fatal("Could not import property catalog:", err)
	}

	cat, err := catalog.Load(database.GetDB())
	if err != nil {
		log.Fatal("Could not load property catalog:", err)
	}
	log.Printf("Loaded %d properties across %d areas", cat.Len(), len(cat.Areas()))

	store := prefs.NewGormStore(database.GetDB())
	svc := search.NewService(cat, store, search.NewRuleExtractor(), cfg.Search.ResultLimit)

	controller.InitSessionController()
	controller.InitSearchController(svc)
	controller.InitCatalogController(cat)
	cron.InitPreferenceCleanupCron(store, cfg.Prefs.TTLDays)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}

// importCatalogIfEmpty seeds the properties table on first boot, from S3
// when a bucket is configured and from the local CSV path otherwise.
func importCatalogIfEmpty(cfg *config.Config) error {
	db := database.GetDB()

	var count int64
	if err := db.Model(&model.Property{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.Catalog.Bucket != "" {
		if err := storage.InitStorage(cfg.Catalog.Region,
			os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")); err != nil {
			return err
		}
		data, err := storage.FetchCatalog(context.Background(), cfg.Catalog.Bucket, cfg.Catalog.Key)
		if err != nil {
			return err
		}
		_, err = seed.ImportCatalogCSV(db, bytes.NewReader(data))
		return err
	}

	_, err := seed.ImportCatalogFile(db, cfg.Catalog.Path)
	return err
}
