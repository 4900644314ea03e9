package main

import (
	"log"

	"serene/certificate"
	"serene/config"
	courseControllers "serene/controllers/course"
	"serene/database"
	"serene/middleware"
	"serene/routers/contentRoutes"
	"serene/routers/courseRoutes"
	"serene/storage"
	"serene/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	store, err := storage.NewOSSStoreFromConfig()
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// Certificate numbers come from the local sequence unless an external
	// allocator service is configured.
	var allocator certificate.NumberAllocator = certificate.NewSequenceAllocator(database.Database.Db)
	if config.AppConfig.AllocatorURL != "" {
		allocator = certificate.NewRemoteAllocator(config.AppConfig.AllocatorURL)
	}

	var notifier certificate.Notifier
	if config.AppConfig.SendgridKey != "" {
		notifier = utils.NewCertificateMailer(config.AppConfig.SendgridKey, config.AppConfig.EmailSender)
	}

	courseControllers.InitCertificateIssuer(
		certificate.NewIssuer(database.Database.Db, store, allocator, notifier),
	)

	if config.AppConfig.SweepEnabled {
		utils.StartCertificateSweeper(database.Database.Db, store, config.AppConfig.SweepDelete)
	}

	app := fiber.New()

	app.Use(middleware.CORS)

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	contentRoutes.SetupContentRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
