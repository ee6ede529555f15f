package main

import (
	"log"

	"docutrack/config"
	authControllers "docutrack/controllers/auth"
	certificadoControllers "docutrack/controllers/certificado"
	solicitudControllers "docutrack/controllers/solicitud"
	authRoutes "docutrack/routers/authRoutes"
	certificadoRoutes "docutrack/routers/certificadoRoutes"
	solicitudRoutes "docutrack/routers/solicitudRoutes"
	"docutrack/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	// Session store: lives only as long as the process, nothing is persisted
	st := store.New()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authRoutes.SetupAuthRoutes(app, authControllers.New(config.AppConfig.AuthServiceURL))
	solicitudRoutes.SetupSolicitudRoutes(app, solicitudControllers.New(st))
	certificadoRoutes.SetupCertificadoRoutes(app, certificadoControllers.New(st))

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
