package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/anjiri1684/kids_learning/configs"
	"github.com/anjiri1684/kids_learning/database"
	"github.com/anjiri1684/kids_learning/handlers"
	"github.com/anjiri1684/kids_learning/jobs"
	"github.com/anjiri1684/kids_learning/notifications"
	"github.com/anjiri1684/kids_learning/routes"
	"github.com/anjiri1684/kids_learning/services"
	"github.com/anjiri1684/kids_learning/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	settings := config.Load()
	if err := settings.Validate(); err != nil {
		log.Fatalf("🔥 %v", err)
	}

	db, err := database.ConnectDB(settings.DatabaseURL)
	if err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := websocket.NewHub(db)
	go hub.Run(ctx)

	h := &handlers.Handler{
		DB:           db,
		Hub:          hub,
		Reports:      services.ChromePDFRenderer{},
		JWTSecret:    settings.JWTSecret,
		CookieSecure: settings.CookieSecure,
	}
	if mailer := notifications.NewBrevoService(settings.BrevoAPIKey, settings.EmailSender, settings.EmailSenderName); mailer != nil {
		h.Mailer = mailer
	} else {
		log.Println("⚠️ Brevo is not configured, emails are disabled")
	}
	if uploader, err := services.NewCloudinaryUploader(settings.CloudinaryURL); err == nil {
		h.Uploader = uploader
	} else {
		log.Printf("⚠️ Uploads are disabled: %v", err)
	}

	scheduler, err := jobs.Start(db, h.Mailer, settings.PurgeSchedule, settings.DigestSchedule)
	if err != nil {
		log.Fatalf("🔥 Failed to schedule jobs: %v", err)
	}
	defer scheduler.Stop()

	app := fiber.New(fiber.Config{
		AppName:       "Kids Learning",
		CaseSensitive: true,
		StrictRouting: true,
		BodyLimit:     10 * 1024 * 1024,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  60 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler:  handlers.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     settings.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: settings.CORSOrigins != "*",
		ExposeHeaders:    "Content-Length, Content-Disposition",
		MaxAge:           86400,
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to the Kids Learning API",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	routes.Setup(app, h)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("🔥 Shutdown failed: %v", err)
		}
	}()

	log.Printf("✅ Server is running on port %s", settings.Port)
	if err := app.Listen(":" + settings.Port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
