package main

import (
	"context"
	"errors"
	"log"
	"runtime"
	"time"

	"talentscope/internal/config"
	"talentscope/internal/domain/fiber/handler"
	applog "talentscope/internal/logger"
	"talentscope/internal/middleware"
	"talentscope/internal/repository"
	"talentscope/internal/service"
	"talentscope/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

const bootstrapCandidates = 8

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	appLogger := applog.New()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: config.LoadAppConfig().Env != "production",
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env != "production"
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	repo := repository.NewCandidateRepository()
	assistant := service.NewAssistantFromEnv(ctx, appLogger)

	chatUC := usecase.NewChatUsecase(repo, assistant, appLogger)
	libraryUC := usecase.NewLibraryUsecase(repo, appLogger)
	ingestUC := usecase.NewIngestUsecase(repo, appLogger)

	// Seed the library so the chat surface has something to talk about
	// before any upload arrives.
	ingestUC.GenerateBatch(bootstrapCandidates)

	handler.NewChatHandler(chatUC).RegisterRoutes(app)
	handler.NewLibraryHandler(libraryUC, chatUC).RegisterRoutes(app)
	handler.NewUploadHandler(ingestUC).RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}
