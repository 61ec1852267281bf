package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sustentus/vendor-portal/app/repository"
	apiv1 "github.com/sustentus/vendor-portal/internal/api/v1"
	"github.com/sustentus/vendor-portal/internal/pkg/cache"
	"github.com/sustentus/vendor-portal/internal/pkg/database"
	"github.com/sustentus/vendor-portal/internal/pkg/env"
	"github.com/sustentus/vendor-portal/internal/pkg/mail"
	"github.com/sustentus/vendor-portal/internal/pkg/router"
	"github.com/sustentus/vendor-portal/internal/pkg/security"
	"github.com/sustentus/vendor-portal/internal/pkg/vendor"
)

func main() {
	app, err := NewApplication()
	if err != nil {
		log.Fatal(err)
	}
	err = app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "3001")))
	log.Fatal(err)
}

func NewApplication() (*fiber.App, error) {
	env.SetupEnvFile()

	db, err := database.SetupDatabase()
	if err != nil {
		return nil, err
	}
	cache.SetupCache()

	codec, err := security.NewCodec(env.GetEnv("ENCRYPTION_KEY", ""))
	if err != nil {
		return nil, fmt.Errorf("encryption key setup failed: %w", err)
	}

	ttl := security.DefaultTokenTTL
	if hours, err := strconv.Atoi(env.GetEnv("MAGIC_LINK_TTL_HOURS", "24")); err == nil && hours > 0 {
		ttl = time.Duration(hours) * time.Hour
	}
	tokens := security.NewTokenManager(codec, ttl)

	repos := repository.NewFactory(db).GetRepositories()
	svc := vendor.NewService(repos.Vendor, repos.AccessLog, tokens, mail.NewSMTPMailer())

	app := fiber.New(fiber.Config{
		AppName:      "Sustentus Vendor Portal",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})
	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: "./public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, router.NewApiRouter(apiv1.NewAPIServer(svc)))

	return app, nil
}
