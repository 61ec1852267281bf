package router

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redisstorage "github.com/gofiber/storage/redis"

	apiv1 "github.com/sustentus/vendor-portal/internal/api/v1"
	"github.com/sustentus/vendor-portal/internal/pkg/env"
)

type ApiRouter struct {
	server *apiv1.APIServer
}

func NewApiRouter(server *apiv1.APIServer) *ApiRouter {
	return &ApiRouter{server: server}
}

func (h *ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Storage:    newLimiterStorage(),
	}))

	apiv1.RegisterHandlers(api, h.server)
}

// newLimiterStorage backs the rate limiter with Redis so limits hold across
// instances. Falls back to fiber's in-memory storage when Redis is not
// configured.
func newLimiterStorage() fiber.Storage {
	host := env.GetEnv("CACHE_HOST", "")
	if host == "" {
		return nil
	}

	port := 6379
	if v, err := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379")); err == nil {
		port = v
	}

	return redisstorage.New(redisstorage.Config{
		Host: host,
		Port: port,
	})
}
