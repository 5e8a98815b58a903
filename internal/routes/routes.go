package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/secondchance/secondchance-backend/internal/account"
	"github.com/secondchance/secondchance-backend/internal/catalog"
	"github.com/secondchance/secondchance-backend/internal/config"
	"github.com/secondchance/secondchance-backend/internal/infra"
	"github.com/secondchance/secondchance-backend/internal/middleware"
	"github.com/secondchance/secondchance-backend/internal/password"
	"github.com/secondchance/secondchance-backend/internal/token"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	Mongo  *infra.Mongo
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	issuer, err := token.NewIssuer(d.Cfg.JWTSecret)
	if err != nil {
		return err
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))

	RegisterHealthRoutes(app, d)

	accountRepo := account.NewMongoRepository(d.Mongo.Database)
	accountSvc := account.NewService(accountRepo, password.Default(), issuer)
	accountHandler := account.NewHandler(accountSvc, d.Logger)

	catalogRepo := catalog.NewMongoRepository(d.Mongo.Database)
	catalogHandler := catalog.NewHandler(catalogRepo, d.Logger)

	app.Post("/register", accountHandler.Register)
	app.Post("/login", middleware.LoginRateLimit(d.Cache, 10), accountHandler.Login)
	app.Put("/update", accountHandler.Update)
	app.Get("/search", catalogHandler.Search)

	app.Get("/profile", middleware.BearerAuth(issuer), accountHandler.Profile)

	return nil
}
