package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	api_middleware "github.com/asphaltlabs/asphalt-companion/api/middleware"
	v1 "github.com/asphaltlabs/asphalt-companion/api/v1"
	"github.com/asphaltlabs/asphalt-companion/internal/catalog"
	"github.com/asphaltlabs/asphalt-companion/internal/match"
	"github.com/asphaltlabs/asphalt-companion/internal/user"
	"github.com/asphaltlabs/asphalt-companion/pkg/config"
	"github.com/asphaltlabs/asphalt-companion/pkg/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("file .env not found, using system values")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	conn, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := conn.AutoMigrate(&user.User{}, &catalog.Car{}, &match.Match{}); err != nil {
		log.Fatalf("error migrating schema: %v", err)
	}

	tokens := user.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	userService := user.NewUserService(user.NewGormUserRepository(conn), tokens)
	catalogService := catalog.NewCatalogService(catalog.NewGormCarRepository(conn))
	matchService := match.NewMatchService(match.NewGormMatchRepository(conn), catalogService)

	if err := catalogService.Seed(); err != nil {
		log.Fatalf("error seeding car catalog: %v", err)
	}

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.HTTPErrorHandler = api_middleware.ErrorHandler(e)

	api := e.Group("/api")
	v1.RegisterUserRoutes(api, userService)
	v1.RegisterStatsRoutes(api, matchService)

	authed := api.Group("")
	authed.Use(api_middleware.SetupJWTMiddleware(tokens))
	v1.RegisterCarRoutes(authed, catalogService)
	v1.RegisterMatchRoutes(authed, matchService, userService)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
