package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"homenest/config"
	"homenest/routes"
	"homenest/utils"
)

func main() {
	cfg := config.Load()

	if err := config.ConnectDB(cfg); err != nil {
		log.Fatalf("database: %v", err)
	}

	cache := utils.NewCache(cfg.RedisAddr, cfg.RedisPassword)

	e := echo.New()
	e.Validator = utils.NewRequestValidator()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	routes.RegisterRoutes(e, cfg, cache)

	log.Printf("Server starting on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
