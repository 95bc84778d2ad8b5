package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"estatecrm/config"
	"estatecrm/routes"
	"estatecrm/seed"
	"estatecrm/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	utils.InitLogger()

	config.ConnectDB()

	if err := config.EnsureIndexes(context.Background()); err != nil {
		utils.Log.WithError(err).Fatal("Failed to create indexes")
	}

	utils.InitRedis()

	if os.Getenv("SEED_DATA") == "true" {
		if err := seed.Run(context.Background()); err != nil {
			utils.Log.WithError(err).Fatal("Failed to seed data")
		}
		utils.Log.Info("Seed data loaded")
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewValidator()
	e.HTTPErrorHandler = utils.HTTPErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	routes.RegisterRoutes(e)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	utils.Log.WithField("port", port).Info("Server starting")
	e.Logger.Fatal(e.Start(":" + port))
}
