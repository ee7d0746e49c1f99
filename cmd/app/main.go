package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"shopqueue/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(configs.MongoURI))
	if err != nil {
		log.Fatalf("Error connecting to mongo: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("Error disconnecting from mongo", "error", err)
		}
	}()

	app := cmd.NewCompositionRoot(configs, client.Database(configs.MongoDB), logger)

	if err := app.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Error creating indexes: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		MongoURI:        goDotEnvVariable("MONGO_URI"),
		MongoDB:         goDotEnvVariable("MONGO_DB"),
		OrderServiceURL: goDotEnvVariable("ORDER_SERVICE_URL"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
