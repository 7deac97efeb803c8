package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"ordermanager/cmd"
	httpin "ordermanager/internal/adapters/in/http"
	"ordermanager/internal/adapters/out/postgres/orderrecordrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	busChannel := mustConnectRabbitMQ(configs)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	app, err := cmd.NewCompositionRoot(configs, gormDB, busChannel, redisClient, logger)
	if err != nil {
		log.Fatalf("Error creating composition root: %v", err)
	}

	jobManager := app.CreateJobManager(watchdogThreshold(configs))
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		DBHost:                   goDotEnvVariable("DB_HOST"),
		DBPort:                   goDotEnvVariable("DB_PORT"),
		DBUser:                   goDotEnvVariable("DB_USER"),
		DBPassword:               goDotEnvVariable("DB_PASSWORD"),
		DBName:                   goDotEnvVariable("DB_NAME"),
		DBSslMode:                goDotEnvVariable("DB_SSLMODE"),
		RabbitMQHost:             goDotEnvVariable("RABBITMQ_HOST"),
		RabbitMQPort:             goDotEnvVariable("RABBITMQ_PORT"),
		RabbitMQUser:             goDotEnvVariable("RABBITMQ_USER"),
		RabbitMQPassword:         goDotEnvVariable("RABBITMQ_PASSWORD"),
		EventExchange:            goDotEnvVariable("EVENT_EXCHANGE"),
		EventSource:              goDotEnvVariable("EVENT_SOURCE"),
		RedisAddr:                goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:            goDotEnvVariable("REDIS_PASSWORD"),
		MenuKey:                  goDotEnvVariable("MENU_KEY"),
		WatchdogThresholdSeconds: goDotEnvVariable("WATCHDOG_THRESHOLD_SECONDS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func watchdogThreshold(configs cmd.Config) time.Duration {
	seconds, err := strconv.Atoi(configs.WatchdogThresholdSeconds)
	if err != nil || seconds <= 0 {
		seconds = 300
	}
	return time.Duration(seconds) * time.Second
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrecordrepo.OrderRecordDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func mustConnectRabbitMQ(configs cmd.Config) *amqp.Channel {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		configs.RabbitMQUser, configs.RabbitMQPassword,
		configs.RabbitMQHost, configs.RabbitMQPort)

	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		log.Fatalf("Error opening RabbitMQ channel: %v", err)
	}

	return channel
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(app.CreateDispatcher(), app.CreateGetSuspendedOrdersQueryHandler())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
