package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/salestrack-dev/salestrack/internal/infra/auth"
	"github.com/salestrack-dev/salestrack/internal/infra/database"
	"github.com/salestrack-dev/salestrack/internal/infra/http/handlers"
	"github.com/salestrack-dev/salestrack/internal/infra/http/middleware"
	"github.com/salestrack-dev/salestrack/internal/infra/mail"
	"github.com/salestrack-dev/salestrack/internal/infra/queue"
	"github.com/salestrack-dev/salestrack/internal/usecase"
)

func main() {
	godotenv.Load()

	ctx := context.Background()

	client, err := database.Connect(ctx, envOr("MONGO_URI", "mongodb://localhost:27017"))
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(envOr("MONGO_DB", "salestrack"))

	// 1. Repositories
	userRepo := database.NewUserRepository(db)
	leadRepo := database.NewLeadRepository(db)
	dealRepo := database.NewDealRepository(db)
	activityRepo := database.NewActivityRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal(err)
	}

	// 2. Queue + worker (optional: without a broker the API still runs,
	// assignment emails are just skipped)
	var (
		notifier   usecase.NotificationProducer
		rabbitConn *amqp.Connection
	)
	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err := queue.NewRabbitMQ(
			envOr("RABBITMQ_USER", "guest"),
			envOr("RABBITMQ_PASS", "guest"),
			host,
			envOr("RABBITMQ_PORT", "5672"),
		)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		rabbitConn = rabbitMQ.Conn
		notifier = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
		sender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"),
			mailPort,
			os.Getenv("MAIL_USER"),
			os.Getenv("MAIL_PASS"),
			envOr("MAIL_FROM", "no-reply@salestrack.dev"),
		)

		worker := queue.NewWorker(rabbitMQ.Ch, sender)
		go worker.Start(queue.QueueName)
	}

	// 3. Auth primitives
	tokens := auth.NewJWTManager(mustEnv("JWT_SECRET"), 7*24*time.Hour)
	hasher := auth.NewBcryptHasher()

	// 4. UseCases
	authUC := usecase.NewAuthUseCase(userRepo, hasher, tokens)
	leadUC := usecase.NewLeadUseCase(leadRepo, userRepo, notifier)
	dealUC := usecase.NewDealUseCase(dealRepo, userRepo, notifier)
	activityUC := usecase.NewActivityUseCase(activityRepo)
	userUC := usecase.NewUserUseCase(userRepo, leadRepo)

	// 5. Handlers + middleware
	authenticator := middleware.NewAuthenticator(tokens, userRepo)
	limiter := middleware.NewRateLimiter(100, 15*time.Minute)

	router := handlers.NewRouter(handlers.RouterConfig{
		Auth:          handlers.NewAuthHandler(authUC),
		Leads:         handlers.NewLeadHandler(leadUC),
		Deals:         handlers.NewDealHandler(dealUC),
		Activities:    handlers.NewActivityHandler(activityUC),
		Users:         handlers.NewUserHandler(userUC),
		Health:        handlers.NewHealthHandler(client, rabbitConn),
		Authenticator: authenticator.RequireAuth,
		RateLimit:     limiter.Handler,
		AllowedOrigin: envOr("CORS_ORIGIN", "http://localhost:5173"),
	})

	port := ":" + envOr("PORT", "8080")
	log.Printf("SalesTrack API listening on %s", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("%s must be set", key)
	}
	return value
}
