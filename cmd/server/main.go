package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Anuragkundu/WorkFlowHQ/internal/database"
	"github.com/Anuragkundu/WorkFlowHQ/internal/handlers"
	"github.com/Anuragkundu/WorkFlowHQ/internal/kafka"
	"github.com/Anuragkundu/WorkFlowHQ/internal/middleware"
	"github.com/Anuragkundu/WorkFlowHQ/internal/redis"
	"github.com/Anuragkundu/WorkFlowHQ/internal/repositories"
	"github.com/Anuragkundu/WorkFlowHQ/internal/router"
	"github.com/Anuragkundu/WorkFlowHQ/internal/services"
	"github.com/Anuragkundu/WorkFlowHQ/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger.InitLogger()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=workflowhq port=5432 sslmode=disable"
	}
	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Redis is optional; a nil service disables the stats cache.
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisService := redis.NewService(redisAddr, os.Getenv("REDIS_PASSWORD"), 0)

	// Kafka is optional; without brokers the mutation hooks stay silent.
	var producer *kafka.Producer
	if kafkaBrokers := os.Getenv("KAFKA_BROKERS"); kafkaBrokers != "" {
		producer = kafka.NewProducer(strings.Split(kafkaBrokers, ","))
		defer producer.Close()
	} else {
		logger.Log.Warn().Msg("KAFKA_BROKERS not set; activity events disabled")
	}

	userService := services.NewUserService()

	noteService := services.NewNoteService(repositories.NewNoteRepository(db), producer, redisService)
	taskService := services.NewTaskService(repositories.NewTaskRepository(db), producer, redisService)
	timerService := services.NewTimerService(repositories.NewTimeEntryRepository(db), producer, redisService)
	invoiceService := services.NewInvoiceService(repositories.NewInvoiceRepository(db), producer, redisService)

	// Setup Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	middleware.SetupPrometheus(r)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	router.SetupRouter(r, userService, router.Handlers{
		Notes:     handlers.NewNoteHandler(noteService),
		Tasks:     handlers.NewTaskHandler(taskService),
		Timer:     handlers.NewTimerHandler(timerService),
		Invoices:  handlers.NewInvoiceHandler(invoiceService),
		Dashboard: handlers.NewDashboardHandler(noteService, taskService, timerService, invoiceService, redisService),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed:", err)
		}
	}()

	// Wait for interrupt signal, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown:", err)
	}

	if redisService != nil {
		redisService.Close()
	}

	log.Println("Server exited")
}
