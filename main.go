package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/tinhour/line-rent-bot/internal/api"
	"github.com/tinhour/line-rent-bot/internal/bot"
	"github.com/tinhour/line-rent-bot/internal/cache"
	"github.com/tinhour/line-rent-bot/internal/config"
	"github.com/tinhour/line-rent-bot/internal/db"
	"github.com/tinhour/line-rent-bot/internal/line"
	"github.com/tinhour/line-rent-bot/internal/payment"
	"github.com/tinhour/line-rent-bot/internal/services"
	"github.com/tinhour/line-rent-bot/internal/tasks"
)

var runMode = flag.String("m", "all", "Run mode: 'web' (webhook + REST API), 'worker' (notification worker), 'all' (default)")

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*runMode)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Database
	gormDB, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Disconnect(gormDB); err != nil {
			log.Printf("Error disconnecting from database: %v", err)
		}
	}()

	// Initialize Cache (Redis)
	redisClient, err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer func() {
		if err := cache.DisconnectRedis(redisClient); err != nil {
			log.Printf("Error disconnecting from Redis: %v", err)
		}
	}()

	// Initialize LINE messaging client
	messenger, err := line.NewMessenger(cfg.LineChannelSecret, cfg.LineChannelAccessToken)
	if err != nil {
		log.Fatalf("Failed to initialize LINE client: %v", err)
	}

	// Initialize Services
	userService := services.NewUserService(gormDB)
	propertyService := services.NewPropertyService(gormDB)
	inquiryService := services.NewInquiryService(gormDB)
	transactionService := services.NewTransactionService(gormDB, payment.NewSimulatedGateway())

	// Initialize Task Client
	taskClient := tasks.NewClient(redisClient)
	defer func() {
		if err := taskClient.Close(); err != nil {
			log.Printf("Error closing task client: %v", err)
		}
	}()

	// Initialize Bot dispatcher
	chatBot := bot.New(messenger, taskClient, userService, propertyService, inquiryService, transactionService, cfg)

	// Initialize Task Processor
	taskProcessor := tasks.NewTaskProcessor(messenger, inquiryService, cfg)

	// WaitGroup for managing goroutines
	var wg sync.WaitGroup

	var webSrv *http.Server
	var workerSrv *asynq.Server

	fmt.Printf("Starting application in '%s' mode...\n", cfg.RunMode)

	webMode := func() {
		fmt.Println("Starting web server...")
		router := api.SetupRouter(cfg, messenger, chatBot, userService, propertyService, inquiryService, transactionService)
		webSrv = &http.Server{
			Addr:    ":" + cfg.ApiPort,
			Handler: router,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			fmt.Printf("Web server listening on :%s\n", cfg.ApiPort)
			if err := webSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Web server ListenAndServe error: %v", err)
			}
			fmt.Println("Web server stopped.")
		}()
	}

	workerMode := func() {
		fmt.Println("Starting notification worker...")
		srv, mux := tasks.SetupServer(redisClient, taskProcessor)
		workerSrv = srv
		wg.Add(1)
		go func() {
			defer wg.Done()
			fmt.Println("Notification worker starting...")
			if err := workerSrv.Run(mux); err != nil {
				log.Fatalf("Notification worker error: %v", err)
			}
			fmt.Println("Notification worker stopped.")
		}()
	}

	switch cfg.RunMode {
	case "web":
		webMode()
	case "worker":
		workerMode()
	case "all":
		webMode()
		workerMode()
	default:
		log.Fatalf("Invalid run mode specified in config: %s.", cfg.RunMode)
	}

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	fmt.Printf("\nReceived signal: %s. Shutting down gracefully...\n", sig)

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if webSrv != nil {
		fmt.Println("Shutting down web server...")
		if err := webSrv.Shutdown(ctxShutdown); err != nil {
			log.Printf("Web server shutdown error: %v", err)
		}
	}

	if workerSrv != nil {
		fmt.Println("Shutting down notification worker...")
		workerSrv.Shutdown()
	}

	fmt.Println("Waiting for servers to stop...")
	wg.Wait()

	fmt.Println("Server gracefully stopped")
}
