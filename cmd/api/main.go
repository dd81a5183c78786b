package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // IANA zones for time.timezone in minimal images

	// Application Layer
	"remindtrack/internal/application/query"
	appService "remindtrack/internal/application/service"
	"remindtrack/internal/config"

	// Domain Layer
	"remindtrack/internal/domain/repository"

	// Infrastructure Layer
	"remindtrack/internal/infrastructure/database/firestoredb"
	"remindtrack/internal/infrastructure/database/gormdb"
	lineClient "remindtrack/internal/infrastructure/line"
	"remindtrack/internal/infrastructure/scheduler"

	// Interfaces Layer
	"remindtrack/internal/interfaces/api/handler"
	"remindtrack/internal/interfaces/api/router"

	// Packages
	appLogger "remindtrack/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
)

func gracefulShutdown(apiServer *http.Server, schedulerService appService.SchedulerService, closeStore func() error, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")

	if schedulerService != nil {
		log.Println("Stopping scheduler...")
		schedulerService.Stop()
		log.Println("Scheduler stopped.")
	}

	// The server has 5 seconds to finish the request it is currently handling
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Closing record store...")
	if err := closeStore(); err != nil {
		log.Printf("Error closing record store: %v", err)
	} else {
		log.Println("Record store closed.")
	}

	log.Println("Server exiting")
	done <- true
}

// openStore selects the record store named by the configuration.
func openStore(ctx context.Context, cfg *config.Config, appLog appLogger.Logger) (repository.ReminderRepository, func() error, error) {
	switch cfg.Database.Driver {
	case config.DriverFirestore:
		client, err := firestoredb.NewClient(ctx, cfg.Database.FirestoreProject)
		if err != nil {
			return nil, nil, err
		}
		appLog.Info(fmt.Sprintf("Using Firestore project %s.", cfg.Database.FirestoreProject))
		return firestoredb.NewReminderRepository(client), client.Close, nil
	default:
		db, err := gormdb.NewDB(gormdb.Options{
			Driver: cfg.Database.Driver,
			DSN:    cfg.Database.DSN,
			Debug:  cfg.Log.Level == "debug",
		})
		if err != nil {
			return nil, nil, err
		}
		appLog.Info(fmt.Sprintf("Using %s database.", cfg.Database.Driver))
		return gormdb.NewReminderRepository(db), func() error { return gormdb.CloseDB(db) }, nil
	}
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to an optional YAML config file")
	flag.Parse()

	// --- Configuration ---
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appLog := appLogger.New(cfg.Log.Level)
	if err := cfg.Validate(); err != nil {
		appLog.Error("Invalid configuration", err)
		os.Exit(1)
	}
	loc, err := cfg.Location()
	if err != nil {
		appLog.Error("Invalid time zone", err)
		os.Exit(1)
	}
	appLog.Info("Configuration loaded.")

	// --- Infrastructure ---
	reminderRepo, closeStore, err := openStore(context.Background(), cfg, appLog)
	if err != nil {
		appLog.Error("Failed to open record store", err)
		os.Exit(1)
	}

	var line *lineClient.Client
	if cfg.LineEnabled() {
		line, err = lineClient.NewClient(cfg.Line.ChannelSecret, cfg.Line.ChannelAccessToken, appLog)
		if err != nil {
			appLog.Error("Failed to create LINE client", err)
			os.Exit(1)
		}
	} else {
		appLog.Warn("LINE credentials not set; webhook and digest are disabled.")
	}

	// --- Application Services ---
	engine := query.NewEngine(reminderRepo, query.NewNormalizer(loc))
	reminderSvc := appService.NewReminderService(reminderRepo, engine, appLog)

	var schedulerSvc appService.SchedulerService
	if cfg.Digest.Enabled {
		cronScheduler := scheduler.NewScheduler(loc, appLog)
		schedulerSvc = appService.NewSchedulerService(cronScheduler, reminderRepo, engine, line, appLog)
		if err := schedulerSvc.ScheduleDigest(cfg.Digest.Cron); err != nil {
			appLog.Error("Failed to schedule daily digest", err)
			os.Exit(1)
		}
	}
	appLog.Info("Application services initialized.")

	// --- API Handlers ---
	routerCfg := &router.Config{
		ReminderHandler: handler.NewReminderHandler(reminderSvc, appLog),
		Logger:          appLog,
	}
	if line != nil {
		routerCfg.LineHandler = handler.NewLineHandler(line, reminderSvc, loc, appLog)
	}
	echoRouter := router.NewRouter(routerCfg)

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, schedulerSvc, closeStore, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	<-done
	appLog.Info("Graceful shutdown complete.")
}
