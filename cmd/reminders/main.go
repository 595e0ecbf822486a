package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-BarberService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/appointment"
	notificationRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/notification"
	tenantRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/tenant"
	notificationsService "github.com/m04kA/SMC-BarberService/internal/service/notifications"
	checkRemindersUC "github.com/m04kA/SMC-BarberService/internal/usecase/check_reminders"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/metrics"
	"github.com/m04kA/SMC-BarberService/pkg/timezone"
)

// runTimeout ограничение одного прохода проверки
const runTimeout = 5 * time.Minute

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	once := flag.Bool("once", false, "run a single check and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	clock, err := timezone.New(cfg.Time.Location)
	if err != nil {
		log.Fatal("Failed to load time location %q: %v", cfg.Time.Location, err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	// Процесс без /metrics, обёртка работает как прокси
	wrappedDB := dbmetrics.Wrap(db, nil, "reminders")

	notificationRepository := notificationRepo.NewRepository(wrappedDB)
	notificationsSvc := notificationsService.NewService(
		notificationRepository,
		tenantRepo.NewRepository(wrappedDB),
		(*metrics.Metrics)(nil),
		log,
	)
	useCase := checkRemindersUC.NewUseCase(
		appointmentRepo.NewRepository(wrappedDB),
		notificationRepository,
		notificationsSvc,
		clock,
		log,
	)

	run := func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		result, err := useCase.Execute(ctx, &checkRemindersUC.Request{})
		if err != nil {
			log.Error("Reminders: check failed: %v", err)
			return
		}
		log.Info("Reminders: checked=%d, sent=%d, skipped=%d, failed=%d",
			result.Checked, result.Sent, result.Skipped, result.Failed)
	}

	if *once {
		run()
		return
	}

	c := cron.New(
		cron.WithLocation(clock.Location()),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{log: log})),
	)
	if _, err := c.AddFunc(cfg.Reminders.Schedule, run); err != nil {
		log.Fatal("Invalid reminders schedule %q: %v", cfg.Reminders.Schedule, err)
	}

	c.Start()
	log.Info("Reminders scheduler started (schedule=%q, location=%s)", cfg.Reminders.Schedule, cfg.Time.Location)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Stopping reminders scheduler...")
	<-c.Stop().Done()
	log.Info("Reminders scheduler stopped")
}

// cronLogger адаптер логгера сервиса к cron.Logger
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug("Cron: %s %v", msg, keysAndValues)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error("Cron: %s: %v %v", msg, err, keysAndValues)
}
