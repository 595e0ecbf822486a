package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adjustLoyaltyPointsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/adjust_loyalty_points"
	broadcastNotificationHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/broadcast_notification"
	cancelBookingHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/cancel_booking"
	checkRemindersHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/check_reminders"
	createBlockedTimeHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/create_blocked_time"
	createBookingHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/create_booking"
	createTransactionHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/create_transaction"
	deleteBlockedTimeHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/delete_blocked_time"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_booking"
	getWorkingHoursHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_working_hours"
	listBlockedTimesHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/list_blocked_times"
	listBookingsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/list_bookings"
	listTransactionsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/list_transactions"
	mintCouponHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/mint_coupon"
	redeemCouponHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/redeem_coupon"
	sendNotificationHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/send_notification"
	sendWhatsAppHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/send_whatsapp"
	updateBookingHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/update_booking"
	updateWorkingHoursHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/update_working_hours"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/appointment"
	cashRegisterRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/cashregister"
	loyaltyRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/loyalty"
	notificationRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/notification"
	scheduleRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/schedule"
	tenantRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/tenant"
	whatsappRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/whatsapp"
	whatsappClient "github.com/m04kA/SMC-BarberService/internal/integrations/whatsapp"
	actorsService "github.com/m04kA/SMC-BarberService/internal/service/actors"
	appointmentsService "github.com/m04kA/SMC-BarberService/internal/service/appointments"
	cashRegisterService "github.com/m04kA/SMC-BarberService/internal/service/cashregister"
	loyaltyService "github.com/m04kA/SMC-BarberService/internal/service/loyalty"
	notificationsService "github.com/m04kA/SMC-BarberService/internal/service/notifications"
	scheduleService "github.com/m04kA/SMC-BarberService/internal/service/schedule"
	checkRemindersUC "github.com/m04kA/SMC-BarberService/internal/usecase/check_reminders"
	createBookingUC "github.com/m04kA/SMC-BarberService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberService/internal/usecase/get_available_slots"
	sendWhatsAppUC "github.com/m04kA/SMC-BarberService/internal/usecase/send_whatsapp"
	updateBookingUC "github.com/m04kA/SMC-BarberService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/metrics"
	"github.com/m04kA/SMC-BarberService/pkg/timezone"
	"github.com/m04kA/SMC-BarberService/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BarberService...")
	log.Info("Configuration loaded from %s", *configPath)

	clock, err := timezone.New(cfg.Time.Location)
	if err != nil {
		log.Fatal("Failed to load time location %q: %v", cfg.Time.Location, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка работает как прозрачный прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	tenantRepository := tenantRepo.NewRepository(wrappedDB)
	loyaltyRepository := loyaltyRepo.NewRepository(wrappedDB)
	notificationRepository := notificationRepo.NewRepository(wrappedDB)
	cashRegisterRepository := cashRegisterRepo.NewRepository(wrappedDB)
	whatsappRepository := whatsappRepo.NewRepository(wrappedDB)

	// Интеграции
	whatsapp := whatsappClient.NewClient(
		cfg.WhatsApp.RatePerSecond,
		cfg.WhatsApp.Burst,
		time.Duration(cfg.WhatsApp.Timeout)*time.Second,
		log,
	)
	log.Info("WhatsApp client initialized (rate=%.2f/s, burst=%d, timeout=%ds)",
		cfg.WhatsApp.RatePerSecond, cfg.WhatsApp.Burst, cfg.WhatsApp.Timeout)

	// Сервисы
	actorsSvc := actorsService.NewService(tenantRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, tenantRepository, log)
	cashRegisterSvc := cashRegisterService.NewService(cashRegisterRepository, appointmentRepository, log)
	notificationsSvc := notificationsService.NewService(notificationRepository, tenantRepository, metricsCollector, log)
	loyaltySvc := loyaltyService.NewService(
		loyaltyRepository,
		tenantRepository,
		appointmentRepository,
		txMgr,
		clock,
		metricsCollector,
		log,
	)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		tenantRepository,
		clock,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		tenantRepository,
		notificationsSvc,
		txMgr,
		clock,
		metricsCollector,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		loyaltySvc,
		notificationsSvc,
		txMgr,
		metricsCollector,
		log,
	)
	checkRemindersUseCase := checkRemindersUC.NewUseCase(
		appointmentRepository,
		notificationRepository,
		notificationsSvc,
		clock,
		log,
	)
	sendWhatsAppUseCase := sendWhatsAppUC.NewUseCase(
		whatsappRepository,
		tenantRepository,
		whatsapp,
		metricsCollector,
		log,
	)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(appointmentsSvc, log)
	getBooking := getBookingHandler.NewHandler(appointmentsSvc, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(updateBookingUseCase, log)
	adjustLoyaltyPoints := adjustLoyaltyPointsHandler.NewHandler(loyaltySvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(scheduleSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(scheduleSvc, log)
	listBlockedTimes := listBlockedTimesHandler.NewHandler(scheduleSvc, log)
	createBlockedTime := createBlockedTimeHandler.NewHandler(scheduleSvc, log)
	deleteBlockedTime := deleteBlockedTimeHandler.NewHandler(scheduleSvc, log)
	broadcastNotification := broadcastNotificationHandler.NewHandler(notificationsSvc, log)
	createTransaction := createTransactionHandler.NewHandler(cashRegisterSvc, log)
	listTransactions := listTransactionsHandler.NewHandler(cashRegisterSvc, log)

	mintCoupon := mintCouponHandler.NewHandler(loyaltySvc, log)
	redeemCoupon := redeemCouponHandler.NewHandler(loyaltySvc, log)
	sendNotification := sendNotificationHandler.NewHandler(notificationsSvc, log)
	sendWhatsApp := sendWhatsAppHandler.NewHandler(sendWhatsAppUseCase, log)
	checkReminders := checkRemindersHandler.NewHandler(checkRemindersUseCase, log)

	auth := middleware.NewAuth(cfg.Auth.JWTSecret, cfg.Auth.Issuer, actorsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// REST API (все маршруты требуют Bearer JWT)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.Middleware)

	// --- Записи ---
	api.HandleFunc("/barbers/{barberId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", updateBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Лояльность ---
	api.HandleFunc("/customers/{customerId}/loyalty-points", adjustLoyaltyPoints.Handle).Methods(http.MethodPost)

	// --- Расписание ---
	api.HandleFunc("/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/working-hours/{dayOfWeek}", updateWorkingHours.Handle).Methods(http.MethodPut)
	api.HandleFunc("/blocked-times", listBlockedTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/blocked-times", createBlockedTime.Handle).Methods(http.MethodPost)
	api.HandleFunc("/blocked-times/{id}", deleteBlockedTime.Handle).Methods(http.MethodDelete)

	// --- Уведомления и касса ---
	api.HandleFunc("/notifications/broadcast", broadcastNotification.Handle).Methods(http.MethodPost)
	api.HandleFunc("/transactions", createTransaction.Handle).Methods(http.MethodPost)
	api.HandleFunc("/transactions", listTransactions.Handle).Methods(http.MethodGet)

	// ============================================================
	// FUNCTIONS ({success: true, ...} | {success: false, error})
	// ============================================================

	functions := r.PathPrefix("/functions/v1").Subrouter()
	functions.Use(auth.Middleware)

	functions.HandleFunc("/mint-coupon", mintCoupon.Handle).Methods(http.MethodPost)
	functions.HandleFunc("/redeem-coupon", redeemCoupon.Handle).Methods(http.MethodPost)
	functions.HandleFunc("/send-notification", sendNotification.Handle).Methods(http.MethodPost)
	functions.HandleFunc("/send-whatsapp", sendWhatsApp.Handle).Methods(http.MethodPost)
	functions.HandleFunc("/check-reminders", checkReminders.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
