package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/rajaput123/SevaBookingService/internal/api/handlers/cancel_booking"
	checkSlotAvailabilityHandler "github.com/rajaput123/SevaBookingService/internal/api/handlers/check_slot_availability"
	createBookingHandler "github.com/rajaput123/SevaBookingService/internal/api/handlers/create_booking"
	createFestivalHandler "github.com/rajaput123/SevaBookingService/internal/api/handlers/create_festival"
	createOfferingHandler "github.com/rajaput123/SevaBookingService/internal/api/handlers/create_offering"
	deleteFestivalHandler "github.com/rajaput123/SevaBookingService/internal/api/handlers/delete_festival"
	getAvailableSlotsHandler "github.com/rajaput123/SevaBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/rajaput123/SevaBookingService/internal/api/handlers/get_booking"
	getDevoteeBookingsHandler "github.com/rajaput123/SevaBookingService/internal/api/handlers/get_devotee_bookings"
	getFestivalCalendarHandler "github.com/rajaput123/SevaBookingService/internal/api/handlers/get_festival_calendar"
	getOfferingHandler "github.com/rajaput123/SevaBookingService/internal/api/handlers/get_offering"
	getOfferingBookingsHandler "github.com/rajaput123/SevaBookingService/internal/api/handlers/get_offering_bookings"
	listOfferingsHandler "github.com/rajaput123/SevaBookingService/internal/api/handlers/list_offerings"
	updateOfferingScheduleHandler "github.com/rajaput123/SevaBookingService/internal/api/handlers/update_offering_schedule"
	"github.com/rajaput123/SevaBookingService/internal/api/middleware"
	"github.com/rajaput123/SevaBookingService/internal/config"
	bookingRepo "github.com/rajaput123/SevaBookingService/internal/infra/storage/booking"
	festivalRepo "github.com/rajaput123/SevaBookingService/internal/infra/storage/festival"
	offeringRepo "github.com/rajaput123/SevaBookingService/internal/infra/storage/offering"
	devoteeServiceClient "github.com/rajaput123/SevaBookingService/internal/integrations/devoteeservice"
	bookingsService "github.com/rajaput123/SevaBookingService/internal/service/bookings"
	festivalsService "github.com/rajaput123/SevaBookingService/internal/service/festivals"
	offeringsService "github.com/rajaput123/SevaBookingService/internal/service/offerings"
	checkSlotAvailabilityUC "github.com/rajaput123/SevaBookingService/internal/usecase/check_slot_availability"
	createBookingUC "github.com/rajaput123/SevaBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/rajaput123/SevaBookingService/internal/usecase/get_available_slots"
	"github.com/rajaput123/SevaBookingService/pkg/dbmetrics"
	"github.com/rajaput123/SevaBookingService/pkg/logger"
	"github.com/rajaput123/SevaBookingService/pkg/metrics"
	"github.com/rajaput123/SevaBookingService/pkg/simpletxmanager"
	"github.com/rajaput123/SevaBookingService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SevaBookingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	devoteeClient := devoteeServiceClient.NewClient(
		cfg.DevoteeService.URL,
		time.Duration(cfg.DevoteeService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (DevoteeService=%s timeout=%ds)",
		cfg.DevoteeService.URL, cfg.DevoteeService.Timeout)

	var (
		bookingRepository  *bookingRepo.Repository
		offeringRepository *offeringRepo.Repository
		festivalRepository *festivalRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		offeringRepository = offeringRepo.NewRepository(wrappedDB)
		festivalRepository = festivalRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		offeringRepository = offeringRepo.NewRepository(db)
		festivalRepository = festivalRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		devoteeClient,
		log,
	)
	offeringSvc := offeringsService.NewService(
		offeringRepository,
		devoteeClient,
		log,
	)
	festivalSvc := festivalsService.NewService(
		festivalRepository,
		devoteeClient,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		offeringRepository,
		festivalRepository,
		devoteeClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		offeringRepository,
		bookingRepository,
		festivalRepository,
		log,
	)

	checkSlotAvailabilityUseCase := checkSlotAvailabilityUC.NewUseCase(
		offeringRepository,
		bookingRepository,
		festivalRepository,
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkSlotAvailability := checkSlotAvailabilityHandler.NewHandler(checkSlotAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getDevoteeBookings := getDevoteeBookingsHandler.NewHandler(bookingSvc, log)
	getOfferingBookings := getOfferingBookingsHandler.NewHandler(bookingSvc, log)
	listOfferings := listOfferingsHandler.NewHandler(offeringSvc, log)
	getOffering := getOfferingHandler.NewHandler(offeringSvc, log)
	createOffering := createOfferingHandler.NewHandler(offeringSvc, log)
	updateOfferingSchedule := updateOfferingScheduleHandler.NewHandler(offeringSvc, log)
	getFestivalCalendar := getFestivalCalendarHandler.NewHandler(festivalSvc, log)
	createFestival := createFestivalHandler.NewHandler(festivalSvc, log)
	deleteFestival := deleteFestivalHandler.NewHandler(festivalSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	// Seva catalogue
	api.HandleFunc("/offerings", listOfferings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/offerings/{offeringId}", getOffering.Handle).Methods(http.MethodGet)

	// Slot grid for a date
	api.HandleFunc("/offerings/{offeringId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Availability of one specific slot
	api.HandleFunc("/offerings/{offeringId}/slot-availability",
		checkSlotAvailability.Handle).Methods(http.MethodGet)

	// Festival calendar
	api.HandleFunc("/festivals", getFestivalCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (require X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Bookings ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Devotee booking history
	protected.HandleFunc("/devotees/{devoteeId}/bookings", getDevoteeBookings.Handle).Methods(http.MethodGet)

	// --- Temple administration ---
	protected.HandleFunc("/offerings", createOffering.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/offerings/{offeringId}/schedule", updateOfferingSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/offerings/{offeringId}/bookings", getOfferingBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/festivals", createFestival.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/festivals/{festivalId}", deleteFestival.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
