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

	assignRoomHandler "github.com/kratvil/HES-HotelService/internal/api/handlers/assign_room"
	cancelReservationHandler "github.com/kratvil/HES-HotelService/internal/api/handlers/cancel_reservation"
	checkInHandler "github.com/kratvil/HES-HotelService/internal/api/handlers/check_in"
	checkOutHandler "github.com/kratvil/HES-HotelService/internal/api/handlers/check_out"
	createRoomHandler "github.com/kratvil/HES-HotelService/internal/api/handlers/create_room"
	getAvailableRoomsHandler "github.com/kratvil/HES-HotelService/internal/api/handlers/get_available_rooms"
	getOccupancyHandler "github.com/kratvil/HES-HotelService/internal/api/handlers/get_occupancy"
	getReservationHandler "github.com/kratvil/HES-HotelService/internal/api/handlers/get_reservation"
	getRoomInfoHandler "github.com/kratvil/HES-HotelService/internal/api/handlers/get_room_info"
	getTaxHandler "github.com/kratvil/HES-HotelService/internal/api/handlers/get_tax"
	listGuestsHandler "github.com/kratvil/HES-HotelService/internal/api/handlers/list_guests"
	listReservationsHandler "github.com/kratvil/HES-HotelService/internal/api/handlers/list_reservations"
	listRoomsHandler "github.com/kratvil/HES-HotelService/internal/api/handlers/list_rooms"
	saveReservationHandler "github.com/kratvil/HES-HotelService/internal/api/handlers/save_reservation"
	updateGuestHandler "github.com/kratvil/HES-HotelService/internal/api/handlers/update_guest"
	updateRoomBedsHandler "github.com/kratvil/HES-HotelService/internal/api/handlers/update_room_beds"
	updateTaxHandler "github.com/kratvil/HES-HotelService/internal/api/handlers/update_tax"
	"github.com/kratvil/HES-HotelService/internal/api/middleware"
	"github.com/kratvil/HES-HotelService/internal/config"
	guestRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/guest"
	reservationRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/reservation"
	roomRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/room"
	settingsRepo "github.com/kratvil/HES-HotelService/internal/infra/storage/settings"
	billingService "github.com/kratvil/HES-HotelService/internal/service/billing"
	guestsService "github.com/kratvil/HES-HotelService/internal/service/guests"
	reservationsService "github.com/kratvil/HES-HotelService/internal/service/reservations"
	roomsService "github.com/kratvil/HES-HotelService/internal/service/rooms"
	settingsService "github.com/kratvil/HES-HotelService/internal/service/settings"
	assignRoomUC "github.com/kratvil/HES-HotelService/internal/usecase/assign_room"
	checkInUC "github.com/kratvil/HES-HotelService/internal/usecase/check_in"
	checkOutUC "github.com/kratvil/HES-HotelService/internal/usecase/check_out"
	"github.com/kratvil/HES-HotelService/pkg/dbmetrics"
	"github.com/kratvil/HES-HotelService/pkg/logger"
	"github.com/kratvil/HES-HotelService/pkg/metrics"
	"github.com/kratvil/HES-HotelService/pkg/simpletxmanager"
	"github.com/kratvil/HES-HotelService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting HES-HotelService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		guestRepository       *guestRepo.Repository
		roomRepository        *roomRepo.Repository
		settingsRepository    *settingsRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		guestRepository = guestRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		guestRepository = guestRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	priceCalculator := billingService.NewCalculator(settingsRepository, log)
	reservationSvc := reservationsService.NewService(reservationRepository, roomRepository, txMgr, log)
	roomSvc := roomsService.NewService(roomRepository, guestRepository, reservationRepository, priceCalculator, log)
	guestSvc := guestsService.NewService(guestRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	checkInUseCase := checkInUC.NewUseCase(reservationRepository, guestRepository, txMgr, log)
	assignRoomUseCase := assignRoomUC.NewUseCase(reservationRepository, guestRepository, roomRepository, txMgr, log)
	checkOutUseCase := checkOutUC.NewUseCase(
		reservationRepository,
		guestRepository,
		roomRepository,
		priceCalculator,
		txMgr,
		log,
	)

	// Инициализируем handlers
	saveReservation := saveReservationHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	checkIn := checkInHandler.NewHandler(checkInUseCase, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(assignRoomUseCase, log)
	assignRoom := assignRoomHandler.NewHandler(assignRoomUseCase, log)
	checkOut := checkOutHandler.NewHandler(checkOutUseCase, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	updateRoomBeds := updateRoomBedsHandler.NewHandler(roomSvc, log)
	getRoomInfo := getRoomInfoHandler.NewHandler(roomSvc, log)
	listGuests := listGuestsHandler.NewHandler(guestSvc, log)
	updateGuest := updateGuestHandler.NewHandler(guestSvc, log)
	getTax := getTaxHandler.NewHandler(settingsSvc, log)
	updateTax := updateTaxHandler.NewHandler(settingsSvc, log)
	getOccupancy := getOccupancyHandler.NewHandler(roomSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (чтение, без аутентификации)
	// ============================================================

	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/available-rooms", getAvailableRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomKey}", getRoomInfo.Handle).Methods(http.MethodGet)
	api.HandleFunc("/guests", listGuests.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings/tax", getTax.Handle).Methods(http.MethodGet)
	api.HandleFunc("/occupancy", getOccupancy.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", saveReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/check-in", checkIn.Handle).Methods(http.MethodPost)

	// --- Комнаты и расселение ---
	protected.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/assign", assignRoom.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/check-out", checkOut.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{roomKey}/beds", updateRoomBeds.Handle).Methods(http.MethodPatch)

	// --- Гости и настройки ---
	protected.HandleFunc("/guests/{guestId}", updateGuest.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/settings/tax", updateTax.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
