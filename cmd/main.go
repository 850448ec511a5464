package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	cancelBookingHandler "github.com/m04kA/SMC-AdvisingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-AdvisingService/internal/api/handlers/create_booking"
	getAllBookingsHandler "github.com/m04kA/SMC-AdvisingService/internal/api/handlers/get_all_bookings"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AdvisingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-AdvisingService/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/m04kA/SMC-AdvisingService/internal/api/handlers/get_catalog"
	getCourseDetailsHandler "github.com/m04kA/SMC-AdvisingService/internal/api/handlers/get_course_details"
	getStatisticsHandler "github.com/m04kA/SMC-AdvisingService/internal/api/handlers/get_statistics"
	getStudentBookingsHandler "github.com/m04kA/SMC-AdvisingService/internal/api/handlers/get_student_bookings"
	"github.com/m04kA/SMC-AdvisingService/internal/api/middleware"
	"github.com/m04kA/SMC-AdvisingService/internal/config"
	inventoryRepo "github.com/m04kA/SMC-AdvisingService/internal/infra/storage/inventory"
	ledgerRepo "github.com/m04kA/SMC-AdvisingService/internal/infra/storage/ledger"
	bookingsService "github.com/m04kA/SMC-AdvisingService/internal/service/bookings"
	statisticsService "github.com/m04kA/SMC-AdvisingService/internal/service/statistics"
	createBookingUC "github.com/m04kA/SMC-AdvisingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-AdvisingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AdvisingService/pkg/logger"
	"github.com/m04kA/SMC-AdvisingService/pkg/metrics"
	"github.com/m04kA/SMC-AdvisingService/pkg/txmanager"
)

func main() {
	configPath := pflag.StringP("config", "c", "config.toml", "path to TOML config file")
	pflag.Parse()

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

	log.Info("Starting SMC-AdvisingService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	app := newApp(cfg, metricsCollector, log)
	log.Info("Catalog loaded: courses=%d, dates=%d, times=%d, slot max=%d",
		len(cfg.Catalog.Courses), len(cfg.Catalog.Dates), len(cfg.Catalog.Times), cfg.Catalog.SlotMaxStudents)

	if cfg.Metrics.Enabled {
		metrics.StartCapacityCollector(
			metricsCollector,
			app.statistics,
			time.Duration(cfg.Metrics.CollectIntervalSeconds)*time.Second,
			stopMetricsCh,
			log,
		)
		log.Info("Capacity metrics collection started")
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      app.router,
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

	// Останавливаем сбор метрик загрузки
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

// appLogger логгер, который нужен всем слоям приложения
type appLogger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// metricsRecorder счетчики исходов записи и отмены
type metricsRecorder interface {
	RecordBooking(outcome string)
	RecordCancellation(outcome string)
}

type app struct {
	router     *mux.Router
	statistics *statisticsService.Service
}

// newApp собирает хранилища, сервисы, use cases и роутер.
// metricsCollector == nil означает, что метрики выключены
func newApp(cfg *config.Config, metricsCollector *metrics.Metrics, log appLogger) *app {
	// Хранилища в памяти: состояние живет до перезапуска процесса
	inventory := inventoryRepo.NewRepository(cfg.Catalog.ToDomainCatalog())
	ledger := ledgerRepo.NewRepository()
	txMgr := txmanager.NewTransactionManager()

	var recorder metricsRecorder = metrics.Noop{}
	if metricsCollector != nil {
		recorder = metricsCollector
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(ledger, inventory, txMgr, recorder, log)
	statisticsSvc := statisticsService.NewService(ledger, inventory, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(ledger, inventory, txMgr, recorder, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(inventory, txMgr, log)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(inventory, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getStudentBookings := getStudentBookingsHandler.NewHandler(bookingSvc, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	getStatistics := getStatisticsHandler.NewHandler(statisticsSvc, log)
	getCourseDetails := getCourseDetailsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	// Добавляем metrics middleware (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// STUDENT ROUTES (без пароля)
	// ============================================================

	// Каталог и доступность
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Запись, просмотр и отмена
	api.HandleFunc("/appointments", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// Поиск записей по имени студента
	api.HandleFunc("/students/appointments", getStudentBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/students/{studentName}/appointments", getStudentBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// FACULTY ROUTES (требуют X-Faculty-Password header)
	// ============================================================

	faculty := api.PathPrefix("/faculty").Subrouter()
	faculty.Use(middleware.FacultyAuth(cfg.Faculty.Password, log))

	faculty.HandleFunc("/appointments", getAllBookings.Handle).Methods(http.MethodGet)
	faculty.HandleFunc("/statistics", getStatistics.Handle).Methods(http.MethodGet)
	faculty.HandleFunc("/courses/{courseName}", getCourseDetails.Handle).Methods(http.MethodGet)

	return &app{
		router:     r,
		statistics: statisticsSvc,
	}
}
