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
	"github.com/redis/go-redis/v9"

	createPaymentOrderHandler "github.com/wildgrove/resort-booking-service/internal/api/handlers/create_payment_order"
	createReservationHandler "github.com/wildgrove/resort-booking-service/internal/api/handlers/create_reservation"
	getReservationHandler "github.com/wildgrove/resort-booking-service/internal/api/handlers/get_reservation"
	quoteStayHandler "github.com/wildgrove/resort-booking-service/internal/api/handlers/quote_stay"
	searchRoomsHandler "github.com/wildgrove/resort-booking-service/internal/api/handlers/search_rooms"
	verifyPaymentHandler "github.com/wildgrove/resort-booking-service/internal/api/handlers/verify_payment"
	"github.com/wildgrove/resort-booking-service/internal/api/middleware"
	"github.com/wildgrove/resort-booking-service/internal/config"
	"github.com/wildgrove/resort-booking-service/internal/infra/cache/quotecache"
	reservationRepo "github.com/wildgrove/resort-booking-service/internal/infra/storage/reservation"
	ezeeClient "github.com/wildgrove/resort-booking-service/internal/integrations/ezee"
	razorpayClient "github.com/wildgrove/resort-booking-service/internal/integrations/razorpay"
	reservationsService "github.com/wildgrove/resort-booking-service/internal/service/reservations"
	createPaymentOrderUC "github.com/wildgrove/resort-booking-service/internal/usecase/create_payment_order"
	createReservationUC "github.com/wildgrove/resort-booking-service/internal/usecase/create_reservation"
	quoteStayUC "github.com/wildgrove/resort-booking-service/internal/usecase/quote_stay"
	searchRoomsUC "github.com/wildgrove/resort-booking-service/internal/usecase/search_rooms"
	"github.com/wildgrove/resort-booking-service/pkg/logger"
	"github.com/wildgrove/resort-booking-service/pkg/metrics"
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

	log.Info("Starting resort-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем интеграционных клиентов
	pmsClient := ezeeClient.NewClient(
		cfg.Ezee.URL,
		cfg.Ezee.HotelCode,
		cfg.Ezee.AuthCode,
		time.Duration(cfg.Ezee.Timeout)*time.Second,
		log,
	)
	gatewayClient := razorpayClient.NewClient(
		cfg.Razorpay.URL,
		cfg.Razorpay.KeyID,
		cfg.Razorpay.KeySecret,
		time.Duration(cfg.Razorpay.Timeout)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		pmsClient = pmsClient.WithMetrics(metricsCollector)
	}
	log.Info("Integration clients initialized (eZee=%s timeout=%ds, Razorpay=%s timeout=%ds)",
		cfg.Ezee.URL, cfg.Ezee.Timeout, cfg.Razorpay.URL, cfg.Razorpay.Timeout)

	// Кеш расчетов в Redis. Пустой addr выключает кеширование
	var quoteCache quoteStayUC.QuoteCache = quoteStayUC.NopCache{}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		cache := quotecache.New(rdb, time.Duration(cfg.Redis.QuoteTTLSec)*time.Second, log)
		if cfg.Metrics.Enabled {
			cache = cache.WithMetrics(metricsCollector)
		}
		quoteCache = cache
		log.Info("Quote cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.QuoteTTLSec)
	} else {
		log.Info("Quote cache disabled: redis addr is empty")
	}

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(db)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		gatewayClient,
		log,
	)

	// Инициализируем use cases
	searchRoomsUseCase := searchRoomsUC.NewUseCase(pmsClient, log)
	quoteStayUseCase := quoteStayUC.NewUseCase(quoteCache, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		pmsClient,
		reservationRepository,
		log,
	)
	createPaymentOrderUseCase := createPaymentOrderUC.NewUseCase(
		reservationRepository,
		gatewayClient,
		log,
	)

	// Инициализируем handlers
	searchRooms := searchRoomsHandler.NewHandler(searchRoomsUseCase, log)
	quoteStay := quoteStayHandler.NewHandler(quoteStayUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	createPaymentOrder := createPaymentOrderHandler.NewHandler(createPaymentOrderUseCase, log)
	verifyPayment := verifyPaymentHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Шаги мастера бронирования
	api.HandleFunc("/rooms/search", searchRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quotes", quoteStay.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Сохраненные бронирования
	api.HandleFunc("/reservations", getReservation.HandleByEmail).
		Methods(http.MethodGet).Queries("email", "{email}")
	api.HandleFunc("/reservations/{reservationNo}", getReservation.Handle).Methods(http.MethodGet)

	// Оплата
	api.HandleFunc("/reservations/{reservationNo}/payment-order",
		createPaymentOrder.Handle).Methods(http.MethodPost)
	api.HandleFunc("/payments/verify", verifyPayment.Handle).Methods(http.MethodPost)

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
