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
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	adminBookingActionHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/admin_booking_action"
	authHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/auth"
	bookingsHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/bookings"
	couponsHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/coupons"
	forceBlockHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/force_block"
	galleryHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/gallery"
	getDashboardStatsHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/get_dashboard_stats"
	getSlotsHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/get_slots"
	initiateBookingHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/initiate_booking"
	manualBookingHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/manual_booking"
	reviewsHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/reviews"
	savePricingHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/save_pricing"
	usersHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/users"
	validateCouponHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/validate_coupon"
	venueHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/venue"
	verifyPaymentHandler "github.com/m04kA/TurfBookingService/internal/api/handlers/verify_payment"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	"github.com/m04kA/TurfBookingService/internal/config"
	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/infra/cache/otp"
	blockLogRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/blocklog"
	couponRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/coupon"
	galleryRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/gallery"
	pricingRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/pricing"
	reservationRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/reservation"
	reviewRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/review"
	settingRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/setting"
	statsRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/stats"
	userRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/user"
	"github.com/m04kA/TurfBookingService/internal/integrations/eventbus"
	"github.com/m04kA/TurfBookingService/internal/integrations/mailer"
	"github.com/m04kA/TurfBookingService/internal/integrations/mediastore"
	"github.com/m04kA/TurfBookingService/internal/integrations/razorpay"
	"github.com/m04kA/TurfBookingService/internal/integrations/smsgateway"
	"github.com/m04kA/TurfBookingService/internal/jobs"
	authService "github.com/m04kA/TurfBookingService/internal/service/auth"
	"github.com/m04kA/TurfBookingService/internal/service/availability"
	bookingsService "github.com/m04kA/TurfBookingService/internal/service/bookings"
	couponsService "github.com/m04kA/TurfBookingService/internal/service/coupons"
	galleryService "github.com/m04kA/TurfBookingService/internal/service/gallery"
	reviewsService "github.com/m04kA/TurfBookingService/internal/service/reviews"
	usersService "github.com/m04kA/TurfBookingService/internal/service/users"
	venueService "github.com/m04kA/TurfBookingService/internal/service/venue"
	adminBookingActionUC "github.com/m04kA/TurfBookingService/internal/usecase/admin_booking_action"
	forceBlockUC "github.com/m04kA/TurfBookingService/internal/usecase/force_block"
	getDashboardStatsUC "github.com/m04kA/TurfBookingService/internal/usecase/get_dashboard_stats"
	getSlotsUC "github.com/m04kA/TurfBookingService/internal/usecase/get_slots"
	initiateBookingUC "github.com/m04kA/TurfBookingService/internal/usecase/initiate_booking"
	manualBookingUC "github.com/m04kA/TurfBookingService/internal/usecase/manual_booking"
	savePricingUC "github.com/m04kA/TurfBookingService/internal/usecase/save_pricing"
	validateCouponUC "github.com/m04kA/TurfBookingService/internal/usecase/validate_coupon"
	verifyPaymentUC "github.com/m04kA/TurfBookingService/internal/usecase/verify_payment"
	"github.com/m04kA/TurfBookingService/pkg/dbmetrics"
	"github.com/m04kA/TurfBookingService/pkg/jwttoken"
	"github.com/m04kA/TurfBookingService/pkg/logger"
	"github.com/m04kA/TurfBookingService/pkg/metrics"
	"github.com/m04kA/TurfBookingService/pkg/simpletxmanager"
	"github.com/m04kA/TurfBookingService/pkg/txmanager"
)

// txManager общий интерфейс txmanager и simpletxmanager
type txManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting TurfBookingService...")

	// Метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// База данных
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

	// Репозитории и менеджер транзакций (с метриками или без)
	var (
		executor dbmetrics.DBExecutor
		txMgr    txManager
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		executor = db
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	reservationRepository := reservationRepo.NewRepository(executor)
	pricingRepository := pricingRepo.NewRepository(executor)
	couponRepository := couponRepo.NewRepository(executor)
	userRepository := userRepo.NewRepository(executor)
	settingRepository := settingRepo.NewRepository(executor)
	blockLogRepository := blockLogRepo.NewRepository(executor)
	reviewRepository := reviewRepo.NewRepository(executor)
	galleryRepository := galleryRepo.NewRepository(executor)
	statsRepository := statsRepo.NewRepository(sqlx.NewDb(db, "postgres"))

	// Redis: OTP и rate limit
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis is not reachable at %s: %v (OTP and rate limiting will fail until it is)", cfg.Redis.Addr, err)
	}
	pingCancel()

	otpCache := otp.NewCache(rdb, cfg.Auth.OTPDuration(), cfg.Auth.OTPAttempts)

	// Интеграции
	paymentClient := razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.Currency, log)
	tokenIssuer := jwttoken.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration())

	// Опциональные каналы присваиваются только при включении, чтобы интерфейсы оставались nil
	var (
		otpMailer     authService.OTPMailer
		receiptMailer verifyPaymentUC.ReceiptMailer
		refundMailer  adminBookingActionUC.RefundMailer
		smsSender     authService.SMSSender
		messenger     verifyPaymentUC.Messenger
		events        verifyPaymentUC.EventPublisher
		media         galleryService.MediaStore
	)

	if cfg.SMTP.Enabled {
		dialer := mailer.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
		m := mailer.New(dialer, cfg.SMTP.From, cfg.Booking.TurfName, cfg.Auth.OTPDuration(), log)
		otpMailer, receiptMailer, refundMailer = m, m, m
		log.Info("SMTP mailer enabled (host=%s:%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	}

	if cfg.SMS.Enabled {
		sms := smsgateway.NewClient(
			cfg.SMS.BaseURL,
			cfg.SMS.AccountSID,
			cfg.SMS.AuthToken,
			cfg.SMS.From,
			time.Duration(cfg.SMS.Timeout)*time.Second,
			log,
		)
		smsSender, messenger = sms, sms
		log.Info("SMS gateway enabled (timeout=%ds)", cfg.SMS.Timeout)
	}

	if cfg.RabbitMQ.Enabled {
		publisher, err := eventbus.Dial(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, log)
		if err != nil {
			log.Error("Failed to connect to RabbitMQ, booking events disabled: %v", err)
		} else {
			defer publisher.Close()
			events = publisher
			log.Info("Booking events published to exchange %s", cfg.RabbitMQ.Exchange)
		}
	}

	if cfg.Cloudinary.CloudName != "" {
		store, err := mediastore.New(
			cfg.Cloudinary.CloudName,
			cfg.Cloudinary.APIKey,
			cfg.Cloudinary.APISecret,
			cfg.Cloudinary.Folder,
			log,
		)
		if err != nil {
			log.Error("Failed to initialize media storage, uploads disabled: %v", err)
		} else {
			media = store
			log.Info("Media storage enabled (folder=%s)", cfg.Cloudinary.Folder)
		}
	}

	// Сервисы
	defaultPrice := cfg.Booking.DefaultSlotPrice
	guard := availability.NewGuard(reservationRepository, metricsCollector, log)

	scheduler := jobs.NewScheduler(guard, 30*time.Second, log)
	if err := scheduler.Start(cfg.Booking.SweepSchedule); err != nil {
		log.Fatal("Failed to start cron jobs: %v", err)
	}

	authSvc := authService.NewService(
		userRepository,
		reservationRepository,
		otpCache,
		tokenIssuer,
		authService.Channels{
			SMS:      smsSender,
			Mailer:   otpMailer,
			TurfName: cfg.Booking.TurfName,
			OTPTTL:   cfg.Auth.OTPDuration(),
		},
		log,
	)
	bookingsSvc := bookingsService.NewService(reservationRepository, log)
	couponsSvc := couponsService.NewService(couponRepository, log)
	gallerySvc := galleryService.NewService(galleryRepository, media, log)
	reviewsSvc := reviewsService.NewService(reviewRepository, userRepository, log)
	usersSvc := usersService.NewService(userRepository, log)
	venueSvc := venueService.NewService(
		pricingRepository,
		reservationRepository,
		settingRepository,
		blockLogRepository,
		guard,
		txMgr,
		defaultPrice,
		log,
	)

	// Use cases
	getSlotsUseCase := getSlotsUC.NewUseCase(pricingRepository, reservationRepository, guard, defaultPrice, log)
	initiateBookingUseCase := initiateBookingUC.NewUseCase(
		reservationRepository,
		pricingRepository,
		couponRepository,
		paymentClient,
		guard,
		metricsCollector,
		txMgr,
		defaultPrice,
		log,
	)
	verifyPaymentUseCase := verifyPaymentUC.NewUseCase(
		reservationRepository,
		couponRepository,
		paymentClient,
		txMgr,
		verifyPaymentUC.Notifications{
			Mailer:    receiptMailer,
			Messenger: messenger,
			Events:    events,
			TurfName:  cfg.Booking.TurfName,
		},
		metricsCollector,
		log,
	)
	validateCouponUseCase := validateCouponUC.NewUseCase(couponRepository, log)
	savePricingUseCase := savePricingUC.NewUseCase(pricingRepository, txMgr, log)
	forceBlockUseCase := forceBlockUC.NewUseCase(
		reservationRepository,
		pricingRepository,
		blockLogRepository,
		metricsCollector,
		txMgr,
		defaultPrice,
		log,
	)
	manualBookingUseCase := manualBookingUC.NewUseCase(reservationRepository, guard, txMgr, log)
	adminBookingActionUseCase := adminBookingActionUC.NewUseCase(
		userRepository,
		reservationRepository,
		paymentClient,
		refundMailer,
		cfg.Booking.TurfName,
		log,
	)
	getDashboardStatsUseCase := getDashboardStatsUC.NewUseCase(statsRepository, pricingRepository, log)

	// Handlers
	getSlots := getSlotsHandler.NewHandler(getSlotsUseCase, log)
	initiateBooking := initiateBookingHandler.NewHandler(initiateBookingUseCase, log)
	verifyPayment := verifyPaymentHandler.NewHandler(verifyPaymentUseCase, log)
	validateCoupon := validateCouponHandler.NewHandler(validateCouponUseCase, log)
	savePricing := savePricingHandler.NewHandler(savePricingUseCase, log)
	forceBlock := forceBlockHandler.NewHandler(forceBlockUseCase, userRepository, log)
	manualBooking := manualBookingHandler.NewHandler(manualBookingUseCase, log)
	adminCancel := adminBookingActionHandler.NewHandler(adminBookingActionUseCase, adminBookingActionUC.ActionCancel, log)
	adminRefund := adminBookingActionHandler.NewHandler(adminBookingActionUseCase, adminBookingActionUC.ActionRefund, log)
	dashboard := getDashboardStatsHandler.NewHandler(getDashboardStatsUseCase, log)

	authH := authHandler.NewHandler(authSvc, log)
	bookingsH := bookingsHandler.NewHandler(bookingsSvc, log)
	couponsH := couponsHandler.NewHandler(couponsSvc, log)
	galleryH := galleryHandler.NewHandler(gallerySvc, log)
	reviewsH := reviewsHandler.NewHandler(reviewsSvc, log)
	usersH := usersHandler.NewHandler(usersSvc, log)
	venueH := venueHandler.NewHandler(venueSvc, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(rdb, cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, log)
		api.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (%d req/min, burst=%d)", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	requireAuth := middleware.Auth(tokenIssuer)

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/bookings/slots", getSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/public/slots", getSlots.Handle).Methods(http.MethodGet)
	api.Handle("/bookings/initiate",
		middleware.OptionalAuth(tokenIssuer)(http.HandlerFunc(initiateBooking.Handle))).Methods(http.MethodPost)
	api.HandleFunc("/bookings/verify", verifyPayment.Handle).Methods(http.MethodPost)
	api.Handle("/bookings/validate-coupon",
		requireAuth(http.HandlerFunc(validateCoupon.Handle))).Methods(http.MethodPost)

	api.HandleFunc("/public/info", venueH.GetTurfInfo).Methods(http.MethodGet)
	api.HandleFunc("/public/settings", venueH.GetSettings).Methods(http.MethodGet)
	api.HandleFunc("/public/gallery", galleryH.ListImages).Methods(http.MethodGet)

	api.HandleFunc("/reviews", reviewsH.List).Methods(http.MethodGet)
	api.Handle("/reviews", requireAuth(http.HandlerFunc(reviewsH.Create))).Methods(http.MethodPost)

	// ============================================================
	// AUTH ROUTES
	// ============================================================

	authRoutes := api.PathPrefix("/auth").Subrouter()
	authRoutes.HandleFunc("/send-otp", authH.SendRegisterOTP).Methods(http.MethodPost)
	authRoutes.HandleFunc("/register", authH.Register).Methods(http.MethodPost)
	authRoutes.HandleFunc("/login", authH.Login).Methods(http.MethodPost)
	authRoutes.HandleFunc("/login/otp/send", authH.SendLoginOTP).Methods(http.MethodPost)
	authRoutes.HandleFunc("/login/otp/verify", authH.VerifyLoginOTP).Methods(http.MethodPost)
	authRoutes.HandleFunc("/forgot-password/initiate", authH.ForgotPasswordInitiate).Methods(http.MethodPost)
	authRoutes.HandleFunc("/forgot-password/reset", authH.ForgotPasswordReset).Methods(http.MethodPost)

	authProtected := authRoutes.PathPrefix("").Subrouter()
	authProtected.Use(requireAuth)
	authProtected.HandleFunc("/me", authH.Me).Methods(http.MethodGet)
	authProtected.HandleFunc("/email/otp/send", authH.SendEmailOTP).Methods(http.MethodPost)
	authProtected.HandleFunc("/email/otp/verify", authH.VerifyEmailOTP).Methods(http.MethodPost)

	// ============================================================
	// USER ROUTES (любой авторизованный пользователь)
	// ============================================================

	user := api.PathPrefix("/user").Subrouter()
	user.Use(requireAuth)
	user.HandleFunc("/bookings", bookingsH.GetUserBookings).Methods(http.MethodGet)
	user.HandleFunc("/bookings/{id}/cancel", bookingsH.CancelByUser).Methods(http.MethodPost)
	user.HandleFunc("/profile", usersH.UpdateProfile).Methods(http.MethodPut)

	// ============================================================
	// WATCHMAN ROUTES
	// ============================================================

	watchman := api.PathPrefix("/watchman").Subrouter()
	watchman.Use(requireAuth, middleware.RequireRole(domain.RoleWatchman, domain.RoleAdmin))
	watchman.HandleFunc("/today", bookingsH.GetTodayConfirmed).Methods(http.MethodGet)
	watchman.HandleFunc("/bookings/{id}/arrive", bookingsH.MarkArrived).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(requireAuth, middleware.RequireRole(domain.RoleAdmin))

	admin.HandleFunc("/dashboard", dashboard.Handle).Methods(http.MethodGet)

	// --- Настройки ---
	admin.HandleFunc("/settings", venueH.GetSettings).Methods(http.MethodGet)
	admin.HandleFunc("/settings", venueH.UpdateSettings).Methods(http.MethodPost)

	// --- Купоны ---
	admin.HandleFunc("/coupons", couponsH.List).Methods(http.MethodGet)
	admin.HandleFunc("/coupons", couponsH.Create).Methods(http.MethodPost)
	admin.HandleFunc("/coupons/{id}", couponsH.Delete).Methods(http.MethodDelete)

	// --- Цены и блокировки ---
	admin.HandleFunc("/pricing", venueH.GetPricingView).Methods(http.MethodGet)
	admin.HandleFunc("/pricing", savePricing.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/pricing/force-toggle", forceBlock.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/pricing/logs", venueH.GetBlockLogs).Methods(http.MethodGet)
	admin.HandleFunc("/pricing/import-legacy", venueH.ImportLegacyPricing).Methods(http.MethodPost)

	// --- Галерея ---
	admin.HandleFunc("/gallery", galleryH.AddImage).Methods(http.MethodPost)
	admin.HandleFunc("/gallery/categories", galleryH.ListCategories).Methods(http.MethodGet)
	admin.HandleFunc("/gallery/categories", galleryH.CreateCategory).Methods(http.MethodPost)
	admin.HandleFunc("/gallery/{id}", galleryH.DeleteImage).Methods(http.MethodDelete)

	// --- Пользователи ---
	admin.HandleFunc("/users", usersH.List).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/toggle-status", usersH.ToggleStatus).Methods(http.MethodPut)
	admin.HandleFunc("/watchman", usersH.CreateWatchman).Methods(http.MethodPost)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", bookingsH.List).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/manual", manualBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id}/cancel", adminCancel.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{id}/refund", adminRefund.Handle).Methods(http.MethodPut)

	// HTTP сервер
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	scheduler.Stop(shutdownCtx)

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
