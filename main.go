package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/cron"
	"doctorsportal/database"
	bookingRepo "doctorsportal/database/repository/booking"
	doctorRepo "doctorsportal/database/repository/doctor"
	memoryRepo "doctorsportal/database/repository/memory"
	paymentRepo "doctorsportal/database/repository/payment"
	serviceRepo "doctorsportal/database/repository/service"
	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/auth"
	"doctorsportal/services/availability"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/notification"
	"doctorsportal/services/payment"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const roleCacheTTL = 5 * time.Minute

type repositories struct {
	services serviceRepo.ServiceRepository
	bookings bookingRepo.BookingRepository
	users    userRepo.UserRepository
	doctors  doctorRepo.DoctorRepository
	payments paymentRepo.PaymentRepository
}

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	ctx := context.Background()
	checks := map[string]utils.HealthCheck{}

	// Storage.
	var (
		repos       repositories
		mongoClient *mongo.Client
	)
	switch config.AppConfig.StorageDriver {
	case "memory":
		store := memoryRepo.NewStore()
		store.SeedServices(memoryRepo.DefaultCatalog()...)
		repos = repositories{
			services: store.Services(),
			bookings: store.Bookings(),
			users:    store.Users(),
			doctors:  store.Doctors(),
			payments: store.Payments(),
		}
		logger.Warn("main: using in-memory storage; data is lost on restart")
	default:
		client, db, err := database.Connect(ctx, config.AppConfig.DatabaseURL, config.AppConfig.DatabaseName)
		if err != nil {
			logger.Fatal("main: database connection failed", zap.Error(err))
		}
		mongoClient = client
		checks["mongo"] = database.Ping(client)
		if config.AppConfig.SeedCatalog {
			if n, err := serviceRepo.SeedIfEmpty(ctx, db, memoryRepo.DefaultCatalog()); err != nil {
				logger.Warn("main: catalog seeding failed", zap.Error(err))
			} else if n > 0 {
				logger.Info("main: seeded service catalog", zap.Int("services", n))
			}
		}
		repos = repositories{
			services: serviceRepo.NewMongoServiceRepo(db),
			bookings: bookingRepo.NewMongoBookingRepo(ctx, db),
			users:    userRepo.NewMongoUserRepo(ctx, db),
			doctors:  doctorRepo.NewMongoDoctorRepo(db),
			payments: paymentRepo.NewMongoPaymentRepo(db),
		}
	}

	// Auth.
	tokens, err := auth.NewTokenService(config.AppConfig.JWTSecret, config.AppConfig.TokenTTL)
	if err != nil {
		logger.Fatal("main: token service", zap.Error(err))
	}
	if err := utils.InitCache(); err != nil {
		logger.Fatal("main: redis cache", zap.Error(err))
	}
	var roleCache auth.RoleCache
	if cacheClient := utils.GetCacheClient(); cacheClient != nil {
		roleCache = auth.NewRedisRoleCache(cacheClient, roleCacheTTL)
		checks["redis"] = func(ctx context.Context) error { return cacheClient.Ping(ctx).Err() }
	}
	gate := auth.NewRoleGate(repos.users, roleCache, logger)

	// Booking notifications.
	var mailer notification.Mailer = notification.LogMailer{Logger: logger}
	if config.AppConfig.SendGridAPIKey != "" {
		mailer = notification.NewSendGridMailer(config.AppConfig.SendGridAPIKey,
			config.AppConfig.SendGridFromName, config.AppConfig.SendGridFromEmail, logger)
	}
	bus := booking.NewEventBus(logger)
	var (
		queue  *asynq.Client
		worker *cron.ConfirmationWorker
	)
	if config.RedisEnabled() {
		queue = asynq.NewClient(cron.RedisOpt())
		bus.Subscribe("confirmation-outbox", cron.ConfirmationOutbox(queue))
		worker = cron.NewConfirmationWorker(cron.RedisOpt(), mailer, logger)
		worker.Start()
	} else {
		bus.Subscribe("confirmation-mail", cron.DirectMailer(mailer))
	}

	// Services.
	userService := &user.DefaultUserService{Repo: repos.users, Tokens: tokens, Roles: gate, Logger: logger}
	doctorService := &doctor.DefaultDoctorService{Repo: repos.doctors, Logger: logger}
	paymentService := &payment.DefaultPaymentService{
		Intents:  payment.NewStripeIntents(config.AppConfig.StripeKey),
		Payments: repos.payments,
		Bookings: repos.bookings,
		Logger:   logger,
	}
	arbiter := booking.NewArbiter(repos.bookings, bus, logger)
	engine := availability.NewEngine(repos.services, repos.bookings)

	handlerBundle := &handlers.HandlerBundle{
		Tokens:         tokens,
		Gate:           gate,
		CatalogHandler: handlers.NewCatalogHandler(repos.services, engine),
		BookingHandler: handlers.NewBookingHandler(arbiter),
		UserHandler:    handlers.NewUserHandler(userService),
		AdminHandler:   handlers.NewAdminHandler(userService, doctorService),
		PaymentHandler: handlers.NewPaymentHandler(paymentService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	router.Use(middleware.RequestLogger(logger))
	routes.RegisterRoutes(router, handlerBundle)

	monitor, err := utils.StartHealthMonitor(config.AppConfig.HealthSchedule, checks)
	if err != nil {
		logger.Fatal("main: health monitor", zap.Error(err))
	}

	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	<-monitor.Stop().Done()
	bus.Wait()
	if worker != nil {
		worker.Shutdown()
	}
	if queue != nil {
		_ = queue.Close()
	}
	if mongoClient != nil {
		_ = mongoClient.Disconnect(shutdownCtx)
	}

	logger.Info("main: server stopped gracefully")
}
