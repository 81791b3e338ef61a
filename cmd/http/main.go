package main

import (
	"context"
	"log"
	"medifind-service/internal/app/config"
	"medifind-service/internal/app/delivery/http/middlewares"
	"medifind-service/internal/app/delivery/http/routers"
	"medifind-service/internal/app/drivers/database"
	"medifind-service/internal/app/drivers/logger"
	"medifind-service/internal/app/drivers/messaging"
	"medifind-service/internal/app/drivers/storage"
	"medifind-service/internal/app/services/core/appointments"
	"medifind-service/internal/app/services/core/auth"
	"medifind-service/internal/app/services/core/bookings"
	"medifind-service/internal/app/services/core/doctors"
	"medifind-service/internal/app/services/core/profiles"
	"medifind-service/internal/app/services/shared/notifier"
	"medifind-service/internal/app/services/shared/redis"
	"medifind-service/internal/app/services/shared/session"
	minioStorage "medifind-service/internal/app/services/shared/storage"
	"medifind-service/internal/app/services/upstream/directory"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if err := bootstrapTheApp(bootstrap); err != nil {
		zapLogger.Fatal("Failed to bootstrap application", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) error {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	storageService := minioStorage.NewMinioStorage(bootstrap.Minio)

	notifierService, err := notifier.NewNotifierService(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.BookingQueue,
		bootstrap.InternalConfig.RabbitMQ.OTPQueue,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}

	// Upstream directory
	directoryClient := directory.NewDirectoryClient(
		bootstrap.InternalConfig.Directory.BaseUrl,
		time.Duration(bootstrap.InternalConfig.Directory.RequestTimeoutInSeconds)*time.Second,
		bootstrap.InternalConfig.Directory.MaxRequestsPerSecond,
		bootstrap.Logger,
	)

	// Doctors
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	doctorUsecase := doctors.NewDoctorUsecase(directoryClient, doctorRepository, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Appointments
	appointmentStore := appointments.NewAppointmentStore(redisRepository)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentStore, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Bookings
	bookingSessionRepository := bookings.NewBookingSessionRepository(
		redisRepository,
		time.Duration(bootstrap.InternalConfig.App.BookingSessionTTLInMinutes)*time.Minute,
	)
	bookingUsecase := bookings.NewBookingUsecase(
		bookingSessionRepository,
		doctorUsecase,
		appointmentStore,
		notifierService,
		directoryClient,
		bootstrap.Logger,
	)
	bookingController := bookings.NewBookingController(bootstrap.Logger, bookingUsecase)

	// Profiles
	profileStore := profiles.NewProfileStore(redisRepository)
	profileUsecase := profiles.NewProfileUsecase(profileStore, storageService, bootstrap.InternalConfig, bootstrap.Logger)
	profileController := profiles.NewProfileController(bootstrap.Logger, profileUsecase, bootstrap.InternalConfig)

	// Auth
	authUsecase := auth.NewAuthUsecase(redisRepository, sessionService, notifierService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Middlewares and routes
	mws := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)
	requestLogger := logger.NewLogrusLogger(bootstrap.InternalConfig)
	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		requestLogger,
		mws,
		doctorController,
		bookingController,
		appointmentController,
		profileController,
		authController,
	)

	return nil
}
