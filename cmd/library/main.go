package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"libris/internal/library/adapters/cache"
	httpserver "libris/internal/library/adapters/http"
	"libris/internal/library/adapters/postgres"
	"libris/internal/library/adapters/services"
	"libris/internal/library/app"
	"libris/internal/library/config"
	db "libris/pkg/db/postgres"
	"libris/pkg/logger"
	"libris/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "LIBRARY_LOGGER_MODE"
	EnvLoggerLevel = "LIBRARY_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrApplyMigrations      = "failed to apply database migrations"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "library service started"
	LogServiceShutdownDone = "library service shutdown complete"
	LogInitRepo            = "initializing repositories"
	LogInitCache           = "initializing session cache"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingDB           = "closing database connection"
	LogClosingCache        = "closing session cache"
)

const migrationsPath = "file://migrations/library"

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		database, err := db.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		if err := db.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), migrationsPath); err != nil {
			log.Error(ctx, ErrApplyMigrations, zap.Error(err))
			database.Close(ctx)
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		repoFactory := postgres.NewRepositoryFactory(database.Pool())

		log.Info(ctx, LogInitCache)
		sessionCache, err := cache.NewRedisCache(ctx, &cfg.Redis)
		if err != nil {
			log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
			database.Close(ctx)
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitServices)
		serviceFactory := services.NewServiceFactory(
			cfg.Auth.SecretKey,
			cfg.Auth.GetTokenTTL(),
			cfg.Auth.BCryptCost,
		)

		log.Info(ctx, LogInitUseCases)
		useCases := httpserver.UseCases{
			Auth: app.NewAuthUseCase(
				repoFactory.LibrarianRepository(),
				serviceFactory.TokenService(),
				serviceFactory.PasswordService(),
				sessionCache,
			),
			Book: app.NewBookUseCase(repoFactory.BookRepository()),
			User: app.NewUserUseCase(repoFactory.UserRepository(), repoFactory.LoanRepository()),
			Loan: app.NewLoanUseCase(
				repoFactory.LoanRepository(),
				repoFactory.BookRepository(),
				repoFactory.UserRepository(),
				cfg.Loan.DurationDays,
			),
			Reservation: app.NewReservationUseCase(
				repoFactory.ReservationRepository(),
				repoFactory.BookRepository(),
				repoFactory.UserRepository(),
			),
			Search: app.NewSearchUseCase(repoFactory.SearchRepository()),
			Report: app.NewReportUseCase(
				repoFactory.ReportRepository(),
				repoFactory.OverdueRecordRepository(),
			),
		}

		log.Info(ctx, LogInitHTTPServer)
		jsonCodec := jsoniter.ConfigCompatibleWithStandardLibrary
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			JSONEncoder:  jsonCodec.Marshal,
			JSONDecoder:  jsonCodec.Unmarshal,
		})

		httpserver.SetupRouter(fiberApp, useCases)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.Shutdown()
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingCache)
				return sessionCache.Close()
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDB)
				database.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
