package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/lmittmann/tint"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"

	"github.com/getsentry/sentry-go"

	classesDelivery "github.com/SlavaShagalov/camp-enroll/internal/classes/delivery"
	classesRepository "github.com/SlavaShagalov/camp-enroll/internal/classes/repository"
	classesUsecase "github.com/SlavaShagalov/camp-enroll/internal/classes/usecase"
	enrollmentsDelivery "github.com/SlavaShagalov/camp-enroll/internal/enrollments/delivery"
	enrollmentsRepository "github.com/SlavaShagalov/camp-enroll/internal/enrollments/repository"
	enrollmentsUsecase "github.com/SlavaShagalov/camp-enroll/internal/enrollments/usecase"
	"github.com/SlavaShagalov/camp-enroll/internal/models"
	paymentsDelivery "github.com/SlavaShagalov/camp-enroll/internal/payments/delivery"
	paymentsGateway "github.com/SlavaShagalov/camp-enroll/internal/payments/gateway"
	paymentsUsecase "github.com/SlavaShagalov/camp-enroll/internal/payments/usecase"
	"github.com/SlavaShagalov/camp-enroll/internal/pkg/app"
	requestsDelivery "github.com/SlavaShagalov/camp-enroll/internal/requests/delivery"
	requestsRepository "github.com/SlavaShagalov/camp-enroll/internal/requests/repository"
	selectionsDelivery "github.com/SlavaShagalov/camp-enroll/internal/selections/delivery"
	selectionsRepository "github.com/SlavaShagalov/camp-enroll/internal/selections/repository"
	selectionsUsecase "github.com/SlavaShagalov/camp-enroll/internal/selections/usecase"
	"github.com/SlavaShagalov/camp-enroll/internal/tokens"
	tokensDelivery "github.com/SlavaShagalov/camp-enroll/internal/tokens/delivery"
	usersDelivery "github.com/SlavaShagalov/camp-enroll/internal/users/delivery"
	usersRepository "github.com/SlavaShagalov/camp-enroll/internal/users/repository"
	usersUsecase "github.com/SlavaShagalov/camp-enroll/internal/users/usecase"
	"github.com/SlavaShagalov/camp-enroll/pkg/migrations"
	"github.com/SlavaShagalov/camp-enroll/pkg/statistics"
)

type WebApp interface {
	Start() error
	Shutdown(ctx context.Context) error
}

func startApp(webApp WebApp, config app.Config, logger *slog.Logger) {
	logger.Debug(fmt.Sprintf("web app starts at %s", config.Web.Host+":"+config.Web.Port))

	go func() {
		err := webApp.Start()
		if err != nil {
			panic(err)
		}
	}()
}

func shutdownApp(webApp WebApp, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Debug("shutdown web app ...")

	const shutdownTimeout = time.Minute
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)

	err := webApp.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	cancel()
	logger.Debug("web app exited")
}

func main() {
	var configPath, migrationsPath string
	pflag.StringVarP(&configPath, "config", "c", "configs/server.yaml", "Config file path")
	pflag.StringVarP(&migrationsPath, "migrations", "", "migrations", "Migrations directory path")
	pflag.Parse()

	_ = godotenv.Load()

	config, err := app.ReadLocalConfig(configPath)
	if err != nil {
		panic(err)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.Level(config.Logging.Level)}))

	if config.Sentry.DSN != "" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:         config.Sentry.DSN,
			Environment: config.Sentry.Environment,
		})
		if err != nil {
			panic(err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	db, err := sqlx.Connect(config.DB.DriverName, config.DB.ConnectionString)
	if err != nil {
		panic(err)
	}

	err = migrations.Do(config.DB.ConnectionString, migrationsPath, logger)
	if err != nil {
		panic(err)
	}

	kafkaStatWriter := &kafka.Writer{
		Addr:                   kafka.TCP(config.Kafka.Addresses...),
		Topic:                  config.Kafka.Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	defer func() {
		err = multierr.Combine(kafkaStatWriter.Close(), db.Close())
		if err != nil {
			logger.Error(err.Error())
		}
	}()

	usersUC := usersUsecase.New(usersRepository.NewSqlxRepository(db, logger), logger)
	classesUC := classesUsecase.New(classesRepository.NewSqlxRepository(db, logger), logger)
	selectionsUC := selectionsUsecase.New(selectionsRepository.NewSqlxRepository(db, logger), logger)
	enrollmentsUC := enrollmentsUsecase.New(enrollmentsRepository.NewSqlxRepository(db, logger), logger)
	paymentsUC := paymentsUsecase.New(paymentsGateway.NewStripe(config.Stripe.SecretKey, logger), logger)

	tokenService := tokens.New(config.JWT.Secret, config.JWT.TTL)

	gate := app.Gate{
		Auth:         app.RequireAuth(tokenService, logger),
		OptionalAuth: app.OptionalAuth(tokenService, logger),
		Admin:        app.RequireRole(usersUC, models.RoleAdmin, logger),
		Instructor:   app.RequireRole(usersUC, models.RoleInstructor, logger),
	}

	requestsRepo := requestsRepository.NewSqlxRepository(db, logger)
	stat := statistics.NewKafkaStatistics(nil, kafkaStatWriter, logger, requestsRepo)
	statisticsMW, err := app.NewStatisticsMW(stat, logger)
	if err != nil {
		panic(err)
	}

	webApp := app.NewFiberApp(config.Web, gate, statisticsMW, logger, usersUC,
		tokensDelivery.New(tokenService, logger),
		usersDelivery.New(usersUC, logger),
		classesDelivery.New(classesUC, logger),
		selectionsDelivery.New(selectionsUC, logger),
		enrollmentsDelivery.New(enrollmentsUC, logger),
		paymentsDelivery.New(paymentsUC, logger),
		requestsDelivery.New(requestsRepo, logger),
	)

	startApp(webApp, config, logger)
	shutdownApp(webApp, logger)
}
