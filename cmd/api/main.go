package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sujin-dev/revu-manager-api/infrastructure/database/postgres"
	"github.com/sujin-dev/revu-manager-api/infrastructure/repository"
	"github.com/sujin-dev/revu-manager-api/internal/api"
	"github.com/sujin-dev/revu-manager-api/internal/config"
	"github.com/sujin-dev/revu-manager-api/internal/scheduler"
	"github.com/sujin-dev/revu-manager-api/internal/usecases/authenticating"
	"github.com/sujin-dev/revu-manager-api/internal/usecases/managing"
	"github.com/sujin-dev/revu-manager-api/internal/usecases/statistics"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	extraIncomeRepo := repository.NewExtraIncomeRepository(pgConn)
	snapshotRepo := repository.NewStatSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	managingService := managing.NewService(campaignRepo, extraIncomeRepo)

	statsService := statistics.NewService(campaignRepo, extraIncomeRepo)
	if cfg.StatsCache.Enabled {
		statsService = statsService.WithCache(cfg.StatsCache.TTL)
	}

	snapshotSyncService := scheduler.NewSnapshotSyncService(
		userRepo,
		snapshotRepo,
		statsService,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start snapshot sync scheduler")
	} else {
		logrus.Info("snapshot sync scheduler started")
	}

	server, err := api.New(
		cfg,
		statsService,
		managingService,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
