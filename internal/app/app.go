package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/watch-store/internal/cfg"
	v1Grpc "github.com/DRSN-tech/watch-store/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/watch-store/internal/delivery/v1/http"
	"github.com/DRSN-tech/watch-store/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/watch-store/internal/infrastructure/minio"
	s3Repo "github.com/DRSN-tech/watch-store/internal/repository/minio"
	"github.com/DRSN-tech/watch-store/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/watch-store/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/watch-store/internal/repository/redis"
	redisConv "github.com/DRSN-tech/watch-store/internal/repository/redis/converter"
	"github.com/DRSN-tech/watch-store/internal/usecase"
	"github.com/DRSN-tech/watch-store/pkg/clients"
	"github.com/DRSN-tech/watch-store/pkg/closer"
	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/DRSN-tech/watch-store/pkg/logger"
	"github.com/DRSN-tech/watch-store/pkg/postgres"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	initTimeout        = 10 * time.Second
	ensureTopicTimeout = 10 * time.Second
	cleanupWaitTimeout = 5 * time.Second
	forcedCloseTimeout = 2 * time.Second
)

// App собирает зависимости каталога и управляет их жизненным циклом.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	httpSrv     *v1Http.Server
	grpcSrv     *v1Grpc.GRPCServer
	outbox      *kafka.OutboxWorker
	imagesInfra *minioInfra.MinioInfrastructure

	// shutdownCtx отменяется при остановке и прерывает фоновую очистку MinIO
	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())
	a := &App{
		cfg:            cfg,
		logger:         log,
		closer:         closer.NewCloser(forcedCloseTimeout, log),
		shutdownCtx:    shutdownCtx,
		shutdownCancel: shutdownCancel,
	}

	if err := a.init(); err != nil {
		shutdownCancel()
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
		defer cancel()
		if closeErr := a.closer.Close(closeCtx); closeErr != nil {
			log.Warnf("%v", closeErr)
		}
		return nil, err
	}

	return a, nil
}

func (a *App) init() error {
	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	db, err := initPGDB(ctx, a.logger, a.cfg)
	if err != nil {
		return err
	}
	a.closer.AddFunc("postgres", db.Close)

	txManager := manager.Must(trmpgx.NewDefaultFactory(db.Pool))

	brandRepo := pgdb.NewBrandRepo(db.Pool, pgdbConv.BrandConverterImpl{})
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, pgdbConv.CategoryConverterImpl{})
	userRepo := pgdb.NewUserRepo(db.Pool, pgdbConv.UserConverterImpl{})
	productRepo := pgdb.NewProductRepo(db.Pool, pgdbConv.ProductConverterImpl{})
	productImageRepo := pgdb.NewProductImageRepo(db.Pool, pgdbConv.ProductConverterImpl{})
	accessoryRepo := pgdb.NewAccessoryRepo(db.Pool, pgdbConv.AccessoryConverterImpl{})
	accessoryImageRepo := pgdb.NewAccessoryImageRepo(db.Pool, pgdbConv.AccessoryConverterImpl{})
	likeRepo := pgdb.NewLikeRepo(db.Pool, pgdbConv.LikeConverterImpl{})
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, pgdbConv.OutboxEventConverterImpl{}, a.cfg.Outbox.ClaimTimeout)

	minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if err := clients.EnsureBucket(ctx, minioClient, a.cfg.Minio.BucketName); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	imageRepo := s3Repo.NewImageRepo(minioClient)
	a.imagesInfra = minioInfra.NewMinioInfrastructure(imageRepo, a.cfg.Minio, a.logger, a.shutdownCtx)

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	a.closer.Add("redis", func(context.Context) error { return redisClient.Close() })
	if err := redisClient.Ping(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	cacheRepo := redis.NewCacheRepo(redisClient, redisConv.CatalogConverterImpl{}, a.cfg.Redis, a.logger)

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	a.closer.Add("kafka producer", func(context.Context) error { return producer.Close() })
	if err := producer.EnsureTopic(ensureTopicTimeout); err != nil {
		// события остаются в outbox до появления топика
		a.logger.Warnf("kafka topic %s is not ready: %v", a.cfg.Kafka.Topic, err)
	}

	a.outbox = kafka.NewOutboxWorker(outboxRepo, a.logger, producer, db.Dsn, a.cfg.Outbox.BatchSize, a.cfg.Outbox.ListenTimeout)
	a.closer.AddFunc("outbox worker", a.outbox.Stop)

	validator := usecase.NewReferenceValidator(brandRepo, categoryRepo)
	workflow := usecase.NewCreationWorkflow(validator, a.imagesInfra, outboxRepo, txManager, a.cfg.Catalog.AtomicCreate, a.logger)

	useCases := v1Http.UseCases{
		Product:   usecase.NewProductUC(workflow, productRepo, productImageRepo, brandRepo, cacheRepo, a.logger),
		Accessory: usecase.NewAccessoryUC(workflow, accessoryRepo, accessoryImageRepo, cacheRepo, a.logger),
		Catalog:   usecase.NewCatalogUC(brandRepo, categoryRepo),
		Like:      usecase.NewLikeUC(userRepo, productRepo, likeRepo),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := chi.NewRouter()
	v1Http.NewRouter(r, a.logger, registry).Init(useCases)
	a.httpSrv = v1Http.NewServer(r, a.cfg.Http)

	a.grpcSrv = v1Grpc.NewGRPCServer(a.cfg.Grpc, a.logger)
	a.grpcSrv.RegisterServices()

	a.logger.Infof("catalog initialized, atomic create: %t", a.cfg.Catalog.AtomicCreate)
	return nil
}

// Run запускает серверы и outbox worker и блокирует до сигнала остановки или фатальной ошибки.
func (a *App) Run() error {
	a.outbox.Start(a.shutdownCtx)

	errCh := make(chan error, 2)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			errCh <- e.Wrap("http server", err)
		}
	}()
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			errCh <- e.Wrap("grpc server", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "server fatal error")
	case sig := <-shutdown:
		a.logger.Infof("received %s, stopping gracefully...", sig)
	}

	a.stop()
	return appErr
}

func (a *App) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.App.ShutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Stop(ctx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.grpcSrv.Stop(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			a.logger.Warnf("gRPC server shutdown timeout")
		} else {
			a.logger.Errorf(err, "gRPC server shutdown error")
		}
	}

	// Запросы завершены, новых задач очистки не будет
	cleanupCtx, cleanupCancel := context.WithTimeout(ctx, cleanupWaitTimeout)
	if err := a.imagesInfra.WaitForCleanup(cleanupCtx); err != nil {
		a.logger.Warnf("MinIO cleanup did not finish before shutdown, some objects may remain: %v", err)
	} else {
		a.logger.Infof("MinIO cleanup completed")
	}
	cleanupCancel()
	a.shutdownCancel()

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Warnf("%v", err)
	}

	a.logger.Infof("Application shutdown complete")
}

func initPGDB(ctx context.Context, logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
