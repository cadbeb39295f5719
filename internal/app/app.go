package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/storefront-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/storefront-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/infrastructure/kafka"
	s3Repo "github.com/DRSN-tech/storefront-backend/internal/repository/minio"
	"github.com/DRSN-tech/storefront-backend/internal/repository/pgdb"
	redisRepo "github.com/DRSN-tech/storefront-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/storefront-backend/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/storefront-backend/internal/repository/static"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/clients"
	"github.com/DRSN-tech/storefront-backend/pkg/closer"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/DRSN-tech/storefront-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const ensureTopicTimeout = 10 * time.Second

// App собирает все зависимости приложения и управляет их жизненным циклом.
// Порядок закрытия ресурсов — обратный порядку создания (LIFO в closer).
type App struct {
	cfg          *config.Config
	logger       logger.Logger
	httpSrv      *v1Http.Server
	outboxWorker *kafka.OutboxWorker
	closer       *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	const op = "app.NewApp"

	cl := closer.NewCloser(0)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	cl.Add(func(_ context.Context) error {
		db.Close()
		log.Infof("postgres pool closed")
		return nil
	})

	catalogRepo, err := newCatalogRepo(cfg, db)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	imagesInfra, err := newImagesInfra(cfg, log)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	catalogUC := usecase.NewCatalogUC(catalogRepo, imagesInfra, log)

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer loadCancel()
	if err := catalogUC.Load(loadCtx); err != nil {
		return nil, e.Wrap(op, err)
	}

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(op, err)
	}
	cl.Add(func(_ context.Context) error {
		return redisClient.Client.Close()
	})

	cartRepo := redisRepo.NewCartRepo(redisClient, &redisConv.CartLineConverterImpl{}, cfg.Redis, log)

	rules := domain.NewPricingRules(cfg.Pricing.TaxRate, cfg.Pricing.FreeShippingOver, cfg.Pricing.ShippingFlatRate)
	cartUC := usecase.NewCartUC(catalogUC, cartRepo, rules, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if err := producer.EnsureTopic(ensureTopicTimeout); err != nil {
		return nil, e.Wrap(op, err)
	}
	cl.Add(func(_ context.Context) error {
		return producer.Close()
	})

	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool)
	outboxWorker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	orderRepo := pgdb.NewOrderRepo(db.Pool)
	orderUC := usecase.NewOrderUC(cartUC, orderRepo, outboxRepo, db.Pool, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC, cartUC, orderUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	return &App{
		cfg:          cfg,
		logger:       log,
		httpSrv:      httpSrv,
		outboxWorker: outboxWorker,
		closer:       cl,
	}, nil
}

// Run запускает outbox worker и HTTP-сервер, блокируется до сигнала
// завершения или фатальной ошибки сервера, затем гасит все ресурсы.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	a.outboxWorker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	workerCancel()
	a.outboxWorker.Stop()
	a.logger.Infof("Outbox worker stopped")

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "resource shutdown error")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

// newCatalogRepo выбирает источник каталога по конфигурации.
func newCatalogRepo(cfg *config.Config, db *postgres.PgDatabase) (usecase.CatalogRepository, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		return pgdb.NewCatalogRepo(db.Pool), nil
	case config.CatalogSourceStatic:
		return static.NewCatalogRepo()
	default:
		return nil, e.Wrap(cfg.Catalog.Source, e.ErrUnknownCatalogSource)
	}
}

// newImagesInfra поднимает MinIO-резолвинг изображений, если он включен.
// Выключенный резолвинг — штатный режим: ссылки каталога отдаются как есть.
func newImagesInfra(cfg *config.Config, log logger.Logger) (usecase.ImagesInfra, error) {
	if !cfg.Minio.Enabled {
		return nil, nil
	}

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	log.Infof("minio image resolver enabled, endpoint: %s", cfg.Minio.MinioEndpoint)
	return s3Repo.NewImageRepo(minioClient, cfg.Minio), nil
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
