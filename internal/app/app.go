package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"usage-counter/internal/aggregators"
	"usage-counter/internal/classifiers"
	"usage-counter/internal/counters"
	"usage-counter/internal/database"
	"usage-counter/internal/events"
	"usage-counter/internal/hits"
	internalhttp "usage-counter/internal/http"
	"usage-counter/internal/ingestors"
	"usage-counter/internal/lookups"
	"usage-counter/internal/models"
	"usage-counter/internal/shared/configs"
	"usage-counter/internal/shared/filestorages"
	"usage-counter/internal/shared/loggers"
	"usage-counter/internal/shared/svcerrors"
	"usage-counter/internal/shared/ulid"
	"usage-counter/internal/stores"
	"usage-counter/internal/streams"

	"github.com/jmoiron/sqlx"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	db        *sqlx.DB
	server    *http.Server

	tables     *lookups.Tables
	sink       stores.MetricSink
	batchStore stores.RecordBatchStore

	queue    *streams.PartitionedQueue[events.BatchReceivedEvent]
	producer streams.BatchProducer
	consumer streams.BatchConsumer
	outcomes *outcomeRecorder

	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance. The counter schema must already be
// migrated; see MigrateDatabase.
func New(ctx context.Context, config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, "usage-counter").
		Logger()
	ctx = appLogger.WithContext(ctx)

	tables, err := lookups.Load(ctx, config.Lookups)
	if err != nil {
		return nil, fmt.Errorf("failed to load lookup tables: %w", err)
	}

	db, err := database.Open(ctx, config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Initialize file storage for uploaded batches
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	batchStore := stores.NewRecordBatchStore(fileStorage)

	// Initialize batch loading
	var logStore stores.LogStoreReader
	if config.LogStore.IDSite > 0 {
		logStore = stores.NewLogStoreReader(db, config.Database.Dialect, config.LogStore.IDSite, config.LogStore.TablePrefix)
	}
	loader := stores.NewBatchLoader(stores.NewLogFileReader(), batchStore, logStore)

	// Initialize counting service
	classifier := classifiers.NewClassifier(classifiers.DefaultRules().WithDomains(config.Classifier.Domains), tables)
	hitFactory := hits.NewHitFactory(classifier, models.SessionGranularity(config.Session.Granularity))
	doubleClickWindow := time.Duration(config.Session.DoubleClickWindow) * time.Second
	newHitManager := func() hits.HitManager { return hits.NewHitManager(doubleClickWindow) }
	sink := stores.NewMetricSink(db, config.Database.Dialect, config.Sink.RequireJournal)
	countingService := aggregators.NewCountingService(
		loader,
		hitFactory,
		newHitManager,
		counters.DefaultRuleTable(),
		sink,
		config.Counting.FlushOnAddressChange,
	)
	outcomes := &outcomeRecorder{next: countingService}

	// Initialize stream queue
	queue := streams.NewPartitionedQueue[events.BatchReceivedEvent](config.Counting.Workers)
	producer := streams.NewBatchProducer(queue)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	consumer := streams.NewBatchConsumer(queue, outcomes, consumerLogger)

	// Initialize http router
	uploadService := ingestors.NewUploadService(config.Collection, batchStore, producer)
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(uploadService, db, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:     config,
		appLogger:  appLogger,
		db:         db,
		server:     server,
		tables:     tables,
		sink:       sink,
		batchStore: batchStore,
		queue:      queue,
		producer:   producer,
		consumer:   consumer,
		outcomes:   outcomes,
	}, nil
}

// MigrateDatabase moves the counter schema up or down.
func MigrateDatabase(ctx context.Context, config *configs.Config, direction database.Direction) error {
	logger, err := loggers.New(config.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	ctx = logger.With().Str(loggers.FieldComponent, "migrate").Logger().WithContext(ctx)

	db, err := database.Open(ctx, config.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	return database.Migrate(ctx, db, config.Database.Dialect, direction)
}

// RunLogFiles counts every file under path, one batch per file, and returns once all are done.
func (app *App) RunLogFiles(ctx context.Context, path string) error {
	paths, err := ExpandLogPaths(path)
	if err != nil {
		return err
	}

	batches := make([]*events.BatchReceivedEvent, 0, len(paths))
	for _, p := range paths {
		batches = append(batches, &events.BatchReceivedEvent{
			BatchID:    ulid.NewULID(),
			Collection: app.config.Collection,
			SourceKind: events.SourceFile,
			Location:   p,
		})
	}
	return app.runBatches(ctx, batches)
}

// RunPeriod counts every day of period from the log store, one batch per day.
func (app *App) RunPeriod(ctx context.Context, period string) error {
	if app.config.LogStore.IDSite == 0 {
		return errors.New("log_store.idsite is required to read a period")
	}
	days, err := ExpandPeriod(period)
	if err != nil {
		return err
	}

	batches := make([]*events.BatchReceivedEvent, 0, len(days))
	for _, day := range days {
		batches = append(batches, &events.BatchReceivedEvent{
			BatchID:    ulid.NewULID(),
			Collection: app.config.Collection,
			SourceKind: events.SourceLogStore,
			Location:   day.Format(models.DayLayout),
		})
	}
	return app.runBatches(ctx, batches)
}

func (app *App) runBatches(ctx context.Context, batches []*events.BatchReceivedEvent) error {
	ctx = app.appLogger.WithContext(ctx)
	defer app.db.Close()

	if err := app.registerJournals(ctx); err != nil {
		return err
	}

	app.consumer.Start(ctx)
	for _, batch := range batches {
		if err := app.producer.Produce(ctx, batch); err != nil {
			app.queue.Close()
			app.consumer.Wait()
			return fmt.Errorf("failed to publish batch %s: %w", batch.Location, err)
		}
	}
	app.queue.Close()
	app.consumer.Wait()

	counted, failed := app.outcomes.snapshot()
	app.appLogger.Info().
		Int64("batches_counted", counted).
		Int64("batches_failed", failed).
		Msg("run completed")
	if failed > 0 {
		return fmt.Errorf("%d of %d batches failed", failed, counted+failed)
	}
	return ctx.Err()
}

// Start publishes uploads left over from a previous run, starts the workers and serves
// HTTP in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting usage-counter service on port %d (log_level=%s, collection=%s, workers=%d)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Collection,
			app.config.Counting.Workers)

	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	ctx := app.appLogger.WithContext(app.backgroundCtx)

	if err := app.registerJournals(ctx); err != nil {
		return err
	}

	// start background consumers
	app.consumer.Start(ctx)

	if err := app.republishPending(ctx); err != nil {
		return err
	}

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Stop background consumers after their current batch. Batches still queued stay
	// in file storage and are published again on the next start.
	app.consumer.Stop()
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.appLogger.Info().Msg("Background consumers stopped")

	// 3) Close the database
	return app.db.Close()
}

func (app *App) registerJournals(ctx context.Context) error {
	journals := app.tables.ISSNToAcronym[app.config.Collection]
	if len(journals) == 0 {
		return nil
	}
	if err := app.sink.RegisterJournals(ctx, app.config.Collection, journals); err != nil {
		return fmt.Errorf("failed to register journals: %w", err)
	}
	return nil
}

func (app *App) republishPending(ctx context.Context) error {
	keys, err := app.batchStore.Pending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending uploads: %w", err)
	}
	for _, key := range keys {
		batch, err := app.batchStore.Get(ctx, key)
		if err != nil {
			loggers.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("skipping unreadable pending upload")
			continue
		}
		event := &events.BatchReceivedEvent{
			BatchID:    batch.BatchID,
			Collection: batch.Collection,
			SourceKind: events.SourceUpload,
			Location:   key,
		}
		if err := app.producer.Produce(ctx, event); err != nil {
			return fmt.Errorf("failed to publish pending upload %s: %w", key, err)
		}
	}
	if len(keys) > 0 {
		loggers.Ctx(ctx).Info().Int("batches", len(keys)).Msg("pending uploads published")
	}
	return nil
}

// outcomeRecorder counts counted and failed batches for the run summary.
type outcomeRecorder struct {
	next    aggregators.CountingService
	counted atomic.Int64
	failed  atomic.Int64
}

// Count records a panicking batch as failed and lets the panic reach the consumer's recovery.
func (r *outcomeRecorder) Count(ctx context.Context, event *events.BatchReceivedEvent) (*aggregators.BatchSummary, *svcerrors.ServiceError) {
	returned := false
	defer func() {
		if !returned {
			r.failed.Add(1)
		}
	}()

	summary, svcErr := r.next.Count(ctx, event)
	returned = true
	if svcErr != nil {
		r.failed.Add(1)
	} else {
		r.counted.Add(1)
	}
	return summary, svcErr
}

func (r *outcomeRecorder) snapshot() (int64, int64) {
	return r.counted.Load(), r.failed.Load()
}
