package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"

	"usage-counter/internal/aggregators"
	"usage-counter/internal/events"
	"usage-counter/internal/shared/loggers"
	"usage-counter/internal/shared/metrics"
	"usage-counter/internal/shared/svcerrors"
	"usage-counter/internal/shared/ulid"
)

//go:generate mockgen -source=batch_consumer.go -destination=./mocks/batch_consumer_mock.go -package=mocks
type BatchConsumer interface {
	Start(ctx context.Context)
	// Stop makes workers return after their current batch, leaving buffered batches behind.
	Stop()
	// Wait blocks until every worker has returned, e.g. after the queue is closed and drained.
	Wait()
}

type batchConsumer struct {
	queue           *PartitionedQueue[events.BatchReceivedEvent]
	countingService aggregators.CountingService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewBatchConsumer(queue *PartitionedQueue[events.BatchReceivedEvent], countingService aggregators.CountingService, logger loggers.Logger) BatchConsumer {
	return &batchConsumer{
		queue:           queue,
		countingService: countingService,
		stopCh:          make(chan struct{}),
		logger:          logger,
	}
}

// Start spawns 1 worker goroutine per partition. A worker counts one batch at a time, so
// each batch owns its hit manager for its whole lifetime.
func (consumer *batchConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

func (consumer *batchConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *batchConsumer) Wait() {
	consumer.wg.Wait()
}

func (consumer *batchConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.BatchReceivedEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, partitionIndex, event)
		}
	}
}

func (consumer *batchConsumer) handle(ctx context.Context, partitionIndex int, event events.BatchReceivedEvent) {
	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	// Handle panic recovery to prevent worker goroutine from crashing
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Str(loggers.FieldBatchID, event.BatchID).
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricBatchReceivedConsumedTotal.WithLabelValues(streamBatchReceived, svcErr.Code).Inc()
		}
	}()

	_, svcError := consumer.countingService.Count(ctx, &event)
	if svcError != nil {
		loggers.Ctx(ctx).Error().
			Str(loggers.FieldBatchID, event.BatchID).
			Str(loggers.FieldErrorCode, svcError.Code).
			Err(svcError.Cause).
			Msg("failed to count batch")
		metricBatchReceivedConsumedTotal.WithLabelValues(streamBatchReceived, svcError.Code).Inc()
		return
	}
	metricBatchReceivedConsumedTotal.WithLabelValues(streamBatchReceived, metrics.ValueNoError).Inc()
}
