package streams

import (
	"context"

	"usage-counter/internal/events"
)

// BatchProducer publishes received batches to a partitioned queue.
//
// The partition key is the batch id. Batches are independent for session purposes, so any
// partition may count any batch; hashing the id spreads batches over the workers while a
// batch published twice (e.g. on restart recovery) still lands on the same worker.
//
//go:generate mockgen -source=batch_producer.go -destination=./mocks/batch_producer_mock.go -package=mocks
type BatchProducer interface {
	Produce(ctx context.Context, event *events.BatchReceivedEvent) error
}

type batchProducer struct {
	queue *PartitionedQueue[events.BatchReceivedEvent]
}

func NewBatchProducer(queue *PartitionedQueue[events.BatchReceivedEvent]) BatchProducer {
	return &batchProducer{queue: queue}
}

func (producer *batchProducer) Produce(ctx context.Context, event *events.BatchReceivedEvent) error {
	if err := producer.queue.Publish(ctx, event.BatchID, *event); err != nil {
		return err
	}
	metricBatchReceivedProducedTotal.WithLabelValues(streamBatchReceived, string(event.SourceKind)).Inc()
	return nil
}
