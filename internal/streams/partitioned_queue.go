package streams

import (
	"context"
	"encoding/binary"
	"hash/fnv"
)

// PartitionedQueue routes messages to a fixed set of buffered channels by hashing a
// partition key. Messages with the same key always land on the same partition.
type PartitionedQueue[T any] struct {
	partitions []chan T
}

const (
	DefaultNumPartitions = 1
	defaultBuffer        = 1024
)

func NewPartitionedQueue[T any](numPartitions int) *PartitionedQueue[T] {
	if numPartitions < 1 {
		numPartitions = DefaultNumPartitions
	}
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, defaultBuffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Publish blocks while the target partition is full, until ctx is done.
func (queue *PartitionedQueue[T]) Publish(ctx context.Context, partitionKey string, msg T) error {
	idx := partitionIndex(partitionKey, len(queue.partitions))
	select {
	case queue.partitions[idx] <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close ends every partition. Consumers drain what is buffered, then stop.
func (queue *PartitionedQueue[T]) Close() {
	for _, ch := range queue.partitions {
		close(ch)
	}
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	sum := hash.Sum(nil)
	v := binary.LittleEndian.Uint32(sum)
	return int(v % uint32(n))
}
