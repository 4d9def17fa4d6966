package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"usage-counter/internal/models"
	"usage-counter/internal/shared/filestorages"
	"usage-counter/internal/shared/ulid"
)

var (
	ErrRecordBatchAlreadyExist = errors.New("record batch already exists")
	ErrRecordBatchNotFound     = errors.New("record batch not found")
)

const recordBatchDir = "batches"

// RecordBatchStore keeps uploaded batches until they are counted. Put never overwrites, so
// a batch id stored twice is rejected with ErrRecordBatchAlreadyExist and cannot be counted
// twice.
//
//go:generate mockgen -source=record_batch_store.go -destination=./mocks/record_batch_store_mock.go -package=mocks
type RecordBatchStore interface {
	Put(ctx context.Context, batch *models.RecordBatch) (string, error)
	Get(ctx context.Context, key string) (*models.RecordBatch, error)
	Delete(ctx context.Context, key string) error
	// Pending lists the keys of stored batches, oldest upload first.
	Pending(ctx context.Context) ([]string, error)
}

type recordBatchStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewRecordBatchStore(fileStorage filestorages.FileStorage) RecordBatchStore {
	return &recordBatchStore{fileStorage: fileStorage, dir: recordBatchDir}
}

// RecordBatchKey returns the storage key of a batch.
func RecordBatchKey(collection, batchID string) string {
	return fmt.Sprintf("%s/%s/%s.json", recordBatchDir, collection, batchID)
}

func (s *recordBatchStore) Put(ctx context.Context, batch *models.RecordBatch) (string, error) {
	jsonData, err := json.Marshal(batch)
	if err != nil {
		return "", fmt.Errorf("failed to marshal record batch: %w", err)
	}

	key := RecordBatchKey(batch.Collection, batch.BatchID)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", ErrRecordBatchAlreadyExist
		}
		return "", fmt.Errorf("failed to put record batch: %w", err)
	}
	return key, nil
}

func (s *recordBatchStore) Get(ctx context.Context, key string) (*models.RecordBatch, error) {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrRecordBatchNotFound
		}
		return nil, fmt.Errorf("failed to get record batch: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read record batch: %w", err)
	}

	var batch models.RecordBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record batch: %w", err)
	}
	return &batch, nil
}

func (s *recordBatchStore) Delete(ctx context.Context, key string) error {
	if err := s.fileStorage.Delete(ctx, key); err != nil && !errors.Is(err, filestorages.ErrFileNotFound) {
		return fmt.Errorf("failed to delete record batch: %w", err)
	}
	return nil
}

func (s *recordBatchStore) Pending(ctx context.Context) ([]string, error) {
	keys, err := s.fileStorage.List(ctx, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list record batches: %w", err)
	}

	uploadedAt := make(map[string]int64, len(keys))
	for _, key := range keys {
		batchID := strings.TrimSuffix(path.Base(key), ".json")
		if at, err := ulid.Time(batchID); err == nil {
			uploadedAt[key] = at.UnixMilli()
		}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		if uploadedAt[keys[i]] != uploadedAt[keys[j]] {
			return uploadedAt[keys[i]] < uploadedAt[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys, nil
}
