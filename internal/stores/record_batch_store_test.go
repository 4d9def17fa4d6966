package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"usage-counter/internal/models"
	"usage-counter/internal/shared/filestorages"
	"usage-counter/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleRecordBatch() *models.RecordBatch {
	return &models.RecordBatch{
		BatchID:    "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Collection: "scl",
		Source:     "upload",
		Records: []*models.LogRecord{
			{
				IP:             "10.0.0.1",
				ServerTime:     "2021-03-14 10:42:07",
				BrowserName:    "firefox",
				BrowserVersion: "86.0",
				ActionName:     "www.scielo.br/scielo.php?script=sci_arttext&pid=S0001-37652020000100001",
			},
		},
	}
}

func TestRecordBatchStore_Put_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewRecordBatchStore(mockFileStorage)

	ctx := context.Background()
	batch := sampleRecordBatch()
	expectedKey := "batches/scl/01ARZ3NDEKTSV4RRFFQ69G5FAV.json"
	expectedJSON, _ := json.Marshal(batch)

	mockFileStorage.EXPECT().
		Put(ctx, expectedKey, gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expectedJSON, data)
			return &filestorages.PutResult{FileKey: key}, nil
		})

	key, err := store.Put(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, expectedKey, key)
}

func TestRecordBatchStore_Put_FileAlreadyExists(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewRecordBatchStore(mockFileStorage)

	ctx := context.Background()
	mockFileStorage.EXPECT().
		Put(ctx, "batches/scl/01ARZ3NDEKTSV4RRFFQ69G5FAV.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		Return(nil, filestorages.ErrFileAlreadyExists)

	_, err := store.Put(ctx, sampleRecordBatch())
	assert.ErrorIs(t, err, ErrRecordBatchAlreadyExist)
}

func TestRecordBatchStore_Put_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewRecordBatchStore(mockFileStorage)

	ctx := context.Background()
	mockFileStorage.EXPECT().
		Put(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("storage error"))

	_, err := store.Put(ctx, sampleRecordBatch())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to put record batch")
	assert.Contains(t, err.Error(), "storage error")
	assert.NotErrorIs(t, err, ErrRecordBatchAlreadyExist)
}

func TestRecordBatchStore_Get(t *testing.T) {
	t.Parallel()

	batch := sampleRecordBatch()
	data, _ := json.Marshal(batch)

	tests := []struct {
		name      string
		reader    io.ReadCloser
		getErr    error
		wantErr   error
		errSubstr string
	}{
		{name: "success", reader: io.NopCloser(bytes.NewReader(data))},
		{name: "not found", getErr: filestorages.ErrFileNotFound, wantErr: ErrRecordBatchNotFound},
		{name: "storage error", getErr: errors.New("disk"), errSubstr: "failed to get record batch"},
		{name: "malformed", reader: io.NopCloser(bytes.NewReader([]byte("{"))), errSubstr: "failed to unmarshal record batch"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockFileStorage := mocks.NewMockFileStorage(ctrl)
			store := NewRecordBatchStore(mockFileStorage)

			ctx := context.Background()
			key := RecordBatchKey("scl", batch.BatchID)
			mockFileStorage.EXPECT().Get(ctx, key).Return(tt.reader, tt.getErr)

			got, err := store.Get(ctx, key)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errSubstr != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
			default:
				require.NoError(t, err)
				assert.Equal(t, batch, got)
			}
		})
	}
}

func TestRecordBatchStore_Delete_IgnoresMissing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewRecordBatchStore(mockFileStorage)

	ctx := context.Background()
	mockFileStorage.EXPECT().Delete(ctx, "batches/scl/a.json").Return(filestorages.ErrFileNotFound)
	mockFileStorage.EXPECT().Delete(ctx, "batches/scl/b.json").Return(errors.New("permission denied"))

	assert.NoError(t, store.Delete(ctx, "batches/scl/a.json"))
	assert.Error(t, store.Delete(ctx, "batches/scl/b.json"))
}

func TestRecordBatchStore_Pending_OrdersByUploadTime(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewRecordBatchStore(mockFileStorage)

	ctx := context.Background()
	older := "batches/scl/01ARZ3NDEKTSV4RRFFQ69G5FAV.json"
	newer := "batches/arg/01BX5ZZKBKACTAV9WEVGEMMVRZ.json"
	mockFileStorage.EXPECT().List(ctx, "batches").Return([]string{newer, older}, nil)

	keys, err := store.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{older, newer}, keys)
}

func TestRecordBatchStore_RoundTrip(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	store := NewRecordBatchStore(fileStorage)

	ctx := context.Background()
	batch := sampleRecordBatch()

	key, err := store.Put(ctx, batch)
	require.NoError(t, err)

	_, err = store.Put(ctx, batch)
	assert.ErrorIs(t, err, ErrRecordBatchAlreadyExist)

	pending, err := store.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{key}, pending)

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, batch, got)

	require.NoError(t, store.Delete(ctx, key))
	pending, err = store.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
