package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"io"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/logger"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/model"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/queue"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/repository"
	repoMocks "github.com/Paintballskaguy/atlas-atlas-files-manager/internal/repository/mocks"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/storage"
	"github.com/Paintballskaguy/atlas-atlas-files-manager/internal/thumbnail"
)

const (
	fileID  = "0b8e3a52-6a8d-4c1e-9d0f-7c3b2a1e4f60"
	userID  = "5d41402a-bc4b-42a7-8d9e-1f2e3c4b5a69"
	otherID = "9e107d9d-372b-4b68-9b3b-6f2d8c1a0e77"
)

type failingRenderer struct {
	width int
}

func (r failingRenderer) Render(src []byte, width int) ([]byte, error) {
	if width == r.width {
		return nil, errors.New("resize failed")
	}
	return thumbnail.ImagingRenderer{}.Render(src, width)
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

type fixture struct {
	repo  *repoMocks.MockFileRepository
	store storage.Storage
	proc  *ThumbnailProcessor
}

func newFixture(t *testing.T, renderer thumbnail.Renderer) fixture {
	t.Helper()
	store, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)
	repo := new(repoMocks.MockFileRepository)
	proc, err := NewThumbnailProcessor(repo, store, renderer, logger.Discard(), prometheus.NewRegistry())
	require.NoError(t, err)
	return fixture{repo: repo, store: store, proc: proc}
}

func (fx fixture) putImage(t *testing.T, ctx context.Context, name string) *model.File {
	t.Helper()
	path := fx.store.Locate(name)
	_, err := fx.store.Put(ctx, path, bytes.NewReader(pngBytes(t, 800, 400)), storage.PutObjectOptions{Size: -1})
	require.NoError(t, err)
	return &model.File{ID: fileID, UserID: userID, Name: "photo.png", Type: model.FileTypeImage, LocalPath: path}
}

func task(t *testing.T, p queue.ThumbnailPayload) *asynq.Task {
	t.Helper()
	b, err := json.Marshal(p)
	require.NoError(t, err)
	return asynq.NewTask(queue.TypeThumbnail, b)
}

func TestThumbnailProcessor_WritesEveryWidth(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t, thumbnail.ImagingRenderer{})
	f := fx.putImage(t, ctx, "original")
	fx.repo.On("FindOwned", mock.Anything, fileID, userID).Return(f, nil)

	err := fx.proc.ProcessTask(ctx, task(t, queue.ThumbnailPayload{UserID: userID, FileID: fileID}))
	require.NoError(t, err)

	for _, width := range model.ThumbnailWidths {
		rc, _, err := fx.store.Get(ctx, f.ThumbnailPath(width))
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)

		cfg, _, err := image.DecodeConfig(bytes.NewReader(b))
		require.NoError(t, err)
		assert.Equal(t, width, cfg.Width)
		assert.Equal(t, width/2, cfg.Height)
	}
	assert.Equal(t, float64(1), testutil.ToFloat64(fx.proc.rendered.WithLabelValues("250", "ok")))
	fx.repo.AssertExpectations(t)
}

func TestThumbnailProcessor_PartialFailure(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t, failingRenderer{width: 250})
	f := fx.putImage(t, ctx, "original")
	fx.repo.On("FindOwned", mock.Anything, fileID, userID).Return(f, nil)

	err := fx.proc.ProcessTask(ctx, task(t, queue.ThumbnailPayload{UserID: userID, FileID: fileID}))
	require.NoError(t, err)

	_, _, err = fx.store.Get(ctx, f.ThumbnailPath(500))
	assert.NoError(t, err)
	_, _, err = fx.store.Get(ctx, f.ThumbnailPath(100))
	assert.NoError(t, err)
	_, _, err = fx.store.Get(ctx, f.ThumbnailPath(250))
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)

	assert.Equal(t, float64(1), testutil.ToFloat64(fx.proc.rendered.WithLabelValues("250", "error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(fx.proc.rendered.WithLabelValues("500", "ok")))
	fx.repo.AssertExpectations(t)
}

func TestThumbnailProcessor_FatalJobs(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		payload []byte
		setup   func(fx fixture)
		wantErr error
	}{
		{
			name:    "garbage payload",
			payload: []byte("{"),
		},
		{
			name:    "missing file id",
			payload: []byte(`{"userId":"` + userID + `"}`),
			wantErr: ErrMissingFileID,
		},
		{
			name:    "missing user id",
			payload: []byte(`{"fileId":"` + fileID + `"}`),
			wantErr: ErrMissingUserID,
		},
		{
			name:    "malformed file id",
			payload: []byte(`{"userId":"` + userID + `","fileId":"42"}`),
			wantErr: ErrFileNotFound,
		},
		{
			name:    "file not owned",
			payload: []byte(`{"userId":"` + otherID + `","fileId":"` + fileID + `"}`),
			setup: func(fx fixture) {
				fx.repo.On("FindOwned", mock.Anything, fileID, otherID).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrFileNotFound,
		},
		{
			name:    "original content gone",
			payload: []byte(`{"userId":"` + userID + `","fileId":"` + fileID + `"}`),
			setup: func(fx fixture) {
				fx.repo.On("FindOwned", mock.Anything, fileID, userID).Return(&model.File{
					ID: fileID, Type: model.FileTypeImage, LocalPath: fx.store.Locate("vanished"),
				}, nil)
			},
			wantErr: ErrFileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t, thumbnail.ImagingRenderer{})
			if tt.setup != nil {
				tt.setup(fx)
			}
			err := fx.proc.ProcessTask(ctx, asynq.NewTask(queue.TypeThumbnail, tt.payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, asynq.SkipRetry)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestThumbnailProcessor_SkipsNonImages(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t, failingRenderer{width: 500})
	fx.repo.On("FindOwned", mock.Anything, fileID, userID).
		Return(&model.File{ID: fileID, Type: model.FileTypeFile, LocalPath: "/nowhere"}, nil)

	err := fx.proc.Generate(ctx, queue.ThumbnailPayload{UserID: userID, FileID: fileID})
	assert.NoError(t, err)
}

func TestThumbnailProcessor_RepositoryErrorIsRetryable(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t, thumbnail.ImagingRenderer{})
	fx.repo.On("FindOwned", mock.Anything, fileID, userID).Return(nil, errors.New("db down"))

	err := fx.proc.ProcessTask(ctx, task(t, queue.ThumbnailPayload{UserID: userID, FileID: fileID}))
	assert.EqualError(t, err, "find file: db down")
}
