package minio

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/watch-store/internal/cfg"
	"github.com/DRSN-tech/watch-store/internal/domain"
	"github.com/DRSN-tech/watch-store/internal/usecase"
	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/DRSN-tech/watch-store/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImageRepo struct {
	mu          sync.Mutex
	uploaded    []*domain.Image
	uploadErr   error
	deleteFails int
	deleted     []string
	attempts    int
}

func (f *fakeImageRepo) Upload(_ context.Context, image *domain.Image) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploaded = append(f.uploaded, image)
	return image.ObjectKey, nil
}

func (f *fakeImageRepo) Delete(_ context.Context, _ string, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts++
	if f.deleteFails > 0 {
		f.deleteFails--
		return errors.New("minio unavailable")
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func newTestInfra(repo *fakeImageRepo, shutdownCtx context.Context) *MinioInfrastructure {
	infra := NewMinioInfrastructure(repo, &cfg.MinIOCfg{
		BucketName:    "catalog",
		PublicBaseURL: "http://localhost:9000",
		MaxUploadSize: 1024,
	}, logger.NewNop(), shutdownCtx)
	infra.backoffBase = time.Millisecond
	infra.backoffMax = 5 * time.Millisecond
	return infra
}

func TestMinioInfrastructure_UploadImage(t *testing.T) {
	repo := &fakeImageRepo{}
	infra := newTestInfra(repo, context.Background())

	res, err := infra.UploadImage(context.Background(), usecase.NewUploadImageReq("products",
		usecase.NewImageFile([]byte("png-bytes"), "image/png", 9, "watch.png")))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Key, "products/"))
	assert.True(t, strings.HasSuffix(res.Key, ".png"))
	assert.Equal(t, "http://localhost:9000/catalog/"+res.Key, res.URL)

	require.Len(t, repo.uploaded, 1)
	assert.Equal(t, "catalog", repo.uploaded[0].Bucket)
	assert.Equal(t, "image/png", *repo.uploaded[0].MimeType)
}

func TestMinioInfrastructure_UploadImageErrors(t *testing.T) {
	testCases := []struct {
		name     string
		file     *usecase.ImageFile
		repoErr  error
		expected error
	}{
		{"empty file", usecase.NewImageFile(nil, "image/png", 0, "a.png"), nil, e.ErrEmptyFile},
		{"too large", usecase.NewImageFile(make([]byte, 2048), "image/png", 2048, "a.png"), nil, e.ErrFileTooLarge},
		{"unsupported type", usecase.NewImageFile([]byte("x"), "text/plain", 1, "a.txt"), nil, e.ErrUnsupportedMediaType},
		{"storage error", usecase.NewImageFile([]byte("x"), "image/jpeg", 1, "a.jpg"), e.ErrInternalServerError, e.ErrInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			infra := newTestInfra(&fakeImageRepo{uploadErr: tc.repoErr}, context.Background())

			res, err := infra.UploadImage(context.Background(), usecase.NewUploadImageReq("accessories", tc.file))

			require.ErrorIs(t, err, tc.expected)
			assert.Nil(t, res)
		})
	}
}

func TestMinioInfrastructure_CleanupRetries(t *testing.T) {
	repo := &fakeImageRepo{deleteFails: 2}
	infra := newTestInfra(repo, context.Background())

	infra.CleanupImages([]string{"products/a.png", "products/b.png"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, infra.WaitForCleanup(ctx))

	assert.Equal(t, []string{"products/a.png", "products/b.png"}, repo.deleted)
	assert.Equal(t, 4, repo.attempts)
}

func TestMinioInfrastructure_CleanupGivesUp(t *testing.T) {
	repo := &fakeImageRepo{deleteFails: 10}
	infra := newTestInfra(repo, context.Background())

	infra.CleanupImages([]string{"products/a.png"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, infra.WaitForCleanup(ctx))

	assert.Empty(t, repo.deleted)
	assert.Equal(t, cleanupAttempts, repo.attempts)
}

func TestMinioInfrastructure_CleanupStopsOnShutdown(t *testing.T) {
	shutdownCtx, shutdown := context.WithCancel(context.Background())
	shutdown()

	repo := &fakeImageRepo{deleteFails: 10}
	infra := newTestInfra(repo, shutdownCtx)

	infra.CleanupImages([]string{"products/a.png", "products/b.png"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, infra.WaitForCleanup(ctx))
	assert.Equal(t, 1, repo.attempts)
}

func TestMinioInfrastructure_CleanupNoKeys(t *testing.T) {
	infra := newTestInfra(&fakeImageRepo{}, context.Background())

	infra.CleanupImages(nil)

	require.NoError(t, infra.WaitForCleanup(context.Background()))
}
