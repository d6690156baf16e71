package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"peduli-kasih/internal/config"
	"peduli-kasih/internal/domain"
	"peduli-kasih/internal/repository"
)

var (
	ErrUnsupportedType = errors.New("unsupported media type")
	ErrStorageOffline  = errors.New("media storage is not available")
)

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type Service interface {
	Upload(ctx context.Context, workerID uuid.UUID, ownerType domain.MediaOwnerType, ownerID uuid.UUID, reader io.Reader, size int64, contentType string) (*domain.Media, error)
	ListByOwner(ctx context.Context, ownerType domain.MediaOwnerType, ownerID uuid.UUID) ([]domain.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	mediaRepo repository.MediaRepository
	minio     *minio.Client
	cfg       *config.Config
}

func NewService(mediaRepo repository.MediaRepository, minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		mediaRepo: mediaRepo,
		minio:     minioClient,
		cfg:       cfg,
	}
}

func (s *service) Upload(ctx context.Context, workerID uuid.UUID, ownerType domain.MediaOwnerType, ownerID uuid.UUID, reader io.Reader, size int64, contentType string) (*domain.Media, error) {
	if s.minio == nil {
		return nil, ErrStorageOffline
	}

	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return nil, ErrUnsupportedType
	}

	id := uuid.New()
	objectKey := path.Join(
		strings.ToLower(string(ownerType)),
		ownerID.String(),
		fmt.Sprintf("%d-%s%s", time.Now().Unix(), id.String()[:8], ext),
	)

	_, err := s.minio.PutObject(ctx, s.cfg.MinIOBucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, domain.WrapPersistence("upload media object", err)
	}

	m := &domain.Media{
		ID:          id,
		OwnerType:   ownerType,
		OwnerID:     ownerID,
		ObjectKey:   objectKey,
		URL:         s.publicURL(objectKey),
		ContentType: contentType,
		SizeBytes:   size,
		UploadedBy:  workerID,
	}

	if err := s.mediaRepo.Create(ctx, m); err != nil {
		// Best effort cleanup so the bucket does not accumulate orphans.
		_ = s.minio.RemoveObject(ctx, s.cfg.MinIOBucket, objectKey, minio.RemoveObjectOptions{})
		return nil, domain.WrapPersistence("save media record", err)
	}

	return m, nil
}

func (s *service) publicURL(objectKey string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, objectKey)
}

func (s *service) ListByOwner(ctx context.Context, ownerType domain.MediaOwnerType, ownerID uuid.UUID) ([]domain.Media, error) {
	return s.mediaRepo.ListByOwner(ctx, ownerType, ownerID)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if s.minio != nil {
		_ = s.minio.RemoveObject(ctx, s.cfg.MinIOBucket, m.ObjectKey, minio.RemoveObjectOptions{})
	}

	return s.mediaRepo.Delete(ctx, id)
}
