package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/photoshare/server/internal/imageproc"
	"github.com/photoshare/server/internal/logger"
	"github.com/photoshare/server/internal/models"
	"github.com/photoshare/server/internal/sanitize"
)

var (
	// ErrPhotoNotFound is returned when the photo does not exist or the
	// viewer is not allowed to know it exists.
	ErrPhotoNotFound = errors.New("photo not found")
	// ErrPermissionDenied is returned when an authenticated user tries to
	// modify someone else's photo.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrAuthRequired is returned when an anonymous viewer requests a
	// non-public photo.
	ErrAuthRequired = errors.New("authentication required")
)

// PageSize is the number of photos per gallery page.
const PageSize = 12

// PhotoReader defines read-only operations for photos.
type PhotoReader interface {
	GetByID(ctx context.Context, photoID int64) (*models.PhotoDB, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]models.PhotoDB, error)
	ListPublic(ctx context.Context, limit, offset int) ([]models.PhotoDB, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	CountPublic(ctx context.Context) (int64, error)
	Neighbors(ctx context.Context, photo *models.PhotoDB, viewerIsOwner bool) (prev, next *int64, err error)
}

// PhotoWriter defines write operations for photos.
type PhotoWriter interface {
	Save(ctx context.Context, photo *models.PhotoDB) (int64, error)
	Update(ctx context.Context, photo *models.PhotoDB) error
	Delete(ctx context.Context, photoID int64) error
}

// BlobStore stores image blobs addressable by key.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
}

// UploadValidator applies the upload acceptance gates.
type UploadValidator interface {
	Validate(ctx context.Context, name, declaredType string, size int64, r io.ReadSeeker) error
}

// CountCache caches gallery counts.
type CountCache interface {
	GetOwnerCount(ctx context.Context, ownerID uuid.UUID) (int64, error)
	SetOwnerCount(ctx context.Context, ownerID uuid.UUID, count int64) error
	GetPublicCount(ctx context.Context) (int64, error)
	SetPublicCount(ctx context.Context, count int64) error
	Invalidate(ctx context.Context, ownerID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ImageUpload carries one uploaded image file.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PhotoService handles the photo lifecycle: upload, viewing, editing,
// deletion and gallery listing.
type PhotoService struct {
	readRepo    PhotoReader
	writeRepo   PhotoWriter
	store       BlobStore
	validator   UploadValidator
	processor   imageproc.Processor
	cacheRepo   CountCache
	kafkaWriter KafkaWriter
}

// NewPhotoService creates a new PhotoService.
func NewPhotoService(
	readRepo PhotoReader,
	writeRepo PhotoWriter,
	store BlobStore,
	validator UploadValidator,
	processor imageproc.Processor,
	cacheRepo CountCache,
	kafkaWriter KafkaWriter,
) *PhotoService {
	return &PhotoService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		store:       store,
		validator:   validator,
		processor:   processor,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishPhotoEvent publishes a lifecycle event to Kafka.
func (s *PhotoService) publishPhotoEvent(ctx context.Context, photoID int64, ownerID uuid.UUID, action string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "photo_id", photoID, "action", action)
		return
	}

	event := models.PhotoEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		PhotoID:   photoID,
		OwnerID:   ownerID.String(),
		Action:    action,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal photo event for Kafka", "photo_id", photoID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish photo event to Kafka", "photo_id", photoID, "error", err)
	} else {
		logger.Log.Infow("Photo event published to Kafka", "photo_id", photoID, "action", action)
	}
}

// invalidateCounts drops the cached counts after any photo change.
// Best-effort: cache failures never fail the operation.
func (s *PhotoService) invalidateCounts(ctx context.Context, ownerID uuid.UUID) {
	if err := s.cacheRepo.Invalidate(ctx, ownerID); err != nil {
		logger.Log.Errorw("failed to invalidate count cache", "owner_id", ownerID, "error", err)
	}
}

// Upload validates, processes and stores a new photo. The title and
// description are sanitized first so rejected text never costs an image
// decode.
func (s *PhotoService) Upload(ctx context.Context, ownerID uuid.UUID, title, description string, isPublic bool, upload ImageUpload) (int64, error) {
	cleanTitle, err := sanitize.Title(title)
	if err != nil {
		return 0, err
	}
	cleanDescription, err := sanitize.Description(description)
	if err != nil {
		return 0, err
	}

	if err := s.validator.Validate(ctx, upload.Filename, upload.ContentType, int64(len(upload.Data)), bytes.NewReader(upload.Data)); err != nil {
		logger.Log.Infow("upload rejected", "filename", upload.Filename, "error", err)
		return 0, err
	}

	result := s.processor.Process(ctx, upload.Data, upload.ContentType)

	imageKey, thumbnailKey := s.buildKeys(upload.Filename, result)

	if err := s.store.Put(ctx, imageKey, result.Image, result.ContentType); err != nil {
		return 0, err
	}
	if thumbnailKey != nil {
		if err := s.store.Put(ctx, *thumbnailKey, result.Thumbnail, "image/jpeg"); err != nil {
			logger.Log.Errorw("failed to store thumbnail, continuing without one", "key", *thumbnailKey, "error", err)
			thumbnailKey = nil
		}
	}

	photoID, err := s.writeRepo.Save(ctx, &models.PhotoDB{
		OwnerID:      ownerID,
		Title:        cleanTitle,
		Description:  cleanDescription,
		ImageKey:     imageKey,
		ThumbnailKey: thumbnailKey,
		IsPublic:     isPublic,
	})
	if err != nil {
		logger.Log.Errorw("failed to save photo, removing stored blobs", "error", err)
		s.deleteBlobs(ctx, imageKey, thumbnailKey)
		return 0, err
	}

	s.invalidateCounts(ctx, ownerID)
	s.publishPhotoEvent(ctx, photoID, ownerID, "uploaded")

	return photoID, nil
}

// Get returns the photo with viewer context: ownership flag and the ids of
// the neighboring photos in the viewer-visible stream. Anonymous viewers get
// ErrAuthRequired for non-public photos; authenticated non-owners get
// ErrPhotoNotFound so private photos are indistinguishable from absent ones.
func (s *PhotoService) Get(ctx context.Context, viewerID *uuid.UUID, photoID int64) (*models.PhotoDetail, error) {
	photo, err := s.readRepo.GetByID(ctx, photoID)
	if err != nil {
		logger.Log.Errorw("failed to get photo", "photo_id", photoID, "error", err)
		return nil, err
	}
	if photo == nil {
		if viewerID == nil {
			return nil, ErrAuthRequired
		}
		return nil, ErrPhotoNotFound
	}

	isOwner := viewerID != nil && *viewerID == photo.OwnerID
	if !photo.IsPublic && !isOwner {
		if viewerID == nil {
			return nil, ErrAuthRequired
		}
		return nil, ErrPhotoNotFound
	}

	prev, next, err := s.readRepo.Neighbors(ctx, photo, isOwner)
	if err != nil {
		logger.Log.Errorw("failed to get neighboring photos", "photo_id", photoID, "error", err)
		return nil, err
	}

	return &models.PhotoDetail{
		Photo:       *photo,
		IsOwner:     isOwner,
		PrevPhotoID: prev,
		NextPhotoID: next,
	}, nil
}

// Update edits the photo's text and visibility, and optionally replaces the
// image. Only the owner may update; a nil upload leaves the stored image
// untouched.
func (s *PhotoService) Update(ctx context.Context, viewerID uuid.UUID, photoID int64, title, description string, isPublic bool, upload *ImageUpload) error {
	photo, err := s.readRepo.GetByID(ctx, photoID)
	if err != nil {
		logger.Log.Errorw("failed to get photo", "photo_id", photoID, "error", err)
		return err
	}
	if photo == nil {
		return ErrPhotoNotFound
	}
	if photo.OwnerID != viewerID {
		logger.Log.Infow("update denied", "photo_id", photoID, "viewer_id", viewerID)
		return ErrPermissionDenied
	}

	cleanTitle, err := sanitize.Title(title)
	if err != nil {
		return err
	}
	cleanDescription, err := sanitize.Description(description)
	if err != nil {
		return err
	}
	photo.Title = cleanTitle
	photo.Description = cleanDescription
	photo.IsPublic = isPublic

	oldImageKey, oldThumbnailKey := "", photo.ThumbnailKey
	if upload != nil {
		if err := s.validator.Validate(ctx, upload.Filename, upload.ContentType, int64(len(upload.Data)), bytes.NewReader(upload.Data)); err != nil {
			logger.Log.Infow("replacement upload rejected", "filename", upload.Filename, "error", err)
			return err
		}

		result := s.processor.Process(ctx, upload.Data, upload.ContentType)
		imageKey, thumbnailKey := s.buildKeys(upload.Filename, result)

		if err := s.store.Put(ctx, imageKey, result.Image, result.ContentType); err != nil {
			return err
		}
		if thumbnailKey != nil {
			if err := s.store.Put(ctx, *thumbnailKey, result.Thumbnail, "image/jpeg"); err != nil {
				logger.Log.Errorw("failed to store thumbnail, continuing without one", "key", *thumbnailKey, "error", err)
				thumbnailKey = nil
			}
		}

		oldImageKey = photo.ImageKey
		photo.ImageKey = imageKey
		photo.ThumbnailKey = thumbnailKey
	}

	if err := s.writeRepo.Update(ctx, photo); err != nil {
		logger.Log.Errorw("failed to update photo", "photo_id", photoID, "error", err)
		if upload != nil {
			s.deleteBlobs(ctx, photo.ImageKey, photo.ThumbnailKey)
		}
		return err
	}

	if upload != nil {
		s.deleteBlobs(ctx, oldImageKey, oldThumbnailKey)
	}

	s.invalidateCounts(ctx, photo.OwnerID)
	s.publishPhotoEvent(ctx, photoID, photo.OwnerID, "updated")

	return nil
}

// Delete removes the photo. Only the owner may delete. Blob removal is
// best-effort: a storage failure after the record is gone leaves an orphan
// blob, never a dangling record.
func (s *PhotoService) Delete(ctx context.Context, viewerID uuid.UUID, photoID int64) error {
	photo, err := s.readRepo.GetByID(ctx, photoID)
	if err != nil {
		logger.Log.Errorw("failed to get photo", "photo_id", photoID, "error", err)
		return err
	}
	if photo == nil {
		return ErrPhotoNotFound
	}
	if photo.OwnerID != viewerID {
		logger.Log.Infow("delete denied", "photo_id", photoID, "viewer_id", viewerID)
		return ErrPermissionDenied
	}

	if err := s.writeRepo.Delete(ctx, photoID); err != nil {
		logger.Log.Errorw("failed to delete photo", "photo_id", photoID, "error", err)
		return err
	}

	s.deleteBlobs(ctx, photo.ImageKey, photo.ThumbnailKey)
	s.invalidateCounts(ctx, photo.OwnerID)
	s.publishPhotoEvent(ctx, photoID, photo.OwnerID, "deleted")

	return nil
}

// ListOwn returns one page of the owner's gallery, private photos included.
func (s *PhotoService) ListOwn(ctx context.Context, ownerID uuid.UUID, page int) (*models.PhotoPage, error) {
	page = normalizePage(page)

	photos, err := s.readRepo.ListByOwner(ctx, ownerID, PageSize, (page-1)*PageSize)
	if err != nil {
		logger.Log.Errorw("failed to list photos", "owner_id", ownerID, "error", err)
		return nil, err
	}

	total, err := s.cacheRepo.GetOwnerCount(ctx, ownerID)
	if err != nil {
		total, err = s.readRepo.CountByOwner(ctx, ownerID)
		if err != nil {
			logger.Log.Errorw("failed to count photos", "owner_id", ownerID, "error", err)
			return nil, err
		}
		if err := s.cacheRepo.SetOwnerCount(ctx, ownerID, total); err != nil {
			logger.Log.Errorw("failed to cache owner count", "owner_id", ownerID, "error", err)
		}
	}

	return &models.PhotoPage{
		Photos:  photos,
		Total:   total,
		Page:    page,
		HasNext: int64(page*PageSize) < total,
	}, nil
}

// ListPublic returns one page of the shared gallery.
func (s *PhotoService) ListPublic(ctx context.Context, page int) (*models.PhotoPage, error) {
	page = normalizePage(page)

	photos, err := s.readRepo.ListPublic(ctx, PageSize, (page-1)*PageSize)
	if err != nil {
		logger.Log.Errorw("failed to list public photos", "error", err)
		return nil, err
	}

	total, err := s.cacheRepo.GetPublicCount(ctx)
	if err != nil {
		total, err = s.readRepo.CountPublic(ctx)
		if err != nil {
			logger.Log.Errorw("failed to count public photos", "error", err)
			return nil, err
		}
		if err := s.cacheRepo.SetPublicCount(ctx, total); err != nil {
			logger.Log.Errorw("failed to cache public count", "error", err)
		}
	}

	return &models.PhotoPage{
		Photos:  photos,
		Total:   total,
		Page:    page,
		HasNext: int64(page*PageSize) < total,
	}, nil
}

// buildKeys derives storage keys for a processed upload. Processed images
// are always JPEG; fallback originals keep their sanitized extension.
func (s *PhotoService) buildKeys(filename string, result *imageproc.Result) (imageKey string, thumbnailKey *string) {
	base := uuid.NewString()

	ext := ".jpg"
	if !result.Processed {
		if e := strings.ToLower(path.Ext(sanitize.Filename(filename))); e != "" {
			ext = e
		}
	}

	imageKey = "photos/" + base + ext
	if result.Thumbnail != nil {
		key := "thumbnails/" + base + ".jpg"
		thumbnailKey = &key
	}
	return imageKey, thumbnailKey
}

func (s *PhotoService) deleteBlobs(ctx context.Context, imageKey string, thumbnailKey *string) {
	if imageKey != "" {
		if err := s.store.Delete(ctx, imageKey); err != nil {
			logger.Log.Errorw("failed to delete blob", "key", imageKey, "error", err)
		}
	}
	if thumbnailKey != nil {
		if err := s.store.Delete(ctx, *thumbnailKey); err != nil {
			logger.Log.Errorw("failed to delete blob", "key", *thumbnailKey, "error", err)
		}
	}
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
