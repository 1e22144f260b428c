package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/photoshare/server/internal/logger"
	"github.com/photoshare/server/internal/models"
)

const photoColumns = `photo_id, owner_id, title, description, image_key, thumbnail_key, is_public, created_at, updated_at`

type PhotoReadRepository struct {
	db *sqlx.DB
}

func NewPhotoReadRepository(db *sqlx.DB) *PhotoReadRepository {
	return &PhotoReadRepository{db: db}
}

// GetByID fetches one photo. Returns (nil, nil) when the id does not exist.
func (r *PhotoReadRepository) GetByID(ctx context.Context, photoID int64) (*models.PhotoDB, error) {
	const query = `
		SELECT ` + photoColumns + `
		FROM photos
		WHERE photo_id = $1
	`

	var photo models.PhotoDB
	err := r.db.GetContext(ctx, &photo, query, photoID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{photoID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &photo, nil
}

// ListByOwner returns one page of the owner's photos, public and private,
// newest first.
func (r *PhotoReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]models.PhotoDB, error) {
	const query = `
		SELECT ` + photoColumns + `
		FROM photos
		WHERE owner_id = $1
		ORDER BY created_at DESC, photo_id DESC
		LIMIT $2 OFFSET $3
	`

	photos := []models.PhotoDB{}
	err := r.db.SelectContext(ctx, &photos, query, ownerID, limit, offset)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, limit, offset},
		"result_count", len(photos),
		"error", err,
	)

	return photos, err
}

// ListPublic returns one page of public photos across all owners, newest
// first.
func (r *PhotoReadRepository) ListPublic(ctx context.Context, limit, offset int) ([]models.PhotoDB, error) {
	const query = `
		SELECT ` + photoColumns + `
		FROM photos
		WHERE is_public = TRUE
		ORDER BY created_at DESC, photo_id DESC
		LIMIT $1 OFFSET $2
	`

	photos := []models.PhotoDB{}
	err := r.db.SelectContext(ctx, &photos, query, limit, offset)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit, offset},
		"result_count", len(photos),
		"error", err,
	)

	return photos, err
}

// CountByOwner returns the owner's total photo count.
func (r *PhotoReadRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM photos WHERE owner_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, ownerID)

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{ownerID},
		"result", count,
		"error", err,
	)

	return count, err
}

// CountPublic returns the total number of public photos.
func (r *PhotoReadRepository) CountPublic(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM photos WHERE is_public = TRUE`

	var count int64
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Infow("query executed",
		"query", query,
		"result", count,
		"error", err,
	)

	return count, err
}

// Neighbors returns the ids of the photos immediately newer and older than
// the given one within the viewer-visible sequence: the owner sees their
// whole stream, everyone else only that owner's public photos.
func (r *PhotoReadRepository) Neighbors(ctx context.Context, photo *models.PhotoDB, viewerIsOwner bool) (prev, next *int64, err error) {
	const prevQuery = `
		SELECT photo_id FROM photos
		WHERE owner_id = $1 AND created_at > $2 AND ($3 OR is_public = TRUE)
		ORDER BY created_at ASC, photo_id ASC
		LIMIT 1
	`
	const nextQuery = `
		SELECT photo_id FROM photos
		WHERE owner_id = $1 AND created_at < $2 AND ($3 OR is_public = TRUE)
		ORDER BY created_at DESC, photo_id DESC
		LIMIT 1
	`

	var prevID int64
	err = r.db.GetContext(ctx, &prevID, prevQuery, photo.OwnerID, photo.CreatedAt, viewerIsOwner)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = nil
	case err != nil:
		return nil, nil, err
	default:
		prev = &prevID
	}

	var nextID int64
	err = r.db.GetContext(ctx, &nextID, nextQuery, photo.OwnerID, photo.CreatedAt, viewerIsOwner)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = nil
	case err != nil:
		return nil, nil, err
	default:
		next = &nextID
	}

	return prev, next, nil
}

type PhotoWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPhotoWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PhotoWriteRepository {
	return &PhotoWriteRepository{db: db, txGetter: txGetter}
}

func (r *PhotoWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new photo and returns its generated id.
func (r *PhotoWriteRepository) Save(ctx context.Context, photo *models.PhotoDB) (int64, error) {
	const query = `
		INSERT INTO photos (owner_id, title, description, image_key, thumbnail_key, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING photo_id
	`
	args := []any{photo.OwnerID, photo.Title, photo.Description, photo.ImageKey, photo.ThumbnailKey, photo.IsPublic}

	var photoID int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &photoID, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", photoID,
		"error", err,
	)

	return photoID, err
}

// Update persists the mutable photo fields. Image and thumbnail keys are
// written as-is; callers leave them untouched for text-only edits.
func (r *PhotoWriteRepository) Update(ctx context.Context, photo *models.PhotoDB) error {
	const query = `
		UPDATE photos
		SET title = $2, description = $3, image_key = $4, thumbnail_key = $5, is_public = $6, updated_at = NOW()
		WHERE photo_id = $1
	`
	args := []any{photo.PhotoID, photo.Title, photo.Description, photo.ImageKey, photo.ThumbnailKey, photo.IsPublic}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Delete removes the photo record. Blob cleanup is the caller's concern and
// is best-effort there.
func (r *PhotoWriteRepository) Delete(ctx context.Context, photoID int64) error {
	const query = `DELETE FROM photos WHERE photo_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, photoID)

	logger.Log.Infow("query executed",
		"query", query,
		"args", []any{photoID},
		"error", err,
	)

	return err
}
