package models

import (
	"time"

	"github.com/google/uuid"
)

// PhotoDB represents a photo record in the database.
// thumbnail_key is NULL when thumbnail generation failed or has not run;
// image_key is always set, a photo cannot exist without its image.
type PhotoDB struct {
	PhotoID      int64     `json:"id" db:"photo_id"`
	OwnerID      uuid.UUID `json:"owner_id" db:"owner_id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	ImageKey     string    `json:"image_key" db:"image_key"`
	ThumbnailKey *string   `json:"thumbnail_key" db:"thumbnail_key"`
	IsPublic     bool      `json:"is_public" db:"is_public"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// PhotoPage is one fixed-size page of photos plus paging metadata.
type PhotoPage struct {
	Photos  []PhotoDB `json:"photos"`
	Total   int64     `json:"total"`
	Page    int       `json:"page"`
	HasNext bool      `json:"has_next"`
}

// PhotoDetail is a photo together with per-viewer context: whether the
// requester owns it and the neighbouring photo ids in the viewer-visible
// sequence.
type PhotoDetail struct {
	Photo       PhotoDB `json:"photo"`
	IsOwner     bool    `json:"is_owner"`
	PrevPhotoID *int64  `json:"prev_photo_id"`
	NextPhotoID *int64  `json:"next_photo_id"`
}
