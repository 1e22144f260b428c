package imageproc

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/photoshare/server/internal/logger"
)

const (
	// MaxPrimaryWidth and MaxPrimaryHeight bound the stored primary image.
	MaxPrimaryWidth  = 1920
	MaxPrimaryHeight = 1080
	// ThumbnailSize is the box the thumbnail must fit into.
	ThumbnailSize = 300

	primaryQuality   = 85
	thumbnailQuality = 80
	minQuality       = 60
	qualityStep      = 5
	maxEncodedSize   = 5 << 20
)

// Result is the outcome of derivative generation. Image always holds the
// bytes to store: the normalized JPEG when processing succeeded, the
// untouched original otherwise. Thumbnail is nil when thumbnailing failed.
type Result struct {
	Image       []byte
	Thumbnail   []byte
	ContentType string
	Processed   bool
}

// Processor generates derivatives for a validated upload. The shipped
// implementation is synchronous; an asynchronous strategy can satisfy the
// same contract.
type Processor interface {
	Process(ctx context.Context, original []byte, declaredType string) *Result
}

// Pipeline is the synchronous in-request Processor.
type Pipeline struct{}

func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Validate applies the upload gates; see Validate.
func (p *Pipeline) Validate(ctx context.Context, name, declaredType string, size int64, r io.ReadSeeker) error {
	return Validate(name, declaredType, size, r)
}

// Process normalizes the primary image and produces a thumbnail. It never
// fails the enclosing save: every internal error downgrades to whatever
// state was produced so far, with the original bytes as the floor.
func (p *Pipeline) Process(ctx context.Context, original []byte, declaredType string) *Result {
	fallback := &Result{
		Image:       original,
		ContentType: declaredType,
		Processed:   false,
	}

	src, err := imaging.Decode(bytes.NewReader(original), imaging.AutoOrientation(true))
	if err != nil {
		logger.Log.Warnw("image decode failed, storing original", "error", err)
		return fallback
	}

	flat := flattenToWhite(src)

	primary, err := encodePrimary(flat)
	if err != nil {
		logger.Log.Warnw("image optimization failed, storing original", "error", err)
		primary = nil
	}

	thumb, err := encodeThumbnail(flat)
	if err != nil {
		logger.Log.Warnw("thumbnail generation failed, continuing without one", "error", err)
		thumb = nil
	}

	if primary == nil {
		fallback.Thumbnail = thumb
		return fallback
	}

	return &Result{
		Image:       primary,
		Thumbnail:   thumb,
		ContentType: "image/jpeg",
		Processed:   true,
	}
}

// flattenToWhite composites alpha-bearing pixels onto a white background so
// the output is always JPEG-encodable RGB.
func flattenToWhite(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	bg := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

// encodePrimary resizes when either dimension exceeds the bound, preserving
// aspect ratio. Images already within bounds skip resizing and go through
// the size-capped compression pass instead.
func encodePrimary(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= MaxPrimaryWidth && bounds.Dy() <= MaxPrimaryHeight {
		return compressCapped(img, maxEncodedSize, minQuality)
	}

	resized := imaging.Fit(img, MaxPrimaryWidth, MaxPrimaryHeight, imaging.Lanczos)
	return encodeJPEG(resized, primaryQuality)
}

// compressCapped steps the JPEG quality down from the starting quality until
// the encoded size fits under the cap, accepting whatever the floor yields.
func compressCapped(img image.Image, maxSize, floorQuality int) ([]byte, error) {
	var out []byte
	for q := primaryQuality; q >= floorQuality; q -= qualityStep {
		encoded, err := encodeJPEG(img, q)
		if err != nil {
			return nil, err
		}
		out = encoded
		if len(encoded) <= maxSize {
			break
		}
	}
	return out, nil
}

// encodeThumbnail fits the image into the thumbnail box (never upscaling)
// and applies a mild sharpen to compensate for resampling softness.
func encodeThumbnail(img image.Image) ([]byte, error) {
	thumb := imaging.Fit(img, ThumbnailSize, ThumbnailSize, imaging.Lanczos)
	thumb = imaging.Sharpen(thumb, 0.3)
	return encodeJPEG(thumb, thumbnailQuality)
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
