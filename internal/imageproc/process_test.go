package imageproc_test

import (
	"bytes"
	"context"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/photoshare/server/internal/imageproc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func process(t *testing.T, data []byte) *imageproc.Result {
	t.Helper()

	res := imageproc.NewPipeline().Process(context.Background(), data, "image/jpeg")
	require.NotNil(t, res)
	return res
}

func decodedSize(t *testing.T, data []byte) (int, int) {
	t.Helper()

	img, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestProcess_SmallImageKeepsDimensions(t *testing.T) {
	res := process(t, jpegBytes(t, 800, 600))

	assert.True(t, res.Processed)
	assert.Equal(t, "image/jpeg", res.ContentType)

	w, h := decodedSize(t, res.Image)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestProcess_LargeImageIsDownscaled(t *testing.T) {
	res := process(t, jpegBytes(t, 4000, 2000))

	require.True(t, res.Processed)
	w, h := decodedSize(t, res.Image)

	assert.LessOrEqual(t, w, imageproc.MaxPrimaryWidth)
	assert.LessOrEqual(t, h, imageproc.MaxPrimaryHeight)

	// Aspect ratio 2:1 preserved within rounding.
	assert.InDelta(t, 2.0, float64(w)/float64(h), 0.01)
}

func TestProcess_ThumbnailFitsBoxAndKeepsAspect(t *testing.T) {
	res := process(t, jpegBytes(t, 1200, 900))

	require.NotNil(t, res.Thumbnail)
	w, h := decodedSize(t, res.Thumbnail)

	assert.LessOrEqual(t, w, imageproc.ThumbnailSize)
	assert.LessOrEqual(t, h, imageproc.ThumbnailSize)
	assert.InDelta(t, 1200.0/900.0, float64(w)/float64(h), 0.02)
}

func TestProcess_ThumbnailNeverUpscales(t *testing.T) {
	res := process(t, jpegBytes(t, 120, 90))

	require.NotNil(t, res.Thumbnail)
	w, h := decodedSize(t, res.Thumbnail)
	assert.Equal(t, 120, w)
	assert.Equal(t, 90, h)
}

func TestProcess_OrientationSixYieldsUprightPixels(t *testing.T) {
	// A 64x32 JPEG tagged orientation=6 represents a photo that must be
	// rotated to 32x64 to display upright. The stored primary image carries
	// the corrected pixels, so render time needs no orientation metadata.
	base := jpegBytes(t, 64, 32)
	data := withEXIF(t, base, tiffShortTag(tagOrientation, 6))

	res := process(t, data)
	require.True(t, res.Processed)

	w, h := decodedSize(t, res.Image)
	assert.Equal(t, 32, w)
	assert.Equal(t, 64, h)
}

func TestProcess_TransparentPNGFlattenedOntoWhite(t *testing.T) {
	img := imaging.New(50, 50, color.NRGBA{R: 0, G: 0, B: 0, A: 0})
	data := encodeTest(t, img, imaging.PNG)

	res := process(t, data)
	require.True(t, res.Processed)

	decoded, err := imaging.Decode(bytes.NewReader(res.Image))
	require.NoError(t, err)

	r, g, b, _ := decoded.At(25, 25).RGBA()
	assert.Greater(t, r>>8, uint32(240))
	assert.Greater(t, g>>8, uint32(240))
	assert.Greater(t, b>>8, uint32(240))
}

func TestProcess_UndecodableInputFallsBackToOriginal(t *testing.T) {
	original := bytes.Repeat([]byte{0x42}, 512)

	res := imageproc.NewPipeline().Process(context.Background(), original, "image/heic")
	require.NotNil(t, res)

	assert.False(t, res.Processed)
	assert.Equal(t, original, res.Image)
	assert.Nil(t, res.Thumbnail)
	assert.Equal(t, "image/heic", res.ContentType)
}
