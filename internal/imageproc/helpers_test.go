package imageproc_test

import (
	"bytes"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

// noiseImage returns an image with per-pixel noise so encodings do not
// collapse to a few bytes.
func noiseImage(w, h int) *image.NRGBA {
	rng := rand.New(rand.NewSource(42))
	img := imaging.New(w, h, color.White)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}
	return img
}

func encodeTest(t *testing.T, img image.Image, format imaging.Format) []byte {
	t.Helper()

	var buf bytes.Buffer
	err := imaging.Encode(&buf, img, format)
	require.NoError(t, err)
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	return encodeTest(t, noiseImage(w, h), imaging.JPEG)
}

// tiffShortTag builds a minimal little-endian TIFF holding a single SHORT
// tag in IFD0.
func tiffShortTag(tag, val uint16) []byte {
	buf := []byte{'I', 'I', 0x2A, 0x00, 8, 0, 0, 0}
	buf = append(buf, 1, 0) // one IFD entry
	buf = append(buf,
		byte(tag), byte(tag>>8),
		3, 0, // SHORT
		1, 0, 0, 0,
		byte(val), byte(val>>8), 0, 0,
	)
	buf = append(buf, 0, 0, 0, 0) // no next IFD
	return buf
}

// tiffASCIITag builds a minimal little-endian TIFF holding a single ASCII
// tag in IFD0, with the string stored after the IFD.
func tiffASCIITag(tag uint16, s string) []byte {
	data := append([]byte(s), 0)
	n := uint32(len(data))

	buf := []byte{'I', 'I', 0x2A, 0x00, 8, 0, 0, 0}
	buf = append(buf, 1, 0)
	buf = append(buf,
		byte(tag), byte(tag>>8),
		2, 0, // ASCII
		byte(n), byte(n>>8), byte(n>>16), byte(n>>24),
		26, 0, 0, 0, // data starts right after the IFD
	)
	buf = append(buf, 0, 0, 0, 0)
	buf = append(buf, data...)
	return buf
}

// withEXIF splices an EXIF APP1 segment into a JPEG right after SOI.
func withEXIF(t *testing.T, jpg, tiff []byte) []byte {
	t.Helper()
	require.True(t, len(jpg) > 2 && jpg[0] == 0xFF && jpg[1] == 0xD8, "not a JPEG")

	payload := append([]byte("Exif\x00\x00"), tiff...)
	segLen := len(payload) + 2

	out := make([]byte, 0, len(jpg)+4+len(payload))
	out = append(out, jpg[:2]...)
	out = append(out, 0xFF, 0xE1, byte(segLen>>8), byte(segLen))
	out = append(out, payload...)
	out = append(out, jpg[2:]...)
	return out
}

const (
	tagImageDescription = 0x010E
	tagOrientation      = 0x0112
)
