package imageproc

import (
	"io"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// exifScriptMarkers are script-like fragments that must not appear in
// free-text EXIF fields.
var exifScriptMarkers = []string{"<script", "javascript:"}

type exifScanner struct {
	err error
}

func (s *exifScanner) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if s.err != nil {
		return s.err
	}
	val, err := tag.StringVal()
	if err != nil {
		// Non-text tag, nothing to scan.
		return nil
	}
	lower := strings.ToLower(val)
	for _, marker := range exifScriptMarkers {
		if strings.Contains(lower, marker) {
			s.err = validationError("image contains disallowed embedded data")
			return s.err
		}
	}
	return nil
}

// scanEXIF inspects EXIF free-text fields for embedded script content.
// Images without EXIF data, or with EXIF that cannot be parsed, pass: only a
// positive hit is fatal.
func scanEXIF(r io.Reader) error {
	x, err := exif.Decode(r)
	if err != nil {
		return nil
	}

	scanner := &exifScanner{}
	if err := x.Walk(scanner); err != nil {
		return scanner.err
	}
	return scanner.err
}
