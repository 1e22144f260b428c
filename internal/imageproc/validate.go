package imageproc

import (
	"image"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/photoshare/server/internal/logger"
	_ "golang.org/x/image/webp"
)

const (
	// MinFileSize guards against empty and placeholder uploads.
	MinFileSize = 100
	// MaxFileSize is the upload ceiling.
	MaxFileSize = 10 << 20
	// MinDimension and MaxDimension bound each pixel axis.
	MinDimension = 10
	MaxDimension = 10000

	maxFilenameLen = 255
)

// allowedFormats maps the sniffed MIME type to acceptance. The actual bytes
// decide the format; the declared content type is never trusted alone.
var allowedFormats = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/heic": true,
	"image/heif": true,
}

// heicFormats have no pure-Go decoder; they pass on sniff alone and the
// decode-based gates are skipped for them.
var heicFormats = map[string]bool{
	"image/heic": true,
	"image/heif": true,
}

// dangerousExtensions are rejected regardless of the declared content type.
var dangerousExtensions = map[string]bool{
	".exe": true, ".bat": true, ".cmd": true, ".com": true,
	".pif": true, ".scr": true, ".vbs": true, ".js": true,
	".jar": true, ".php": true, ".asp": true, ".jsp": true,
}

// reservedNames are Windows legacy device identifiers.
var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

var unsafeNameChars = regexp.MustCompile(`[<>:"|?*]`)

// Validate applies the upload gates in order; the first failure wins and is
// always a *ValidationError. On success the stream is rewound to the start.
func Validate(name, declaredType string, size int64, r io.ReadSeeker) error {
	if size < MinFileSize {
		return validationError("file is too small, upload a valid image file")
	}
	if size > MaxFileSize {
		return validationError("file is too large, the maximum size is 10MB")
	}

	if !isSafeFilename(name) {
		return validationError("file name contains invalid characters")
	}

	ext := strings.ToLower(filepath.Ext(name))
	if dangerousExtensions[ext] {
		return validationError("this file type cannot be uploaded")
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return err
	}
	mtype, err := mimetype.DetectReader(r)
	if err != nil {
		return validationError("not a valid image file")
	}
	sniffed := mtype.String()
	if i := strings.IndexByte(sniffed, ';'); i >= 0 {
		sniffed = sniffed[:i]
	}
	if declaredType != "" && declaredType != sniffed {
		logger.Log.Infow("declared content type differs from detected",
			"declared", declaredType, "detected", sniffed, "file", name)
	}

	if heicFormats[sniffed] {
		// No pure-Go decoder for HEIC/HEIF; accepted on sniff, the
		// decode-based gates do not apply.
		_, err := r.Seek(0, io.SeekStart)
		return err
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return err
	}
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return validationError("not a valid image file")
	}
	if !allowedFormats["image/"+format] {
		return validationError("unsupported image format, only JPEG, PNG, GIF, WEBP and HEIC can be uploaded")
	}

	if cfg.Width > MaxDimension || cfg.Height > MaxDimension {
		return validationError("image dimensions are too large, the maximum is 10000x10000px")
	}
	if cfg.Width < MinDimension || cfg.Height < MinDimension {
		return validationError("image dimensions are too small, the minimum is 10x10px")
	}

	// Integrity pass: a full pixel decode catches truncated or corrupt data
	// that still carries a valid header.
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := imaging.Decode(r); err != nil {
		return validationError("image file is corrupt")
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if err := scanEXIF(r); err != nil {
		return err
	}

	_, err = r.Seek(0, io.SeekStart)
	return err
}

func isSafeFilename(name string) bool {
	if name == "" || len(name) > maxFilenameLen {
		return false
	}
	if strings.Contains(name, "../") || strings.Contains(name, `\`) {
		return false
	}
	if unsafeNameChars.MatchString(name) {
		return false
	}
	if strings.HasPrefix(name, ".") {
		return false
	}
	if name != strings.TrimSpace(name) {
		return false
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	if reservedNames[strings.ToUpper(base)] {
		return false
	}
	return true
}
