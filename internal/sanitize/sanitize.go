package sanitize

import (
	"errors"
	"html"
	"path/filepath"
	"regexp"
	"strings"
)

// Error variables
var (
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title must be 100 characters or less")
	ErrTitleUnsafe        = errors.New("title contains disallowed content")
	ErrDescriptionTooLong = errors.New("description must be 1000 characters or less")
	ErrDescriptionUnsafe  = errors.New("description contains disallowed content")
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 1000
	maxStoredNameLen  = 100
)

// dangerousPatterns match markup and script content that is rejected
// outright rather than merely escaped.
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
	regexp.MustCompile(`(?i)<iframe[^>]*>`),
	regexp.MustCompile(`(?i)<object[^>]*>`),
	regexp.MustCompile(`(?i)<embed[^>]*>`),
	regexp.MustCompile(`(?i)<link[^>]*>`),
	regexp.MustCompile(`(?i)<meta[^>]*>`),
	regexp.MustCompile(`(?i)vbscript:`),
	regexp.MustCompile(`(?i)data:text/html`),
}

// ContainsDangerousContent reports whether text matches any of the blocked
// markup or script patterns.
func ContainsDangerousContent(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range dangerousPatterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

// Title trims, bounds, HTML-escapes and pattern-checks a photo title.
// The escape and the pattern rejection are both applied: escaping fixes the
// stored representation, the pattern check refuses obviously hostile input
// with an explicit error.
func Title(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrTitleRequired
	}
	if len([]rune(title)) > maxTitleLen {
		return "", ErrTitleTooLong
	}
	escaped := html.EscapeString(title)
	// The escaped form is what gets stored, and escaping expands entities;
	// it must fit the same bound or the insert would overflow the column.
	if len([]rune(escaped)) > maxTitleLen {
		return "", ErrTitleTooLong
	}
	if ContainsDangerousContent(escaped) || ContainsDangerousContent(title) {
		return "", ErrTitleUnsafe
	}
	return escaped, nil
}

// Description trims, bounds, HTML-escapes and pattern-checks a photo
// description. Empty descriptions are allowed.
func Description(description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", nil
	}
	if len([]rune(description)) > maxDescriptionLen {
		return "", ErrDescriptionTooLong
	}
	escaped := html.EscapeString(description)
	if ContainsDangerousContent(escaped) || ContainsDangerousContent(description) {
		return "", ErrDescriptionUnsafe
	}
	return escaped, nil
}

var (
	forbiddenChars = regexp.MustCompile(`[<>:"|?*\\]`)
	traversal      = regexp.MustCompile(`\.\./`)
)

// Filename normalizes an uploaded file name into a storage-safe one.
// It strips forbidden characters and traversal sequences, trims leading and
// trailing spaces and dots, caps the length preserving the extension, and
// falls back to "image.jpg" when nothing usable remains.
func Filename(name string) string {
	name = forbiddenChars.ReplaceAllString(name, "")
	name = traversal.ReplaceAllString(name, "")
	name = strings.Trim(name, " .")

	if len(name) > maxStoredNameLen {
		ext := filepath.Ext(name)
		base := strings.TrimSuffix(name, ext)
		cut := maxStoredNameLen - len(ext)
		if cut < 0 {
			cut = 0
		}
		if cut > len(base) {
			cut = len(base)
		}
		name = base[:cut] + ext
	}

	if name == "" {
		name = "image.jpg"
	}
	return name
}
