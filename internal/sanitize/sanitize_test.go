package sanitize_test

import (
	"strings"
	"testing"

	"github.com/photoshare/server/internal/sanitize"
	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain title", input: "Sunset over the bay", want: "Sunset over the bay"},
		{name: "trims whitespace", input: "  hello  ", want: "hello"},
		{name: "escapes html", input: "a <b> c", want: "a &lt;b&gt; c"},
		{name: "empty", input: "", wantErr: sanitize.ErrTitleRequired},
		{name: "whitespace only", input: "   ", wantErr: sanitize.ErrTitleRequired},
		{name: "too long", input: strings.Repeat("x", 101), wantErr: sanitize.ErrTitleTooLong},
		{name: "max length ok", input: strings.Repeat("x", 100), want: strings.Repeat("x", 100)},
		{name: "escaped form exceeds bound", input: strings.Repeat("x", 99) + "<", wantErr: sanitize.ErrTitleTooLong},
		{name: "escaped form at bound", input: strings.Repeat("x", 96) + "<", want: strings.Repeat("x", 96) + "&lt;"},
		{name: "script tag", input: "<script>alert(1)</script>", wantErr: sanitize.ErrTitleUnsafe},
		{name: "javascript scheme", input: "click javascript:alert(1)", wantErr: sanitize.ErrTitleUnsafe},
		{name: "event handler", input: `x onerror= y`, wantErr: sanitize.ErrTitleUnsafe},
		{name: "vbscript scheme", input: "vbscript:msgbox", wantErr: sanitize.ErrTitleUnsafe},
		{name: "data html uri", input: "data:text/html,<p>", wantErr: sanitize.ErrTitleUnsafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sanitize.Title(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescription(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "empty is allowed", input: "", want: ""},
		{name: "plain text", input: "taken near the harbour", want: "taken near the harbour"},
		{name: "escapes html", input: "5 > 3", want: "5 &gt; 3"},
		{name: "too long", input: strings.Repeat("y", 1001), wantErr: sanitize.ErrDescriptionTooLong},
		{name: "iframe", input: "<iframe src=x>", wantErr: sanitize.ErrDescriptionUnsafe},
		{name: "embed", input: "<embed src=x>", wantErr: sanitize.ErrDescriptionUnsafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sanitize.Description(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "holiday.jpg", want: "holiday.jpg"},
		{name: "strips traversal", input: "../../evil.jpg", want: "evil.jpg"},
		{name: "strips forbidden chars", input: `a<b>c:d.png`, want: "abcd.png"},
		{name: "trims dots and spaces", input: "  .photo.gif. ", want: "photo.gif"},
		{name: "empty falls back", input: "", want: "image.jpg"},
		{name: "only junk falls back", input: `<>:"|?*`, want: "image.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize.Filename(tt.input))
		})
	}
}

func TestFilename_CapsLengthKeepingExtension(t *testing.T) {
	long := strings.Repeat("a", 200) + ".jpeg"
	got := sanitize.Filename(long)

	assert.LessOrEqual(t, len(got), 100)
	assert.True(t, strings.HasSuffix(got, ".jpeg"))
}
