package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransliterate(t *testing.T) {
	cases := map[string]string{
		"Отчёт":                "otchet",
		"Электродвигатель АИР": "elektrodvigatel-air",
		"Промышленные насосы!": "promyshlennye-nasosy",
		"café menu":            "cafe-menu",
		"--hello--world--":     "hello-world",
		"Прайс 2024 (новый)":   "prays-2024-novyy",
	}
	for in, want := range cases {
		assert.Equal(t, want, Transliterate(in), "input %q", in)
	}
}

func TestTransliterateOutputIsSafe(t *testing.T) {
	safe := regexp.MustCompile(`^[a-z0-9-]*$`)
	for _, in := range []string{"Отчёт.pdf", "щука&ёж", "  spaces  ", "ЁЛКА/ЗИМА"} {
		out := Transliterate(in)
		assert.True(t, safe.MatchString(out), "got %q for %q", out, in)
	}
}

// fileHeader builds a real multipart header the way gin hands it to us.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

var pdfContent = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF")

// 1x1 transparent PNG.
var pngContent = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestSaveCyrillicFilename(t *testing.T) {
	h := NewHandler(t.TempDir())

	res, err := h.Save(fileHeader(t, "Отчёт.pdf", pdfContent), "Насосы", CategoryFiles)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.FilePath, "/uploads/nasosy/files/otchet-"), "got %s", res.FilePath)
	assert.True(t, strings.HasSuffix(res.FilePath, ".pdf"))
	assert.Equal(t, "Отчёт.pdf", res.OriginalName)
	assert.Equal(t, int64(len(pdfContent)), res.Size)

	// Every path segment is [a-z0-9-] plus the extension dot.
	safe := regexp.MustCompile(`^/uploads/[a-z0-9-]+/[a-z0-9-]+/[a-z0-9-]+\.pdf$`)
	assert.True(t, safe.MatchString(res.FilePath), "got %s", res.FilePath)

	// And the file is actually on disk under the handler root.
	rel := strings.TrimPrefix(res.FilePath, "/uploads/")
	_, err = os.Stat(filepath.Join(h.Dir, filepath.FromSlash(rel)))
	assert.NoError(t, err)
}

func TestSaveImage(t *testing.T) {
	h := NewHandler(t.TempDir())

	res, err := h.Save(fileHeader(t, "логотип.png", pngContent), "Партнёры", CategoryImages)
	require.NoError(t, err)
	assert.Contains(t, res.FilePath, "/partnery/images/")
	assert.True(t, strings.HasSuffix(res.FilePath, ".png"))
}

func TestRejectExecutableAsImage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	h := NewHandler(dir)

	exe := append([]byte("MZ"), bytes.Repeat([]byte{0x90}, 128)...)
	_, err := h.Save(fileHeader(t, "setup.exe", exe), "catalog", CategoryImages)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	// Rejected before anything touched the disk.
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRejectPdfAsImage(t *testing.T) {
	h := NewHandler(t.TempDir())

	_, err := h.Save(fileHeader(t, "doc.pdf", pdfContent), "catalog", CategoryImages)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestRejectOversizedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	h := NewHandler(dir)

	big := make([]byte, 15<<20)
	copy(big, pdfContent)
	_, err := h.Save(fileHeader(t, "huge.pdf", big), "catalog", CategoryFiles)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRejectUnknownCategory(t *testing.T) {
	h := NewHandler(t.TempDir())

	_, err := h.Save(fileHeader(t, "doc.pdf", pdfContent), "catalog", "archives")
	assert.ErrorIs(t, err, ErrBadCategory)
}
