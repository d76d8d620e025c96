package uploads

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func multipartFile(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile returned error: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	w.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("ParseMultipartForm returned error: %v", err)
	}
	return req.MultipartForm.File[field][0]
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), 1<<20, 2<<20)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return s
}

func TestSaveIDPhoto(t *testing.T) {
	s := newTestStore(t)

	fh := multipartFile(t, "idDocument", "passport.png", pngHeader)
	name, err := s.SaveIDPhoto(fh)
	if err != nil {
		t.Fatalf("SaveIDPhoto returned error: %v", err)
	}
	if filepath.Ext(name) != ".png" {
		t.Errorf("expected .png extension, got %q", name)
	}

	if _, err := os.Stat(filepath.Join(s.Dir(), name)); err != nil {
		t.Errorf("stored file missing: %v", err)
	}
}

func TestSaveRejectsNonImage(t *testing.T) {
	s := newTestStore(t)

	fh := multipartFile(t, "idDocument", "notes.txt", []byte("plain text, not an image"))
	if _, err := s.SaveIDPhoto(fh); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestSaveRejectsOversized(t *testing.T) {
	s := newTestStore(t)

	big := make([]byte, 1<<20+1)
	copy(big, pngHeader)
	fh := multipartFile(t, "idDocument", "huge.png", big)
	if _, err := s.SaveIDPhoto(fh); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestPaymentProofAllowsPDF(t *testing.T) {
	s := newTestStore(t)

	pdf := []byte("%PDF-1.4\n%fake body")
	fh := multipartFile(t, "paymentProof", "proof.pdf", pdf)
	if _, err := s.SavePaymentProof(fh); err != nil {
		t.Fatalf("SavePaymentProof returned error: %v", err)
	}

	// But the ID photo slot still refuses PDFs.
	fh = multipartFile(t, "idDocument", "proof.pdf", pdf)
	if _, err := s.SaveIDPhoto(fh); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType for PDF id photo, got %v", err)
	}
}

func TestRemoveBestEffort(t *testing.T) {
	s := newTestStore(t)

	fh := multipartFile(t, "idDocument", "passport.png", pngHeader)
	name, err := s.SaveIDPhoto(fh)
	if err != nil {
		t.Fatalf("SaveIDPhoto returned error: %v", err)
	}

	s.Remove(name)
	if _, err := os.Stat(filepath.Join(s.Dir(), name)); !os.IsNotExist(err) {
		t.Errorf("expected file to be removed, stat err=%v", err)
	}

	// Removing again (or junk) must not panic.
	s.Remove(name)
	s.Remove("")
	s.Remove("../outside.txt")
}

func TestWriteFileCleansUpOnFailure(t *testing.T) {
	s := newTestStore(t)

	src := iotest.ErrReader(errors.New("connection reset"))
	if err := s.writeFile("half.png", pngHeader, src); err == nil {
		t.Fatal("expected error from failing source")
	}

	if _, err := os.Stat(filepath.Join(s.Dir(), "half.png")); !os.IsNotExist(err) {
		t.Errorf("expected partial file to be removed, stat err=%v", err)
	}
}

func TestSanitizeExt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.JPG", ".jpg"},
		{"scan.pdf", ".pdf"},
		{"noext", ""},
		{"weird.@@@", ""},
		{"double.tar.verylongext", ""},
	}
	for _, tt := range tests {
		if got := sanitizeExt(tt.in); got != tt.want {
			t.Errorf("sanitizeExt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
