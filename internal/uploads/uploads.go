// Package uploads stores guest-submitted files (identity photos, payment
// proofs, gallery images) on disk and enforces per-kind size and type limits.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge    = errors.New("uploaded file exceeds the size limit")
	ErrUnsupportedType = errors.New("unsupported file type")
)

type Store struct {
	dir                 string
	maxIDPhotoSize      int64
	maxPaymentProofSize int64
}

func New(dir string, maxIDPhotoSize, maxPaymentProofSize int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{
		dir:                 dir,
		maxIDPhotoSize:      maxIDPhotoSize,
		maxPaymentProofSize: maxPaymentProofSize,
	}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// SaveIDPhoto accepts image uploads only.
func (s *Store) SaveIDPhoto(fh *multipart.FileHeader) (string, error) {
	return s.save(fh, s.maxIDPhotoSize, false)
}

// SavePaymentProof accepts images or a PDF.
func (s *Store) SavePaymentProof(fh *multipart.FileHeader) (string, error) {
	return s.save(fh, s.maxPaymentProofSize, true)
}

// SaveGalleryImage shares the ID-photo constraints.
func (s *Store) SaveGalleryImage(fh *multipart.FileHeader) (string, error) {
	return s.save(fh, s.maxIDPhotoSize, false)
}

// Remove deletes a stored file. Cleanup after a failed submission is
// best-effort, so errors are only logged.
func (s *Store) Remove(name string) {
	if name == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, filepath.Base(name))); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove upload %s: %v", name, err)
	}
}

func (s *Store) save(fh *multipart.FileHeader, maxSize int64, allowPDF bool) (string, error) {
	if fh.Size > maxSize {
		return "", ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !allowedType(contentType, allowPDF) {
		return "", ErrUnsupportedType
	}

	name := uuid.NewString() + sanitizeExt(fh.Filename)
	if err := s.writeFile(name, head, src); err != nil {
		return "", err
	}
	return name, nil
}

// writeFile streams the upload to disk. A partially written file is removed
// on failure so an aborted upload leaves nothing behind.
func (s *Store) writeFile(name string, head []byte, src io.Reader) error {
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := dst.Write(head); err != nil {
		s.Remove(name)
		return fmt.Errorf("write upload: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		s.Remove(name)
		return fmt.Errorf("write upload: %w", err)
	}
	return nil
}

func allowedType(contentType string, allowPDF bool) bool {
	if strings.HasPrefix(contentType, "image/") {
		return true
	}
	return allowPDF && contentType == "application/pdf"
}

// sanitizeExt keeps only a plausible extension from the client filename;
// everything else about the stored name is server-generated.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) < 2 || len(ext) > 6 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
