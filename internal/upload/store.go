package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/akhmetov-d/presentio/internal/domain"
)

// LocalStore keeps booking attachments on local disk under a uuid name and
// hands back the file reference stored verbatim on the slot.
type LocalStore struct {
	dir     string
	maxSize int64
}

func NewLocalStore(dir string, maxSizeBytes int64) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, maxSize: maxSizeBytes}, nil
}

func (s *LocalStore) Save(fh *multipart.FileHeader) (*domain.FileAttachment, error) {
	if s.maxSize > 0 && fh.Size > s.maxSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrValidation, s.maxSize)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	storedName := uuid.New().String() + filepath.Ext(fh.Filename)
	path := filepath.Join(s.dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create stored file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("write stored file: %w", err)
	}

	return &domain.FileAttachment{
		OriginalName: fh.Filename,
		StoredName:   storedName,
		MimeType:     fh.Header.Get("Content-Type"),
		Size:         fh.Size,
		Path:         path,
	}, nil
}
