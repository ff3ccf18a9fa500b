package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quickdesk-io/quickdesk/internal/domain/ticket"
	"github.com/quickdesk-io/quickdesk/internal/shared/constants"
)

// FileStore persists ticket attachments.
type FileStore interface {
	Save(r io.Reader, originalName string) (storedName string, size int64, err error)
	Path(storedName string) (string, error)
	Remove(storedName string) error
}

// LocalFileStore writes attachments under a single upload directory using
// generated names, so client-supplied names never touch the filesystem.
type LocalFileStore struct {
	dir string
}

func NewLocalFileStore(dir string) (*LocalFileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalFileStore{dir: dir}, nil
}

func (s *LocalFileStore) Save(r io.Reader, originalName string) (string, int64, error) {
	sanitized := ticket.SanitizeFilename(originalName)
	if sanitized == "" {
		return "", 0, fmt.Errorf("invalid file name")
	}
	if !ticket.IsAllowedAttachment(sanitized) {
		return "", 0, fmt.Errorf("file type %s is not allowed", filepath.Ext(sanitized))
	}

	storedName, err := generateStoredName(sanitized)
	if err != nil {
		return "", 0, err
	}

	dst, err := os.OpenFile(filepath.Join(s.dir, storedName), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	// One extra byte past the limit turns the copy into a hard failure
	// instead of silently truncating.
	size, err := io.Copy(dst, io.LimitReader(r, constants.MaxAttachmentBytes+1))
	if err != nil {
		os.Remove(dst.Name())
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}
	if size > constants.MaxAttachmentBytes {
		os.Remove(dst.Name())
		return "", 0, fmt.Errorf("file exceeds maximum size of %d bytes", constants.MaxAttachmentBytes)
	}
	if size == 0 {
		os.Remove(dst.Name())
		return "", 0, fmt.Errorf("file is empty")
	}

	return storedName, size, nil
}

// Path resolves a stored name to an absolute path, rejecting anything that
// would escape the upload directory.
func (s *LocalFileStore) Path(storedName string) (string, error) {
	if storedName == "" || strings.ContainsAny(storedName, `/\`) || strings.Contains(storedName, "..") {
		return "", fmt.Errorf("invalid stored name")
	}

	full := filepath.Join(s.dir, storedName)
	if _, err := os.Stat(full); err != nil {
		return "", fmt.Errorf("file not found: %w", err)
	}
	return full, nil
}

func (s *LocalFileStore) Remove(storedName string) error {
	full, err := s.Path(storedName)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

func generateStoredName(sanitized string) (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate file name: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(sanitized))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), hex.EncodeToString(buf), ext), nil
}
