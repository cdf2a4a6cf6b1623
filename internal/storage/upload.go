package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Uploads stores uploaded images under a single directory and hands
// back the stored filename. Only the filename is ever persisted; the
// directory is configuration.
type Uploads struct {
	dir string
}

// NewUploads creates the upload directory if needed.
func NewUploads(dir string) (*Uploads, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Uploads{dir: dir}, nil
}

// SaveIssueImage stores an issue photo under a uuid-prefixed name so
// identical client filenames cannot collide.
func (u *Uploads) SaveIssueImage(file *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.NewString(), SanitizeFilename(file.Filename))
	return name, u.save(file, name)
}

// SaveItemImage stores a lost-and-found photo under a
// timestamp-prefixed name.
func (u *Uploads) SaveItemImage(file *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%s_%s", time.Now().Format("20060102150405"), SanitizeFilename(file.Filename))
	return name, u.save(file, name)
}

func (u *Uploads) save(file *multipart.FileHeader, name string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write upload: %w", err)
	}
	return nil
}

// SanitizeFilename strips any path components from a client-supplied
// filename and reduces it to a safe character set. Arbitrary filenames
// reach this point straight from the multipart form, so nothing here
// may end up interpreted as a path.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	name = strings.TrimLeft(name, ".")
	if name == "" {
		name = "upload"
	}
	return name
}
