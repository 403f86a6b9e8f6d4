package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/theEndless11/news/pkg/apperr"
)

// Store persists message attachments on local disk. Stored files are
// served back verbatim under the /uploads/ mount.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload folder: %v", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the file under a name prefixed with the current
// millisecond timestamp and returns its public /uploads/ path.
// Collisions are only probabilistically avoided, same as the filename
// scheme it reproduces.
func (s *Store) Save(src io.Reader, originalName string) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(originalName))

	out, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", apperr.Wrap(apperr.KindStorage, "failed to save file", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", apperr.Wrap(apperr.KindStorage, "failed to write file", err)
	}

	return "/uploads/" + name, nil
}
