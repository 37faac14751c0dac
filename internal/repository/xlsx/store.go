package xlsx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"uniforms-pos/internal/models"
)

// ErrUnreadable means the workbook exists but could not be parsed.
var ErrUnreadable = errors.New("sales workbook is unreadable")

// Store keeps every sale row in a single workbook on disk. Each Save
// rewrites the whole file via a temporary file and a rename.
type Store struct {
	path string
	now  func() time.Time
}

func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

func (s *Store) Path() string { return s.path }

// Load returns every stored row. A missing file is an empty store.
func (s *Store) Load() ([]models.Row, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer f.Close()

	rows, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return rows, nil
}

func (s *Store) Save(rows []models.Row) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "create store dir")
	}

	var buf bytes.Buffer
	if err := Encode(&buf, rows); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, "write workbook")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(err, "replace workbook")
	}
	return nil
}

// Export copies the workbook byte for byte. An empty store exports a
// workbook holding only the header row.
func (s *Store) Export(w io.Writer) error {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Encode(w, nil)
	}
	if err != nil {
		return errors.Wrap(err, "open workbook")
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}

// Reset moves the current workbook aside and returns where it went, so
// an unreadable file is never destroyed. The next Save starts fresh.
func (s *Store) Reset() (string, error) {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	aside := fmt.Sprintf("%s.%s.bak", s.path, s.now().Format("20060102-150405"))
	if err := os.Rename(s.path, aside); err != nil {
		return "", errors.Wrap(err, "move workbook aside")
	}
	return aside, nil
}
