package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"uniforms-pos/internal/models"
)

const (
	DefaultShirtPrice   int64 = 30000
	DefaultTrouserPrice int64 = 45000
)

var ErrUnknownSize = errors.New("unknown shirt size")

// Catalog is the price list. Rows copy prices out of it, so edits never
// reprice stored sales.
type Catalog struct {
	BoyShirt  map[string]int64 `json:"boy_shirt"`
	GirlShirt map[string]int64 `json:"girl_shirt"`
	Trouser   int64            `json:"trouser"`
	UpdatedAt string           `json:"updated_at"`
}

func Default() Catalog {
	c := Catalog{
		BoyShirt:  make(map[string]int64, len(models.Sizes)),
		GirlShirt: make(map[string]int64, len(models.Sizes)),
		Trouser:   DefaultTrouserPrice,
	}
	for _, s := range models.Sizes {
		c.BoyShirt[s] = DefaultShirtPrice
		c.GirlShirt[s] = DefaultShirtPrice
	}
	return c
}

func (c Catalog) UnitShirtPrice(kind models.ChildKind, size string) (int64, error) {
	table := c.BoyShirt
	if kind == models.Girl {
		table = c.GirlShirt
	}
	p, ok := table[size]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSize, size)
	}
	return p, nil
}

func (c Catalog) UnitTrouserPrice() int64 {
	return c.Trouser
}

// Clone returns a deep copy.
func (c Catalog) Clone() Catalog {
	out := Catalog{
		BoyShirt:  make(map[string]int64, len(c.BoyShirt)),
		GirlShirt: make(map[string]int64, len(c.GirlShirt)),
		Trouser:   c.Trouser,
		UpdatedAt: c.UpdatedAt,
	}
	for k, v := range c.BoyShirt {
		out.BoyShirt[k] = v
	}
	for k, v := range c.GirlShirt {
		out.GirlShirt[k] = v
	}
	return out
}

// Validate requires a non-negative price for every size of both tables.
func (c Catalog) Validate() error {
	if c.Trouser < 0 {
		return errors.New("trouser price must not be negative")
	}
	for _, s := range models.Sizes {
		b, ok := c.BoyShirt[s]
		if !ok || b < 0 {
			return fmt.Errorf("boy shirt size %s: missing or negative price", s)
		}
		g, ok := c.GirlShirt[s]
		if !ok || g < 0 {
			return fmt.Errorf("girl shirt size %s: missing or negative price", s)
		}
	}
	return nil
}

// FileStore keeps the catalog as a JSON document.
type FileStore struct {
	path string
	now  func() time.Time
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Load returns the default catalog when the document does not exist yet.
func (s *FileStore) Load() (Catalog, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	c := Default()
	if err := json.Unmarshal(b, &c); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", s.path, err)
	}
	return c, nil
}

// Save stamps UpdatedAt and replaces the document.
func (s *FileStore) Save(c Catalog) (Catalog, error) {
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	c = c.Clone()
	c.UpdatedAt = s.now().Format("2006-01-02 15:04:05")

	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return Catalog{}, fmt.Errorf("encode catalog: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Catalog{}, fmt.Errorf("catalog dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return Catalog{}, fmt.Errorf("write catalog: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return Catalog{}, fmt.Errorf("replace catalog: %w", err)
	}
	return c, nil
}
