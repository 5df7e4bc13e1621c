package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"gadgetfind/internal/domain"
)

// EmbeddedSource names the compiled-in catalog in events and logs
const EmbeddedSource = "embedded"

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// fileItem is the on-disk shape of a catalog entry
type fileItem struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Category  string `yaml:"category"`
	Thumbnail string `yaml:"thumbnail"`
	Image     string `yaml:"image"`
	Views     int    `yaml:"views"`
	Likes     int    `yaml:"likes"`
}

type fileCatalog struct {
	Items []fileItem `yaml:"items"`
}

// Default builds the compiled-in catalog
func Default() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// Load builds a catalog from a YAML file, or the embedded one when path is empty.
// It also returns a source name for logging.
func Load(path string) (*Catalog, string, error) {
	if strings.TrimSpace(path) == "" {
		c, err := Default()
		return c, EmbeddedSource, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	return c, path, err
}

// Parse decodes YAML catalog data
func Parse(data []byte) (*Catalog, error) {
	var raw fileCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	items := make([]domain.Item, 0, len(raw.Items))
	for _, fi := range raw.Items {
		items = append(items, domain.Item{
			ID:           fi.ID,
			Title:        fi.Title,
			Category:     fi.Category,
			ThumbnailRef: fi.Thumbnail,
			ImageRef:     fi.Image,
			Views:        fi.Views,
			Likes:        fi.Likes,
		})
	}

	c, err := New(items)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return c, nil
}
