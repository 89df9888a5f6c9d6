package repository

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/noah-isme/techclub-site/internal/models"
)

//go:embed seed/catalog.json
var seedCatalog []byte

// catalogDocument is the on-disk shape. A document may either carry the two
// event groups directly or a single "events" collection to be partitioned.
type catalogDocument struct {
	models.Catalog
	Events []models.Event `json:"events"`
}

// FileCatalogRepository reads the catalog from a JSON document, either the
// one compiled into the binary or a file on disk.
type FileCatalogRepository struct {
	path string
	read func() ([]byte, error)
}

// NewEmbeddedCatalogRepository serves the seed catalog bundled with the binary.
func NewEmbeddedCatalogRepository() *FileCatalogRepository {
	return &FileCatalogRepository{read: func() ([]byte, error) { return seedCatalog, nil }}
}

// NewFileCatalogRepository reads the catalog from path on every Load, so an
// edited file is picked up by a reload.
func NewFileCatalogRepository(path string) *FileCatalogRepository {
	return &FileCatalogRepository{path: path, read: func() ([]byte, error) { return os.ReadFile(path) }}
}

// Name identifies the source in logs and metrics.
func (r *FileCatalogRepository) Name() string {
	if r.path == "" {
		return "embedded"
	}
	return "file"
}

// Load decodes the document into a catalog.
func (r *FileCatalogRepository) Load(ctx context.Context) (*models.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := r.read()
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", r.location(), err)
	}
	return decodeCatalog(raw, r.location())
}

func (r *FileCatalogRepository) location() string {
	if r.path == "" {
		return "seed/catalog.json"
	}
	return r.path
}

func decodeCatalog(raw []byte, location string) (*models.Catalog, error) {
	var doc catalogDocument
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", location, err)
	}

	catalog := doc.Catalog
	if len(doc.Events) > 0 {
		upcoming, past := models.PartitionEvents(doc.Events)
		catalog.UpcomingEvents = append(catalog.UpcomingEvents, upcoming...)
		catalog.PastEvents = append(catalog.PastEvents, past...)
	}
	if catalog.UpcomingEvents == nil {
		catalog.UpcomingEvents = []models.Event{}
	}
	if catalog.PastEvents == nil {
		catalog.PastEvents = []models.Event{}
	}
	if catalog.Projects == nil {
		catalog.Projects = []models.Project{}
	}
	return &catalog, nil
}
