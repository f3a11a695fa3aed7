// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/validation"
	"github.com/tomtom215/cinematch/internal/vector"
)

// EmbeddedSource is the Source of the catalog built into the binary.
const EmbeddedSource = "embedded"

//go:embed data/movies.json
var embeddedMovies []byte

// ErrUnsupportedFormat is returned for catalog files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Format identifies a catalog file encoding.
type Format string

// Supported catalog file formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// catalogFile is the on-disk catalog document.
type catalogFile struct {
	Movies []movieRecord `json:"movies" yaml:"movies" validate:"dive"`
}

// movieRecord is a single catalog entry as written in a file.
type movieRecord struct {
	ID     int            `json:"id" yaml:"id" validate:"gt=0"`
	Title  string         `json:"title" yaml:"title" validate:"required,max=200"`
	Year   int            `json:"year" yaml:"year" validate:"gte=1888,lte=2100"`
	Genres []string       `json:"genres" yaml:"genres" validate:"max=10,dive,required,max=40"`
	Vector vector.Vector3 `json:"vector" yaml:"vector"`
}

func (r *movieRecord) toItem() recommend.CatalogItem {
	return recommend.CatalogItem{
		ID:     r.ID,
		Title:  r.Title,
		Year:   r.Year,
		Genres: r.Genres,
		Vector: r.Vector,
	}
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return parse(embeddedMovies, FormatJSON, EmbeddedSource)
}

// Load reads a catalog from path. An empty path selects the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return parse(data, format, path)
}

// Parse decodes a catalog document in the given format.
func Parse(data []byte, format Format) (*Catalog, error) {
	return parse(data, format, "memory")
}

func parse(data []byte, format Format, source string) (*Catalog, error) {
	var doc catalogFile

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode catalog json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode catalog yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if verr := validation.ValidateStruct(&doc); verr != nil {
		return nil, fmt.Errorf("validate catalog: %w", verr)
	}

	items := make([]recommend.CatalogItem, len(doc.Movies))
	for i := range doc.Movies {
		items[i] = doc.Movies[i].toItem()
	}

	return newCatalog(items, source)
}

// FormatFromPath infers the catalog format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
