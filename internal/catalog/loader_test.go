// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/vector"
)

func zeroLogger() zerolog.Logger {
	return zerolog.Nop()
}

const yamlCatalog = `movies:
  - id: 10
    title: Heat
    year: 1995
    genres: [Crime, Thriller]
    vector: {tone: 7.5, intensity: 8, complexity: 7}
  - id: 11
    title: Paterson
    year: 2016
    genres: [Drama]
    vector: {tone: 3, intensity: 1, complexity: 6}
`

const jsonCatalog = `{"movies": [
  {"id": 5, "title": "Heat", "year": 1995, "genres": ["Crime"], "vector": {"tone": 7.5, "intensity": 8, "complexity": 7}}
]}`

func TestDefault(t *testing.T) {
	t.Parallel()

	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	if c.Len() < 50 {
		t.Errorf("Len() = %d, want at least 50", c.Len())
	}
	if c.Source() != EmbeddedSource {
		t.Errorf("Source() = %q, want %q", c.Source(), EmbeddedSource)
	}

	for _, item := range c.Items() {
		v := item.Vector
		for _, comp := range []float64{v.X, v.Y, v.Z} {
			if comp < 1 || comp > 10 {
				t.Errorf("item %d (%s) vector %v outside [1, 10]", item.ID, item.Title, v)
			}
		}
		if len(item.Genres) == 0 {
			t.Errorf("item %d (%s) has no genres", item.ID, item.Title)
		}
	}

	first, ok := c.Get(1)
	if !ok || first.Title != "Paddington 2" {
		t.Errorf("Get(1) = %+v, %v; want Paddington 2", first, ok)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      string
		format    Format
		wantLen   int
		wantFirst int
	}{
		{"yaml", yamlCatalog, FormatYAML, 2, 10},
		{"json", jsonCatalog, FormatJSON, 1, 5},
		{"empty yaml", "movies: []\n", FormatYAML, 0, 0},
		{"empty json", `{"movies": []}`, FormatJSON, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := Parse([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if c.Len() != tt.wantLen {
				t.Fatalf("Len() = %d, want %d", c.Len(), tt.wantLen)
			}
			if tt.wantLen > 0 && c.Items()[0].ID != tt.wantFirst {
				t.Errorf("first ID = %d, want %d", c.Items()[0].ID, tt.wantFirst)
			}
		})
	}
}

func TestParse_DecodesVector(t *testing.T) {
	t.Parallel()

	c, err := Parse([]byte(yamlCatalog), FormatYAML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	item, ok := c.Get(11)
	if !ok {
		t.Fatal("Get(11) not found")
	}
	if item.Vector != vector.New(3, 1, 6) {
		t.Errorf("Vector = %v, want (3, 1, 6)", item.Vector)
	}
	if item.Year != 2016 || item.Title != "Paterson" {
		t.Errorf("item = %+v", item)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		format  Format
		wantErr error
		wantMsg string
	}{
		{
			name:    "unsupported format",
			data:    "{}",
			format:  Format("toml"),
			wantErr: ErrUnsupportedFormat,
		},
		{
			name:    "malformed json",
			data:    `{"movies": [`,
			format:  FormatJSON,
			wantMsg: "decode catalog json",
		},
		{
			name:    "malformed yaml",
			data:    "movies: [\n  - id: :",
			format:  FormatYAML,
			wantMsg: "decode catalog yaml",
		},
		{
			name:    "missing title",
			data:    "movies:\n  - id: 1\n    year: 2000\n",
			format:  FormatYAML,
			wantMsg: "title is required",
		},
		{
			name:    "year out of range",
			data:    "movies:\n  - id: 1\n    title: Old\n    year: 1700\n",
			format:  FormatYAML,
			wantMsg: "year must be greater than or equal to 1888",
		},
		{
			name:    "duplicate id",
			data:    "movies:\n  - {id: 1, title: A, year: 2000}\n  - {id: 1, title: B, year: 2001}\n",
			format:  FormatYAML,
			wantErr: ErrDuplicateID,
		},
		{
			name:    "NaN component",
			data:    "movies:\n  - id: 1\n    title: A\n    year: 2000\n    vector: {tone: .nan, intensity: 1, complexity: 1}\n",
			format:  FormatYAML,
			wantErr: vector.ErrNonFinite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.data), tt.format)
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Parse() error = %q, want substring %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "movies.yml")
	jsonPath := filepath.Join(dir, "movies.JSON")
	if err := os.WriteFile(yamlPath, []byte(yamlCatalog), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(jsonPath, []byte(jsonCatalog), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("yaml file", func(t *testing.T) {
		c, err := Load(yamlPath)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if c.Len() != 2 || c.Source() != yamlPath {
			t.Errorf("Len() = %d, Source() = %q", c.Len(), c.Source())
		}
	})

	t.Run("json file with upper-case extension", func(t *testing.T) {
		c, err := Load(jsonPath)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if c.Len() != 1 {
			t.Errorf("Len() = %d, want 1", c.Len())
		}
	})

	t.Run("empty path uses embedded catalog", func(t *testing.T) {
		c, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if c.Source() != EmbeddedSource {
			t.Errorf("Source() = %q, want %q", c.Source(), EmbeddedSource)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Load() error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "movies.csv")); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Load() error = %v, want ErrUnsupportedFormat", err)
		}
	})
}
