// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/recommend"
)

const testCatalogYAML = `movies:
  - id: 1
    title: Bright Epic
    year: 2001
    genres: [Drama]
    vector: {tone: 10, intensity: 10, complexity: 10}
  - id: 2
    title: Small Comedy
    year: 2005
    genres: [Comedy, Drama]
    vector: {tone: 1, intensity: 1, complexity: 1}
  - id: 3
    title: Dark Farce
    year: 2010
    genres: [Comedy]
    vector: {tone: 10, intensity: 1, complexity: 1}
`

func writeTestCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.yaml")
	if err := os.WriteFile(path, []byte(testCatalogYAML), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeRanking(t *testing.T, out string) rankingOutput {
	t.Helper()
	var got rankingOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v\n%s", err, out)
	}
	return got
}

func rowIDs(rows []recommend.RankedItem) []int {
	ids := make([]int, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRankCommand_JSON(t *testing.T) {
	t.Parallel()
	path := writeTestCatalog(t)

	tests := []struct {
		name   string
		args   []string
		want   []int
		policy string
	}{
		{"default preference", nil, []int{1, 2, 3}, recommend.KPolicyDefault},
		{"dark and calm", []string{"--tone", "10", "--intensity", "1", "--complexity", "1"}, []int{3, 1, 2}, recommend.KPolicyDefault},
		{"k limits output", []string{"--tone", "10", "--intensity", "1", "--complexity", "1", "-k", "1"}, []int{3}, recommend.KPolicyRequested},
		{"k above max is clamped", []string{"-k", "500"}, []int{1, 2, 3}, recommend.KPolicyClamped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			args := append([]string{"rank", "--json", "--catalog", path}, tt.args...)
			out, err := run(t, args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			got := decodeRanking(t, out)
			if ids := rowIDs(got.Items); !equalInts(ids, tt.want) {
				t.Errorf("ids = %v, want %v", ids, tt.want)
			}
			if got.Mode != "preference" {
				t.Errorf("mode = %q, want preference", got.Mode)
			}
			if got.Items[0].Rank != 1 {
				t.Errorf("first rank = %d, want 1", got.Items[0].Rank)
			}
			if got.KPolicy != tt.policy {
				t.Errorf("k_policy = %q, want %q", got.KPolicy, tt.policy)
			}
		})
	}
}

func TestRankCommand_RejectsOutOfRange(t *testing.T) {
	t.Parallel()
	path := writeTestCatalog(t)

	tests := []struct {
		name string
		args []string
	}{
		{"tone above max", []string{"--tone", "11"}},
		{"intensity below min", []string{"--intensity", "0"}},
		{"complexity NaN", []string{"--complexity", "NaN"}},
		{"negative k", []string{"-k", "-1"}},
		{"unexpected arg", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			args := append([]string{"rank", "--catalog", path}, tt.args...)
			if _, err := run(t, args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRankCommand_Table(t *testing.T) {
	t.Parallel()
	path := writeTestCatalog(t)

	out, err := run(t, "rank", "--catalog", path, "-k", "2")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out, "Top 2 of 3") {
		t.Errorf("missing heading in output:\n%s", out)
	}
	first := strings.Index(out, "Bright Epic")
	second := strings.Index(out, "Small Comedy")
	if first < 0 || second < 0 || first > second {
		t.Errorf("expected Bright Epic before Small Comedy:\n%s", out)
	}
	if strings.Contains(out, "Dark Farce") {
		t.Errorf("k=2 output should not include the third item:\n%s", out)
	}
	if !strings.Contains(out, "100%") {
		t.Errorf("expected a 100%% match:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("non-terminal output should not contain ANSI escapes:\n%q", out)
	}
}

func TestSimilarCommand(t *testing.T) {
	t.Parallel()
	path := writeTestCatalog(t)

	t.Run("excludes reference item", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "similar", "1", "--json", "--catalog", path)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		got := decodeRanking(t, out)
		if ids := rowIDs(got.Items); !equalInts(ids, []int{2, 3}) {
			t.Errorf("ids = %v, want [2 3]", ids)
		}
		if got.Mode != "similar" || got.ItemID != 1 {
			t.Errorf("mode/item_id = %q/%d, want similar/1", got.Mode, got.ItemID)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		t.Parallel()
		if _, err := run(t, "similar", "99", "--catalog", path); err == nil {
			t.Error("expected error for unknown item")
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()
		if _, err := run(t, "similar", "abc", "--catalog", path); err == nil {
			t.Error("expected error for non-numeric id")
		}
	})

	t.Run("missing id", func(t *testing.T) {
		t.Parallel()
		if _, err := run(t, "similar", "--catalog", path); err == nil {
			t.Error("expected error for missing id")
		}
	})
}

func TestCatalogCommand(t *testing.T) {
	t.Parallel()
	path := writeTestCatalog(t)

	t.Run("genre filter", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "catalog", "--json", "--genre", "comedy", "--catalog", path)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		var got struct {
			Source string `json:"source"`
			Items  []struct {
				ID int `json:"id"`
			} `json:"items"`
		}
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		ids := make([]int, len(got.Items))
		for i, item := range got.Items {
			ids[i] = item.ID
		}
		if !equalInts(ids, []int{2, 3}) {
			t.Errorf("ids = %v, want [2 3]", ids)
		}
		if got.Source != path {
			t.Errorf("source = %q, want %q", got.Source, path)
		}
	})

	t.Run("embedded table", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, "catalog")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !strings.Contains(out, "catalog: embedded") {
			t.Errorf("expected embedded source in output:\n%s", out)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		if _, err := run(t, "catalog", "--catalog", filepath.Join(t.TempDir(), "none.json")); err == nil {
			t.Error("expected error for missing catalog")
		}
	})
}
