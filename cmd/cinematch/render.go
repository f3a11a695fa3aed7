// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/vector"
)

// styles are bound to a renderer for the output writer so colors are only
// emitted to terminals.
type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	rank  lipgloss.Style
	score lipgloss.Style
	dim   lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title: r.NewStyle().Bold(true),
		label: r.NewStyle().Foreground(lipgloss.Color("12")),
		rank:  r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true).Width(4).Align(lipgloss.Right),
		score: r.NewStyle().Foreground(lipgloss.Color("11")).Width(5).Align(lipgloss.Right),
		dim:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

type rankingOutput struct {
	Mode        string                 `json:"mode"`
	Target      vector.Vector3         `json:"target"`
	ItemID      int                    `json:"item_id,omitempty"`
	K           int                    `json:"k"`
	RequestedK  int                    `json:"requested_k"`
	KPolicy     string                 `json:"k_policy"`
	CatalogSize int                    `json:"catalog_size"`
	Source      string                 `json:"source"`
	Items       []recommend.RankedItem `json:"items"`
}

func writeRanking(out io.Writer, asJSON bool, resp *recommend.Response, source string) error {
	rows := recommend.NewRankedItems(resp.Items)

	if asJSON {
		return writeJSON(out, rankingOutput{
			Mode:        resp.Metadata.Mode,
			Target:      resp.Metadata.Target,
			ItemID:      resp.Metadata.ItemID,
			K:           resp.Metadata.K,
			RequestedK:  resp.Metadata.RequestedK,
			KPolicy:     resp.Metadata.KPolicy,
			CatalogSize: resp.Metadata.CatalogSize,
			Source:      source,
			Items:       rows,
		})
	}

	st := newStyles(out)
	var b strings.Builder
	heading := fmt.Sprintf("Top %d of %d for %s", len(rows), resp.Metadata.CatalogSize, resp.Metadata.Target)
	if resp.Metadata.ItemID != 0 {
		heading = fmt.Sprintf("Top %d similar to #%d %s", len(rows), resp.Metadata.ItemID, resp.Metadata.Target)
	}
	b.WriteString(st.title.Render(heading))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(st.dim.Render("no matches"))
		b.WriteString("\n")
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%s  %s  %s (%d) %s\n",
			st.rank.Render(fmt.Sprintf("%d.", row.Rank)),
			st.score.Render(fmt.Sprintf("%d%%", row.MatchPercent)),
			row.Title,
			row.Year,
			st.dim.Render(strings.Join(row.Genres, ", ")),
		)
	}
	b.WriteString(st.label.Render("catalog: " + source))
	b.WriteString("\n")

	_, err := io.WriteString(out, b.String())
	return err
}

func writeCatalog(out io.Writer, asJSON bool, items []recommend.CatalogItem, source string) error {
	if asJSON {
		return writeJSON(out, struct {
			Source string                  `json:"source"`
			Items  []recommend.CatalogItem `json:"items"`
		}{Source: source, Items: items})
	}

	st := newStyles(out)
	var b strings.Builder
	b.WriteString(st.title.Render(fmt.Sprintf("%d movies", len(items))))
	b.WriteString("\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s  %s (%d) %s %s\n",
			st.rank.Render(fmt.Sprintf("#%d", item.ID)),
			item.Title,
			item.Year,
			st.label.Render(item.Vector.String()),
			st.dim.Render(strings.Join(item.Genres, ", ")),
		)
	}
	b.WriteString(st.label.Render("catalog: " + source))
	b.WriteString("\n")

	_, err := io.WriteString(out, b.String())
	return err
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
