// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/validation"
	"github.com/tomtom215/cinematch/internal/vector"
)

// options are the flags shared by every subcommand.
type options struct {
	catalogPath string
	jsonOutput  bool
	k           int
}

// sliders is the validated preference input of the rank command.
type sliders struct {
	Tone       float64 `json:"tone" validate:"finite,gte=1,lte=10"`
	Intensity  float64 `json:"intensity" validate:"finite,gte=1,lte=10"`
	Complexity float64 `json:"complexity" validate:"finite,gte=1,lte=10"`
	K          int     `json:"k" validate:"gte=0,lte=1000"`
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "cinematch",
		Short: "Rank movies against a tone, intensity and complexity preference",
		Long: `cinematch scores every movie in the catalog by the cosine similarity
between its (tone, intensity, complexity) vector and your preference, and
prints the best matches.`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(out)

	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "catalog file (JSON or YAML); empty uses the built-in dataset")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print JSON instead of a table")

	root.AddCommand(newRankCmd(opts), newSimilarCmd(opts), newCatalogCmd(opts))
	return root
}

func newRankCmd(opts *options) *cobra.Command {
	in := sliders{}

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank the catalog against a preference vector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.K = opts.k
			if verr := validation.ValidateStruct(&in); verr != nil {
				return verr
			}

			engine, cat, err := loadEngine(opts.catalogPath)
			if err != nil {
				return err
			}
			resp, err := engine.Recommend(recommend.Request{
				Mode:       recommend.ModePreference,
				Preference: vector.New(in.Tone, in.Intensity, in.Complexity),
				K:          in.K,
			})
			if err != nil {
				return err
			}
			return writeRanking(cmd.OutOrStdout(), opts.jsonOutput, resp, cat.Source())
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&in.Tone, "tone", 5, "tone from 1 (light) to 10 (dark)")
	flags.Float64Var(&in.Intensity, "intensity", 5, "intensity from 1 (calm) to 10 (intense)")
	flags.Float64Var(&in.Complexity, "complexity", 5, "complexity from 1 (simple) to 10 (complex)")
	flags.IntVarP(&opts.k, "k", "k", 0, "number of results; 0 uses the default")
	return cmd
}

func newSimilarCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "similar <movie-id>",
		Short: "Rank the catalog against an existing movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("movie id must be a positive integer, got %q", args[0])
			}
			if opts.k < 0 {
				return fmt.Errorf("k must be non-negative, got %d", opts.k)
			}

			engine, cat, err := loadEngine(opts.catalogPath)
			if err != nil {
				return err
			}
			resp, err := engine.Recommend(recommend.Request{
				Mode:   recommend.ModeSimilar,
				ItemID: id,
				K:      opts.k,
			})
			if err != nil {
				return err
			}
			return writeRanking(cmd.OutOrStdout(), opts.jsonOutput, resp, cat.Source())
		},
	}
	cmd.Flags().IntVarP(&opts.k, "k", "k", 0, "number of results; 0 uses the default")
	return cmd
}

func newCatalogCmd(opts *options) *cobra.Command {
	var genre string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the movies in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Load(opts.catalogPath)
			if err != nil {
				return err
			}

			items := make([]recommend.CatalogItem, 0, cat.Len())
			for _, item := range cat.Items() {
				if genre == "" || hasGenre(item, genre) {
					items = append(items, item)
				}
			}
			return writeCatalog(cmd.OutOrStdout(), opts.jsonOutput, items, cat.Source())
		},
	}
	cmd.Flags().StringVar(&genre, "genre", "", "only list movies with this genre (case-insensitive)")
	return cmd
}

// loadEngine builds a ranking engine with default limits over the selected catalog.
func loadEngine(path string) (*recommend.Engine, *catalog.Catalog, error) {
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, nil, err
	}
	engine, err := recommend.NewEngine(recommend.DefaultConfig(), cat, zerolog.Nop())
	if err != nil {
		return nil, nil, err
	}
	return engine, cat, nil
}

func hasGenre(item recommend.CatalogItem, genre string) bool {
	for _, g := range item.Genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}
