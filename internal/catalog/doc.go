// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package catalog loads the fixed movie catalog that the ranking engine
// scores against.
//
// A Catalog is built once at startup and never modified afterwards. It comes
// either from the dataset embedded in the binary or from a JSON or YAML file:
//
//	movies:
//	  - id: 1
//	    title: Paddington 2
//	    year: 2017
//	    genres: [Family, Comedy]
//	    vector: {tone: 1.5, intensity: 3, complexity: 3}
//
// Loading validates every record: IDs must be positive and unique, titles
// non-empty and vectors finite. Item order in the file is the catalog order
// used to break ranking ties.
package catalog
