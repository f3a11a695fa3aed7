// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Command cinematch ranks the movie catalog from the terminal.
//
//	cinematch rank --tone 8 --intensity 3 --complexity 6 -k 5
//	cinematch similar 12 --json
//	cinematch catalog --genre drama
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
