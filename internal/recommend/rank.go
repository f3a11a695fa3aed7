// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"sort"

	"github.com/tomtom215/cinematch/internal/vector"
)

// Score computes the similarity of every catalog item to user.
// The result has one entry per item, in catalog order.
func Score(user vector.Vector3, catalog []CatalogItem) []ScoredItem {
	user = vector.Normalize(user)

	scored := make([]ScoredItem, len(catalog))
	for i := range catalog {
		scored[i] = ScoredItem{
			Item:  catalog[i],
			Score: vector.CosineSimilarity(user, catalog[i].Vector),
		}
	}
	return scored
}

// Rank scores the catalog against user and orders it by descending score.
// The sort is stable: ties keep their relative catalog order.
func Rank(user vector.Vector3, catalog []CatalogItem) RankedList {
	scored := Score(user, catalog)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return RankedList(scored)
}

// Top returns the first min(k, len(l)) entries. A non-positive k yields an
// empty slice. The returned slice does not share memory with l.
func (l RankedList) Top(k int) []ScoredItem {
	if k <= 0 {
		return []ScoredItem{}
	}
	if k > len(l) {
		k = len(l)
	}

	top := make([]ScoredItem, k)
	copy(top, l[:k])
	return top
}

// TopK ranks the catalog against user and returns the best k items.
func TopK(user vector.Vector3, catalog []CatalogItem, k int) []ScoredItem {
	return Rank(user, catalog).Top(k)
}
