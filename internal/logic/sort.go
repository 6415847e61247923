package logic

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"hnsearch/internal/domain"
)

// SortKey represents the column results are ordered by
type SortKey int

const (
	SortNone SortKey = iota
	SortTitle
	SortAuthor
	SortComments
	SortPoints
)

// SortKeys lists every key in display order
var SortKeys = []SortKey{SortNone, SortTitle, SortAuthor, SortComments, SortPoints}

func (k SortKey) String() string {
	switch k {
	case SortNone:
		return "none"
	case SortTitle:
		return "title"
	case SortAuthor:
		return "author"
	case SortComments:
		return "comments"
	case SortPoints:
		return "points"
	default:
		return "unknown"
	}
}

// ParseSortKey maps a config or flag value to a SortKey. Empty means none.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "title":
		return SortTitle, nil
	case "author":
		return SortAuthor, nil
	case "comments", "num_comments":
		return SortComments, nil
	case "points":
		return SortPoints, nil
	default:
		return SortNone, fmt.Errorf("unknown sort key %q", s)
	}
}

// SortState is the column sort selected by the user
type SortState struct {
	Key     SortKey
	Reverse bool
}

// Select returns the state after the user picks key: the same key again flips
// the direction, a different key starts unreversed
func (s SortState) Select(key SortKey) SortState {
	return SortState{
		Key:     key,
		Reverse: key == s.Key && !s.Reverse,
	}
}

// Apply returns hits ordered by the state. Title and author sort ascending,
// comments and points descending; Reverse flips the result. The input is not modified.
func (s SortState) Apply(hits []domain.Hit) []domain.Hit {
	sorted := make([]domain.Hit, len(hits))
	copy(sorted, hits)

	switch s.Key {
	case SortTitle:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Title < sorted[j].Title
		})
	case SortAuthor:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Author < sorted[j].Author
		})
	case SortComments:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].NumComments > sorted[j].NumComments
		})
	case SortPoints:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Points > sorted[j].Points
		})
	}

	if s.Reverse {
		slices.Reverse(sorted)
	}
	return sorted
}

// Label describes the state for the status line, e.g. "points ↓"
func (s SortState) Label() string {
	if s.Key == SortNone {
		if s.Reverse {
			return "none (reversed)"
		}
		return "none"
	}
	descending := s.Key == SortComments || s.Key == SortPoints
	if s.Reverse {
		descending = !descending
	}
	if descending {
		return s.Key.String() + " ↓"
	}
	return s.Key.String() + " ↑"
}
