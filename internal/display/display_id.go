// Package display derives the user-facing labels of the dashboard. Nothing
// here is persisted; every label is rebuilt from whatever the backend
// returned on the current request.
package display

import (
	"fmt"
	"sort"
)

// Placeholder is shown when a value cannot be derived.
const Placeholder = "—"

// Identifiable is any backend entity with a raw numeric id.
type Identifiable interface {
	EntityID() int64
}

// FormatID returns prefix plus the 1-based position of id within ids
// sorted ascending, zero-padded to 3 digits.
func FormatID(ids []int64, id int64, prefix string) string {
	sorted := sortedCopy(ids)
	pos := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= id })
	if pos == len(sorted) || sorted[pos] != id {
		return Placeholder
	}
	return label(prefix, pos)
}

// IDs computes the display id of every id at once.
func IDs(ids []int64, prefix string) map[int64]string {
	sorted := sortedCopy(ids)
	out := make(map[int64]string, len(sorted))
	for pos, id := range sorted {
		if _, ok := out[id]; ok {
			continue
		}
		out[id] = label(prefix, pos)
	}
	return out
}

// EntityIDs extracts raw ids of a collection.
func EntityIDs[T Identifiable](items []T) []int64 {
	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.EntityID()
	}
	return ids
}

// Of is FormatID over a collection of entities.
func Of[T Identifiable](items []T, id int64, prefix string) string {
	return FormatID(EntityIDs(items), id, prefix)
}

// Lookup returns the label for id, or Placeholder.
func Lookup(labels map[int64]string, id int64) string {
	if l, ok := labels[id]; ok {
		return l
	}
	return Placeholder
}

func label(prefix string, pos int) string {
	return fmt.Sprintf("%s%03d", prefix, pos+1)
}

func sortedCopy(ids []int64) []int64 {
	sorted := make([]int64, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}
