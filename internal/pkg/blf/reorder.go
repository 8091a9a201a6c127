package blf

import (
	"slices"
	"strings"

	"github.com/anicoll/blf-reorder/internal/pkg/model"
)

// Reorder returns a copy of entries sorted by lower-cased label and indexed
// from 1. Entries whose labels only differ in case keep their fetched order.
func Reorder(entries []model.BusyLampField) []model.BusyLampField {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b model.BusyLampField) int {
		return strings.Compare(strings.ToLower(a.Label), strings.ToLower(b.Label))
	})
	for i := range sorted {
		sorted[i].Index = i + 1
	}
	return sorted
}
