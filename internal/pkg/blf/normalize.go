// Package blf turns fetched busy lamp field entries into the list that is
// written back: normalized, sorted by label and re-sequenced.
package blf

import (
	"github.com/samber/lo"

	"github.com/anicoll/blf-reorder/internal/pkg/model"
)

// Normalize strips what must not be written back from a fetched entry.
//
// The old index is dropped, an empty associated feature list is omitted, and
// the destination is resolved: when blfDest is present it is kept and
// blfDirn/routePartition are dropped, otherwise blfDirn/routePartition are
// kept as fetched. The AXL schema marks blfDest as optional but rejects an
// updatePhone carrying both variants.
func Normalize(raw model.RawBusyLampField) model.BusyLampField {
	entry := model.BusyLampField{
		Label: raw.Label,
	}
	if len(raw.Features) > 0 {
		entry.Features = raw.Features
	}

	switch {
	case raw.Destination != nil:
		entry.Target = model.DestinationTarget{Number: *raw.Destination}
	case raw.DirectoryNumber != nil || raw.RoutePartition != nil:
		entry.Target = model.DirectoryTarget{
			DirectoryNumber: raw.DirectoryNumber,
			RoutePartition:  raw.RoutePartition,
		}
	}
	return entry
}

// NormalizeAll normalizes every entry, keeping the fetched order.
func NormalizeAll(raw []model.RawBusyLampField) []model.BusyLampField {
	return lo.Map(raw, func(r model.RawBusyLampField, _ int) model.BusyLampField {
		return Normalize(r)
	})
}
