package model

// Phone is the part of a getPhone response this tool reads.
type Phone struct {
	UUID        string
	Name        string
	Description string
	Model       string
	// BusyLampFields is empty when the phone has no BLF entries configured.
	BusyLampFields []RawBusyLampField
}

// ################################
// busyLampField as fetched

// RawBusyLampField mirrors a fetched busyLampField. Nil pointers and nil
// slices mean the element was absent or empty.
type RawBusyLampField struct {
	Index           *int
	Label           string
	Features        []string
	Destination     *string
	DirectoryNumber *string
	RoutePartition  *string
}

// ################################

// ################################
// busyLampField ready to be written back

// BusyLampField is a normalized entry. Index is zero until the entry has been
// re-sequenced.
type BusyLampField struct {
	Index    int
	Label    string
	Features []string
	Target   Target
}

// Target is where a BLF button points. The remote schema accepts either a
// single destination number or a directory number with its partition, never
// both, so only DestinationTarget and DirectoryTarget implement it.
type Target interface {
	isTarget()
}

type DestinationTarget struct {
	Number string
}

type DirectoryTarget struct {
	DirectoryNumber *string
	RoutePartition  *string
}

func (DestinationTarget) isTarget() {}
func (DirectoryTarget) isTarget()   {}

// Raw converts b back into the wire shape.
func (b BusyLampField) Raw() RawBusyLampField {
	raw := RawBusyLampField{
		Label:    b.Label,
		Features: b.Features,
	}
	if b.Index > 0 {
		index := b.Index
		raw.Index = &index
	}
	switch t := b.Target.(type) {
	case DestinationTarget:
		number := t.Number
		raw.Destination = &number
	case DirectoryTarget:
		raw.DirectoryNumber = t.DirectoryNumber
		raw.RoutePartition = t.RoutePartition
	}
	return raw
}

// ################################

// UpdatePhoneRequest is the whole updatePhone payload. Fields that are not
// sent are left unchanged by the server, so nothing else belongs here.
type UpdatePhoneRequest struct {
	Name           DeviceName
	BusyLampFields []BusyLampField
}
