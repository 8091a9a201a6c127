package model

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	// DeviceNamePrefix is the device-class prefix of every IP phone name.
	DeviceNamePrefix = "SEP"
	// DeviceNameLength is the prefix plus the 12 character MAC address.
	DeviceNameLength = 15
)

var (
	ErrBadLength = errors.New("device name must be 15 characters")
	ErrBadPrefix = errors.New("device name must start with SEP")
)

// DeviceName is a phone name that passed ParseDeviceName.
type DeviceName string

func (d DeviceName) String() string {
	return string(d)
}

// ParseDeviceName checks raw against the device name contract. The length is
// checked before the prefix and the input is never trimmed or case folded.
func ParseDeviceName(raw string) (DeviceName, error) {
	if utf8.RuneCountInString(raw) != DeviceNameLength {
		return "", ErrBadLength
	}
	if !strings.HasPrefix(raw, DeviceNamePrefix) {
		return "", ErrBadPrefix
	}
	return DeviceName(raw), nil
}
