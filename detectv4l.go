// Package detectv4l identifies Video4Linux cameras by their USB vendor and
// model IDs and maps them to /dev/videoN device indices. It shells out to
// v4l2-ctl from the v4l-utils package and scrapes its listing output; device
// nodes are never opened unless a readiness probe is configured.
package detectv4l

import (
	"fmt"
	"strings"
)

// VendorModel is the USB identifier pair naming a camera's manufacturer and
// product, two lowercase hex strings such as "046d" and "0825". It is an
// opaque identity key; the digits carry no numeric meaning here.
type VendorModel struct {
	VendorID string
	ModelID  string
}

// NewVendorModel builds a lookup key, normalizing both IDs to lowercase so
// lookups are case-insensitive.
func NewVendorModel(vendorID, modelID string) VendorModel {
	return VendorModel{
		VendorID: strings.ToLower(vendorID),
		ModelID:  strings.ToLower(modelID),
	}
}

func (vm VendorModel) String() string {
	return vm.VendorID + ":" + vm.ModelID
}

// CameraMap maps a vendor:model pair to the device index N of /dev/videoN.
// A map holds one index per pair: if two identical camera models are plugged
// in at once, only the one with the smallest index is reachable through this
// API. Maps are built fresh on every enumeration and never cached, since
// devices may be plugged or unplugged between calls.
type CameraMap map[VendorModel]int

// CameraNotFoundError reports that a requested vendor:model pair is absent
// from the current enumeration. It usually means the camera is unplugged,
// not that enumeration failed.
type CameraNotFoundError struct {
	VendorModel
}

func (e *CameraNotFoundError) Error() string {
	return fmt.Sprintf("camera %s not found", e.VendorModel)
}
