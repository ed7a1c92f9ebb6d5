//go:build linux

package detectv4l

import "github.com/blackjack/webcam"

// DeviceReady reports whether the node at path can be opened as a V4L2
// capture device. Pass it to WithReadinessProbe to drop devices that appear
// in the listing but are busy or not yet initialized.
func DeviceReady(path string) bool {
	cam, err := webcam.Open(path)
	if err != nil {
		return false
	}
	cam.Close()
	return true
}
