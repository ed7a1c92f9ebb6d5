//go:build !linux

package detectv4l

// DeviceReady always reports false off Linux; there are no V4L2 device
// nodes to open.
func DeviceReady(string) bool {
	return false
}
