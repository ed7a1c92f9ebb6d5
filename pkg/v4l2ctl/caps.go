package v4l2ctl

import (
	"regexp"
	"strings"
)

var (
	reDriver = regexp.MustCompile(`Driver name\s+:\s+(.+)`)
	reCard   = regexp.MustCompile(`Card type\s+:\s+(.+)`)
	reFourCC = regexp.MustCompile(`'([A-Z0-9 ]{4})'`)
	reSize   = regexp.MustCompile(`Size: Discrete (\d+x\d+)`)
)

// Capabilities is the subset of a `v4l2-ctl --device P --all` report that
// identifies a capture device and what it can produce.
type Capabilities struct {
	// Driver is the kernel driver bound to the node, e.g. "uvcvideo".
	Driver string
	// Card is the human-readable device name.
	Card string
	// Formats lists the FourCC pixel formats the device advertises,
	// e.g. "MJPG", "YUYV".
	Formats []string
	// Resolutions lists the discrete frame sizes, e.g. "1920x1080".
	Resolutions []string
}

// ParseCapabilities scrapes driver, card, format and frame size details out
// of a `--all` report. Fields that do not appear stay zero; a report from a
// non-capture node still parses, it just carries fewer details.
func ParseCapabilities(output string) Capabilities {
	var caps Capabilities

	if m := reDriver.FindStringSubmatch(output); m != nil {
		caps.Driver = strings.TrimSpace(m[1])
	}
	if m := reCard.FindStringSubmatch(output); m != nil {
		caps.Card = strings.TrimSpace(m[1])
	}
	for _, m := range reFourCC.FindAllStringSubmatch(output, -1) {
		caps.Formats = appendUnique(caps.Formats, strings.TrimSpace(m[1]))
	}
	for _, m := range reSize.FindAllStringSubmatch(output, -1) {
		caps.Resolutions = appendUnique(caps.Resolutions, m[1])
	}

	return caps
}

func appendUnique(list []string, s string) []string {
	for _, have := range list {
		if have == s {
			return list
		}
	}
	return append(list, s)
}
