package v4l2ctl

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

var (
	reIdent = regexp.MustCompile(`\b([0-9a-fA-F]{4}):([0-9a-fA-F]{4})\b`)
	rePath  = regexp.MustCompile(`/dev/video(\d+)`)
)

// Device is one block of `v4l2-ctl --list-devices` output: a named physical
// device exposing one or more /dev/video* nodes.
type Device struct {
	// Name is the header line of the block without the trailing colon.
	Name string
	// VendorID and ModelID are the USB identifier pair embedded in the
	// header, normalized to lowercase hex.
	VendorID string
	ModelID  string
	// Index is the smallest N among the block's /dev/videoN nodes. A camera
	// commonly exposes a capture node plus a metadata node; the smallest
	// index is the primary capture device.
	Index int
	// Paths holds every node of the block in listing order.
	Paths []string
}

// Skip describes a block that was dropped during parsing.
type Skip struct {
	Line   string
	Reason string
}

// ParseListing scans `v4l2-ctl --list-devices` output into device records.
// The listing is a two-state text format: a non-indented line names a device
// and carries its vendor:model identifier, the indented lines below it name
// the device nodes. Headers without a recognizable identifier drop the whole
// block without failing the scan; the skipped blocks are reported so callers
// can log them. Re-parsing the same output yields the same records.
func ParseListing(output string) ([]Device, []Skip) {
	var (
		devices []Device
		skips   []Skip
		cur     *Device
	)

	flush := func() {
		if cur == nil {
			return
		}
		if len(cur.Paths) == 0 {
			skips = append(skips, Skip{Line: cur.Name, Reason: "no /dev/video nodes listed"})
		} else {
			devices = append(devices, *cur)
		}
		cur = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if line != trimmed && rePath.MatchString(trimmed) {
			// Node line. Without a usable header above it there is nothing
			// to attach the node to.
			if cur != nil {
				cur.addPaths(trimmed)
			}
			continue
		}

		// Header line: starts a new block.
		flush()
		m := reIdent.FindStringSubmatch(trimmed)
		if m == nil {
			skips = append(skips, Skip{Line: trimmed, Reason: "no vendor:model identifier"})
			continue
		}
		name := trimmed
		if loc := rePath.FindStringIndex(name); loc != nil {
			name = strings.TrimSpace(name[:loc[0]])
		}
		cur = &Device{
			Name:     strings.TrimSuffix(name, ":"),
			VendorID: strings.ToLower(m[1]),
			ModelID:  strings.ToLower(m[2]),
			Index:    -1,
		}
		// Some listings put the nodes on the header line itself.
		cur.addPaths(trimmed)
	}
	flush()

	return devices, skips
}

func (d *Device) addPaths(line string) {
	for _, m := range rePath.FindAllStringSubmatch(line, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		d.Paths = append(d.Paths, m[0])
		if d.Index < 0 || n < d.Index {
			d.Index = n
		}
	}
}
