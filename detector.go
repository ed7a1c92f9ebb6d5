package detectv4l

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	pionlog "github.com/pion/logging"

	"github.com/detectv4l/detectv4l/internal/logging"
	"github.com/detectv4l/detectv4l/pkg/v4l2ctl"
)

// Lister runs the device-listing tool and returns its raw text output. It is
// the seam between enumeration and the external process: tests substitute
// canned output, production code uses *v4l2ctl.Tool.
type Lister interface {
	ListDevices(ctx context.Context) (string, error)
}

// Detector enumerates cameras and resolves vendor:model pairs to device
// indices. A Detector is stateless; concurrent use is safe, but every call
// pays the cost of one v4l2-ctl run.
type Detector struct {
	tool    Lister
	probe   func(path string) bool
	logger  pionlog.LeveledLogger
	timeout time.Duration
}

// New creates a Detector. Without options it runs v4l2-ctl from PATH with
// the default timeout.
func New(opts ...Option) *Detector {
	d := &Detector{
		logger: logging.NewLogger("detectv4l"),
	}
	for _, o := range opts {
		o(d)
	}
	if d.tool == nil {
		d.tool = &v4l2ctl.Tool{Timeout: d.timeout}
	}
	return d
}

// ListCameras runs the listing tool once and builds a fresh CameraMap from
// its output. Blocks whose header carries no vendor:model identifier are
// skipped; a block with several /dev/videoN nodes contributes its smallest
// N. An empty map with a nil error means the tool ran fine and no cameras
// are attached.
func (d *Detector) ListCameras(ctx context.Context) (CameraMap, error) {
	out, err := d.tool.ListDevices(ctx)
	if err != nil {
		return nil, err
	}

	scanID := uuid.NewString()
	devices, skips := v4l2ctl.ParseListing(out)
	for _, s := range skips {
		d.logger.Debugf("scan %s: skipping %q: %s", scanID, s.Line, s.Reason)
	}

	cameras := make(CameraMap, len(devices))
	for _, dev := range devices {
		key := NewVendorModel(dev.VendorID, dev.ModelID)

		if d.probe != nil && !d.probe(fmt.Sprintf("/dev/video%d", dev.Index)) {
			d.logger.Infof("scan %s: %s (/dev/video%d) not ready, dropping", scanID, key, dev.Index)
			continue
		}

		if have, ok := cameras[key]; ok {
			// Two physical devices reporting the same vendor:model pair.
			// The map can only hold one; keep the smaller index.
			d.logger.Warnf("scan %s: duplicate key %s (indices %d and %d)", scanID, key, have, dev.Index)
			if dev.Index < have {
				cameras[key] = dev.Index
			}
			continue
		}

		cameras[key] = dev.Index
		d.logger.Debugf("scan %s: %s -> /dev/video%d", scanID, key, dev.Index)
	}

	return cameras, nil
}

// FindCameraByVendorModel enumerates and returns the device index of the
// camera matching the pair. IDs are matched case-insensitively. Returns a
// *CameraNotFoundError naming the pair when no such camera is attached.
func (d *Detector) FindCameraByVendorModel(ctx context.Context, vendorID, modelID string) (int, error) {
	cameras, err := d.ListCameras(ctx)
	if err != nil {
		return 0, err
	}

	key := NewVendorModel(vendorID, modelID)
	index, ok := cameras[key]
	if !ok {
		return 0, &CameraNotFoundError{key}
	}
	return index, nil
}

// FindCamerasByVendorModelList resolves several pairs against one
// enumeration snapshot, so a multi-camera query spawns a single process and
// cannot observe devices appearing between lookups. The result preserves the
// input order. If any pair is unresolved the whole call fails with a
// *CameraNotFoundError for the first missing pair; callers wanting partial
// results should loop over FindCameraByVendorModel instead.
func (d *Detector) FindCamerasByVendorModelList(ctx context.Context, pairs []VendorModel) ([]int, error) {
	cameras, err := d.ListCameras(ctx)
	if err != nil {
		return nil, err
	}

	indices := make([]int, 0, len(pairs))
	for _, pair := range pairs {
		key := NewVendorModel(pair.VendorID, pair.ModelID)
		index, ok := cameras[key]
		if !ok {
			return nil, &CameraNotFoundError{key}
		}
		indices = append(indices, index)
	}
	return indices, nil
}

// CameraCapabilities queries one device node for its driver, card name,
// pixel formats and discrete frame sizes. The configured tool must support
// capability queries; the injectable Lister seam does not require it.
func (d *Detector) CameraCapabilities(ctx context.Context, index int) (v4l2ctl.Capabilities, error) {
	q, ok := d.tool.(capabilitiesQuerier)
	if !ok {
		return v4l2ctl.Capabilities{}, fmt.Errorf("configured tool cannot query capabilities")
	}
	return q.Capabilities(ctx, fmt.Sprintf("/dev/video%d", index))
}

type capabilitiesQuerier interface {
	Capabilities(ctx context.Context, path string) (v4l2ctl.Capabilities, error)
}

type checker interface {
	Check() error
}

// CheckDependencies verifies the environment can answer queries at all:
// the OS is Linux and the listing tool is installed. The returned error
// includes the package-manager command that installs it.
func (d *Detector) CheckDependencies() error {
	if runtime.GOOS != "linux" {
		return fmt.Errorf("detectv4l requires Linux with Video4Linux support, running on %s", runtime.GOOS)
	}
	if c, ok := d.tool.(checker); ok {
		return c.Check()
	}
	return nil
}
