package detectv4l

import (
	"time"

	pionlog "github.com/pion/logging"
)

// Option configures a Detector.
type Option func(*Detector)

// WithTool replaces the v4l2-ctl invocation with another Lister. Tests use
// this to feed canned listing output without spawning a process.
func WithTool(l Lister) Option {
	return func(d *Detector) { d.tool = l }
}

// WithTimeout bounds each run of the listing tool. It only applies to the
// default tool; an injected Lister manages its own deadlines.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Detector) { d.timeout = timeout }
}

// WithReadinessProbe drops devices whose primary node fails the probe.
// DeviceReady is the usual probe; enumeration then reflects only nodes that
// can actually be opened, at the cost of touching every listed device.
func WithReadinessProbe(probe func(path string) bool) Option {
	return func(d *Detector) { d.probe = probe }
}

// WithLoggerFactory routes the Detector's logs through the given factory
// instead of the default one.
func WithLoggerFactory(factory pionlog.LoggerFactory) Option {
	return func(d *Detector) { d.logger = factory.NewLogger("detectv4l") }
}
