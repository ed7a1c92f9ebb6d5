// Package v4l2ctl invokes the v4l2-ctl utility from the v4l-utils package
// and parses its text output. The output format is treated as an interface
// contract: this package never opens /dev/video* nodes itself, it only
// reports what the tool prints about them.
package v4l2ctl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const defaultBinary = "v4l2-ctl"

// DefaultTimeout bounds a single v4l2-ctl invocation. An unresponsive
// device node would otherwise block the caller indefinitely.
const DefaultTimeout = 10 * time.Second

// ErrToolNotFound reports that the v4l2-ctl binary is not installed or not
// on PATH.
var ErrToolNotFound = errors.New("v4l2-ctl not found in PATH")

// ExecError reports that v4l2-ctl ran but exited non-zero. Output carries
// whatever the tool wrote to stderr so callers can log or display it.
type ExecError struct {
	Args   []string
	Output string
	Err    error
}

func (e *ExecError) Error() string {
	msg := fmt.Sprintf("v4l2-ctl %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

func (e *ExecError) Unwrap() error { return e.Err }

// Tool runs v4l2-ctl with a bounded execution time. The zero value is ready
// to use and looks up v4l2-ctl on PATH.
type Tool struct {
	// Binary overrides the executable name or path. Empty means "v4l2-ctl".
	Binary string
	// Timeout bounds each invocation. Zero means DefaultTimeout.
	Timeout time.Duration
}

// ListDevices returns the raw output of `v4l2-ctl --list-devices`.
func (t *Tool) ListDevices(ctx context.Context) (string, error) {
	return t.run(ctx, "--list-devices")
}

// Capabilities queries a single device node with `--all` and parses the
// driver, card, format and resolution details out of the report.
func (t *Tool) Capabilities(ctx context.Context, path string) (Capabilities, error) {
	out, err := t.run(ctx, "--device", path, "--all")
	if err != nil {
		return Capabilities{}, err
	}
	return ParseCapabilities(out), nil
}

// Check verifies that the binary can be found without running it. The error
// includes the install command for the running distribution.
func (t *Tool) Check() error {
	if _, err := exec.LookPath(t.binary()); err != nil {
		return fmt.Errorf("%w: %s", ErrToolNotFound, InstallHint())
	}
	return nil
}

func (t *Tool) binary() string {
	if t.Binary != "" {
		return t.Binary
	}
	return defaultBinary
}

func (t *Tool) run(ctx context.Context, args ...string) (string, error) {
	timeout := t.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, t.binary(), args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrToolNotFound, InstallHint())
		}
		return "", &ExecError{
			Args:   args,
			Output: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return stdout.String(), nil
}
