package v4l2ctl

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestToolNotFound(t *testing.T) {
	tool := &Tool{Binary: "v4l2-ctl-does-not-exist"}

	if err := tool.Check(); !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Check: expected ErrToolNotFound, got %v", err)
	}

	_, err := tool.ListDevices(context.Background())
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("ListDevices: expected ErrToolNotFound, got %v", err)
	}
}

func TestToolExecError(t *testing.T) {
	tool := &Tool{Binary: "false"}

	_, err := tool.ListDevices(context.Background())
	if err == nil {
		t.Fatal("expected an error from a non-zero exit")
	}

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected *ExecError, got %T: %v", err, err)
	}
	if len(execErr.Args) == 0 || execErr.Args[0] != "--list-devices" {
		t.Errorf("unexpected args: %v", execErr.Args)
	}
}

func TestInstallHint(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "os-release")

	orig := osReleasePath
	osReleasePath = path
	defer func() { osReleasePath = orig }()

	cases := []struct {
		id   string
		want string
	}{
		{"ubuntu", "sudo apt install v4l-utils"},
		{"debian", "sudo apt install v4l-utils"},
		{"fedora", "sudo dnf install v4l-utils"},
		{"arch", "sudo pacman -S v4l-utils"},
		{"opensuse", "sudo zypper install v4l-utils"},
		{"slackware", "install the v4l-utils package with your distribution's package manager"},
	}

	for _, c := range cases {
		content := "NAME=\"Test\"\nID=" + c.id + "\nVERSION_ID=\"1\"\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if got := InstallHint(); got != c.want {
			t.Errorf("ID=%s: expected %q, got %q", c.id, c.want, got)
		}
	}
}

func TestInstallHintNoOSRelease(t *testing.T) {
	orig := osReleasePath
	osReleasePath = filepath.Join(t.TempDir(), "missing")
	defer func() { osReleasePath = orig }()

	if got := InstallHint(); got == "" {
		t.Error("expected a generic hint, got an empty string")
	}
}
