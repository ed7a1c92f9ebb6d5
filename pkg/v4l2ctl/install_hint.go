package v4l2ctl

import (
	"os"
	"strings"
)

// Overridable for tests.
var osReleasePath = "/etc/os-release"

// InstallHint returns the package-manager command that installs v4l-utils
// on the running distribution.
func InstallHint() string {
	switch distroID() {
	case "ubuntu", "debian", "linuxmint":
		return "sudo apt install v4l-utils"
	case "fedora", "rhel", "centos":
		return "sudo dnf install v4l-utils"
	case "arch":
		return "sudo pacman -S v4l-utils"
	case "opensuse", "suse":
		return "sudo zypper install v4l-utils"
	default:
		return "install the v4l-utils package with your distribution's package manager"
	}
}

func distroID() string {
	raw, err := os.ReadFile(osReleasePath)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(raw), "\n") {
		if v, ok := strings.CutPrefix(line, "ID="); ok {
			return strings.Trim(strings.TrimSpace(v), `"`)
		}
	}
	return ""
}
