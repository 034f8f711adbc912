// Package platform identifies the host operating system and drives its native
// "open this file" facility.
package platform

import (
	"runtime"
	"strings"

	"github.com/doeshing/smartcmd-go/internal/domain"
)

// Detect normalizes a platform identifier (a GOOS value or a uname-style system name)
// into a canonical OS name. Unknown identifiers come back lowercased and otherwise unchanged.
func Detect(identifier string) domain.OSName {
	name := strings.ToLower(identifier)
	switch {
	case strings.Contains(name, "windows"):
		return domain.OSWindows
	case strings.Contains(name, "linux"):
		return domain.OSLinux
	case strings.Contains(name, "darwin"):
		return domain.OSMacOS
	default:
		return domain.OSName(name)
	}
}

// Current returns the canonical name of the running host.
func Current() domain.OSName {
	return Detect(runtime.GOOS)
}
