package domain

// OSName is the canonical operating system name used to parametrize prompts and path conventions.
// Unrecognized platforms keep their lowercase raw identifier.
type OSName string

const (
	OSWindows OSName = "Windows"
	OSLinux   OSName = "Linux"
	OSMacOS   OSName = "macOS"
)

// Known reports whether the name is one of the canonical values.
func (o OSName) Known() bool {
	switch o {
	case OSWindows, OSLinux, OSMacOS:
		return true
	default:
		return false
	}
}

func (o OSName) String() string {
	return string(o)
}
