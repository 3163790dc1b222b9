package buildinfo

import "runtime/debug"

const shortLen = 7

// Revision returns the short vcs revision baked into the binary, or an empty
// string for builds outside version control.
func Revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			if len(setting.Value) > shortLen {
				return setting.Value[:shortLen]
			}
			return setting.Value
		}
	}
	return ""
}
