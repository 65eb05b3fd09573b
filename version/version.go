package version

import "runtime/debug"

// Version can be set when building:
// go build -ldflags "-X github.com/pianoear/pianoear/version.Version=$(git describe --dirty)"
var Version string

// Hash is the short VCS revision the binary was built from, with a -dirty
// suffix for modified trees, or "" when unknown.
var Hash = func() string {
	revision, ok := vcsSetting("vcs.revision")
	if !ok || len(revision) < 7 {
		return ""
	}
	if modified, _ := vcsSetting("vcs.modified"); modified == "true" {
		return revision[:7] + "-dirty"
	}
	return revision[:7]
}()

var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	return Hash
}()

// Title is the window title, with the version appended when known.
func Title(name string) string {
	if VersionOrHash == "" {
		return name
	}
	return name + " " + VersionOrHash
}

func vcsSetting(key string) (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value, true
		}
	}
	return "", false
}
