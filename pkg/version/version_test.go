package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionIsSemver(t *testing.T) {
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q is not semantic versioning", Version)
	}
}

func TestGet(t *testing.T) {
	info := Get()

	if info.Version != Version || info.GitCommit != GitCommit || info.BuildDate != BuildDate {
		t.Errorf("Get() = %+v", info)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", info.Platform)
	}
	if !strings.HasPrefix(info.String(), "easyfmt v"+Version) {
		t.Errorf("String() = %q", info.String())
	}
}
