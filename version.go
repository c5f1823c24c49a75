package odbcbatch

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a dotted ODBC version such as "03.80.0000" reported by a
// driver or driver manager.
type Version struct {
	Major      int
	Minor      int
	Patch      int
	VersionStr string
}

// String returns the version as reported, or major.minor.patch.
func (v Version) String() string {
	if v.VersionStr != "" {
		return v.VersionStr
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// AtLeast checks if the version is at least the given major, minor, patch
func (v Version) AtLeast(major, minor, patch int) bool {
	if v.Major != major {
		return v.Major > major
	}
	if v.Minor != minor {
		return v.Minor > minor
	}
	return v.Patch >= patch
}

// ParseVersion parses "MM.mm.pppp" and trailing components are ignored. A
// leading "v" is accepted.
func ParseVersion(s string) (Version, error) {
	v := Version{VersionStr: s}
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(parts) < 2 {
		return v, newInvalidValueError("malformed version %q", s)
	}
	fields := []*int{&v.Major, &v.Minor, &v.Patch}
	for i := 0; i < len(fields) && i < len(parts); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return v, newInvalidValueError("malformed version %q", s)
		}
		*fields[i] = n
	}
	return v, nil
}
