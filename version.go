package nextver

import (
	"fmt"
	"strings"

	"github.com/blang/semver"
)

// BumpLevel is the magnitude of a version change, ordered by strength
type BumpLevel int

const (
	BumpNone BumpLevel = iota
	BumpPatch
	BumpMinor
	BumpMajor
)

var bumpLevelNames = map[BumpLevel]string{
	BumpNone:  "none",
	BumpPatch: "patch",
	BumpMinor: "minor",
	BumpMajor: "major",
}

func (b BumpLevel) String() string {
	if name, ok := bumpLevelNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BumpLevel(%d)", int(b))
}

// MarshalText implements encoding.TextMarshaler
func (b BumpLevel) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (b *BumpLevel) UnmarshalText(text []byte) error {
	for level, name := range bumpLevelNames {
		if strings.EqualFold(name, string(text)) {
			*b = level
			return nil
		}
	}
	return fmt.Errorf("unknown bump level: %q", text)
}

// Max returns the stronger of two bump levels
func (b BumpLevel) Max(other BumpLevel) BumpLevel {
	if other > b {
		return other
	}
	return b
}

// Version is a semantic version that can be bumped in place
type Version struct {
	semver.Version
}

// ParseVersion parses a strict semantic version string such as "1.2.3"
func ParseVersion(s string) (Version, error) {
	v, err := semver.Parse(s)
	if err != nil {
		return Version{}, err
	}
	return Version{Version: v}, nil
}

// MustParseVersion is like ParseVersion but panics on invalid input
func MustParseVersion(s string) Version {
	return Version{Version: semver.MustParse(s)}
}

// BumpPatch increments the patch component
func (v *Version) BumpPatch() {
	v.Patch++
	v.clearMetadata()
}

// BumpMinor increments the minor component and resets patch
func (v *Version) BumpMinor() {
	v.Minor++
	v.Patch = 0
	v.clearMetadata()
}

// BumpMajor increments the major component and resets minor and patch
func (v *Version) BumpMajor() {
	v.Major++
	v.Minor = 0
	v.Patch = 0
	v.clearMetadata()
}

// Apply performs the single bump operation matching level. BumpNone leaves
// the version untouched.
func (v *Version) Apply(level BumpLevel) {
	switch level {
	case BumpMajor:
		v.BumpMajor()
	case BumpMinor:
		v.BumpMinor()
	case BumpPatch:
		v.BumpPatch()
	}
}

func (v *Version) clearMetadata() {
	v.Pre = nil
	v.Build = nil
}
