package nextver

import (
	"fmt"
	"strings"
)

// LanguageVersions contains version strings for different language ecosystems
type LanguageVersions struct {
	SemVer     string `json:"semver"`
	Python     string `json:"python"`
	JavaScript string `json:"javascript"`
	DotNet     string `json:"dotnet"`
	Go         string `json:"go"`
}

// Languages lists the names accepted by LanguageVersions.For
var Languages = []string{
	"generic", "semver", "python", "javascript", "js", "node", "dotnet", ".net", "csharp", "go", "golang",
}

// Formats renders v for each supported language ecosystem
func Formats(v Version) (*LanguageVersions, error) {
	generic := v.String()

	python, err := pythonVersion(v)
	if err != nil {
		return nil, fmt.Errorf("converting %s for Python: %w", generic, err)
	}

	return &LanguageVersions{
		SemVer:     generic,
		Python:     python,
		JavaScript: "v" + generic,
		DotNet:     generic,
		Go:         "v" + generic,
	}, nil
}

// For returns the version string for language, falling back to SemVer for
// unknown names
func (l *LanguageVersions) For(language string) string {
	switch strings.ToLower(language) {
	case "generic", "semver":
		return l.SemVer
	case "python":
		return l.Python
	case "javascript", "js", "node":
		return l.JavaScript
	case "dotnet", ".net", "csharp":
		return l.DotNet
	case "go", "golang":
		return l.Go
	default:
		return l.SemVer
	}
}

// pythonVersion renders v following PEP 440
func pythonVersion(v Version) (string, error) {
	base := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)

	var pre string
	if len(v.Pre) > 0 {
		var num uint64
		if len(v.Pre) > 1 && v.Pre[1].IsNum {
			num = v.Pre[1].VersionNum
		}

		switch v.Pre[0].VersionStr {
		case "dev":
			pre = fmt.Sprintf(".dev%d", num)
		case "alpha":
			pre = fmt.Sprintf("a%d", num)
		case "beta":
			pre = fmt.Sprintf("b%d", num)
		case "rc":
			pre = fmt.Sprintf("rc%d", num)
		default:
			return "", fmt.Errorf("invalid prerelease type: %q", v.Pre[0].String())
		}
	}

	var local string
	if len(v.Build) > 0 {
		local = "+" + strings.Join(v.Build, ".")
	}

	return base + pre + local, nil
}
