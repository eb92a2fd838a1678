package nextver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormats(t *testing.T) {
	tests := []struct {
		version string
		python  string
	}{
		{"1.2.3", "1.2.3"},
		{"2.0.0-alpha.1", "2.0.0a1"},
		{"2.0.0-beta.2", "2.0.0b2"},
		{"4.1.0-rc.1", "4.1.0rc1"},
		{"0.0.0-dev", "0.0.0.dev0"},
		{"1.0.0+build.7", "1.0.0+build.7"},
	}

	for _, test := range tests {
		t.Run(test.version, func(t *testing.T) {
			versions, err := Formats(MustParseVersion(test.version))
			require.NoError(t, err)

			require.Equal(t, test.version, versions.SemVer)
			require.Equal(t, test.python, versions.Python)
			require.Equal(t, "v"+test.version, versions.JavaScript)
			require.Equal(t, test.version, versions.DotNet)
			require.Equal(t, "v"+test.version, versions.Go)
		})
	}

	t.Run("Unknown prerelease type", func(t *testing.T) {
		_, err := Formats(MustParseVersion("1.0.0-preview.1"))
		require.Error(t, err)
	})
}

func TestLanguageVersionsFor(t *testing.T) {
	versions := &LanguageVersions{
		SemVer:     "1.2.3-rc.1",
		Python:     "1.2.3rc1",
		JavaScript: "v1.2.3-rc.1",
		DotNet:     "1.2.3-rc.1",
		Go:         "v1.2.3-rc.1",
	}

	tests := []struct {
		language string
		expected string
	}{
		{"generic", "1.2.3-rc.1"},
		{"semver", "1.2.3-rc.1"},
		{"python", "1.2.3rc1"},
		{"javascript", "v1.2.3-rc.1"},
		{"js", "v1.2.3-rc.1"},
		{"node", "v1.2.3-rc.1"},
		{"dotnet", "1.2.3-rc.1"},
		{".net", "1.2.3-rc.1"},
		{"csharp", "1.2.3-rc.1"},
		{"go", "v1.2.3-rc.1"},
		{"golang", "v1.2.3-rc.1"},
		{"Python", "1.2.3rc1"},
		{"unknown", "1.2.3-rc.1"},
	}

	for _, test := range tests {
		t.Run(test.language, func(t *testing.T) {
			require.Equal(t, test.expected, versions.For(test.language))
		})
	}
}
