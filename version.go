package cudafind

import (
	"fmt"
	"strconv"
	"strings"
)

// Version identifies a release of a toolkit component. Most components use
// numeric major.minor or major.minor.patch versions; CUPTI on recent toolkits
// uses a year-based scheme which is carried as an opaque token. Tokens have no
// ordering relative to numeric versions or to each other.
type Version struct {
	Major, Minor, Patch int

	hasPatch bool
	token    string
}

// NewVersion returns a major.minor version.
func NewVersion(major, minor int) Version {
	return Version{Major: major, Minor: minor}
}

// NewPatchVersion returns a major.minor.patch version.
func NewPatchVersion(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch, hasPatch: true}
}

// Token returns an opaque version carrying the given string, for components
// whose versioning scheme is not numeric.
func Token(s string) Version {
	return Version{token: s}
}

// Opaque reports whether the version is an opaque token.
func (v Version) Opaque() bool { return v.token != "" }

// HasPatch reports whether a patch component was supplied.
func (v Version) HasPatch() bool { return v.hasPatch }

func (v Version) String() string {
	if v.token != "" {
		return v.token
	}
	if v.hasPatch {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Less orders structured versions by major, then minor, then patch. Opaque
// tokens are unordered and sort after every structured version.
func (v Version) Less(o Version) bool {
	if v.Opaque() || o.Opaque() {
		return !v.Opaque() && o.Opaque()
	}
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	if v.Minor != o.Minor {
		return v.Minor < o.Minor
	}
	return v.Patch < o.Patch
}

// parseVersion parses a "major.minor" or "major.minor.patch" string. Anything
// else is rejected.
func parseVersion(s string) (Version, bool) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, false
	}
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, false
		}
		nums[i] = n
	}
	if len(nums) == 3 {
		return NewPatchVersion(nums[0], nums[1], nums[2]), true
	}
	return NewVersion(nums[0], nums[1]), true
}

// cudaReleases lists the toolkit releases the finder knows about, oldest
// first. The list only needs new entries when a new major series ships; minor
// releases beyond it are covered by the speculative extension below.
var cudaReleases = []Version{
	NewVersion(9, 0), NewVersion(9, 1), NewVersion(9, 2),
	NewVersion(10, 0), NewVersion(10, 1), NewVersion(10, 2),
	NewVersion(11, 0), NewVersion(11, 1), NewVersion(11, 2), NewVersion(11, 3),
	NewVersion(11, 4), NewVersion(11, 5), NewVersion(11, 6), NewVersion(11, 7),
	NewVersion(11, 8),
	NewVersion(12, 0), NewVersion(12, 1), NewVersion(12, 2), NewVersion(12, 3),
	NewVersion(12, 4), NewVersion(12, 5), NewVersion(12, 6), NewVersion(12, 8),
	NewVersion(12, 9),
	NewVersion(13, 0),
}

// cuptiYearRange and the major/minor bounds below cover CUPTI's year-based
// library versions ("2024.3.2" and the like).
var (
	cuptiFirstYear = 2016
	cuptiLastYear  = 2030
	cuptiMaxMajor  = 4
	cuptiMaxMinor  = 2
)

// cudaVersions returns the known releases followed by speculative entries for
// the next two major series (minors 1 through 10), so toolkits newer than the
// hard-coded list are still probed.
func cudaVersions() []Version {
	latest := cudaReleases[len(cudaReleases)-1]
	versions := make([]Version, len(cudaReleases), len(cudaReleases)+20)
	copy(versions, cudaReleases)
	for major := latest.Major + 1; major <= latest.Major+2; major++ {
		for minor := 1; minor <= 10; minor++ {
			versions = append(versions, NewVersion(major, minor))
		}
	}
	return versions
}

// versionsFor returns the versions to probe for the named component, oldest
// first. The caller tries the whole set, so order here carries no preference;
// root preference is handled by the toolkit finder.
func versionsFor(name string) []Version {
	versions := cudaVersions()
	if name != "cupti" {
		return versions
	}
	// CUPTI switched to year-based versioning; probe those forms as well.
	for year := cuptiFirstYear; year <= cuptiLastYear; year++ {
		for major := 1; major <= cuptiMaxMajor; major++ {
			for minor := 0; minor <= cuptiMaxMinor; minor++ {
				versions = append(versions, Token(fmt.Sprintf("%d.%d.%d", year, major, minor)))
			}
		}
	}
	return versions
}
