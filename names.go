package cudafind

import (
	"fmt"
	"runtime"
)

// wordSize is the pointer width of the running process in bits. Windows
// library names carry it as a suffix ("cudart64_110.dll").
const wordSize = 32 << (^uint(0) >> 63)

// libNames returns the platform-specific file names to probe for a library,
// in priority order: the unversioned convention first, then one group of
// variants per version hint. The locator tries names in this order and stops
// at the first hit.
func libNames(name string, versions []Version) []string {
	var names []string
	switch runtime.GOOS {
	case "windows":
		names = append(names, fmt.Sprintf("%s%d.dll", name, wordSize), name+".dll")
		for _, v := range versions {
			if v.Opaque() {
				names = append(names, fmt.Sprintf("%s_%s.dll", name, v))
				continue
			}
			names = append(names,
				fmt.Sprintf("%s%d_%d%d.dll", name, wordSize, v.Major, v.Minor),
				fmt.Sprintf("%s%d_%d.dll", name, wordSize, v.Major),
				// Some libraries ship without the word-size suffix.
				fmt.Sprintf("%s_%d%d.dll", name, v.Major, v.Minor),
				fmt.Sprintf("%s_%d.dll", name, v.Major),
			)
		}
	case "darwin":
		names = append(names, fmt.Sprintf("lib%s.dylib", name))
		for _, v := range versions {
			if v.Opaque() {
				names = append(names, fmt.Sprintf("lib%s.%s.dylib", name, v))
				continue
			}
			names = append(names,
				fmt.Sprintf("lib%s.%d.%d.dylib", name, v.Major, v.Minor),
				fmt.Sprintf("lib%s.%d.dylib", name, v.Major),
			)
		}
	default:
		names = append(names, fmt.Sprintf("lib%s.so", name))
		for _, v := range versions {
			if v.Opaque() {
				names = append(names, fmt.Sprintf("lib%s.so.%s", name, v))
				continue
			}
			if v.HasPatch() {
				names = append(names, fmt.Sprintf("lib%s.so.%d.%d.%d", name, v.Major, v.Minor, v.Patch))
			}
			names = append(names,
				fmt.Sprintf("lib%s.so.%d.%d", name, v.Major, v.Minor),
				fmt.Sprintf("lib%s.so.%d", name, v.Major),
			)
		}
	}
	return dedup(names)
}

// binNames returns the file names to probe for a binary.
func binNames(name string) []string {
	if runtime.GOOS == "windows" {
		return []string{name + ".exe"}
	}
	return []string{name}
}

// dedup removes repeated entries while preserving order. Version hints with a
// shared major produce overlapping less-specific names.
func dedup(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := names[:0]
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
