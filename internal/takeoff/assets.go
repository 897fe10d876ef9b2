package takeoff

import (
	"os"
)

// AssetChecker reports whether an image reference can be drawn.
// Hosts that cannot load an image draw the fallback shape instead.
type AssetChecker interface {
	Available(ref string) bool
}

// NoAssets treats every image as missing, so only fallback shapes are drawn.
type NoAssets struct{}

// Available always returns false.
func (NoAssets) Available(string) bool { return false }

// DirAssets resolves references through a path function and checks that the file exists.
type DirAssets struct {
	Resolve func(ref string) string
}

// Available reports whether the resolved path is a readable regular file.
func (d DirAssets) Available(ref string) bool {
	if ref == "" {
		return false
	}
	path := ref
	if d.Resolve != nil {
		path = d.Resolve(ref)
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// AssetFunc adapts a function to AssetChecker.
type AssetFunc func(ref string) bool

// Available calls f(ref).
func (f AssetFunc) Available(ref string) bool { return f(ref) }
