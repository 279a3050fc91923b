package iconset

import (
	"fmt"
	"path/filepath"
)

// Target is one file the generator writes.
type Target struct {
	Size int    `json:"size"`
	Path string `json:"path"`
}

// SizedIconSizes are written as cortex-NxN.png into the icons directory.
var SizedIconSizes = []int{16, 32, 48, 64, 128, 192}

const (
	FaviconSize    = 32
	AppleTouchSize = 180
)

// DefaultTargets returns the full icon set in write order. The Apple touch
// icon appears twice under different names and is rendered once.
func DefaultTargets(cfg Config) []Target {
	targets := make([]Target, 0, len(SizedIconSizes)+3)
	for _, size := range SizedIconSizes {
		name := fmt.Sprintf("cortex-%dx%d.png", size, size)
		targets = append(targets, Target{Size: size, Path: filepath.Join(cfg.IconsDir, name)})
	}
	targets = append(targets,
		Target{Size: FaviconSize, Path: filepath.Join(cfg.PublicDir, "favicon.ico")},
		Target{Size: AppleTouchSize, Path: filepath.Join(cfg.PublicDir, "apple-touch-icon.png")},
		Target{Size: AppleTouchSize, Path: filepath.Join(cfg.PublicDir, "apple-touch-icon-180x180.png")},
	)
	return targets
}

// PreviewSizes returns the distinct sizes in targets, in first-seen order.
func PreviewSizes(targets []Target) []int {
	seen := make(map[int]bool, len(targets))
	var sizes []int
	for _, t := range targets {
		if !seen[t.Size] {
			seen[t.Size] = true
			sizes = append(sizes, t.Size)
		}
	}
	return sizes
}
