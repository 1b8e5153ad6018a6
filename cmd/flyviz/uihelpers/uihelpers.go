// Package uihelpers holds small pure functions backing the viewer layout,
// split out of main so they can be unit tested without a fyne driver.
package uihelpers

import "path/filepath"

// ComputePanelDimensions applies the width/height clamp rules used for figure
// panels. Input is the desired raw width (e.g. canvas width); the result keeps
// panels readable on narrow windows and not too tall on wide ones.
func ComputePanelDimensions(rawW int) (int, int) {
	w := rawW
	if w < 800 {
		w = 800
	}
	h := int(float32(w) * 0.33)
	if h < 280 {
		h = 280
	}
	if h > 520 {
		h = 520
	}
	return w, h
}

// TruncatePath shortens a file path for display, always keeping the base name.
func TruncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if left <= 0 {
		return "..." + base
	}
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}
