package portfolio

// Viewport is the drawable window size.
type Viewport struct {
	Width, Height int
	PixelRatio    float32
}

// Scroll is the page scroll position. The page is one viewport tall per
// section, so the furthest offset is (sections-1) * height.
type Scroll struct {
	Offset float32
}

// maxOffset returns the largest reachable offset.
func maxOffset(sections int, height int) float32 {
	if sections <= 1 || height <= 0 {
		return 0
	}
	return float32((sections - 1) * height)
}

func clampOffset(offset float32, sections, height int) float32 {
	return max(0, min(offset, maxOffset(sections, height)))
}
