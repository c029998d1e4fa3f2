package grid

// ListClipper computes the window of rows that intersect the viewport.
// Only rows in [StartIdx, EndIdx) are measured and painted, which keeps
// per-frame cost independent of the total row count.
//
// Usage:
//
//	clip := NewListClipper(rows, rowHeight, viewportHeight, scrollTop)
//	for i := clip.StartIdx; i < clip.EndIdx; i++ {
//	    y := clip.ItemY(i, headerHeight, scrollTop)
//	    // paint row i at y
//	}
type ListClipper struct {
	StartIdx   int     // First visible row (inclusive)
	EndIdx     int     // Last visible row (exclusive)
	ItemHeight float32 // Height of each row
	TotalItems int     // Total number of rows
}

// NewListClipper returns the visible window
// [floor(scrollY/itemHeight), ceil((scrollY+visibleHeight)/itemHeight))
// clamped to [0, totalItems].
func NewListClipper(totalItems int, itemHeight, visibleHeight, scrollY float32) *ListClipper {
	c := &ListClipper{ItemHeight: itemHeight, TotalItems: totalItems}
	if totalItems <= 0 || itemHeight <= 0 || visibleHeight <= 0 {
		return c
	}

	start := int(floorf(scrollY / itemHeight))
	end := int(ceilf((scrollY + visibleHeight) / itemHeight))

	if start < 0 {
		start = 0
	}
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}
	if end < start {
		end = start
	}

	c.StartIdx = start
	c.EndIdx = end
	return c
}

// ItemY returns the top of row idx in viewport coordinates.
func (c *ListClipper) ItemY(idx int, baseY, scrollY float32) float32 {
	return baseY + float32(idx)*c.ItemHeight - scrollY
}

// ScrollToItem returns the scroll offset that makes row idx fully visible.
// A row that is already visible leaves the scroll unchanged.
func (c *ListClipper) ScrollToItem(idx int, currentScroll, visibleHeight float32) float32 {
	if idx < 0 || idx >= c.TotalItems {
		return currentScroll
	}

	top := float32(idx) * c.ItemHeight
	bottom := top + c.ItemHeight

	if top < currentScroll {
		return top
	}
	if bottom > currentScroll+visibleHeight {
		return bottom - visibleHeight
	}
	return currentScroll
}
