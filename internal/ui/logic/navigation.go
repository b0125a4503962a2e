package logic

// Navigator handles scrolling of the results area. The results are a list of
// rendered lines; the viewport shows a window of them with an indicator line
// at the top and/or bottom when more content is hidden.
type Navigator struct {
	viewportOffset int
	viewportHeight int
	totalLines     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(viewportOffset, viewportHeight, totalLines int) {
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.totalLines = totalLines
	n.clamp()
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// Scroll moves the viewport and returns the new offset.
// direction is one of "up", "down", "pageup", "pagedown", "home", "end".
func (n *Navigator) Scroll(direction string) int {
	page := n.EffectiveHeight()
	if page < 1 {
		page = 1
	}

	switch direction {
	case "up":
		n.viewportOffset--
	case "down":
		n.viewportOffset++
	case "pageup":
		n.viewportOffset -= page
	case "pagedown":
		n.viewportOffset += page
	case "home":
		n.viewportOffset = 0
	case "end":
		n.viewportOffset = n.maxOffset()
	}

	n.clamp()
	return n.viewportOffset
}

// HasMoreAbove reports whether lines are hidden above the viewport
func (n *Navigator) HasMoreAbove() bool {
	return n.viewportOffset > 0
}

// HasMoreBelow reports whether lines are hidden below the viewport
func (n *Navigator) HasMoreBelow() bool {
	return n.viewportOffset+n.EffectiveHeight() < n.totalLines
}

// EffectiveHeight is the number of content lines shown once scroll
// indicators take their space
func (n *Navigator) EffectiveHeight() int {
	if n.totalLines <= n.viewportHeight && n.viewportOffset == 0 {
		return n.viewportHeight
	}

	height := n.viewportHeight
	if n.viewportOffset > 0 {
		height--
	}
	// Bottom indicator unless the remaining lines fit
	if n.totalLines-n.viewportOffset > height {
		height--
	}
	if height < 1 {
		height = 1
	}
	return height
}

// VisibleRange returns the [start, end) line range to draw
func (n *Navigator) VisibleRange() (int, int) {
	start := n.viewportOffset
	end := start + n.EffectiveHeight()
	if end > n.totalLines {
		end = n.totalLines
	}
	if start > end {
		start = end
	}
	return start, end
}

func (n *Navigator) maxOffset() int {
	if n.totalLines <= n.viewportHeight {
		return 0
	}
	// At the bottom only the top indicator is drawn
	maxOffset := n.totalLines - (n.viewportHeight - 1)
	if maxOffset < 0 {
		maxOffset = 0
	}
	return maxOffset
}

func (n *Navigator) clamp() {
	if n.viewportOffset > n.maxOffset() {
		n.viewportOffset = n.maxOffset()
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
