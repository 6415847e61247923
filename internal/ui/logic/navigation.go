package logic

// Navigator handles cursor movement and viewport management for a flat list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, totalItems int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.totalItems = totalItems
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// GetMaxIndex returns the maximum selectable index, -1 for an empty list
func (n *Navigator) GetMaxIndex() int {
	return n.totalItems - 1
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Move shifts the selection by delta rows
func (n *Navigator) Move(delta int) (int, int) {
	return n.SetSelectedIndex(n.selectedIndex + delta)
}

// PageSize is the number of rows a page up/down moves
func (n *Navigator) PageSize() int {
	size := n.viewportHeight - 2 // Leave some overlap
	if size < 1 {
		size = 1
	}
	return size
}

// ensureSelectedVisible clamps the selection and scrolls the viewport to it
func (n *Navigator) ensureSelectedVisible() {
	if n.totalItems <= 0 {
		n.selectedIndex = 0
		n.viewportOffset = 0
		return
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
	if n.selectedIndex > n.totalItems-1 {
		n.selectedIndex = n.totalItems - 1
	}

	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}

	// Scrolling can hide the bottom indicator, so settle in a few passes
	for i := 0; i < 3; i++ {
		effective, _, _ := Window(n.viewportOffset, n.viewportHeight, n.totalItems)
		if n.selectedIndex < n.viewportOffset+effective {
			break
		}
		n.viewportOffset = n.selectedIndex - effective + 1
	}

	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}

// Window returns how many rows fit in a viewport of height lines starting at
// offset, and whether the "more above" and "more below" indicators are shown
func Window(offset, height, total int) (effective int, top bool, bottom bool) {
	top = offset > 0
	bottom = offset+height < total

	if !bottom && top {
		// the top indicator alone can push the last row out
		if total-offset > height-1 {
			bottom = true
		}
	}

	effective = height
	if top {
		effective--
	}
	if bottom {
		effective--
	}
	if effective < 1 {
		effective = 1
	}
	return effective, top, bottom
}
