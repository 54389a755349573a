// Package cursor manages a selection index and scroll offset for
// scrollable lists. List length and viewport height are passed to each
// method rather than stored, since both change as the list is
// recomputed and the terminal is resized.
package cursor

// Cursor tracks the selected index and the first visible index.
// Invariants after every mutating call with a valid height:
//
//	0 <= pos <= max(0, listLen-1)
//	offset <= pos < offset+height
//	offset >= 0
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above/below the selection
}

// New creates a cursor with the given scroll margin. A margin of 0
// scrolls only when the selection would leave the viewport.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected index.
func (c Cursor) Pos() int { return c.pos }

// Offset returns the first visible index.
func (c Cursor) Offset() int { return c.offset }

// Move shifts the selection by delta within a list of listLen items.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump sets the selection to an absolute index, clamped to bounds.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen <= 0 {
		c.Reset()
		return
	}
	c.pos = clamp(pos, 0, listLen-1)
	c.EnsureVisible(listLen, height)
}

// JumpStart selects the first item and rewinds the viewport.
func (c *Cursor) JumpStart() {
	c.Reset()
}

// JumpEnd selects the last item.
func (c *Cursor) JumpEnd(listLen, height int) {
	c.Jump(listLen-1, listLen, height)
}

// Page moves the selection by whole viewports; dir is +1 or -1.
func (c *Cursor) Page(dir, listLen, height int) {
	step := max(height, 1)
	c.Move(dir*step, listLen, height)
}

// ClampToBounds pulls the selection back into range after the list
// shrank. Reports whether the position changed.
func (c *Cursor) ClampToBounds(listLen int) bool {
	old := c.pos
	if listLen <= 0 {
		changed := c.pos != 0 || c.offset != 0
		c.Reset()
		return changed
	}
	c.pos = clamp(c.pos, 0, listLen-1)
	return c.pos != old
}

// EnsureVisible adjusts the offset so the selection stays inside the
// viewport, honoring the scroll margin where the list allows it.
func (c *Cursor) EnsureVisible(listLen, height int) {
	if height <= 0 || listLen <= 0 {
		return
	}
	if c.pos < c.offset+c.margin {
		c.offset = c.pos - c.margin
	}
	if c.pos >= c.offset+height-c.margin {
		c.offset = c.pos - height + c.margin + 1
	}
	c.offset = clamp(c.offset, 0, max(listLen-height, 0))
}

// VisibleRange returns the half-open window [start, end) of visible
// indices for the given viewport height.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen <= 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// Reset returns the cursor to the top with no scroll.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
