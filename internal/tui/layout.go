package tui

// rect is a card's area within the grid content, in cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// layout places n cards in a centered grid that wraps at the terminal width.
// Frame rows are relative to the top of the grid, not the screen.
type layout struct {
	cols   int
	left   int
	frames []rect
}

func computeLayout(width, n int) layout {
	cols := (width + cardGap) / (cardWidth + cardGap)
	if cols < 1 {
		cols = 1
	}
	if n > 0 && cols > n {
		cols = n
	}
	gridWidth := cols*cardWidth + (cols-1)*cardGap
	left := (width - gridWidth) / 2
	if left < 0 {
		left = 0
	}
	l := layout{cols: cols, left: left, frames: make([]rect, n)}
	for i := 0; i < n; i++ {
		row, col := i/cols, i%cols
		l.frames[i] = rect{
			x: left + col*(cardWidth+cardGap),
			y: row * (cardHeight + cardGap),
			w: cardWidth,
			h: cardHeight,
		}
	}
	return l
}

// height is the number of content lines the grid occupies.
func (l layout) height() int {
	if len(l.frames) == 0 {
		return 0
	}
	rows := (len(l.frames) + l.cols - 1) / l.cols
	return rows*cardHeight + (rows-1)*cardGap
}

// hit returns the card at content position (x, y) and the inner content line
// it falls on, or -1 for the border rows.
func (l layout) hit(x, y int) (idx, line int, ok bool) {
	for i, r := range l.frames {
		if r.contains(x, y) {
			line = y - r.y - 1
			if line >= cardInnerHeight {
				line = -1
			}
			return i, line, true
		}
	}
	return -1, -1, false
}

// scrollArea tracks which slice of the grid content is on screen.
type scrollArea struct {
	offset int
	height int
}

// maxOffset is the largest offset that still fills the viewport.
func (v scrollArea) maxOffset(content int) int {
	if content <= v.height {
		return 0
	}
	return content - v.height
}

func (v scrollArea) clamp(offset, content int) int {
	if offset > v.maxOffset(content) {
		offset = v.maxOffset(content)
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// toContent maps a screen row to a grid content row. ok is false for rows
// outside the grid area.
func (v scrollArea) toContent(screenY int) (int, bool) {
	y := screenY - headerHeight
	if y < 0 || y >= v.height {
		return 0, false
	}
	return y + v.offset, true
}
