package road

// MarkingWidth is the thickness of painted road lines.
const MarkingWidth = 4

// LaneLines returns the painted lane dividers: three vertical lines at
// CenterX-LaneWidth, CenterX and CenterX+LaneWidth spanning the canvas
// height, then the three matching horizontal lines.
func (g Geometry) LaneLines() []Rect {
	half := MarkingWidth / 2
	lines := make([]Rect, 0, 6)
	for _, off := range []int{-LaneWidth, 0, LaneWidth} {
		lines = append(lines, NewRect(g.CenterX+off-half, 0, MarkingWidth, g.Height))
	}
	for _, off := range []int{-LaneWidth, 0, LaneWidth} {
		lines = append(lines, NewRect(0, g.CenterY+off-half, g.Width, MarkingWidth))
	}
	return lines
}

// StopMarking returns the bar painted across d's lane on the approach side
// of its stop line.
func (g Geometry) StopMarking(d Direction) Rect {
	lane := g.Lane(d)
	stop := g.StopLine(d)
	switch d {
	case North:
		return NewRect(lane, stop-MarkingWidth, LaneWidth, MarkingWidth)
	case South:
		return NewRect(lane, stop, LaneWidth, MarkingWidth)
	case East:
		return NewRect(stop-MarkingWidth, lane, MarkingWidth, LaneWidth)
	case West:
		return NewRect(stop, lane, MarkingWidth, LaneWidth)
	}
	return Rect{}
}
