package domain

// PageSize holds the native pixel dimensions of a rendered document page,
// reported by the page-rendering collaborator after it loads the page.
type PageSize struct {
	// Width is the native page width in pixels.
	Width float64

	// Height is the native page height in pixels.
	Height float64
}

// Overlay is a highlight rectangle expressed as percentages of the rendered
// page box, so it scales with whatever size the page is drawn at.
type Overlay struct {
	// Left is the left edge as a percentage of page width.
	Left float64

	// Top is the top edge as a percentage of page height.
	Top float64

	// Width is the rectangle width as a percentage of page width.
	Width float64

	// Height is the rectangle height as a percentage of page height.
	Height float64
}

// LocateEvidence converts a citation's bounding box into a percentage
// overlay for the cited page. It returns nil when the citation has no box
// or the page dimensions are not yet known; callers retry once the
// rendering collaborator has reported the dimensions.
//
// The box arrives in one of two legacy wire encodings with no format tag.
// If any component exceeds 1 the box is absolute pixel corners
// [x1, y1, x2, y2] in the page's native pixel space. Otherwise it is
// normalised fractions [left, top, width, height] of the page dimensions.
// The third and fourth components mean different things in the two
// encodings; that asymmetry is part of the wire contract and must not be
// "fixed" here.
func LocateEvidence(c *Citation, size PageSize) *Overlay {
	if c == nil || len(c.BoundingBox) != 4 {
		return nil
	}
	if size.Width <= 0 || size.Height <= 0 {
		return nil
	}

	box := c.BoundingBox
	absolute := false
	for _, v := range box {
		if v > 1 {
			absolute = true
			break
		}
	}

	if absolute {
		return &Overlay{
			Left:   box[0] / size.Width * 100,
			Top:    box[1] / size.Height * 100,
			Width:  (box[2] - box[0]) / size.Width * 100,
			Height: (box[3] - box[1]) / size.Height * 100,
		}
	}

	return &Overlay{
		Left:   box[0] * 100,
		Top:    box[1] * 100,
		Width:  box[2] * 100,
		Height: box[3] * 100,
	}
}
