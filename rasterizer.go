package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// ScreenWidth is the number of character columns in a frame
	ScreenWidth = 80
	// ScreenHeight is the number of character rows in a frame
	ScreenHeight = 40

	blankCell      = ' '
	horizontalCell = '-'
	verticalCell   = '|'
)

// Frame is a fixed-size character grid stored row-major.
type Frame struct {
	Width, Height int
	Cells         []byte
}

// NewFrame returns a blank width x height frame.
func NewFrame(width, height int) *Frame {
	cells := make([]byte, width*height)
	for i := range cells {
		cells[i] = blankCell
	}
	return &Frame{Width: width, Height: height, Cells: cells}
}

// At returns the character at (row, col), or 0 when outside the frame
func (f *Frame) At(row, col int) byte {
	if !f.inBounds(row, col) {
		return 0
	}
	return f.Cells[row*f.Width+col]
}

// Set writes ch at (row, col). Writes outside the frame are dropped.
func (f *Frame) Set(row, col int, ch byte) {
	if !f.inBounds(row, col) {
		return
	}
	f.Cells[row*f.Width+col] = ch
}

// Row returns row as a slice into the frame
func (f *Frame) Row(row int) []byte {
	return f.Cells[row*f.Width : (row+1)*f.Width]
}

// String renders the frame as newline-terminated rows.
func (f *Frame) String() string {
	out := make([]byte, 0, (f.Width+1)*f.Height)
	for row := 0; row < f.Height; row++ {
		out = append(out, f.Row(row)...)
		out = append(out, '\n')
	}
	return string(out)
}

func (f *Frame) inBounds(row, col int) bool {
	return row >= 0 && row < f.Height && col >= 0 && col < f.Width
}

// Cull reports whether the face whose first three projected vertices are
// p0, p1, p2 is facing away and should not be drawn. Collinear points are
// kept.
func Cull(p0, p1, p2 mgl32.Vec2) bool {
	dx0, dx1 := p1.X()-p0.X(), p2.X()-p1.X()
	dy0, dy1 := p1.Y()-p0.Y(), p2.Y()-p1.Y()
	return dx0*dy1 > dx1*dy0
}

// DrawLine draws a line from start to end, stepping along whichever axis has
// the larger extent. Steps run from the ceiling of the lower bound up to, but
// not including, the ceiling of the upper bound, so a segment with no extent
// on the stepped axis draws nothing. Cells outside the frame are dropped.
func (f *Frame) DrawLine(start, end mgl32.Vec2) {
	x0, y0 := start.X(), start.Y()
	x1, y1 := end.X(), end.Y()
	dx, dy := x1-x0, y1-y0

	if abs32(dy) > abs32(dx) {
		iymin, iymax := stepRange(y0, y1, f.Height)
		dxdy := dx / dy
		for iy := iymin; iy < iymax; iy++ {
			ix := floorIndex(float32((float32(iy)-y0)*dxdy) + x0)
			f.Set(iy, ix, verticalCell)
		}
		return
	}

	ixmin, ixmax := stepRange(x0, x1, f.Width)
	dydx := dy / dx
	for ix := ixmin; ix < ixmax; ix++ {
		iy := floorIndex(float32((float32(ix)-x0)*dydx) + y0)
		f.Set(iy, ix, horizontalCell)
	}
}

// stepRange returns the integer steps between a and b clamped to [0, limit]
func stepRange(a, b float32, limit int) (lo, hi int) {
	lo = clampIndex(math.Ceil(float64(min(a, b))), limit)
	hi = clampIndex(math.Ceil(float64(max(a, b))), limit)
	return lo, hi
}

func clampIndex(v float64, limit int) int {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > float64(limit):
		return limit
	}
	return int(v)
}

// floorIndex converts a coordinate to a cell index; anything not finite maps
// to -1 so the write is dropped.
func floorIndex(v float32) int {
	f := math.Floor(float64(v))
	if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return -1
	}
	return int(f)
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
