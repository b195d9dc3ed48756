package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// NearPlane is the minimum depth in front of the viewer a vertex needs to be projected
const NearPlane = 0.1

// Transform applies the column-major matrix m to v.
// The product is the weighted sum of the columns of m, weights taken from v.
func Transform(m mgl32.Mat4, v mgl32.Vec4) mgl32.Vec4 {
	return m.Mul4x1(v)
}

// CubeToWorld builds the rotation around the Y axis for time t, followed by a
// push of distance units away from the viewer along -Z
func CubeToWorld(t float64, distance float32) mgl32.Mat4 {
	c := float32(math.Cos(t))
	s := float32(math.Sin(t))
	return mgl32.Mat4FromCols(
		mgl32.Vec4{c, 0, s, 0},
		mgl32.Vec4{0, 1, 0, 0},
		mgl32.Vec4{-s, 0, c, 0},
		mgl32.Vec4{0, 0, -distance, 1},
	)
}

// Project projects the view-space point to 2D character coordinates.
// ok is false when the point is not at least NearPlane in front of the viewer;
// the returned position is meaningless in that case.
func Project(world mgl32.Vec4, width, height int) (pos mgl32.Vec2, ok bool) {
	z := world.Z()
	if z > -NearPlane {
		return mgl32.Vec2{}, false
	}
	scaleX := float32(width) * 0.5
	scaleY := float32(height) * 0.5
	recipZ := 1 / z
	// explicit conversions keep the compiler from fusing into FMA
	x := float32(world.X()*recipZ*scaleX) + scaleX
	y := float32(world.Y()*recipZ*scaleY) + scaleY
	return mgl32.Vec2{x, y}, true
}
