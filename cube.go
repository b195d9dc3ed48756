package main

import "github.com/go-gl/mathgl/mgl32"

// Cube layout:
//
//	4    +------+  6
//	    /|     /|
//	5  +------+ |  7
//	   | |    | |
//	0  | +----|-+  2
//	   |/     |/
//	1  +------+    3
var cubeVertices = [8]mgl32.Vec4{
	{-1, -1, -1, 1},
	{-1, -1, 1, 1},
	{1, -1, -1, 1},
	{1, -1, 1, 1},
	{-1, 1, -1, 1},
	{-1, 1, 1, 1},
	{1, 1, -1, 1},
	{1, 1, 1, 1},
}

// Face is a quad given as four indices into cubeVertices. The order sets
// the winding used by Cull and the edge order used for drawing.
type Face [4]int

var cubeFaces = [6]Face{
	{1, 5, 7, 3}, // +Z
	{3, 7, 6, 2}, // +X
	{0, 4, 5, 1}, // -X
	{2, 6, 4, 0}, // -Z
	{0, 1, 3, 2}, // -Y
	{5, 4, 6, 7}, // +Y
}

// Edges returns the four edges of the face, closing back on the first vertex.
func (f Face) Edges() [4][2]int {
	var edges [4][2]int
	end := f[3]
	for i, start := range f {
		edges[i] = [2]int{start, end}
		end = start
	}
	return edges
}
