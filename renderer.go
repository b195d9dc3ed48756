package main

import "github.com/go-gl/mathgl/mgl32"

// Renderer turns frame numbers into frames of the spinning cube.
// It is not safe for concurrent use.
type Renderer struct {
	width, height int
	timeStep      float64
	distance      float32
	frame         uint64
}

// NewRenderer returns a renderer positioned at frame 0.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{
		width:    ScreenWidth,
		height:   ScreenHeight,
		timeStep: cfg.TimeStep,
		distance: cfg.Distance,
	}
}

// FrameNumber returns the number of the frame Next will render
func (r *Renderer) FrameNumber() uint64 {
	return r.frame
}

// Next renders the current frame and advances the counter.
func (r *Renderer) Next() *Frame {
	f := r.Render(r.frame)
	r.frame++
	return f
}

// Render draws frame n into a fresh buffer. It depends only on n.
func (r *Renderer) Render(n uint64) *Frame {
	frame := NewFrame(r.width, r.height)
	screen, visible := r.project(float64(n) * r.timeStep)

	for _, face := range cubeFaces {
		if !visible[face[0]] || !visible[face[1]] || !visible[face[2]] || !visible[face[3]] {
			continue
		}
		if Cull(screen[face[0]], screen[face[1]], screen[face[2]]) {
			continue
		}
		for _, e := range face.Edges() {
			frame.DrawLine(screen[e[0]], screen[e[1]])
		}
	}
	return frame
}

// project transforms every cube vertex for time t and maps it to screen space
func (r *Renderer) project(t float64) (screen [8]mgl32.Vec2, visible [8]bool) {
	m := CubeToWorld(t, r.distance)
	for i, v := range cubeVertices {
		screen[i], visible[i] = Project(Transform(m, v), r.width, r.height)
	}
	return screen, visible
}
