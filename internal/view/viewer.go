package view

import (
	"fmt"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/nrayamajhee/globemesh/pkg/geom"
	"github.com/nrayamajhee/globemesh/pkg/mesh"
)

const vertexShaderSrc = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;

out vec3 vNormal;

void main() {
	vNormal = mat3(uModel) * aNormal;
	gl_Position = uProj * uView * uModel * vec4(aPos, 1.0);
}
`

const fragmentShaderSrc = `#version 410 core
in vec3 vNormal;

uniform vec3 uLightDir;

out vec4 fragColor;

void main() {
	float diffuse = max(dot(normalize(vNormal), normalize(uLightDir)), 0.0);
	vec3 base = vec3(0.42, 0.58, 0.78);
	vec3 color = base * (0.25 + 0.75 * diffuse);
	fragColor = vec4(color, 1.0);
}
`

// Viewer renders one mesh with an orbit camera. Drag to rotate, scroll to
// zoom, press W to toggle wireframe, Escape to quit.
type Viewer struct {
	win     *Window
	program uint32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	locModel    int32
	locView     int32
	locProj     int32
	locLightDir int32

	yaw       float32
	pitch     float32
	distance  float32
	wireframe bool
	dragging  bool
}

// New creates the preview window and uploads the mesh to the GPU.
func New(winCfg WindowConfig, m *mesh.Mesh) (*Viewer, error) {
	win, err := NewWindow(winCfg)
	if err != nil {
		return nil, err
	}

	if err := gl.Init(); err != nil {
		win.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	program, err := compileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		win.Close()
		return nil, err
	}

	v := &Viewer{
		win:         win,
		program:     program,
		locModel:    uniform(program, "uModel"),
		locView:     uniform(program, "uView"),
		locProj:     uniform(program, "uProj"),
		locLightDir: uniform(program, "uLightDir"),
		pitch:       0.35,
	}
	v.upload(m)
	v.distance = frameDistance(m)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	return v, nil
}

// upload fills the vertex and index buffers from the mesh.
func (v *Viewer) upload(m *mesh.Mesh) {
	verts := m.InterleavedF32()

	gl.GenVertexArrays(1, &v.vao)
	gl.BindVertexArray(v.vao)

	gl.GenBuffers(1, &v.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.GenBuffers(1, &v.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, v.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	// Position + normal, interleaved.
	stride := int32(6 * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	v.indexCount = int32(len(m.Indices))
}

// frameDistance picks a camera distance that fits the mesh bounds.
func frameDistance(m *mesh.Mesh) float32 {
	s := m.Stats()
	ext := math.Max(s.Max.X-s.Min.X, math.Max(s.Max.Y-s.Min.Y, s.Max.Z-s.Min.Z))
	if ext <= 0 {
		return 3
	}
	return float32(ext) * 1.6
}

// Run drives the event and render loop until the window closes.
func (v *Viewer) Run() error {
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					break
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					return nil
				case sdl.K_w:
					v.wireframe = !v.wireframe
				}
			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					v.dragging = e.Type == sdl.MOUSEBUTTONDOWN
				}
			case *sdl.MouseMotionEvent:
				if v.dragging {
					v.yaw += float32(e.XRel) * 0.01
					v.pitch += float32(e.YRel) * 0.01
					v.pitch = clampAngle(v.pitch)
				}
			case *sdl.MouseWheelEvent:
				v.distance *= 1 - float32(e.Y)*0.1
			}
		}

		v.render()
		v.win.SwapBuffers()
	}
}

func clampAngle(a float32) float32 {
	const limit = 1.55
	if a > limit {
		return limit
	}
	if a < -limit {
		return -limit
	}
	return a
}

func (v *Viewer) render() {
	width, height := v.win.GetSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0.07, 0.08, 0.1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if v.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	aspect := float32(width) / float32(height)
	proj := geom.Perspective(45*math.Pi/180, aspect, v.distance*0.01, v.distance*10)
	view := geom.LookAt(
		geom.Vec3{Z: float64(v.distance)},
		geom.Vec3{},
		geom.Vec3{Y: 1},
	)
	model := geom.RotateY(v.yaw).Mul(geom.RotateX(v.pitch))

	gl.UseProgram(v.program)
	gl.UniformMatrix4fv(v.locModel, 1, false, model.Ptr())
	gl.UniformMatrix4fv(v.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(v.locProj, 1, false, proj.Ptr())
	gl.Uniform3f(v.locLightDir, 0.4, 0.8, 0.6)

	gl.BindVertexArray(v.vao)
	gl.DrawElements(gl.TRIANGLES, v.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Close releases GPU resources and the window.
func (v *Viewer) Close() {
	gl.DeleteBuffers(1, &v.ebo)
	gl.DeleteBuffers(1, &v.vbo)
	gl.DeleteVertexArrays(1, &v.vao)
	gl.DeleteProgram(v.program)
	v.win.Close()
}
