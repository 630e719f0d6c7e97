// Package opengl provides a GLFW input adapter and an OpenGL 4.1 overlay
// renderer for imcore.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/imcore/backend/overlay"
)

// Renderer draws an overlay.Overlay with OpenGL.
type Renderer struct {
	shader   uint32
	vao, vbo uint32
	ebo      uint32
	projLoc  int32
	width    int
	height   int
}

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    Color = aColor;
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
in vec4 Color;
out vec4 FragColor;

void main() {
    FragColor = Color;
}
` + "\x00"

// NewRenderer creates a renderer for a framebuffer of the given size.
// A GL context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{width: width, height: height}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Pos (2 floats) + Color (normalized uint8x4)
	stride := int32(unsafe.Sizeof(overlay.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(overlay.Vertex{}.Color))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return r, nil
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render draws o on top of the current framebuffer, restoring the GL state
// it touches.
func (r *Renderer) Render(o *overlay.Overlay) {
	if o == nil || len(o.Idx) == 0 {
		return
	}

	var lastProgram int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(o.Vtx)*int(unsafe.Sizeof(overlay.Vertex{})), gl.Ptr(o.Vtx), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(o.Idx)*4, gl.Ptr(o.Idx), gl.STREAM_DRAW)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(o.Idx)), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	gl.UseProgram(uint32(lastProgram))
	if !blendEnabled {
		gl.Disable(gl.BLEND)
	}
	if depthEnabled {
		gl.Enable(gl.DEPTH_TEST)
	}
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

func compileShader(kind uint32, source, name string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader compilation failed: %s", name, string(log))
	}
	return shader, nil
}

func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSource, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}
	return program, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
