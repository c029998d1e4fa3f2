// Package opengl is the OpenGL 4.1 backend of the grid engine: a
// grid.Surface that batches primitives into a DrawList and a GLFW host
// adapter that feeds window input to an engine.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer uploads and draws DrawLists.
type Renderer struct {
	program  uint32
	vao, vbo uint32
	ebo      uint32
	atlasTex uint32
	screenU  int32 // vec2 logical surface size
	atlasU   int32 // sampler2D
}

// Positions arrive in logical pixels with a top-left origin and are
// mapped to clip space here, so no projection matrix is uploaded.
const gridVertexShader = `
#version 410 core
layout (location = 0) in vec2 inPosition;
layout (location = 1) in vec2 inUV;
layout (location = 2) in vec4 inColor;

uniform vec2 screen;

out vec2 fragUV;
out vec4 fragColor;

void main() {
    vec2 ndc = inPosition / screen * 2.0 - 1.0;
    gl_Position = vec4(ndc.x, -ndc.y, 0.0, 1.0);
    fragUV = inUV;
    fragColor = inColor;
}
` + "\x00"

// The atlas is alpha-only: the R channel scales the vertex colour's alpha.
// Solid fills sample the atlas's white texel.
const gridFragmentShader = `
#version 410 core
in vec2 fragUV;
in vec4 fragColor;

uniform sampler2D atlas;

out vec4 outColor;

void main() {
    outColor = vec4(fragColor.rgb, fragColor.a * texture(atlas, fragUV).r);
}
` + "\x00"

// vertexAttribs describes the Vertex layout: position, uv, packed colour.
var vertexAttribs = []struct {
	size      int32
	kind      uint32
	normalize bool
	offset    uintptr
}{
	{2, gl.FLOAT, false, unsafe.Offsetof(Vertex{}.Pos)},
	{2, gl.FLOAT, false, unsafe.Offsetof(Vertex{}.TexCoord)},
	{4, gl.UNSIGNED_BYTE, true, unsafe.Offsetof(Vertex{}.Color)},
}

// NewRenderer creates the GL resources and uploads the atlas. A GL
// context must be current.
func NewRenderer(atlas *Atlas) (*Renderer, error) {
	program, err := linkProgram(gridVertexShader, gridFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("grid shader: %w", err)
	}
	r := &Renderer{
		program: program,
		screenU: gl.GetUniformLocation(program, gl.Str("screen\x00")),
		atlasU:  gl.GetUniformLocation(program, gl.Str("atlas\x00")),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	stride := int32(unsafe.Sizeof(Vertex{}))
	for i, a := range vertexAttribs {
		gl.VertexAttribPointerWithOffset(uint32(i), a.size, a.kind, a.normalize, stride, a.offset)
		gl.EnableVertexAttribArray(uint32(i))
	}
	gl.BindVertexArray(0)

	r.atlasTex = uploadAtlas(atlas)
	return r, nil
}

// Render clears the framebuffer and draws dl. width and height are the
// logical surface size; ratio converts them to framebuffer pixels.
func (r *Renderer) Render(dl *DrawList, clear uint32, width, height, ratio float32) error {
	fbW := int32(width * ratio)
	fbH := int32(height * ratio)
	gl.Viewport(0, 0, fbW, fbH)

	cr, cg, cb, ca := unpack(clear)
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(cr, cg, cb, ca)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	dl.Finalize()
	if len(dl.VtxBuffer) == 0 {
		return glError()
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.program)
	gl.Uniform2f(r.screenU, width, height)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.atlasTex)
	gl.Uniform1i(r.atlasU, 0)

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		x, y, w, h, ok := scissorBox(cmd.ClipRect, height, ratio, fbW, fbH)
		if !ok {
			continue
		}
		gl.Scissor(x, y, w, h)

		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}

	gl.Disable(gl.SCISSOR_TEST)
	gl.BindVertexArray(0)
	return glError()
}

// scissorBox converts a logical clip rect (top-left origin) to a
// framebuffer scissor box (bottom-left origin), clamped to the
// framebuffer. It reports false for an empty box.
func scissorBox(clip [4]float32, height, ratio float32, fbW, fbH int32) (x, y, w, h int32, ok bool) {
	x0 := int32(max(0, clip[0]*ratio))
	x1 := int32(min(float32(fbW), clip[2]*ratio))
	y0 := int32(max(0, (height-clip[3])*ratio))
	y1 := int32(min(float32(fbH), (height-clip[1])*ratio))
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1 - x0, y1 - y0, true
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.atlasTex != 0 {
		gl.DeleteTextures(1, &r.atlasTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func uploadAtlas(a *Atlas) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(a.Width), int32(a.Height), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(a.Pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

func glError() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%04x", code)
	}
	return nil
}

func unpack(c uint32) (r, g, b, a float32) {
	return float32(c&0xFF) / 255, float32(c>>8&0xFF) / 255, float32(c>>16&0xFF) / 255, float32(c>>24) / 255
}

// linkProgram compiles both stages and links them. The stage objects
// are released in every case.
func linkProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileStage(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex stage: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileStage(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return 0, fmt.Errorf("fragment stage: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var ok int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		msg := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", msg)
	}
	return program, nil
}

func compileStage(kind uint32, src string) (uint32, error) {
	stage := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(stage, 1, csrc, nil)
	gl.CompileShader(stage)

	var ok int32
	gl.GetShaderiv(stage, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		msg := infoLog(stage, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(stage)
		return 0, fmt.Errorf("compile: %s", msg)
	}
	return stage, nil
}

// infoLog reads the info log of a shader or program object.
func infoLog(obj uint32, param func(uint32, uint32, *int32), read func(uint32, int32, *int32, *uint8)) string {
	var n int32
	param(obj, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no info log"
	}
	buf := make([]byte, n)
	read(obj, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}
