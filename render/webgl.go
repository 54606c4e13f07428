// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package render

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hack-pad/safejs"
	"github.com/planesgl/planes/base/errors"
	"github.com/planesgl/planes/math32"
	"github.com/planesgl/planes/xyz"
)

const vertexShader = `#version 300 es
in vec2 aPos;
uniform mat4 uMVP;
out vec2 vUV;
void main() {
	vUV = vec2(aPos.x + 0.5, 0.5 - aPos.y);
	gl_Position = uMVP * vec4(aPos, 0.0, 1.0);
}
`

// The fragment shader crops the texture to cover the plane, zooms it
// by the hover amount, and bends it by the scroll strength.
const fragmentShader = `#version 300 es
precision highp float;
in vec2 vUV;
uniform sampler2D uTex;
uniform vec4 uSrc;
uniform float uOpacity;
uniform float uStrength;
out vec4 outColor;
void main() {
	vec2 uv = vUV;
	uv.y += sin(uv.x * 3.14159265) * uStrength * 0.002;
	vec4 c = texture(uTex, uSrc.xy + uv * uSrc.zw);
	outColor = vec4(c.rgb, c.a * uOpacity);
}
`

// glContext wraps a WebGL2 context, recording the first error of
// a sequence of calls.
type glContext struct {
	v   safejs.Value
	err error
}

func (g *glContext) call(m string, args ...any) safejs.Value {
	v, err := g.v.Call(m, args...)
	if err != nil && g.err == nil {
		g.err = fmt.Errorf("render: webgl %s: %w", m, err)
	}
	return v
}

func (g *glContext) constant(name string) int {
	v, err := g.v.Get(name)
	if err == nil {
		var n int
		n, err = v.Int()
		if err == nil {
			return n
		}
	}
	if g.err == nil {
		g.err = fmt.Errorf("render: webgl constant %s: %w", name, err)
	}
	return 0
}

type glConsts struct {
	arrayBuffer, staticDraw, floatType, triangles                     int
	texture2D, rgba, unsignedByte, textureMinFilter, textureMagFilter int
	linear, clampToEdge, textureWrapS, textureWrapT, texture0         int
	colorBufferBit, blend, srcAlpha, oneMinusSrcAlpha                 int
	vertexShader, fragmentShader, compileStatus, linkStatus           int
	unpackAlignment                                                   int
}

// WebGL is a [Renderer] drawing into a canvas with WebGL2.
// Textures are uploaded on first use.
type WebGL struct {

	// Background is the clear color.
	Background color.RGBA

	canvas safejs.Value
	gl     *glContext
	c      glConsts

	program   safejs.Value
	vbo       safejs.Value
	vao       safejs.Value
	uMVP      safejs.Value
	uTex      safejs.Value
	uSrc      safejs.Value
	uOpacity  safejs.Value
	uStrength safejs.Value

	textures    map[*xyz.Texture]safejs.Value
	placeholder *xyz.Texture

	width, height int
}

// NewWebGL returns a new [WebGL] renderer drawing into the given canvas.
func NewWebGL(canvas safejs.Value) (*WebGL, error) {
	v, err := canvas.Call("getContext", "webgl2", map[string]any{"alpha": false, "antialias": true})
	if err != nil {
		return nil, fmt.Errorf("render: getContext: %w", err)
	}
	if v.IsNull() || v.IsUndefined() {
		return nil, errors.New("render: WebGL2 is not available")
	}
	r := &WebGL{Background: DefaultBackground, canvas: canvas, gl: &glContext{v: v},
		textures: map[*xyz.Texture]safejs.Value{}, placeholder: xyz.NewPlaceholder("placeholder", PlaceholderColor)}
	r.initConsts()
	if err := r.init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *WebGL) initConsts() {
	g := r.gl
	r.c = glConsts{
		arrayBuffer:      g.constant("ARRAY_BUFFER"),
		staticDraw:       g.constant("STATIC_DRAW"),
		floatType:        g.constant("FLOAT"),
		triangles:        g.constant("TRIANGLES"),
		texture2D:        g.constant("TEXTURE_2D"),
		rgba:             g.constant("RGBA"),
		unsignedByte:     g.constant("UNSIGNED_BYTE"),
		textureMinFilter: g.constant("TEXTURE_MIN_FILTER"),
		textureMagFilter: g.constant("TEXTURE_MAG_FILTER"),
		linear:           g.constant("LINEAR"),
		clampToEdge:      g.constant("CLAMP_TO_EDGE"),
		textureWrapS:     g.constant("TEXTURE_WRAP_S"),
		textureWrapT:     g.constant("TEXTURE_WRAP_T"),
		texture0:         g.constant("TEXTURE0"),
		colorBufferBit:   g.constant("COLOR_BUFFER_BIT"),
		blend:            g.constant("BLEND"),
		srcAlpha:         g.constant("SRC_ALPHA"),
		oneMinusSrcAlpha: g.constant("ONE_MINUS_SRC_ALPHA"),
		vertexShader:     g.constant("VERTEX_SHADER"),
		fragmentShader:   g.constant("FRAGMENT_SHADER"),
		compileStatus:    g.constant("COMPILE_STATUS"),
		linkStatus:       g.constant("LINK_STATUS"),
		unpackAlignment:  g.constant("UNPACK_ALIGNMENT"),
	}
}

func (r *WebGL) init() error {
	g := r.gl
	vs, err := r.compile(r.c.vertexShader, vertexShader)
	if err != nil {
		return err
	}
	fs, err := r.compile(r.c.fragmentShader, fragmentShader)
	if err != nil {
		return err
	}
	r.program = g.call("createProgram")
	g.call("attachShader", r.program, vs)
	g.call("attachShader", r.program, fs)
	g.call("linkProgram", r.program)
	if ok, _ := g.call("getProgramParameter", r.program, r.c.linkStatus).Bool(); !ok {
		msg, _ := g.call("getProgramInfoLog", r.program).String()
		return fmt.Errorf("render: link program: %s", msg)
	}
	r.uMVP = g.call("getUniformLocation", r.program, "uMVP")
	r.uTex = g.call("getUniformLocation", r.program, "uTex")
	r.uSrc = g.call("getUniformLocation", r.program, "uSrc")
	r.uOpacity = g.call("getUniformLocation", r.program, "uOpacity")
	r.uStrength = g.call("getUniformLocation", r.program, "uStrength")

	quad, err := float32Array([]float32{
		-0.5, -0.5, 0.5, -0.5, 0.5, 0.5,
		-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
	})
	if err != nil {
		return fmt.Errorf("render: quad: %w", err)
	}
	r.vao = g.call("createVertexArray")
	g.call("bindVertexArray", r.vao)
	r.vbo = g.call("createBuffer")
	g.call("bindBuffer", r.c.arrayBuffer, r.vbo)
	g.call("bufferData", r.c.arrayBuffer, quad, r.c.staticDraw)
	loc, _ := g.call("getAttribLocation", r.program, "aPos").Int()
	g.call("enableVertexAttribArray", loc)
	g.call("vertexAttribPointer", loc, 2, r.c.floatType, false, 2*4, 0)

	g.call("enable", r.c.blend)
	g.call("blendFunc", r.c.srcAlpha, r.c.oneMinusSrcAlpha)
	g.call("pixelStorei", r.c.unpackAlignment, 1)
	return g.err
}

func (r *WebGL) compile(kind int, src string) (safejs.Value, error) {
	g := r.gl
	sh := g.call("createShader", kind)
	g.call("shaderSource", sh, src)
	g.call("compileShader", sh)
	if ok, _ := g.call("getShaderParameter", sh, r.c.compileStatus).Bool(); !ok {
		msg, _ := g.call("getShaderInfoLog", sh).String()
		return sh, fmt.Errorf("render: compile shader: %s", msg)
	}
	return sh, g.err
}

func (r *WebGL) SetSize(width, height int, pixelRatio float32) {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	r.width = max(int(math32.Round(float32(width)*pixelRatio)), 1)
	r.height = max(int(math32.Round(float32(height)*pixelRatio)), 1)
	errors.Log(r.canvas.Set("width", r.width))
	errors.Log(r.canvas.Set("height", r.height))
	if style, err := r.canvas.Get("style"); errors.Log(err) == nil {
		errors.Log(style.Set("width", strconv.Itoa(width)+"px"))
		errors.Log(style.Set("height", strconv.Itoa(height)+"px"))
	}
}

// texture returns the GL texture for tx, uploading it on first use.
func (r *WebGL) texture(tx *xyz.Texture) safejs.Value {
	if t, ok := r.textures[tx]; ok {
		return t
	}
	g := r.gl
	t := g.call("createTexture")
	g.call("bindTexture", r.c.texture2D, t)
	g.call("texParameteri", r.c.texture2D, r.c.textureWrapS, r.c.clampToEdge)
	g.call("texParameteri", r.c.texture2D, r.c.textureWrapT, r.c.clampToEdge)
	g.call("texParameteri", r.c.texture2D, r.c.textureMinFilter, r.c.linear)
	g.call("texParameteri", r.c.texture2D, r.c.textureMagFilter, r.c.linear)
	sz := tx.Size()
	pix, err := uint8Array(tx.RGBA.Pix)
	if err != nil && g.err == nil {
		g.err = fmt.Errorf("render: upload %s: %w", tx.Name, err)
	}
	g.call("texImage2D", r.c.texture2D, 0, r.c.rgba, sz.X, sz.Y, 0, r.c.rgba, r.c.unsignedByte, pix)
	r.textures[tx] = t
	return t
}

func (r *WebGL) Render(root *xyz.Group, camera *xyz.Camera) error {
	g := r.gl
	g.err = nil
	bg := r.Background
	g.call("viewport", 0, 0, r.width, r.height)
	g.call("clearColor", float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)
	g.call("clear", r.c.colorBufferBit)
	g.call("useProgram", r.program)
	g.call("bindVertexArray", r.vao)
	g.call("activeTexture", r.c.texture0)
	g.call("uniform1i", r.uTex, 0)

	vp := camera.ViewProjection()
	for _, d := range Drawables(root) {
		p := d.Plane
		tx := p.Texture
		src := [4]float32{0, 0, 1, 1}
		if tx == nil || tx.RGBA == nil {
			tx = r.placeholder
		} else if !tx.Placeholder {
			sz := tx.Size()
			x0, y0, x1, y1 := SourceRect(planeSize(p), sz.X, sz.Y, p.Uniforms.Hover)
			w, h := float32(sz.X), float32(sz.Y)
			src = [4]float32{x0 / w, y0 / h, (x1 - x0) / w, (y1 - y0) / h}
		}
		mvp := vp.Mul4(d.World)
		m, err := float32Array(mvp[:])
		if err != nil {
			return fmt.Errorf("render: matrix: %w", err)
		}
		g.call("bindTexture", r.c.texture2D, r.texture(tx))
		g.call("uniformMatrix4fv", r.uMVP, false, m)
		g.call("uniform4f", r.uSrc, src[0], src[1], src[2], src[3])
		g.call("uniform1f", r.uOpacity, math32.Clamp(p.Opacity, 0, 1))
		g.call("uniform1f", r.uStrength, p.Uniforms.Strength)
		g.call("drawArrays", r.c.triangles, 0, 6)
		if g.err != nil {
			return g.err
		}
	}
	return g.err
}

// Forget deletes the GL texture of tx, if it was uploaded.
func (r *WebGL) Forget(tx *xyz.Texture) {
	if t, ok := r.textures[tx]; ok {
		r.gl.call("deleteTexture", t)
		delete(r.textures, tx)
	}
}

func (r *WebGL) Close() {
	for tx := range r.textures {
		r.Forget(tx)
	}
	g := r.gl
	g.call("deleteBuffer", r.vbo)
	g.call("deleteVertexArray", r.vao)
	g.call("deleteProgram", r.program)
	errors.Log(g.err)
}
