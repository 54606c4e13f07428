// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/planesgl/planes/base/errors"
	"github.com/planesgl/planes/math32"
	"github.com/planesgl/planes/xyz"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Software is a [Renderer] that draws into an image on the CPU.
// Each plane is drawn as the affine image of its projected corners,
// which is exact for planes facing the camera.
type Software struct {

	// Background is the clear color.
	Background color.Color

	// Interpolator samples the textures.
	Interpolator draw.Interpolator

	img        *image.RGBA
	pixelRatio float32
}

// NewSoftware returns a new [Software] renderer of the given size.
func NewSoftware(width, height int) *Software {
	sw := &Software{Background: DefaultBackground, Interpolator: draw.ApproxBiLinear}
	sw.SetSize(width, height, 1)
	return sw
}

func (sw *Software) SetSize(width, height int, pixelRatio float32) {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	w := max(int(math32.Round(float32(width)*pixelRatio)), 1)
	h := max(int(math32.Round(float32(height)*pixelRatio)), 1)
	sw.pixelRatio = pixelRatio
	if sw.img != nil && sw.img.Rect.Dx() == w && sw.img.Rect.Dy() == h {
		return
	}
	sw.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Image returns the image rendered into.
func (sw *Software) Image() *image.RGBA {
	return sw.img
}

// WritePNG encodes the last rendered image as PNG.
func (sw *Software) WritePNG(w io.Writer) error {
	if sw.img == nil {
		return errors.New("render: renderer is closed")
	}
	return png.Encode(w, sw.img)
}

func (sw *Software) Render(root *xyz.Group, camera *xyz.Camera) error {
	if sw.img == nil {
		return errors.New("render: renderer is closed")
	}
	draw.Draw(sw.img, sw.img.Rect, image.NewUniform(sw.Background), image.Point{}, draw.Src)
	for _, d := range Drawables(root) {
		if err := sw.drawPlane(d, camera); err != nil {
			return err
		}
	}
	return nil
}

// toPixels converts normalized device coordinates to image pixels.
func (sw *Software) toPixels(ndc math32.Vector2) math32.Vector2 {
	sz := sw.img.Rect.Size()
	return math32.Vec2((ndc.X+1)/2*float32(sz.X), (1-ndc.Y)/2*float32(sz.Y))
}

func (sw *Software) drawPlane(d Drawable, camera *xyz.Camera) error {
	p := d.Plane
	var px [4]math32.Vector2
	for i, c := range xyz.Corners(d.World) {
		ndc, ok := camera.Project(c)
		if !ok {
			return nil // behind the camera
		}
		px[i] = sw.toPixels(ndc)
	}
	// corners are counter clockwise from bottom left
	bl, tr, tl := px[0], px[2], px[3]

	var src image.Image
	var x0, y0, x1, y1 float32
	if tx := p.Texture; tx != nil && tx.RGBA != nil {
		sz := tx.Size()
		src = tx.RGBA
		if tx.Placeholder {
			x0, y0, x1, y1 = 0, 0, float32(sz.X), float32(sz.Y)
		} else {
			x0, y0, x1, y1 = SourceRect(planeSize(p), sz.X, sz.Y, p.Uniforms.Hover)
		}
	} else {
		src = image.NewUniform(PlaceholderColor)
		x0, y0, x1, y1 = 0, 0, 1, 1
	}
	sw0, sh0 := x1-x0, y1-y0
	if sw0 <= 0 || sh0 <= 0 {
		return nil
	}
	ex := tr.Sub(tl).DivScalar(sw0)
	ey := bl.Sub(tl).DivScalar(sh0)
	if det := ex.X*ey.Y - ey.X*ex.Y; math32.Abs(det) < 1e-9 {
		return nil // seen edge on
	}
	s2d := f64.Aff3{
		float64(ex.X), float64(ey.X), float64(tl.X - x0*ex.X - y0*ey.X),
		float64(ex.Y), float64(ey.Y), float64(tl.Y - x0*ex.Y - y0*ey.Y),
	}
	sr := image.Rect(int(math32.Floor(x0)), int(math32.Floor(y0)), int(math32.Ceil(x1)), int(math32.Ceil(y1)))
	var opts *draw.Options
	if p.Opacity < 1 {
		a := uint16(math32.Clamp(p.Opacity, 0, 1) * 0xffff)
		opts = &draw.Options{SrcMask: image.NewUniform(color.Alpha16{A: a})}
	}
	if sw.Interpolator == nil {
		return fmt.Errorf("render: no interpolator")
	}
	sw.Interpolator.Transform(sw.img, s2d, src, sr, draw.Over, opts)
	return nil
}

// Close releases the image.
func (sw *Software) Close() {
	sw.img = nil
}
