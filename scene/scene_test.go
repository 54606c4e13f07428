// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image/color"
	"testing"
	"time"

	"github.com/planesgl/planes/clock"
	"github.com/planesgl/planes/dom"
	"github.com/planesgl/planes/dom/domtest"
	"github.com/planesgl/planes/input"
	"github.com/planesgl/planes/math32"
	"github.com/planesgl/planes/tween"
	"github.com/planesgl/planes/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runner advances a tween group and an update function by
// whole ideal frames, the way the app frame loop does.
type runner struct {
	tweens *tween.Group
	now    time.Duration
}

func newRunner() *runner {
	return &runner{tweens: &tween.Group{}}
}

func (r *runner) run(frames int, update func(tick clock.Tick)) {
	for range frames {
		r.now += clock.IdealFrameInterval
		r.tweens.Update(r.now)
		update(clock.Tick{Delta: clock.IdealFrameInterval, SlowDownFactor: 1, Time: r.now})
	}
}

func urls(n int) []string {
	us := make([]string, n)
	for i := range us {
		us[i] = fmt.Sprintf("img/%d.jpg", i)
	}
	return us
}

func textures(us []string) map[string]*xyz.Texture {
	txs := map[string]*xyz.Texture{}
	for _, u := range us {
		txs[u] = xyz.NewPlaceholder(u, color.Gray{Y: 200})
	}
	return txs
}

var viewport = Bounds{Width: 1280, Height: 800}

func TestParseKind(t *testing.T) {
	for _, k := range []Kinds{KindItem, KindSlide, KindGallery} {
		pk, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, pk)
	}
	_, err := ParseKind("carousel")
	assert.Error(t, err)

	assert.IsType(t, &SlideScene{}, New(KindSlide, Deps{}))
	assert.IsType(t, &GalleryScene{}, New(KindGallery, Deps{}))
	assert.IsType(t, &ItemScene{}, New(KindItem, Deps{}))
}

func TestItemScene(t *testing.T) {
	us := urls(3)
	page := domtest.NewPage(domtest.PageOptions{URLs: us, Gap: 20})
	r := newRunner()
	sc := NewItemScene(Deps{Document: page.Document, Tweens: r.tweens})

	// an item without element still gets a plane, which stays unplaced
	sc.SetItems(Items(append(us, "img/missing.jpg")...))
	sc.SetRendererBounds(viewport)
	require.Len(t, sc.Root.Planes(), 4)
	r.run(1, sc.Update)

	p0 := sc.Cards.Items[0].Plane
	assert.Equal(t, math32.Vec3(300, 400, 1), p0.Scale)
	assert.Equal(t, float32(-640+150), p0.Pos.X)
	assert.Equal(t, float32(400-200), p0.Pos.Y)
	p1 := sc.Cards.Items[1].Plane
	assert.Equal(t, float32(-640+320+150), p1.Pos.X)
	assert.Equal(t, math32.Vec3(1, 1, 1), sc.Cards.Items[3].Plane.Scale)

	assert.Equal(t, float32(300), sc.Cards.ImageWrapperWidth)
	assert.Equal(t, float32(20), sc.Cards.ImageWrapperMarginRight)

	// cards fade in once the textures arrive
	assert.Zero(t, p0.Opacity)
	sc.SetTextures(textures(us))
	assert.NotNil(t, p0.Texture)
	r.run(120, sc.Update)
	for _, ci := range sc.Cards.Items {
		assert.Equal(t, float32(1), ci.Plane.Opacity)
	}

	sc.Destroy()
	sc.Destroy()
	assert.True(t, sc.IsDestroyed())
	assert.Empty(t, sc.Root.Planes())
	assert.Zero(t, r.tweens.Len())
}

func TestItemSceneResetItems(t *testing.T) {
	us := urls(4)
	page := domtest.NewPage(domtest.PageOptions{URLs: us})
	sc := NewItemScene(Deps{Document: page.Document})
	sc.SetRendererBounds(viewport)
	sc.SetItems(Items(us...))
	require.Len(t, sc.Root.Planes(), 4)

	// items set after the bounds are placed right away
	assert.Equal(t, math32.Vec3(300, 400, 1), sc.Cards.Items[0].Plane.Scale)

	sc.SetItems(Items(us[:2]...))
	assert.Len(t, sc.Root.Planes(), 2)
	assert.Equal(t, 2, sc.Cards.Len())
	ci, ok := sc.Cards.ByKey(1)
	require.True(t, ok)
	assert.Equal(t, us[1], ci.Item.Src)
	_, ok = sc.Cards.ByKey(3)
	assert.False(t, ok)
}

func TestSlideScene(t *testing.T) {
	us := urls(5)
	page := domtest.NewPage(domtest.PageOptions{URLs: us, Gap: 20})
	r := newRunner()
	scroll := input.NewScroll()
	sc := NewSlideScene(Deps{Document: page.Document, Scroll: scroll, Tweens: r.tweens})
	sc.SetItems(Items(us...))
	sc.SetRendererBounds(viewport)

	// wrapper is 5 * (300 + 20) wide
	assert.Equal(t, float32(1600-300-10), sc.Nav.Boundary())
	assert.Equal(t, 5, sc.Nav.Count())
	r.run(60, sc.Update)
	assert.Equal(t, 0, sc.Nav.ActiveIndex())

	// index clicks are ignored until the textures are set
	sc.handleIndexClick(3)
	assert.NotEqual(t, AutoScrolling, sc.Nav.State())

	sc.SetTextures(textures(us))
	assert.True(t, sc.IsReady())
	sc.handleIndexClick(3)
	assert.Equal(t, AutoScrolling, sc.Nav.State())
	r.run(300, sc.Update)
	assert.Equal(t, 3, sc.Nav.ActiveIndex())
	assert.Equal(t, OffsetOf(3, sc.Nav.Boundary(), 5), sc.Nav.Depth().Target)
	assert.Equal(t, Settled, sc.Nav.State())

	// resizing returns to the same card
	sc.SetRendererBounds(viewport)
	assert.Zero(t, sc.Nav.Depth().Current)
	r.run(300, sc.Update)
	assert.Equal(t, 3, sc.Nav.ActiveIndex())
	assert.Equal(t, OffsetOf(3, sc.Nav.Boundary(), 5), sc.Nav.Depth().Target)

	sc.Destroy()
	sc.Destroy()
	before := sc.Nav.Depth().Target
	scroll.OnWheel(0, 1000, input.WheelPixel)
	assert.Equal(t, before, sc.Nav.Depth().Target)
}

func TestSlideSceneInput(t *testing.T) {
	us := urls(5)
	page := domtest.NewPage(domtest.PageOptions{URLs: us, Gap: 20})
	scroll := input.NewScroll()
	sc := NewSlideScene(Deps{Document: page.Document, Scroll: scroll, Tweens: &tween.Group{}})
	sc.SetItems(Items(us...))

	scroll.OnWheel(0, 1000, input.WheelPixel)
	assert.InDelta(t, -1, sc.Nav.Depth().Target, 1e-6)

	scroll.OnMouseDown(100, 100)
	scroll.OnMouseMove(90, 105)
	assert.Equal(t, math32.Vec2(20, 10), sc.Nav.Scroll().Target())

	scroll.OnTouchStart(0, 0)
	scroll.OnTouchMove(5, 0)
	assert.Equal(t, math32.Vec2(10, 10), sc.Nav.Scroll().Target())
}

// placement records the position, scale and rotation of every plane.
func placement(ps []*xyz.Plane) []math32.Vector3 {
	var vs []math32.Vector3
	for _, p := range ps {
		vs = append(vs, p.Pos, p.Scale, p.Rotation)
	}
	return vs
}

func TestSlideSceneResize(t *testing.T) {
	us := urls(5)
	page := domtest.NewPage(domtest.PageOptions{URLs: us, Gap: 20})
	r := newRunner()
	scroll := input.NewScroll()
	sc := NewSlideScene(Deps{Document: page.Document, Scroll: scroll, Tweens: r.tweens})
	sc.SetItems(Items(us...))
	sc.SetRendererBounds(viewport)
	sc.SetTextures(textures(us))

	scroll.OnMouseDown(500, 100)
	scroll.OnMouseMove(300, 100)
	scroll.OnMouseUp()
	r.run(120, sc.Update)
	p0 := sc.Cards.Items[0].Plane
	require.NotEqual(t, float32(-490), p0.Pos.X)

	// cards are placed at the reset scroll, and again is the same
	sc.SetRendererBounds(viewport)
	assert.Equal(t, float32(-490), p0.Pos.X)
	once := placement(sc.Root.Planes())
	sc.SetRendererBounds(viewport)
	assert.Equal(t, once, placement(sc.Root.Planes()))
	assert.Zero(t, sc.Nav.Scroll().Current())
}

func TestGallerySceneResize(t *testing.T) {
	us := urls(8)
	page := domtest.NewPage(domtest.PageOptions{URLs: us, Layout: domtest.Grid, Gap: 20, Mirrors: 2})
	r := newRunner()
	sc := NewGalleryScene(Deps{Document: page.Document, Scroll: input.NewScroll(), Tweens: r.tweens})
	sc.SetItems(Items(us...))
	sc.SetRendererBounds(viewport)
	fresh := placement(sc.Root.Planes())

	sc.Nav.AddScroll(2000, 0)
	r.run(400, sc.Update)
	require.NotEqual(t, fresh, placement(sc.Root.Planes()))

	sc.SetRendererBounds(viewport)
	once := placement(sc.Root.Planes())
	assert.Equal(t, fresh, once)
	sc.SetRendererBounds(viewport)
	assert.Equal(t, once, placement(sc.Root.Planes()))
	for _, gi := range sc.Items.Items {
		assert.Zero(t, gi.Extra)
	}
}

func TestSlideSceneGroups(t *testing.T) {
	sc := NewSlideScene(Deps{})
	gs := []*xyz.Group{xyz.NewGroup("a"), xyz.NewGroup("b"), xyz.NewGroup("c"), xyz.NewGroup("d")}
	for _, g := range gs {
		sc.AddGroup(g)
	}
	sc.Nav.depth.Current = 0.5
	sc.positionGroups()
	assert.Equal(t, math32.Vector3Scalar(0.5), gs[0].Scale)
	assert.Equal(t, math32.Vector3Scalar(0.5), gs[1].Scale)
	assert.Equal(t, math32.Vector3Scalar(1.5), gs[2].Scale)
	assert.Equal(t, math32.Vector3Scalar(2.5), gs[3].Scale)
}

func TestGalleryScene(t *testing.T) {
	us := urls(8)
	page := domtest.NewPage(domtest.PageOptions{URLs: us, Layout: domtest.Grid, Gap: 20, Mirrors: 2})
	r := newRunner()
	scroll := input.NewScroll()
	sc := NewGalleryScene(Deps{Document: page.Document, Scroll: scroll, Tweens: r.tweens})
	sc.SetItems(Items(us...))
	sc.SetRendererBounds(viewport)
	require.Len(t, sc.Mirrors, 2)
	require.Len(t, sc.Root.Planes(), 8)

	// orbit: planes on the left recede and turn right, and vice versa
	left, right := sc.Items.Items[0].Plane, sc.Items.Items[3].Plane
	assert.Equal(t, float32(-490), left.Pos.X)
	assert.Less(t, left.Pos.Z, float32(0))
	assert.Greater(t, left.Rotation.Y, float32(0))
	assert.Greater(t, right.Pos.X, float32(0))
	assert.Less(t, right.Rotation.Y, float32(0))

	scroll.OnWheel(0, 100, input.WheelPixel)
	assert.Equal(t, float32(-100), sc.Nav.Scroll().Target().Y)

	// no index snapping in a gallery
	assert.Zero(t, r.tweens.Len())

	sc.Nav.AddScroll(2000, 0)
	r.run(400, sc.Update)
	assert.InDelta(t, 2000, sc.Nav.Scroll().Current().X, 0.01)

	wrapped := 0
	for _, gi := range sc.Items.Items {
		assert.Zero(t, math32.Mod(gi.Extra.X, 1280), "extra %v", gi.Extra)
		if gi.Extra.X != 0 {
			wrapped++
		}
		assert.GreaterOrEqual(t, gi.Plane.Pos.X+150, float32(-640), gi.Plane.String())
	}
	assert.NotZero(t, wrapped)

	m := sc.Mirrors[0]
	assert.Equal(t, dom.TranslateX(m.Translate()), page.Mirrors[0].Style("transform"))

	sc.Destroy()
	assert.Empty(t, sc.Root.Planes())
}
