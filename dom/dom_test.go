// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectors(t *testing.T) {
	assert.Equal(t, `[data-collection-wrapper="wrapper"]`, WrapperSelector)
	assert.Equal(t, `[data-src="img/a.jpg"]`, SrcSelector("img/a.jpg"))
	assert.Equal(t, `[data-src="a\"b.png"]`, SrcSelector(`a"b.png`))
	assert.Equal(t, `[data-scroll-mirror="mirror"]`, MirrorSelector)
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	assert.Equal(t, float32(10), r.Left())
	assert.Equal(t, float32(20), r.Top())
	assert.Equal(t, float32(110), r.Right())
	assert.Equal(t, float32(70), r.Bottom())
	assert.False(t, r.Empty())
	assert.True(t, Rect{Width: 10}.Empty())
	assert.True(t, Rect{Width: -1, Height: 4}.Empty())
}

func TestPixels(t *testing.T) {
	assert.Equal(t, float32(12), Pixels("12px"))
	assert.Equal(t, float32(12.5), Pixels(" 12.5px "))
	assert.Equal(t, float32(3), Pixels("3"))
	assert.Equal(t, float32(0), Pixels("auto"))
	assert.Equal(t, float32(0), Pixels(""))
	assert.Equal(t, "translateX(-12.5px)", TranslateX(-12.5))
	assert.Equal(t, "translateX(0px)", TranslateX(0))
}
