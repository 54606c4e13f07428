// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package headless

import (
	"context"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/hack-pad/hackpadfs"
	"github.com/planesgl/planes/render"
	"github.com/planesgl/planes/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawn(img *image.RGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 3 {
		for x := b.Min.X; x < b.Max.X; x += 3 {
			if img.RGBAAt(x, y) != render.DefaultBackground {
				return true
			}
		}
	}
	return false
}

func TestSynthetic(t *testing.T) {
	fsys, urls, err := Synthetic(3, 8, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"img/00.png", "img/01.png", "img/02.png"}, urls)
	require.NoError(t, hackpadfs.WriteFullFile(fsys, "img/notes.txt", []byte("x"), 0o644))

	list, err := ListImages(fsys, "img")
	require.NoError(t, err)
	assert.Equal(t, urls, list)
}

func TestRun(t *testing.T) {
	fsys, urls, err := Synthetic(6, 40, 30)
	require.NoError(t, err)
	for _, kind := range []scene.Kinds{scene.KindItem, scene.KindSlide, scene.KindGallery} {
		t.Run(kind.String(), func(t *testing.T) {
			var frames []int
			n, err := Run(context.Background(), Options{
				Kind: kind, Width: 320, Height: 200, FS: fsys, URLs: urls,
				Frames: 90, Every: 30, Wheel: 20,
				Write: func(frame int, img *image.RGBA) error {
					frames = append(frames, frame)
					assert.Equal(t, image.Pt(320, 200), img.Bounds().Size())
					if frame == 90 {
						assert.True(t, drawn(img))
					}
					return nil
				},
			})
			require.NoError(t, err)
			assert.Equal(t, 90, n)
			assert.Equal(t, []int{30, 60, 90}, frames)
		})
	}
}

func TestRunErrors(t *testing.T) {
	_, err := Run(context.Background(), Options{})
	assert.Error(t, err)

	fsys, urls, err := Synthetic(2, 4, 4)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err := Run(ctx, Options{FS: fsys, URLs: urls, Frames: 10})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, n)
}

func TestDirWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, DirWriter(dir)(7, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	_, err := os.Stat(filepath.Join(dir, "frame-0007.png"))
	assert.NoError(t, err)
}
