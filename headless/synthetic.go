// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package headless

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/lucasb-eyer/go-colorful"
)

// Synthetic returns an in-memory file system with n generated images
// of the given size, each a vertical gradient between two hues,
// and their paths.
func Synthetic(n, width, height int) (hackpadfs.FS, []string, error) {
	fsys, err := mem.NewFS()
	if err != nil {
		return nil, nil, err
	}
	if err := hackpadfs.Mkdir(fsys, "img", 0o755); err != nil {
		return nil, nil, err
	}
	urls := make([]string, n)
	for i := range n {
		h := 360 * float64(i) / float64(max(n, 1))
		top := colorful.Hsv(h, 0.55, 0.95)
		bottom := colorful.Hsv(math.Mod(h+40, 360), 0.7, 0.6)
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		for y := range height {
			c := top.BlendLab(bottom, float64(y)/float64(max(height-1, 1))).Clamped()
			for x := range width {
				img.Set(x, y, c)
			}
		}
		var b bytes.Buffer
		if err := png.Encode(&b, img); err != nil {
			return nil, nil, err
		}
		urls[i] = fmt.Sprintf("img/%02d.png", i)
		if err := hackpadfs.WriteFullFile(fsys, urls[i], b.Bytes(), 0o644); err != nil {
			return nil, nil, err
		}
	}
	return fsys, urls, nil
}
