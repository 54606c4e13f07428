// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tween

import "github.com/planesgl/planes/math32"

// EasingFunc maps linear progress k in [0, 1] to eased progress.
// Every easing function returns 0 for k = 0 and 1 for k = 1.
type EasingFunc func(k float32) float32

// Linear is no easing.
func Linear(k float32) float32 {
	return k
}

func QuadraticIn(k float32) float32 {
	return k * k
}

func QuadraticOut(k float32) float32 {
	return k * (2 - k)
}

func QuadraticInOut(k float32) float32 {
	k *= 2
	if k < 1 {
		return 0.5 * k * k
	}
	k--
	return -0.5 * (k*(k-2) - 1)
}

func CubicOut(k float32) float32 {
	k--
	return k*k*k + 1
}

func CubicInOut(k float32) float32 {
	k *= 2
	if k < 1 {
		return 0.5 * k * k * k
	}
	k -= 2
	return 0.5 * (k*k*k + 2)
}

func SinusoidalIn(k float32) float32 {
	return 1 - math32.Sin((1-k)*math32.Pi/2)
}

func SinusoidalOut(k float32) float32 {
	return math32.Sin(k * math32.Pi / 2)
}

// SinusoidalInOut is the default easing of index animations.
func SinusoidalInOut(k float32) float32 {
	return 0.5 * (1 - math32.Cos(math32.Pi*k))
}

func ExponentialOut(k float32) float32 {
	if k >= 1 {
		return 1
	}
	return 1 - math32.Pow(2, -10*k)
}
