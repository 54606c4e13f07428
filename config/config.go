// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs
// shared by the frame loop, scenes, input services and preloader.
package config

import (
	"time"

	"github.com/jinzhu/copier"
)

// Config is the main config struct that contains all of the
// tunable values of a planes app. The zero value is not useful;
// use [New] or call [Config.Defaults].
type Config struct {

	// LogLevel is the minimum level to log (debug, info, warn, error);
	// empty uses the build default.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// Frame configures the frame loop.
	Frame Frame `toml:"frame" yaml:"frame"`

	// Camera configures the pixel-exact perspective camera.
	Camera Camera `toml:"camera" yaml:"camera"`

	// Navigation configures scroll and index navigation easing.
	Navigation Navigation `toml:"navigation" yaml:"navigation"`

	// Gallery configures the orbit gallery scene.
	Gallery Gallery `toml:"gallery" yaml:"gallery"`

	// Pointer configures pointer smoothing and hover.
	Pointer Pointer `toml:"pointer" yaml:"pointer"`

	// Preload configures texture loading.
	Preload Preload `toml:"preload" yaml:"preload"`
}

// Frame configures the frame loop.
type Frame struct {

	// FPS is the ideal frame rate against which the slow-down factor is computed.
	FPS int `toml:"fps" yaml:"fps"`
}

// Camera configures the camera.
type Camera struct {

	// Distance is the camera z position at which one unit equals one pixel.
	Distance float32 `toml:"distance" yaml:"distance"`

	// Near and Far are the clip planes.
	Near float32 `toml:"near" yaml:"near"`
	Far  float32 `toml:"far" yaml:"far"`

	// MaxPixelRatio caps the device pixel ratio used for the render surface.
	MaxPixelRatio float32 `toml:"max_pixel_ratio" yaml:"max_pixel_ratio"`
}

// Navigation configures scroll and index navigation.
type Navigation struct {

	// Ease is the per-frame lerp factor at 60fps.
	Ease float32 `toml:"ease" yaml:"ease"`

	// WheelMultiplier scales wheel deltas into depth index units.
	WheelMultiplier float32 `toml:"wheel_multiplier" yaml:"wheel_multiplier"`

	// MouseMultiplier scales mouse drag deltas into scroll pixels.
	MouseMultiplier float32 `toml:"mouse_multiplier" yaml:"mouse_multiplier"`

	// TouchMultiplier scales touch drag deltas into scroll pixels.
	TouchMultiplier float32 `toml:"touch_multiplier" yaml:"touch_multiplier"`

	// TimeToSnap is the idle time after raw input before snapping to the nearest index.
	TimeToSnap Duration `toml:"time_to_snap" yaml:"time_to_snap"`

	// SnapDuration is the default duration of an index animation.
	SnapDuration Duration `toml:"snap_duration" yaml:"snap_duration"`

	// ClampDepth clamps the wheel driven depth target to the scroll boundary.
	ClampDepth bool `toml:"clamp_depth" yaml:"clamp_depth"`

	// SettleEpsilon is the distance below which current is considered to have reached target.
	SettleEpsilon float32 `toml:"settle_epsilon" yaml:"settle_epsilon"`
}

// Gallery configures the orbit gallery scene.
type Gallery struct {

	// WheelMultiplier scales wheel deltas into scroll pixels.
	WheelMultiplier float32 `toml:"wheel_multiplier" yaml:"wheel_multiplier"`

	// OrbitDepth is how far planes at the horizontal edges recede, in pixels.
	OrbitDepth float32 `toml:"orbit_depth" yaml:"orbit_depth"`

	// OrbitAngle is the Y rotation, in radians, of planes at the horizontal edges.
	OrbitAngle float32 `toml:"orbit_angle" yaml:"orbit_angle"`

	// TextFactor scales scroll into the translation of mirrored DOM text.
	TextFactor float32 `toml:"text_factor" yaml:"text_factor"`
}

// Pointer configures pointer smoothing and hover.
type Pointer struct {

	// Ease is the per-frame lerp factor of the smoothed pointer position.
	Ease float32 `toml:"ease" yaml:"ease"`

	// IntersectEase is the per-frame lerp factor of the intersection point.
	IntersectEase float32 `toml:"intersect_ease" yaml:"intersect_ease"`

	// ClickThreshold is the maximum pointer travel, in pixels, for a press to count as a click.
	ClickThreshold float32 `toml:"click_threshold" yaml:"click_threshold"`

	// HoverScale is the scale multiplier of a hovered plane.
	HoverScale float32 `toml:"hover_scale" yaml:"hover_scale"`

	// HoverFrequency and HoverDamping configure the hover spring.
	HoverFrequency float64 `toml:"hover_frequency" yaml:"hover_frequency"`
	HoverDamping   float64 `toml:"hover_damping" yaml:"hover_damping"`
}

// Preload configures texture loading.
type Preload struct {

	// Concurrency is the maximum number of images fetched at once.
	Concurrency int `toml:"concurrency" yaml:"concurrency"`

	// MaxTextureSize is the largest texture edge; larger images are downscaled.
	MaxTextureSize int `toml:"max_texture_size" yaml:"max_texture_size"`

	// Placeholder is the hex colour of textures that failed to load.
	Placeholder string `toml:"placeholder" yaml:"placeholder"`

	// Timeout bounds each image request.
	Timeout Duration `toml:"timeout" yaml:"timeout"`
}

// New returns a new [Config] with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Defaults sets all fields to their default values.
func (c *Config) Defaults() {
	c.Frame.Defaults()
	c.Camera.Defaults()
	c.Navigation.Defaults()
	c.Gallery.Defaults()
	c.Pointer.Defaults()
	c.Preload.Defaults()
}

func (f *Frame) Defaults() {
	f.FPS = 60
}

// FrameInterval returns the ideal duration of one frame.
func (f *Frame) FrameInterval() time.Duration {
	if f.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(f.FPS)
}

func (c *Camera) Defaults() {
	c.Distance = 50
	c.Near = 0.1
	c.Far = 1000
	c.MaxPixelRatio = 2
}

func (n *Navigation) Defaults() {
	n.Ease = 0.07
	n.WheelMultiplier = 0.001
	n.MouseMultiplier = 2
	n.TouchMultiplier = 2
	n.TimeToSnap = Duration(500 * time.Millisecond)
	n.SnapDuration = Duration(400 * time.Millisecond)
	n.SettleEpsilon = 0.001
}

func (g *Gallery) Defaults() {
	g.WheelMultiplier = 1
	g.OrbitDepth = 120
	g.OrbitAngle = 0.35
	g.TextFactor = 1.2
}

func (p *Pointer) Defaults() {
	p.Ease = 0.08
	p.IntersectEase = 0.1
	p.ClickThreshold = 5
	p.HoverScale = 1.06
	p.HoverFrequency = 6
	p.HoverDamping = 0.8
}

func (p *Preload) Defaults() {
	p.Concurrency = 6
	p.MaxTextureSize = 2048
	p.Placeholder = "#d9d9d9"
	p.Timeout = Duration(30 * time.Second)
}

// Clone returns a deep copy of the config, so that a scene
// can adjust its own copy without affecting others.
func (c *Config) Clone() *Config {
	nc := &Config{}
	if err := copier.CopyWithOption(nc, c, copier.Option{DeepCopy: true}); err != nil {
		*nc = *c
	}
	return nc
}
