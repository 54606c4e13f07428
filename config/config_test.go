// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, 60, c.Frame.FPS)
	assert.Equal(t, float32(50), c.Camera.Distance)
	assert.Equal(t, float32(0.07), c.Navigation.Ease)
	assert.Equal(t, float32(0.001), c.Navigation.WheelMultiplier)
	assert.Equal(t, 500*time.Millisecond, c.Navigation.TimeToSnap.Std())
	assert.Equal(t, time.Second/60, c.Frame.FrameInterval())
}

func TestOpenMissing(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, New(), c)
}

func TestOpenTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planes.toml")
	src := `
log_level = "debug"

[navigation]
ease = 0.1
time_to_snap = "250ms"
clamp_depth = true
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	c, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, float32(0.1), c.Navigation.Ease)
	assert.Equal(t, 250*time.Millisecond, c.Navigation.TimeToSnap.Std())
	assert.True(t, c.Navigation.ClampDepth)
	// untouched fields keep their defaults
	assert.Equal(t, float32(2), c.Navigation.MouseMultiplier)
}

func TestOpenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planes.yaml")
	src := "gallery:\n  orbit_depth: 80\npreload:\n  timeout: 5s\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	c, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, float32(80), c.Gallery.OrbitDepth)
	assert.Equal(t, 5*time.Second, c.Preload.Timeout.Std())
}

func TestOpenBadExtension(t *testing.T) {
	_, err := Open("planes.json")
	assert.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Write(&buf, TOML))
	assert.True(t, strings.Contains(buf.String(), `time_to_snap = '500ms'`) ||
		strings.Contains(buf.String(), `time_to_snap = "500ms"`))

	c := &Config{}
	require.NoError(t, c.Read(&buf, TOML))
	assert.Equal(t, New(), c)
}

func TestClone(t *testing.T) {
	c := New()
	nc := c.Clone()
	nc.Navigation.Ease = 0.5
	assert.Equal(t, float32(0.07), c.Navigation.Ease)
	assert.Equal(t, c.Preload, nc.Preload)
}
