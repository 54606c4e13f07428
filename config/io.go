// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported config file formats.
type Formats int32

const (
	// TOML is the default format.
	TOML Formats = iota

	// YAML is selected by the .yaml and .yml extensions.
	YAML
)

// FormatFromPath returns the format implied by the file extension.
func FormatFromPath(path string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("config: unsupported config file extension %q", filepath.Ext(path))
}

// Open reads the config from the given file on top of the default values.
// A missing file is not an error: the defaults are returned.
func Open(path string) (*Config, error) {
	c := New()
	if path == "" {
		return c, nil
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return c, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("config: reading %q: %w", path, err)
	}
	if err := c.Read(bytes.NewReader(b), format); err != nil {
		return New(), fmt.Errorf("config: %q: %w", path, err)
	}
	return c, nil
}

// Read decodes the config from r in the given format, overwriting
// only the fields present in the input.
func (c *Config) Read(r io.Reader, format Formats) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	switch format {
	case YAML:
		return yaml.Unmarshal(b, c)
	default:
		return toml.Unmarshal(b, c)
	}
}

// Write encodes the config to w in the given format.
func (c *Config) Write(w io.Writer, format Formats) error {
	var b []byte
	var err error
	switch format {
	case YAML:
		b, err = yaml.Marshal(c)
	default:
		b, err = toml.Marshal(c)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
