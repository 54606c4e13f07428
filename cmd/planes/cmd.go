// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/hack-pad/hackpadfs"
	hpos "github.com/hack-pad/hackpadfs/os"
	"github.com/planesgl/planes/base/logx"
	"github.com/planesgl/planes/config"
	"github.com/planesgl/planes/headless"
	"github.com/planesgl/planes/scene"
	"github.com/planesgl/planes/web"
	"github.com/spf13/cobra"
)

// verbosity holds the persistent log level flags.
type verbosity struct {
	vv, v, q bool
}

func (vb *verbosity) apply(cfg *config.Config) {
	lv := logx.LevelFromFlags(vb.vv, vb.v, vb.q)
	if !vb.vv && !vb.v && !vb.q && cfg != nil && cfg.LogLevel != "" {
		if l, err := logx.LevelFromString(cfg.LogLevel); err == nil {
			lv = l
		}
	}
	logx.UserLevel = lv
	logx.SetDefaultLogger()
}

func newRootCmd() *cobra.Command {
	vb := &verbosity{}
	root := &cobra.Command{
		Use:           "planes",
		Short:         "Media planes scenes kept in sync with the page",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			vb.apply(nil)
		},
	}
	root.PersistentFlags().BoolVar(&vb.vv, "vv", false, "log debug messages")
	root.PersistentFlags().BoolVarP(&vb.v, "verbose", "v", false, "log info messages")
	root.PersistentFlags().BoolVarP(&vb.q, "quiet", "q", false, "only log errors")
	root.AddCommand(newServeCmd(), newSnapshotCmd(vb), newConfigCmd())
	return root
}

func newServeCmd() *cobra.Command {
	opts := web.ServeOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a built site, optionally reloading pages on changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return web.Serve(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Dir, "dir", ".", "directory to serve")
	cmd.Flags().StringVar(&opts.Addr, "addr", ":8080", "address to listen on")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "reload pages when files change")
	return cmd
}

type snapshotFlags struct {
	config string
	kind   string
	items  string
	count  int
	out    string
	frames int
	every  int
	width  int
	height int
	wheel  float32
}

func newSnapshotCmd(vb *verbosity) *cobra.Command {
	f := &snapshotFlags{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Run a scene headless and write frames as PNG images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, f, vb)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "config file (.toml, .yaml)")
	fl.StringVar(&f.kind, "scene", "slide", "scene kind: "+kindNames())
	fl.StringVar(&f.items, "items", "", "directory of images; generated images are used if empty")
	fl.IntVar(&f.count, "count", 8, "number of generated images")
	fl.StringVar(&f.out, "out", "snapshots", "output directory")
	fl.IntVar(&f.frames, "frames", 120, "number of frames to run")
	fl.IntVar(&f.every, "every", 0, "write every N frames; 0 writes the last frame only")
	fl.IntVar(&f.width, "width", 1280, "viewport width")
	fl.IntVar(&f.height, "height", 800, "viewport height")
	fl.Float32Var(&f.wheel, "wheel", 40, "wheel delta per frame in the first half of the run")
	return cmd
}

func kindNames() string {
	names := make([]string, 0, 3)
	for _, k := range []scene.Kinds{scene.KindItem, scene.KindSlide, scene.KindGallery} {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func runSnapshot(cmd *cobra.Command, f *snapshotFlags, vb *verbosity) error {
	cfg, err := config.Open(f.config)
	if err != nil {
		return err
	}
	vb.apply(cfg)
	kind, err := scene.ParseKind(f.kind)
	if err != nil {
		return err
	}
	fsys, urls, err := images(f)
	if err != nil {
		return err
	}
	n, err := headless.Run(cmd.Context(), headless.Options{
		Config: cfg, Kind: kind,
		Width: f.width, Height: f.height,
		FS: fsys, URLs: urls,
		Frames: f.frames, Every: f.every, Wheel: f.wheel,
		Write: headless.DirWriter(f.out),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ran %d frames of %d images, wrote to %s\n", n, len(urls), f.out)
	return nil
}

// images returns the file system and paths of the images to show.
func images(f *snapshotFlags) (hackpadfs.FS, []string, error) {
	if f.items == "" {
		slog.Info("planes: using generated images", "count", f.count)
		return headless.Synthetic(f.count, 600, 800)
	}
	abs, err := filepath.Abs(f.items)
	if err != nil {
		return nil, nil, err
	}
	fsys, err := hpos.NewFS().Sub(strings.TrimPrefix(filepath.ToSlash(abs), "/"))
	if err != nil {
		return nil, nil, err
	}
	urls, err := headless.ListImages(fsys, ".")
	if err != nil {
		return nil, nil, err
	}
	if len(urls) == 0 {
		return nil, nil, fmt.Errorf("planes: no images in %q", f.items)
	}
	return fsys, urls, nil
}

func newConfigCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ft, err := config.FormatFromPath("config." + format)
			if err != nil {
				return err
			}
			return config.New().Write(cmd.OutOrStdout(), ft)
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "output format: toml, yaml")
	return cmd
}
