// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js
// +build !js

// Command iglooview renders a fragment shader over the whole window, in the
// style of shader playgrounds. The uniforms time (seconds) and resolution
// (pixels) are set every frame when the program uses them.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"igloo.dev"
	"igloo.dev/gl"
	"igloo.dev/window"
)

var (
	vertexFlag = &cli.StringFlag{
		Name:  "vertex",
		Usage: "vertex shader path or URL",
		Value: "quad.vert",
	}
	fragmentFlag = &cli.StringFlag{
		Name:     "fragment",
		Usage:    "fragment shader path or URL",
		Required: true,
	}
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	widthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "window width",
		Value: 800,
	}
	heightFlag = &cli.IntFlag{
		Name:  "height",
		Usage: "window height",
		Value: 600,
	}
	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "log debug messages to stderr",
	}
)

var app = &cli.App{
	Name:   "iglooview",
	Usage:  "draw a fragment shader over a window",
	Flags:  []cli.Flag{vertexFlag, fragmentFlag, configFlag, widthFlag, heightFlag, debugFlag},
	Action: view,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func view(ctx *cli.Context) error {
	if ctx.Bool(debugFlag.Name) {
		igloo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	var opts []igloo.Option
	if path := ctx.String(configFlag.Name); path != "" {
		cfg, err := igloo.LoadConfig(path)
		if err != nil {
			return err
		}
		opts = append(opts, igloo.WithConfig(cfg))
	}

	win, err := window.New("iglooview", ctx.Int(widthFlag.Name), ctx.Int(heightFlag.Name))
	if err != nil {
		return err
	}
	defer win.Close()
	ig, err := igloo.NewCanvas(win, opts...)
	if err != nil {
		return fmt.Errorf("%w: %v", err, win.Err())
	}
	if ig == nil {
		// The configuration asked for a silent failure.
		return nil
	}

	prog, err := ig.Program(ctx.Context, ctx.String(vertexFlag.Name), ctx.String(fragmentFlag.Name), nil)
	if err != nil {
		return err
	}
	defer prog.Release()
	quad := ig.Array(igloo.Quad2, 0)
	defer quad.Release()

	for !win.ShouldClose() {
		w, h := win.Size()
		ig.Default().Bind()
		prog.Use()
		if err := optional(prog.Uniform("time", win.Time())); err != nil {
			return err
		}
		if err := optional(prog.Uniform("resolution", []float32{float32(w), float32(h)})); err != nil {
			return err
		}
		if err := prog.Attrib("position", quad, 2, 0).Draw(gl.TRIANGLE_STRIP, len(igloo.Quad2)/2, 0); err != nil {
			return err
		}
		win.Present()
	}
	return nil
}

// optional ignores uniforms the shader does not use.
func optional(err error) error {
	var lerr *igloo.LookupError
	if errors.As(err, &lerr) {
		return nil
	}
	return err
}
