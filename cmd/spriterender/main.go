// Command spriterender renders sprites from a grid-packed sheet into a
// stylized still or animation, and saves, exports or previews the result.
//
// Usage:
//
//	spriterender -sheet chars.png -width 8 -height 8 -mode entity -index 0x2A -out walk.gif
package main

import (
	"flag"
	"fmt"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"

	"badc0de.net/pkg/go-spriterender/datafiles"
	"badc0de.net/pkg/go-spriterender/export"
	"badc0de.net/pkg/go-spriterender/modes"
)

var (
	sheetPath = flag.String("sheet", "", "path to the sprite sheet")
	paste     = flag.Bool("paste", false, "read the sprite sheet from stdin instead of -sheet")
	maskPath  = flag.String("mask", "", "path to the mask sheet; enables the texture overlay")

	modeName = flag.String("mode", "image", "render mode: image, entity, animation or overview")
	index    = flag.String("index", "0", "first cell, decimal or 0x-prefixed hex")
	length   = flag.Int("length", 0, "cells (image, animation), pose rows (entity) or pose slots (overview); 0 for the rest of the sheet")
	width    = flag.Int("width", 8, "cell width in sheet pixels")
	height   = flag.Int("height", 8, "cell height in sheet pixels")
	upscale  = flag.Int("upscale", 5, "integer scale factor")
	speed    = flag.String("speed", "500", "comma-separated frame durations in milliseconds")

	shadow           = flag.Bool("shadow", true, "draw a blurred drop shadow")
	shadowColor      = flag.String("shadow_color", "#000000", "shadow colour")
	shadowStrength   = flag.Float64("shadow_strength", 1, "shadow alpha multiplier")
	outline          = flag.Bool("outline", true, "draw an outline")
	outlineColor     = flag.String("outline_color", "#000000", "outline colour")
	outlineThickness = flag.Int("outline_thickness", 0, "outline offset in output pixels; 0 derives it from -upscale")
	bgColor          = flag.String("bg", "", "background colour; transparent if empty")

	out          = flag.String("out", "", "save the render here: png for image and overview, gif for entity and animation")
	clipboardDir = flag.String("clipboard_dir", "", "write the clipboard encodings of frame 0 (png, tiff, bmp, dib) into this directory")
	printDataURL = flag.Bool("data_url", false, "print frame 0 as a data URL")
	banner       = flag.Bool("banner", false, "print a banner with the mode name first")
	listTextures = flag.Bool("list_textures", false, "list the bundled textures and exit")
)

func main() {
	setupFilePathFlags()
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if *listTextures {
		for _, n := range datafiles.Cloths() {
			fmt.Println(n)
		}
		return
	}

	mode, err := modes.ParseMode(*modeName)
	if err != nil {
		glog.Exitf("bad -mode: %v", err)
	}
	if *banner {
		figure.NewFigure(mode.String(), "", true).Print()
	}

	p, err := params()
	if err != nil {
		glog.Exitf("%v", err)
	}
	frames, err := modes.Render(mode, p)
	if err != nil {
		glog.Exitf("%v", err)
	}
	durations, err := modes.SpeedFilter(*speed, len(frames))
	if err != nil {
		glog.Exitf("bad -speed: %v", err)
	}

	if *out != "" {
		if err := export.SaveFile(*out, mode, frames, durations, p.HasBG); err != nil {
			glog.Exitf("saving %q: %v", *out, err)
		}
	}
	if *clipboardDir != "" {
		if err := writeClipboard(*clipboardDir, frames[0]); err != nil {
			glog.Exitf("exporting to %q: %v", *clipboardDir, err)
		}
	}
	if *printDataURL {
		u, err := export.DataURL(frames[0])
		if err != nil {
			glog.Exitf("%v", err)
		}
		fmt.Println(u)
	}
	if *preview {
		if err := previewFrames(os.Stdout, frames); err != nil {
			glog.Errorf("preview: %v", err)
		}
	}
}
