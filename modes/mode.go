// Package modes turns a sheet and a set of style parameters into ordered
// frame lists, following one of four traversal policies:
//
//   - Image: consecutive cells stitched into one picture, wrapping at the
//     sheet's column count.
//   - Entity: 7-cell pose rows (still, walk 1, walk 2, gap, attack 1,
//     attack 2a, attack 2b) assembled into two alternating frames.
//   - Animation: consecutive cells returned as separate frames for playback.
//   - Overview: front/side/back pose slots of every 21-cell block, stitched
//     six to a row.
//
// Renders only read the sheet, so cells are rendered concurrently.
package modes

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/golang/glog"

	"badc0de.net/pkg/go-spriterender"
)

// Mode selects a render policy.
type Mode int

const (
	Image Mode = iota
	Entity
	Animation
	Overview
)

var modeNames = [...]string{
	Image:     "Image",
	Entity:    "Entity",
	Animation: "Animation",
	Overview:  "Overview",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Animated reports whether the mode's frames are meant to be played back in
// sequence (and saved as an animation) rather than shown as one picture.
func (m Mode) Animated() bool {
	return m == Entity || m == Animation
}

// ParseMode accepts a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Mode(m), nil
		}
	}
	return 0, spriterender.Parsef("unknown mode %q", s)
}

// Render runs the passed mode over the sheet in p and returns its frames.
// Image and Overview return a single frame; Entity returns two; Animation
// returns one frame per rendered cell.
//
// Errors are *RenderError values naming the mode and the offending
// parameter; they unwrap to one of the spriterender error classes.
func Render(mode Mode, p Params) ([]*image.RGBA, error) {
	if param, err := p.validate(); err != nil {
		return nil, &RenderError{Mode: mode, Param: param, Err: err}
	}

	start := time.Now()
	var (
		frames []*image.RGBA
		err    error
	)
	switch mode {
	case Image:
		frames, err = renderImage(p)
	case Entity:
		frames, err = renderEntity(p)
	case Animation:
		frames, err = renderAnimation(p)
	case Overview:
		frames, err = renderOverview(p)
	default:
		return nil, &RenderError{Mode: mode, Param: "mode", Err: spriterender.Parsef("unknown mode %d", int(mode))}
	}
	if err != nil {
		if _, ok := err.(*RenderError); !ok {
			err = &RenderError{Mode: mode, Param: "render", Err: err}
		}
		glog.Errorf("%v", err)
		return nil, err
	}
	glog.Infof("%v render: %d frame(s) of %v in %v", mode, len(frames), frames[0].Bounds().Size(), time.Since(start))
	return frames, nil
}

// RenderError describes a failed render call.
type RenderError struct {
	Mode  Mode
	Param string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%v render failed on %s: %v", e.Mode, e.Param, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Cause lets github.com/pkg/errors.Cause see through the render error.
func (e *RenderError) Cause() error {
	return e.Err
}
