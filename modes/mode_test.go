package modes

import (
	"image"
	"image/color"
	"testing"

	"github.com/pkg/errors"

	"badc0de.net/pkg/go-spriterender"
	"badc0de.net/pkg/go-spriterender/compositor"
	"badc0de.net/pkg/go-spriterender/sheet"
	"badc0de.net/pkg/go-spriterender/ttesting"
)

// shade returns a distinct opaque colour per cell index.
func shade(i int) color.RGBA {
	return color.RGBA{uint8(10 + 4*i), uint8(200 - 3*i), 0x40, 0xFF}
}

func shadedSheet(t *testing.T, cols, rows, w, h int) *sheet.Sheet {
	t.Helper()
	colors := make([]color.RGBA, cols*rows)
	for i := range colors {
		colors[i] = shade(i)
	}
	s, err := sheet.New(ttesting.Grid(cols, rows, w, h, colors...), nil)
	if err != nil {
		t.Fatalf("failed to create sheet: %v", err)
	}
	return s
}

func params(s *sheet.Sheet, w, h, upscale int) Params {
	return Params{Sheet: s, Width: w, Height: h, Upscale: upscale}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Image, Entity, Animation, Overview} {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseMode(%q) = %v; want %v", m.String(), got, m)
		}
	}
	if m, err := ParseMode("entity"); err != nil || m != Entity {
		t.Errorf("ParseMode(entity) = %v, %v; want Entity", m, err)
	}
	if _, err := ParseMode("movie"); !errors.Is(err, spriterender.ErrParse) {
		t.Errorf("ParseMode(movie): got %v; want parse error", err)
	}
	if !Entity.Animated() || !Animation.Animated() || Image.Animated() || Overview.Animated() {
		t.Errorf("Animated() reports the wrong modes")
	}
}

func TestImageMode(t *testing.T) {
	p := params(shadedSheet(t, 2, 2, 8, 8), 8, 8, 2)
	p.Index = "0"
	p.Length = 2

	frames, err := Render(Image, p)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	ttesting.AssertEqualInt(t, "frame count", len(frames), 1)
	ttesting.AssertEqualPoint(t, "frame size", frames[0].Bounds().Size(), image.Pt(40, 20))
	ttesting.AssertEqualRGBA(t, "cell 0", frames[0].RGBAAt(5, 5), shade(0))
	ttesting.AssertEqualRGBA(t, "cell 1", frames[0].RGBAAt(25, 5), shade(1))
}

func TestImageModeWrapsAtSheetColumns(t *testing.T) {
	p := params(shadedSheet(t, 2, 2, 4, 4), 4, 4, 1)
	p.Index = "1"

	frames, err := Render(Image, p)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	// Three cells at 2 columns: two rows of 6x6 tiles.
	ttesting.AssertEqualPoint(t, "frame size", frames[0].Bounds().Size(), image.Pt(12, 12))
	ttesting.AssertEqualRGBA(t, "first", frames[0].RGBAAt(2, 2), shade(1))
	ttesting.AssertEqualRGBA(t, "second", frames[0].RGBAAt(8, 2), shade(2))
	ttesting.AssertEqualRGBA(t, "third", frames[0].RGBAAt(2, 8), shade(3))
	ttesting.AssertEqualInt(t, "empty slot", ttesting.Opaque(frames[0], image.Rect(6, 6, 12, 12)), 0)
}

func TestImageModeBackground(t *testing.T) {
	p := params(shadedSheet(t, 1, 1, 4, 4), 4, 4, 1)
	p.HasBG = true
	p.BGColor = ttesting.Blue

	frames, err := Render(Image, p)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	ttesting.AssertEqualRGBA(t, "border", frames[0].RGBAAt(0, 0), ttesting.Blue)
	ttesting.AssertEqualRGBA(t, "sprite", frames[0].RGBAAt(2, 2), shade(0))
}

func TestAnimationMode(t *testing.T) {
	p := params(shadedSheet(t, 2, 2, 4, 4), 4, 4, 1)
	p.Index = "1"

	frames, err := Render(Animation, p)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	ttesting.AssertEqualInt(t, "frame count", len(frames), 3)
	for i, f := range frames {
		ttesting.AssertEqualPoint(t, "frame size", f.Bounds().Size(), image.Pt(6, 6))
		ttesting.AssertEqualRGBA(t, "frame colour", f.RGBAAt(2, 2), shade(1+i))
	}
}

func TestEntityMode(t *testing.T) {
	// One pose row of 4x4 cells: still, walk1, walk2, gap, attack1,
	// attack2a, attack2b.
	colors := []color.RGBA{shade(0), shade(1), shade(2), {}, shade(4), shade(5), shade(6)}
	s, err := sheet.New(ttesting.Grid(7, 1, 4, 4, colors...), nil)
	if err != nil {
		t.Fatalf("failed to create sheet: %v", err)
	}

	frames, err := Render(Entity, params(s, 4, 4, 1))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	ttesting.AssertEqualInt(t, "frame count", len(frames), 2)
	f0, f1 := frames[0], frames[1]
	ttesting.AssertEqualPoint(t, "frame 0 size", f0.Bounds().Size(), image.Pt(24, 6))
	ttesting.AssertEqualPoint(t, "frame 1 size", f1.Bounds().Size(), image.Pt(24, 6))

	ttesting.AssertEqualRGBA(t, "frame 0 still", f0.RGBAAt(2, 2), shade(0))
	ttesting.AssertEqualRGBA(t, "frame 0 walk", f0.RGBAAt(8, 2), shade(1))
	ttesting.AssertEqualRGBA(t, "frame 0 attack", f0.RGBAAt(14, 2), shade(4))
	ttesting.AssertEqualInt(t, "frame 0 spare column", ttesting.Opaque(f0, image.Rect(18, 0, 24, 6)), 0)

	ttesting.AssertEqualRGBA(t, "frame 1 still", f1.RGBAAt(2, 2), shade(0))
	ttesting.AssertEqualRGBA(t, "frame 1 walk", f1.RGBAAt(8, 2), shade(2))
	ttesting.AssertEqualRGBA(t, "frame 1 attack 2a", f1.RGBAAt(14, 2), shade(5))
	ttesting.AssertEqualRGBA(t, "frame 1 attack 2b", f1.RGBAAt(18, 2), shade(6))
}

func TestEntityModeRepeatsMissingWalk(t *testing.T) {
	colors := []color.RGBA{shade(0), shade(1), {}, {}, shade(4), shade(5), shade(6)}
	s, err := sheet.New(ttesting.Grid(7, 1, 4, 4, colors...), nil)
	if err != nil {
		t.Fatalf("failed to create sheet: %v", err)
	}
	p := params(s, 4, 4, 2)
	p.Style = compositor.DefaultStyle

	frames, err := Render(Entity, p)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	walk := image.Rect(12, 0, 24, 12)
	ttesting.AssertSameImage(t, "walk 2 repeats walk 1",
		frames[1].SubImage(walk).(*image.RGBA), frames[0].SubImage(walk).(*image.RGBA))
}

func TestEntityModeAttackHasNoSeam(t *testing.T) {
	colors := []color.RGBA{shade(0), shade(1), shade(2), {}, shade(4), shade(5), shade(6)}
	s, err := sheet.New(ttesting.Grid(7, 1, 4, 4, colors...), nil)
	if err != nil {
		t.Fatalf("failed to create sheet: %v", err)
	}
	p := params(s, 4, 4, 2)
	p.Style = compositor.Style{Outline: true, OutlineColor: ttesting.White}

	frames, err := Render(Entity, p)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	// 12x12 tiles; the attack pair starts at x=24 and its 16 pixel wide
	// body at x=26. Cells 5 and 6 meet at x=34 with no outline between.
	f1 := frames[1]
	for x := 26; x < 42; x++ {
		want := shade(5)
		if x >= 34 {
			want = shade(6)
		}
		ttesting.AssertEqualRGBA(t, "attack body", f1.RGBAAt(x, 6), want)
	}
	ttesting.AssertEqualRGBA(t, "outline left of the pair", f1.RGBAAt(25, 6), ttesting.White)
	ttesting.AssertEqualRGBA(t, "outline right of the pair", f1.RGBAAt(42, 6), ttesting.White)
}

func TestEntityModeRows(t *testing.T) {
	p := params(shadedSheet(t, 7, 2, 2, 2), 2, 2, 1)

	frames, err := Render(Entity, p)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	ttesting.AssertEqualPoint(t, "frame size", frames[0].Bounds().Size(), image.Pt(16, 8))
	ttesting.AssertEqualRGBA(t, "second row still", frames[0].RGBAAt(1, 5), shade(7))
}

func TestOverviewMode(t *testing.T) {
	// 42 cells: six blocks are scanned, two of them on the sheet.
	p := params(shadedSheet(t, 7, 6, 2, 2), 2, 2, 1)

	frames, err := Render(Overview, p)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	ttesting.AssertEqualInt(t, "frame count", len(frames), 1)
	ttesting.AssertEqualPoint(t, "frame size", frames[0].Bounds().Size(), image.Pt(24, 12))
	for k := 0; k < 6; k++ {
		ttesting.AssertEqualRGBA(t, "slot", frames[0].RGBAAt(4*k+1, 1), shade(7*k))
	}
	ttesting.AssertEqualInt(t, "blocks past the sheet", ttesting.Opaque(frames[0], image.Rect(0, 4, 24, 12)), 0)
}

func TestOverviewModeSize(t *testing.T) {
	p := params(shadedSheet(t, 7, 6, 4, 4), 4, 4, 1)
	p.Length = 3

	frames, err := Render(Overview, p)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	// Six blocks of three 6x6 tiles, six tiles to a row.
	ttesting.AssertEqualPoint(t, "frame size", frames[0].Bounds().Size(), image.Pt(36, 18))
}

func TestOverviewModePartialBlock(t *testing.T) {
	// 28 cells: four blocks, the second one only partly on the sheet.
	p := params(shadedSheet(t, 7, 4, 2, 2), 2, 2, 1)

	frames, err := Render(Overview, p)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	ttesting.AssertEqualPoint(t, "frame size", frames[0].Bounds().Size(), image.Pt(24, 8))
	ttesting.AssertEqualRGBA(t, "partial block front", frames[0].RGBAAt(13, 1), shade(21))
	ttesting.AssertEqualInt(t, "missing slots", ttesting.Opaque(frames[0], image.Rect(16, 0, 24, 8)), 0)
}

func TestOverviewModeIndex(t *testing.T) {
	p := params(shadedSheet(t, 7, 6, 2, 2), 2, 2, 1)
	p.Index = "1"
	p.Length = 1

	frames, err := Render(Overview, p)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	// The block count comes from the whole sheet, not from index.
	ttesting.AssertEqualPoint(t, "frame size", frames[0].Bounds().Size(), image.Pt(24, 4))
	ttesting.AssertEqualRGBA(t, "first block", frames[0].RGBAAt(1, 1), shade(1))
	ttesting.AssertEqualRGBA(t, "second block", frames[0].RGBAAt(5, 1), shade(22))
}

func TestOverviewModeSlots(t *testing.T) {
	p := params(shadedSheet(t, 7, 6, 2, 2), 2, 2, 1)
	p.Length = 1

	frames, err := Render(Overview, p)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	// Six blocks of one slot each.
	ttesting.AssertEqualPoint(t, "frame size", frames[0].Bounds().Size(), image.Pt(24, 4))
	ttesting.AssertEqualRGBA(t, "second block", frames[0].RGBAAt(5, 1), shade(21))
}

func TestRenderErrors(t *testing.T) {
	s := shadedSheet(t, 2, 2, 4, 4)
	for _, test := range []struct {
		name  string
		mode  Mode
		p     Params
		param string
		class error
	}{
		{"no sheet", Image, Params{Width: 4, Height: 4, Upscale: 1}, "sheet", spriterender.ErrGeometry},
		{"zero width", Image, Params{Sheet: s, Height: 4, Upscale: 1}, "width", spriterender.ErrGeometry},
		{"zero upscale", Animation, Params{Sheet: s, Width: 4, Height: 4}, "upscale", spriterender.ErrGeometry},
		{"negative thickness", Image, Params{Sheet: s, Width: 4, Height: 4, Upscale: 1, Style: compositor.Style{OutlineThickness: -1}}, "outline_thickness", spriterender.ErrGeometry},
		{"cell wider than sheet", Image, params(s, 16, 4, 1), "width", spriterender.ErrGeometry},
		{"bad index", Image, Params{Sheet: s, Width: 4, Height: 4, Upscale: 1, Index: "0xZZ"}, "index", spriterender.ErrParse},
		{"index past end", Animation, Params{Sheet: s, Width: 4, Height: 4, Upscale: 1, Index: "4"}, "index", spriterender.ErrGeometry},
		{"length past end", Image, Params{Sheet: s, Width: 4, Height: 4, Upscale: 1, Index: "2", Length: 3}, "length", spriterender.ErrGeometry},
		{"entity too short", Entity, params(s, 4, 4, 1), "length", spriterender.ErrGeometry},
		{"overview slots", Overview, Params{Sheet: s, Width: 4, Height: 4, Upscale: 1, Length: 4}, "length", spriterender.ErrGeometry},
		{"overview without a pose row", Overview, params(s, 4, 4, 1), "sheet", spriterender.ErrGeometry},
		{"unknown mode", Mode(9), params(s, 4, 4, 1), "mode", spriterender.ErrParse},
	} {
		_, err := Render(test.mode, test.p)
		if err == nil {
			t.Errorf("%s: render succeeded", test.name)
			continue
		}
		re, ok := err.(*RenderError)
		if !ok {
			t.Errorf("%s: error %T is not a *RenderError", test.name, err)
			continue
		}
		if re.Param != test.param {
			t.Errorf("%s: param %q; want %q", test.name, re.Param, test.param)
		}
		if !errors.Is(err, test.class) {
			t.Errorf("%s: %v does not unwrap to %v", test.name, err, test.class)
		}
		if errors.Cause(err) != test.class {
			t.Errorf("%s: cause %v; want %v", test.name, errors.Cause(err), test.class)
		}
	}
}
