package imageprint

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"badc0de.net/pkg/go-spriterender"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.SetRGBA(0, 0, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
	img.SetRGBA(1, 0, color.RGBA{0x10, 0x10, 0x10, 0xFF})
	return img
}

func TestPrintNoColor(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintNoColor(&buf, testImage(), false); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	if got, want := buf.String(), "##..  \n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestPrint24bit(t *testing.T) {
	var buf bytes.Buffer
	if err := Print24bit(&buf, testImage(), true); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	want := "\x1b[48;2;255;255;255m  \x1b[0m" +
		"\x1b[48;2;16;16;16m  \x1b[0m" +
		"\x1b[0m  " +
		"\x1b[0m\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestPrint256ColorRows(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	var buf bytes.Buffer
	if err := Print256Color(&buf, img, true); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 3 {
		t.Errorf("%d lines; want 3", n)
	}
}

func TestPrintITerm(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintITerm(&buf, testImage(), "x.png"); err != nil {
		t.Fatalf("print failed: %v", err)
	}
	if s := buf.String(); !strings.Contains(s, "\033]1337;File=name=eC5wbmc=;inline=1;") || !strings.Contains(s, "width=3px;height=1px:") {
		t.Errorf("unexpected escape %q", s)
	}
}

func TestParseStyle(t *testing.T) {
	for _, s := range []Style{Auto, Graphics, TrueColor, Color256, NoColor} {
		got, err := ParseStyle(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStyle(%q) = %v, %v; want %v", s.String(), got, err, s)
		}
	}
	if _, err := ParseStyle("hologram"); !errors.Is(err, spriterender.ErrParse) {
		t.Errorf("got %v; want parse error", err)
	}
}

func TestPaletted(t *testing.T) {
	p := Paletted(testImage(), 4)
	if len(p.Palette) == 0 || len(p.Palette) > 4 {
		t.Errorf("palette of %d colours; want 1 to 4", len(p.Palette))
	}
	if p.Bounds() != testImage().Bounds() {
		t.Errorf("bounds %v; want %v", p.Bounds(), testImage().Bounds())
	}
}
