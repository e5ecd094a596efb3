package main

import (
	"flag"
	"image"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-spriterender"
	"badc0de.net/pkg/go-spriterender/compositor"
	"badc0de.net/pkg/go-spriterender/datafiles"
	"badc0de.net/pkg/go-spriterender/modes"
	"badc0de.net/pkg/go-spriterender/paths"
	"badc0de.net/pkg/go-spriterender/sheet"
)

var (
	clothingPath  string
	accessoryPath string

	clothing  = flag.String("clothing", "cloth00", "bundled texture for the mask's red channel, used when -clothing_path is empty")
	accessory = flag.String("accessory", "cloth01", "bundled texture for the mask's green channel, used when -accessory_path is empty")
)

func setupFilePathFlags() {
	paths.SetupFilePathFlag("clothing.png", "clothing_path", &clothingPath)
	paths.SetupFilePathFlag("accessory.png", "accessory_path", &accessoryPath)
}

// params builds the render parameters from the command line.
func params() (modes.Params, error) {
	s, err := loadSheet()
	if err != nil {
		return modes.Params{}, err
	}

	st := compositor.Style{
		Shadow:           *shadow,
		ShadowStrength:   *shadowStrength,
		Outline:          *outline,
		OutlineThickness: *outlineThickness,
	}
	if st.ShadowColor, err = spriterender.ParseHexColor(*shadowColor); err != nil {
		return modes.Params{}, errors.Wrap(err, "bad -shadow_color")
	}
	if st.OutlineColor, err = spriterender.ParseHexColor(*outlineColor); err != nil {
		return modes.Params{}, errors.Wrap(err, "bad -outline_color")
	}

	p := modes.Params{
		Sheet:   s,
		Index:   *index,
		Length:  *length,
		Width:   *width,
		Height:  *height,
		Upscale: *upscale,
		Style:   st,
		HasMask: s.HasMask(),
	}
	if *bgColor != "" {
		if p.BGColor, err = spriterender.ParseHexColor(*bgColor); err != nil {
			return modes.Params{}, errors.Wrap(err, "bad -bg")
		}
		p.HasBG = true
	}
	if p.HasMask {
		if p.Clothing, err = texture(clothingPath, *clothing); err != nil {
			return modes.Params{}, err
		}
		if p.Accessory, err = texture(accessoryPath, *accessory); err != nil {
			return modes.Params{}, err
		}
	}
	return p, nil
}

func loadSheet() (*sheet.Sheet, error) {
	var (
		s   *sheet.Sheet
		err error
	)
	switch {
	case *paste:
		s, err = sheet.Decode(os.Stdin)
	case *sheetPath != "":
		s, _, err = sheet.Load(*sheetPath)
	default:
		return nil, errors.New("no sheet: pass -sheet or -paste")
	}
	if err != nil {
		return nil, err
	}
	if *maskPath != "" {
		if s, _, err = sheet.LoadMask(*maskPath, s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// texture loads a texture file, or the named bundled texture if path is
// empty. An empty name leaves the channel untextured.
func texture(path, name string) (*image.RGBA, error) {
	if path != "" {
		return sheet.LoadImage(path)
	}
	if name == "" {
		return nil, nil
	}
	glog.V(1).Infof("using bundled texture %q", name)
	return datafiles.Cloth(name)
}
