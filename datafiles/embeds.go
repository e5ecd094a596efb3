// Package datafiles bundles the stock clothing and accessory textures, so a
// render can use them without any files on disk.
package datafiles

import (
	"embed"
	"image"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"badc0de.net/pkg/go-spriterender/sheet"
)

//go:embed cloths/*.png
var clothsEmbed embed.FS

// Cloths lists the names of the bundled textures, without extension.
func Cloths() []string {
	entries, err := fs.ReadDir(clothsEmbed, "cloths")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".png"))
	}
	sort.Strings(names)
	return names
}

// Cloth decodes the named bundled texture.
func Cloth(name string) (*image.RGBA, error) {
	f, err := clothsEmbed.Open(path.Join("cloths", name+".png"))
	if err != nil {
		return nil, errors.Wrapf(err, "bundled texture %q", name)
	}
	defer f.Close()
	img, err := sheet.DecodeImage(f)
	if err != nil {
		return nil, errors.Wrapf(err, "bundled texture %q", name)
	}
	return img, nil
}
