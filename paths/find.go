// Package paths locates data files, such as sheets and textures, that a
// user did not name with a full path.
package paths

import (
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// DataDirEnv names the environment variable that, when set, is searched
// before the built-in locations.
const DataDirEnv = "SPRITERENDER_DATA"

// Dirs returns the directories Find searches, in order.
func Dirs() []string {
	var dirs []string
	if d := os.Getenv(DataDirEnv); d != "" {
		dirs = append(dirs, d)
	}
	dirs = append(dirs, ".", "textures")
	if len(os.Args) > 0 {
		dirs = append(dirs, os.Args[0]+".runfiles/go_spriterender/datafiles")
	}
	if gopath := os.Getenv("GOPATH"); gopath != "" {
		dirs = append(dirs, filepath.Join(gopath, "src/badc0de.net/pkg/go-spriterender/datafiles"))
	}
	if home, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "spriterender"))
	}
	return dirs
}

// Find locates the passed data file shortname and returns an absolute or
// relative path to find it at, or an empty string.
//
// For example, for "cloth.png" it may return "textures/cloth.png".
func Find(fileName string) string {
	for _, dir := range Dirs() {
		path := filepath.Join(dir, fileName)
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			glog.Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	glog.V(1).Infof("paths.Find(%q): not found", fileName)
	return ""
}

// Open locates the passed file in the same locations that Find would look, and
// opens it. If Find returns an empty string, an error is returned.
func Open(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	path := Find(fileName)
	if path == "" {
		return nil, errors.Wrapf(os.ErrNotExist, "paths.Open(%q): not found in any data directory", fileName)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "paths.Open(%q)", fileName)
	}
	return f, nil
}
