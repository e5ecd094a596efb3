package paths

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func withDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(DataDirEnv, dir)
	if err := os.WriteFile(filepath.Join(dir, "cloth.png"), []byte("data"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "adir"), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	return dir
}

func TestFind(t *testing.T) {
	dir := withDataDir(t)

	if got, want := Find("cloth.png"), filepath.Join(dir, "cloth.png"); got != want {
		t.Errorf("Find = %q; want %q", got, want)
	}
	if got := Find("missing-texture-file.png"); got != "" {
		t.Errorf("Find of missing file = %q; want empty", got)
	}
	if got := Find("adir"); got != "" {
		t.Errorf("Find of directory = %q; want empty", got)
	}
	if Dirs()[0] != dir {
		t.Errorf("data dir env is not searched first: %v", Dirs())
	}
}

func TestOpen(t *testing.T) {
	withDataDir(t)

	f, err := Open("cloth.png")
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil || string(b) != "data" {
		t.Errorf("read %q, %v; want data", b, err)
	}

	if _, err := Open("missing-texture-file.png"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v; want not-exist", err)
	}
}

func TestSetupFilePathFlagSet(t *testing.T) {
	dir := withDataDir(t)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var found, missing string
	SetupFilePathFlagSet(fs, "cloth.png", "cloth_path", &found)
	SetupFilePathFlagSet(fs, "missing-texture-file.png", "missing_path", &missing)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if found != filepath.Join(dir, "cloth.png") {
		t.Errorf("default %q; want the found path", found)
	}
	if missing != "" {
		t.Errorf("default %q; want empty", missing)
	}
}
