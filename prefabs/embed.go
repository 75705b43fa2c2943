package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed specs/*.yaml
var specsFS embed.FS

//go:embed patterns/*.tengo
var patternsFS embed.FS

// Load returns a spec file by name. The on-disk copy wins over the embedded
// one so edits show up without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name, "specs")
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return specsFS.ReadFile(clean)
}

// LoadScript returns a pattern script by name, disk-first so the watcher's
// reloads pick up edits.
func LoadScript(name string) ([]byte, error) {
	clean := cleanPath(name, "patterns")
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return patternsFS.ReadFile(clean)
}

func cleanPath(name, dir string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "prefabs/")
	s = strings.TrimPrefix(s, dir+"/")
	return dir + "/" + s
}

func diskPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
