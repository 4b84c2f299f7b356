package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Dir is the on-disk prefab directory, relative to the working directory.
const Dir = "prefabs"

//go:embed *.yaml scripts/*.tengo
var embedded embed.FS

// WatchDirs lists the directories a hot-reload watcher should observe.
func WatchDirs() []string {
	return []string{Dir, filepath.Join(Dir, "scripts")}
}

// Load returns a prefab spec, preferring the on-disk copy under prefabs/ so
// edits are picked up without a rebuild.
func Load(name string) ([]byte, error) {
	return read(cleanPath(name))
}

// LoadScript resolves name under scripts/, accepting bare, scripts/ and
// prefabs/scripts/ forms.
func LoadScript(name string) ([]byte, error) {
	clean := cleanPath(name)
	if !strings.HasPrefix(clean, "scripts/") {
		clean = path.Join("scripts", clean)
	}
	return read(clean)
}

// Names lists the embedded entity and arena specs.
func Names() ([]string, error) {
	return fs.Glob(embedded, "*.yaml")
}

func read(clean string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return embedded.ReadFile(clean)
}

func cleanPath(name string) string {
	s := path.Clean(filepath.ToSlash(name))
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	return s
}
