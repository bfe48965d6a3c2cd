// Package prefabs loads the gameplay tunables of the player, enemies and
// pickups, and the tengo scripts pickups may carry.
package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Dir is the on-disk directory whose files override the embedded prefabs.
// It is also the directory the hot-reload watcher listens on.
const Dir = "prefabs"

const scriptsDir = "scripts"

//go:embed *.yaml scripts/*.tengo
var embedded embed.FS

// Load returns a prefab file, preferring a copy on disk.
func Load(name string) ([]byte, error) {
	return read(cleanPrefabPath(name))
}

// LoadScript returns a pickup script, preferring a copy on disk. name may be
// given with or without the prefabs/ and scripts/ prefixes.
func LoadScript(name string) ([]byte, error) {
	return read(cleanScriptPath(name))
}

func read(clean string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return embedded.ReadFile(clean)
}

func cleanPrefabPath(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimPrefix(filepath.ToSlash(name), Dir+"/")
}

func cleanScriptPath(name string) string {
	if name == "" {
		return ""
	}
	s := strings.TrimPrefix(filepath.ToSlash(name), Dir+"/")
	s = strings.TrimPrefix(s, scriptsDir+"/")
	return path.Join(scriptsDir, s)
}
