package level

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/cavesight/internal/logging"
	"github.com/udisondev/cavesight/internal/terrain"
)

// Load reads one level from a .yaml, .yml or .toml file. A level without a
// name is named after its file.
func Load(path string, cat *terrain.Catalog) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level %s: %w", path, err)
	}

	var f file
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".toml":
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("level %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing level %s: %w", path, err)
	}

	if f.Name == "" {
		base := filepath.Base(path)
		f.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	lvl, err := f.build(cat)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return lvl, nil
}

// LoadDir loads every level file in dir in file name order. Other files
// and subdirectories are skipped.
func LoadDir(dir string, cat *terrain.Catalog, log *zap.Logger) ([]*Level, error) {
	log = logging.OrNop(log)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading levels dir %s: %w", dir, err)
	}

	var levels []*Level
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !isLevelFile(name) {
			log.Debug("skip non-level file", zap.String("file", name))
			continue
		}

		lvl, err := Load(filepath.Join(dir, name), cat)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}

	log.Info("levels loaded", zap.Int("count", len(levels)), zap.String("dir", dir))
	return levels, nil
}

func isLevelFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".toml":
		return true
	}
	return false
}
