package terrain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Features []featureEntry `yaml:"features" toml:"features"`
}

type featureEntry struct {
	ID    int      `yaml:"id" toml:"id"`
	Name  string   `yaml:"name" toml:"name"`
	Desc  string   `yaml:"desc" toml:"desc"`
	Glyph string   `yaml:"glyph" toml:"glyph"`
	Mimic string   `yaml:"mimic" toml:"mimic"`
	Flags []string `yaml:"flags" toml:"flags"`
	Shop  int      `yaml:"shop" toml:"shop"`
}

// Load reads a catalog from a .yaml, .yml or .toml file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading terrain %s: %w", path, err)
	}

	var file catalogFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("terrain %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing terrain %s: %w", path, err)
	}

	c, err := file.build()
	if err != nil {
		return nil, fmt.Errorf("terrain %s: %w", path, err)
	}
	return c, nil
}

func (f catalogFile) build() (*Catalog, error) {
	ids := make(map[string]ID, len(f.Features))
	for _, e := range f.Features {
		if e.ID < 0 || e.ID > 255 {
			return nil, fmt.Errorf("feature %q: id %d out of range", e.Name, e.ID)
		}
		ids[e.Name] = ID(e.ID)
	}

	features := make([]Feature, 0, len(f.Features))
	for _, e := range f.Features {
		feat := Feature{
			ID:      ID(e.ID),
			Name:    e.Name,
			Desc:    e.Desc,
			ShopNum: e.Shop,
		}
		if e.Glyph != "" {
			r, size := utf8.DecodeRuneInString(e.Glyph)
			if size != len(e.Glyph) {
				return nil, fmt.Errorf("feature %q: glyph %q must be one character", e.Name, e.Glyph)
			}
			feat.Glyph = r
		}
		if e.Mimic != "" {
			m, ok := ids[e.Mimic]
			if !ok {
				return nil, fmt.Errorf("feature %q mimics %q: %w", e.Name, e.Mimic, ErrUnknownFeature)
			}
			feat.Mimic = m
		}
		for _, name := range e.Flags {
			flag, err := ParseFlag(name)
			if err != nil {
				return nil, fmt.Errorf("feature %q: %w", e.Name, err)
			}
			feat.Flags |= flag
		}
		features = append(features, feat)
	}
	return NewCatalog(features)
}
