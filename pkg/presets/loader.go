package presets

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-gmapi/pkg/maps"
)

// LoadFS walks fsys and parses every JSON/YAML preset file. Every preset is
// built once while loading so a broken definition fails here rather than at
// render time. A nil fsys yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{presets: make(map[string]Preset)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isPresetFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("presets: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawName, preset := range doc.Presets {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("presets: file %s defines a preset with an empty name", path)
			}
			if existing, exists := store.presets[name]; exists {
				return fmt.Errorf("presets: duplicate preset %q (files %s and %s)", name, existing.Source, path)
			}
			preset.Name = name
			preset.Source = path
			if _, err := preset.Build(); err != nil {
				return fmt.Errorf("%w (file %s)", err, path)
			}
			store.presets[name] = preset
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Map builds a fresh map for the named preset. Callers may modify the result.
func (s *Store) Map(name string) (*maps.Map, bool) {
	preset, ok := s.Preset(name)
	if !ok {
		return nil, false
	}
	m, err := preset.Build()
	if err != nil {
		return nil, false
	}
	return m, true
}

func (s *Store) Preset(name string) (Preset, bool) {
	if s == nil {
		return Preset{}, false
	}
	preset, ok := s.presets[name]
	return preset, ok
}

// Names lists the loaded presets in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) Empty() bool {
	return s == nil || len(s.presets) == 0
}

type documentFile struct {
	Presets map[string]Preset `json:"presets" yaml:"presets"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("presets: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("presets: parse %s: invalid JSON or YAML", source)
}

func isPresetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
