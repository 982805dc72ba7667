package modules

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/validmsg/pkg/messages"
)

type unmarshalFunc func(data []byte, v any) error

var decoders = map[string]unmarshalFunc{
	".json": json.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
}

// Load walks fsys and loads every JSON, YAML and TOML file as a module.
// The module path is the file path without its extension, so
// "app/validations/messages.yaml" is registered as "app/validations/messages".
// Nested objects are flattened with dots: {"date": {"before": "..."}} yields
// the key "date.before".
//
// Example structure:
//
//	app/validations/messages.yaml
//	admin/validations/messages.json
func Load(fsys fs.FS) (Map, error) {
	mods := make(Map)

	err := fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(filePath))
		unmarshal, ok := decoders[ext]
		if !ok {
			return nil
		}

		key := strings.TrimSuffix(filePath, path.Ext(filePath))
		if _, exists := mods[key]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateModule, key)
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var raw map[string]any
		if err := unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		mods[key] = Module{Default: flatten(raw, "")}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return mods, nil
}

// LoadDir loads modules from a directory on disk.
func LoadDir(dir string) (Map, error) {
	return Load(os.DirFS(dir))
}

func flatten(data map[string]any, prefix string) messages.Map {
	if data == nil {
		return nil
	}

	result := make(messages.Map, len(data))
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flatten(v, fullKey))
		case nil:
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
