package keymap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"
)

// Loader errors.
var (
	ErrUnknownFormat = errors.New("keymap: unknown file format")
	ErrInvalidJSON   = errors.New("keymap: invalid JSON")
)

// LoadFile loads a keymap from a JSON or YAML file on disk.
func LoadFile(path string) (*Keymap, error) {
	return LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// LoadFS loads a keymap from fsys. The format follows the file extension:
// .json, or .yaml/.yml.
func LoadFS(fsys fs.FS, name string) (*Keymap, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading keymap file: %w", err)
	}

	var km *Keymap
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		km, err = ParseJSON(data)
	case ".yaml", ".yml":
		km, err = ParseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}

	if km.Name == "" {
		km.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	km.Source = name
	return km, nil
}

// ParseJSON parses a JSON keymap. "bindings" is either an array of
// {keys, action, description} objects or an object mapping keys to actions.
func ParseJSON(data []byte) (*Keymap, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	doc := gjson.ParseBytes(data)
	km := NewKeymap(doc.Get("name").String())

	bindings := doc.Get("bindings")
	switch {
	case bindings.IsArray():
		for i, b := range bindings.Array() {
			if !b.IsObject() {
				return nil, fmt.Errorf("binding %d: expected object, got %s", i, b.Type)
			}
			km.Bindings = append(km.Bindings, Binding{
				Keys:        b.Get("keys").String(),
				Action:      b.Get("action").String(),
				Description: b.Get("description").String(),
			})
		}
	case bindings.IsObject():
		bindings.ForEach(func(k, v gjson.Result) bool {
			km.Add(k.String(), v.String())
			return true
		})
	case bindings.Exists():
		return nil, fmt.Errorf("bindings: expected array or object, got %s", bindings.Type)
	}

	if err := km.Validate(); err != nil {
		return nil, err
	}
	return km, nil
}

// yamlKeymap is the YAML structure for keymap files.
type yamlKeymap struct {
	Name     string    `yaml:"name"`
	Bindings []Binding `yaml:"bindings"`
}

// ParseYAML parses a YAML keymap.
func ParseYAML(data []byte) (*Keymap, error) {
	var doc yamlKeymap
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}

	km := NewKeymap(doc.Name)
	km.Bindings = append(km.Bindings, doc.Bindings...)
	if err := km.Validate(); err != nil {
		return nil, err
	}
	return km, nil
}

// MarshalJSON renders the keymap as indented JSON in the array form.
func (k *Keymap) MarshalJSON() ([]byte, error) {
	doc, err := sjson.Set("{}", "name", k.Name)
	if err != nil {
		return nil, err
	}
	if doc, err = sjson.SetRaw(doc, "bindings", "[]"); err != nil {
		return nil, err
	}

	for i, b := range k.Bindings {
		prefix := fmt.Sprintf("bindings.%d.", i)
		if doc, err = sjson.Set(doc, prefix+"keys", b.Keys); err != nil {
			return nil, err
		}
		if doc, err = sjson.Set(doc, prefix+"action", b.Action); err != nil {
			return nil, err
		}
		if b.Description != "" {
			if doc, err = sjson.Set(doc, prefix+"description", b.Description); err != nil {
				return nil, err
			}
		}
	}

	return pretty.Pretty([]byte(doc)), nil
}

// SaveFile saves the keymap to a JSON file.
func (k *Keymap) SaveFile(path string) error {
	data, err := k.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshaling keymap: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing keymap file: %w", err)
	}

	return nil
}
