package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadYAML parses a YAML catalog and merges it into the translator. The
// top level maps language codes to their translation trees:
//
//	en:
//	  form:
//	    greeting: "Hello, %{name}!"
//	fr:
//	  form:
//	    greeting: "Bonjour, %{name} !"
//
// Entries for a language already loaded are merged at the top level, later
// files winning on key collisions.
func (t *Translator) LoadYAML(content []byte) error {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return errors.Join(ErrFailedToParseYAML, err)
	}

	catalogs := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		tree, ok := val.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidCatalog, lang, val)
		}
		catalogs[lang] = tree
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for lang, tree := range catalogs {
		existing, ok := t.translations[lang]
		if !ok {
			t.translations[lang] = tree
			continue
		}
		for k, v := range tree {
			existing[k] = v
		}
	}
	return nil
}

// LoadFS loads every .yaml/.yml file under root in fsys, in lexical walk
// order. Works with embed.FS, so catalogs can ship inside the binary.
func (t *Translator) LoadFS(fsys fs.FS, root string) error {
	return fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFailedToReadFile, p, err)
		}
		if err := t.LoadYAML(content); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		return nil
	})
}
