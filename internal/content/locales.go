package content

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Locales holds the per-language string bundles loaded from a directory of
// <lang>.yaml files.
type Locales struct {
	defaultLocale string
	bundles       map[string]map[string]string
}

// LoadLocales reads every *.yaml file under dir into a bundle keyed by the
// file's base name. The default locale must be present.
func LoadLocales(dir, defaultLocale string) (*Locales, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}

	bundles := make(map[string]map[string]string, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		var bundle map[string]string
		if err := yaml.Unmarshal(data, &bundle); err != nil {
			return nil, fmt.Errorf("locale %s: %w", path, err)
		}

		lang := filepath.Base(path)
		lang = lang[:len(lang)-len(filepath.Ext(lang))]
		bundles[lang] = bundle
	}

	if _, ok := bundles[defaultLocale]; !ok {
		return nil, fmt.Errorf("default locale %q not found in %s", defaultLocale, dir)
	}

	return &Locales{defaultLocale: defaultLocale, bundles: bundles}, nil
}

// Bundle returns the string bundle for lang, falling back to the default
// locale when lang is unknown.
func (l *Locales) Bundle(lang string) map[string]string {
	if bundle, ok := l.bundles[lang]; ok {
		return bundle
	}
	return l.bundles[l.defaultLocale]
}
