package grammars

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/odvcencio/inkwell/syntax"
)

// LangEntry holds a registered language: the compiled engine plus the
// file-name hints used to pick it.
type LangEntry struct {
	Name       string
	Extensions []string // e.g. [".go"]
	Shebangs   []string // e.g. ["#!/usr/bin/env python"]
	Engine     *syntax.Engine
}

var registry []LangEntry

// Register adds a language to the registry.
func Register(entry LangEntry) {
	registry = append(registry, entry)
}

// DetectLanguage returns the entry for a filename, or nil if unknown.
// The most recently registered match wins, so grammars loaded from disk
// shadow the built-ins.
func DetectLanguage(filename string) *LangEntry {
	for i := len(registry) - 1; i >= 0; i-- {
		for _, ext := range registry[i].Extensions {
			if strings.HasSuffix(filename, ext) {
				return &registry[i]
			}
		}
	}
	return nil
}

// DetectLanguageByShebang checks the first line of content for shebang
// matches.
func DetectLanguageByShebang(firstLine string) *LangEntry {
	for i := len(registry) - 1; i >= 0; i-- {
		for _, shebang := range registry[i].Shebangs {
			if strings.HasPrefix(firstLine, shebang) {
				return &registry[i]
			}
		}
	}
	return nil
}

// ByName returns the entry registered under name, or nil.
func ByName(name string) *LangEntry {
	for i := len(registry) - 1; i >= 0; i-- {
		if registry[i].Name == name {
			return &registry[i]
		}
	}
	return nil
}

// AllLanguages returns all registered languages in registration order.
func AllLanguages() []LangEntry {
	return registry
}

// LoadDir compiles and registers every .toml grammar file in dir and
// returns how many were added. The first broken definition aborts the load.
func LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	added := 0
	for _, de := range entries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".toml") {
			continue
		}
		eng, err := syntax.LoadEngineFile(filepath.Join(dir, de.Name()))
		if err != nil {
			return added, fmt.Errorf("load grammar %q: %w", de.Name(), err)
		}
		Register(LangEntry{
			Name:       eng.Name(),
			Extensions: eng.Extensions(),
			Engine:     eng,
		})
		added++
	}
	return added, nil
}

// registerBuiltin compiles a built-in definition and registers it under the
// config's own name and extensions. The definitions are fixed at compile
// time, so a broken one is a programming error.
func registerBuiltin(cfg syntax.Config, shebangs ...string) {
	eng, err := syntax.Compile(cfg)
	if err != nil {
		panic(err)
	}
	Register(LangEntry{
		Name:       cfg.Name,
		Extensions: cfg.Extensions,
		Shebangs:   shebangs,
		Engine:     eng,
	})
}
