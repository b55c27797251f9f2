package syntax

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadConfig decodes a grammar authored as TOML. The document mirrors the
// Config struct:
//
//	name = "example"
//	extensions = [".ex"]
//	initial = "root"
//
//	[states.root]
//	style = ""
//	eol = ""
//
//	[[states.root.rules]]
//	name = "comment-open"
//	pattern = '/\*'
//	style = "comment"
//	goto = "comment"
//
// Unknown keys are rejected so grammar file typos fail loudly.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse grammar: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads a TOML grammar from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadEngineFile reads a TOML grammar from path and compiles it.
func LoadEngineFile(path string) (*Engine, error) {
	cfg, err := LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	e, err := Compile(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return e, nil
}
