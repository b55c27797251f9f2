package syntax

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const grammarTOML = `
name = "toy"
extensions = [".toy"]
initial = "root"

[states.root]

[[states.root.rules]]
name = "comment-open"
pattern = '/\*'
goto = "comment"

[[states.root.rules]]
name = "number"
pattern = '[0-9]+'
style = "number"

[states.comment]
style = "comment"

[[states.comment.rules]]
name = "close"
pattern = '\*/'
goto = "root"
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(grammarTOML))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Name != "toy" {
		t.Errorf("Name = %q, want %q", cfg.Name, "toy")
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".toy" {
		t.Errorf("Extensions = %v, want [.toy]", cfg.Extensions)
	}
	e, err := Compile(cfg)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	segs, exit := e.HighlightLine(Initial, "12 /* note")
	if segs[0].Style != "number" {
		t.Errorf("first segment style = %q, want %q", segs[0].Style, "number")
	}
	comment := stateID(t, e, "comment")
	if exit != comment {
		t.Errorf("exit state = %d, want %d", exit, comment)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	doc := `
name = "typo"
initial = "root"
colour = "off"

[states.root]
`
	if _, err := LoadConfig(strings.NewReader(doc)); err == nil {
		t.Fatal("LoadConfig() succeeded on unknown key, want error")
	}
}

func TestLoadConfigBadTOML(t *testing.T) {
	if _, err := LoadConfig(strings.NewReader("name = ")); err == nil {
		t.Fatal("LoadConfig() succeeded on malformed TOML, want error")
	}
}

func TestLoadEngineFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toy.toml")
	if err := os.WriteFile(path, []byte(grammarTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	e, err := LoadEngineFile(path)
	if err != nil {
		t.Fatalf("LoadEngineFile() error: %v", err)
	}
	if e.Name() != "toy" {
		t.Errorf("Name() = %q, want %q", e.Name(), "toy")
	}
}

func TestLoadEngineFileMissing(t *testing.T) {
	if _, err := LoadEngineFile(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("LoadEngineFile() succeeded on missing file, want error")
	}
}

func TestLoadEngineFileInvalidGrammar(t *testing.T) {
	doc := `
name = "broken"
initial = "missing"

[states.root]
`
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadEngineFile(path); err == nil {
		t.Fatal("LoadEngineFile() succeeded on invalid grammar, want error")
	}
}
