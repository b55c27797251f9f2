package grammars

import "github.com/odvcencio/inkwell/syntax"

func init() { registerBuiltin(jsonGrammar) }

// jsonGrammar tokenizes JSON. Nothing spans lines, so a single state does.
var jsonGrammar = syntax.Config{
	Name:       "json",
	Extensions: []string{".json"},
	Initial:    "value",
	States: map[string]syntax.State{
		"value": {
			Rules: []syntax.Rule{
				{Name: "string", Pattern: `"(?:[^"\\]|\\.)*"`, Style: "string"},
				{Name: "number", Pattern: `-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?`, Style: "number"},
				{Name: "constant", Pattern: `\b(?:true|false|null)\b`, Style: "constant"},
				{Name: "punctuation", Pattern: `[{}\[\],:]`, Style: "punctuation"},
			},
		},
	},
}
