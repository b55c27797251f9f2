package grammars

import "github.com/odvcencio/inkwell/syntax"

func init() { registerBuiltin(goGrammar) }

// goGrammar tokenizes Go source. Block comments and raw string literals
// carry state across lines; everything else resolves within one.
var goGrammar = syntax.Config{
	Name:       "go",
	Extensions: []string{".go"},
	Initial:    "code",
	States: map[string]syntax.State{
		"code": {
			Rules: []syntax.Rule{
				{Name: "line-comment", Pattern: `//.*`, Style: "comment"},
				{Name: "block-comment-open", Pattern: `/\*`, Goto: "comment"},
				{Name: "raw-string-open", Pattern: "`", Goto: "rawstring"},
				{Name: "string", Pattern: `"(?:[^"\\]|\\.)*"?`, Style: "string"},
				{Name: "rune", Pattern: `'(?:[^'\\]|\\.)*'`, Style: "string"},
				{Name: "number", Pattern: `0[xXoObB][0-9a-fA-F_]+|\d[\d_]*(?:\.[\d_]*)?(?:[eE][+-]?\d+)?i?`, Style: "number"},
				{Name: "keyword", Pattern: `\b(?:break|case|chan|const|continue|default|defer|else|fallthrough|for|func|go|goto|if|import|interface|map|package|range|return|select|struct|switch|type|var)\b`, Style: "keyword"},
				{Name: "type", Pattern: `\b(?:any|bool|byte|complex64|complex128|error|float32|float64|int|int8|int16|int32|int64|rune|string|uint|uint8|uint16|uint32|uint64|uintptr)\b`, Style: "type"},
				{Name: "constant", Pattern: `\b(?:true|false|iota|nil)\b`, Style: "constant"},
				{Name: "identifier", Pattern: `[A-Za-z_]\w*`},
				{Name: "bracket", Pattern: `[(){}\[\]]`, Style: "punctuation"},
				{Name: "operator", Pattern: `[-+*/%=!<>&|^~:;,.]+`, Style: "operator"},
			},
		},
		"comment": {
			Style: "comment",
			Rules: []syntax.Rule{
				{Name: "close", Pattern: `\*/`, Style: "comment", Goto: "code"},
				{Name: "text", Pattern: `[^*]+`},
			},
		},
		"rawstring": {
			Style: "string",
			Rules: []syntax.Rule{
				{Name: "close", Pattern: "`", Style: "string", Goto: "code"},
				{Name: "text", Pattern: "[^`]+"},
			},
		},
	},
}
