package grammars

import "github.com/odvcencio/inkwell/syntax"

func init() { registerBuiltin(cGrammar) }

// cGrammar tokenizes C. Only block comments span lines.
var cGrammar = syntax.Config{
	Name:       "c",
	Extensions: []string{".c", ".h"},
	Initial:    "code",
	States: map[string]syntax.State{
		"code": {
			Rules: []syntax.Rule{
				{Name: "line-comment", Pattern: `//.*`, Style: "comment"},
				{Name: "block-comment-open", Pattern: `/\*`, Goto: "comment"},
				{Name: "preprocessor", Pattern: `#\s*(?:define|include|ifdef|ifndef|if|elif|else|endif|pragma|undef|error|warning)\b`, Style: "keyword"},
				{Name: "string", Pattern: `"(?:[^"\\]|\\.)*"?`, Style: "string"},
				{Name: "char", Pattern: `'(?:[^'\\]|\\.)*'`, Style: "string"},
				{Name: "keyword", Pattern: `\b(?:auto|break|case|const|continue|default|do|else|enum|extern|for|goto|if|inline|register|restrict|return|sizeof|static|struct|switch|typedef|union|volatile|while)\b`, Style: "keyword"},
				{Name: "type", Pattern: `\b(?:char|double|float|int|long|short|signed|unsigned|void|size_t|ssize_t|u?int(?:8|16|32|64)_t)\b`, Style: "type"},
				{Name: "constant", Pattern: `\b(?:NULL|true|false)\b`, Style: "constant"},
				{Name: "number", Pattern: `0[xX][0-9a-fA-F]+[uUlL]*|\d+(?:\.\d+)?(?:[eE][+-]?\d+)?[uUlLfF]*`, Style: "number"},
				{Name: "identifier", Pattern: `[A-Za-z_]\w*`},
				{Name: "bracket", Pattern: `[(){}\[\]]`, Style: "punctuation"},
				{Name: "operator", Pattern: `[-+*/%=!<>&|^~?:;,.]+`, Style: "operator"},
			},
		},
		"comment": {
			Style: "comment",
			Rules: []syntax.Rule{
				{Name: "close", Pattern: `\*/`, Style: "comment", Goto: "code"},
				{Name: "text", Pattern: `[^*]+`},
			},
		},
	},
}
