package grammars

import "github.com/odvcencio/inkwell/syntax"

func init() { registerBuiltin(javaGrammar) }

// javaGrammar tokenizes Java. Block comments and text blocks span lines.
var javaGrammar = syntax.Config{
	Name:       "java",
	Extensions: []string{".java"},
	Initial:    "code",
	States: map[string]syntax.State{
		"code": {
			Rules: []syntax.Rule{
				{Name: "line-comment", Pattern: `//.*`, Style: "comment"},
				{Name: "block-comment-open", Pattern: `/\*`, Goto: "comment"},
				{Name: "text-block-open", Pattern: `"""`, Style: "string", Goto: "textblock"},
				{Name: "string", Pattern: `"(?:[^"\\]|\\.)*"?`, Style: "string"},
				{Name: "char", Pattern: `'(?:[^'\\]|\\.)*'`, Style: "string"},
				{Name: "annotation", Pattern: `@[\w.]+`, Style: "function"},
				{Name: "keyword", Pattern: `\b(?:abstract|assert|break|case|catch|class|continue|default|do|else|enum|extends|finally|final|for|if|implements|import|instanceof|interface|native|new|package|private|protected|public|record|return|static|strictfp|super|switch|synchronized|this|throws|throw|transient|try|volatile|while)\b`, Style: "keyword"},
				{Name: "type", Pattern: `\b(?:boolean|byte|char|double|float|int|long|short|void|var)\b`, Style: "type"},
				{Name: "constant", Pattern: `\b(?:true|false|null)\b`, Style: "constant"},
				{Name: "number", Pattern: `0[xX][0-9a-fA-F_]+[lL]?|\d[\d_]*(?:\.[\d_]+)?(?:[eE][+-]?\d+)?[lLfFdD]?`, Style: "number"},
				{Name: "identifier", Pattern: `[A-Za-z_$][\w$]*`},
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
		"textblock": {
			Style: "string",
			Rules: []syntax.Rule{
				{Name: "close", Pattern: `"""`, Style: "string", Goto: "code"},
				{Name: "text", Pattern: `[^"]+`},
			},
		},
	},
}
