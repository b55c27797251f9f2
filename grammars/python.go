package grammars

import "github.com/odvcencio/inkwell/syntax"

func init() {
	registerBuiltin(pythonGrammar, "#!/usr/bin/env python", "#!/usr/bin/python")
}

// pythonGrammar tokenizes Python. Triple-quoted strings carry state across
// lines; string rules accept the r/b/u/f prefixes.
var pythonGrammar = syntax.Config{
	Name:       "python",
	Extensions: []string{".py", ".pyw"},
	Initial:    "code",
	States: map[string]syntax.State{
		"code": {
			Rules: []syntax.Rule{
				{Name: "comment", Pattern: `#.*`, Style: "comment"},
				{Name: "triple-double-open", Pattern: `[rRbBuUfF]{0,2}"""`, Style: "string", Goto: "triple-double"},
				{Name: "triple-single-open", Pattern: `[rRbBuUfF]{0,2}'''`, Style: "string", Goto: "triple-single"},
				{Name: "string-double", Pattern: `[rRbBuUfF]{0,2}"(?:[^"\\]|\\.)*"?`, Style: "string"},
				{Name: "string-single", Pattern: `[rRbBuUfF]{0,2}'(?:[^'\\]|\\.)*'?`, Style: "string"},
				{Name: "decorator", Pattern: `@[\w.]+`, Style: "function"},
				{Name: "keyword", Pattern: `\b(?:and|as|assert|async|await|break|class|continue|def|del|elif|else|except|finally|for|from|global|if|import|in|is|lambda|nonlocal|not|or|pass|raise|return|try|while|with|yield)\b`, Style: "keyword"},
				{Name: "constant", Pattern: `\b(?:True|False|None)\b`, Style: "constant"},
				{Name: "number", Pattern: `0[xXoObB][0-9a-fA-F]+|\d+(?:\.\d+)?(?:[eE][+-]?\d+)?j?`, Style: "number"},
				{Name: "identifier", Pattern: `[A-Za-z_]\w*`},
				{Name: "bracket", Pattern: `[(){}\[\]]`, Style: "punctuation"},
				{Name: "operator", Pattern: `[-+*/%=!<>&|^~:;,.]+`, Style: "operator"},
			},
		},
		"triple-double": {
			Style: "string",
			Rules: []syntax.Rule{
				{Name: "close", Pattern: `"""`, Style: "string", Goto: "code"},
				{Name: "text", Pattern: `[^"]+`},
			},
		},
		"triple-single": {
			Style: "string",
			Rules: []syntax.Rule{
				{Name: "close", Pattern: `'''`, Style: "string", Goto: "code"},
				{Name: "text", Pattern: `[^']+`},
			},
		},
	},
}
