package grammars

import "github.com/odvcencio/inkwell/syntax"

func init() { registerBuiltin(luaGrammar) }

// luaGrammar tokenizes Lua. Long brackets make both comments and strings
// multi-line; the block comment rule must win over the line comment rule.
var luaGrammar = syntax.Config{
	Name:       "lua",
	Extensions: []string{".lua"},
	Initial:    "code",
	States: map[string]syntax.State{
		"code": {
			Rules: []syntax.Rule{
				{Name: "block-comment-open", Pattern: `--\[\[`, Goto: "comment"},
				{Name: "line-comment", Pattern: `--.*`, Style: "comment"},
				{Name: "long-string-open", Pattern: `\[\[`, Goto: "longstring"},
				{Name: "string-double", Pattern: `"(?:[^"\\]|\\.)*"?`, Style: "string"},
				{Name: "string-single", Pattern: `'(?:[^'\\]|\\.)*'?`, Style: "string"},
				{Name: "keyword", Pattern: `\b(?:and|break|do|elseif|else|end|for|function|goto|if|in|local|not|or|repeat|return|then|until|while)\b`, Style: "keyword"},
				{Name: "constant", Pattern: `\b(?:true|false|nil)\b`, Style: "constant"},
				{Name: "number", Pattern: `0[xX][0-9a-fA-F]+|\d+(?:\.\d+)?(?:[eE][+-]?\d+)?`, Style: "number"},
				{Name: "identifier", Pattern: `[A-Za-z_]\w*`},
				{Name: "bracket", Pattern: `[(){}\[\]]`, Style: "punctuation"},
				{Name: "operator", Pattern: `[-+*/%=!<>&|^#~:;,.]+`, Style: "operator"},
			},
		},
		"comment": {
			Style: "comment",
			Rules: []syntax.Rule{
				{Name: "close", Pattern: `\]\]`, Style: "comment", Goto: "code"},
				{Name: "text", Pattern: `[^\]]+`},
			},
		},
		"longstring": {
			Style: "string",
			Rules: []syntax.Rule{
				{Name: "close", Pattern: `\]\]`, Style: "string", Goto: "code"},
				{Name: "text", Pattern: `[^\]]+`},
			},
		},
	},
}
