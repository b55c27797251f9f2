package grammars

import "github.com/odvcencio/inkwell/syntax"

func init() { registerBuiltin(javascriptGrammar) }

// javascriptGrammar tokenizes JavaScript. Template literals span lines;
// embedded ${...} expressions are shown plain without nesting back into the
// code state.
var javascriptGrammar = syntax.Config{
	Name:       "javascript",
	Extensions: []string{".js", ".mjs", ".cjs"},
	Initial:    "code",
	States: map[string]syntax.State{
		"code": {
			Rules: []syntax.Rule{
				{Name: "line-comment", Pattern: `//.*`, Style: "comment"},
				{Name: "block-comment-open", Pattern: `/\*`, Goto: "comment"},
				{Name: "template-open", Pattern: "`", Goto: "template"},
				{Name: "string-double", Pattern: `"(?:[^"\\]|\\.)*"?`, Style: "string"},
				{Name: "string-single", Pattern: `'(?:[^'\\]|\\.)*'?`, Style: "string"},
				{Name: "keyword", Pattern: `\b(?:async|await|break|case|catch|class|const|continue|debugger|default|delete|do|else|export|extends|finally|for|function|get|if|import|in|instanceof|let|new|of|return|set|static|super|switch|this|throw|try|typeof|var|void|while|with|yield)\b`, Style: "keyword"},
				{Name: "constant", Pattern: `\b(?:true|false|null|undefined|NaN|Infinity)\b`, Style: "constant"},
				{Name: "number", Pattern: `0[xXoObB][0-9a-fA-F]+n?|\d+(?:\.\d+)?(?:[eE][+-]?\d+)?n?`, Style: "number"},
				{Name: "identifier", Pattern: `[A-Za-z_$][\w$]*`},
				{Name: "bracket", Pattern: `[(){}\[\]]`, Style: "punctuation"},
				{Name: "operator", Pattern: `[-+*/%=!<>&|^?:;,.]+`, Style: "operator"},
			},
		},
		"comment": {
			Style: "comment",
			Rules: []syntax.Rule{
				{Name: "close", Pattern: `\*/`, Style: "comment", Goto: "code"},
				{Name: "text", Pattern: `[^*]+`},
			},
		},
		"template": {
			Style: "string",
			Rules: []syntax.Rule{
				{Name: "close", Pattern: "`", Style: "string", Goto: "code"},
				{Name: "placeholder", Pattern: "\\$\\{[^}]*\\}?", Style: "plain"},
				{Name: "text", Pattern: "[^`$]+"},
			},
		},
	},
}
