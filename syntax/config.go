package syntax

import (
	"fmt"
	"regexp"
	"sort"
)

// Config is the authoring form of a grammar. States are named; the engine
// assigns dense ids at compile time with Initial mapped to id 0.
type Config struct {
	// Name is the language name, e.g. "gosrc".
	Name string `toml:"name"`
	// Extensions lists file-name extensions including the dot, e.g. ".go".
	Extensions []string `toml:"extensions"`
	// Initial names the state a document starts in.
	Initial string `toml:"initial"`
	// States maps state names to their definitions.
	States map[string]State `toml:"states"`
}

// State defines one tokenizer state.
type State struct {
	// Style is the state's default style, applied to matches whose rule and
	// target state declare none, and to unmatched characters.
	Style string `toml:"style"`
	// Rules are tried in order; the first match wins.
	Rules []Rule `toml:"rules"`
	// EOL names the state to enter when the end of a line is reached in this
	// state. Empty means stay.
	EOL string `toml:"eol"`
	// Imports copies named rules from other states onto the end of this
	// state's rule list.
	Imports []Import `toml:"imports"`
}

// Rule is one anchored pattern within a state.
type Rule struct {
	// Name identifies the rule within its state, for imports and errors.
	Name string `toml:"name"`
	// Pattern is a regular expression, implicitly anchored at the match
	// position.
	Pattern string `toml:"pattern"`
	// Style overrides the styles of the states involved; empty inherits the
	// target state's style, then the current state's.
	Style string `toml:"style"`
	// Goto names the state to enter after the match. Empty means stay.
	Goto string `toml:"goto"`
}

// Import references a rule defined in another state. The rule is copied as
// authored, so its style and goto keep their original meaning.
type Import struct {
	From string `toml:"from"`
	Rule string `toml:"rule"`
}

type anchoredPattern struct {
	re *regexp.Regexp
}

func compilePattern(pat string) (anchoredPattern, error) {
	re, err := regexp.Compile(`\A(?:` + pat + `)`)
	if err != nil {
		return anchoredPattern{}, err
	}
	return anchoredPattern{re: re}, nil
}

// matchLen returns the number of bytes the pattern consumes at the start of
// s, or -1 when it does not match there.
func (p anchoredPattern) matchLen(s string) int {
	loc := p.re.FindStringIndex(s)
	if loc == nil {
		return -1
	}
	return loc[1]
}

// Compile validates cfg and builds an Engine with the default tab size.
// Validation is exhaustive: unknown initial, goto, eol or import targets,
// empty or invalid patterns, and duplicate rule names within a state are all
// reported here rather than surfacing at tokenize time.
func Compile(cfg Config) (*Engine, error) {
	if len(cfg.States) == 0 {
		return nil, fmt.Errorf("grammar %q: no states", cfg.Name)
	}
	if cfg.Initial == "" {
		return nil, fmt.Errorf("grammar %q: no initial state", cfg.Name)
	}
	if _, ok := cfg.States[cfg.Initial]; !ok {
		return nil, fmt.Errorf("grammar %q: unknown initial state %q", cfg.Name, cfg.Initial)
	}

	names := make([]string, 0, len(cfg.States))
	for name := range cfg.States {
		if name != cfg.Initial {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	names = append([]string{cfg.Initial}, names...)

	ids := make(map[string]StateID, len(names))
	for i, name := range names {
		ids[name] = StateID(i)
	}

	e := &Engine{
		name:    cfg.Name,
		exts:    append([]string(nil), cfg.Extensions...),
		states:  make([]compiledState, len(names)),
		ids:     ids,
		tabSize: DefaultTabSize,
	}

	for i, name := range names {
		src := cfg.States[name]
		rules, err := resolveRules(cfg, name, src)
		if err != nil {
			return nil, fmt.Errorf("grammar %q: %w", cfg.Name, err)
		}
		cs := compiledState{name: name, style: src.Style, eol: -1}
		if src.EOL != "" {
			id, ok := ids[src.EOL]
			if !ok {
				return nil, fmt.Errorf("grammar %q: state %q: unknown eol state %q", cfg.Name, name, src.EOL)
			}
			cs.eol = id
		}
		for _, r := range rules {
			cr, err := compileRule(ids, name, r)
			if err != nil {
				return nil, fmt.Errorf("grammar %q: %w", cfg.Name, err)
			}
			cs.rules = append(cs.rules, cr)
		}
		e.states[i] = cs
	}
	return e, nil
}

// resolveRules returns the state's own rules followed by its imports, and
// rejects duplicate rule names.
func resolveRules(cfg Config, name string, st State) ([]Rule, error) {
	rules := append([]Rule(nil), st.Rules...)
	for _, imp := range st.Imports {
		src, ok := cfg.States[imp.From]
		if !ok {
			return nil, fmt.Errorf("state %q: import from unknown state %q", name, imp.From)
		}
		found := false
		for _, r := range src.Rules {
			if r.Name == imp.Rule {
				rules = append(rules, r)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("state %q: import of unknown rule %q from state %q", name, imp.Rule, imp.From)
		}
	}
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r.Name == "" {
			return nil, fmt.Errorf("state %q: rule with empty name", name)
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("state %q: duplicate rule name %q", name, r.Name)
		}
		seen[r.Name] = true
	}
	return rules, nil
}

func compileRule(ids map[string]StateID, state string, r Rule) (compiledRule, error) {
	if r.Pattern == "" {
		return compiledRule{}, fmt.Errorf("state %q: rule %q: empty pattern", state, r.Name)
	}
	pat, err := compilePattern(r.Pattern)
	if err != nil {
		return compiledRule{}, fmt.Errorf("state %q: rule %q: %w", state, r.Name, err)
	}
	cr := compiledRule{name: r.Name, re: pat, style: r.Style, target: -1}
	if r.Goto != "" {
		id, ok := ids[r.Goto]
		if !ok {
			return compiledRule{}, fmt.Errorf("state %q: rule %q: unknown goto state %q", state, r.Name, r.Goto)
		}
		cr.target = id
	}
	return cr, nil
}
