package repl

import "strings"

// Completer suggests verbs for a partial or mistyped command word.
type Completer struct {
	verbs []string
}

// NewCompleter creates a Completer over Verbs.
func NewCompleter() *Completer {
	c := &Completer{}
	for _, v := range Verbs {
		c.verbs = append(c.verbs, string(v))
	}
	return c
}

// Complete returns the verbs starting with prefix, case-insensitively.
func (c *Completer) Complete(prefix string) []string {
	prefix = strings.ToLower(prefix)
	var out []string
	for _, v := range c.verbs {
		if strings.HasPrefix(v, prefix) {
			out = append(out, v)
		}
	}
	return out
}

// Suggest returns verbs close to word: those it is a prefix of, or,
// failing that, those within one edit of it.
func (c *Completer) Suggest(word string) []string {
	word = strings.ToLower(word)
	if word == "" {
		return nil
	}
	if out := c.Complete(word); len(out) > 0 {
		return out
	}
	var out []string
	for _, v := range c.verbs {
		if withinOneEdit(word, v) {
			out = append(out, v)
		}
	}
	return out
}

// withinOneEdit reports whether a becomes b by one insertion, deletion,
// substitution or adjacent transposition.
func withinOneEdit(a, b string) bool {
	if a == b {
		return true
	}
	la, lb := len(a), len(b)
	if la-lb > 1 || lb-la > 1 {
		return false
	}
	i := 0
	for i < la && i < lb && a[i] == b[i] {
		i++
	}
	switch {
	case la == lb:
		if a[i+1:] == b[i+1:] {
			return true
		}
		return i+1 < la && a[i] == b[i+1] && a[i+1] == b[i] && a[i+2:] == b[i+2:]
	case la > lb:
		return a[i+1:] == b[i:]
	default:
		return a[i:] == b[i+1:]
	}
}
