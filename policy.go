package htmlpurifier

import (
	"strings"

	"golang.org/x/net/html"
)

// Policy is a compiled, immutable form of Settings. Element and
// attribute names are normalized to lower case and indexed for O(1)
// lookup. A Policy is safe for concurrent use; all per-call state
// lives in the purification pass itself.
type Policy struct {
	elements       map[string]attrSet
	removeComments bool
}

type attrSet map[string]bool

// Compile builds a Policy from s. Duplicate element names keep the
// first entry; empty element and attribute names are ignored, so they
// can never match anything.
func (s *Settings) Compile() *Policy {
	p := &Policy{
		elements:       make(map[string]attrSet, len(s.Allowed)),
		removeComments: s.RemoveComments,
	}
	for _, el := range s.Allowed {
		name := strings.ToLower(el.Name)
		if name == "" {
			continue
		}
		if _, ok := p.elements[name]; ok {
			continue // first match wins
		}
		attrs := make(attrSet, len(el.Attributes))
		for _, a := range el.Attributes {
			if a == "" {
				continue
			}
			attrs[strings.ToLower(a)] = true
		}
		p.elements[name] = attrs
	}
	return p
}

// classify looks up a tag name against the allow-list. The second
// return is false for elements that must be unwrapped. The tokenizer
// lower-cases tag names already, but callers may not have gone through
// it, so normalize here too.
func (p *Policy) classify(name string) (attrSet, bool) {
	attrs, ok := p.elements[strings.ToLower(name)]
	return attrs, ok
}

// filterAttributes removes every attribute whose name is not in
// allowed, in place, preserving the order of the survivors. Attribute
// values are not inspected. The second return reports whether anything
// was removed.
func filterAttributes(attrs []html.Attribute, allowed attrSet) ([]html.Attribute, bool) {
	out := attrs[:0]
	for _, a := range attrs {
		if allowed[strings.ToLower(a.Key)] {
			out = append(out, a)
		}
	}
	return out, len(out) != len(attrs)
}
