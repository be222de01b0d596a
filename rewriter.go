package htmlpurifier

import (
	"strings"

	"golang.org/x/net/html"
)

// emitAction says what the serializer should do with a token.
type emitAction uint8

const (
	emitVerbatim emitAction = iota // render the token as tokenized
	emitFiltered                   // render with the filtered attribute list
	dropToken                      // produce no output
)

// outputEvent pairs a token with its rewrite decision. One event is
// produced per input token and consumed immediately.
type outputEvent struct {
	action emitAction
	token  html.Token
}

// openElement is one frame of the rewriter's stack. The decision made
// for a start tag is recorded so the matching end tag echoes it even
// when unrelated disallowed elements were unwrapped in between.
type openElement struct {
	name    string
	allowed bool
}

// rewriter applies a Policy to a token sequence. It tracks open
// elements so end tags inherit the decision of their start tag, and
// recovers from mismatched or stray end tags the way browsers do.
type rewriter struct {
	policy *Policy
	stack  []openElement
}

func newRewriter(p *Policy) *rewriter {
	return &rewriter{policy: p}
}

func (rw *rewriter) rewrite(t html.Token) outputEvent {
	switch t.Type {
	case html.StartTagToken, html.SelfClosingTagToken:
		return rw.rewriteTag(t)

	case html.EndTagToken:
		return rw.rewriteEndTag(t)

	case html.TextToken:
		// Text is never filtered; only elements and attributes are.
		return outputEvent{emitVerbatim, t}

	case html.CommentToken:
		// CDATA sections surface from the tokenizer as bogus comments;
		// they are not subject to the comment policy.
		if isCDATA(t.Data) {
			return outputEvent{emitVerbatim, t}
		}
		if rw.policy.removeComments {
			return outputEvent{dropToken, t}
		}
		return outputEvent{emitVerbatim, t}

	case html.DoctypeToken:
		return outputEvent{emitVerbatim, t}
	}
	return outputEvent{dropToken, t}
}

func (rw *rewriter) rewriteTag(t html.Token) outputEvent {
	attrs, allowed := rw.policy.classify(t.Data)

	// Void elements and self-closing tags have no end tag to match, so
	// they never go on the stack.
	if t.Type == html.StartTagToken && !isVoidElement(t.Data) {
		rw.stack = append(rw.stack, openElement{name: t.Data, allowed: allowed})
	}

	if !allowed {
		// Unwrap: the tag itself disappears, its content stays and is
		// filtered on its own.
		return outputEvent{dropToken, t}
	}

	filtered, changed := filterAttributes(t.Attr, attrs)
	t.Attr = filtered
	if changed {
		return outputEvent{emitFiltered, t}
	}
	return outputEvent{emitVerbatim, t}
}

func (rw *rewriter) rewriteEndTag(t html.Token) outputEvent {
	// Find the nearest open element with this name. Frames above it
	// are unclosed children; pop them too, silently. Their own end
	// tags, if any show up later, find no match and are dropped.
	for i := len(rw.stack) - 1; i >= 0; i-- {
		if !strings.EqualFold(rw.stack[i].name, t.Data) {
			continue
		}
		allowed := rw.stack[i].allowed
		rw.stack = rw.stack[:i]
		if allowed {
			return outputEvent{emitVerbatim, t}
		}
		return outputEvent{dropToken, t}
	}
	// Stray end tag with no open ancestor.
	return outputEvent{dropToken, t}
}

func isCDATA(comment string) bool {
	return strings.HasPrefix(comment, "[CDATA[") && strings.HasSuffix(comment, "]]")
}
