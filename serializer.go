package htmlpurifier

import (
	"io"

	"golang.org/x/net/html"
)

// renderEvent writes one output event as HTML text. Text and
// attribute values are re-escaped so that nothing in them can reopen
// markup.
func renderEvent(w io.StringWriter, ev outputEvent) error {
	if ev.action == dropToken {
		return nil
	}
	return renderToken(w, ev.token)
}

func renderToken(w io.StringWriter, t html.Token) error {
	switch t.Type {
	case html.TextToken:
		_, err := w.WriteString(html.EscapeString(t.Data))
		return err
	case html.StartTagToken:
		return renderTag(w, t, isVoidElement(t.Data))
	case html.SelfClosingTagToken:
		return renderTag(w, t, true)
	case html.EndTagToken:
		return writeStrings(w, "</", t.Data, ">")
	case html.CommentToken:
		if isCDATA(t.Data) {
			return writeStrings(w, "<!", t.Data, ">")
		}
		return writeStrings(w, "<!--", t.Data, "-->")
	case html.DoctypeToken:
		return writeStrings(w, "<!DOCTYPE ", t.Data, ">")
	}
	return nil
}

// renderTag writes a start tag with double-quoted, escaped attribute
// values. Void elements and tags that were self-closing in the source
// take the self-closing form.
func renderTag(w io.StringWriter, t html.Token, selfClosing bool) error {
	if err := writeStrings(w, "<", t.Data); err != nil {
		return err
	}
	for _, a := range t.Attr {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		if err := writeStrings(w, " ", key, `="`, html.EscapeString(a.Val), `"`); err != nil {
			return err
		}
	}
	if selfClosing {
		return writeStrings(w, " />")
	}
	return writeStrings(w, ">")
}

func writeStrings(w io.StringWriter, parts ...string) error {
	for _, s := range parts {
		if _, err := w.WriteString(s); err != nil {
			return err
		}
	}
	return nil
}

// isVoidElement reports whether tag never has content or an end tag.
func isVoidElement(tag string) bool {
	switch tag {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}
