package htmlpurifier

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Purify sanitizes input against s and returns the result. It is a
// total function: any byte sequence in, sanitized HTML out, never an
// error. If s is nil, DefaultSettings is used.
//
// Each call compiles s. Callers purifying many documents with the
// same settings should compile once and use [Policy.Purify].
func Purify(input string, s *Settings) string {
	if s == nil {
		s = DefaultSettings()
	}
	return s.Compile().Purify(input)
}

// Purify sanitizes input against the compiled policy.
func (p *Policy) Purify(input string) string {
	var buf bytes.Buffer
	buf.Grow(len(input))
	// A strings.Reader never fails, so neither does the pass.
	_ = p.purify(strings.NewReader(input), &buf)
	return buf.String()
}

// PurifyReader sanitizes the HTML read from r.
func (p *Policy) PurifyReader(r io.Reader) (string, error) {
	var buf bytes.Buffer
	if err := p.purify(r, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PurifyReaderToWriter sanitizes the HTML read from r and streams the
// result to w. Output is produced as input is consumed; memory use is
// bounded by the open-element depth, not the document size. The only
// possible errors are those of r and w.
func (p *Policy) PurifyReaderToWriter(r io.Reader, w io.Writer) error {
	return p.purify(r, w)
}

// purify runs the tokenize, rewrite, serialize pipeline.
func (p *Policy) purify(r io.Reader, w io.Writer) error {
	sw, ok := w.(io.StringWriter)
	if !ok {
		sw = &stringWriter{w}
	}
	rw := newRewriter(p)
	tokens := newTokenStream(r)
	for {
		t, ok := tokens.next()
		if !ok {
			if tokens.err != nil {
				return fmt.Errorf("htmlpurifier: read: %w", tokens.err)
			}
			return nil
		}
		if err := renderEvent(sw, rw.rewrite(t)); err != nil {
			return fmt.Errorf("htmlpurifier: write: %w", err)
		}
	}
}

type stringWriter struct {
	io.Writer
}

func (w *stringWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// StripTags removes all markup from input and returns the remaining
// text with entity references decoded. Script and style bodies are
// dropped along with their tags.
func StripTags(input string) string {
	var buf strings.Builder
	tokens := newTokenStream(strings.NewReader(input))
	rawBody := false
	for {
		t, ok := tokens.next()
		if !ok {
			return buf.String()
		}
		switch t.Type {
		case html.TextToken:
			if !rawBody {
				buf.WriteString(t.Data)
			}
		case html.StartTagToken:
			if isRawTextElement(t.Data) {
				rawBody = true
			}
		case html.EndTagToken:
			if isRawTextElement(t.Data) {
				rawBody = false
			}
		}
	}
}

func isRawTextElement(tag string) bool {
	return tag == "script" || tag == "style"
}
