package htmlpurifier

import (
	"errors"
	"io"

	"golang.org/x/net/html"
)

// tokenStream is a lazy, forward-only view over the x/net/html
// tokenizer. The sequence is finite and not restartable: once next
// returns false the stream is exhausted.
//
// The underlying tokenizer gives us the permissive behavior a
// sanitizer needs: tag and attribute names lower-cased, unquoted and
// malformed attributes tolerated, a stray "<" treated as text, and
// script/style bodies delivered as opaque text up to the matching end
// tag. Malformed markup never terminates the stream; only a read
// error from r does.
type tokenStream struct {
	z   *html.Tokenizer
	err error
}

func newTokenStream(r io.Reader) *tokenStream {
	return &tokenStream{z: html.NewTokenizer(r)}
}

// next returns the next token, or false at end of input. After a
// false return, err holds the read error if the end was not a clean
// EOF.
func (ts *tokenStream) next() (html.Token, bool) {
	if ts.z.Next() == html.ErrorToken {
		if err := ts.z.Err(); !errors.Is(err, io.EOF) {
			ts.err = err
		}
		return html.Token{}, false
	}
	return ts.z.Token(), true
}
