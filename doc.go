// Package htmlpurifier filters untrusted HTML against an allow-list
// of elements and attributes, in a single streaming pass.
//
// # Overview
//
// htmlpurifier tokenizes input with the golang.org/x/net/html
// streaming tokenizer, rewrites the token sequence against a
// [Settings] allow-list, and serializes the surviving tokens back to
// an HTML string. No document tree is built: memory use is bounded by
// element nesting depth, not input size, and output can be streamed
// to an io.Writer while input is still being read.
//
// # Filtering model
//
// Everything is opt-in. An element whose name is not in the allow-list
// is unwrapped: its start and end tags are removed but its content is
// kept and filtered on its own, so "<script>keep</script>" becomes
// "keep", not an empty string. Attributes are filtered by name per
// element; attribute values are passed through untouched (value
// inspection such as URL scheme checking is out of scope). Text is
// never removed, only re-escaped. Comments are removed or kept
// according to [Settings.RemoveComments].
//
// Malformed input never fails: stray and mismatched closing tags are
// recovered from the way browsers recover, unterminated elements are
// left open, and [Purify] always returns a string.
//
// # Settings
//
// [DefaultSettings] reproduces the standard allow-list (basic
// formatting, links, lists, images) with comments removed.
// [ParseSettings] reads a JSON settings document. For repeated use,
// [Settings.Compile] builds an immutable [Policy] that is safe for
// concurrent use across goroutines.
//
// # Example
//
//	settings := htmlpurifier.DefaultSettings()
//	clean := htmlpurifier.Purify(userInput, settings)
package htmlpurifier
