package htmlpurifier

import (
	"encoding/json"
	"fmt"
)

// AllowedElement permits one element type and lists the attribute names
// that may appear on it. Names are matched case-insensitively; anything
// not listed is removed.
type AllowedElement struct {
	Name       string   `json:"name"`
	Attributes []string `json:"attributes"`
}

// Settings is the allow-list configuration for a purification pass.
// Everything is opt-in: an element absent from Allowed is unwrapped
// (its tags removed, its content kept), and an attribute absent from
// its element's Attributes is dropped.
//
// Settings must not be mutated after first use. For repeated use,
// compile once with [Settings.Compile] and reuse the Policy.
type Settings struct {
	// Allowed lists the permitted elements. If the same element name
	// appears more than once, the first entry wins.
	Allowed []AllowedElement `json:"allowed"`

	// RemoveComments drops HTML comments from the output. When false,
	// comments are passed through verbatim.
	RemoveComments bool `json:"remove_comments"`
}

// DefaultSettings returns the standard allow-list: basic block and
// inline formatting, links with href/title, lists, styled p/span, and
// images with width/height/alt/src. Comments are removed.
func DefaultSettings() *Settings {
	return &Settings{
		Allowed: []AllowedElement{
			{Name: "div"},
			{Name: "b"},
			{Name: "strong"},
			{Name: "i"},
			{Name: "em"},
			{Name: "u"},
			{Name: "a", Attributes: []string{"href", "title"}},
			{Name: "ul"},
			{Name: "ol"},
			{Name: "li"},
			{Name: "p", Attributes: []string{"style"}},
			{Name: "br"},
			{Name: "span", Attributes: []string{"style"}},
			{Name: "img", Attributes: []string{"width", "height", "alt", "src"}},
		},
		RemoveComments: true,
	}
}

// ParseSettings decodes a JSON settings document:
//
//	{
//	  "allowed": [
//	    {"name": "a", "attributes": ["href", "title"]}
//	  ],
//	  "remove_comments": true
//	}
func ParseSettings(data []byte) (*Settings, error) {
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("htmlpurifier: parse settings: %w", err)
	}
	return &s, nil
}
