// Package kml extracts named placemark features and their geometry from
// KML documents.
package kml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrParse reports a document that could not be parsed as XML.
var ErrParse = errors.New("malformed kml document")

// element is a generic XML tree node. The decoder resolves namespace
// prefixes into xml.Name.Space, so XMLName.Local is always the bare local
// name. Matching on local names keeps documents with a default namespace,
// gx: extensions or vendor prefixes all looking alike.
type element struct {
	XMLName  xml.Name
	Text     string    `xml:",chardata"`
	Children []element `xml:",any"`
}

// parseTree decodes a whole document into an element tree.
func parseTree(text string) (*element, error) {
	dec := xml.NewDecoder(strings.NewReader(text))

	// Input has already been transcoded to UTF-8 by the container reader,
	// so honor prologs that still declare another charset.
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var root element
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return &root, nil
}

// findFirst returns the first element in the subtree rooted at el, el
// included, whose local name matches, searching depth-first in document
// order. Returns nil when nothing matches.
func (el *element) findFirst(local string) *element {
	if el.XMLName.Local == local {
		return el
	}
	for i := range el.Children {
		if m := el.Children[i].findFirst(local); m != nil {
			return m
		}
	}
	return nil
}

// findAll returns every element in the subtree rooted at el, el included,
// whose local name matches, in document order.
func (el *element) findAll(local string) []*element {
	var out []*element
	el.walk(func(e *element) {
		if e.XMLName.Local == local {
			out = append(out, e)
		}
	})
	return out
}

func (el *element) walk(fn func(*element)) {
	fn(el)
	for i := range el.Children {
		el.Children[i].walk(fn)
	}
}
