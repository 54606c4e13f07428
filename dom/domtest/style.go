// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domtest

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	selcss "github.com/ericchiang/css"
	"github.com/planesgl/planes/base/errors"
	"github.com/planesgl/planes/dom"
	"golang.org/x/net/html/atom"
)

// LayoutAttr is the attribute holding the layout rect of an element
// in a parsed page, as "x y width height".
const LayoutAttr = "data-layout"

// ParseLayout parses a "x y width height" layout rect.
func ParseLayout(s string) (dom.Rect, error) {
	f := strings.Fields(s)
	if len(f) != 4 {
		return dom.Rect{}, fmt.Errorf("domtest: layout %q must have 4 fields", s)
	}
	var v [4]float32
	for i, fs := range f {
		x, err := strconv.ParseFloat(fs, 32)
		if err != nil {
			return dom.Rect{}, fmt.Errorf("domtest: layout %q: %w", s, err)
		}
		v[i] = float32(x)
	}
	return dom.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

// applyStyles sets the computed styles of all elements from the
// rules of the style elements, followed by the style attributes.
func (d *Document) applyStyles() {
	for n := range d.Root.Descendants() {
		if n.DataAtom != atom.Style || n.FirstChild == nil {
			continue
		}
		ss, err := parser.Parse(n.FirstChild.Data)
		if errors.Log(err) != nil {
			continue
		}
		for _, rule := range ss.Rules {
			d.applyRule(rule)
		}
	}
	for _, e := range d.elements {
		st := e.Attr("style")
		if st == "" {
			continue
		}
		// the last declaration needs a terminator to keep its value
		decls, err := parser.ParseDeclarations(strings.TrimSuffix(strings.TrimSpace(st), ";") + ";")
		if errors.Log(err) != nil {
			continue
		}
		setDecls(e.Computed, decls)
	}
}

func (d *Document) applyRule(rule *css.Rule) {
	if len(rule.Selectors) == 0 {
		return
	}
	sel, err := selcss.Parse(strings.Join(rule.Selectors, ","))
	if errors.Log(err) != nil {
		return
	}
	for _, n := range sel.Select(d.Root) {
		setDecls(d.Element(n).Computed, rule.Declarations)
	}
}

func setDecls(m map[string]string, decls []*css.Declaration) {
	for _, dc := range decls {
		m[dc.Property] = dc.Value
	}
}

// styleString returns the inline styles as a style attribute value,
// sorted by property.
func (e *Element) styleString() string {
	var decls []*css.Declaration
	for p, v := range e.Styles {
		decls = append(decls, &css.Declaration{Property: p, Value: v})
	}
	slices.SortFunc(decls, func(a, b *css.Declaration) int {
		return strings.Compare(a.Property, b.Property)
	})
	var b strings.Builder
	for i, dc := range decls {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(dc.StringWithImportant(false))
	}
	return b.String()
}
