// Package sexp implements the s-expression document tree used by KiCad
// board files. Unlike a typed parser, the tree keeps every token of the
// source file, so a document can be loaded, selectively mutated, and
// written back without losing fields the tool does not understand.
package sexp

import (
	"fmt"
	"strconv"
)

// Node is one element of an s-expression tree: either an atom (symbol,
// number, or quoted string) or a list of child nodes.
type Node struct {
	Atom   string  // decoded token text, atoms only
	Quoted bool    // atom was a quoted string in the source
	List   []*Node // non-nil for lists, nil for atoms
}

// NewAtom creates a bare symbol or number atom.
func NewAtom(s string) *Node {
	return &Node{Atom: s}
}

// NewString creates a quoted string atom.
func NewString(s string) *Node {
	return &Node{Atom: s, Quoted: true}
}

// NewList creates a list node starting with the given keyword.
func NewList(name string, children ...*Node) *Node {
	list := make([]*Node, 0, len(children)+1)
	list = append(list, NewAtom(name))
	list = append(list, children...)
	return &Node{List: list}
}

// IsList reports whether the node is a list.
func (n *Node) IsList() bool {
	return n != nil && n.List != nil
}

// Name returns the keyword of a list (its first atom), or the atom text
// itself for atoms. Returns "" for empty lists.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}
	if n.List == nil {
		return n.Atom
	}
	if len(n.List) == 0 || n.List[0].IsList() {
		return ""
	}
	return n.List[0].Atom
}

// Find returns the first child list whose keyword matches key.
func (n *Node) Find(key string) *Node {
	if !n.IsList() {
		return nil
	}
	for _, c := range n.List {
		if c.IsList() && c.Name() == key {
			return c
		}
	}
	return nil
}

// FindAll returns every child list whose keyword matches key.
func (n *Node) FindAll(key string) []*Node {
	if !n.IsList() {
		return nil
	}
	var out []*Node
	for _, c := range n.List {
		if c.IsList() && c.Name() == key {
			out = append(out, c)
		}
	}
	return out
}

// HasSymbol reports whether the list contains the given bare symbol as a
// direct child (e.g. "locked" in "(segment locked (start ...))").
func (n *Node) HasSymbol(sym string) bool {
	if !n.IsList() {
		return false
	}
	for _, c := range n.List {
		if !c.IsList() && !c.Quoted && c.Atom == sym {
			return true
		}
	}
	return false
}

// Arg returns the atom text at the given index in a list. Index 0 is the
// keyword, 1 the first argument, and so on.
func (n *Node) Arg(i int) (string, error) {
	if !n.IsList() {
		return "", fmt.Errorf("expected list, got atom %q", n.Atom)
	}
	if i < 0 || i >= len(n.List) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", i, len(n.List))
	}
	c := n.List[i]
	if c.IsList() {
		return "", fmt.Errorf("expected atom at index %d, got list", i)
	}
	return c.Atom, nil
}

// Float returns the atom at index i parsed as a float64.
func (n *Node) Float(i int) (float64, error) {
	s, err := n.Arg(i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", s, err)
	}
	return v, nil
}

// Int returns the atom at index i parsed as an int.
func (n *Node) Int(i int) (int, error) {
	s, err := n.Arg(i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int %q: %w", s, err)
	}
	return v, nil
}

// SetArg replaces the atom text at index i, keeping its quoting style.
func (n *Node) SetArg(i int, s string) error {
	if !n.IsList() || i < 0 || i >= len(n.List) || n.List[i].IsList() {
		return fmt.Errorf("no atom at index %d", i)
	}
	n.List[i].Atom = s
	return nil
}

// Append adds child nodes to the end of a list.
func (n *Node) Append(children ...*Node) {
	n.List = append(n.List, children...)
}

// Filter removes direct children for which keep returns false.
func (n *Node) Filter(keep func(*Node) bool) {
	if !n.IsList() {
		return
	}
	kept := n.List[:0]
	for _, c := range n.List {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	// Clear the tail so removed nodes are not retained.
	for i := len(kept); i < len(n.List); i++ {
		n.List[i] = nil
	}
	n.List = kept
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Atom: n.Atom, Quoted: n.Quoted}
	if n.List != nil {
		out.List = make([]*Node, len(n.List))
		for i, c := range n.List {
			out.List[i] = c.Clone()
		}
	}
	return out
}

// Walk calls fn for the node and every descendant, pre-order.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.List {
		c.Walk(fn)
	}
}
