package sexp

import (
	"bufio"
	"io"
	"strings"
)

// Write serializes the tree to w with KiCad-style indentation and a
// trailing newline.
func Write(w io.Writer, n *Node) error {
	bw := bufio.NewWriter(w)
	writeNode(bw, n, 0)
	bw.WriteByte('\n')
	return bw.Flush()
}

// String renders the node as source text.
func (n *Node) String() string {
	var b strings.Builder
	sw := bufio.NewWriter(&b)
	writeNode(sw, n, 0)
	sw.Flush()
	return b.String()
}

func writeNode(w *bufio.Writer, n *Node, indent int) {
	if n == nil {
		return
	}
	if !n.IsList() {
		writeAtom(w, n)
		return
	}

	// Lists of atoms render inline; lists with nested lists go multiline,
	// one nested element per line.
	if !hasListChild(n) {
		w.WriteByte('(')
		for i, c := range n.List {
			if i > 0 {
				w.WriteByte(' ')
			}
			writeAtom(w, c)
		}
		w.WriteByte(')')
		return
	}

	w.WriteByte('(')
	inline := true
	for i, c := range n.List {
		if !c.IsList() && inline {
			if i > 0 {
				w.WriteByte(' ')
			}
			writeAtom(w, c)
			continue
		}
		inline = false
		w.WriteByte('\n')
		writeIndent(w, indent+1)
		writeNode(w, c, indent+1)
	}
	w.WriteByte('\n')
	writeIndent(w, indent)
	w.WriteByte(')')
}

func writeAtom(w *bufio.Writer, n *Node) {
	if n.Quoted {
		w.WriteString(quote(n.Atom))
	} else {
		w.WriteString(n.Atom)
	}
}

func writeIndent(w *bufio.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.WriteByte('\t')
	}
}

func hasListChild(n *Node) bool {
	for _, c := range n.List {
		if c.IsList() {
			return true
		}
	}
	return false
}
