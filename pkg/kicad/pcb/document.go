// Package pcb gives the panel engine a KiCad board document: loading and
// saving .kicad_pcb files, layer and title-block lookup, and handles to
// the duplicable board items. The document keeps the full s-expression
// tree, so fields the tool does not model survive a load/save cycle.
package pcb

import (
	"fmt"
	"io"
	"os"

	"github.com/OpenTraceLab/OpenTracePanel/pkg/kicad/sexp"
)

// MinSupportedVersion is the oldest board file format accepted
// (KiCad 6.0 = 20211014).
const MinSupportedVersion = 20211014

// EdgeCutsLayer is the board outline layer.
const EdgeCutsLayer = "Edge.Cuts"

// Document is a loaded KiCad board.
type Document struct {
	root   *sexp.Node
	layers *LayerMap
}

// Load reads and parses a board file.
func Load(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open board: %w", err)
	}
	defer file.Close()

	doc, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse reads a board from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	root, err := sexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse s-expression: %w", err)
	}

	if root.Name() != "kicad_pcb" {
		return nil, fmt.Errorf("not a KiCad PCB file: expected 'kicad_pcb', got %q", root.Name())
	}

	versionNode := root.Find("version")
	if versionNode == nil {
		return nil, fmt.Errorf("missing required 'version' field")
	}
	version, err := versionNode.Int(1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse version: %w", err)
	}
	if version < MinSupportedVersion {
		return nil, fmt.Errorf("unsupported KiCad version: %d (minimum required: %d / KiCad 6.0)",
			version, MinSupportedVersion)
	}

	layers, err := parseLayers(root)
	if err != nil {
		return nil, err
	}

	return &Document{root: root, layers: layers}, nil
}

// Save writes the board to the given path.
func (d *Document) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer file.Close()

	if err := d.WriteTo(file); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteTo serializes the board to w.
func (d *Document) WriteTo(w io.Writer) error {
	return sexp.Write(w, d.root)
}

// Version returns the file format version.
func (d *Document) Version() int {
	v, _ := d.root.Find("version").Int(1)
	return v
}

// Generator returns the tool that produced the file.
func (d *Document) Generator() string {
	if n := d.root.Find("generator"); n != nil {
		if g, err := n.Arg(1); err == nil {
			return g
		}
	}
	if n := d.root.Find("host"); n != nil {
		if g, err := n.Arg(1); err == nil {
			return g
		}
	}
	return "unknown"
}

// Layer represents one board layer.
type Layer struct {
	Number int    // layer number (ordinal)
	Name   string // layer name (e.g. "F.Cu", "Edge.Cuts")
	Type   string // layer type (e.g. "signal", "user")
}

// LayerMap provides lookup of layers by number or name.
type LayerMap struct {
	byNumber map[int]*Layer
	byName   map[string]*Layer
	ordered  []Layer
}

// parseLayers extracts the (layers ...) table.
// Expected format: (layers (0 "F.Cu" signal) (31 "B.Cu" signal) ...)
func parseLayers(root *sexp.Node) (*LayerMap, error) {
	node := root.Find("layers")
	if node == nil {
		return nil, fmt.Errorf("missing 'layers' section")
	}

	lm := &LayerMap{
		byNumber: make(map[int]*Layer),
		byName:   make(map[string]*Layer),
	}

	for _, entry := range node.List[1:] {
		if !entry.IsList() {
			continue
		}
		number, err := entry.Int(0)
		if err != nil {
			return nil, fmt.Errorf("failed to parse layer number: %w", err)
		}
		name, err := entry.Arg(1)
		if err != nil {
			return nil, fmt.Errorf("failed to parse layer name: %w", err)
		}
		layerType, err := entry.Arg(2)
		if err != nil {
			layerType = "user"
		}
		lm.ordered = append(lm.ordered, Layer{Number: number, Name: name, Type: layerType})
	}

	if len(lm.ordered) == 0 {
		return nil, fmt.Errorf("no layers defined")
	}
	for i := range lm.ordered {
		layer := &lm.ordered[i]
		lm.byNumber[layer.Number] = layer
		lm.byName[layer.Name] = layer
	}
	return lm, nil
}

// GetByName retrieves a layer by its name (e.g. "Edge.Cuts").
func (lm *LayerMap) GetByName(name string) (*Layer, bool) {
	layer, ok := lm.byName[name]
	return layer, ok
}

// GetByNumber retrieves a layer by its number.
func (lm *LayerMap) GetByNumber(num int) (*Layer, bool) {
	layer, ok := lm.byNumber[num]
	return layer, ok
}

// Layers returns the layer table in file order.
func (d *Document) Layers() []Layer {
	return d.layers.ordered
}

// HasLayer reports whether the board defines the named layer.
func (d *Document) HasLayer(name string) bool {
	_, ok := d.layers.GetByName(name)
	return ok
}

// NetCount returns the number of declared nets.
func (d *Document) NetCount() int {
	return len(d.root.FindAll("net"))
}
