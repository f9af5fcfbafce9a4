// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bidir/core"
)

// ErrInvalidDocument indicates a document that decodes but cannot form a graph.
var ErrInvalidDocument = errors.New("graphio: invalid document")

// Document is the YAML form of a graph.
type Document struct {
	Directed bool            `yaml:"directed"`
	Loops    bool            `yaml:"loops,omitempty"`
	Vertices []core.VertexID `yaml:"vertices,omitempty,flow"`
	Edges    []EdgeDoc       `yaml:"edges"`
}

// EdgeDoc is one edge entry.
type EdgeDoc struct {
	From   core.VertexID `yaml:"from"`
	To     core.VertexID `yaml:"to"`
	Weight float64       `yaml:"weight"`
}

// Read decodes a Document from r and builds the graph it describes.
// Unknown fields are rejected.
func Read(r io.Reader) (*core.Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	return doc.Graph()
}

// Graph builds a core.Graph from the document.
func (d *Document) Graph() (*core.Graph, error) {
	var opts []core.GraphOption
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for _, v := range d.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("%w: vertex %d: %w", ErrInvalidDocument, v, err)
		}
	}
	for i, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%d->%d): %w", ErrInvalidDocument, i, e.From, e.To, err)
		}
		if d.Directed || e.From == e.To {
			continue
		}
		if err := g.AddEdge(e.To, e.From, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%d->%d): %w", ErrInvalidDocument, i, e.To, e.From, err)
		}
	}

	return g, nil
}

// FromGraph snapshots g into a directed Document.
func FromGraph(g *core.Graph) *Document {
	doc := &Document{Directed: true, Loops: g.Looped()}
	for _, v := range g.Vertices() {
		out, _ := g.OutDegree(v)
		in, _ := g.InDegree(v)
		if out == 0 && in == 0 {
			doc.Vertices = append(doc.Vertices, v)
		}
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc
}

// Write encodes g to w.
func Write(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}

// ReadFile reads a graph from the YAML file at path.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// WriteFile writes g to path, creating or truncating it.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: %w", err)
	}
	if err = Write(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
