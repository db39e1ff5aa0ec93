// SPDX-License-Identifier: MIT
// File: dimacs.go
// Role: DIMACS reader/writer on top of the participle grammar.

package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/qbnp/core"
)

// Sentinel errors for DIMACS input.
var (
	// ErrSyntax indicates input the grammar does not accept.
	ErrSyntax = errors.New("dimacs: syntax error")

	// ErrMissingProblemLine indicates an edge or node line before the "p"
	// line, a second "p" line, or no "p" line at all.
	ErrMissingProblemLine = errors.New("dimacs: missing or misplaced problem line")
)

// DefaultFormat is the format token written by Write.
const DefaultFormat = "edge"

// Parse reads a DIMACS document from r. name is used in error messages only.
//
// Errors:
//   - ErrSyntax for lexer/grammar failures.
//   - ErrMissingProblemLine when the "p" line is absent or not first.
//   - core.ErrNodeOutOfRange for endpoints outside 1..n.
func Parse(name string, r io.Reader) (*core.Graph, error) {
	doc, err := dimacsParser.Parse(name, r)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "%v", err)
	}
	if len(doc.Lines) == 0 || doc.Lines[0].Problem == nil {
		return nil, errors.Wrapf(ErrMissingProblemLine, "%s", name)
	}

	p := doc.Lines[0].Problem
	g, err := core.NewGraph(p.Nodes)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: p %s %d %d", name, p.Format, p.Nodes, p.Edges)
	}

	var weights []float64
	for _, l := range doc.Lines[1:] {
		switch {
		case l.Problem != nil:
			return nil, errors.Wrapf(ErrMissingProblemLine, "%s:%d: duplicate problem line", name, l.Pos.Line)
		case l.Edge != nil:
			if err = g.AddEdge(l.Edge.U-1, l.Edge.V-1); err != nil {
				return nil, errors.Wrapf(err, "%s:%d: e %d %d", name, l.Pos.Line, l.Edge.U, l.Edge.V)
			}
		case l.Node != nil:
			if weights == nil {
				weights = make([]float64, p.Nodes)
			}
			u := l.Node.U - 1
			if u < 0 || u >= p.Nodes {
				return nil, errors.Wrapf(core.ErrNodeOutOfRange, "%s:%d: n %d", name, l.Pos.Line, l.Node.U)
			}
			weights[u] = l.Node.Weight
		}
	}
	if weights != nil {
		if err = g.InitNodeWeights(weights); err != nil {
			return nil, errors.Wrap(err, name)
		}
	}

	return g, nil
}

// ReadFile opens and parses a DIMACS file.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "dimacs: open")
	}
	defer f.Close()

	return Parse(path, f)
}

// Write serializes the active part of g: the problem line, one "n" line per
// active node when g is weighted, then edges in ascending (u,v) order.
// Ids are written 1-based.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	edges := g.Edges()
	fmt.Fprintf(bw, "p %s %d %d\n", DefaultFormat, g.NodeNumber(), len(edges))
	if g.IsWeighted() {
		weights := g.Weights()
		for _, u := range g.ActiveNodes() {
			fmt.Fprintf(bw, "n %d %s\n", u+1, strconv.FormatFloat(weights[u], 'g', -1, 64))
		}
	}
	for _, e := range edges {
		fmt.Fprintf(bw, "e %d %d\n", e[0]+1, e[1]+1)
	}

	return errors.Wrap(bw.Flush(), "dimacs: write")
}
