// SPDX-License-Identifier: MIT
package dimacs_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qbnp/core"
	"github.com/katalvlaran/qbnp/dimacs"
)

const triangleWithTail = `c triangle 1-2-3 plus pendant 4
c second comment
p edge 4 4
e 1 2
e 2 3
e 1 3
e 3 4
`

func TestParse_Unweighted(t *testing.T) {
	g, err := dimacs.Parse("tri", strings.NewReader(triangleWithTail))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeNumber())
	assert.False(t, g.IsWeighted())
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}}, g.Edges())
	assert.Equal(t, []float64{1, 1, 1, 1}, g.Weights())
}

func TestParse_Weighted(t *testing.T) {
	src := "p col 3 1\nn 1 2.5\nn 3 4\ne 1 2\n"
	g, err := dimacs.Parse("w", strings.NewReader(src))
	require.NoError(t, err)
	assert.True(t, g.IsWeighted())
	assert.Equal(t, []float64{2.5, 0, 4}, g.Weights())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"edge before problem", "e 1 2\np edge 2 1\n", dimacs.ErrMissingProblemLine},
		{"empty", "c nothing here\n", dimacs.ErrMissingProblemLine},
		{"duplicate problem", "p edge 2 0\np edge 2 0\n", dimacs.ErrMissingProblemLine},
		{"garbage", "p edge 2 1\nx 1 2\n", dimacs.ErrSyntax},
		{"out of range edge", "p edge 2 1\ne 1 3\n", core.ErrNodeOutOfRange},
		{"out of range weight", "p edge 2 0\nn 0 1\n", core.ErrNodeOutOfRange},
		{"negative size", "p edge -1 0\n", core.ErrNegativeSize},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := dimacs.Parse(tc.name, strings.NewReader(tc.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	g, err := core.NewGraph(3,
		core.WithWeights([]float64{1, 2.5, 3}),
		core.WithEdges([][2]int{{0, 1}, {1, 2}}),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dimacs.Write(&buf, g))
	assert.Equal(t, "p edge 3 2\nn 1 1\nn 2 2.5\nn 3 3\ne 1 2\ne 2 3\n", buf.String())

	back, err := dimacs.Parse("rt", &buf)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), back.Edges())
	assert.Equal(t, g.Weights(), back.Weights())
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.col")
	require.NoError(t, os.WriteFile(path, []byte(triangleWithTail), 0o600))

	g, err := dimacs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())

	_, err = dimacs.ReadFile(filepath.Join(t.TempDir(), "missing.col"))
	require.Error(t, err)
}
