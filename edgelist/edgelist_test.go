// SPDX-License-Identifier: MIT
package edgelist_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlheap/builder"
	"github.com/katalvlaran/lvlheap/edgelist"
	"github.com/katalvlaran/lvlheap/shortestpath"
)

const fourVertices = `0
4 4
0 1 1
1 2 2
0 2 5
2 3 1
`

func TestParse_Scenario(t *testing.T) {
	in, err := edgelist.Parse(strings.NewReader(fourVertices))
	require.NoError(t, err)
	assert.Equal(t, 0, in.Source)
	assert.Equal(t, 4, in.Graph.Order())
	assert.Equal(t, 4, in.Graph.Size())

	dist, err := shortestpath.Run(in.Graph, in.Source)
	require.NoError(t, err)
	assert.Equal(t, shortestpath.Distances{0, 1, 3, 4}, dist)
}

func TestParse_ToleratesWhitespace(t *testing.T) {
	src := "\n  2 \n\n3   2\n0\t1 4\n\n 1 2  6  \n\n"
	in, err := edgelist.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, in.Source)
	assert.Equal(t, []shortestpath.Edge{{U: 0, V: 1, Weight: 4}, {U: 1, V: 2, Weight: 6}}, in.Graph.Edges())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want error
		line string
	}{
		{"empty", "", edgelist.ErrMalformed, "line 0"},
		{"missing header", "0\n", edgelist.ErrMalformed, "end of input"},
		{"bad source", "x\n1 0\n", edgelist.ErrMalformed, "line 1"},
		{"header arity", "0\n3\n", edgelist.ErrMalformed, "line 2"},
		{"zero vertices", "0\n0 0\n", shortestpath.ErrTooFewVertices, "line 2"},
		{"negative m", "0\n2 -1\n", edgelist.ErrMalformed, "negative"},
		{"source out of range", "5\n2 0\n", shortestpath.ErrSourceOutOfRange, "line 1"},
		{"edge arity", "0\n2 1\n0 1\n", edgelist.ErrMalformed, "line 3"},
		{"bad weight", "0\n2 1\n0 1 w\n", edgelist.ErrMalformed, "weight"},
		{"endpoint range", "0\n2 1\n0 2 1\n", shortestpath.ErrVertexOutOfRange, "line 3"},
		{"zero weight", "0\n2 1\n0 1 0\n", shortestpath.ErrNonPositiveWeight, "line 3"},
		{"too few edges", "0\n3 2\n0 1 1\n", edgelist.ErrCountMismatch, "found 1"},
		{"too many edges", "0\n3 1\n0 1 1\n1 2 1\n", edgelist.ErrCountMismatch, "line 4"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			in, err := edgelist.Parse(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.line)
			assert.Nil(t, in)
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(30, []builder.BuilderOption{builder.WithSeed(8)}, builder.RandomDensity(15))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, g, 7))

	in, err := edgelist.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, 7, in.Source)
	assert.Empty(t, cmp.Diff(g.Edges(), in.Graph.Edges()))

	require.ErrorIs(t, edgelist.Write(&buf, nil, 0), shortestpath.ErrNilGraph)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(fourVertices), 0o600))

	in, err := edgelist.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, in.Graph.Order())

	_, err = edgelist.ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteDistances(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, edgelist.WriteDistances(&buf, 1, shortestpath.Distances{3, 0, shortestpath.Infinity}))
	assert.Equal(t, "3 // cost from node 1 to 0\n"+
		"0 // cost from node 1 to 1\n"+
		"INF // cost from node 1 to 2\n", buf.String())
}
