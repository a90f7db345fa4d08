package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafio/core"
)

func TestRunInfo(t *testing.T) {
	path := writeTemp(t, "g.graphml", buildTestGraph(t))

	var out bytes.Buffer
	require.NoError(t, runInfo(&out, path))

	s := out.String()
	assert.Contains(t, s, "format:    graphml")
	assert.Contains(t, s, "directed:  true")
	assert.Contains(t, s, "vertices:  3")
	assert.Contains(t, s, "edges:     2")
	assert.Contains(t, s, "title")
	assert.Contains(t, s, "double")
	assert.Contains(t, s, "2 values")
}

func TestRunInfo_CompressedNote(t *testing.T) {
	path := writeTemp(t, "g.graphml.zst", buildTestGraph(t))

	var out bytes.Buffer
	require.NoError(t, runInfo(&out, path))
	assert.Contains(t, out.String(), "format:    graphml (zstd)")
}

func TestRunInfo_NoProperties(t *testing.T) {
	a := core.NewAttributed()
	a.Graph.AddVertex()
	path := writeTemp(t, "g.yaml", a)

	var out bytes.Buffer
	require.NoError(t, runInfo(&out, path))
	assert.Contains(t, out.String(), "properties: none")
}
