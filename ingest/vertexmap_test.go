package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosslevel/xalign/ingest"
	"github.com/crosslevel/xalign/registry"
)

func dataRows() []ingest.DataRow {
	return []ingest.DataRow{
		{Level: "A", Replicate: "1", Entity: "e1", Intensity: 1.0},
		{Level: "A", Replicate: "2", Entity: "e1", Intensity: 2.0},
		{Level: "B", Replicate: "1", Entity: "e1", Intensity: 1.0},
		{Level: "B", Replicate: "2", Entity: "e1", Intensity: 2.0},
	}
}

func TestBuildVertexSimMapValid(t *testing.T) {
	reg := registry.New()
	levels, err := ingest.BuildLevels(dataRows(), reg)
	require.NoError(t, err)

	vrows := []ingest.VertexRow{{Level1: "A", Level2: "B", Entity1: "e1", Entity2: "e1", Similarity: 1.0}}

	v, err := ingest.BuildVertexSimMap(vrows, reg, levels)
	require.NoError(t, err)

	entries := v.For("A", "B")
	require.Len(t, entries, 1)
	assert.Equal(t, 1.0, entries[0].Sim)
}

func TestBuildVertexSimMapRejectsUnknownLevel(t *testing.T) {
	reg := registry.New()
	levels, err := ingest.BuildLevels(dataRows(), reg)
	require.NoError(t, err)

	vrows := []ingest.VertexRow{{Level1: "A", Level2: "ghost", Entity1: "e1", Entity2: "e1", Similarity: 1.0}}

	_, err = ingest.BuildVertexSimMap(vrows, reg, levels)
	assert.ErrorIs(t, err, ingest.ErrUnknownLevel)
}

func TestBuildVertexSimMapRejectsUnknownEntity(t *testing.T) {
	reg := registry.New()
	levels, err := ingest.BuildLevels(dataRows(), reg)
	require.NoError(t, err)

	vrows := []ingest.VertexRow{{Level1: "A", Level2: "B", Entity1: "ghost", Entity2: "e1", Similarity: 1.0}}

	_, err = ingest.BuildVertexSimMap(vrows, reg, levels)
	assert.ErrorIs(t, err, ingest.ErrUnknownEntity)
}

func TestDefaultVertexSimMapIsIdentity(t *testing.T) {
	reg := registry.New()
	levels, err := ingest.BuildLevels(dataRows(), reg)
	require.NoError(t, err)

	v := ingest.DefaultVertexSimMap(reg, levels, "")
	entries := v.For("A", "B")
	require.Len(t, entries, 1)
	assert.Equal(t, 1.0, entries[0].Sim)
}
