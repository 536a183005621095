package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grievance-labs/complaintbot/internal/knowledge"
)

func TestStore_SearchRanksByCosine(t *testing.T) {
	s := New()
	require.NoError(t, s.Init(2))

	chunks := []knowledge.Chunk{
		{ID: "a", Text: "alpha", Index: 0},
		{ID: "b", Text: "beta", Index: 1},
		{ID: "c", Text: "gamma", Index: 2},
	}
	vectors := [][]float64{
		{1, 0},
		{0, 1},
		{0.7, 0.7},
	}
	require.NoError(t, s.Upsert(chunks, vectors))

	results, err := s.Search([]float64{1, 0}, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Chunk.ID)
	assert.Equal(t, "c", results[1].Chunk.ID)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestStore_TopKClamped(t *testing.T) {
	s := New()
	require.NoError(t, s.Init(1))
	require.NoError(t, s.Upsert(
		[]knowledge.Chunk{{ID: "a"}},
		[][]float64{{1}},
	))

	results, err := s.Search([]float64{1}, 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestStore_DimensionMismatch(t *testing.T) {
	s := New()
	require.NoError(t, s.Init(3))

	err := s.Upsert([]knowledge.Chunk{{ID: "a"}}, [][]float64{{1, 2}})
	assert.Error(t, err)
}

func TestStore_LengthMismatch(t *testing.T) {
	s := New()
	require.NoError(t, s.Init(1))

	err := s.Upsert([]knowledge.Chunk{{ID: "a"}, {ID: "b"}}, [][]float64{{1}})
	assert.Error(t, err)
}

func TestStore_InvalidDimension(t *testing.T) {
	assert.Error(t, New().Init(0))
}
