package tfidf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestBuildWeights_Vocabulary(t *testing.T) {
	w := BuildWeights([][]string{
		{"python", "nlp", "python"},
		{"go", "nlp", "x"},
	})
	assert.Equal(t, []string{"go", "nlp", "python"}, w.Vocabulary)
	require.Len(t, w.Vectors, 2)

	// df(nlp) = 2, df(python) = df(go) = 1, N = 2.
	assert.InDelta(t, 1.0, w.IDF["nlp"], tol)
	assert.InDelta(t, math.Log(1.5)+1, w.IDF["python"], tol)
}

func TestBuildWeights_MatchesSmoothIDF(t *testing.T) {
	w := BuildWeights([][]string{
		{"python", "nlp", "python"},
		{"go", "nlp"},
	})
	idfRare := math.Log(1.5) + 1
	// doc 0: python=2*idfRare, nlp=1.
	raw := []float64{2 * idfRare, 1}
	norm := math.Hypot(raw[0], raw[1])
	assert.InDelta(t, raw[0]/norm, w.Vectors[0]["python"], tol)
	assert.InDelta(t, raw[1]/norm, w.Vectors[0]["nlp"], tol)
	assert.InDelta(t, 1.0, w.Vectors[0].Magnitude(), tol)
	assert.InDelta(t, 1.0, w.Vectors[1].Magnitude(), tol)
}

func TestBuildWeights_MinTermLength(t *testing.T) {
	tests := []struct {
		name    string
		builder Builder
		want    []string
	}{
		{"default drops single letters", Builder{}, []string{"go"}},
		{"negative keeps everything", Builder{MinTermLength: -1}, []string{"c", "go", "r"}},
		{"longer minimum", Builder{MinTermLength: 3}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.builder.BuildWeights([][]string{{"c", "go"}, {"r"}})
			assert.Equal(t, tt.want, w.Vocabulary)
		})
	}
}

func TestBuildWeights_EmptyDocuments(t *testing.T) {
	w := BuildWeights([][]string{{}, {}})
	assert.Empty(t, w.Vocabulary)
	require.Len(t, w.Vectors, 2)
	assert.Equal(t, 0.0, Similarity(w.Vectors[0], w.Vectors[1]))

	w = BuildWeights([][]string{{"python"}, {}})
	assert.Empty(t, w.Vectors[1])
	assert.Equal(t, 0.0, Similarity(w.Vectors[0], w.Vectors[1]))
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b WeightVector
		want float64
	}{
		{"identical", WeightVector{"a": 1, "b": 2}, WeightVector{"a": 1, "b": 2}, 1},
		{"orthogonal", WeightVector{"a": 1}, WeightVector{"b": 1}, 0},
		{"zero vector", WeightVector{}, WeightVector{"b": 1}, 0},
		{"nil vectors", nil, nil, 0},
		{"half", WeightVector{"a": 1}, WeightVector{"a": 1, "b": math.Sqrt(3)}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, tol)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestPairScore_Properties(t *testing.T) {
	b := Builder{}
	docs := [][]string{
		{"python", "developer", "nlp", "experience"},
		{"experienced", "python", "nlp", "developer"},
		{"completely", "unrelated", "text", "cooking"},
		{"python", "python", "python"},
		{},
	}

	for i, x := range docs {
		for j, y := range docs {
			s := b.PairScore(x, y)
			assert.GreaterOrEqual(t, s, 0.0, "range %d,%d", i, j)
			assert.LessOrEqual(t, s, 1.0, "range %d,%d", i, j)
			assert.Equal(t, s, b.PairScore(y, x), "symmetry %d,%d", i, j)
		}
		if len(x) > 0 {
			assert.InDelta(t, 1.0, b.PairScore(x, x), tol, "self similarity %d", i)
		} else {
			assert.Equal(t, 0.0, b.PairScore(x, x))
		}
	}

	assert.Greater(t, b.PairScore(docs[0], docs[1]), 0.5)
	assert.Equal(t, 0.0, b.PairScore(docs[0], docs[2]))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, clamp(1.0000000002))
	assert.Equal(t, 0.0, clamp(-1e-17))
	assert.Equal(t, 0.0, clamp(math.NaN()))
	assert.Equal(t, 0.25, clamp(0.25))
}
