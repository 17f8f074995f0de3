// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tfidf

import "sort"

// Similarity returns the cosine similarity of a and b, clamped to [0, 1].
// A zero-magnitude vector on either side yields 0.
//
// The dot product runs over the sorted shared terms so that
// Similarity(a, b) and Similarity(b, a) are bit-for-bit equal.
func Similarity(a, b WeightVector) float64 {
	magA, magB := a.Magnitude(), b.Magnitude()
	if magA == 0 || magB == 0 {
		return 0
	}

	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	shared := make([]string, 0, len(small))
	for t := range small {
		if _, ok := large[t]; ok {
			shared = append(shared, t)
		}
	}
	sort.Strings(shared)

	var dot float64
	for _, t := range shared {
		dot += a[t] * b[t]
	}

	return clamp(dot / (magA * magB))
}

// PairScore builds a two-document corpus from already-normalized token
// streams and returns their similarity.
func (b Builder) PairScore(x, y []string) float64 {
	w := b.BuildWeights([][]string{x, y})
	return Similarity(w.Vectors[0], w.Vectors[1])
}

func clamp(s float64) float64 {
	switch {
	case s < 0 || s != s:
		return 0
	case s > 1:
		return 1
	}
	return s
}
