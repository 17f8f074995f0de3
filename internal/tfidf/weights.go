// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tfidf builds TF-IDF weight vectors over a small corpus of
// normalized documents and compares them with cosine similarity.
//
// Weighting follows the scikit-learn TfidfVectorizer defaults: raw term
// counts, smooth idf ln((1+N)/(1+df)) + 1, and L2-normalized vectors.
package tfidf

import (
	"math"
	"sort"
)

// DefaultMinTermLength drops single-character terms, matching the default
// \w\w+ token pattern.
const DefaultMinTermLength = 2

// WeightVector maps a vocabulary term to its non-negative weight. Vectors
// are only comparable with vectors built in the same BuildWeights call.
type WeightVector map[string]float64

// Weights is the output of one BuildWeights call: a shared vocabulary and
// one vector per input document, in input order.
type Weights struct {
	// Vocabulary is every distinct term in the corpus, sorted.
	Vocabulary []string

	// IDF holds the inverse document frequency for each vocabulary term.
	IDF map[string]float64

	// Vectors holds one L2-normalized vector per document.
	Vectors []WeightVector
}

// Builder computes TF-IDF weights.
type Builder struct {
	// MinTermLength excludes terms with fewer bytes. Zero uses
	// DefaultMinTermLength; a negative value keeps every term.
	MinTermLength int
}

// BuildWeights builds the vocabulary of corpus and one weight vector per
// document using the default Builder.
func BuildWeights(corpus [][]string) Weights {
	return Builder{}.BuildWeights(corpus)
}

// BuildWeights builds the vocabulary of corpus and one weight vector per
// document. A document with no usable terms gets an empty vector.
func (b Builder) BuildWeights(corpus [][]string) Weights {
	minLen := b.MinTermLength
	if minLen == 0 {
		minLen = DefaultMinTermLength
	}

	counts := make([]map[string]int, len(corpus))
	df := make(map[string]int)
	for i, doc := range corpus {
		counts[i] = make(map[string]int)
		for _, term := range doc {
			if len(term) < minLen {
				continue
			}
			if counts[i][term] == 0 {
				df[term]++
			}
			counts[i][term]++
		}
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	n := float64(len(corpus))
	idf := make(map[string]float64, len(vocab))
	for _, term := range vocab {
		idf[term] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]WeightVector, len(corpus))
	for i := range corpus {
		vectors[i] = weigh(vocab, counts[i], idf)
	}

	return Weights{Vocabulary: vocab, IDF: idf, Vectors: vectors}
}

// weigh computes the L2-normalized tf*idf vector for one document, summing
// in vocabulary order so the result is reproducible.
func weigh(vocab []string, counts map[string]int, idf map[string]float64) WeightVector {
	v := make(WeightVector, len(counts))
	var sumSq float64
	for _, term := range vocab {
		c, ok := counts[term]
		if !ok {
			continue
		}
		w := float64(c) * idf[term]
		v[term] = w
		sumSq += w * w
	}
	if sumSq == 0 {
		return v
	}
	norm := math.Sqrt(sumSq)
	for term, w := range v {
		v[term] = w / norm
	}
	return v
}

// Terms returns the vector's terms sorted lexicographically.
func (v WeightVector) Terms() []string {
	terms := make([]string, 0, len(v))
	for t := range v {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

// Magnitude returns the Euclidean length of v.
func (v WeightVector) Magnitude() float64 {
	var sumSq float64
	for _, t := range v.Terms() {
		sumSq += v[t] * v[t]
	}
	return math.Sqrt(sumSq)
}
