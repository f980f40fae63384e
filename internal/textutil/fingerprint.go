package textutil

import (
	"math"
	"strings"
)

// Fingerprint is a term-frequency vector over normalized title tokens.
type Fingerprint struct {
	tokens map[string]float64
	norm   float64
}

// NewFingerprint creates a fingerprint from the provided text.
// Returns nil if the text produces no tokens.
func NewFingerprint(text string) *Fingerprint {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	var sum float64
	for _, count := range counts {
		sum += count * count
	}
	return &Fingerprint{tokens: counts, norm: math.Sqrt(sum)}
}

// Tokenize splits a normalized title into words. Short titles rely on
// articles and numbers, so no length filter is applied.
func Tokenize(text string) []string {
	return strings.Fields(NormalizeTitle(text))
}

// TokenCount returns the number of unique tokens in the fingerprint.
func (f *Fingerprint) TokenCount() int {
	if f == nil {
		return 0
	}
	return len(f.tokens)
}

// CosineSimilarity computes the cosine similarity between two fingerprints.
// Returns 0 if either fingerprint is nil or has zero norm.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for token, count := range a.tokens {
		if other, ok := b.tokens[token]; ok {
			dot += count * other
		}
	}
	return dot / (a.norm * b.norm)
}
