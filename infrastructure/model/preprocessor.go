// Package model loads the provisioned artifacts and exposes the two
// capabilities the API needs: text preparation and classification. Artifacts
// are JSON exports of the training pipeline (a bag-of-words vectorizer and a
// decision tree).
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// ErrUnprocessable signals input the pipeline cannot turn into features.
// It must short-circuit the request before the cache or classifier is touched.
var ErrUnprocessable = errors.New("failed to process sms")

// Preprocessor turns raw SMS text into the feature vector the classifier was
// trained on.
type Preprocessor struct {
	Vocabulary map[string]int `json:"vocabulary"`
	StopWords  []string       `json:"stop_words"`

	stopSet map[string]struct{}
}

// LoadPreprocessor reads the vectorizer artifact from disk.
func LoadPreprocessor(path string) (*Preprocessor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preprocessor artifact: %w", err)
	}

	var p Preprocessor
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preprocessor artifact: %w", err)
	}
	if len(p.Vocabulary) == 0 {
		return nil, errors.New("preprocessor artifact has an empty vocabulary")
	}

	p.stopSet = make(map[string]struct{}, len(p.StopWords))
	for _, w := range p.StopWords {
		p.stopSet[strings.ToLower(w)] = struct{}{}
	}
	return &p, nil
}

// Prepare tokenizes, filters and vectorizes raw text. Returns ErrUnprocessable
// when no usable tokens remain.
func (p *Preprocessor) Prepare(raw string) ([]float64, error) {
	tokens := tokenize(raw)
	if len(tokens) == 0 {
		return nil, ErrUnprocessable
	}

	// Out-of-vocabulary messages still classify, as all-zero vectors.
	features := make([]float64, len(p.Vocabulary))
	for _, tok := range tokens {
		if _, stop := p.stopSet[tok]; stop {
			continue
		}
		if idx, ok := p.Vocabulary[tok]; ok && idx >= 0 && idx < len(features) {
			features[idx]++
		}
	}

	return features, nil
}

// tokenize lowercases and splits on anything that is not a letter or digit.
func tokenize(raw string) []string {
	return strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
