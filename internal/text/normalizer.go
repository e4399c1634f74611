// Sentirec - Sentiment-Aware Product Recommendation Engine
// Copyright 2026 Sentirec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sentirec/sentirec

// Package text turns raw review text into the token sequence consumed by the
// sentiment feature encoder.
//
// The pipeline is fixed: lowercase, strip URLs and e-mail addresses, strip
// everything outside [a-z0-9 ], tokenize on whitespace, drop stopwords and
// purely numeric and too-short tokens, stem, then emit unigrams plus adjacent
// bigrams. Negation tokens ("not", "no", "never", contractions with the
// apostrophe already stripped) survive every filter and bypass the stemmer,
// so bigrams like "not good" reach the vocabulary literally.
//
// A Normalizer is immutable after construction and safe for concurrent use.
// Identical input always yields the identical token sequence.
package text

import (
	"regexp"
	"strings"

	"github.com/blevesearch/go-porterstemmer"
)

// minTokenLen is the minimum rune length of a non-negation token.
const minTokenLen = 3

// bigramSep joins the two terms of a bigram token.
const bigramSep = " "

var (
	urlPattern      = regexp.MustCompile(`http\S+|www\S+`)
	emailPattern    = regexp.MustCompile(`\S+@\S+`)
	nonAlnumPattern = regexp.MustCompile(`[^a-z0-9\s]`)
	numericPattern  = regexp.MustCompile(`^[0-9]+$`)
)

// Config holds normalizer configuration.
type Config struct {
	// ExtraStopwords extends the built-in stopword list. Entries are
	// lowercased; negation tokens cannot be turned into stopwords.
	ExtraStopwords []string
}

// Normalizer converts raw review text into encoder-ready tokens.
type Normalizer struct {
	stopwords map[string]struct{}
}

// NewNormalizer creates a Normalizer with the built-in stopword list plus
// any configured extras.
func NewNormalizer(cfg Config) *Normalizer {
	stop := make(map[string]struct{}, len(defaultStopwords)+len(cfg.ExtraStopwords))
	for _, w := range defaultStopwords {
		stop[w] = struct{}{}
	}
	for _, w := range cfg.ExtraStopwords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, negation := negationTokens[w]; negation {
			continue
		}
		stop[w] = struct{}{}
	}
	return &Normalizer{stopwords: stop}
}

// Normalize runs the full pipeline and returns unigrams followed by adjacent
// bigrams. Input that is empty or entirely removed by the pipeline yields an
// empty sequence, never an error.
func (n *Normalizer) Normalize(text string) []string {
	stems := n.stems(text)
	if len(stems) == 0 {
		return nil
	}

	tokens := make([]string, 0, 2*len(stems)-1)
	tokens = append(tokens, stems...)
	for i := 0; i+1 < len(stems); i++ {
		tokens = append(tokens, stems[i]+bigramSep+stems[i+1])
	}
	return tokens
}

// stems returns the filtered, stemmed unigram sequence.
func (n *Normalizer) stems(text string) []string {
	cleaned := clean(text)
	if cleaned == "" {
		return nil
	}

	fields := strings.Fields(cleaned)
	stems := make([]string, 0, len(fields))
	for _, tok := range fields {
		if _, negation := negationTokens[tok]; negation {
			// Negators pass through unstemmed so vocabularies can
			// address them literally.
			stems = append(stems, tok)
			continue
		}
		if _, stop := n.stopwords[tok]; stop {
			continue
		}
		if len(tok) < minTokenLen {
			continue
		}
		if numericPattern.MatchString(tok) {
			continue
		}
		stems = append(stems, porterstemmer.StemString(tok))
	}
	return stems
}

// clean lowercases text and strips URLs, e-mail addresses and every
// character outside [a-z0-9 ].
func clean(text string) string {
	s := strings.ToLower(text)
	s = urlPattern.ReplaceAllString(s, " ")
	s = emailPattern.ReplaceAllString(s, " ")
	s = nonAlnumPattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
